package metadata

import (
	"fmt"
	"image"

	"github.com/EdlinOrg/prominentcolor"
)

// prominentColors finds up to three dominant colors by K-means clustering.
// This enriches the descriptor beyond the quantized palette; it is
// best-effort and any failure, including a panic inside the clustering,
// leaves the field unset.
func prominentColors(img image.Image) (colors []string) {
	defer func() {
		if r := recover(); r != nil {
			colors = nil
		}
	}()

	items, err := prominentcolor.Kmeans(img)
	if err != nil {
		return nil
	}

	for i, item := range items {
		if i > 2 {
			break
		}

		colors = append(colors, fmt.Sprintf("#%02x%02x%02x", item.Color.R, item.Color.G, item.Color.B))
	}

	return colors
}
