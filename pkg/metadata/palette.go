package metadata

import (
	"fmt"
	"image"
	"image/color"
	"sort"

	"github.com/nfnt/resize"
)

// paletteBound caps the pixels counted for the palette regardless of source
// resolution.
const paletteBound = 100

type quantized [3]uint8

// palette returns up to numColors dominant colors as lowercase #rrggbb
// strings, most frequent first. Channels are grouped into 8 levels each so
// visually similar colors share a bucket. Equal counts keep encounter order.
func palette(img image.Image, numColors int) []string {
	small := downscale(img, paletteBound)
	bounds := small.Bounds()

	counts := make(map[quantized]int)

	var order []quantized

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b := rgbAt(small, x, y)

			q := quantized{quantize(r), quantize(g), quantize(b)}
			if _, ok := counts[q]; !ok {
				order = append(order, q)
			}
			counts[q]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > numColors {
		order = order[:numColors]
	}

	colors := make([]string, 0, len(order))
	for _, q := range order {
		colors = append(colors, fmt.Sprintf("#%02x%02x%02x", q[0], q[1], q[2]))
	}

	return colors
}

// quantize maps an 8-bit channel value onto one of the 8 levels
// 0, 32, 64 ... 224. Values already on a level map to themselves.
func quantize(v uint8) uint8 {
	return v / 32 * 32
}

// rgbAt reads a pixel as plain RGB, discarding alpha.
func rgbAt(img image.Image, x, y int) (uint8, uint8, uint8) {
	c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)

	return c.R, c.G, c.B
}

// downscale fits img within a bound×bound box, preserving aspect ratio. It
// never upscales: images already within the box are used as-is.
func downscale(img image.Image, bound uint) image.Image {
	b := img.Bounds()
	if b.Dx() <= int(bound) && b.Dy() <= int(bound) {
		return img
	}

	return resize.Thumbnail(bound, bound, img, resize.Bilinear)
}
