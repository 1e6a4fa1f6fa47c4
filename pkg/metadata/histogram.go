package metadata

import (
	"image"
)

const (
	// histogramBound caps the pixels counted for the histogram, independently
	// of the palette's bound.
	histogramBound = 200

	// histogramStride keeps every 4th of the 256 buckets for a compact
	// payload, 64 values per channel.
	histogramStride = 4
)

// histogram counts pixel intensities per channel, normalizes all buckets to
// [0,100] against the single largest bucket across the three channels, and
// downsamples. A degenerate image with no countable pixels yields all zeros.
func histogram(img image.Image) *Histogram {
	small := downscale(img, histogramBound)
	bounds := small.Bounds()

	var rHist, gHist, bHist [256]int

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b := rgbAt(small, x, y)

			rHist[r]++
			gHist[g]++
			bHist[b]++
		}
	}

	var maxVal int
	for i := 0; i < 256; i++ {
		if rHist[i] > maxVal {
			maxVal = rHist[i]
		}
		if gHist[i] > maxVal {
			maxVal = gHist[i]
		}
		if bHist[i] > maxVal {
			maxVal = bHist[i]
		}
	}

	h := &Histogram{
		R: make([]int, 0, 256/histogramStride),
		G: make([]int, 0, 256/histogramStride),
		B: make([]int, 0, 256/histogramStride),
	}

	for i := 0; i < 256; i += histogramStride {
		if maxVal > 0 {
			h.R = append(h.R, rHist[i]*100/maxVal)
			h.G = append(h.G, gHist[i]*100/maxVal)
			h.B = append(h.B, bHist[i]*100/maxVal)
		} else {
			h.R = append(h.R, 0)
			h.G = append(h.G, 0)
			h.B = append(h.B, 0)
		}
	}

	return h
}
