package metadata

import (
	"image"
	"testing"
)

func TestQuantize(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input    uint8
		expected uint8
	}{
		"zero":                  {input: 0, expected: 0},
		"below first level":     {input: 31, expected: 0},
		"on a level":            {input: 32, expected: 32},
		"mid bucket":            {input: 100, expected: 96},
		"on the top level":      {input: 224, expected: 224},
		"max value":             {input: 255, expected: 224},
		"level maps to itself":  {input: 192, expected: 192},
		"just above a boundary": {input: 65, expected: 64},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := quantize(tc.input); got != tc.expected {
				t.Fatalf("quantize(%d) = %d, expected %d", tc.input, got, tc.expected)
			}
		})
	}
}

func TestDownscale(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		width, height  int
		bound          uint
		expectedWidth  int
		expectedHeight int
	}{
		"already within bound": {
			width: 50, height: 80, bound: 100,
			expectedWidth: 50, expectedHeight: 80,
		},
		"exactly at bound": {
			width: 100, height: 100, bound: 100,
			expectedWidth: 100, expectedHeight: 100,
		},
		"wide image shrinks keeping aspect": {
			width: 400, height: 200, bound: 100,
			expectedWidth: 100, expectedHeight: 50,
		},
		"tall image shrinks keeping aspect": {
			width: 100, height: 400, bound: 200,
			expectedWidth: 50, expectedHeight: 200,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			img := image.NewNRGBA(image.Rect(0, 0, tc.width, tc.height))

			small := downscale(img, tc.bound)

			b := small.Bounds()
			if b.Dx() != tc.expectedWidth || b.Dy() != tc.expectedHeight {
				t.Fatalf(
					"downscale(%dx%d, %d) = %dx%d, expected %dx%d",
					tc.width, tc.height, tc.bound,
					b.Dx(), b.Dy(),
					tc.expectedWidth, tc.expectedHeight,
				)
			}
		})
	}
}
