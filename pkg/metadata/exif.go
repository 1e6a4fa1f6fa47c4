package metadata

import (
	"github.com/dsoprea/go-exif/v3"
	exifcommon "github.com/dsoprea/go-exif/v3/common"
)

var exifTagNames = map[string]struct{}{
	"Make":             {},
	"Model":            {},
	"LensModel":        {},
	"DateTime":         {},
	"DateTimeOriginal": {},
	"ExposureTime":     {},
	"FNumber":          {},
	"ISOSpeedRatings":  {},
	"FocalLength":      {},
}

// exifTags pulls a small set of camera tags from the raw file bytes. Files
// without EXIF, and any extraction error, yield nil so the field is omitted.
func exifTags(content []byte) map[string]string {
	rawExif, err := exif.SearchAndExtractExif(content)
	if err != nil {
		return nil
	}

	im, err := exifcommon.NewIfdMappingWithStandard()
	if err != nil {
		return nil
	}

	ti := exif.NewTagIndex()

	_, index, err := exif.Collect(im, ti, rawExif)
	if err != nil {
		return nil
	}

	tags := make(map[string]string)

	cb := func(ifd *exif.Ifd, ite *exif.IfdTagEntry) error {
		tagName := ite.TagName()
		if _, ok := exifTagNames[tagName]; !ok {
			return nil
		}

		value, err := ite.FormatFirst()
		if err != nil {
			return nil
		}

		tags[tagName] = value

		return nil
	}

	if err := index.RootIfd.EnumerateTagsRecursively(cb); err != nil {
		return nil
	}

	if len(tags) == 0 {
		return nil
	}

	return tags
}
