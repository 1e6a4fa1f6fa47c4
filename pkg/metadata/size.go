package metadata

import (
	"fmt"
)

// FormatFileSize renders a byte count with base-1024 units and one decimal
// place, e.g. "12.3 MB".
func FormatFileSize(size int64) string {
	value := float64(size)

	for _, unit := range []string{"B", "KB", "MB", "GB"} {
		if value < 1024.0 {
			return fmt.Sprintf("%.1f %s", value, unit)
		}

		value /= 1024.0
	}

	return fmt.Sprintf("%.1f TB", value)
}
