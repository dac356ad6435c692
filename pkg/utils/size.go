package utils

import "fmt"

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatSize formats a byte count into a readable string: one decimal place,
// a space, then the unit. Units advance by factors of 1024 up to TB, which is
// terminal: values of 1024 TB and beyond stay in TB.
func FormatSize(b int64) string {
	v := float64(b)
	unit := 0
	for v >= 1024 && unit < len(sizeUnits)-1 {
		v /= 1024
		unit++
	}
	return fmt.Sprintf("%.1f %s", v, sizeUnits[unit])
}

// FormatSizeCompact formats a byte count to compact units without a space,
// e.g. 1536 -> "1.5K". Used for narrow table columns.
func FormatSizeCompact(b int64) string {
	v := float64(b)
	unit := 0
	for v >= 1024 && unit < len(sizeUnits)-1 {
		v /= 1024
		unit++
	}
	if unit == 0 {
		return fmt.Sprintf("%dB", b)
	}
	return fmt.Sprintf("%.1f%c", v, sizeUnits[unit][0])
}
