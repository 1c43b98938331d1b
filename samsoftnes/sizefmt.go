package samsoftnes

import (
	"fmt"
	"math"
)

var sizeUnits = [...]string{"B", "KB", "MB", "GB"}

// FormatByteSize renders a byte count for display, scaling through B, KB, MB
// and GB at a 1024 threshold. Values that are whole after scaling print as
// integers, everything else with one decimal place.
func FormatByteSize(n int) string {
	if n == 0 {
		return "0 B"
	}
	size := float64(n)
	idx := 0
	for size >= 1024 && idx < len(sizeUnits)-1 {
		size /= 1024
		idx++
	}
	if size == math.Trunc(size) {
		return fmt.Sprintf("%d %s", int(size), sizeUnits[idx])
	}
	return fmt.Sprintf("%.1f %s", size, sizeUnits[idx])
}
