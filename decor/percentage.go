package decor

import "math"

// CalcPercentage is a helper function, to calculate percentage.
// Zero total is an empty task, which is complete right away.
func CalcPercentage(total, current uint64) int {
	if total == 0 || current >= total {
		return 100
	}
	return int(math.Round(float64(current) / float64(total) * 100))
}

// CalcFilledWidth returns how many of width cells a percent fills.
func CalcFilledWidth(width, percent int) int {
	if width <= 0 || percent <= 0 {
		return 0
	}
	filled := int(math.Round(float64(width) * float64(percent) / 100))
	if filled > width {
		return width
	}
	return filled
}
