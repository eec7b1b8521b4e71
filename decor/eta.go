package decor

import "strconv"

// CalcETA returns seconds left to reach total at speed. It is zero when
// nothing is moving or nothing is left.
func CalcETA(total, current uint64, speed float64) float64 {
	if speed <= 0 || current >= total {
		return 0
	}
	return float64(total-current) / speed
}

// FormatETA renders eta seconds, like "ETA: 4.2s".
func FormatETA(eta float64) string {
	return "ETA: " + strconv.FormatFloat(eta, 'f', 1, 64) + "s"
}
