package decor

import (
	"math"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
)

// CalcSpeed returns average units per second over elapsed.
func CalcSpeed(current uint64, elapsed time.Duration) float64 {
	secs := elapsed.Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(current) / secs
}

// FormatSpeed renders speed, like "12.50/s" or "1.2 MiB/s" for UnitBytes.
func FormatSpeed(speed float64, unit Unit) string {
	if speed < 0 || math.IsNaN(speed) || math.IsInf(speed, 0) {
		speed = 0
	}
	switch unit {
	case UnitBytes:
		return humanize.IBytes(uint64(math.Round(speed))) + "/s"
	default:
		return strconv.FormatFloat(speed, 'f', 2, 64) + "/s"
	}
}
