package decor

import (
	"strconv"

	"github.com/dustin/go-humanize"
)

// Unit selects how counts and speed are printed.
type Unit uint

const (
	// UnitNone prints plain integers.
	UnitNone Unit = iota
	// UnitBytes prints IEC sizes, 1 KiB = 1024 b.
	UnitBytes
)

// FormatCount renders n in the given unit.
func FormatCount(n uint64, unit Unit) string {
	switch unit {
	case UnitBytes:
		return humanize.IBytes(n)
	default:
		return strconv.FormatUint(n, 10)
	}
}

// FormatCounters renders "current/total".
func FormatCounters(current, total uint64, unit Unit) string {
	return FormatCount(current, unit) + "/" + FormatCount(total, unit)
}
