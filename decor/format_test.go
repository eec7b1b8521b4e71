package decor

import "testing"

func TestFormatCount(t *testing.T) {
	cases := []struct {
		n        uint64
		unit     Unit
		expected string
	}{
		{n: 0, unit: UnitNone, expected: "0"},
		{n: 1234567, unit: UnitNone, expected: "1234567"},
		{n: 1000, unit: UnitBytes, expected: "1000 B"},
		{n: 1024, unit: UnitBytes, expected: "1.0 KiB"},
		{n: 3<<20 + 140<<10, unit: UnitBytes, expected: "3.1 MiB"},
		{n: 2 << 30, unit: UnitBytes, expected: "2.0 GiB"},
	}
	for _, tc := range cases {
		got := FormatCount(tc.n, tc.unit)
		if got != tc.expected {
			t.Errorf("Expected %q but found %q", tc.expected, got)
		}
	}
}

func TestFormatCounters(t *testing.T) {
	if got, want := FormatCounters(50, 100, UnitNone), "50/100"; got != want {
		t.Errorf("Expected %q but found %q", want, got)
	}
}
