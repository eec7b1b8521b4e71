package decor

import (
	"testing"
	"time"
)

func TestCalcETA(t *testing.T) {
	cases := []struct {
		name           string
		total, current uint64
		speed          float64
		expected       float64
	}{
		{name: "no speed", total: 100, current: 10, speed: 0, expected: 0},
		{name: "done", total: 100, current: 100, speed: 10, expected: 0},
		{name: "half at 10/s", total: 100, current: 50, speed: 10, expected: 5},
		{name: "empty task", total: 0, current: 0, speed: 10, expected: 0},
		{name: "quarter at 2.5/s", total: 100, current: 75, speed: 2.5, expected: 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CalcETA(tc.total, tc.current, tc.speed)
			if got != tc.expected {
				t.Errorf("Want: %v, Got: %v\n", tc.expected, got)
			}
		})
	}
}

func TestFormatETA(t *testing.T) {
	if got, want := FormatETA(4.26), "ETA: 4.3s"; got != want {
		t.Errorf("Want: %q, Got: %q\n", want, got)
	}
	if got, want := FormatETA(0), "ETA: 0.0s"; got != want {
		t.Errorf("Want: %q, Got: %q\n", want, got)
	}
}

func TestStatisticsThroughput(t *testing.T) {
	st := Statistics{Total: 100, Current: 50, Elapsed: 5 * time.Second}
	if got := st.Throughput(); got != 10 {
		t.Errorf("Want: %v, Got: %v\n", 10.0, got)
	}
	if got := st.ETA(); got != 5 {
		t.Errorf("Want: %v, Got: %v\n", 5.0, got)
	}
	st.Speed = 25
	if got := st.Throughput(); got != 25 {
		t.Errorf("Want: %v, Got: %v\n", 25.0, got)
	}
	if got := st.ETA(); got != 2 {
		t.Errorf("Want: %v, Got: %v\n", 2.0, got)
	}
	if got := st.Percent(); got != 50 {
		t.Errorf("Want: %d, Got: %d\n", 50, got)
	}
}
