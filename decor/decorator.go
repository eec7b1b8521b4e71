package decor

import "time"

// Statistics is a snapshot of a single bar.
type Statistics struct {
	Total    uint64
	Current  uint64
	Width    int
	Message  string
	Elapsed  time.Duration
	Finished bool
	// Speed in units per second. Zero means derive from Current and Elapsed.
	Speed float64
}

// Percent shorthand for CalcPercentage(s.Total, s.Current).
func (s Statistics) Percent() int {
	return CalcPercentage(s.Total, s.Current)
}

// Throughput returns s.Speed if set, otherwise average speed since start.
func (s Statistics) Throughput() float64 {
	if s.Speed > 0 {
		return s.Speed
	}
	return CalcSpeed(s.Current, s.Elapsed)
}

// ETA returns remaining seconds at current throughput.
func (s Statistics) ETA() float64 {
	return CalcETA(s.Total, s.Current, s.Throughput())
}
