package clikit

import "github.com/vbauerster/clikit/decor"

// BarOption is a func option to alter default behavior of a bar.
type BarOption func(*bState)

// BarWidth sets bar width independent of the registry.
func BarWidth(width int) BarOption {
	return func(s *bState) {
		if width > 0 {
			s.width = width
		}
	}
}

// BarStyle sets custom bar style, default one is "[=> ]".
//
//	'[' left bound rune
//
//	'=' fill rune
//
//	'>' tip rune, drawn right after fill until the bar is full
//
//	' ' padding rune
//
//	']' right bound rune
//
// Style must be exactly five runes, otherwise it is ignored.
func BarStyle(style string) BarOption {
	return func(s *bState) {
		if validStyle(style) {
			s.style = style
		}
	}
}

// BarMessage sets initial message.
func BarMessage(message string) BarOption {
	return func(s *bState) {
		s.message = message
	}
}

// BarFinishMessage overrides registry's default finish message.
func BarFinishMessage(message string) BarOption {
	return func(s *bState) {
		s.finish = message
	}
}

// BarEwmaSpeed estimates speed with exponentially weighted moving average.
// Zero age means ewma.AVG_METRIC_AGE.
func BarEwmaSpeed(age float64) BarOption {
	return BarMovingAverage(decor.NewEwma(age))
}

// BarMovingAverage estimates speed with provided MovingAverage. Each update
// feeds it with units per second observed since previous update.
func BarMovingAverage(average decor.MovingAverage) BarOption {
	return func(s *bState) {
		s.average = average
	}
}

// BarBytesUnit prints counters and speed in IEC byte units.
func BarBytesUnit() BarOption {
	return func(s *bState) {
		s.unit = decor.UnitBytes
	}
}

// BarOptOnCond returns option when condition evaluates to true.
func BarOptOnCond(option BarOption, condition func() bool) BarOption {
	if condition() {
		return option
	}
	return nil
}
