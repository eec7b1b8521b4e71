package clikit

import (
	"strings"

	"github.com/vbauerster/clikit/decor"
)

const (
	rLeft = iota
	rFill
	rTip
	rPadding
	rRight
	formatLen
)

type barFiller struct {
	format [formatLen]string
}

func newBarFiller(style string) *barFiller {
	if !validStyle(style) {
		style = rstyle
	}
	f := new(barFiller)
	var i int
	for _, r := range style {
		f.format[i] = string(r)
		i++
	}
	return f
}

// fill draws bounds around exactly width cells of fill, tip and padding.
func (f *barFiller) fill(width, percent int) string {
	filled := decor.CalcFilledWidth(width, percent)
	padding := width - filled

	var sb strings.Builder
	sb.Grow(width + 2)
	sb.WriteString(f.format[rLeft])
	sb.WriteString(strings.Repeat(f.format[rFill], filled))
	if filled < width {
		sb.WriteString(f.format[rTip])
		padding--
	}
	sb.WriteString(strings.Repeat(f.format[rPadding], padding))
	sb.WriteString(f.format[rRight])
	return sb.String()
}
