/*
Package decor contains the render math used by "github.com/vbauerster/clikit"
progress bars: percentage, fill width, throughput, ETA and their text forms.

All functions are pure. They never look at the clock and never lock, so a
Statistics snapshot taken under a bar's lock can be turned into text after
the fact.
*/
package decor
