// Package report renders decoded patch records for human consumption.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/mdpcardoso/ribs/record"
)

// Renderer writes one-line record descriptions and patch summaries.
type Renderer struct {
	w      io.Writer
	colors *Colors
}

// New returns a renderer writing to w.  mode decides coloring: ModeAlways
// colors unconditionally, ModeNever not at all, and ModeAuto only when w
// is a terminal.
func New(w io.Writer, mode Mode) *Renderer {
	r := &Renderer{
		w:      w,
		colors: &Colors{Default: colorDefault},
	}
	switch mode {
	case ModeAlways:
		color.NoColor = false
		r.colors = NewColors()
	case ModeAuto:
		if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			r.colors = NewColors()
		}
	}
	return r
}

// Record writes the description of r at 1-based position pos: position,
// hex offset, kind, and the byte count or the fill value and count.
func (rn *Renderer) Record(pos int, r record.Record) {
	c := rn.colors
	k := r.Kind()
	detail := fmt.Sprintf("%d bytes", r.Len())
	if f, ok := r.(*record.Fill); ok {
		detail = fmt.Sprintf("0x%02X x%d", f.Value(), f.Count())
	}
	fmt.Fprintf(rn.w, "%s  %s  %s  %s\n",
		c.Color(k, PosColor, fmt.Sprintf("%4d", pos)),
		c.Color(k, OrgColor, fmt.Sprintf("0x%06X", r.Org())),
		c.Color(k, KindColor, fmt.Sprintf("%-7s", k)),
		c.Color(k, DetailColor, detail))
}

// Summary writes totals for p: record counts by kind, payload bytes, and
// the offset extent the records touch.
func (rn *Renderer) Summary(p record.Patch) {
	fmt.Fprintf(rn.w, "records:  %d (%d literal, %d fill)\n",
		len(p), p.Count(record.KindLiteral), p.Count(record.KindFill))
	fmt.Fprintf(rn.w, "payload:  %d bytes\n", p.Payload())
	lo, hi := p.Extent()
	if hi == 0 {
		fmt.Fprintf(rn.w, "extent:   none\n")
		return
	}
	fmt.Fprintf(rn.w, "extent:   0x%06X..0x%06X\n", lo, hi)
	fmt.Fprintf(rn.w, "requires: %d bytes\n", hi)
}
