// SPDX-License-Identifier: MIT

package polyset

import (
	"fmt"
	"io"

	"github.com/pilpsolver/pilp/bigrat"
)

// Printer formats integers, strings and bigrat.Val for diagnostic output
// (§6.4). It is the module's one value-formatting seam (cmd/pilp, which
// reads problem files, is its caller); nothing on the solve path depends
// on it.
type Printer struct {
	w io.Writer
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer) *Printer { return &Printer{w: w} }

// PrintVal writes v's canonical textual form (see bigrat.Val.String).
func (p *Printer) PrintVal(v bigrat.Val) error {
	_, err := fmt.Fprint(p.w, v.String())
	return err
}

// PrintString writes s verbatim.
func (p *Printer) PrintString(s string) error {
	_, err := fmt.Fprint(p.w, s)
	return err
}

// Printf writes a formatted diagnostic line, a thin convenience over
// fmt.Fprintf kept here so every diagnostic write in the module funnels
// through one seam.
func (p *Printer) Printf(format string, args ...any) error {
	_, err := fmt.Fprintf(p.w, format, args...)
	return err
}
