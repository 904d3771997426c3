package demo

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes demo output and remembers the first write error.
type Printer struct {
	w       io.Writer
	title   lipgloss.Style
	section lipgloss.Style
	err     error
}

// NewPrinter returns a Printer whose styles follow w's terminal capabilities.
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:       w,
		title:   r.NewStyle().Bold(true),
		section: r.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
	}
}

func (p *Printer) Printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) Println(args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, args...)
}

// Title prints a demo banner.
func (p *Printer) Title(s string) {
	p.Println(p.title.Render("=== " + s + " ==="))
}

// Section prints a section heading preceded by a blank line.
func (p *Printer) Section(s string) {
	p.Println()
	p.Println(p.section.Render("--- " + s + " ---"))
}

// Err is the first error hit while writing.
func (p *Printer) Err() error { return p.err }
