package demo

import (
	"io"
	"sort"
)

// Options tweak how a demo runs.
type Options struct {
	Brief bool // short variant, where the demo has one
}

// Demo is a named walkthrough.
type Demo struct {
	Name    string
	Summary string
	run     func(p *Printer, opts Options)
}

// Run writes the demo to w.
func (d Demo) Run(w io.Writer, opts Options) error {
	p := NewPrinter(w)
	d.run(p, opts)
	return p.Err()
}

var registry = []Demo{
	{Name: "variables", Summary: "Reassignment, constants and shadowing", run: variables},
	{Name: "primitives", Summary: "Integers, floats, booleans, runes and conversions", run: primitives},
	{Name: "compound", Summary: "Structs as tuples, arrays, slices and strings", run: compound},
}

// All returns every demo in menu order.
func All() []Demo {
	out := make([]Demo, len(registry))
	copy(out, registry)
	return out
}

// Names returns the demo names sorted alphabetically.
func Names() []string {
	names := make([]string, 0, len(registry))
	for _, d := range registry {
		names = append(names, d.Name)
	}
	sort.Strings(names)
	return names
}

// Lookup finds a demo by name.
func Lookup(name string) (Demo, bool) {
	for _, d := range registry {
		if d.Name == name {
			return d, true
		}
	}
	return Demo{}, false
}
