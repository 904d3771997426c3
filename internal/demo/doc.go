// Package demo holds the data-type walkthroughs: short programs that print
// literals, conversions and composite values one line at a time.
//
// Each Demo is registered by name; All lists them in menu order and Lookup
// finds one by name. Demos write through a Printer so headings can be
// styled when the output is a terminal and stay plain otherwise.
package demo
