package demo_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"primers/internal/demo"
)

func run(t *testing.T, name string, opts demo.Options) string {
	t.Helper()
	d, ok := demo.Lookup(name)
	require.True(t, ok, "demo %q", name)
	var sb strings.Builder
	require.NoError(t, d.Run(&sb, opts))
	return sb.String()
}

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{"compound", "primitives", "variables"}, demo.Names())

	all := demo.All()
	require.Len(t, all, 3)
	for _, d := range all {
		assert.NotEmpty(t, d.Summary, d.Name)
	}

	_, ok := demo.Lookup("pointers")
	assert.False(t, ok)
}

func TestPrimitives(t *testing.T) {
	out := run(t, "primitives", demo.Options{})

	for _, want := range []string{
		"Primitive Data Types in Go",
		"int8:    -128",
		"int64:   -9223372036854775808",
		"uint64:  18446744073709551615",
		"big.Int: 170141183460469231731687303715884105727 (2^127 - 1)",
		"big.Int: 340282366920938463463374607431768211455 (2^128 - 1)",
		"Typed values: 42 (uint8), 100 (int32), 1000000 (uint64)",
		"Hexadecimal (0xff): 255",
		"Octal (0o77): 63",
		"Binary (0b1111_0000): 240",
		"Byte literal (byte('A')): 65",
		"float32: 3.14159",
		"true AND false: false",
		"true OR false: true",
		"NOT true: false",
		"Newline escape: '\\n'",
		"Chinese: 中",
		"Rune 'G' is int32 71",
		"Subtraction: 95.5 - 4.3 = 91.2",
		"Truncated division: -5 / 3 = -1",
		"Remainder: 43 % 5 = 3",
		"int8:    min = -128, max = 127",
		"uint32:  min = 0, max = 4294967295",
		"float32 to int32: 3.7 -> 3 (truncated)",
		"int32 to float64: 100 -> 100",
		"uint8(255) + 1 (wrapping): 0",
		"uint8(255) + 1 (checked): 0, ok = false",
		"uint8(255) + 1 (saturating): 255",
		"bits.Add64(MaxUint64, 1): sum = 0, carry = 1",
		"End of Primitive Data Types Demo",
	} {
		assert.Contains(t, out, want)
	}
}

func TestPrimitives_Brief(t *testing.T) {
	out := run(t, "primitives", demo.Options{Brief: true})

	assert.Contains(t, out, "Signed Integer: -5")
	assert.Contains(t, out, "Unsigned Integer: 100")
	assert.Contains(t, out, "Boolean: true")
	assert.Contains(t, out, "Float: 3.14")
	assert.Contains(t, out, "Rune: G")
	assert.NotContains(t, out, "INTEGER TYPES")
}

func TestCompound(t *testing.T) {
	out := run(t, "compound", demo.Options{})

	for _, want := range []string{
		"Struct: {Name1:Alice Name2:Bob Age:30 Height:5.5 IsStudent:false}",
		"Name1: Alice, Name2: Bob, Age: 30, Height: 5.5, Is Student: false",
		"Multiple return values: Alice, 30",
		"Array: [1 2 3 4 5]",
		"Type: [5]int32, length: 5",
		`Words: ["Go" "is" "awesome"]`,
		"Third word: awesome",
		"Arrays are values: copy [100 2 3 4 5], original [1 2 3 4 5]",
		"Slice1 of numbers: [2 3 4]",
		"Slice2 of numbers: [1 2]",
		"Slice3 of numbers: [3 4 5]",
		"Slice4 of numbers: [1 2 3 4 5]",
		"Slice5 of person name1: ['A' 'l' 'i' 'c' 'e']",
		"len(slice1) = 3, cap(slice1) = 4",
		"Appended to a copy: [1 2 10 20] (array unchanged: [1 2 3 4 5])",
		"Slices share their array: view [42 3], array [1 42 3 4 5]",
		"Greeting: Hello, World!",
		"Greeting slice: Hello",
		"Mutable String: Mutable String - Now I can change it!",
		`"héllo" has 6 bytes and 5 runes`,
	} {
		assert.Contains(t, out, want)
	}
}

func TestVariables(t *testing.T) {
	out := run(t, "variables", demo.Options{})

	assert.Contains(t, out, "The value of x is: 5\nThe value of x is: 6\n")
	assert.Contains(t, out, "Three hours in seconds is: 10800")
	assert.Contains(t, out, "The value of y after first shadowing is: 6")
	assert.Contains(t, out, "The value of y in the inner scope is: 12")
	assert.Contains(t, out, "The value of y in the outer scope is: 6")
	assert.Contains(t, out, "The original y is untouched: 5")
	assert.Contains(t, out, "The value of spaces is: '   '")
	assert.Contains(t, out, "Type of spaces before shadowing: string")
	assert.Contains(t, out, "The length of spaces is: 3")
	assert.Contains(t, out, "Type of spaces after shadowing: int")
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRun_ReportsWriteError(t *testing.T) {
	d, ok := demo.Lookup("variables")
	require.True(t, ok)
	assert.EqualError(t, d.Run(brokenWriter{}, demo.Options{}), "closed")
}
