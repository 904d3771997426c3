package demo

import (
	"math"
	"math/big"
	"math/bits"
	"strconv"
	"unsafe"
)

func primitives(p *Printer, opts Options) {
	if opts.Brief {
		primitivesBrief(p)
		return
	}

	p.Title("Primitive Data Types in Go")

	p.Section("INTEGER TYPES")
	var (
		i8  int8  = math.MinInt8
		i16 int16 = math.MinInt16
		i32 int32 = -5
		i64 int64 = math.MinInt64
		n   int   = -1000

		u8  uint8  = math.MaxUint8
		u16 uint16 = math.MaxUint16
		u32 uint32 = 100
		u64 uint64 = math.MaxUint64
		un  uint   = 1000
	)
	// No 128-bit integers; math/big covers the gap.
	i128 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	u128 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

	p.Println("Signed integers:")
	p.Printf("  int8:    %d\n", i8)
	p.Printf("  int16:   %d\n", i16)
	p.Printf("  int32:   %d\n", i32)
	p.Printf("  int64:   %d\n", i64)
	p.Printf("  big.Int: %s (2^127 - 1)\n", i128)
	p.Printf("  int:     %d\n", n)

	p.Println()
	p.Println("Unsigned integers:")
	p.Printf("  uint8:   %d\n", u8)
	p.Printf("  uint16:  %d\n", u16)
	p.Printf("  uint32:  %d\n", u32)
	p.Printf("  uint64:  %d\n", u64)
	p.Printf("  big.Int: %s (2^128 - 1)\n", u128)
	p.Printf("  uint:    %d\n", un)

	p.Println()
	p.Println("Platform-sized integers:")
	p.Printf("  int/uint: %d bits\n", strconv.IntSize)
	p.Printf("  uintptr:  %d bytes\n", unsafe.Sizeof(uintptr(0)))

	p.Section("TYPED CONSTANTS")
	x := uint8(42)
	y := int32(100)
	z := uint64(1_000_000)
	p.Printf("Typed values: %d (%T), %d (%T), %d (%T)\n", x, x, y, y, z, z)

	p.Section("NUMBER LITERAL FORMATS")
	decimal := 98_222
	hex := 0xff
	octal := 0o77
	binary := 0b1111_0000
	var b byte = 'A'
	p.Printf("Decimal: %d\n", decimal)
	p.Printf("Hexadecimal (0xff): %d\n", hex)
	p.Printf("Octal (0o77): %d\n", octal)
	p.Printf("Binary (0b1111_0000): %d\n", binary)
	p.Printf("Byte literal (byte('A')): %d\n", b)

	p.Section("FLOATING-POINT TYPES")
	var f32 float32 = 3.14159
	f64 := 2.718281828459045
	converted := float32(98.6)
	p.Printf("float32: %v\n", f32)
	p.Printf("float64: %v\n", f64)
	p.Printf("float32 by conversion: %v\n", converted)

	p.Section("BOOLEAN TYPE")
	t, f := true, false
	p.Printf("true: %t\n", t)
	p.Printf("false: %t\n", f)
	p.Printf("true AND false: %t\n", t && f)
	p.Printf("true OR false: %t\n", t || f)
	p.Printf("NOT true: %t\n", !t)

	p.Section("RUNE TYPE")
	ascii := 'G'
	emoji := '🐹'
	cjk := '中'
	infinity := '∞'
	newline := '\n'
	smile := '\U0001F60A'
	p.Printf("ASCII: %c\n", ascii)
	p.Printf("Emoji: %c\n", emoji)
	p.Printf("Chinese: %c\n", cjk)
	p.Printf("Math symbol: %c\n", infinity)
	p.Printf("Newline escape: %q\n", newline)
	p.Printf("Unicode escape: %c\n", smile)
	p.Printf("Rune %q is %T %d\n", ascii, ascii, ascii)

	p.Section("NUMERIC OPERATIONS")
	sum := 5 + 10
	difference := 95.5 - 4.3
	product := 4 * 30
	quotient := 56.7 / 32.2
	num, den := -5, 3
	truncated := num / den
	remainder := 43 % 5
	p.Printf("Addition: 5 + 10 = %d\n", sum)
	p.Printf("Subtraction: 95.5 - 4.3 = %v\n", difference)
	p.Printf("Multiplication: 4 * 30 = %d\n", product)
	p.Printf("Division: 56.7 / 32.2 = %v\n", quotient)
	p.Printf("Truncated division: -5 / 3 = %d\n", truncated)
	p.Printf("Remainder: 43 %% 5 = %d\n", remainder)

	p.Section("TYPE BOUNDS (MIN/MAX VALUES)")
	p.Printf("int8:    min = %d, max = %d\n", math.MinInt8, math.MaxInt8)
	p.Printf("uint8:   min = %d, max = %d\n", 0, math.MaxUint8)
	p.Printf("int32:   min = %d, max = %d\n", math.MinInt32, math.MaxInt32)
	p.Printf("uint32:  min = %d, max = %d\n", 0, uint32(math.MaxUint32))
	p.Printf("float32: min = %v, max = %v\n", float32(-math.MaxFloat32), float32(math.MaxFloat32))
	p.Printf("float64: min = %v, max = %v\n", -math.MaxFloat64, math.MaxFloat64)

	p.Section("TYPE CONVERSION")
	a := float32(3.7)
	ai := int32(a)
	c := int32(100)
	cf := float64(c)
	p.Printf("float32 to int32: %v -> %d (truncated)\n", a, ai)
	p.Printf("int32 to float64: %d -> %v\n", c, cf)

	p.Section("INTEGER OVERFLOW")
	p.Println("Constant expressions that overflow do not compile")
	p.Println("At run time, integer arithmetic wraps around (2's complement)")
	p.Println("Check explicitly, or use math/bits, when wrapping is not wanted")

	maxU8 := uint8(math.MaxUint8)
	wrapped := maxU8 + 1
	checked, ok := checkedAddUint8(maxU8, 1)
	saturated := saturatingAddUint8(maxU8, 1)
	p.Printf("uint8(255) + 1 (wrapping): %d\n", wrapped)
	p.Printf("uint8(255) + 1 (checked): %d, ok = %t\n", checked, ok)
	p.Printf("uint8(255) + 1 (saturating): %d\n", saturated)
	carrySum, carry := bits.Add64(math.MaxUint64, 1, 0)
	p.Printf("bits.Add64(MaxUint64, 1): sum = %d, carry = %d\n", carrySum, carry)

	p.Println()
	p.Title("End of Primitive Data Types Demo")
}

func primitivesBrief(p *Printer) {
	p.Title("Data Types in Go")

	var (
		i int32   = -5
		u uint64  = 100
		b bool    = true
		f float64 = 3.14
		r rune    = 'G'
	)
	p.Printf("Signed Integer: %d\n", i)
	p.Printf("Unsigned Integer: %d\n", u)
	p.Printf("Boolean: %t\n", b)
	p.Printf("Float: %v\n", f)
	p.Printf("Rune: %c\n", r)
}

// checkedAddUint8 reports ok = false when a+b does not fit.
func checkedAddUint8(a, b uint8) (uint8, bool) {
	s := a + b
	return s, s >= a
}

// saturatingAddUint8 clamps a+b to the type's maximum.
func saturatingAddUint8(a, b uint8) uint8 {
	if s, ok := checkedAddUint8(a, b); ok {
		return s
	}
	return math.MaxUint8
}
