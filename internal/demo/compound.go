package demo

import "strings"

// person groups values of different types the way a tuple would.
type person struct {
	Name1     string
	Name2     string
	Age       int32
	Height    float64
	IsStudent bool
}

// nameAndAge returns two values at once; Go's closest thing to returning a tuple.
func nameAndAge(p person) (string, int32) { return p.Name1, p.Age }

func compound(p *Printer, _ Options) {
	p.Title("Compound Data Types in Go")

	p.Section("STRUCTS AS TUPLES")
	alice := person{"Alice", "Bob", 30, 5.5, false}
	p.Printf("Struct: %+v\n", alice)
	p.Printf("Name1: %s, Name2: %s, Age: %d, Height: %v, Is Student: %t\n",
		alice.Name1, alice.Name2, alice.Age, alice.Height, alice.IsStudent)
	name, age := nameAndAge(alice)
	p.Printf("Multiple return values: %s, %d\n", name, age)

	p.Section("ARRAYS")
	numbers := [5]int32{1, 2, 3, 4, 5}
	p.Printf("Array: %v\n", numbers)
	p.Printf("Type: %T, length: %d\n", numbers, len(numbers))

	words := [...]string{"Go", "is", "awesome"}
	p.Printf("Words: %q\n", words)
	p.Printf("First word: %s\n", words[0])
	p.Printf("Second word: %s\n", words[1])
	p.Printf("Third word: %s\n", words[2])

	copied := numbers
	copied[0] = 100
	p.Printf("Arrays are values: copy %v, original %v\n", copied, numbers)

	p.Section("SLICES")
	slice1 := numbers[1:4]
	slice2 := numbers[0:2]
	slice3 := numbers[2:]
	slice4 := numbers[:]
	slice5 := []rune(alice.Name1)
	slice6 := []rune(alice.Name2)
	p.Printf("Slice1 of numbers: %v\n", slice1)
	p.Printf("Slice2 of numbers: %v\n", slice2)
	p.Printf("Slice3 of numbers: %v\n", slice3)
	p.Printf("Slice4 of numbers: %v\n", slice4)
	p.Printf("Slice5 of person name1: %q\n", slice5)
	p.Printf("Slice6 of person name2: %q\n", slice6)
	p.Printf("len(slice1) = %d, cap(slice1) = %d\n", len(slice1), cap(slice1))

	grown := append([]int32(nil), slice2...)
	grown = append(grown, 10, 20)
	p.Printf("Appended to a copy: %v (array unchanged: %v)\n", grown, numbers)

	shared := numbers
	view := shared[1:3]
	view[0] = 42
	p.Printf("Slices share their array: view %v, array %v\n", view, shared)

	p.Section("STRINGS")
	var sb strings.Builder
	sb.WriteString("Hello, ")
	sb.WriteString("World!")
	greeting := sb.String()
	p.Printf("Greeting: %s\n", greeting)

	// Slicing a string yields another immutable string sharing the bytes.
	greetingSlice := greeting[:5]
	p.Printf("Greeting slice: %s\n", greetingSlice)

	mutable := "Mutable String"
	mutable += " - Now I can change it!"
	p.Printf("Mutable String: %s\n", mutable)

	gopher := "héllo"
	p.Printf("%q has %d bytes and %d runes\n", gopher, len(gopher), len([]rune(gopher)))
}
