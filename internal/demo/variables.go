package demo

const threeHoursInSeconds = 3 * 60 * 60

func variables(p *Printer, _ Options) {
	p.Println("Variables and Reassignment Example:")
	x := 5
	p.Printf("The value of x is: %d\n", x)
	x = 6
	p.Printf("The value of x is: %d\n", x)

	p.Println()
	p.Println("Constants Example:")
	p.Printf("Three hours in seconds is: %d\n", threeHoursInSeconds)

	p.Println()
	p.Println("Shadowing Example:")
	y := 5
	p.Printf("The value of y before shadowing is: %d\n", y)
	{
		y := y + 1
		p.Printf("The value of y after first shadowing is: %d\n", y)
		{
			y := y * 2
			p.Printf("The value of y in the inner scope is: %d\n", y)
		}
		p.Printf("The value of y in the outer scope is: %d\n", y)
	}
	p.Printf("The original y is untouched: %d\n", y)

	p.Println()
	p.Println("Shadowing with Different Types Example:")
	spaces := "   "
	p.Printf("The value of spaces is: '%s'\n", spaces)
	p.Printf("Type of spaces before shadowing: %T\n", spaces)
	{
		spaces := len(spaces)
		p.Printf("The length of spaces is: %d\n", spaces)
		p.Printf("Type of spaces after shadowing: %T\n", spaces)
	}
}
