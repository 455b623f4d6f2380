package main

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"

	"memlab/domain/sequence"
	"memlab/service/patterns"
)

func main() {
	out := termenv.NewOutput(os.Stdout)
	header := func(title string) {
		fmt.Println(out.String("=== " + title + " ===").Bold().Foreground(termenv.ANSICyan))
	}

	fmt.Println(out.String("Memory Management Demonstration").Bold())
	fmt.Println(out.String("================================").Bold())
	fmt.Println()

	// ---------------- Ownership ----------------

	header("Ownership Example")
	vec := patterns.Ownership()
	fmt.Printf("Vector: %v\n\n", vec)

	// ---------------- Borrowing ----------------

	header("Borrowing Example")
	front, back, data := patterns.Borrowing()
	fmt.Printf("Slice1: %v, Slice2: %v\n", front, back)
	fmt.Printf("Modified data: %v\n\n", data)

	// ---------------- Shared ownership ----------------

	header("Shared Ownership Example")
	values, refs := patterns.SharedOwnership()
	fmt.Printf("Shared data: %v\n", values)
	fmt.Printf("Reference count: %d\n\n", refs)

	// ---------------- Zero-cost transform ----------------

	header("Zero-Cost Abstractions")
	sum := patterns.ZeroCostTransform(sequence.Of(1, 2, 3, 4, 5))
	fmt.Printf("Sum of squares of even numbers: %d\n\n", sum)

	// ---------------- Summary ----------------

	fmt.Println("Key Features:")
	fmt.Println("- Exclusive ownership with explicit hand-off")
	fmt.Println("- Read-only views consumed before mutation")
	fmt.Println("- Reference-counted shared state with observable counts")
	fmt.Println("- Composable filter/map/reduce pipelines")
}
