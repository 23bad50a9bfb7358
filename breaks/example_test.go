package breaks_test

import (
	"fmt"

	"github.com/katalvlaran/classbreak/breaks"
)

// ExampleGenerate resolves a method by name and splits a sample into
// equal-width classes.
func ExampleGenerate() {
	m, err := breaks.ParseMethod("equidistant", 5, 0)
	if err != nil {
		panic(err)
	}
	s, err := breaks.NewSample([]float64{0, 12, 55, 100, 73})
	if err != nil {
		panic(err)
	}
	b, err := breaks.Generate(m, s)
	if err != nil {
		panic(err)
	}
	fmt.Println(m.ShortName(), b)
	// Output: equidistant_5cats [0 20 40 60 80 100]
}

// ExampleWeberFechnerBreaks shows the perceptual progression closing on max.
func ExampleWeberFechnerBreaks() {
	b, _ := breaks.WeberFechnerBreaks(2, 5, 0, 1)
	fmt.Println(b)
	// Output: [0 0.0625 0.125 0.25 0.5 1]
}
