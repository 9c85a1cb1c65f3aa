package colormap_test

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/colorize/pkg/colormap"
)

func ExampleGet() {
	cm, _ := colormap.Get("gray")
	fmt.Println("Name:", cm.Name())
	fmt.Println("At 0:", cm.At(0).Hex())
	fmt.Println("At 1:", cm.At(1).Hex())
	// Output:
	// Name: gray
	// At 0: #000000
	// At 1: #ffffff
}

func ExampleNewLinearFromColors() {
	cm, _ := colormap.NewLinearFromColors("bw",
		colorful.Color{},
		colorful.Color{R: 1, G: 1, B: 1},
	)
	fmt.Println("Midpoint:", cm.At(0.5).Hex())
	// Output:
	// Midpoint: #808080
}

func ExampleNewListed() {
	cm, _ := colormap.NewListed("traffic",
		colorful.Color{R: 1},
		colorful.Color{R: 1, G: 1},
		colorful.Color{G: 1},
	)
	fmt.Println("First bin:", cm.At(0.1).Hex())
	fmt.Println("Last bin:", cm.At(0.9).Hex())
	// Output:
	// First bin: #ff0000
	// Last bin: #00ff00
}
