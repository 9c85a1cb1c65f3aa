package colorize_test

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/colorize/pkg/colorize"
	"github.com/matzehuels/colorize/pkg/narray"
)

func ExampleColorizer_Transform() {
	// A 2x2 image with three channels: pure red top-left, pure blue
	// bottom-right.
	img, _ := narray.FromData([]float64{
		1, 0, 0, 0, // R channel
		0, 0, 0, 0, // G channel
		0, 0, 0, 1, // B channel
	}, 3, 2, 2)

	c := colorize.New(colorize.RGB())
	out, _ := c.Transform(img)

	fmt.Println("Shape:", out.Shape())
	fmt.Println("Top-left:", out.At(0, 0, 0), out.At(0, 0, 1), out.At(0, 0, 2))
	// Output:
	// Shape: [2 2 3]
	// Top-left: 1 0 0
}

func ExampleNamed() {
	s, _ := colorize.Named("viridis")
	fmt.Println("Kind:", s.Kind())
	fmt.Println("Name:", s)

	_, err := colorize.Named("no-such-scheme")
	fmt.Println("Unknown:", err != nil)
	// Output:
	// Kind: colormap
	// Name: viridis
	// Unknown: true
}

func ExampleColorizer_TransformWith() {
	// Colormap lookup on a scalar field, with a mask that darkens the
	// second column entirely.
	img, _ := narray.FromData([]float64{0, 1, 0.5, 1}, 2, 2)
	mask, _ := narray.FromData([]float64{1, 0, 1, 0}, 2, 2)

	s, _ := colorize.Named("gray")
	c := colorize.New(s)
	out, _ := c.TransformWith(img, colorize.TransformOptions{Mask: mask})

	fmt.Println("Unmasked max:", out.At(1, 0, 0))
	fmt.Println("Masked value:", out.At(0, 1, 0))
	// Output:
	// Unmasked max: 0.5
	// Masked value: 0
}

func ExampleIndexed() {
	// Two channels, each assigned its own color. The output combines the
	// per-channel ramps with a componentwise maximum.
	img, _ := narray.FromData([]float64{
		1, 0, 0, 0,
		0, 0, 0, 1,
	}, 2, 2, 2)

	c := colorize.New(colorize.Indexed(
		colorful.Color{R: 1},
		colorful.Color{G: 1},
	))
	out, _ := c.Transform(img)

	fmt.Println("First channel pixel:", out.At(0, 0, 0), out.At(0, 0, 1))
	fmt.Println("Second channel pixel:", out.At(1, 1, 0), out.At(1, 1, 1))
	// Output:
	// First channel pixel: 1 0
	// Second channel pixel: 0 1
}
