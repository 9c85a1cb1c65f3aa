package colormap

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/colorize/pkg/errors"
)

func approxColor(t *testing.T, got, want colorful.Color, what string) {
	t.Helper()
	const eps = 1e-9
	if math.Abs(got.R-want.R) > eps || math.Abs(got.G-want.G) > eps || math.Abs(got.B-want.B) > eps {
		t.Errorf("%s = %+v, want %+v", what, got, want)
	}
}

func TestLinearEndpoints(t *testing.T) {
	black := colorful.Color{}
	red := colorful.Color{R: 1}

	m, err := NewLinearFromColors("test", black, red)
	if err != nil {
		t.Fatalf("NewLinearFromColors: %v", err)
	}

	approxColor(t, m.At(0), black, "At(0)")
	approxColor(t, m.At(1), red, "At(1)")
	approxColor(t, m.At(0.5), colorful.Color{R: 0.5}, "At(0.5)")

	// Out of range and NaN clamp instead of failing.
	approxColor(t, m.At(-3), black, "At(-3)")
	approxColor(t, m.At(7), red, "At(7)")
	approxColor(t, m.At(math.NaN()), black, "At(NaN)")
}

func TestLinearStops(t *testing.T) {
	stops := []Stop{
		{Pos: 1, Color: colorful.Color{R: 1, G: 1, B: 1}},
		{Pos: 0, Color: colorful.Color{}},
		{Pos: 0.25, Color: colorful.Color{B: 1}},
	}
	m, err := NewLinear("anchored", stops)
	if err != nil {
		t.Fatalf("NewLinear: %v", err)
	}

	// Stops are sorted by position at construction.
	approxColor(t, m.At(0.25), colorful.Color{B: 1}, "At(0.25)")
	approxColor(t, m.At(0.125), colorful.Color{B: 0.5}, "At(0.125)")
}

func TestLinearClampsOutsideStops(t *testing.T) {
	// Keypoints covering only part of [0, 1]: values outside clamp to the
	// nearest stop's color rather than wrapping.
	red := colorful.Color{R: 1}
	blue := colorful.Color{B: 1}
	m, err := NewLinear("partial", []Stop{
		{Pos: 0.4, Color: red},
		{Pos: 1, Color: blue},
	})
	if err != nil {
		t.Fatalf("NewLinear: %v", err)
	}

	approxColor(t, m.At(0.1), red, "At(0.1)")
	approxColor(t, m.At(0), red, "At(0)")
	approxColor(t, m.At(0.4), red, "At(0.4)")
	approxColor(t, m.At(1), blue, "At(1)")

	below, err := NewLinear("low", []Stop{
		{Pos: 0, Color: red},
		{Pos: 0.6, Color: blue},
	})
	if err != nil {
		t.Fatalf("NewLinear: %v", err)
	}
	approxColor(t, below.At(0.9), blue, "At(0.9)")
}

func TestLinearErrors(t *testing.T) {
	if _, err := NewLinearFromColors("short", colorful.Color{}); err == nil {
		t.Errorf("NewLinearFromColors with 1 color succeeded, want error")
	}
	stops := []Stop{{Pos: -0.5, Color: colorful.Color{}}, {Pos: 1, Color: colorful.Color{}}}
	if _, err := NewLinear("bad", stops); err == nil {
		t.Errorf("NewLinear with out-of-range stop succeeded, want error")
	}
}

func TestListedLookup(t *testing.T) {
	r := colorful.Color{R: 1}
	g := colorful.Color{G: 1}
	b := colorful.Color{B: 1}
	m, err := NewListed("tri", r, g, b)
	if err != nil {
		t.Fatalf("NewListed: %v", err)
	}

	tests := []struct {
		v    float64
		want colorful.Color
	}{
		{0, r},
		{0.2, r},
		{0.4, g},
		{0.7, b},
		{1, b},    // upper edge selects the last entry
		{-0.5, r}, // clamped
		{2, b},    // clamped
	}
	for _, tt := range tests {
		approxColor(t, m.At(tt.v), tt.want, "At")
	}

	if m.Len() != 3 {
		t.Errorf("Len() = %d, want 3", m.Len())
	}
	got := m.Colors()
	if len(got) != 3 || got[1] != g {
		t.Errorf("Colors() = %v, want order preserved", got)
	}
}

func TestRamp(t *testing.T) {
	target := colorful.Color{R: 0.2, G: 0.4, B: 0.8}
	ramp := Ramp(target)

	approxColor(t, ramp.At(0), colorful.Color{}, "Ramp.At(0)")
	approxColor(t, ramp.At(1), target, "Ramp.At(1)")
	approxColor(t, ramp.At(0.5), colorful.Color{R: 0.1, G: 0.2, B: 0.4}, "Ramp.At(0.5)")
}

func TestRegistry(t *testing.T) {
	for _, name := range []string{"rainbow", "gray", "jet", "viridis", "Viridis"} {
		if _, err := Get(name); err != nil {
			t.Errorf("Get(%q): %v", name, err)
		}
	}

	_, err := Get("no-such-map")
	if err == nil {
		t.Fatalf("Get(no-such-map) succeeded, want error")
	}
	if !errors.Is(err, errors.ErrCodeInvalidScheme) {
		t.Errorf("Get(no-such-map) code = %v, want INVALID_SCHEME", errors.GetCode(err))
	}

	custom, _ := NewLinearFromColors("custom-test", colorful.Color{}, colorful.Color{R: 1})
	Register(custom)
	if _, err := Get("CUSTOM-TEST"); err != nil {
		t.Errorf("Get after Register: %v", err)
	}
}

func TestGrayMidpoint(t *testing.T) {
	m, err := Get("gray")
	if err != nil {
		t.Fatalf("Get(gray): %v", err)
	}
	c := m.At(0.5)
	if math.Abs(c.R-c.G) > 1e-9 || math.Abs(c.G-c.B) > 1e-9 {
		t.Errorf("gray At(0.5) = %+v, want equal components", c)
	}
	if c.R < 0.45 || c.R > 0.55 {
		t.Errorf("gray At(0.5) R = %v, want about 0.5", c.R)
	}
}
