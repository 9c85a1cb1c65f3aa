package colormap

import (
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/colorize/pkg/errors"
)

// Colormap maps a normalized value in [0, 1] onto a color. Implementations
// must clamp out-of-range values rather than fail, and treat NaN as 0.
type Colormap interface {
	// Name returns the colormap's registry name.
	Name() string
	// At returns the color for a value in [0, 1].
	At(v float64) colorful.Color
}

// Stop is a gradient keypoint: a color anchored at a position in [0, 1].
type Stop struct {
	Pos   float64
	Color colorful.Color
}

// Linear is a continuous colormap interpolating linearly in RGB between
// ordered keypoints. Construct with [NewLinear] or [NewLinearFromColors].
type Linear struct {
	name  string
	stops []Stop
}

// NewLinear builds a gradient colormap from keypoints. Stops are sorted by
// position; at least two are required and positions must lie in [0, 1].
func NewLinear(name string, stops []Stop) (*Linear, error) {
	if len(stops) < 2 {
		return nil, errors.New(errors.ErrCodeInvalidConfig,
			"colormap %q needs at least 2 stops, got %d", name, len(stops))
	}
	sorted := append([]Stop(nil), stops...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Pos < sorted[j].Pos })
	for _, s := range sorted {
		if s.Pos < 0 || s.Pos > 1 {
			return nil, errors.New(errors.ErrCodeInvalidConfig,
				"colormap %q has stop position %v outside [0, 1]", name, s.Pos)
		}
	}
	return &Linear{name: name, stops: sorted}, nil
}

// NewLinearFromColors builds a gradient with evenly spaced keypoints, the
// equivalent of constructing a segmented colormap from a plain color list.
func NewLinearFromColors(name string, colors ...colorful.Color) (*Linear, error) {
	if len(colors) < 2 {
		return nil, errors.New(errors.ErrCodeInvalidConfig,
			"colormap %q needs at least 2 colors, got %d", name, len(colors))
	}
	stops := make([]Stop, len(colors))
	for i, c := range colors {
		stops[i] = Stop{
			Pos:   float64(i) / float64(len(colors)-1),
			Color: c,
		}
	}
	return &Linear{name: name, stops: stops}, nil
}

// Name returns the colormap's registry name.
func (m *Linear) Name() string { return m.name }

// At returns the RGB-interpolated color for v, clamping v to [0, 1].
func (m *Linear) At(v float64) colorful.Color {
	v = clampUnit(v)
	// Before the first keypoint (only possible when the first stop sits
	// above 0).
	if v < m.stops[0].Pos {
		return m.stops[0].Color
	}
	for i := 0; i < len(m.stops)-1; i++ {
		lo, hi := m.stops[i], m.stops[i+1]
		if v < lo.Pos || v > hi.Pos {
			continue
		}
		if hi.Pos == lo.Pos {
			return lo.Color
		}
		t := (v - lo.Pos) / (hi.Pos - lo.Pos)
		return lo.Color.BlendRgb(hi.Color, t).Clamped()
	}
	// Past the last keypoint (only possible when the last stop sits below 1).
	return m.stops[len(m.stops)-1].Color
}

// Listed is a discrete, order-preserving lookup table. A value v in [0, 1)
// selects entry floor(v*n); v = 1 selects the last entry. Construct with
// [NewListed].
type Listed struct {
	name   string
	colors []colorful.Color
}

// NewListed builds a discrete colormap from an ordered color list.
func NewListed(name string, colors ...colorful.Color) (*Listed, error) {
	if len(colors) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig,
			"colormap %q needs at least 1 color", name)
	}
	return &Listed{name: name, colors: append([]colorful.Color(nil), colors...)}, nil
}

// Name returns the colormap's registry name.
func (m *Listed) Name() string { return m.name }

// Colors returns a copy of the lookup table in order.
func (m *Listed) Colors() []colorful.Color {
	return append([]colorful.Color(nil), m.colors...)
}

// Len returns the number of entries.
func (m *Listed) Len() int { return len(m.colors) }

// At returns the table entry for v, clamping v to [0, 1].
func (m *Listed) At(v float64) colorful.Color {
	v = clampUnit(v)
	i := int(v * float64(len(m.colors)))
	if i >= len(m.colors) {
		i = len(m.colors) - 1
	}
	return m.colors[i]
}

// Ramp returns a black-to-c gradient, the blend target used by the indexed
// color scheme: value 0 maps to black, value 1 to c.
func Ramp(c colorful.Color) *Linear {
	return &Linear{
		name: "ramp",
		stops: []Stop{
			{Pos: 0, Color: colorful.Color{}},
			{Pos: 1, Color: c},
		},
	}
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
