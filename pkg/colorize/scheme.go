package colorize

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/colorize/pkg/colormap"
	"github.com/matzehuels/colorize/pkg/errors"
)

// Kind identifies a color encoding strategy.
type Kind int

const (
	// KindRGB maps channels 0, 1, 2 directly onto R, G, B.
	KindRGB Kind = iota
	// KindHSV treats channels 0, 1, 2 as hue, saturation, value.
	KindHSV
	// KindPolar encodes a 2-channel vector field as angle (hue) and
	// magnitude (brightness).
	KindPolar
	// KindIndexed blends one black-to-color ramp per channel.
	KindIndexed
	// KindColormap looks a single-channel array up through a colormap.
	KindColormap
)

// String returns the scheme keyword for the kind.
func (k Kind) String() string {
	switch k {
	case KindRGB:
		return "rgb"
	case KindHSV:
		return "hsv"
	case KindPolar:
		return "polar"
	case KindIndexed:
		return "indexed"
	case KindColormap:
		return "colormap"
	}
	return "unknown"
}

// Scheme is a resolved color encoding selector: a kind plus its payload
// (the color list for indexed schemes, the colormap handle for lookup
// schemes). Resolution happens at construction so that Transform never has
// to re-inspect a selector. The zero value is the rgb scheme.
type Scheme struct {
	kind   Kind
	colors []colorful.Color
	cmap   colormap.Colormap
}

// RGB returns the direct channel-to-RGB scheme.
func RGB() Scheme { return Scheme{kind: KindRGB} }

// HSV returns the HSV channel scheme.
func HSV() Scheme { return Scheme{kind: KindHSV} }

// Polar returns the angle/magnitude scheme for 2-channel vector fields.
func Polar() Scheme { return Scheme{kind: KindPolar} }

// Indexed returns the indexed blending scheme with one target color per
// input channel. The color count is checked against the input's channel
// axis at transform time.
func Indexed(colors ...colorful.Color) Scheme {
	return Scheme{kind: KindIndexed, colors: append([]colorful.Color(nil), colors...)}
}

// FromColormap returns a colormap lookup scheme using the given colormap.
func FromColormap(cm colormap.Colormap) Scheme {
	return Scheme{kind: KindColormap, cmap: cm}
}

// Named resolves a string selector: one of the scheme keywords (rgb, hsv,
// polar) or a registered colormap name. The indexed keyword cannot be
// resolved by name because it carries a color list; use [Indexed]. Unknown
// selectors fail with an INVALID_SCHEME error.
func Named(name string) (Scheme, error) {
	switch name {
	case "rgb":
		return RGB(), nil
	case "hsv":
		return HSV(), nil
	case "polar":
		return Polar(), nil
	case "indexed":
		return Scheme{}, errors.New(errors.ErrCodeInvalidScheme,
			"indexed scheme needs a color list; use colorize.Indexed")
	}
	cm, err := colormap.Get(name)
	if err != nil {
		return Scheme{}, err
	}
	return FromColormap(cm), nil
}

// Kind returns the scheme's encoding strategy.
func (s Scheme) Kind() Kind { return s.kind }

// String returns the scheme keyword, or the colormap name for lookup
// schemes.
func (s Scheme) String() string {
	if s.kind == KindColormap && s.cmap != nil {
		return s.cmap.Name()
	}
	return s.kind.String()
}

// multiChannel reports whether the scheme consumes a leading channel axis.
func (s Scheme) multiChannel() bool { return s.kind != KindColormap }

// channels returns the required channel-axis cardinality, or 0 for
// colormap lookup schemes which have no channel axis.
func (s Scheme) channels() int {
	switch s.kind {
	case KindRGB, KindHSV:
		return 3
	case KindPolar:
		return 2
	case KindIndexed:
		return len(s.colors)
	}
	return 0
}
