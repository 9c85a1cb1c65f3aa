package colorize

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/colorize/pkg/colormap"
	"github.com/matzehuels/colorize/pkg/errors"
	"github.com/matzehuels/colorize/pkg/narray"
	"github.com/matzehuels/colorize/pkg/observability"
)

// Colorizer converts numerical arrays into RGB color arrays using a fixed
// scheme. Construct with [New]; the configuration is read-only during a
// transform call, so a Colorizer may be reused across calls.
type Colorizer struct {
	// Scheme is the resolved color encoding selector.
	Scheme Scheme

	// Scale multiplies the colorized output before clipping, controlling
	// brightness. Must be positive; New defaults it to 1.
	Scale float64

	// VMin and VMax are optional normalization bounds. A nil bound is
	// auto-scaled from the observed data minimum or maximum.
	VMin, VMax *float64

	// Logger receives debug events. Defaults to a discard logger.
	Logger *log.Logger
}

// New returns a Colorizer for the given scheme with Scale 1 and
// auto-scaled normalization bounds.
func New(scheme Scheme) *Colorizer {
	return &Colorizer{Scheme: scheme, Scale: 1}
}

// TransformOptions carries the optional auxiliary arrays for a transform
// call. The zero value applies neither.
type TransformOptions struct {
	// Mask multiplies the luminance of the colorized output. It must match
	// the image's spatial shape and is clipped below at 0.
	Mask *narray.Dense

	// Background is added to the output as a grayscale overlay. It must
	// match the image's spatial shape and is min-max normalized to [0, 1].
	Background *narray.Dense
}

// Transform colorizes img. For rgb, hsv, polar, and indexed schemes the
// input must have shape (c, x, y) or (c, x, y, z) where c is the channel
// axis; for colormap schemes it must have shape (x, y) or (x, y, z). The
// result has the input's spatial shape with a trailing axis of 3 and all
// values in [0, 1].
func (c *Colorizer) Transform(img *narray.Dense) (*narray.Dense, error) {
	return c.TransformWith(img, TransformOptions{})
}

// TransformWith colorizes img and applies the auxiliary arrays in opts.
// Blending happens in a fixed order: colorize, multiply by mask, add
// background, clip to [0, 1]. The order is intentionally non-commutative.
func (c *Colorizer) TransformWith(img *narray.Dense, opts TransformOptions) (*narray.Dense, error) {
	start := time.Now()
	hooks := observability.Transform()
	hooks.OnTransformStart(c.Scheme.String(), img.Shape())

	out, err := c.transform(img, opts)
	hooks.OnTransformComplete(c.Scheme.String(), img.Shape(), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	c.logger().Debug("colorized image",
		"scheme", c.Scheme.String(),
		"shape", img.Shape(),
		"duration", time.Since(start))
	return out, nil
}

func (c *Colorizer) transform(img *narray.Dense, opts TransformOptions) (*narray.Dense, error) {
	if err := errors.ValidateScale(c.Scale); err != nil {
		return nil, err
	}
	if err := errors.ValidateBounds(c.VMin, c.VMax); err != nil {
		return nil, err
	}
	if err := c.checkDims(img); err != nil {
		return nil, err
	}

	var mask, background *narray.Dense
	if opts.Mask != nil {
		if err := c.checkAux(opts.Mask, img, "mask"); err != nil {
			return nil, err
		}
		mask = opts.Mask.Clip(0, math.Inf(1))
	}
	if opts.Background != nil {
		if err := c.checkAux(opts.Background, img, "background"); err != nil {
			return nil, err
		}
		background = opts.Background.Normalize(nil, nil)
	}

	norm := img.Normalize(c.VMin, c.VMax)
	out := c.colorize(norm)

	// Brightness post-step applies to every scheme uniformly.
	data := out.Data()
	for i, v := range data {
		data[i] = clamp01(v * c.Scale)
	}

	if mask != nil {
		blend(out, mask, func(a, b float64) float64 { return a * b })
	}
	if background != nil {
		blend(out, background, func(a, b float64) float64 { return a + b })
	}
	for i, v := range data {
		data[i] = clamp01(v)
	}
	return out, nil
}

// checkDims confirms the input's dimensionality and channel-axis
// cardinality against the scheme.
func (c *Colorizer) checkDims(img *narray.Dense) error {
	shape := img.Shape()
	if c.Scheme.multiChannel() {
		if len(shape) != 3 && len(shape) != 4 {
			return errors.New(errors.ErrCodeInvalidConfig,
				"%s conversion needs shape (c, x, y) or (c, x, y, z), got %v",
				c.Scheme, shape)
		}
		if c.Scheme.kind == KindIndexed {
			return errors.ValidateColorCount(len(c.Scheme.colors), shape[0])
		}
		if want := c.Scheme.channels(); shape[0] != want {
			return errors.New(errors.ErrCodeInvalidConfig,
				"first dimension must be %d for %s conversion, got %d",
				want, c.Scheme, shape[0])
		}
		return nil
	}

	if c.Scheme.cmap == nil {
		return errors.New(errors.ErrCodeInvalidScheme, "colormap scheme has no colormap")
	}
	if len(shape) != 2 && len(shape) != 3 {
		return errors.New(errors.ErrCodeInvalidConfig,
			"%s conversion needs shape (x, y) or (x, y, z), got %v", c.Scheme, shape)
	}
	return nil
}

// checkAux confirms that an auxiliary array matches the image's spatial
// shape: the shape without the channel axis for multi-channel schemes, the
// full shape otherwise.
func (c *Colorizer) checkAux(aux, img *narray.Dense, what string) error {
	spatial := img.Shape()
	if c.Scheme.multiChannel() {
		spatial = spatial[1:]
	}
	if !narray.EqualShape(aux.Shape(), spatial) {
		return errors.New(errors.ErrCodeShapeMismatch,
			"%s shape %v does not match image spatial shape %v", what, aux.Shape(), spatial)
	}
	return nil
}

// colorize dispatches on the scheme kind. The input is already normalized
// to [0, 1] and dimension-checked.
func (c *Colorizer) colorize(img *narray.Dense) *narray.Dense {
	var spatial []int
	if c.Scheme.multiChannel() {
		spatial = img.Shape()[1:]
	} else {
		spatial = img.Shape()
	}
	out := narray.New(append(spatial, 3)...)
	data := out.Data()

	switch c.Scheme.kind {
	case KindRGB:
		// Move the channel axis last, values verbatim.
		for k := 0; k < 3; k++ {
			ch := img.Channel(k).Data()
			for p, v := range ch {
				data[p*3+k] = v
			}
		}

	case KindHSV:
		h := img.Channel(0).Data()
		s := img.Channel(1).Data()
		v := img.Channel(2).Data()
		for p := range h {
			setRGB(data, p, colorful.Hsv(hueDegrees(h[p]), s[p], v[p]))
		}

	case KindPolar:
		c0 := img.Channel(0).Data()
		c1 := img.Channel(1).Data()
		for p := range c0 {
			theta := math.Atan2(-c0[p], -c1[p]) + math.Pi/2
			theta = math.Mod(theta, 2*math.Pi)
			if theta < 0 {
				theta += 2 * math.Pi
			}
			rho := math.Hypot(c0[p], c1[p])
			value := clamp01(c.Scale * rho)
			setRGB(data, p, colorful.Hsv(hueDegrees(theta/(2*math.Pi)), 1, value))
		}

	case KindIndexed:
		for i, clr := range c.Scheme.colors {
			ramp := colormap.Ramp(clr)
			ch := img.Channel(i).Data()
			for p, v := range ch {
				blended := ramp.At(v)
				data[p*3+0] = math.Max(data[p*3+0], clamp01(blended.R))
				data[p*3+1] = math.Max(data[p*3+1], clamp01(blended.G))
				data[p*3+2] = math.Max(data[p*3+2], clamp01(blended.B))
			}
		}

	case KindColormap:
		for p, v := range img.Data() {
			setRGB(data, p, c.Scheme.cmap.At(v))
		}
	}
	return out
}

// blend applies aux to each of the three RGB planes with op. The aux array
// has one value per spatial position, broadcast identically across R, G, B.
func blend(out, aux *narray.Dense, op func(a, b float64) float64) {
	data := out.Data()
	for p, v := range aux.Data() {
		for k := 0; k < 3; k++ {
			data[p*3+k] = op(data[p*3+k], v)
		}
	}
}

// hueDegrees converts a normalized hue to degrees in [0, 360), the domain
// colorful.Hsv expects. Hue is circular, so 1.0 wraps back to 0 (red); the
// auto-normalized maximum of a hue channel is always exactly 1.0, which
// would otherwise land at 360 and decode as black.
func hueDegrees(v float64) float64 {
	deg := math.Mod(v*360, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

func setRGB(data []float64, p int, c colorful.Color) {
	data[p*3+0] = c.R
	data[p*3+1] = c.G
	data[p*3+2] = c.B
}

func (c *Colorizer) logger() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return log.NewWithOptions(io.Discard, log.Options{})
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
