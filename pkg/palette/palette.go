// Package palette derives perceptually matched color palettes from data
// similarity.
//
// Given an (n, m) matrix of n points in m-dimensional feature space,
// [Optimize] searches for n colors in RGB space whose pairwise
// cosine-distance structure approximates the pairwise cosine-distance
// structure of the data points: similar points get similar colors,
// dissimilar points get distinguishable ones.
//
// The search minimizes 1 minus the Pearson correlation between the two
// flattened distance matrices, over the n*3 color components constrained to
// [0, 1], using a quasi-Newton method with a smooth reparameterization
// enforcing the bounds. The objective is nonconvex, so repeated runs with
// different seeds may converge to different but similarity-equivalent
// palettes; set [Options.Seed] for reproducibility and [Options.Restarts]
// for best-of-N robustness.
package palette

import (
	"io"
	"math"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/optimize"

	"github.com/matzehuels/colorize/pkg/colormap"
	"github.com/matzehuels/colorize/pkg/errors"
	"github.com/matzehuels/colorize/pkg/narray"
	"github.com/matzehuels/colorize/pkg/observability"
)

// DefaultMaxIterations bounds the quasi-Newton iterations per start.
const DefaultMaxIterations = 200

// Options configures an optimization run. The zero value uses a
// randomly drawn seed, a single start, and [DefaultMaxIterations].
type Options struct {
	// Seed makes the random initialization reproducible. 0 draws a seed
	// from the global generator.
	Seed uint64

	// Restarts adds extra random starts; the palette with the lowest
	// objective value across all starts is returned.
	Restarts int

	// MaxIterations bounds the quasi-Newton iterations per start.
	// 0 means DefaultMaxIterations.
	MaxIterations int

	// Logger receives per-start debug events. Defaults to a discard logger.
	Logger *log.Logger
}

func (o *Options) setDefaults() {
	if o.Seed == 0 {
		o.Seed = rand.Uint64()
	}
	if o.MaxIterations == 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Optimize returns n colors whose pairwise cosine-distance structure
// approximates that of the n rows of mat. The input must be a 2-dimensional
// (n, m) array; anything else fails with an INVALID_INPUT error.
func Optimize(mat *narray.Dense, opts Options) ([]colorful.Color, error) {
	if mat.NDim() != 2 {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"input array must be two-dimensional, got %d dimension(s)", mat.NDim())
	}
	opts.setDefaults()

	n := mat.Shape()[0]
	start := time.Now()
	hooks := observability.Optimize()
	hooks.OnOptimizeStart(n)

	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = mat.Channel(i).Data()
	}
	obj := newObjective(rows)

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0xdeadbeef))

	var best []float64
	bestF := math.Inf(1)
	for s := 0; s <= opts.Restarts; s++ {
		x, f, err := minimizeOnce(obj, rng, opts.MaxIterations)
		if err != nil {
			hooks.OnOptimizeComplete(n, bestF, time.Since(start), err)
			return nil, err
		}
		opts.Logger.Debug("optimization start finished",
			"start", s,
			"objective", f,
			"colors", n)
		if f < bestF {
			best, bestF = x, f
		}
	}
	hooks.OnOptimizeComplete(n, bestF, time.Since(start), nil)

	opts.Logger.Info("optimized palette",
		"colors", n,
		"objective", bestF,
		"duration", time.Since(start))

	colors := make([]colorful.Color, n)
	for i := range colors {
		colors[i] = colorful.Color{
			R: best[i*3+0],
			G: best[i*3+1],
			B: best[i*3+2],
		}
	}
	return colors, nil
}

// OptimizeColormap runs [Optimize] and wraps the result as a discrete,
// order-preserving colormap usable with the colorize package's colormap
// lookup scheme.
func OptimizeColormap(mat *narray.Dense, opts Options) (*colormap.Listed, error) {
	colors, err := Optimize(mat, opts)
	if err != nil {
		return nil, err
	}
	return colormap.NewListed("optimized", colors...)
}

// minimizeOnce runs a single bounded quasi-Newton descent from a random
// initial guess. The [0, 1] box constraint is enforced by optimizing over
// unconstrained variables squashed through a logistic map; gradients are
// estimated by finite differences.
func minimizeOnce(obj *objective, rng *rand.Rand, maxIter int) ([]float64, float64, error) {
	dim := obj.n * 3
	u0 := make([]float64, dim)
	for i := range u0 {
		// Uniform in (0.05, 0.95) keeps the initial guess away from the
		// flat tails of the logistic map.
		u0[i] = logit(0.05 + 0.9*rng.Float64())
	}

	fn := func(u []float64) float64 {
		return obj.eval(squash(u))
	}
	problem := optimize.Problem{
		Func: fn,
		Grad: func(grad, u []float64) {
			fd.Gradient(grad, fn, u, nil)
		},
	}
	settings := &optimize.Settings{MajorIterations: maxIter}

	result, err := optimize.Minimize(problem, u0, settings, &optimize.LBFGS{})
	if result == nil || result.X == nil {
		return nil, 0, errors.Wrap(errors.ErrCodeInternal, err, "palette minimization failed")
	}
	// Convergence-class errors (line search stall, iteration budget) still
	// leave the best point found in the result; use it.
	return squash(result.X), result.F, nil
}

// squash maps unconstrained variables into (0, 1) through the logistic
// function, elementwise.
func squash(u []float64) []float64 {
	x := make([]float64, len(u))
	for i, v := range u {
		x[i] = 1 / (1 + math.Exp(-v))
	}
	return x
}

// logit is the inverse of the logistic map on (0, 1).
func logit(x float64) float64 {
	return math.Log(x / (1 - x))
}
