// Package narray provides a minimal dense n-dimensional array of float64
// values stored in row-major order.
//
// A [Dense] array is described by its shape (one extent per axis) and a flat
// backing slice. It supports the handful of operations the colorization
// pipeline needs: indexing, channel extraction along the first axis,
// elementwise mapping, clipping, and min-max normalization. It is not a
// general linear-algebra type; use gonum's mat package for that.
//
// Indexing methods panic on out-of-range or mis-dimensioned indices, in the
// style of gonum. Construction from existing data returns an error when the
// data length and shape disagree, since that typically reflects bad caller
// input rather than a programming bug.
package narray

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/matzehuels/colorize/pkg/errors"
)

// Dense is a dense n-dimensional float64 array in row-major layout.
// The zero value is not usable; construct with [New] or [FromData].
type Dense struct {
	shape []int
	data  []float64
}

// New returns a zero-filled array with the given shape.
// It panics if no extents are given or any extent is not positive.
func New(shape ...int) *Dense {
	n := checkShape(shape)
	return &Dense{
		shape: append([]int(nil), shape...),
		data:  make([]float64, n),
	}
}

// FromData wraps an existing flat slice as an array with the given shape.
// The slice is used directly, not copied. It returns an error when the
// slice length does not equal the product of the extents.
func FromData(data []float64, shape ...int) (*Dense, error) {
	n := checkShape(shape)
	if len(data) != n {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"data length %d does not match shape %v (want %d)", len(data), shape, n)
	}
	return &Dense{
		shape: append([]int(nil), shape...),
		data:  data,
	}, nil
}

func checkShape(shape []int) int {
	if len(shape) == 0 {
		panic("narray: empty shape")
	}
	n := 1
	for _, s := range shape {
		if s <= 0 {
			panic(fmt.Sprintf("narray: non-positive extent in shape %v", shape))
		}
		n *= s
	}
	return n
}

// Shape returns a copy of the array's shape.
func (d *Dense) Shape() []int {
	return append([]int(nil), d.shape...)
}

// NDim returns the number of axes.
func (d *Dense) NDim() int { return len(d.shape) }

// Len returns the total number of elements.
func (d *Dense) Len() int { return len(d.data) }

// Data returns the backing slice in row-major order. Mutating it mutates
// the array.
func (d *Dense) Data() []float64 { return d.data }

// offset converts a multi-dimensional index into a flat offset.
func (d *Dense) offset(idx []int) int {
	if len(idx) != len(d.shape) {
		panic(fmt.Sprintf("narray: %d indices for %d-dimensional array", len(idx), len(d.shape)))
	}
	off := 0
	for i, x := range idx {
		if x < 0 || x >= d.shape[i] {
			panic(fmt.Sprintf("narray: index %v out of range for shape %v", idx, d.shape))
		}
		off = off*d.shape[i] + x
	}
	return off
}

// At returns the element at the given index.
func (d *Dense) At(idx ...int) float64 {
	return d.data[d.offset(idx)]
}

// Set stores v at the given index.
func (d *Dense) Set(v float64, idx ...int) {
	d.data[d.offset(idx)] = v
}

// Channel returns a view of the i-th subarray along the first axis.
// For an array of shape (c, x, y) the result has shape (x, y) and shares
// backing storage with d. It panics on 1-dimensional arrays or when i is
// out of range.
func (d *Dense) Channel(i int) *Dense {
	if len(d.shape) < 2 {
		panic("narray: Channel requires at least 2 dimensions")
	}
	if i < 0 || i >= d.shape[0] {
		panic(fmt.Sprintf("narray: channel %d out of range for shape %v", i, d.shape))
	}
	stride := len(d.data) / d.shape[0]
	return &Dense{
		shape: append([]int(nil), d.shape[1:]...),
		data:  d.data[i*stride : (i+1)*stride],
	}
}

// Clone returns a deep copy of the array.
func (d *Dense) Clone() *Dense {
	out := New(d.shape...)
	copy(out.data, d.data)
	return out
}

// Min returns the smallest element.
func (d *Dense) Min() float64 { return floats.Min(d.data) }

// Max returns the largest element.
func (d *Dense) Max() float64 { return floats.Max(d.data) }

// Map returns a new array with f applied to every element.
func (d *Dense) Map(f func(float64) float64) *Dense {
	out := New(d.shape...)
	for i, v := range d.data {
		out.data[i] = f(v)
	}
	return out
}

// Clip returns a new array with every element limited to [lo, hi].
func (d *Dense) Clip(lo, hi float64) *Dense {
	return d.Map(func(v float64) float64 { return clamp(v, lo, hi) })
}

// Normalize rescales the array linearly so vmin maps to 0 and vmax maps
// to 1, clipping values outside that range. A nil bound defaults to the
// observed minimum or maximum (auto-scaling). When the effective range is
// empty (vmax <= vmin) every element maps to 0.
func (d *Dense) Normalize(vmin, vmax *float64) *Dense {
	lo := d.Min()
	hi := d.Max()
	if vmin != nil {
		lo = *vmin
	}
	if vmax != nil {
		hi = *vmax
	}
	if hi <= lo {
		return New(d.shape...)
	}
	span := hi - lo
	return d.Map(func(v float64) float64 { return clamp((v-lo)/span, 0, 1) })
}

// EqualShape reports whether two shape slices are identical.
func EqualShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
