package palette

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// objective scores a candidate color assignment against the target
// distance structure. Lower is better; 0 means the candidate's pairwise
// distances are perfectly correlated with the target's.
type objective struct {
	n      int
	target []float64 // flattened n*n pairwise cosine distances of the data

	// degenerate marks a target with zero variance (for example identical
	// rows, where every pairwise distance is 0). Pearson correlation is
	// undefined there, so eval falls back to the mean squared candidate
	// distance, which drives the colors to cluster like the data does.
	degenerate bool
}

func newObjective(rows [][]float64) *objective {
	target := pairwiseCosine(rows)
	return &objective{
		n:          len(rows),
		target:     target,
		degenerate: !hasVariance(target),
	}
}

// eval returns 1 minus the Pearson correlation between the target distance
// vector and the candidate's, where x holds n RGB triples flattened to
// length n*3. The value is 0 for perfectly matched structure and up to 2
// when anti-correlated.
func (o *objective) eval(x []float64) float64 {
	cand := make([][]float64, o.n)
	for i := range cand {
		cand[i] = x[i*3 : (i+1)*3]
	}
	dist := pairwiseCosine(cand)

	if o.degenerate {
		var sum float64
		for _, d := range dist {
			sum += d * d
		}
		return sum / float64(len(dist))
	}

	r := stat.Correlation(o.target, dist, nil)
	if r != r { // candidate with zero distance variance
		r = 0
	}
	return 1 - r
}

// pairwiseCosine returns the full n-by-n cosine-distance matrix of the
// given rows, flattened row-major. Self-distances are 0.
func pairwiseCosine(rows [][]float64) []float64 {
	n := len(rows)
	out := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := cosineDistance(rows[i], rows[j])
			out[i*n+j] = d
			out[j*n+i] = d
		}
	}
	return out
}

// cosineDistance is 1 minus the cosine similarity of u and v. A pair of
// zero vectors has distance 0; a single zero vector is maximally distant
// from any direction, distance 1.
func cosineDistance(u, v []float64) float64 {
	nu := floats.Norm(u, 2)
	nv := floats.Norm(v, 2)
	if nu == 0 || nv == 0 {
		if nu == 0 && nv == 0 {
			return 0
		}
		return 1
	}
	return 1 - floats.Dot(u, v)/(nu*nv)
}

func hasVariance(xs []float64) bool {
	for _, x := range xs {
		if x != xs[0] {
			return true
		}
	}
	return false
}
