package sgd

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// normalizeRows scales every row of W to unit L2 norm. All-zero rows are
// left unchanged.
func normalizeRows(W *mat.Dense) {
	r, _ := W.Dims()
	for i := range r {
		row := W.RawRowView(i)
		if norm := floats.Norm(row, 2); norm > 0 {
			floats.Scale(1/norm, row)
		}
	}
}

// scores returns X·Wᵀ, one column per weight row.
func scores(X mat.Matrix, W *mat.Dense) *mat.Dense {
	n, _ := X.Dims()
	k, _ := W.Dims()
	out := mat.NewDense(n, k, nil)
	out.Mul(X, W.T())
	return out
}

// decide maps a score matrix to class indices. A single column is a binary
// decision (index 1 when the score is positive); otherwise the row-wise
// argmax is taken, ties going to the lowest index.
func decide(S *mat.Dense) []int {
	n, k := S.Dims()
	out := make([]int, n)
	for i := range n {
		row := S.RawRowView(i)
		if k == 1 {
			if row[0] > 0 {
				out[i] = 1
			}
			continue
		}
		out[i] = floats.MaxIdx(row)
	}
	return out
}
