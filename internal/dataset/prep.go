package dataset

import (
	"math"
	"math/rand/v2"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"
)

// AddBias returns a copy of X with a constant 1 prepended to every row.
func AddBias(X mat.Matrix) *mat.Dense {
	n, d := X.Dims()
	out := mat.NewDense(n, d+1, nil)
	for i := range n {
		out.Set(i, 0, 1)
	}
	out.Slice(0, n, 1, d+1).(*mat.Dense).Copy(X)
	return out
}

// Split holds a train/test partition.
type Split[L any] struct {
	XTrain, XTest *mat.Dense
	YTrain, YTest []L
}

// TrainTestSplit shuffles the rows of X and y with rng and holds out
// ceil(testRatio·n) of them for testing.
func TrainTestSplit[L any](X mat.Matrix, y []L, testRatio float64, rng *rand.Rand) (Split[L], error) {
	n, d := X.Dims()
	if len(y) != n {
		return Split[L]{}, errors.Newf("split: %d labels for %d samples", len(y), n)
	}
	if testRatio <= 0 || testRatio >= 1 {
		return Split[L]{}, errors.Newf("split: test ratio %g outside (0, 1)", testRatio)
	}
	nTest := int(math.Ceil(testRatio * float64(n)))
	nTrain := n - nTest
	if nTest == 0 || nTrain == 0 {
		return Split[L]{}, errors.Newf("split: %d samples cannot be split with ratio %g", n, testRatio)
	}

	s := Split[L]{
		XTrain: mat.NewDense(nTrain, d, nil),
		XTest:  mat.NewDense(nTest, d, nil),
		YTrain: make([]L, 0, nTrain),
		YTest:  make([]L, 0, nTest),
	}
	for i, p := range rng.Perm(n) {
		if i < nTest {
			s.XTest.SetRow(i, mat.Row(nil, p, X))
			s.YTest = append(s.YTest, y[p])
		} else {
			s.XTrain.SetRow(i-nTest, mat.Row(nil, p, X))
			s.YTrain = append(s.YTrain, y[p])
		}
	}
	return s, nil
}

// Accuracy returns the fraction of positions where want and got agree.
func Accuracy[L comparable](want, got []L) (float64, error) {
	if len(want) != len(got) {
		return 0, errors.Newf("accuracy: %d targets, %d predictions", len(want), len(got))
	}
	if len(want) == 0 {
		return 0, errors.New("accuracy: no samples")
	}
	correct := 0
	for i := range want {
		if want[i] == got[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(want)), nil
}
