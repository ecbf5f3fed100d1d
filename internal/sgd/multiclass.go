package sgd

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/linear/internal/parallel"
)

// fitOneVsRest trains one binary problem per class, class i against all
// others, and returns the K×d weight matrix in class order.
//
// Sub-fits share X read-only and own their targets, weights and rng, so they
// may run concurrently. Rows are assembled after all sub-fits finish.
func fitOneVsRest[L comparable](t *binaryTrainer, X *mat.Dense, y, classes []L, rng *rand.Rand, cfg parallel.Config) *mat.Dense {
	_, d := X.Dims()
	k := len(classes)

	seeds := subSeeds(rng, k)
	rows := make([][]float64, k)

	parallel.For(k, func(ci int) {
		targets := make([]float64, len(y))
		for i, label := range y {
			if label == classes[ci] {
				targets[i] = 1
			} else {
				targets[i] = -1
			}
		}
		rows[ci] = t.fit(X, targets, newSubRand(seeds[ci]), ci)
		t.logger.Debug("class fitted", "class", ci)
	}, cfg)

	W := mat.NewDense(k, d, nil)
	for ci, w := range rows {
		W.SetRow(ci, w)
	}
	return W
}

// fitTwoClass trains the binary problem where classes[0] maps to -1 and
// every other label to +1. The result has a single row.
func fitTwoClass[L comparable](t *binaryTrainer, X *mat.Dense, y, classes []L, rng *rand.Rand) *mat.Dense {
	_, d := X.Dims()

	targets := make([]float64, len(y))
	for i, label := range y {
		if label == classes[0] {
			targets[i] = -1
		} else {
			targets[i] = 1
		}
	}

	seeds := subSeeds(rng, 1)
	w := t.fit(X, targets, newSubRand(seeds[0]), 0)
	return mat.NewDense(1, d, w)
}
