package sgd

import (
	"context"
	"log/slog"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/linear/internal/loss"
)

// binaryTrainer runs online SGD on a single problem with ±1 targets.
//
// Update rule, applied after every sample in shuffled order:
//
//	p = (w·x) / ‖w‖
//	w = w - eta·alpha·w - eta·loss'(y, p)·x
//
// The decay term is only applied with the l2 penalty. Dividing the margin
// by the current norm makes the effective step size scale with ‖w‖; this is
// part of the algorithm and changes convergence if removed.
type binaryTrainer struct {
	loss    loss.Loss
	epochs  int
	eta0    float64
	alpha   float64
	rate    LearningRate
	penalty Penalty
	logger  *slog.Logger
}

func newBinaryTrainer(cfg Config, l loss.Loss) *binaryTrainer {
	return &binaryTrainer{
		loss:    l,
		epochs:  cfg.Epochs,
		eta0:    cfg.Eta0,
		alpha:   cfg.Alpha,
		rate:    cfg.LearningRate,
		penalty: cfg.Penalty,
		logger:  cfg.Logger,
	}
}

// fit returns the unnormalized weight vector for X and targets y ∈ {-1, +1}.
// rng is owned by the call; class is only used for logging.
func (t *binaryTrainer) fit(X *mat.Dense, y []float64, rng *rand.Rand, class int) []float64 {
	n, d := X.Dims()

	w := make([]float64, d)
	for j := range w {
		w[j] = rng.Float64()
	}

	index := identity(n)
	trace := t.logger.Enabled(context.Background(), slog.LevelDebug)

	for epoch := range t.epochs {
		Shuffle(index, rng)
		eta := t.learningRate(epoch)

		decay := 1.0
		if t.penalty == L2 {
			decay = 1 - eta*t.alpha
		}

		var total float64
		for _, i := range index {
			x := X.RawRowView(i)
			p := margin(w, x)
			if trace {
				total += t.loss.Value(y[i], p)
			}

			g := t.loss.Deriv(y[i], p)
			if decay != 1 {
				floats.Scale(decay, w)
			}
			if g != 0 {
				floats.AddScaled(w, -eta*g, x)
			}
		}

		if trace {
			t.logger.Debug("epoch completed",
				"class", class,
				"epoch", epoch+1,
				"eta", eta,
				"mean_loss", total/float64(n),
			)
		}
	}

	return w
}

// learningRate resolves eta for an epoch. Only the constant schedule passes
// configuration validation.
func (t *binaryTrainer) learningRate(_ int) float64 {
	return t.eta0
}

// margin returns w·x / ‖w‖, or 0 when w vanishes.
func margin(w, x []float64) float64 {
	norm := floats.Norm(w, 2)
	if norm == 0 {
		return 0
	}
	return floats.Dot(w, x) / norm
}
