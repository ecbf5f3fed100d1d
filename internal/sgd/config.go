package sgd

import (
	"log/slog"

	"github.com/cockroachdb/errors"

	"github.com/born-ml/linear/internal/loss"
	"github.com/born-ml/linear/internal/parallel"
)

// LearningRate names a learning-rate schedule.
type LearningRate string

// Learning-rate schedules. Only Constant is implemented; the others are
// recognized so that configurations naming them fail with a clear error.
const (
	Constant LearningRate = "constant"
	Optimal  LearningRate = "optimal"
	PA1      LearningRate = "PA1"
	PA2      LearningRate = "PA2"
)

// Penalty names a regularization term.
type Penalty string

// Regularization terms.
const (
	L2          Penalty = "l2"
	PenaltyNone Penalty = "none"
)

// Config holds the hyperparameters of a Classifier.
type Config struct {
	Epochs       int          // Passes over the training set (default: 20).
	Loss         string       // Loss name, see loss.Names (default: "HingeLoss").
	Eta0         float64      // Base learning rate (default: 0.1).
	Alpha        float64      // L2 regularization strength, >= 0.
	LearningRate LearningRate // Schedule (default: constant).
	Penalty      Penalty      // Regularization (default: l2).

	// Seed for weight initialization and shuffling. Negative values seed
	// from the clock on every Fit.
	Seed int64

	// Parallel controls concurrent one-vs-rest sub-fits.
	Parallel parallel.Config

	// Logger receives fit progress. Nil discards all records.
	Logger *slog.Logger
}

// DefaultConfig returns 20 epochs of HingeLoss with eta0 0.1, alpha 0.0001,
// a constant learning rate and the l2 penalty.
func DefaultConfig() Config {
	return Config{
		Epochs:       20,
		Loss:         loss.Hinge{}.Name(),
		Eta0:         0.1,
		Alpha:        0.0001,
		LearningRate: Constant,
		Penalty:      L2,
		Seed:         -1,
		Parallel:     parallel.DefaultConfig(),
	}
}

// withDefaults fills zero-valued fields. Alpha and Seed keep their zero
// values since both are meaningful.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Epochs == 0 {
		c.Epochs = def.Epochs
	}
	if c.Loss == "" {
		c.Loss = def.Loss
	}
	if c.Eta0 == 0 {
		c.Eta0 = def.Eta0
	}
	if c.LearningRate == "" {
		c.LearningRate = def.LearningRate
	}
	if c.Penalty == "" {
		c.Penalty = def.Penalty
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
	return c
}

// validate checks c and resolves the loss function.
func (c Config) validate() (loss.Loss, error) {
	if c.Epochs < 0 {
		return nil, errors.Wrapf(ErrInvalidConfig, "epochs must be positive, got %d", c.Epochs)
	}
	if c.Eta0 < 0 {
		return nil, errors.Wrapf(ErrInvalidConfig, "eta0 must be positive, got %g", c.Eta0)
	}
	if c.Alpha < 0 {
		return nil, errors.Wrapf(ErrInvalidConfig, "alpha must be non-negative, got %g", c.Alpha)
	}

	switch c.LearningRate {
	case Constant:
	case Optimal, PA1, PA2:
		return nil, errors.Wrapf(ErrInvalidConfig, "learning rate %q is not implemented", c.LearningRate)
	default:
		return nil, errors.Wrapf(ErrInvalidConfig, "unknown learning rate %q", c.LearningRate)
	}

	switch c.Penalty {
	case L2, PenaltyNone:
	default:
		return nil, errors.Wrapf(ErrInvalidConfig, "unknown penalty %q", c.Penalty)
	}

	l, err := loss.Parse(c.Loss)
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "loss type"), ErrInvalidConfig)
	}
	return l, nil
}
