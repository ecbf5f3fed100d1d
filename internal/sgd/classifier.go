// Package sgd implements linear classifiers trained with online stochastic
// gradient descent.
//
// Two classes are learned as a single weight vector. K > 2 classes are
// reduced to K one-vs-rest binary problems whose weight vectors form the
// rows of a K×d matrix. Every learned vector is L2-normalized after training.
//
// Feature matrices are expected to carry the bias as a constant first
// column; the first weight component is then the bias term.
package sgd

import (
	"cmp"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/linear/internal/loss"
)

// Classifier is a linear SGD classifier over labels of type L.
//
// The zero value is not usable; create one with New. Fit must not be called
// concurrently with other methods; Predict and the accessors may run
// concurrently with each other.
type Classifier[L cmp.Ordered] struct {
	cfg     Config
	trainer *binaryTrainer
	logger  *slog.Logger

	mu        sync.RWMutex
	classes   []L
	weights   *mat.Dense
	nFeatures int
}

// New validates cfg and returns an unfitted classifier. Zero-valued fields
// take the values of DefaultConfig, except Alpha and Seed.
func New[L cmp.Ordered](cfg Config) (*Classifier[L], error) {
	cfg = cfg.withDefaults()

	l, err := cfg.validate()
	if err != nil {
		return nil, err
	}

	cfg.Logger = cfg.Logger.With("component", "sgd", "loss", l.Name())

	return &Classifier[L]{
		cfg:     cfg,
		trainer: newBinaryTrainer(cfg, l),
		logger:  cfg.Logger,
	}, nil
}

// Config returns the resolved configuration.
func (c *Classifier[L]) Config() Config {
	return c.cfg
}

// Loss returns the loss function selected at construction.
func (c *Classifier[L]) Loss() loss.Loss {
	return c.trainer.loss
}

// Fit trains the classifier on X (n_samples × n_features) and labels y.
//
// A successful Fit replaces any previous weights. On error the previous
// state is kept.
func (c *Classifier[L]) Fit(X mat.Matrix, y []L) error {
	if X == nil {
		return errors.Wrap(ErrEmptyInput, "fit: nil feature matrix")
	}
	n, d := X.Dims()
	if n == 0 || d == 0 {
		return errors.Wrapf(ErrEmptyInput, "fit: feature matrix is %dx%d", n, d)
	}
	if len(y) != n {
		return errors.Wrapf(ErrDimensionMismatch, "fit: %d labels for %d samples", len(y), n)
	}

	classes := uniqueSorted(y)
	if len(classes) < 2 {
		return errors.Wrapf(ErrTooFewClasses, "fit: found %d distinct label(s)", len(classes))
	}

	start := time.Now()
	c.logger.Info("fit started",
		"samples", n,
		"features", d,
		"classes", len(classes),
		"epochs", c.cfg.Epochs,
	)

	Xd := mat.DenseCopyOf(X)
	rng := newRand(c.cfg.Seed)

	var W *mat.Dense
	if len(classes) == 2 {
		W = fitTwoClass(c.trainer, Xd, y, classes, rng)
	} else {
		W = fitOneVsRest(c.trainer, Xd, y, classes, rng, c.cfg.Parallel)
	}
	normalizeRows(W)

	c.mu.Lock()
	c.classes = classes
	c.weights = W
	c.nFeatures = d
	c.mu.Unlock()

	c.logger.Info("fit completed", "duration", time.Since(start))
	return nil
}

// Predict returns the predicted label of every row of X.
func (c *Classifier[L]) Predict(X mat.Matrix) ([]L, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	S, err := c.decisionLocked(X)
	if err != nil {
		return nil, errors.Wrap(err, "predict")
	}

	idx := decide(S)
	out := make([]L, len(idx))
	for i, k := range idx {
		out[i] = c.classes[k]
	}
	return out, nil
}

// DecisionFunction returns the raw scores of X against the normalized
// weights: n×1 for a binary model, n×K otherwise.
func (c *Classifier[L]) DecisionFunction(X mat.Matrix) (*mat.Dense, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	S, err := c.decisionLocked(X)
	if err != nil {
		return nil, errors.Wrap(err, "decision function")
	}
	return S, nil
}

func (c *Classifier[L]) decisionLocked(X mat.Matrix) (*mat.Dense, error) {
	if c.weights == nil {
		return nil, ErrNotFitted
	}
	if X == nil {
		return nil, errors.Wrap(ErrEmptyInput, "nil feature matrix")
	}
	n, d := X.Dims()
	if n == 0 {
		return nil, errors.Wrap(ErrEmptyInput, "feature matrix has no rows")
	}
	if d != c.nFeatures {
		return nil, errors.Wrapf(ErrDimensionMismatch, "got %d features, model was fitted with %d", d, c.nFeatures)
	}
	return scores(X, c.weights), nil
}

// IsFitted reports whether Fit has succeeded at least once.
func (c *Classifier[L]) IsFitted() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.weights != nil
}

// Classes returns a copy of the sorted class set, or nil before Fit.
func (c *Classifier[L]) Classes() []L {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.classes)
}

// Weights returns a copy of the normalized weights, one row per weight
// vector, or nil before Fit.
func (c *Classifier[L]) Weights() *mat.Dense {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.weights == nil {
		return nil
	}
	return mat.DenseCopyOf(c.weights)
}

// NumFeatures returns the feature dimension seen by the last Fit.
func (c *Classifier[L]) NumFeatures() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.nFeatures
}

func uniqueSorted[L cmp.Ordered](y []L) []L {
	classes := slices.Clone(y)
	slices.Sort(classes)
	return slices.Compact(classes)
}
