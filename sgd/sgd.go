// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package sgd

import (
	"cmp"

	"github.com/born-ml/linear/internal/parallel"
	"github.com/born-ml/linear/internal/sgd"
)

// Classifier is a linear SGD classifier over labels of type L.
type Classifier[L cmp.Ordered] = sgd.Classifier[L]

// Config holds the hyperparameters of a Classifier.
type Config = sgd.Config

// ParallelConfig controls concurrent one-vs-rest training.
type ParallelConfig = parallel.Config

// LearningRate names a learning-rate schedule.
type LearningRate = sgd.LearningRate

// Penalty names a regularization term.
type Penalty = sgd.Penalty

// Learning-rate schedules. Only Constant is implemented.
const (
	Constant = sgd.Constant
	Optimal  = sgd.Optimal
	PA1      = sgd.PA1
	PA2      = sgd.PA2
)

// Regularization terms.
const (
	L2          = sgd.L2
	PenaltyNone = sgd.PenaltyNone
)

// Errors returned by the classifier.
var (
	ErrInvalidConfig     = sgd.ErrInvalidConfig
	ErrNotFitted         = sgd.ErrNotFitted
	ErrDimensionMismatch = sgd.ErrDimensionMismatch
	ErrTooFewClasses     = sgd.ErrTooFewClasses
	ErrEmptyInput        = sgd.ErrEmptyInput
)

// DefaultConfig returns the default hyperparameters: 20 epochs, HingeLoss,
// eta0 0.1, alpha 0.0001, constant learning rate and l2 penalty.
func DefaultConfig() Config {
	return sgd.DefaultConfig()
}

// DefaultParallelConfig enables parallel sub-fits on multi-core machines.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// New validates cfg and returns an unfitted classifier.
//
// Example:
//
//	cfg := sgd.DefaultConfig()
//	cfg.Loss = "LogisticLoss"
//	cfg.Seed = 7
//	clf, err := sgd.New[string](cfg)
func New[L cmp.Ordered](cfg Config) (*Classifier[L], error) {
	return sgd.New[L](cfg)
}
