// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package sgd provides linear classifiers trained with stochastic gradient
// descent.
//
// # Overview
//
// A Classifier learns one weight vector per decision:
//   - Two classes: a single vector; the first sorted class maps to -1.
//   - K > 2 classes: K one-vs-rest vectors, one row per class.
//
// Training is online SGD. Each epoch visits the samples in a fresh random
// order and, for every sample, updates
//
//	p = (w·x) / ‖w‖
//	w = w - eta·alpha·w - eta·loss'(y, p)·x
//
// After training every vector is scaled to unit L2 norm.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/linear/dataset"
//	    "github.com/born-ml/linear/sgd"
//	)
//
//	func main() {
//	    cfg := sgd.DefaultConfig()
//	    cfg.Seed = 42
//
//	    clf, err := sgd.New[int](cfg)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // First column must be the constant bias feature.
//	    if err := clf.Fit(dataset.AddBias(X), y); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    labels, err := clf.Predict(dataset.AddBias(XTest))
//	}
//
// # Loss Functions
//
// Config.Loss selects one of:
//
//	HingeLoss          max(0, 1 - z)
//	LogisticLoss       ln(1 + exp(-z))
//	ModifiedHuberLoss  (1 - z)² on [-1, 1], -4z below
//	SquaredHingeLoss   max(0, 1 - z)²
//
// where z = y·p is the signed margin.
//
// # Reproducibility
//
// Weight initialization and shuffling draw from a generator seeded with
// Config.Seed. For a fixed seed and dataset Fit is deterministic, also when
// one-vs-rest sub-fits run in parallel.
package sgd
