// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dataset provides synthetic data, splitting and scoring helpers for
// the linear classifiers.
package dataset

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/linear/internal/dataset"
)

// BlobsConfig describes isotropic Gaussian clusters.
type BlobsConfig = dataset.BlobsConfig

// Split holds a train/test partition.
type Split[L any] = dataset.Split[L]

// Table is a labeled feature matrix read from CSV.
type Table = dataset.Table

// BinaryBlobs is the two-cluster standard layout.
func BinaryBlobs() BlobsConfig { return dataset.BinaryBlobs() }

// MultiBlobs is the three-cluster standard layout.
func MultiBlobs() BlobsConfig { return dataset.MultiBlobs() }

// Blobs draws labeled points around cfg.Centers.
func Blobs(cfg BlobsConfig, rng *rand.Rand) (*mat.Dense, []int, error) {
	return dataset.Blobs(cfg, rng)
}

// AddBias prepends a constant 1 column to X.
func AddBias(X mat.Matrix) *mat.Dense {
	return dataset.AddBias(X)
}

// TrainTestSplit holds out ceil(testRatio·n) shuffled rows for testing.
func TrainTestSplit[L any](X mat.Matrix, y []L, testRatio float64, rng *rand.Rand) (Split[L], error) {
	return dataset.TrainTestSplit(X, y, testRatio, rng)
}

// Accuracy returns the fraction of matching labels.
func Accuracy[L comparable](want, got []L) (float64, error) {
	return dataset.Accuracy(want, got)
}

// LoadCSV reads features and a trailing label column from a CSV file.
func LoadCSV(path string) (*Table, error) {
	return dataset.LoadCSV(path)
}
