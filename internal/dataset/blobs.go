// Package dataset provides the data plumbing around the classifier:
// synthetic blob generation, bias augmentation, train/test splitting,
// accuracy scoring and CSV loading.
package dataset

import (
	"math/rand/v2"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"
)

// BlobsConfig describes isotropic Gaussian clusters.
type BlobsConfig struct {
	Centers [][]float64 // One center per class; all of equal dimension.
	Samples int         // Total number of points, spread evenly over centers.
	Std     float64     // Standard deviation of every cluster (default: 1.0).

	// Transform, when set, right-multiplies the points (d×d).
	Transform [][]float64

	// Noise adds a uniform [0, Noise) draw to every coordinate after the
	// transform.
	Noise float64
}

// BinaryBlobs is the two-cluster layout of the standard binary experiment.
func BinaryBlobs() BlobsConfig {
	return BlobsConfig{
		Centers: [][]float64{{-5, 3}, {1, 3}},
		Samples: 1000,
		Std:     1,
	}
}

// MultiBlobs is the three-cluster layout of the standard multiclass
// experiment.
func MultiBlobs() BlobsConfig {
	return BlobsConfig{
		Centers: [][]float64{{-5, 3}, {1, 3}, {-3, -3}},
		Samples: 1000,
		Std:     1,
	}
}

// Skewed returns cfg with the shear and uniform noise the standard
// experiments apply on top of the blobs.
func (cfg BlobsConfig) Skewed() BlobsConfig {
	cfg.Transform = [][]float64{{0.4, 0.2}, {-0.4, 1.2}}
	cfg.Noise = 2.5
	return cfg
}

// Blobs draws cfg.Samples points and their cluster indices in random order.
// Sample i belongs to cluster i % k before shuffling, so every cluster gets
// Samples/k points, the first Samples%k clusters one more.
func Blobs(cfg BlobsConfig, rng *rand.Rand) (*mat.Dense, []int, error) {
	k := len(cfg.Centers)
	if k == 0 {
		return nil, nil, errors.New("blobs: no centers")
	}
	if cfg.Samples < k {
		return nil, nil, errors.Newf("blobs: %d samples for %d centers", cfg.Samples, k)
	}
	d := len(cfg.Centers[0])
	for i, c := range cfg.Centers {
		if len(c) != d || d == 0 {
			return nil, nil, errors.Newf("blobs: center %d has dimension %d, want %d", i, len(c), d)
		}
	}
	std := cfg.Std
	if std == 0 {
		std = 1
	}

	X := mat.NewDense(cfg.Samples, d, nil)
	y := make([]int, cfg.Samples)
	for i, p := range rng.Perm(cfg.Samples) {
		label := p % k
		y[i] = label
		row := X.RawRowView(i)
		for j := range row {
			row[j] = cfg.Centers[label][j] + std*rng.NormFloat64()
		}
	}

	if cfg.Transform != nil {
		T, err := square(cfg.Transform, d)
		if err != nil {
			return nil, nil, err
		}
		var shifted mat.Dense
		shifted.Mul(X, T)
		X = &shifted
	}

	if cfg.Noise > 0 {
		X.Apply(func(_, _ int, v float64) float64 {
			return v + cfg.Noise*rng.Float64()
		}, X)
	}

	return X, y, nil
}

func square(rows [][]float64, d int) (*mat.Dense, error) {
	if len(rows) != d {
		return nil, errors.Newf("blobs: transform has %d rows, want %d", len(rows), d)
	}
	T := mat.NewDense(d, d, nil)
	for i, r := range rows {
		if len(r) != d {
			return nil, errors.Newf("blobs: transform row %d has %d columns, want %d", i, len(r), d)
		}
		T.SetRow(i, r)
	}
	return T, nil
}
