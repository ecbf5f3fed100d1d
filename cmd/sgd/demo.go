package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"

	"github.com/born-ml/linear/dataset"
	"github.com/born-ml/linear/sgd"
)

// runDemo runs the standard blob experiments: two or three skewed
// clusters, 20% held out, seed 42.
func runDemo(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		classes = fs.Int("classes", 2, "number of clusters: 2 or 3")
		lossArg = fs.String("loss", "HingeLoss", "loss function")
		seed    = fs.Int64("seed", 42, "seed for data, split and training")
		verbose = fs.Bool("v", false, "log every epoch")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := sgd.DefaultConfig()
	cfg.Loss = *lossArg
	cfg.Seed = *seed
	cfg.Logger = newLogger(stderr, *verbose)

	var blobs dataset.BlobsConfig
	switch *classes {
	case 2:
		blobs = dataset.BinaryBlobs().Skewed()
	case 3:
		blobs = dataset.MultiBlobs().Skewed()
		cfg.Alpha = 0.01
	default:
		return errors.Newf("demo: -classes must be 2 or 3, got %d", *classes)
	}

	rng := splitRand(*seed)
	X, y, err := dataset.Blobs(blobs, rng)
	if err != nil {
		return err
	}
	split, err := dataset.TrainTestSplit(dataset.AddBias(X), y, 0.2, rng)
	if err != nil {
		return err
	}

	clf, err := sgd.New[int](cfg)
	if err != nil {
		return err
	}
	if err := clf.Fit(split.XTrain, split.YTrain); err != nil {
		return err
	}
	pred, err := clf.Predict(split.XTest)
	if err != nil {
		return err
	}
	acc, err := dataset.Accuracy(split.YTest, pred)
	if err != nil {
		return err
	}

	W := clf.Weights()
	r, _ := W.Dims()
	fmt.Fprintf(stdout, "correct_rate: %.4f\n", acc)
	for i := range r {
		fmt.Fprintf(stdout, "w[%d] = %.4f\n", i, W.RawRowView(i))
	}
	return nil
}
