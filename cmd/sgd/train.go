package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/born-ml/linear/dataset"
	"github.com/born-ml/linear/sgd"
)

func runTrain(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("train", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		dataPath   = fs.String("data", "", "CSV file: feature columns followed by the label column")
		configPath = fs.String("config", "", "optional YAML hyperparameter file")
		testRatio  = fs.Float64("test", 0.2, "fraction of rows held out for evaluation")
		seed       = fs.Int64("seed", -1, "seed for splitting and training; overrides the config when >= 0")
		parallel   = fs.Bool("parallel", false, "train one-vs-rest classes concurrently")
		verbose    = fs.Bool("v", false, "log every epoch")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *dataPath == "" {
		return errors.New("train: -data is required")
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *seed >= 0 {
		cfg.Seed = *seed
	}
	cfg.Parallel.Enabled = *parallel
	cfg.Logger = newLogger(stderr, *verbose)

	tbl, err := dataset.LoadCSV(*dataPath)
	if err != nil {
		return err
	}

	split, err := dataset.TrainTestSplit(dataset.AddBias(tbl.X), tbl.Labels, *testRatio, splitRand(cfg.Seed))
	if err != nil {
		return err
	}

	clf, err := sgd.New[string](cfg)
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

	n, d := tbl.X.Dims()
	fmt.Fprintf(stdout, "samples:  %d (%d features, %d held out)\n", n, d, len(split.YTest))
	fmt.Fprintf(stdout, "classes:  %v\n", clf.Classes())
	fmt.Fprintf(stdout, "loss:     %s\n", clf.Loss().Name())
	fmt.Fprintf(stdout, "accuracy: %.4f\n", acc)
	return nil
}

// splitRand seeds the train/test split. Negative seeds use the clock.
func splitRand(seed int64) *rand.Rand {
	if seed < 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed))) //nolint:gosec // Reproducible split
}
