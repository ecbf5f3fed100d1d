package main

import (
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/born-ml/linear/sgd"
)

// fileConfig is the YAML form of the classifier hyperparameters. Keys keep
// their historical names, including the "penality" spelling.
type fileConfig struct {
	IterNum      *int     `yaml:"iter_num"`
	LossType     *string  `yaml:"loss_type"`
	Eta0         *float64 `yaml:"eta0"`
	Alpha        *float64 `yaml:"alpha"`
	LearningRate *string  `yaml:"learning_rate"`
	Penality     *string  `yaml:"penality"`
	Seed         *int64   `yaml:"seed"`
}

// loadConfig overlays the YAML file at path on sgd.DefaultConfig. An empty
// path returns the defaults.
func loadConfig(path string) (sgd.Config, error) {
	cfg := sgd.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "failed to read config")
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg, errors.Wrapf(err, "failed to parse config %s", path)
	}
	fc.apply(&cfg)
	return cfg, nil
}

func (fc fileConfig) apply(cfg *sgd.Config) {
	if fc.IterNum != nil {
		cfg.Epochs = *fc.IterNum
	}
	if fc.LossType != nil {
		cfg.Loss = *fc.LossType
	}
	if fc.Eta0 != nil {
		cfg.Eta0 = *fc.Eta0
	}
	if fc.Alpha != nil {
		cfg.Alpha = *fc.Alpha
	}
	if fc.LearningRate != nil {
		cfg.LearningRate = sgd.LearningRate(*fc.LearningRate)
	}
	if fc.Penality != nil {
		cfg.Penalty = sgd.Penalty(*fc.Penality)
	}
	if fc.Seed != nil {
		cfg.Seed = *fc.Seed
	}
}
