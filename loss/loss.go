// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package loss exposes the margin-based losses available to the SGD
// classifier.
package loss

import "github.com/born-ml/linear/internal/loss"

// Loss is a margin-based classification loss.
type Loss = loss.Loss

// Supported losses.
type (
	Hinge         = loss.Hinge
	Logistic      = loss.Logistic
	ModifiedHuber = loss.ModifiedHuber
	SquaredHinge  = loss.SquaredHinge
)

// ErrUnknown is returned by Parse for unsupported names.
var ErrUnknown = loss.ErrUnknown

// Parse returns the loss registered under name, e.g. "HingeLoss".
func Parse(name string) (Loss, error) {
	return loss.Parse(name)
}

// Names lists the accepted loss names.
func Names() []string {
	return loss.Names()
}
