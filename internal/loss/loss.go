// Package loss implements the margin-based loss functions used by the SGD
// classifier.
//
// Every loss is a function of the signed margin z = y·p, where y ∈ {-1, +1}
// is the target and p is the raw score of a sample. Deriv returns the
// derivative of the loss with respect to p, which the trainer uses directly
// as the per-sample gradient direction.
//
// Reference: T. Zhang, "Solving Large Scale Linear Prediction Problems Using
// Stochastic Gradient Descent Algorithms", ICML 2004, section 4.
package loss

import (
	"math"

	"github.com/cockroachdb/errors"
)

// ErrUnknown is returned by Parse for names outside the supported family.
var ErrUnknown = errors.New("unknown loss function")

// logisticClamp bounds the margin beyond which the logistic derivative
// switches to its asymptotic form.
const logisticClamp = 18.0

// Loss is a margin-based classification loss.
//
// The set of implementations is closed: Hinge, Logistic, ModifiedHuber and
// SquaredHinge.
type Loss interface {
	// Deriv returns dLoss/dp for target y and score p.
	Deriv(y, p float64) float64

	// Value returns the loss for target y and score p.
	Value(y, p float64) float64

	// Name returns the configuration name of the loss.
	Name() string

	sealed()
}

// Hinge is the SVM loss max(0, 1 - z).
type Hinge struct{}

// Deriv returns -y inside the margin and 0 outside it.
func (Hinge) Deriv(y, p float64) float64 {
	if y*p < 1 {
		return -y
	}
	return 0
}

// Value returns max(0, 1 - y·p).
func (Hinge) Value(y, p float64) float64 {
	return math.Max(0, 1-y*p)
}

// Name returns "HingeLoss".
func (Hinge) Name() string { return "HingeLoss" }

func (Hinge) sealed() {}

// Logistic is the log loss ln(1 + exp(-z)).
type Logistic struct{}

// Deriv returns -y / (1 + exp(z)).
//
// For z > 18 the asymptotic -y·exp(-z) is used and for z < -18 the
// derivative saturates to exactly -y.
func (Logistic) Deriv(y, p float64) float64 {
	z := y * p
	switch {
	case z > logisticClamp:
		return -y * math.Exp(-z)
	case z < -logisticClamp:
		return -y
	}
	return -y / (1 + math.Exp(z))
}

// Value returns ln(1 + exp(-y·p)) without overflowing for large |z|.
func (Logistic) Value(y, p float64) float64 {
	z := y * p
	switch {
	case z > logisticClamp:
		return math.Exp(-z)
	case z < -logisticClamp:
		return -z
	}
	return math.Log1p(math.Exp(-z))
}

// Name returns "LogisticLoss".
func (Logistic) Name() string { return "LogisticLoss" }

func (Logistic) sealed() {}

// ModifiedHuber is the smoothed hinge loss: 0 for z > 1, (1-z)² for
// -1 <= z <= 1 and -4z for z < -1.
type ModifiedHuber struct{}

// Deriv returns the piecewise derivative of the modified Huber loss.
func (ModifiedHuber) Deriv(y, p float64) float64 {
	z := y * p
	switch {
	case z > 1:
		return 0
	case z < -1:
		return -4 * y
	}
	return 2 * (1 - z) * -y
}

// Value returns the modified Huber loss.
func (ModifiedHuber) Value(y, p float64) float64 {
	z := y * p
	switch {
	case z > 1:
		return 0
	case z < -1:
		return -4 * z
	}
	return (1 - z) * (1 - z)
}

// Name returns "ModifiedHuberLoss".
func (ModifiedHuber) Name() string { return "ModifiedHuberLoss" }

func (ModifiedHuber) sealed() {}

// SquaredHinge is max(0, 1 - z)².
type SquaredHinge struct{}

// Deriv returns 2(1-z)(-y) inside the margin and 0 outside it.
func (SquaredHinge) Deriv(y, p float64) float64 {
	z := y * p
	if z > 1 {
		return 0
	}
	return 2 * (1 - z) * -y
}

// Value returns max(0, 1 - y·p)².
func (SquaredHinge) Value(y, p float64) float64 {
	z := y * p
	if z > 1 {
		return 0
	}
	return (1 - z) * (1 - z)
}

// Name returns "SquaredHingeLoss".
func (SquaredHinge) Name() string { return "SquaredHingeLoss" }

func (SquaredHinge) sealed() {}

// registry maps configuration names to losses. Order matches Names.
var registry = []Loss{Hinge{}, Logistic{}, ModifiedHuber{}, SquaredHinge{}}

// Parse returns the loss registered under name.
func Parse(name string) (Loss, error) {
	for _, l := range registry {
		if l.Name() == name {
			return l, nil
		}
	}
	return nil, errors.Wrapf(ErrUnknown, "%q (want one of %v)", name, Names())
}

// Names lists the accepted loss names.
func Names() []string {
	names := make([]string, len(registry))
	for i, l := range registry {
		names[i] = l.Name()
	}
	return names
}
