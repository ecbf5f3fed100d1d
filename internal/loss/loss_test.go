package loss

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriv(t *testing.T) {
	tests := []struct {
		name string
		loss Loss
		y, p float64
		want float64
	}{
		{"hinge inside margin", Hinge{}, 1, 0.5, -1},
		{"hinge negative target inside margin", Hinge{}, -1, 0.5, 1},
		{"hinge at margin", Hinge{}, 1, 1, 0},
		{"hinge outside margin", Hinge{}, -1, -3, 0},
		{"logistic at zero", Logistic{}, 1, 0, -0.5},
		{"logistic negative target", Logistic{}, -1, 0, 0.5},
		{"huber outside margin", ModifiedHuber{}, 1, 2, 0},
		{"huber quadratic region", ModifiedHuber{}, 1, 0, -2},
		{"huber linear region", ModifiedHuber{}, -1, 3, 4},
		{"squared hinge outside margin", SquaredHinge{}, 1, 1.5, 0},
		{"squared hinge inside margin", SquaredHinge{}, -1, 1, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.loss.Deriv(tt.y, tt.p), 1e-12)
		})
	}
}

func TestDeriv_Continuity(t *testing.T) {
	const eps = 1e-6

	for _, y := range []float64{-1, 1} {
		// p = z/y keeps the margin at the requested z.
		for _, l := range []Loss{ModifiedHuber{}, SquaredHinge{}} {
			below := l.Deriv(y, (1-eps)/y)
			above := l.Deriv(y, (1+eps)/y)
			assert.InDelta(t, below, above, 4*eps, "%s at z=1, y=%v", l.Name(), y)
		}

		below := ModifiedHuber{}.Deriv(y, (-1-eps)/y)
		above := ModifiedHuber{}.Deriv(y, (-1+eps)/y)
		assert.InDelta(t, below, above, 4*eps, "ModifiedHuberLoss at z=-1, y=%v", y)
	}
}

func TestLogistic_Clamps(t *testing.T) {
	for _, y := range []float64{-1, 1} {
		z := 19.0
		assert.Equal(t, -y*math.Exp(-z), Logistic{}.Deriv(y, z/y), "z=19, y=%v", y)
		assert.Equal(t, -y, Logistic{}.Deriv(y, -z/y), "z=-19, y=%v", y)
	}

	// The clamped and unclamped forms agree near the threshold.
	inside := Logistic{}.Deriv(1, 17.999)
	outside := Logistic{}.Deriv(1, 18.001)
	assert.InDelta(t, inside, outside, 1e-9)

	assert.False(t, math.IsNaN(Logistic{}.Deriv(1, 1e308)))
	assert.False(t, math.IsInf(Logistic{}.Value(1, -1e308), 0))
}

func TestValue(t *testing.T) {
	assert.Equal(t, 0.5, Hinge{}.Value(1, 0.5))
	assert.Equal(t, 0.0, Hinge{}.Value(1, 2))
	assert.InDelta(t, math.Ln2, Logistic{}.Value(1, 0), 1e-12)
	assert.Equal(t, 20.0, Logistic{}.Value(1, -20))
	assert.Equal(t, 12.0, ModifiedHuber{}.Value(1, -3))
	assert.Equal(t, 1.0, ModifiedHuber{}.Value(-1, 0))
	assert.Equal(t, 4.0, SquaredHinge{}.Value(-1, 1))
	assert.Equal(t, 0.0, SquaredHinge{}.Value(-1, -2))
}

// Deriv must match a central finite difference of Value away from the kinks.
func TestDeriv_MatchesValue(t *testing.T) {
	const h = 1e-6
	points := []float64{-3, -1.5, -0.4, 0.3, 0.8, 1.7, 5}

	for _, l := range []Loss{Hinge{}, Logistic{}, ModifiedHuber{}, SquaredHinge{}} {
		for _, y := range []float64{-1, 1} {
			for _, p := range points {
				numeric := (l.Value(y, p+h) - l.Value(y, p-h)) / (2 * h)
				assert.InDelta(t, numeric, l.Deriv(y, p), 1e-4, "%s y=%v p=%v", l.Name(), y, p)
			}
		}
	}
}

func TestParse(t *testing.T) {
	for _, name := range Names() {
		l, err := Parse(name)
		require.NoError(t, err)
		assert.Equal(t, name, l.Name())
	}

	_, err := Parse("EpsilonInsensitive")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknown)
	assert.Contains(t, err.Error(), "EpsilonInsensitive")
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"HingeLoss", "LogisticLoss", "ModifiedHuberLoss", "SquaredHingeLoss"}, Names())
}
