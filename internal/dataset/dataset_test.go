package dataset

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func TestBlobs(t *testing.T) {
	X, y, err := Blobs(MultiBlobs(), newRand(1))
	require.NoError(t, err)

	n, d := X.Dims()
	assert.Equal(t, 1000, n)
	assert.Equal(t, 2, d)
	require.Len(t, y, 1000)

	counts := map[int]int{}
	for _, label := range y {
		counts[label]++
	}
	assert.Equal(t, map[int]int{0: 334, 1: 333, 2: 333}, counts)

	// Cluster means land near their centers.
	centers := MultiBlobs().Centers
	for label, c := range centers {
		var xs, ys []float64
		for i, l := range y {
			if l == label {
				xs = append(xs, X.At(i, 0))
				ys = append(ys, X.At(i, 1))
			}
		}
		assert.InDelta(t, c[0], stat.Mean(xs, nil), 0.25)
		assert.InDelta(t, c[1], stat.Mean(ys, nil), 0.25)
	}
}

func TestBlobs_Deterministic(t *testing.T) {
	X1, y1, err := Blobs(BinaryBlobs().Skewed(), newRand(7))
	require.NoError(t, err)
	X2, y2, err := Blobs(BinaryBlobs().Skewed(), newRand(7))
	require.NoError(t, err)

	assert.True(t, mat.Equal(X1, X2))
	assert.Equal(t, y1, y2)
}

func TestBlobs_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  BlobsConfig
	}{
		{"no centers", BlobsConfig{Samples: 10}},
		{"too few samples", BlobsConfig{Centers: [][]float64{{0}, {1}}, Samples: 1}},
		{"ragged centers", BlobsConfig{Centers: [][]float64{{0, 0}, {1}}, Samples: 10}},
		{"bad transform", BlobsConfig{Centers: [][]float64{{0, 0}}, Samples: 10, Transform: [][]float64{{1}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Blobs(tt.cfg, newRand(1))
			assert.Error(t, err)
		})
	}
}

func TestAddBias(t *testing.T) {
	X := mat.NewDense(2, 2, []float64{3, 4, 5, 6})
	got := AddBias(X)

	want := mat.NewDense(2, 3, []float64{1, 3, 4, 1, 5, 6})
	assert.True(t, mat.Equal(want, got), "got %v", mat.Formatted(got))
}

func TestTrainTestSplit(t *testing.T) {
	X := mat.NewDense(10, 1, []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
	y := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	s, err := TrainTestSplit(X, y, 0.2, newRand(42))
	require.NoError(t, err)

	r, _ := s.XTest.Dims()
	assert.Equal(t, 2, r)
	r, _ = s.XTrain.Dims()
	assert.Equal(t, 8, r)

	// Rows stay paired with their labels and nothing is lost.
	seen := map[int]bool{}
	for i, label := range s.YTrain {
		assert.Equal(t, float64(label), s.XTrain.At(i, 0))
		seen[label] = true
	}
	for i, label := range s.YTest {
		assert.Equal(t, float64(label), s.XTest.At(i, 0))
		seen[label] = true
	}
	assert.Len(t, seen, 10)
}

func TestTrainTestSplit_Errors(t *testing.T) {
	X := mat.NewDense(3, 1, nil)

	_, err := TrainTestSplit(X, []int{1, 2}, 0.2, newRand(1))
	assert.Error(t, err)

	_, err = TrainTestSplit(X, []int{1, 2, 3}, 1.5, newRand(1))
	assert.Error(t, err)

	_, err = TrainTestSplit(mat.NewDense(1, 1, nil), []int{1}, 0.5, newRand(1))
	assert.Error(t, err)
}

func TestAccuracy(t *testing.T) {
	acc, err := Accuracy([]string{"a", "b", "c", "a"}, []string{"a", "b", "a", "a"})
	require.NoError(t, err)
	assert.Equal(t, 0.75, acc)

	_, err = Accuracy([]int{1}, []int{1, 2})
	assert.Error(t, err)

	_, err = Accuracy([]int{}, []int{})
	assert.Error(t, err)
}

func TestReadCSV(t *testing.T) {
	input := "x1,x2,label\n1.5,2,setosa\n-3, 4e1, versicolor\n"

	tbl, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"x1", "x2"}, tbl.Header)
	assert.Equal(t, []string{"setosa", "versicolor"}, tbl.Labels)
	assert.True(t, mat.Equal(mat.NewDense(2, 2, []float64{1.5, 2, -3, 40}), tbl.X))
}

func TestReadCSV_NoHeader(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader("0,1,0\n1,0,1\n"))
	require.NoError(t, err)

	assert.Nil(t, tbl.Header)
	assert.Equal(t, []string{"0", "1"}, tbl.Labels)
}

func TestReadCSV_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"header only", "a,b\n"},
		{"label only", "1\n2\n"},
		{"bad feature", "1,2,a\nx,2,b\n"},
		{"ragged", "1,2,a\n1,b\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}
