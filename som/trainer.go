package som

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/kohonen/grid"
	"github.com/katalvlaran/kohonen/matrix"
	"github.com/katalvlaran/kohonen/topology"
)

// Trainer fits a SOM to one dataset. It owns the grid it was given (Init
// standardizes it in place), the lattice, and the weight matrix.
type Trainer struct {
	data   *grid.Grid
	topo   *topology.Topology
	epochs int
	opts   Options

	state        State
	standardized bool
	weights      *matrix.Dense // NodeCount × Cols

	initialRadius float64
	learningRate  float64
	radius        float64
	total         int // T = epochs × rows
	steps         int // updates actually applied before the loop ended

	nodes     []int
	distances []float64
}

// New validates the configuration and returns a Trainer in the Created state.
//
// data is taken over by the Trainer: Init standardizes it in place, so
// callers that still need the raw values must keep their own copy.
//
// Errors (checked in this order):
//   - ErrNilGrid when data is nil.
//   - topology.ErrInvalidTopology when width <= 0 or height <= 0.
//   - ErrInvalidEpochs when epochs <= 0.
//   - ErrInsufficientRows when width*height > data.Rows().
func New(data *grid.Grid, width, height, epochs int, opts ...Option) (*Trainer, error) {
	if data == nil {
		return nil, ErrNilGrid
	}
	topo, err := topology.New(width, height)
	if err != nil {
		return nil, fmt.Errorf("som: %w", err)
	}
	if epochs <= 0 {
		return nil, fmt.Errorf("som: epochs=%d: %w", epochs, ErrInvalidEpochs)
	}
	if topo.NodeCount() > data.Rows() {
		return nil, fmt.Errorf("som: %d nodes, %d rows: %w", topo.NodeCount(), data.Rows(), ErrInsufficientRows)
	}

	return &Trainer{
		data:   data,
		topo:   topo,
		epochs: epochs,
		opts:   gatherOptions(opts),
		state:  Created,
	}, nil
}

// NewFromRows builds the grid from rows (copied) and calls New.
// Shape violations surface as grid.ErrInvalidDimensions.
func NewFromRows(rows [][]float64, width, height, epochs int, opts ...Option) (*Trainer, error) {
	g, err := grid.New(rows)
	if err != nil {
		return nil, err
	}
	return New(g, width, height, epochs, opts...)
}

// Init standardizes the training data, then seeds every node with a
// distinct row drawn uniformly without replacement. A nil rng uses the
// default deterministic stream.
//
// If a column has zero variance standardization is skipped and training
// proceeds on the raw values; Standardized reports which happened.
func (t *Trainer) Init(rng *rand.Rand) error {
	if t.state != Created {
		return ErrAlreadyInitialized
	}
	rng = orDefault(rng)

	rows, n := t.data.Rows(), t.topo.NodeCount()
	if n > rows {
		return fmt.Errorf("som: %d nodes, %d rows: %w", n, rows, ErrInsufficientRows)
	}

	t.standardized = t.data.Standardize()

	w, err := matrix.NewDense(n, t.data.Cols())
	if err != nil {
		return fmt.Errorf("som: %w", err)
	}
	for node, row := range sampleWithoutReplacement(rows, n, rng) {
		copy(w.RowView(node), t.data.RowView(row))
	}
	t.weights = w

	t.initialRadius = t.opts.RadiusFactor * t.topo.DistanceVariance()
	t.radius = t.initialRadius
	t.learningRate = t.opts.LearningRate
	t.total = t.epochs * rows
	t.state = Initialized

	return nil
}

// Train runs epochs×rows online updates and then assigns every observation
// to its nearest node. It calls Init first if needed. The same rng drives
// both the initial sample and the observation draws.
func (t *Trainer) Train(rng *rand.Rand) error {
	rng = orDefault(rng)
	switch t.state {
	case Trained:
		return ErrAlreadyTrained
	case Created:
		if err := t.Init(rng); err != nil {
			return err
		}
	}

	var (
		rows     = t.data.Rows()
		n        = t.topo.NodeCount()
		total    = float64(t.total)
		rateStep = t.opts.LearningRate / total
		diff     = make([]float64, t.data.Cols())
	)

	for step := 0; step < t.total; step++ {
		obs := t.data.RowView(rng.Intn(rows))
		bmu, _ := t.nearest(obs)

		t.learningRate -= rateStep
		t.radius = t.initialRadius * math.Exp(-t.opts.RadiusDecay*float64(step)/total)
		if t.learningRate <= 0 || t.radius <= 0 {
			break
		}

		reach := t.topo.DistancesFrom(bmu)
		for l := 0; l < n; l++ {
			if reach[l] > t.radius {
				continue
			}
			w := t.weights.RowView(l)
			floats.SubTo(diff, obs, w)
			floats.AddScaled(w, t.learningRate, diff)
		}
		t.steps++
	}

	t.assign()
	t.state = Trained

	return nil
}

// assign records, for every observation, its nearest node and the squared
// residual distance.
func (t *Trainer) assign() {
	rows := t.data.Rows()
	t.nodes = make([]int, rows)
	t.distances = make([]float64, rows)
	for i := 0; i < rows; i++ {
		t.nodes[i], t.distances[i] = t.nearest(t.data.RowView(i))
	}
}

// Nodes returns, in observation order, the index of each observation's
// nearest node. Requires the Trained state.
func (t *Trainer) Nodes() ([]int, error) {
	if t.state != Trained {
		return nil, ErrNotTrained
	}
	out := make([]int, len(t.nodes))
	copy(out, t.nodes)
	return out, nil
}

// Distances returns the squared Euclidean residuals paired with Nodes.
func (t *Trainer) Distances() ([]float64, error) {
	if t.state != Trained {
		return nil, ErrNotTrained
	}
	out := make([]float64, len(t.distances))
	copy(out, t.distances)
	return out, nil
}

// Weights returns a copy of the NodeCount×Cols prototype matrix.
func (t *Trainer) Weights() (*matrix.Dense, error) {
	if t.state == Created {
		return nil, ErrNotInitialized
	}
	return t.weights.Clone(), nil
}

// Predict returns the nearest node and squared distance for x, which must
// already be on the training scale (standardized when Standardized is true).
func (t *Trainer) Predict(x []float64) (int, float64, error) {
	if t.state == Created {
		return 0, 0, ErrNotInitialized
	}
	if len(x) != t.data.Cols() {
		return 0, 0, fmt.Errorf("som: got %d values, want %d: %w", len(x), t.data.Cols(), ErrDimensionMismatch)
	}
	node, d := t.nearest(x)
	return node, d, nil
}

// Topology returns the lattice the nodes live on.
func (t *Trainer) Topology() *topology.Topology { return t.topo }

// State returns the lifecycle stage.
func (t *Trainer) State() State { return t.state }

// Standardized reports whether Init standardized the data. It is false
// before Init and when a zero-variance column blocked the transform.
func (t *Trainer) Standardized() bool { return t.standardized }

// Epochs returns the configured epoch count.
func (t *Trainer) Epochs() int { return t.epochs }

// TotalIterations returns epochs×rows.
func (t *Trainer) TotalIterations() int { return t.epochs * t.data.Rows() }

// Iterations returns how many update steps ran before the loop ended,
// which is below TotalIterations when the decayed parameters hit zero.
func (t *Trainer) Iterations() int { return t.steps }

// LearningRate returns the current (decayed) learning rate.
func (t *Trainer) LearningRate() float64 { return t.learningRate }

// Radius returns the current neighborhood radius.
func (t *Trainer) Radius() float64 { return t.radius }

// InitialRadius returns radius₀; zero before Init.
func (t *Trainer) InitialRadius() float64 { return t.initialRadius }
