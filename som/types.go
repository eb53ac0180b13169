package som

// State is the trainer lifecycle: Created → Initialized → Trained.
type State int

const (
	// Created: constructed and validated; data not yet standardized.
	Created State = iota
	// Initialized: data standardized, weights seeded.
	Initialized
	// Trained: training loop finished, assignments available.
	Trained
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Created:
		return "created"
	case Initialized:
		return "initialized"
	case Trained:
		return "trained"
	default:
		return "unknown"
	}
}
