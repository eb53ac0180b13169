package som_test

import (
	"fmt"

	"github.com/katalvlaran/kohonen/som"
)

// ExampleTrainer walks a trainer through its lifecycle on a tiny dataset.
// The exact node numbers depend on the seed; the contract does not.
func ExampleTrainer() {
	rows := [][]float64{
		{1.0, 1.1}, {1.2, 0.9}, {0.8, 1.0},
		{5.0, 5.2}, {5.1, 4.9}, {4.8, 5.0},
	}
	tr, err := som.NewFromRows(rows, 2, 1, 20)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("state:", tr.State())

	if err := tr.Train(som.NewRand(7)); err != nil {
		fmt.Println("error:", err)
		return
	}
	nodes, _ := tr.Nodes()
	dists, _ := tr.Distances()

	inRange := true
	for i := range nodes {
		if nodes[i] < 0 || nodes[i] >= 2 || dists[i] < 0 {
			inRange = false
		}
	}
	fmt.Println("state:", tr.State())
	fmt.Println("observations:", len(nodes))
	fmt.Println("valid:", inRange)
	fmt.Println("standardized:", tr.Standardized())

	// Output:
	// state: created
	// state: trained
	// observations: 6
	// valid: true
	// standardized: true
}
