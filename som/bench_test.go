package som_test

import (
	"testing"

	"github.com/katalvlaran/kohonen/som"
)

// benchmarkTrain fits a width×height map to n rows of c features per iteration.
func benchmarkTrain(b *testing.B, n, c, width, height, epochs int) {
	rows := blobs(n, c, 42)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr, err := som.NewFromRows(rows, width, height, epochs)
		if err != nil {
			b.Fatalf("NewFromRows failed: %v", err)
		}
		if err := tr.Train(som.NewRand(int64(i + 1))); err != nil {
			b.Fatalf("Train failed: %v", err)
		}
	}
}

// BenchmarkTrain_Small: 200×4 data on a 5×5 map, 5 epochs.
func BenchmarkTrain_Small(b *testing.B) { benchmarkTrain(b, 200, 4, 5, 5, 5) }

// BenchmarkTrain_Wide: 1000×16 data on a 10×10 map, 2 epochs.
func BenchmarkTrain_Wide(b *testing.B) { benchmarkTrain(b, 1000, 16, 10, 10, 2) }
