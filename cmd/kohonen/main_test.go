package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kohonen/heatmap"
	"github.com/katalvlaran/kohonen/som"
	"github.com/katalvlaran/kohonen/topology"
)

// writeInput writes a header plus n rows of two well-separated clusters.
func writeInput(t *testing.T, n int) string {
	t.Helper()
	var sb strings.Builder
	sb.WriteString("a,b,c\n")
	for i := 0; i < n; i++ {
		base := float64((i % 2) * 10)
		fmt.Fprintf(&sb, "%g,%g,%g\n", base+float64(i%3)*0.1, base-float64(i%5)*0.1, base+float64(i%7)*0.05)
	}
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	app := newApp()
	var out bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"kohonen"}, args...))
	return out.String(), err
}

func TestTrainCommand(t *testing.T) {
	in := writeInput(t, 24)
	dir := t.TempDir()
	png := filepath.Join(dir, "som.png")
	assignments := filepath.Join(dir, "assign.csv")

	out, err := run(t, "--log-level", "error", "train",
		"--input", in, "--width", "2", "--height", "2", "--epochs", "3",
		"--shading", "blue", "--seed", "9", "--out", png, "--assignments", assignments)
	require.NoError(t, err)

	// two lines of two counts each, summing to the row count
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	total := 0
	for _, line := range lines {
		for _, f := range strings.Fields(line) {
			var v int
			_, err := fmt.Sscan(f, &v)
			require.NoError(t, err)
			total += v
		}
	}
	assert.Equal(t, 24, total)

	info, err := os.Stat(png)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	f, err := os.Open(assignments)
	require.NoError(t, err)
	defer f.Close()
	recs, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 25)
	assert.Equal(t, []string{"observation", "node", "distance"}, recs[0])
}

func TestTrainCommand_Errors(t *testing.T) {
	in := writeInput(t, 6)
	png := filepath.Join(t.TempDir(), "som.png")

	_, err := run(t, "--log-level", "error", "train", "--input", in, "--shading", "purple", "--out", png)
	assert.ErrorIs(t, err, heatmap.ErrUnknownChannel)

	_, err = run(t, "--log-level", "error", "train", "--input", in, "--width", "0", "--out", png)
	assert.ErrorIs(t, err, topology.ErrInvalidTopology)

	// default 5x5 map needs 25 rows
	_, err = run(t, "--log-level", "error", "train", "--input", in, "--out", png)
	assert.ErrorIs(t, err, som.ErrInsufficientRows)

	_, err = run(t, "--log-level", "error", "train", "--input", filepath.Join(t.TempDir(), "nope.csv"), "--out", png)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
