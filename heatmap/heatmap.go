package heatmap

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// DefaultLevels is the palette resolution used by Plot.
const DefaultLevels = 256

// Counts tallies how many assignments land on each of nodeCount nodes.
func Counts(nodes []int, nodeCount int) ([]int, error) {
	if nodeCount <= 0 {
		return nil, ErrInvalidShape
	}
	out := make([]int, nodeCount)
	for i, n := range nodes {
		if n < 0 || n >= nodeCount {
			return nil, fmt.Errorf("heatmap: observation %d on node %d of %d: %w", i, n, nodeCount, ErrNodeOutOfRange)
		}
		out[n]++
	}
	return out, nil
}

// Map holds per-node counts laid out on a Width×Height lattice.
type Map struct {
	width, height int
	counts        []float64
}

var _ plotter.GridXYZ = (*Map)(nil)

// New tallies nodes onto a width×height lattice.
func New(nodes []int, width, height int) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("heatmap: %dx%d: %w", width, height, ErrInvalidShape)
	}
	c, err := Counts(nodes, width*height)
	if err != nil {
		return nil, err
	}
	counts := make([]float64, len(c))
	for i, v := range c {
		counts[i] = float64(v)
	}
	return &Map{width: width, height: height, counts: counts}, nil
}

// Width returns the number of lattice columns.
func (m *Map) Width() int { return m.width }

// Height returns the number of lattice rows.
func (m *Map) Height() int { return m.height }

// Count returns the number of observations on the node at (x,y).
// Returns ErrNodeOutOfRange if (x,y) lies outside the lattice.
func (m *Map) Count(x, y int) (int, error) {
	i, err := m.index(x, y)
	if err != nil {
		return 0, err
	}
	return int(m.counts[i]), nil
}

func (m *Map) index(x, y int) (int, error) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0, fmt.Errorf("heatmap: (%d,%d) on %dx%d: %w", x, y, m.width, m.height, ErrNodeOutOfRange)
	}
	return x*m.height + y, nil
}

// Max returns the largest per-node count.
func (m *Map) Max() int { return int(floats.Max(m.counts)) }

// Total returns the number of observations tallied.
func (m *Map) Total() int { return int(floats.Sum(m.counts)) }

// Intensity returns Count(x,y)/Max(), or 0 for an empty map.
func (m *Map) Intensity(x, y int) (float64, error) {
	i, err := m.index(x, y)
	if err != nil {
		return 0, err
	}
	mx := floats.Max(m.counts)
	if mx == 0 {
		return 0, nil
	}
	return m.counts[i] / mx, nil
}

// Dims implements plotter.GridXYZ: columns are x, rows are y.
func (m *Map) Dims() (c, r int) { return m.width, m.height }

// Z implements plotter.GridXYZ.
func (m *Map) Z(c, r int) float64 { return m.counts[c*m.height+r] }

// X implements plotter.GridXYZ.
func (m *Map) X(c int) float64 { return float64(c) }

// Y implements plotter.GridXYZ.
func (m *Map) Y(r int) float64 { return float64(r) }

// Plot builds a gonum plot of the map shaded in channel ch.
func (m *Map) Plot(ch Channel, title string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	h := plotter.NewHeatMap(m, NewPalette(ch, DefaultLevels))
	// pin the scale to [0, max] so an all-equal map still renders
	h.Min = 0
	h.Max = floats.Max(m.counts)
	if h.Max == 0 {
		h.Max = 1
	}
	p.Add(h)

	return p
}

// Save renders the map to path; the extension picks the format
// (.png, .svg, .pdf, ...). size is the side length of a square image.
func (m *Map) Save(path string, ch Channel, title string, size vg.Length) error {
	if err := m.Plot(ch, title).Save(size, size, path); err != nil {
		return fmt.Errorf("heatmap: save %s: %w", path, err)
	}
	return nil
}

// Render writes the map in format (e.g. "png") to w.
func (m *Map) Render(w io.Writer, ch Channel, title, format string, size vg.Length) error {
	wt, err := m.Plot(ch, title).WriterTo(size, size, format)
	if err != nil {
		return fmt.Errorf("heatmap: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("heatmap: %w", err)
	}
	return nil
}

// String renders counts as text, highest y first so the layout matches the
// plot orientation.
func (m *Map) String() string {
	cells := make([]string, len(m.counts))
	wide := 1
	for i, v := range m.counts {
		cells[i] = strconv.Itoa(int(v))
		if len(cells[i]) > wide {
			wide = len(cells[i])
		}
	}
	var sb strings.Builder
	for y := m.height - 1; y >= 0; y-- {
		for x := 0; x < m.width; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%*s", wide, cells[x*m.height+y])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
