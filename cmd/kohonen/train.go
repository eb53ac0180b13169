package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	cli "github.com/urfave/cli/v2"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/kohonen/dataset"
	"github.com/katalvlaran/kohonen/grid"
	"github.com/katalvlaran/kohonen/heatmap"
	"github.com/katalvlaran/kohonen/som"
)

var trainCmd = &cli.Command{
	Name:  "train",
	Usage: "train a map and write the count heatmap",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "input",
			Aliases:  []string{"i"},
			Usage:    "CSV file with a header line and numeric rows",
			Required: true,
		},
		&cli.IntFlag{
			Name:    "width",
			Value:   5,
			EnvVars: []string{"KOHONEN_WIDTH"},
		},
		&cli.IntFlag{
			Name:    "height",
			Value:   5,
			EnvVars: []string{"KOHONEN_HEIGHT"},
		},
		&cli.IntFlag{
			Name:    "epochs",
			Value:   20,
			EnvVars: []string{"KOHONEN_EPOCHS"},
		},
		&cli.StringFlag{
			Name:    "shading",
			Value:   "red",
			Usage:   "red, green or blue",
			EnvVars: []string{"KOHONEN_SHADING"},
		},
		&cli.Int64Flag{
			Name:    "seed",
			Usage:   "random seed; 0 selects the fixed default seed",
			EnvVars: []string{"KOHONEN_SEED"},
		},
		&cli.StringFlag{
			Name:  "out",
			Value: "som.png",
			Usage: "heatmap image path; the extension picks the format",
		},
		&cli.Float64Flag{
			Name:  "size-cm",
			Value: 12,
			Usage: "heatmap side length in centimeters",
		},
		&cli.StringFlag{
			Name:  "assignments",
			Usage: "optional CSV path for observation,node,distance rows",
		},
	},
	Action: func(cctx *cli.Context) error {
		ch, err := heatmap.ParseChannel(cctx.String("shading"))
		if err != nil {
			return err
		}
		width, height, epochs := cctx.Int("width"), cctx.Int("height"), cctx.Int("epochs")

		log.Infof("reading %s", cctx.String("input"))
		tbl, err := dataset.ReadFile(cctx.String("input"))
		if err != nil {
			return err
		}
		g, err := grid.New(tbl.Rows)
		if err != nil {
			return err
		}
		if g.HasZeroVarianceColumn() {
			log.Warnf("a column has zero variance; training on unstandardized data")
		}

		tr, err := som.New(g, width, height, epochs)
		if err != nil {
			return err
		}
		log.Infof("training %dx%d map on %d rows x %d columns for %d epochs", width, height, g.Rows(), g.Cols(), epochs)
		if err := tr.Train(som.NewRand(cctx.Int64("seed"))); err != nil {
			return err
		}
		log.Infof("ran %d of %d iterations", tr.Iterations(), tr.TotalIterations())

		nodes, err := tr.Nodes()
		if err != nil {
			return err
		}
		m, err := heatmap.New(nodes, width, height)
		if err != nil {
			return err
		}
		fmt.Fprint(cctx.App.Writer, m)
		log.Infof("%d occupied region(s), busiest node holds %d rows", len(m.Regions(1)), m.Max())

		out := cctx.String("out")
		title := fmt.Sprintf("%s (%dx%d, %d epochs)", filepath.Base(cctx.String("input")), width, height, epochs)
		if err := m.Save(out, ch, title, vg.Length(cctx.Float64("size-cm"))*vg.Centimeter); err != nil {
			return err
		}
		log.Infof("wrote %s", out)

		if path := cctx.String("assignments"); path != "" {
			dists, err := tr.Distances()
			if err != nil {
				return err
			}
			if err := writeAssignments(path, nodes, dists); err != nil {
				return err
			}
			log.Infof("wrote %s", path)
		}
		return nil
	},
}

// writeAssignments stores one observation,node,distance line per row.
func writeAssignments(path string, nodes []int, dists []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"observation", "node", "distance"}); err != nil {
		return err
	}
	for i := range nodes {
		rec := []string{
			strconv.Itoa(i),
			strconv.Itoa(nodes[i]),
			strconv.FormatFloat(dists[i], 'g', -1, 64),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}
