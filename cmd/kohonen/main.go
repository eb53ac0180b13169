// Command kohonen fits a self-organizing map to a CSV file and renders the
// per-node observation counts as a shaded grid.
//
//	kohonen train --input data.csv --width 5 --height 5 --epochs 20 --shading red --out som.png
package main

import (
	"os"

	logging "github.com/ipfs/go-log"
	cli "github.com/urfave/cli/v2"
)

var log = logging.Logger("kohonen")

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "kohonen"
	app.Usage = "fit a self-organizing map to numeric CSV data"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Value:   "info",
			EnvVars: []string{"KOHONEN_LOG_LEVEL"},
		},
	}
	app.Before = func(cctx *cli.Context) error {
		return logging.SetLogLevel("kohonen", cctx.String("log-level"))
	}
	app.Commands = []*cli.Command{
		trainCmd,
	}
	return app
}
