// palettectl drives the Palette API from the command line.
//
// Usage:
//
//	palettectl generate --space room.jpg --inspiration inspo.jpg --tier mid [--pdf plan.pdf]
//	palettectl sample
//	palettectl check plan.json
//	palettectl export --out plan.pdf plan.json
//	palettectl migrate --database-url postgres://...
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

var version = "dev"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "palettectl",
		Usage:   "Generate design plans and cost estimates with the Palette API",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
		},
		Commands: []*cli.Command{
			generateCommand(),
			sampleCommand(),
			checkCommand(),
			exportCommand(),
			migrateCommand(),
		},
	}
}
