package main

import (
	"fmt"

	cli "gopkg.in/urfave/cli.v1"
)

const version = "0.1.0"

var commands = cli.Commands{
	cli.Command{
		Name:    "run",
		Aliases: []string{"r"},
		Usage:   "Run the full Sentinel-2 preparation pipeline over the input directory",
		Action:  runAction,
	},
	cli.Command{
		Name:      "stack",
		Usage:     "Stack single-band rasters into one multi-band raster",
		ArgsUsage: "OUTPUT BAND [BAND...]",
		Action:    stackAction,
	},
	cli.Command{
		Name:      "restack",
		Usage:     "Reorder or subset the bands of a raster (band list from " + "$S2PREP_BAND_RESTACK)",
		ArgsUsage: "INPUT OUTPUT",
		Action:    restackAction,
	},
	cli.Command{
		Name:      "project",
		Usage:     "Reproject a raster to the configured coordinate system",
		ArgsUsage: "INPUT OUTPUT",
		Action:    projectAction,
	},
	cli.Command{
		Name:      "copy",
		Usage:     "Copy a raster, converting it to the configured output format",
		ArgsUsage: "INPUT OUTPUT",
		Action:    copyAction,
	},
	cli.Command{
		Name:      "footprint",
		Usage:     "Write a raster's bounding box as a GeoJSON feature",
		ArgsUsage: "INPUT OUTPUT",
		Action:    footprintAction,
	},
	cli.Command{
		Name:      "catalog-check",
		Usage:     "Validate an existing catalog file",
		ArgsUsage: "CATALOG",
		Action:    catalogCheckAction,
	},
	cli.Command{
		Name:    "version",
		Aliases: []string{"v"},
		Usage:   "Print the version number of the s2prep CLI",
		Action:  versionAction,
	},
}

func createCliApp() (app *cli.App) {
	app = cli.NewApp()
	app.Name = "s2prep"
	app.Usage = "Batch preparation of Sentinel-2 rasters: stack, restack, reproject and catalog"
	app.Version = version
	app.Commands = commands
	return
}

func versionAction(c *cli.Context) error {
	fmt.Fprintln(c.App.Writer, version)
	return nil
}
