package main

import (
	"strings"

	"github.com/vermeulendivan/s2prep/projection"
	"github.com/vermeulendivan/s2prep/raster"
	"github.com/vermeulendivan/s2prep/util"
	cli "gopkg.in/urfave/cli.v1"
)

func stackAction(c *cli.Context) error {
	logContext := &(util.BasicLogContext{})
	cfg := util.ConfigFromEnv(logContext)

	args := c.Args()
	if len(args) < 2 {
		return cli.NewExitError("usage: s2prep stack OUTPUT BAND [BAND...]", 1)
	}

	if err := raster.Stack(raster.NewContext(cfg), args[1:], args[0]); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	return nil
}

func restackAction(c *cli.Context) error {
	logContext := &(util.BasicLogContext{})
	cfg := util.ConfigFromEnv(logContext)

	args := c.Args()
	if len(args) != 2 {
		return cli.NewExitError("usage: s2prep restack INPUT OUTPUT", 1)
	}

	if err := raster.Restack(raster.NewContext(cfg), args[0], args[1], cfg.BandRestack); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	return nil
}

func projectAction(c *cli.Context) error {
	logContext := &(util.BasicLogContext{})
	cfg := util.ConfigFromEnv(logContext)

	args := c.Args()
	if len(args) != 2 {
		return cli.NewExitError("usage: s2prep project INPUT OUTPUT", 1)
	}

	target, err := projection.Resolve(cfg.CoordinateSystem)
	if err != nil {
		return cli.NewExitError(err.Error()+"; supported: "+strings.Join(projection.Names(), ", "), 1)
	}
	if err := raster.Project(raster.NewContext(cfg), args[0], args[1], cfg.Resampling, target); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	return nil
}

func copyAction(c *cli.Context) error {
	logContext := &(util.BasicLogContext{})
	cfg := util.ConfigFromEnv(logContext)

	args := c.Args()
	if len(args) != 2 {
		return cli.NewExitError("usage: s2prep copy INPUT OUTPUT", 1)
	}

	if err := raster.Copy(raster.NewContext(cfg), args[0], args[1], cfg.Overwrite); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	return nil
}

func footprintAction(c *cli.Context) error {
	logContext := &(util.BasicLogContext{})
	cfg := util.ConfigFromEnv(logContext)

	args := c.Args()
	if len(args) != 2 {
		return cli.NewExitError("usage: s2prep footprint INPUT OUTPUT", 1)
	}

	if err := raster.Footprint(raster.NewContext(cfg), args[0], args[1]); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	return nil
}
