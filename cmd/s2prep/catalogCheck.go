package main

import (
	"fmt"

	"github.com/vermeulendivan/s2prep/catalog"
	"github.com/vermeulendivan/s2prep/util"
	cli "gopkg.in/urfave/cli.v1"
)

func catalogCheckAction(c *cli.Context) error {
	logContext := &(util.BasicLogContext{})

	args := c.Args()
	if len(args) != 1 {
		return cli.NewExitError("usage: s2prep catalog-check CATALOG", 1)
	}

	good, bad, err := catalog.Validate(logContext, args[0])
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	fmt.Fprintf(c.App.Writer, "%d well-formed rows, %d error rows\n", good, bad)
	if bad > 0 {
		return cli.NewExitError(fmt.Sprintf("catalog %s has %d error rows", args[0], bad), 1)
	}
	return nil
}
