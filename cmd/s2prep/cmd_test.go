package main

import (
	"bytes"
	"flag"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/vermeulendivan/s2prep/util"
)

func TestCreateCliApp(t *testing.T) {
	app := createCliApp()
	assert.Equal(t, "s2prep", app.Name)
	assert.Equal(t, version, app.Version)

	var names []string
	for _, command := range app.Commands {
		names = append(names, command.Name)
	}
	for _, expected := range []string{
		"run", "stack", "restack", "project", "copy",
		"footprint", "catalog-check", "version",
	} {
		assert.Contains(t, names, expected, "Command %s is not registered", expected)
	}
}

func TestVersionCommand(t *testing.T) {
	app := createCliApp()
	buffer := &bytes.Buffer{}
	app.Writer = buffer

	err := app.Run([]string{"s2prep", "version"})
	assert.Nil(t, err, "%v", err)
	assert.Equal(t, version, strings.TrimSpace(buffer.String()))
}

func TestRunAction_UnconfiguredDirectories(t *testing.T) {
	t.Setenv(util.InputDirEnv, "")
	t.Setenv(util.OutputDirEnv, "")

	err := runAction(nil)
	assert.NotNil(t, err, "Unconfigured directories did not cause an error")
	assert.Contains(t, err.Error(), util.InputDirEnv)
}

func TestProjectAction_UnknownCoordinateSystem(t *testing.T) {
	t.Setenv(util.CoordinateSystemEnv, "mars")

	set := flag.NewFlagSet("test", 0)
	assert.Nil(t, set.Parse([]string{"input.tif", "output.tif"}))
	c := cli.NewContext(createCliApp(), set, nil)

	err := projectAction(c)
	assert.NotNil(t, err, "Unknown coordinate system did not cause an error")
	assert.Contains(t, err.Error(), "mars")
	// The error lists the supported names
	assert.Contains(t, err.Error(), "wgs84")
	assert.Contains(t, err.Error(), "utm_35s")
}

func TestWithSuffix(t *testing.T) {
	assert.Equal(t, "/out/scene_prj.tif", withSuffix("/out/scene.tif", "_prj"))
	assert.Equal(t, "/out/scene_restack.tif", withSuffix("/out/scene.tif", "_restack"))
	assert.Equal(t, "/out/scene_prj", withSuffix("/out/scene", "_prj"))
}
