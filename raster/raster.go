// Package raster wraps the GDAL-backed transform operations: stack, restack,
// reproject, copy and delete. All pixel work is delegated to godal; this
// package validates arguments and manages output files.
//
// Outputs are written in place, not via temp-and-rename, so an interrupted
// run can leave a half-written raster behind. Known risk, matching the
// single-operator batch usage.
package raster

import (
	"os"
	"strings"

	"github.com/airbusgeo/godal"
	"github.com/vermeulendivan/s2prep/util"
)

const defaultFormat = "GTiff"

// Context carries the output settings shared by the raster operations
type Context struct {
	// Format is the GDAL driver name for outputs, e.g. "GTiff"
	Format    string
	Overwrite bool
	TempDir   string

	sessionID string
}

// NewContext builds a raster Context from the run configuration
func NewContext(cfg util.Config) *Context {
	return &Context{
		Format:    cfg.Format,
		Overwrite: cfg.Overwrite,
		TempDir:   cfg.TempDir,
	}
}

// AppName returns the application name
func (c *Context) AppName() string {
	return "s2prep"
}

// SessionID returns a Session ID, creating one if needed
func (c *Context) SessionID() string {
	if c.sessionID == "" {
		c.sessionID, _ = util.PsuUUID()
	}
	return c.sessionID
}

// LogRootDir returns an empty string
func (c *Context) LogRootDir() string {
	return ""
}

func (c *Context) driverName() string {
	if c.Format == "" {
		return defaultFormat
	}
	return c.Format
}

// skipOutput reports whether an operation should be skipped because the
// output already exists and overwrite is disabled. The skip is logged; the
// existing output is left untouched.
func skipOutput(ctx *Context, output string) bool {
	if _, err := os.Stat(output); err == nil && !ctx.Overwrite {
		util.LogInfo(ctx, "Output "+output+" already exists, skipping")
		return true
	}
	return false
}

// DataType returns the lower-cased name of the raster's first band data
// type, e.g. "uint16"
func DataType(path string) (string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "", util.MissingInput("Raster does not exist: " + path)
	}

	dataset, err := godal.Open(path)
	if err != nil {
		return "", err
	}
	defer dataset.Close()

	bands := dataset.Bands()
	if len(bands) == 0 {
		return "", util.InvalidArgument("Raster has no bands: " + path)
	}
	return strings.ToLower(bands[0].Structure().DataType.String()), nil
}
