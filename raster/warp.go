package raster

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/airbusgeo/godal"
	"github.com/vermeulendivan/s2prep/util"
)

// resamplingMethods maps the supported method names to warp arguments
var resamplingMethods = map[string]string{
	"nearest":  "near",
	"bilinear": "bilinear",
	"cubic":    "cubic",
}

const defaultResampling = "near"

// ResamplingMethod translates a method name ("nearest", "bilinear" or
// "cubic", any case) to its warp argument. Unknown names fall back to
// nearest neighbour with a warning; this leniency is deliberate.
func ResamplingMethod(ctx util.LogContext, name string) string {
	if method, ok := resamplingMethods[strings.ToLower(name)]; ok {
		return method
	}
	util.LogWarn(ctx, "Unknown resampling method ("+name+"), nearest resampling will be applied")
	return defaultResampling
}

// Project reprojects a raster to the target coordinate reference, given as
// an EPSG code or WKT definition (see projection.Resolve). The destination
// grid is computed from the source bounds and every band is resampled with
// the requested method.
func Project(ctx *Context, input, output, resampling, target string) error {
	if _, err := os.Stat(input); os.IsNotExist(err) {
		return util.MissingInput("Input raster (" + input + ") not found, projecting not performed")
	}
	if target == "" {
		return util.InvalidArgument("No target coordinate reference provided for " + input)
	}
	if skipOutput(ctx, output) {
		return nil
	}

	method := ResamplingMethod(ctx, resampling)
	util.LogInfo(ctx, "Project raster: "+filepath.Base(input))
	util.LogInfo(ctx, "Resampling: "+method)
	util.LogInfo(ctx, "Target reference: "+target)

	if err := Delete(ctx, output); err != nil {
		return err
	}

	source, err := godal.Open(input)
	if err != nil {
		return util.LogSimpleErr(ctx, "Failed to open "+input, err)
	}
	defer source.Close()

	projected, err := source.Warp(output, []string{
		"-of", ctx.driverName(),
		"-t_srs", target,
		"-r", method,
	})
	if err != nil {
		return util.LogSimpleErr(ctx, "Failed to project "+input, err)
	}
	return projected.Close()
}
