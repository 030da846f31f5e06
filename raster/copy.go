package raster

import (
	"os"

	"github.com/airbusgeo/godal"
	"github.com/vermeulendivan/s2prep/util"
)

// Copy rewrites a raster band for band in the configured output format,
// which makes it double as a format converter. The explicit overwrite
// argument lets a caller override the run-wide policy for one copy.
func Copy(ctx *Context, input, output string, overwrite bool) error {
	if _, err := os.Stat(input); os.IsNotExist(err) {
		return util.MissingInput("Input raster does not exist: " + input)
	}
	if _, err := os.Stat(output); err == nil && !overwrite {
		util.LogInfo(ctx, "Output "+output+" already exists, skipping")
		return nil
	}
	if err := Delete(ctx, output); err != nil {
		return err
	}

	util.LogInfo(ctx, "Copying raster: "+input)
	util.LogInfo(ctx, "Output raster: "+output)

	source, err := godal.Open(input)
	if err != nil {
		return util.LogSimpleErr(ctx, "Failed to open "+input, err)
	}
	defer source.Close()

	copied, err := source.Translate(output, []string{"-of", ctx.driverName()})
	if err != nil {
		return util.LogSimpleErr(ctx, "Failed to copy "+input, err)
	}
	return copied.Close()
}
