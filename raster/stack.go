package raster

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/airbusgeo/godal"
	"github.com/vermeulendivan/s2prep/util"
)

// Stack writes band 1 of each input raster, in list order, into successive
// bands of one output raster. Georeferencing is taken from the first input.
// Every input must exist before anything is written; a missing input aborts
// the whole operation with no output.
func Stack(ctx *Context, bands []string, output string) error {
	if len(bands) == 0 {
		return util.InvalidArgument("Not performing stack: no input bands provided")
	}
	for _, band := range bands {
		if _, err := os.Stat(band); os.IsNotExist(err) {
			return util.MissingInput("Stacking cannot be performed because one of the rasters/bands does not exist: " + band)
		}
	}
	if skipOutput(ctx, output) {
		return nil
	}
	if err := Delete(ctx, output); err != nil {
		return err
	}

	util.LogInfo(ctx, fmt.Sprintf("Stacking %d bands...", len(bands)))

	vrtPath := stackVRTPath(ctx, output)
	vrt, err := godal.BuildVRT(vrtPath, bands, []string{"-separate"})
	if err != nil {
		return util.LogSimpleErr(ctx, "Failed to assemble band stack for "+output, err)
	}
	defer os.Remove(vrtPath)
	defer vrt.Close()

	stacked, err := vrt.Translate(output, []string{"-of", ctx.driverName()})
	if err != nil {
		return util.LogSimpleErr(ctx, "Failed to write stacked raster "+output, err)
	}
	return stacked.Close()
}

// Restack writes selected bands of the input raster into a new raster.
// newStack holds 1-based band indices; list order is the output band order,
// and indices may repeat or be a subset. An empty list or any index outside
// [1, band count] aborts the whole operation with no output written or
// modified.
func Restack(ctx *Context, input, output string, newStack []int) error {
	if _, err := os.Stat(input); os.IsNotExist(err) {
		return util.MissingInput("Input raster does not exist: " + input)
	}
	if len(newStack) == 0 {
		return util.InvalidArgument("Not performing restack because the new band stack is empty")
	}
	if skipOutput(ctx, output) {
		return nil
	}

	source, err := godal.Open(input)
	if err != nil {
		return util.LogSimpleErr(ctx, "Failed to open "+input, err)
	}
	defer source.Close()

	bandCount := source.Structure().NBands
	util.LogInfo(ctx, "Restacking: "+input)
	util.LogInfo(ctx, fmt.Sprintf("Original raster band count: %d", bandCount))
	util.LogInfo(ctx, fmt.Sprintf("New raster band count: %d", len(newStack)))

	// All indices are validated before the previous output is touched
	switches := []string{"-of", ctx.driverName()}
	for _, band := range newStack {
		if band <= 0 || band > bandCount {
			return util.InvalidArgument(fmt.Sprintf(
				"Restack band %d is outside the possible band range [1, %d]", band, bandCount))
		}
		switches = append(switches, "-b", strconv.Itoa(band))
	}
	util.LogInfo(ctx, fmt.Sprintf("New stack: %v", newStack))

	if err := Delete(ctx, output); err != nil {
		return err
	}
	restacked, err := source.Translate(output, switches)
	if err != nil {
		return util.LogSimpleErr(ctx, "Failed to restack "+input, err)
	}
	return restacked.Close()
}

func stackVRTPath(ctx *Context, output string) string {
	name := filepath.Base(output) + ".vrt"
	if ctx.TempDir != "" {
		return filepath.Join(ctx.TempDir, name)
	}
	return filepath.Join(filepath.Dir(output), name)
}
