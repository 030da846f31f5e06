// Package catalog writes and validates the per-raster metadata table.
package catalog

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/vermeulendivan/s2prep/util"
)

// Columns of the catalog table, in output order
var Columns = []string{"Raster", "Data", "Capture date", "Tile", "Bands", "Spatial resolution", "Projection"}

// Row is one well-formed catalog entry
type Row struct {
	Raster     string
	Sensor     string
	Date       string
	Tile       string
	Bands      []string
	SpatialRes int
	Projection string
}

// Record serializes the row in catalog column order
func (r Row) Record() []string {
	return []string{
		r.Raster,
		r.Sensor,
		r.Date,
		r.Tile,
		fmt.Sprintf("%v", r.Bands),
		strconv.Itoa(r.SpatialRes),
		r.Projection,
	}
}

// Write serializes records as a CSV table under the fixed 7-column header.
// A record whose field count does not match the header is not dropped: it is
// written as a single error cell, so the output row count always equals the
// input record count plus the header. Nothing is written for an empty record
// list, or when the output exists and overwrite is disabled.
func Write(ctx util.LogContext, records [][]string, output string, overwrite bool) error {
	if len(records) == 0 {
		return util.InvalidArgument("No catalog info provided: " + output)
	}
	if _, err := os.Stat(output); err == nil && !overwrite {
		util.LogInfo(ctx, "Catalog "+output+" already exists, skipping")
		return nil
	}
	if err := util.DeleteFile(ctx, output); err != nil {
		return err
	}

	util.LogInfo(ctx, "Catalog: "+filepath.Base(output))

	file, err := os.Create(output)
	if err != nil {
		return util.LogSimpleErr(ctx, "Failed to create catalog "+output, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(Columns); err != nil {
		return util.LogSimpleErr(ctx, "Failed to write catalog header", err)
	}
	for _, record := range records {
		row := record
		if len(record) != len(Columns) {
			row = []string{fmt.Sprintf("ERROR: Not enough info provided for the raster: %v", record)}
		}
		if err := writer.Write(row); err != nil {
			return util.LogSimpleErr(ctx, "Failed to write catalog row", err)
		}
	}
	writer.Flush()
	return writer.Error()
}
