package raster

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/airbusgeo/godal"
	"github.com/venicegeo/geojson-go/geojson"
	"github.com/vermeulendivan/s2prep/util"
)

// Footprint writes the raster's bounding box as a single-feature GeoJSON
// file, for quick inspection of where a scene lands.
func Footprint(ctx *Context, input, output string) error {
	if _, err := os.Stat(input); os.IsNotExist(err) {
		return util.MissingInput("Input raster does not exist: " + input)
	}
	if _, err := os.Stat(output); err == nil && !ctx.Overwrite {
		util.LogInfo(ctx, "Output "+output+" already exists, skipping")
		return nil
	}

	dataset, err := godal.Open(input)
	if err != nil {
		return util.LogSimpleErr(ctx, "Failed to open "+input, err)
	}
	defer dataset.Close()

	bounds, err := dataset.Bounds()
	if err != nil {
		return util.LogSimpleErr(ctx, "Failed to read bounds of "+input, err)
	}

	minX, minY, maxX, maxY := bounds[0], bounds[1], bounds[2], bounds[3]
	polygon := geojson.NewPolygon([][][]float64{{
		{minX, minY}, {maxX, minY}, {maxX, maxY}, {minX, maxY}, {minX, minY},
	}})
	feature := geojson.NewFeature(polygon, filepath.Base(input), map[string]interface{}{
		"raster": input,
	})

	data, err := json.Marshal(feature)
	if err != nil {
		return util.LogSimpleErr(ctx, "Failed to encode footprint for "+input, err)
	}

	util.LogInfo(ctx, "Footprint: "+output)
	return os.WriteFile(output, data, 0644)
}
