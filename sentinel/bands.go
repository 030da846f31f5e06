package sentinel

import (
	"path/filepath"
	"strings"

	"github.com/vermeulendivan/s2prep/util"
)

// Supported Sentinel-2 processing levels
const (
	LevelL1C = "L1C"
	LevelL2A = "L2A"
)

// Band codes per nominal ground resolution. WVP is the Level-2A water
// vapour product standing in for band 10.
var (
	bands10m    = []string{"B02", "B03", "B04", "B08"}
	bands20m    = []string{"B05", "B06", "B07", "B8A", "B11", "B12"}
	bands60mL2A = []string{"B01", "B09", "WVP"}
	bands60mL1C = []string{"B01", "B09", "B11"}
)

// BandSets holds band file paths partitioned by nominal ground resolution,
// in input order.
type BandSets struct {
	Res10m []string
	Res20m []string
	Res60m []string
}

// ClassifyBands partitions a flat list of band file paths into 10m/20m/60m
// groups. Level-2A filenames must carry both the resolution token and a band
// code from that resolution's table; Level-1C filenames are matched on the
// band code alone. A path matching no rule lands in no group. Matching is a
// first-match chain (10m, then 20m, then 60m), so a code listed for two
// resolutions lands in the first. An unknown level returns empty sets and a
// KindInvalidArgument error.
func ClassifyBands(ctx util.LogContext, rasters []string, level string) (BandSets, error) {
	var sets BandSets

	switch level {
	case LevelL2A:
		for _, raster := range rasters {
			name := filepath.Base(raster)
			switch {
			case strings.Contains(name, "10m") && containsAny(name, bands10m):
				sets.Res10m = append(sets.Res10m, raster)
			case strings.Contains(name, "20m") && containsAny(name, bands20m):
				sets.Res20m = append(sets.Res20m, raster)
			case strings.Contains(name, "60m") && containsAny(name, bands60mL2A):
				sets.Res60m = append(sets.Res60m, raster)
			}
		}
	case LevelL1C:
		for _, raster := range rasters {
			name := filepath.Base(raster)
			switch {
			case containsAny(name, bands10m):
				sets.Res10m = append(sets.Res10m, raster)
			case containsAny(name, bands20m):
				sets.Res20m = append(sets.Res20m, raster)
			case containsAny(name, bands60mL1C):
				sets.Res60m = append(sets.Res60m, raster)
			}
		}
	default:
		return sets, util.InvalidArgument("Unknown Sentinel-2 level: " + level)
	}

	return sets, nil
}

func containsAny(name string, codes []string) bool {
	for _, code := range codes {
		if strings.Contains(name, code) {
			return true
		}
	}
	return false
}
