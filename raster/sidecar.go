package raster

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/vermeulendivan/s2prep/util"
)

// Sidecar extensions removed together with a raster. The world file replaces
// the raster's own extension; the others are appended to the full filename.
var sidecarExtensions = []string{"tfw", "aux.xml", "ovr", "xml"}

// SidecarPaths returns the sidecar files belonging to a raster path
func SidecarPaths(rasterPath string) []string {
	extension := filepath.Ext(rasterPath)
	sidecars := make([]string, 0, len(sidecarExtensions))
	for _, sidecarExt := range sidecarExtensions {
		if sidecarExt == "tfw" {
			sidecars = append(sidecars, strings.TrimSuffix(rasterPath, extension)+".tfw")
		} else {
			sidecars = append(sidecars, rasterPath+"."+sidecarExt)
		}
	}
	return sidecars
}

// Delete removes a raster together with its sidecar files (world file,
// auxiliary XML, pyramid overviews, XML metadata). Nothing happens when the
// raster does not exist.
func Delete(ctx *Context, rasterPath string) error {
	if _, err := os.Stat(rasterPath); os.IsNotExist(err) {
		return nil
	}
	if err := util.DeleteFile(ctx, rasterPath); err != nil {
		return err
	}
	for _, sidecar := range SidecarPaths(rasterPath) {
		if err := util.DeleteFile(ctx, sidecar); err != nil {
			return err
		}
	}
	return nil
}
