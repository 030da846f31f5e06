// Package sentinel reads Sentinel-2 scene metadata documents and sorts raw
// band files into resolution groups for stacking.
package sentinel

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/vermeulendivan/s2prep/util"
)

// https://earth.esa.int/web/sentinel/user-guides/sentinel-2-msi/naming-convention
var productURIPattern = regexp.MustCompile(`<PRODUCT_URI>(?P<uri>.+)\.SAFE</PRODUCT_URI>`)
var imageFilePattern = regexp.MustCompile(`<IMAGE_FILE>(?P<path>.+)</IMAGE_FILE>`)

// Raw Sentinel-2 bands are distributed as JPEG2000
const bandExtension = ".jp2"

// Product URIs look like
// S2A_MSIL2A_20230409T080611_N0509_R078_T35JLK_20230409T121213: sensor,
// level, capture datetime, baseline, orbit, tile. Anything with fewer
// segments does not follow the convention and is rejected.
const minProductURISegments = 6

// SceneMetadata describes one Sentinel-2 scene as read from its metadata
// document. It is never mutated after parsing.
type SceneMetadata struct {
	Sensor string
	Level  string
	// Date is the 8-digit capture date, YYYYMMDD
	Date string
	Tile string
	// Bands holds the raw band file paths in document order
	Bands []string
}

// ParseMetadata scans a Sentinel-2 metadata document and returns the scene
// description. Band paths are resolved against rawDir. A missing document
// yields a KindMissingInput error and a zero-value SceneMetadata so callers
// can log and continue with empty results.
func ParseMetadata(ctx util.LogContext, metadataPath, rawDir string) (SceneMetadata, error) {
	var meta SceneMetadata

	content, err := os.ReadFile(metadataPath)
	if err != nil {
		if os.IsNotExist(err) {
			return meta, util.MissingInput("Metadata " + metadataPath + " does not exist")
		}
		return meta, util.LogSimpleErr(ctx, "Failed to read metadata "+metadataPath, err)
	}

	for _, line := range strings.Split(string(content), "\n") {
		line = util.RemoveUnwantedText(line)
		if match := productURIPattern.FindStringSubmatch(line); match != nil {
			if err := meta.applyProductURI(match[1]); err != nil {
				return SceneMetadata{}, err
			}
		} else if match := imageFilePattern.FindStringSubmatch(line); match != nil {
			meta.Bands = append(meta.Bands, filepath.Join(rawDir, match[1]+bandExtension))
		}
	}

	return meta, nil
}

func (meta *SceneMetadata) applyProductURI(uri string) error {
	segments := strings.Split(uri, "_")
	if len(segments) < minProductURISegments {
		return util.InvalidArgument(fmt.Sprintf(
			"Product URI %q has %d segments, expected at least %d", uri, len(segments), minProductURISegments))
	}
	if len(segments[2]) < 8 {
		return util.InvalidArgument(fmt.Sprintf("Product URI %q has no 8-digit capture date", uri))
	}
	if len(segments[5]) < 2 {
		return util.InvalidArgument(fmt.Sprintf("Product URI %q has no tile identifier", uri))
	}

	meta.Sensor = segments[0]
	// "MSIL2A" and "MSIL1C" carry the processing level behind the
	// instrument prefix
	meta.Level = strings.TrimPrefix(segments[1], "MSI")
	meta.Date = segments[2][:8]
	meta.Tile = segments[5][1:]
	return nil
}
