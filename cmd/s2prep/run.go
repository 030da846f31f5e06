package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vermeulendivan/s2prep/archive"
	"github.com/vermeulendivan/s2prep/catalog"
	"github.com/vermeulendivan/s2prep/projection"
	"github.com/vermeulendivan/s2prep/raster"
	"github.com/vermeulendivan/s2prep/sentinel"
	"github.com/vermeulendivan/s2prep/util"
	cli "gopkg.in/urfave/cli.v1"
)

// Sentinel-2 scene metadata documents are named MTD_MSIL1C.xml or
// MTD_MSIL2A.xml inside the .SAFE folder
const metadataPrefix = "MTD_MSI"

const catalogFilename = "metadata.csv"

func runAction(*cli.Context) error {
	logContext := &(util.BasicLogContext{})
	cfg := util.ConfigFromEnv(logContext)

	if cfg.InputDir == "" || cfg.OutputDir == "" {
		return cli.NewExitError(
			"input and output directories must be configured ("+util.InputDirEnv+", "+util.OutputDirEnv+")", 1)
	}
	if err := runPipeline(logContext, cfg); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	return nil
}

// runPipeline drives the linear preparation flow: extract archives, locate
// and parse scene metadata, classify bands, stack, optionally restack and
// reproject, then write the catalog. Failures in one scene are logged and
// the remaining scenes still run.
func runPipeline(logContext util.LogContext, cfg util.Config) error {
	if _, err := util.EnsureDir(cfg.OutputDir); err != nil {
		return util.LogSimpleErr(logContext, "Failed to create output directory "+cfg.OutputDir, err)
	}

	zips, err := archive.FindZips(logContext, cfg.InputDir)
	if err != nil {
		return err
	}
	if len(zips) > 0 {
		if _, err := util.EnsureDir(cfg.TempDir); err != nil {
			return util.LogSimpleErr(logContext, "Failed to create temp directory "+cfg.TempDir, err)
		}
		if err := archive.Unzip(logContext, zips, cfg.TempDir); err != nil {
			return err
		}
	}

	docs, err := findMetadataDocs(logContext, cfg)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		util.LogAlert(logContext, "No Sentinel-2 metadata documents found under "+cfg.InputDir)
		return nil
	}

	rasterContext := raster.NewContext(cfg)
	var records [][]string
	for _, doc := range docs {
		rows, err := processScene(logContext, rasterContext, cfg, doc)
		if err != nil {
			util.LogAlert(logContext, "Skipping scene "+doc+": "+err.Error())
			continue
		}
		records = append(records, rows...)
	}

	if len(records) == 0 {
		util.LogAlert(logContext, "No rasters produced, catalog not written")
		return nil
	}
	return catalog.Write(logContext, records, filepath.Join(cfg.OutputDir, catalogFilename), cfg.Overwrite)
}

// findMetadataDocs looks for scene metadata documents in the input directory
// and among freshly extracted archives in the temp directory
func findMetadataDocs(logContext util.LogContext, cfg util.Config) ([]string, error) {
	roots := []string{cfg.InputDir}
	if cfg.TempDir != "" && cfg.TempDir != cfg.InputDir {
		roots = append(roots, cfg.TempDir)
	}

	var docs []string
	for _, root := range roots {
		xmlFiles, err := archive.SearchFiles(logContext, root, []string{"xml"})
		if err != nil {
			if util.IsKind(err, util.KindMissingInput) {
				continue
			}
			return nil, err
		}
		for _, file := range xmlFiles {
			if strings.HasPrefix(filepath.Base(file), metadataPrefix) {
				docs = append(docs, file)
			}
		}
	}
	return docs, nil
}

// nativeProjection marks a catalog row whose raster was never reprojected
// and still carries the coordinate system it was delivered in
const nativeProjection = "native"

func processScene(logContext util.LogContext, rasterContext *raster.Context, cfg util.Config, doc string) ([][]string, error) {
	meta, err := sentinel.ParseMetadata(logContext, doc, filepath.Dir(doc))
	if err != nil {
		return nil, err
	}
	return prepareScene(logContext, rasterContext, cfg, meta)
}

func prepareScene(logContext util.LogContext, rasterContext *raster.Context, cfg util.Config, meta sentinel.SceneMetadata) ([][]string, error) {
	sets, err := sentinel.ClassifyBands(logContext, meta.Bands, meta.Level)
	if err != nil {
		return nil, err
	}

	groups := []struct {
		res   int
		bands []string
	}{
		{10, sets.Res10m},
		{20, sets.Res20m},
		{60, sets.Res60m},
	}

	var records [][]string
	for _, group := range groups {
		if len(group.bands) == 0 {
			continue
		}

		stacked := filepath.Join(cfg.OutputDir, fmt.Sprintf("%s_%s_%dm.tif", meta.Tile, meta.Date, group.res))
		if err := raster.Stack(rasterContext, group.bands, stacked); err != nil {
			util.LogAlert(logContext, "Stack failed for "+stacked+": "+err.Error())
			continue
		}
		produced := stacked

		if len(cfg.BandRestack) > 0 && group.res == 10 {
			restacked := withSuffix(produced, "_restack")
			if err := raster.Restack(rasterContext, produced, restacked, cfg.BandRestack); err != nil {
				util.LogAlert(logContext, "Restack failed for "+produced+": "+err.Error())
			} else {
				produced = restacked
			}
		}

		// The catalog only claims the configured coordinate system for
		// rasters that were actually reprojected into it
		crs := nativeProjection
		if cfg.Resample && group.res != cfg.SpatialRes {
			target, err := projection.Resolve(cfg.CoordinateSystem)
			if err != nil {
				util.LogAlert(logContext, err.Error())
			} else {
				projected := withSuffix(produced, "_prj")
				if err := raster.Project(rasterContext, produced, projected, cfg.Resampling, target); err != nil {
					util.LogAlert(logContext, "Projection failed for "+produced+": "+err.Error())
				} else {
					produced = projected
					crs = cfg.CoordinateSystem
				}
			}
		}

		row := catalog.Row{
			Raster:     produced,
			Sensor:     meta.Sensor,
			Date:       meta.Date,
			Tile:       meta.Tile,
			Bands:      group.bands,
			SpatialRes: group.res,
			Projection: crs,
		}
		records = append(records, row.Record())
	}
	return records, nil
}

// withSuffix inserts a suffix between a path's stem and its extension
func withSuffix(path, suffix string) string {
	extension := filepath.Ext(path)
	return strings.TrimSuffix(path, extension) + suffix + extension
}
