package util

import (
	"os"
	"strconv"
	"strings"
)

// Environment variables
const (
	InputDirEnv         = "S2PREP_INPUT_DIR"
	OutputDirEnv        = "S2PREP_OUTPUT_DIR"
	TempDirEnv          = "S2PREP_TEMP_DIR"
	CoordinateSystemEnv = "S2PREP_COORDINATE_SYSTEM"
	BandRestackEnv      = "S2PREP_BAND_RESTACK"
	ResampleEnv         = "S2PREP_RESAMPLE"
	SpatialResEnv       = "S2PREP_SPATIAL_RES"
	ResamplingEnv       = "S2PREP_RESAMPLING"
	FormatEnv           = "S2PREP_FORMAT"
	OverwriteEnv        = "S2PREP_OVERWRITE"
)

// Config carries the run-wide settings. It is constructed once at startup
// and passed explicitly to every operation; nothing reads the environment
// after this point.
type Config struct {
	InputDir  string
	OutputDir string
	TempDir   string

	// CoordinateSystem is a name accepted by projection.Resolve
	CoordinateSystem string

	// BandRestack holds 1-based band indices; for a raster with bands
	// [1, 2, 3, 4], [3, 2, 1] produces a raster with band 3 first, band 2
	// second and band 1 third. Band 4 is excluded in this example.
	BandRestack []int

	// Resample enables reprojection of stacks whose nominal resolution
	// differs from SpatialRes. SpatialRes only selects which stacks are
	// reprojected; the warp keeps its computed output grid and no pixel
	// resolution is forced on it.
	Resample   bool
	SpatialRes int
	Resampling string

	Format    string
	Overwrite bool
}

// ConfigFromEnv builds a Config from the S2PREP_* environment variables,
// falling back to defaults for anything unset
func ConfigFromEnv(ctx LogContext) Config {
	cfg := Config{
		InputDir:         os.Getenv(InputDirEnv),
		OutputDir:        os.Getenv(OutputDirEnv),
		TempDir:          envOrDefault(TempDirEnv, os.TempDir()),
		CoordinateSystem: envOrDefault(CoordinateSystemEnv, "lo19"),
		Resampling:       envOrDefault(ResamplingEnv, "nearest"),
		Format:           envOrDefault(FormatEnv, "GTiff"),
		SpatialRes:       intFromEnv(ctx, SpatialResEnv, 10),
		Resample:         boolFromEnv(ctx, ResampleEnv, true),
		Overwrite:        boolFromEnv(ctx, OverwriteEnv, false),
	}

	if raw, ok := os.LookupEnv(BandRestackEnv); ok && raw != "" {
		stack, err := ParseBandList(raw)
		if err != nil {
			LogAlert(ctx, "Ignoring invalid "+BandRestackEnv+": "+err.Error())
		} else {
			cfg.BandRestack = stack
		}
	}

	return cfg
}

// ParseBandList parses a comma separated list of 1-based band indices,
// e.g. "3,2,1"
func ParseBandList(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	stack := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		band, err := strconv.Atoi(part)
		if err != nil {
			return nil, InvalidArgument("Band list entry is not a number: " + part)
		}
		stack = append(stack, band)
	}
	return stack, nil
}

func envOrDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func boolFromEnv(ctx LogContext, key string, fallback bool) bool {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		LogAlert(ctx, "Could not parse "+key+" as a boolean, using default")
		return fallback
	}
	return value
}

func intFromEnv(ctx LogContext, key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		LogAlert(ctx, "Could not parse "+key+" as a number, using default")
		return fallback
	}
	return value
}
