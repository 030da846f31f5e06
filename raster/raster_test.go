package raster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/airbusgeo/godal"
	"github.com/stretchr/testify/assert"
	"github.com/vermeulendivan/s2prep/util"
)

func TestMain(m *testing.M) {
	godal.RegisterAll()
	os.Exit(m.Run())
}

func testContext(overwrite bool) *Context {
	return &Context{Format: "GTiff", Overwrite: overwrite}
}

// createRaster writes a georeferenced single-pixel GTiff with one band per
// fill value
func createRaster(t *testing.T, path string, values ...float64) {
	t.Helper()
	dataset, err := godal.Create(godal.GTiff, path, len(values), godal.Byte, 1, 1)
	assert.Nil(t, err, "%v", err)

	srs, err := godal.NewSpatialRefFromEPSG(32735)
	assert.Nil(t, err, "%v", err)
	defer srs.Close()
	assert.Nil(t, dataset.SetSpatialRef(srs))
	assert.Nil(t, dataset.SetGeoTransform([6]float64{500000, 10, 0, 7000000, 0, -10}))

	for idx, band := range dataset.Bands() {
		assert.Nil(t, band.Fill(values[idx], 0))
	}
	assert.Nil(t, dataset.Close())
}

func readBandValues(t *testing.T, path string) []uint8 {
	t.Helper()
	dataset, err := godal.Open(path)
	assert.Nil(t, err, "%v", err)
	defer dataset.Close()

	var values []uint8
	for _, band := range dataset.Bands() {
		buffer := make([]uint8, 1)
		assert.Nil(t, band.Read(0, 0, buffer, 1, 1))
		values = append(values, buffer[0])
	}
	return values
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	err := os.WriteFile(path, []byte(content), 0644)
	assert.Nil(t, err, "%v", err)
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	assert.Nil(t, err, "%v", err)
	return string(content)
}

func TestResamplingMethod(t *testing.T) {
	logContext := &(util.BasicLogContext{})

	assert.Equal(t, "near", ResamplingMethod(logContext, "nearest"))
	assert.Equal(t, "bilinear", ResamplingMethod(logContext, "bilinear"))
	assert.Equal(t, "cubic", ResamplingMethod(logContext, "cubic"))

	// Case-insensitive
	assert.Equal(t, "near", ResamplingMethod(logContext, "Nearest"))
	assert.Equal(t, "cubic", ResamplingMethod(logContext, "CUBIC"))
}

func TestResamplingMethod_UnknownFallsBackToNearest(t *testing.T) {
	logContext := &(util.BasicLogContext{})

	assert.Equal(t, "near", ResamplingMethod(logContext, "lanczos"))
	assert.Equal(t, "near", ResamplingMethod(logContext, ""))
}

func TestSidecarPaths(t *testing.T) {
	sidecars := SidecarPaths("/data/out/scene.tif")
	assert.Equal(t, []string{
		"/data/out/scene.tfw",
		"/data/out/scene.tif.aux.xml",
		"/data/out/scene.tif.ovr",
		"/data/out/scene.tif.xml",
	}, sidecars)
}

func TestDelete_RemovesRasterAndSidecars(t *testing.T) {
	dir := t.TempDir()
	rasterPath := filepath.Join(dir, "scene.tif")
	writeFile(t, rasterPath, "raster")
	for _, sidecar := range SidecarPaths(rasterPath) {
		writeFile(t, sidecar, "sidecar")
	}
	unrelated := filepath.Join(dir, "other.tif")
	writeFile(t, unrelated, "other")

	err := Delete(testContext(false), rasterPath)
	assert.Nil(t, err, "%v", err)

	_, err = os.Stat(rasterPath)
	assert.True(t, os.IsNotExist(err), "Raster was not deleted")
	for _, sidecar := range SidecarPaths(rasterPath) {
		_, err = os.Stat(sidecar)
		assert.True(t, os.IsNotExist(err), "Sidecar %s was not deleted", sidecar)
	}
	_, err = os.Stat(unrelated)
	assert.Nil(t, err, "Unrelated raster was deleted")
}

func TestDelete_MissingRasterIsNoOp(t *testing.T) {
	err := Delete(testContext(false), filepath.Join(t.TempDir(), "absent.tif"))
	assert.Nil(t, err, "%v", err)
}

func TestStack_EmptyBandList(t *testing.T) {
	output := filepath.Join(t.TempDir(), "stack.tif")

	err := Stack(testContext(false), nil, output)
	assert.NotNil(t, err, "Empty band list did not cause an error")
	assert.True(t, util.IsKind(err, util.KindInvalidArgument), "Error is not KindInvalidArgument: %v", err)

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr), "Output was created")
}

func TestStack_MissingBandAborts(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "B02.jp2")
	writeFile(t, present, "band")
	missing := filepath.Join(dir, "B03.jp2")
	output := filepath.Join(dir, "stack.tif")

	err := Stack(testContext(false), []string{present, missing}, output)
	assert.NotNil(t, err, "Missing band did not cause an error")
	assert.True(t, util.IsKind(err, util.KindMissingInput), "Error is not KindMissingInput: %v", err)

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr), "Output was created despite a missing band")
}

func TestStack_ExistingOutputSkipped(t *testing.T) {
	dir := t.TempDir()
	band := filepath.Join(dir, "B02.jp2")
	writeFile(t, band, "band")
	output := filepath.Join(dir, "stack.tif")
	writeFile(t, output, "previous output")

	err := Stack(testContext(false), []string{band}, output)
	assert.Nil(t, err, "%v", err)
	assert.Equal(t, "previous output", readFile(t, output), "Existing output was modified")
}

func TestStack_BandOrder(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "B04.tif")
	createRaster(t, first, 40)
	second := filepath.Join(dir, "B03.tif")
	createRaster(t, second, 30)
	output := filepath.Join(dir, "stack.tif")

	err := Stack(testContext(false), []string{first, second}, output)
	assert.Nil(t, err, "%v", err)

	// Band 1 of each input, in list order
	assert.Equal(t, []uint8{40, 30}, readBandValues(t, output))
}

func TestRestack_MissingInput(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "restack.tif")

	err := Restack(testContext(false), filepath.Join(dir, "absent.tif"), output, []int{1})
	assert.NotNil(t, err, "Missing input did not cause an error")
	assert.True(t, util.IsKind(err, util.KindMissingInput), "Error is not KindMissingInput: %v", err)

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr), "Output was created despite a missing input")
}

func TestRestack_EmptyStackAborts(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.tif")
	writeFile(t, input, "raster")
	output := filepath.Join(dir, "restack.tif")

	err := Restack(testContext(false), input, output, nil)
	assert.NotNil(t, err, "Empty band stack did not cause an error")
	assert.True(t, util.IsKind(err, util.KindInvalidArgument), "Error is not KindInvalidArgument: %v", err)

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr), "Output was created despite an empty band stack")
}

func TestRestack_EmptyStackAbortsWithExistingOutput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.tif")
	writeFile(t, input, "raster")
	output := filepath.Join(dir, "restack.tif")
	writeFile(t, output, "previous output")

	// The empty-stack abort fires even when the skip policy would apply,
	// and the previous output survives untouched
	err := Restack(testContext(true), input, output, []int{})
	assert.NotNil(t, err, "Empty band stack did not cause an error")
	assert.Equal(t, "previous output", readFile(t, output), "Existing output was modified")
}

func TestRestack_OutOfRangeBandAborts(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.tif")
	createRaster(t, input, 10, 20)
	output := filepath.Join(dir, "restack.tif")
	writeFile(t, output, "previous output")

	// Overwrite is enabled, so only the index validation protects the
	// previous output
	for _, stack := range [][]int{{1, 5}, {0}, {-1, 1}} {
		err := Restack(testContext(true), input, output, stack)
		assert.NotNil(t, err, "Band stack %v did not cause an error", stack)
		assert.True(t, util.IsKind(err, util.KindInvalidArgument), "Error is not KindInvalidArgument: %v", err)
		assert.Equal(t, "previous output", readFile(t, output), "Existing output was modified")
	}
}

func TestRestack_ReordersBands(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.tif")
	createRaster(t, input, 10, 20, 30)
	output := filepath.Join(dir, "restack.tif")

	err := Restack(testContext(false), input, output, []int{3, 1})
	assert.Nil(t, err, "%v", err)
	assert.Equal(t, []uint8{30, 10}, readBandValues(t, output))
}

func TestRestack_ExistingOutputSkipped(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.tif")
	writeFile(t, input, "raster")
	output := filepath.Join(dir, "restack.tif")
	writeFile(t, output, "previous output")

	err := Restack(testContext(false), input, output, []int{3, 2, 1})
	assert.Nil(t, err, "%v", err)
	assert.Equal(t, "previous output", readFile(t, output), "Existing output was modified")
}

func TestProject_MissingInput(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "projected.tif")

	err := Project(testContext(false), filepath.Join(dir, "absent.tif"), output, "nearest", "EPSG:4326")
	assert.NotNil(t, err, "Missing input did not cause an error")
	assert.True(t, util.IsKind(err, util.KindMissingInput), "Error is not KindMissingInput: %v", err)
}

func TestProject_EmptyTarget(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.tif")
	writeFile(t, input, "raster")

	err := Project(testContext(false), input, filepath.Join(dir, "projected.tif"), "nearest", "")
	assert.NotNil(t, err, "Empty target reference did not cause an error")
	assert.True(t, util.IsKind(err, util.KindInvalidArgument), "Error is not KindInvalidArgument: %v", err)
}

func TestProject_ExistingOutputSkipped(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.tif")
	writeFile(t, input, "raster")
	output := filepath.Join(dir, "projected.tif")
	writeFile(t, output, "previous output")

	err := Project(testContext(false), input, output, "nearest", "EPSG:4326")
	assert.Nil(t, err, "%v", err)
	assert.Equal(t, "previous output", readFile(t, output), "Existing output was modified")
}

func TestProject_WarpsAllBands(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.tif")
	createRaster(t, input, 10, 20)
	output := filepath.Join(dir, "projected.tif")

	err := Project(testContext(false), input, output, "nearest", "EPSG:4326")
	assert.Nil(t, err, "%v", err)

	dataset, err := godal.Open(output)
	assert.Nil(t, err, "%v", err)
	defer dataset.Close()
	assert.Equal(t, 2, dataset.Structure().NBands, "Projection dropped a band")
}

func TestCopy_MissingInput(t *testing.T) {
	dir := t.TempDir()

	err := Copy(testContext(false), filepath.Join(dir, "absent.tif"), filepath.Join(dir, "copy.tif"), false)
	assert.NotNil(t, err, "Missing input did not cause an error")
	assert.True(t, util.IsKind(err, util.KindMissingInput), "Error is not KindMissingInput: %v", err)
}

func TestCopy_ExistingOutputSkipped(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.tif")
	writeFile(t, input, "raster")
	output := filepath.Join(dir, "copy.tif")
	writeFile(t, output, "previous output")

	err := Copy(testContext(false), input, output, false)
	assert.Nil(t, err, "%v", err)
	assert.Equal(t, "previous output", readFile(t, output), "Existing output was modified")
}

func TestFootprint_MissingInput(t *testing.T) {
	dir := t.TempDir()

	err := Footprint(testContext(false), filepath.Join(dir, "absent.tif"), filepath.Join(dir, "fp.geojson"))
	assert.NotNil(t, err, "Missing input did not cause an error")
	assert.True(t, util.IsKind(err, util.KindMissingInput), "Error is not KindMissingInput: %v", err)
}

func TestDataType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.tif")
	createRaster(t, path, 10)

	dataType, err := DataType(path)
	assert.Nil(t, err, "%v", err)
	assert.Equal(t, "byte", dataType)
}

func TestDataType_MissingRaster(t *testing.T) {
	_, err := DataType(filepath.Join(t.TempDir(), "absent.tif"))
	assert.NotNil(t, err, "Missing raster did not cause an error")
	assert.True(t, util.IsKind(err, util.KindMissingInput), "Error is not KindMissingInput: %v", err)
}

func TestStackVRTPath(t *testing.T) {
	withTemp := &Context{TempDir: "/tmp/work"}
	assert.Equal(t, "/tmp/work/stack.tif.vrt", stackVRTPath(withTemp, "/data/out/stack.tif"))

	withoutTemp := &Context{}
	assert.Equal(t, "/data/out/stack.tif.vrt", stackVRTPath(withoutTemp, "/data/out/stack.tif"))
}
