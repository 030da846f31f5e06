package projection

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vermeulendivan/s2prep/util"
)

func TestResolve_EPSGCodes(t *testing.T) {
	expected := map[string]string{
		"wgs84":          "EPSG:4326",
		"hartebeesthoek": "EPSG:4148",
		"web":            "EPSG:3857",
	}
	for name, code := range expected {
		resolved, err := Resolve(name)
		assert.Nil(t, err, "%v", err)
		assert.Equal(t, code, resolved)
	}
}

func TestResolve_LoSystem(t *testing.T) {
	for _, name := range []string{"lo15", "lo17", "lo19", "lo21", "lo23", "lo25", "lo27", "lo29", "lo31", "lo33"} {
		resolved, err := Resolve(name)
		assert.Nil(t, err, "%v", err)
		assert.True(t, strings.HasPrefix(resolved, `PROJCS["Lo`), "LO definition for %s is not a PROJCS", name)
		assert.Contains(t, resolved, "Hartebeesthoek94")
		assert.Contains(t, resolved, `"central_meridian",`+name[2:])
	}
}

func TestResolve_UTMSystem(t *testing.T) {
	authorities := map[string]string{
		"utm_33s": "32733",
		"utm_34s": "32734",
		"utm_35s": "32735",
		"utm_36s": "32736",
	}
	for name, authority := range authorities {
		resolved, err := Resolve(name)
		assert.Nil(t, err, "%v", err)
		assert.Contains(t, resolved, "WGS_1984_UTM_Zone_"+name[4:6]+"S")
		assert.Contains(t, resolved, `AUTHORITY["EPSG",`+authority+"]")
	}
}

func TestResolve_Albers(t *testing.T) {
	africa, err := Resolve("albers_africa")
	assert.Nil(t, err, "%v", err)
	assert.Contains(t, africa, "Africa_Albers_Equal_Area_Conic")

	southAfrica, err := Resolve("albers_south_africa")
	assert.Nil(t, err, "%v", err)
	assert.Contains(t, southAfrica, "South_Africa_Albers_Equal_Area_Conic")
	assert.Contains(t, southAfrica, "Hartebeesthoek_1994")
}

func TestResolve_Stable(t *testing.T) {
	for _, name := range Names() {
		first, err := Resolve(name)
		assert.Nil(t, err, "%v", err)
		second, err := Resolve(name)
		assert.Nil(t, err, "%v", err)
		assert.Equal(t, first, second, "Resolving %s twice gave different output", name)
	}
}

func TestResolve_UnknownName(t *testing.T) {
	for _, name := range []string{"", "mercator", "WGS84", "Lo19", "utm33s", "epsg:4326"} {
		resolved, err := Resolve(name)
		assert.Equal(t, "", resolved)
		assert.NotNil(t, err, "Unknown name %q did not cause an error", name)
		assert.True(t, util.IsKind(err, util.KindNotFound), "Error for %q is not KindNotFound", name)
	}
}

func TestNames_Sorted(t *testing.T) {
	names := Names()
	assert.Len(t, names, len(definitions))
	for i := 1; i < len(names); i++ {
		assert.True(t, names[i-1] < names[i], "Names are not sorted: %s before %s", names[i-1], names[i])
	}
}
