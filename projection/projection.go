// Package projection resolves well-known coordinate system names to EPSG
// codes or WKT projection definitions.
package projection

import (
	"fmt"
	"sort"

	"github.com/vermeulendivan/s2prep/util"
)

// The LO system is the South African survey grid on the Hartebeesthoek94
// datum; one Transverse-Mercator definition per two-degree central meridian.
const loWKT = `PROJCS["Lo%d",GEOGCS["Hartebeesthoek94",DATUM["D_Hartebeesthoek_1994",` +
	`SPHEROID["WGS_1984",6378137,298.257223563]],PRIMEM["Greenwich",0],UNIT["Degree",` +
	`0.017453292519943295]],PROJECTION["Transverse_Mercator"],PARAMETER["latitude_of_origin",0],` +
	`PARAMETER["central_meridian",%d],PARAMETER["scale_factor",1],PARAMETER["false_easting",0],` +
	`PARAMETER["false_northing",0],UNIT["Meter",1]]`

const utmWKT = `PROJCS["WGS_1984_UTM_Zone_%dS",GEOGCS["GCS_WGS_1984",DATUM["D_WGS_1984",` +
	`SPHEROID["WGS_1984",6378137.0,298.257223563]],PRIMEM["Greenwich",0.0],` +
	`UNIT["Degree",0.0174532925199433]],PROJECTION["Transverse_Mercator"],` +
	`PARAMETER["False_Easting",500000.0],PARAMETER["False_Northing",10000000.0],` +
	`PARAMETER["Central_Meridian",%.1f],PARAMETER["Scale_Factor",0.9996],` +
	`PARAMETER["Latitude_Of_Origin",0.0],UNIT["Meter",1.0],AUTHORITY["EPSG",%d]]`

const albersAfricaWKT = `PROJCS["Africa_Albers_Equal_Area_Conic",GEOGCS["GCS_WGS_1984",DATUM["D_WGS_1984",` +
	`SPHEROID["WGS_1984",6378137.0,298.257223563]],PRIMEM["Greenwich",0.0],UNIT["Degree",` +
	`0.0174532925199433]],PROJECTION["Albers"],PARAMETER["False_Easting",0.0],` +
	`PARAMETER["False_Northing",0.0],PARAMETER["Central_Meridian",25.0],` +
	`PARAMETER["Standard_Parallel_1",20.0],PARAMETER["Standard_Parallel_2",-23.0],` +
	`PARAMETER["Latitude_Of_Origin",0.0],UNIT["Meter",1.0]]`

const albersSouthAfricaWKT = `PROJCS["South_Africa_Albers_Equal_Area_Conic",GEOGCS["GCS_Hartebeesthoek_1994",` +
	`DATUM["D_Hartebeesthoek_1994",SPHEROID["WGS_1984",6378137.0,298.257223563]],` +
	`PRIMEM["Greenwich",0.0],UNIT["Degree",0.0174532925199433]],PROJECTION["Albers"],` +
	`PARAMETER["False_Easting",0.0],PARAMETER["False_Northing",0.0],` +
	`PARAMETER["Central_Meridian",25.0],PARAMETER["Standard_Parallel_1",-33.5],` +
	`PARAMETER["Standard_Parallel_2",-34.5],PARAMETER["Latitude_Of_Origin",0.0],UNIT["Meter",1.0]]`

// definitions maps a coordinate system name to its EPSG code or WKT
// definition. Lookup is exact and case-sensitive.
//
// Geographic: "wgs84", "hartebeesthoek"
// Projected: "web" (Web-Mercator), "albers_africa", "albers_south_africa"
// LO-system: "lo15" through "lo33"
// UTM-system: "utm_33s" through "utm_36s"
var definitions = map[string]string{
	"wgs84":          "EPSG:4326",
	"hartebeesthoek": "EPSG:4148",
	"web":            "EPSG:3857",

	"lo15": fmt.Sprintf(loWKT, 15, 15),
	"lo17": fmt.Sprintf(loWKT, 17, 17),
	"lo19": fmt.Sprintf(loWKT, 19, 19),
	"lo21": fmt.Sprintf(loWKT, 21, 21),
	"lo23": fmt.Sprintf(loWKT, 23, 23),
	"lo25": fmt.Sprintf(loWKT, 25, 25),
	"lo27": fmt.Sprintf(loWKT, 27, 27),
	"lo29": fmt.Sprintf(loWKT, 29, 29),
	"lo31": fmt.Sprintf(loWKT, 31, 31),
	"lo33": fmt.Sprintf(loWKT, 33, 33),

	"utm_33s": fmt.Sprintf(utmWKT, 33, 15.0, 32733),
	"utm_34s": fmt.Sprintf(utmWKT, 34, 21.0, 32734),
	"utm_35s": fmt.Sprintf(utmWKT, 35, 27.0, 32735),
	"utm_36s": fmt.Sprintf(utmWKT, 36, 33.0, 32736),

	"albers_africa":       albersAfricaWKT,
	"albers_south_africa": albersSouthAfricaWKT,
}

// Resolve returns the EPSG code or WKT definition for a coordinate system
// name. Unknown names return a KindNotFound error.
func Resolve(name string) (string, error) {
	definition, ok := definitions[name]
	if !ok {
		return "", util.NotFound("Projection not found: " + name)
	}
	return definition, nil
}

// Names returns the supported coordinate system names, sorted
func Names() []string {
	names := make([]string, 0, len(definitions))
	for name := range definitions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
