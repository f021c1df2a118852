package deeplink

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/project"
)

// MercatorToWGS84 converts a spherical Web-Mercator coordinate in meters
// (sphere radius 6,378,137 m) into WGS-84 degrees.
func MercatorToWGS84(x, y float64) GeoPoint {
	p := project.Mercator.ToWGS84(orb.Point{x, y})

	return GeoPoint{Lat: p.Lat(), Lng: p.Lon()}
}
