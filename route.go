package osmroutes

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/planar"
)

// Route Ordered sequence of coordinates of one reconstructed road route
type Route []Coordinate

// LineString returns route as orb geometry (longitude/latitude order)
func (route Route) LineString() orb.LineString {
	line := make(orb.LineString, len(route))
	for i, c := range route {
		line[i] = c.Point()
	}
	return line
}

// Length returns haversine length of route (kilometers)
//
// Gaps left by forced joins are counted as straight great circle segments
//
func (route Route) Length() float64 {
	if len(route) < 2 {
		return 0
	}
	return geo.LengthHaversign(route.LineString()) / 1000.0
}

// Centroid returns length weighted center of route in degrees space. Panics on empty route
func (route Route) Centroid() Coordinate {
	if len(route) == 1 {
		return route[0]
	}
	center, _ := planar.CentroidArea(route.LineString())
	return Coordinate{Lat: center.Lat(), Lon: center.Lon()}
}

// First returns first coordinate of route. Panics on empty route
func (route Route) First() Coordinate {
	return route[0]
}

// Last returns last coordinate of route. Panics on empty route
func (route Route) Last() Coordinate {
	return route[len(route)-1]
}
