package geo

import (
	"fmt"
	"math"
)

// Location is a latitude/longitude pair in degrees.
type Location struct {
	Lat, Lon float64
}

// LatLon creates a Location.
func LatLon(lat, lon float64) Location {
	return Location{Lat: lat, Lon: lon}
}

// LatRadians returns the latitude in radians.
func (l Location) LatRadians() float64 { return l.Lat * math.Pi / 180 }

// LonRadians returns the longitude in radians.
func (l Location) LonRadians() float64 { return l.Lon * math.Pi / 180 }

// String implements fmt.Stringer.
func (l Location) String() string {
	return fmt.Sprintf("(%.6f, %.6f)", l.Lat, l.Lon)
}

// Position is a Location with an altitude in meters above the reference surface.
type Position struct {
	Location
	Alt float64
}

// NewPosition creates a Position.
func NewPosition(lat, lon, alt float64) Position {
	return Position{Location: Location{Lat: lat, Lon: lon}, Alt: alt}
}

// ClampLat limits a latitude to [-90, 90].
func ClampLat(lat float64) float64 {
	return math.Max(-90, math.Min(90, lat))
}

// NormalizeLon wraps a longitude into [-180, 180].
func NormalizeLon(lon float64) float64 {
	if lon >= -180 && lon <= 180 {
		return lon
	}
	lon = math.Mod(lon+180, 360)
	if lon < 0 {
		lon += 360
	}
	return lon - 180
}
