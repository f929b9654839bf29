package camera

import (
	"math"

	"github.com/gogpu/graticule/geo"
)

// ElevationModel supplies surface heights in meters.
type ElevationModel interface {
	Elevation(l geo.Location) float64
	ElevationRange(r geo.Region) (minElevation, maxElevation float64)
}

// Uniform is a terrain of constant height. The zero value is sea level.
type Uniform struct {
	Height float64
}

// Elevation implements ElevationModel.
func (u Uniform) Elevation(geo.Location) float64 { return u.Height }

// ElevationRange implements ElevationModel.
func (u Uniform) ElevationRange(geo.Region) (float64, float64) { return u.Height, u.Height }

// Ridge is a synthetic terrain with a single Gaussian mountain, useful to
// exercise elevation-dependent bounds.
type Ridge struct {
	Peak   geo.Location
	Height float64
	// Width is the standard deviation of the mountain in degrees.
	Width float64
}

// Elevation implements ElevationModel.
func (m Ridge) Elevation(l geo.Location) float64 {
	if m.Width <= 0 {
		return 0
	}
	d := math.Hypot(l.Lat-m.Peak.Lat, l.Lon-m.Peak.Lon)
	return m.Height * math.Exp(-d*d/(2*m.Width*m.Width))
}

// ElevationRange implements ElevationModel.
func (m Ridge) ElevationRange(r geo.Region) (float64, float64) {
	nearest := geo.Location{
		Lat: math.Max(r.MinLat, math.Min(r.MaxLat, m.Peak.Lat)),
		Lon: math.Max(r.MinLon, math.Min(r.MaxLon, m.Peak.Lon)),
	}
	hi := m.Elevation(nearest)
	lo := hi
	for _, c := range []geo.Location{
		{Lat: r.MinLat, Lon: r.MinLon},
		{Lat: r.MinLat, Lon: r.MaxLon},
		{Lat: r.MaxLat, Lon: r.MinLon},
		{Lat: r.MaxLat, Lon: r.MaxLon},
	} {
		lo = math.Min(lo, m.Elevation(c))
	}
	return lo, hi
}

func elevationModel(m ElevationModel) ElevationModel {
	if m == nil {
		return Uniform{}
	}
	return m
}
