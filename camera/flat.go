package camera

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/gogpu/graticule/geo"
	"github.com/gogpu/graticule/grid"
)

// Flat is a top-down view of an equirectangular (plate carrée) map.
//
// Scale is uniform, so every tile of the same size has the same projected
// size wherever it is on screen.
type Flat struct {
	Center         geo.Location
	MetersPerPixel float64
	Width, Height  int

	Radius       float64
	Terrain      ElevationModel
	Exaggeration float64
}

// NewFlat returns a map view centred on (0, 0) that fits the whole world
// into the viewport width.
func NewFlat(width, height int) *Flat {
	f := &Flat{
		Width:        width,
		Height:       height,
		Radius:       EarthRadius,
		Exaggeration: 1,
	}
	f.MetersPerPixel = 360 * f.metersPerDegree() / float64(max(width, 1))
	return f
}

func (f *Flat) radius() float64 {
	if f.Radius <= 0 {
		return EarthRadius
	}
	return f.Radius
}

func (f *Flat) metersPerDegree() float64 { return f.radius() * math.Pi / 180 }

// degreesPerPixel returns the map scale.
func (f *Flat) degreesPerPixel() float64 {
	return f.MetersPerPixel / f.metersPerDegree()
}

// viewport returns the unclamped area covered by the viewport.
func (f *Flat) viewport() geo.Region {
	dpp := f.degreesPerPixel()
	halfW := float64(f.Width) / 2 * dpp
	halfH := float64(f.Height) / 2 * dpp
	return geo.Region{
		MinLat: f.Center.Lat - halfH,
		MaxLat: f.Center.Lat + halfH,
		MinLon: f.Center.Lon - halfW,
		MaxLon: f.Center.Lon + halfW,
	}
}

// VisibleRegion implements grid.View. It reports false when the viewport
// lies entirely off the map.
func (f *Flat) VisibleRegion() (geo.Region, bool) {
	vp := f.viewport()
	if !vp.Intersects(geo.World) {
		return geo.Region{}, false
	}
	return geo.Region{
		MinLat: math.Max(vp.MinLat, -90),
		MaxLat: math.Min(vp.MaxLat, 90),
		MinLon: math.Max(vp.MinLon, -180),
		MaxLon: math.Min(vp.MaxLon, 180),
	}, true
}

// BoundingVolumeFor implements grid.View. On a flat map the region itself is
// the volume.
func (f *Flat) BoundingVolumeFor(r geo.Region, _, _ float64) grid.BoundingVolume {
	return r
}

// FrustumIntersects implements grid.View.
func (f *Flat) FrustumIntersects(v grid.BoundingVolume) bool {
	r, ok := v.(geo.Region)
	return ok && f.viewport().Intersects(r)
}

// ElevationRange implements grid.View.
func (f *Flat) ElevationRange(r geo.Region) (float64, float64) {
	lo, hi := elevationModel(f.Terrain).ElevationRange(r)
	e := f.VerticalExaggeration()
	return lo * e, hi * e
}

// Elevation implements graticule.View.
func (f *Flat) Elevation(l geo.Location) float64 {
	return elevationModel(f.Terrain).Elevation(l)
}

// ProjectToScreenDistance implements grid.View. The map is orthographic, so
// every point is at the eye altitude.
func (f *Flat) ProjectToScreenDistance(geo.Location) float64 {
	return f.EyePosition().Alt
}

// PixelSizeAtDistance implements grid.View.
func (f *Flat) PixelSizeAtDistance(float64) float64 {
	return f.MetersPerPixel
}

// GlobeRadius implements grid.View.
func (f *Flat) GlobeRadius() float64 { return f.radius() }

// EyePosition implements grid.View. The altitude is the one at which a
// perspective camera with the default field of view would show the same
// viewport width.
func (f *Flat) EyePosition() geo.Position {
	tanH := math.Tan(DefaultFieldOfView / 2 * math.Pi / 180)
	alt := f.MetersPerPixel * float64(f.Width) / (2 * tanH)
	return geo.Position{Location: f.Center, Alt: alt}
}

// EyePoint implements graticule.View, in map meters.
func (f *Flat) EyePoint() r3.Vec {
	mpd := f.metersPerDegree()
	return r3.Vec{X: f.Center.Lon * mpd, Y: f.Center.Lat * mpd, Z: f.EyePosition().Alt}
}

// Heading implements graticule.View.
func (f *Flat) Heading() float64 { return 0 }

// Tilt implements graticule.View.
func (f *Flat) Tilt() float64 { return 0 }

// FieldOfView implements graticule.View.
func (f *Flat) FieldOfView() float64 { return DefaultFieldOfView }

// VerticalExaggeration implements graticule.View.
func (f *Flat) VerticalExaggeration() float64 {
	if f.Exaggeration <= 0 {
		return 1
	}
	return f.Exaggeration
}

// SurfaceModelIdentity implements graticule.View.
func (f *Flat) SurfaceModelIdentity() string {
	return fmt.Sprintf("flat:equirectangular:%g", f.radius())
}

// Project implements render.Projector.
func (f *Flat) Project(l geo.Location, _ float64) (x, y float64, ok bool) {
	dpp := f.degreesPerPixel()
	x = float64(f.Width)/2 + (l.Lon-f.Center.Lon)/dpp
	y = float64(f.Height)/2 - (l.Lat-f.Center.Lat)/dpp
	return x, y, true
}
