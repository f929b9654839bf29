package camera

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/gogpu/graticule/geo"
	"github.com/gogpu/graticule/grid"
)

// visibleSamples is the number of rays per viewport side used to estimate
// the visible region.
const visibleSamples = 17

// Perspective is a camera looking at a spherical globe.
//
// Heading is measured clockwise from north. Tilt 0 looks straight down and
// 90 looks at the horizon. The field of view is horizontal.
type Perspective struct {
	Eye            geo.Position
	HeadingDegrees float64
	TiltDegrees    float64
	FOVDegrees     float64
	Width, Height  int

	Radius       float64
	Terrain      ElevationModel
	Exaggeration float64
}

// NewPerspective returns a camera above (0, 0) at 10 000 km with an Earth
// sized globe.
func NewPerspective(width, height int) *Perspective {
	return &Perspective{
		Eye:          geo.NewPosition(0, 0, 1e7),
		FOVDegrees:   DefaultFieldOfView,
		Width:        width,
		Height:       height,
		Radius:       EarthRadius,
		Exaggeration: 1,
	}
}

// basis is the camera frame in model coordinates.
type basis struct {
	eye, forward, up, right r3.Vec
	tanH, tanV              float64
	near, far               float64
}

func (c *Perspective) basis() basis {
	loc := c.Eye.Location
	lat, lon := loc.LatRadians(), loc.LonRadians()
	heading := c.HeadingDegrees * math.Pi / 180
	tilt := c.TiltDegrees * math.Pi / 180

	normal := r3.Vec{X: math.Cos(lat) * math.Cos(lon), Y: math.Cos(lat) * math.Sin(lon), Z: math.Sin(lat)}
	east := r3.Vec{X: -math.Sin(lon), Y: math.Cos(lon)}
	north := r3.Vec{X: -math.Sin(lat) * math.Cos(lon), Y: -math.Sin(lat) * math.Sin(lon), Z: math.Cos(lat)}
	ahead := r3.Add(r3.Scale(math.Cos(heading), north), r3.Scale(math.Sin(heading), east))

	forward := r3.Add(r3.Scale(-math.Cos(tilt), normal), r3.Scale(math.Sin(tilt), ahead))
	up := r3.Add(r3.Scale(math.Sin(tilt), normal), r3.Scale(math.Cos(tilt), ahead))

	tanH := math.Tan(c.FieldOfView() / 2 * math.Pi / 180)
	alt := math.Max(c.Eye.Alt, 1)
	eyeRadius := c.radius() + alt
	horizon := math.Sqrt(eyeRadius*eyeRadius - c.radius()*c.radius())

	return basis{
		eye:     cartesian(c.radius(), loc, c.Eye.Alt),
		forward: r3.Unit(forward),
		up:      r3.Unit(up),
		right:   r3.Unit(r3.Cross(forward, up)),
		tanH:    tanH,
		tanV:    tanH * float64(c.Height) / float64(max(c.Width, 1)),
		near:    math.Max(1, alt/1000),
		// Everything past the horizon of the highest mountain is hidden.
		far: horizon + math.Sqrt(math.Pow(c.radius()+9000, 2)-c.radius()*c.radius()),
	}
}

func (c *Perspective) radius() float64 {
	if c.Radius <= 0 {
		return EarthRadius
	}
	return c.Radius
}

func (c *Perspective) terrain() ElevationModel { return elevationModel(c.Terrain) }

// VisibleRegion implements grid.View. It casts rays through a grid of
// viewport points; when some rays miss the globe the horizon cap around the
// nadir is included, and a pole on screen extends the region to all
// longitudes.
func (c *Perspective) VisibleRegion() (geo.Region, bool) {
	b := c.basis()
	var (
		region geo.Region
		hits   int
		missed bool
	)
	for i := 0; i < visibleSamples; i++ {
		for j := 0; j < visibleSamples; j++ {
			x := 2*float64(i)/(visibleSamples-1) - 1
			y := 2*float64(j)/(visibleSamples-1) - 1
			dir := r3.Add(b.forward, r3.Add(r3.Scale(x*b.tanH, b.right), r3.Scale(y*b.tanV, b.up)))
			p, ok := intersectSphere(b.eye, dir, c.radius())
			if !ok {
				missed = true
				continue
			}
			l := geographic(p)
			pt := geo.Region{MinLat: l.Lat, MaxLat: l.Lat, MinLon: l.Lon, MaxLon: l.Lon}
			if hits == 0 {
				region = pt
			} else {
				region = region.Union(pt)
			}
			hits++
		}
	}
	if hits == 0 {
		return geo.Region{}, false
	}
	if missed {
		region = region.Union(c.horizonCap())
	}
	for _, pole := range []float64{90, -90} {
		if c.onScreen(b, geo.Location{Lat: pole}) {
			region = region.Union(geo.Region{MinLat: pole, MaxLat: pole, MinLon: -180, MaxLon: 180})
		}
	}
	return region, true
}

// horizonCap bounds the part of the globe above the eye's horizon.
func (c *Perspective) horizonCap() geo.Region {
	r := c.radius()
	theta := math.Acos(r/(r+math.Max(c.Eye.Alt, 1))) * 180 / math.Pi
	lat := c.Eye.Lat
	minLat, maxLat := lat-theta, lat+theta
	if minLat <= -90 || maxLat >= 90 {
		return geo.NewRegion(geo.ClampLat(minLat), geo.ClampLat(maxLat), -180, 180)
	}
	sinTheta := math.Sin(theta * math.Pi / 180)
	cosLat := math.Cos(lat * math.Pi / 180)
	if cosLat <= sinTheta {
		return geo.NewRegion(minLat, maxLat, -180, 180)
	}
	dLon := math.Asin(sinTheta/cosLat) * 180 / math.Pi
	minLon, maxLon := c.Eye.Lon-dLon, c.Eye.Lon+dLon
	if minLon < -180 || maxLon > 180 {
		minLon, maxLon = -180, 180
	}
	return geo.NewRegion(minLat, maxLat, minLon, maxLon)
}

func (c *Perspective) onScreen(b basis, l geo.Location) bool {
	x, y, ok := c.project(b, l, 0)
	return ok && x >= 0 && y >= 0 && x <= float64(c.Width) && y <= float64(c.Height)
}

// BoundingVolumeFor implements grid.View and returns a Sphere.
func (c *Perspective) BoundingVolumeFor(r geo.Region, minElevation, maxElevation float64) grid.BoundingVolume {
	return boundingSphere(c.radius(), r, minElevation, maxElevation)
}

// FrustumIntersects implements grid.View. Volumes other than Sphere never
// intersect.
func (c *Perspective) FrustumIntersects(v grid.BoundingVolume) bool {
	s, ok := v.(Sphere)
	if !ok {
		return false
	}
	b := c.basis()
	q := r3.Sub(s.Center, b.eye)
	z := r3.Dot(q, b.forward)
	if z+s.Radius < b.near || z-s.Radius > b.far {
		return false
	}
	sides := [4]r3.Vec{
		r3.Add(r3.Scale(b.tanH, b.forward), b.right),
		r3.Sub(r3.Scale(b.tanH, b.forward), b.right),
		r3.Add(r3.Scale(b.tanV, b.forward), b.up),
		r3.Sub(r3.Scale(b.tanV, b.forward), b.up),
	}
	for _, n := range sides {
		if r3.Dot(r3.Unit(n), q) < -s.Radius {
			return false
		}
	}
	return true
}

// ElevationRange implements grid.View.
func (c *Perspective) ElevationRange(r geo.Region) (float64, float64) {
	lo, hi := c.terrain().ElevationRange(r)
	e := c.VerticalExaggeration()
	return lo * e, hi * e
}

// Elevation implements graticule.View.
func (c *Perspective) Elevation(l geo.Location) float64 {
	return c.terrain().Elevation(l)
}

// ProjectToScreenDistance implements grid.View.
func (c *Perspective) ProjectToScreenDistance(l geo.Location) float64 {
	p := cartesian(c.radius(), l, c.Elevation(l)*c.VerticalExaggeration())
	return r3.Norm(r3.Sub(p, c.EyePoint()))
}

// PixelSizeAtDistance implements grid.View.
func (c *Perspective) PixelSizeAtDistance(distance float64) float64 {
	tanH := math.Tan(c.FieldOfView() / 2 * math.Pi / 180)
	return 2 * distance * tanH / float64(max(c.Width, 1))
}

// GlobeRadius implements grid.View.
func (c *Perspective) GlobeRadius() float64 { return c.radius() }

// EyePosition implements grid.View.
func (c *Perspective) EyePosition() geo.Position { return c.Eye }

// EyePoint implements graticule.View.
func (c *Perspective) EyePoint() r3.Vec {
	return cartesian(c.radius(), c.Eye.Location, c.Eye.Alt)
}

// Heading implements graticule.View.
func (c *Perspective) Heading() float64 { return c.HeadingDegrees }

// Tilt implements graticule.View.
func (c *Perspective) Tilt() float64 { return c.TiltDegrees }

// FieldOfView implements graticule.View.
func (c *Perspective) FieldOfView() float64 {
	if c.FOVDegrees <= 0 {
		return DefaultFieldOfView
	}
	return c.FOVDegrees
}

// VerticalExaggeration implements graticule.View.
func (c *Perspective) VerticalExaggeration() float64 {
	if c.Exaggeration <= 0 {
		return 1
	}
	return c.Exaggeration
}

// SurfaceModelIdentity implements graticule.View.
func (c *Perspective) SurfaceModelIdentity() string {
	return fmt.Sprintf("sphere:%g", c.radius())
}

// Project maps a location at the given height to viewport pixels, origin at
// the top-left. It reports false for points behind the camera or on the far
// side of the globe.
func (c *Perspective) Project(l geo.Location, elevation float64) (x, y float64, ok bool) {
	return c.project(c.basis(), l, elevation)
}

func (c *Perspective) project(b basis, l geo.Location, elevation float64) (x, y float64, ok bool) {
	p := cartesian(c.radius(), l, elevation)
	q := r3.Sub(p, b.eye)
	z := r3.Dot(q, b.forward)
	if z < b.near {
		return 0, 0, false
	}
	if r3.Dot(r3.Unit(p), q) > 0 {
		return 0, 0, false
	}
	nx := r3.Dot(q, b.right) / (z * b.tanH)
	ny := r3.Dot(q, b.up) / (z * b.tanV)
	x = (nx + 1) * float64(c.Width) / 2
	y = (1 - ny) * float64(c.Height) / 2
	return x, y, true
}
