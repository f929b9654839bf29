package camera

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/gogpu/graticule/geo"
)

// Sphere is a bounding sphere in model coordinates.
type Sphere struct {
	Center r3.Vec
	Radius float64
}

// cartesian converts a geographic position on a sphere of the given radius to
// model coordinates: X through (0, 0), Y through (0, 90E), Z through the
// north pole.
func cartesian(radius float64, l geo.Location, height float64) r3.Vec {
	lat, lon := l.LatRadians(), l.LonRadians()
	r := radius + height
	return r3.Vec{
		X: r * math.Cos(lat) * math.Cos(lon),
		Y: r * math.Cos(lat) * math.Sin(lon),
		Z: r * math.Sin(lat),
	}
}

// geographic converts a model point back to a location.
func geographic(p r3.Vec) geo.Location {
	return geo.Location{
		Lat: math.Atan2(p.Z, math.Hypot(p.X, p.Y)) * 180 / math.Pi,
		Lon: math.Atan2(p.Y, p.X) * 180 / math.Pi,
	}
}

// boundingSphere encloses a region between two heights. It samples a 3×3
// grid at both heights and pads the radius by the arc sagitta between
// samples.
func boundingSphere(radius float64, r geo.Region, minHeight, maxHeight float64) Sphere {
	lats := [3]float64{r.MinLat, (r.MinLat + r.MaxLat) / 2, r.MaxLat}
	lons := [3]float64{r.MinLon, (r.MinLon + r.MaxLon) / 2, r.MaxLon}
	heights := [2]float64{minHeight, maxHeight}

	var pts [18]r3.Vec
	var sum r3.Vec
	n := 0
	for _, h := range heights {
		for _, lat := range lats {
			for _, lon := range lons {
				p := cartesian(radius, geo.Location{Lat: lat, Lon: lon}, h)
				pts[n] = p
				sum = r3.Add(sum, p)
				n++
			}
		}
	}
	center := r3.Scale(1/float64(n), sum)

	var rad float64
	for _, p := range pts {
		rad = math.Max(rad, r3.Norm(r3.Sub(p, center)))
	}
	spacing := math.Max(r.DeltaLat(), r.DeltaLon()) / 2 * math.Pi / 180
	rad += (radius + maxHeight) * (1 - math.Cos(spacing/2))
	return Sphere{Center: center, Radius: rad}
}

// intersectSphere returns the nearest intersection of a ray with a sphere
// centred at the origin.
func intersectSphere(origin, dir r3.Vec, radius float64) (r3.Vec, bool) {
	dir = r3.Unit(dir)
	b := r3.Dot(origin, dir)
	c := r3.Dot(origin, origin) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return r3.Vec{}, false
	}
	t := -b - math.Sqrt(disc)
	if t < 0 {
		t = -b + math.Sqrt(disc)
	}
	if t < 0 {
		return r3.Vec{}, false
	}
	return r3.Add(origin, r3.Scale(t, dir)), true
}
