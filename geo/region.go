package geo

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// World covers the full latitude/longitude domain.
var World = Region{MinLat: -90, MaxLat: 90, MinLon: -180, MaxLon: 180}

// Region is an immutable latitude/longitude rectangle in degrees.
//
// MinLat <= MaxLat and MinLon <= MaxLon always hold for regions built with
// NewRegion. A region may be degenerate: a meridian segment has zero
// longitude delta and a parallel segment has zero latitude delta.
type Region struct {
	MinLat, MaxLat float64
	MinLon, MaxLon float64
}

// NewRegion creates a region from its bounds, swapping reversed pairs.
func NewRegion(minLat, maxLat, minLon, maxLon float64) Region {
	if minLat > maxLat {
		minLat, maxLat = maxLat, minLat
	}
	if minLon > maxLon {
		minLon, maxLon = maxLon, minLon
	}
	return Region{MinLat: minLat, MaxLat: maxLat, MinLon: minLon, MaxLon: maxLon}
}

// RegionFromBound converts an orb bound (X = longitude, Y = latitude).
func RegionFromBound(b orb.Bound) Region {
	return NewRegion(b.Min.Lat(), b.Max.Lat(), b.Min.Lon(), b.Max.Lon())
}

// Bound returns the region as an orb bound.
func (r Region) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{r.MinLon, r.MinLat},
		Max: orb.Point{r.MaxLon, r.MaxLat},
	}
}

// DeltaLat returns the latitude extent in degrees.
func (r Region) DeltaLat() float64 { return r.MaxLat - r.MinLat }

// DeltaLon returns the longitude extent in degrees.
func (r Region) DeltaLon() float64 { return r.MaxLon - r.MinLon }

// DeltaLatRadians returns the latitude extent in radians.
func (r Region) DeltaLatRadians() float64 { return r.DeltaLat() * math.Pi / 180 }

// Centroid returns the center of the rectangle.
func (r Region) Centroid() Location {
	c := r.Bound().Center()
	return Location{Lat: c.Lat(), Lon: c.Lon()}
}

// Intersects reports whether two regions share at least one point.
// Edges are inclusive, so adjacent regions and zero-width lines on a shared
// edge intersect.
func (r Region) Intersects(other Region) bool {
	return r.Bound().Intersects(other.Bound())
}

// Union returns the smallest region covering both regions.
func (r Region) Union(other Region) Region {
	return RegionFromBound(r.Bound().Union(other.Bound()))
}

// Subdivide splits the region into n×n equal cells in row-major order:
// rows run south to north and columns west to east. The outer edges of the
// last row and column are copied from r so the cells reconstruct r exactly.
// Subdivide returns nil for n < 1.
func (r Region) Subdivide(n int) []Region {
	if n < 1 {
		return nil
	}
	lats := splitRange(r.MinLat, r.MaxLat, n)
	lons := splitRange(r.MinLon, r.MaxLon, n)

	cells := make([]Region, 0, n*n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			cells = append(cells, Region{
				MinLat: lats[row],
				MaxLat: lats[row+1],
				MinLon: lons[col],
				MaxLon: lons[col+1],
			})
		}
	}
	return cells
}

// String implements fmt.Stringer.
func (r Region) String() string {
	return fmt.Sprintf("[lat %g..%g, lon %g..%g]", r.MinLat, r.MaxLat, r.MinLon, r.MaxLon)
}

// splitRange returns n+1 edges from lo to hi, with both ends exact.
func splitRange(lo, hi float64, n int) []float64 {
	edges := make([]float64, n+1)
	step := (hi - lo) / float64(n)
	for i := range edges {
		edges[i] = lo + float64(i)*step
	}
	edges[n] = hi
	return edges
}
