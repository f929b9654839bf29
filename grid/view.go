package grid

import "github.com/gogpu/graticule/geo"

// BoundingVolume is an opaque 3D extent created by a View. The grid never
// inspects it; it only hands it back to the same View.
type BoundingVolume any

// View is the camera and surface state the tiles need for a frame.
// Implementations live in the rendering host; package camera provides
// reference ones.
type View interface {
	// VisibleRegion returns the part of the surface currently on screen.
	// It reports false when nothing is visible.
	VisibleRegion() (geo.Region, bool)

	// BoundingVolumeFor returns a volume enclosing the region between the two
	// elevations, or nil when none can be computed.
	BoundingVolumeFor(r geo.Region, minElevation, maxElevation float64) BoundingVolume

	// FrustumIntersects reports whether the volume intersects the view frustum.
	FrustumIntersects(v BoundingVolume) bool

	// ElevationRange returns the lowest and highest surface elevation in meters
	// inside the region, vertical exaggeration applied.
	ElevationRange(r geo.Region) (minElevation, maxElevation float64)

	// ProjectToScreenDistance returns the distance in meters from the eye to
	// the surface point under the location.
	ProjectToScreenDistance(l geo.Location) float64

	// PixelSizeAtDistance returns the size in meters of one pixel at the
	// given distance from the eye.
	PixelSizeAtDistance(distance float64) float64

	// GlobeRadius returns the radius of the surface model in meters.
	GlobeRadius() float64

	// EyePosition returns the geographic position of the eye.
	EyePosition() geo.Position
}
