package grid

import (
	"math"

	"github.com/gogpu/graticule/geo"
)

const earthRadius = 6378137.0

// stubView is a View with a uniform or distance-dependent pixel size.
// Distances are measured in degrees from focus, which keeps the numbers in
// tests easy to reason about.
type stubView struct {
	visible    geo.Region
	hasVisible bool
	focus      geo.Location
	eye        geo.Position
	// pixelSize returns meters per pixel at a distance in degrees.
	pixelSize func(distance float64) float64
	// culled regions fail the frustum test.
	culled func(geo.Region) bool
	noVolume bool
}

func uniformView(visible geo.Region, metersPerPixel float64) *stubView {
	return &stubView{
		visible:    visible,
		hasVisible: true,
		focus:      visible.Centroid(),
		eye:        geo.Position{Location: visible.Centroid(), Alt: 1e6},
		pixelSize:  func(float64) float64 { return metersPerPixel },
	}
}

func (v *stubView) VisibleRegion() (geo.Region, bool) { return v.visible, v.hasVisible }

func (v *stubView) BoundingVolumeFor(r geo.Region, _, _ float64) BoundingVolume {
	if v.noVolume {
		return nil
	}
	return r
}

func (v *stubView) FrustumIntersects(bv BoundingVolume) bool {
	r := bv.(geo.Region)
	return v.culled == nil || !v.culled(r)
}

func (v *stubView) ElevationRange(geo.Region) (float64, float64) { return 0, 0 }

func (v *stubView) ProjectToScreenDistance(l geo.Location) float64 {
	return math.Hypot(l.Lat-v.focus.Lat, l.Lon-v.focus.Lon)
}

func (v *stubView) PixelSizeAtDistance(d float64) float64 { return v.pixelSize(d) }

func (v *stubView) GlobeRadius() float64 { return earthRadius }

func (v *stubView) EyePosition() geo.Position { return v.eye }

type testLine struct {
	points []geo.Location
}

func (*testLine) Kind() RenderableKind { return KindLine }

type testLabel struct{}

func (*testLabel) Kind() RenderableKind { return KindLabel }

// countingFactory counts the lines it creates.
type countingFactory struct {
	lines int
}

func (f *countingFactory) NewLine(points []geo.Location) Renderable {
	f.lines++
	return &testLine{points: points}
}

// walk visits every tile of a subtree, parents first.
func walk(t *Tile, fn func(parent, child *Tile)) {
	for _, c := range t.Children() {
		fn(t, c)
		walk(c, fn)
	}
}
