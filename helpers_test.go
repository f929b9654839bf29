package graticule

import (
	"strconv"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/gogpu/graticule/geo"
	"github.com/gogpu/graticule/grid"
)

// fakeView is a map-like view with a constant pixel size. Its bounding
// volumes are regions and the frustum is the visible region.
type fakeView struct {
	visible    geo.Region
	hasVisible bool
	mpp        float64

	eye       geo.Position
	eyePoint  r3.Vec
	heading   float64
	tilt      float64
	fov       float64
	exag      float64
	surface   string
	elevation float64
}

func newFlatView(visible geo.Region, metersPerPixel float64) *fakeView {
	c := visible.Centroid()
	return &fakeView{
		visible:    visible,
		hasVisible: true,
		mpp:        metersPerPixel,
		eye:        geo.Position{Location: c, Alt: 1e6},
		eyePoint:   r3.Vec{X: c.Lon * 1e5, Y: c.Lat * 1e5, Z: 1e6},
		fov:        45,
		exag:       1,
		surface:    "test",
	}
}

// moved returns a copy of v with the eye shifted by d meters along X.
func (v *fakeView) moved(d float64) *fakeView {
	w := *v
	w.eyePoint = r3.Add(v.eyePoint, r3.Vec{X: d})
	return &w
}

func (v *fakeView) with(fn func(*fakeView)) *fakeView {
	w := *v
	fn(&w)
	return &w
}

func (v *fakeView) VisibleRegion() (geo.Region, bool) { return v.visible, v.hasVisible }

func (v *fakeView) BoundingVolumeFor(r geo.Region, _, _ float64) grid.BoundingVolume { return r }

func (v *fakeView) FrustumIntersects(bv grid.BoundingVolume) bool {
	r, ok := bv.(geo.Region)
	return ok && v.hasVisible && r.Intersects(v.visible)
}

func (v *fakeView) ElevationRange(geo.Region) (float64, float64) {
	return v.elevation * v.exag, v.elevation * v.exag
}

func (v *fakeView) ProjectToScreenDistance(geo.Location) float64 { return v.eye.Alt }

func (v *fakeView) PixelSizeAtDistance(float64) float64 { return v.mpp }

func (v *fakeView) GlobeRadius() float64 { return 6378137 }

func (v *fakeView) EyePosition() geo.Position { return v.eye }

func (v *fakeView) EyePoint() r3.Vec { return v.eyePoint }

func (v *fakeView) Heading() float64 { return v.heading }

func (v *fakeView) Tilt() float64 { return v.tilt }

func (v *fakeView) FieldOfView() float64 { return v.fov }

func (v *fakeView) VerticalExaggeration() float64 { return v.exag }

func (v *fakeView) SurfaceModelIdentity() string { return v.surface }

func (v *fakeView) Elevation(geo.Location) float64 { return v.elevation }

type fakeLine struct {
	points []geo.Location
}

func (*fakeLine) Kind() grid.RenderableKind { return grid.KindLine }

type fakeLabel struct {
	text     string
	anchor   geo.Location
	priority float64
	spacing  float64
}

func (*fakeLabel) Kind() grid.RenderableKind { return grid.KindLabel }

// fakeFactory records what it builds. The spacing of the last FormatAngle
// call is stored in the next label.
type fakeFactory struct {
	lines   int
	labels  int
	spacing float64
}

func newFakeFactory() *fakeFactory { return &fakeFactory{} }

func (f *fakeFactory) NewLine(points []geo.Location) grid.Renderable {
	f.lines++
	return &fakeLine{points: points}
}

func (f *fakeFactory) NewLabel(text string, anchor geo.Location, priority float64) grid.Renderable {
	f.labels++
	return &fakeLabel{text: text, anchor: anchor, priority: priority, spacing: f.spacing}
}

func (f *fakeFactory) FormatAngle(value, spacing float64) string {
	f.spacing = spacing
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// tile returns the top-level tile at row r, column c, or nil if it was never
// instantiated.
func (l *Layer) tile(r, c int) *grid.Tile {
	return l.tiles[r*TopLevelColumns+c]
}
