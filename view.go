package graticule

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/gogpu/graticule/geo"
	"github.com/gogpu/graticule/grid"
)

// View is the camera and surface state of the rendering host for one frame.
// It extends grid.View with what the Layer needs to decide whether the
// previous selection is still valid.
type View interface {
	grid.View

	// EyePoint returns the eye in model (Cartesian) coordinates, meters.
	EyePoint() r3.Vec

	// Heading, Tilt and FieldOfView are in degrees.
	Heading() float64
	Tilt() float64
	FieldOfView() float64

	// VerticalExaggeration scales surface elevations.
	VerticalExaggeration() float64

	// SurfaceModelIdentity changes whenever the globe or its projection does.
	SurfaceModelIdentity() string

	// Elevation returns the unexaggerated surface elevation in meters.
	Elevation(l geo.Location) float64
}

// Factory is the rendering backend contract: it builds line and label
// primitives and formats coordinate labels.
type Factory interface {
	grid.LineFactory

	// NewLabel returns a text primitive anchored at a location. Backends that
	// declutter labels should keep higher priorities first.
	NewLabel(text string, anchor geo.Location, priority float64) grid.Renderable

	// FormatAngle formats a coordinate for a label on a line whose
	// neighbours are spacing degrees away.
	FormatAngle(value, spacing float64) string
}

// snapshot is the view state a selection was computed for.
type snapshot struct {
	eyePoint     r3.Vec
	heading      float64
	tilt         float64
	fieldOfView  float64
	exaggeration float64
	surface      string
}

func takeSnapshot(v View) *snapshot {
	return &snapshot{
		eyePoint:     v.EyePoint(),
		heading:      v.Heading(),
		tilt:         v.Tilt(),
		fieldOfView:  v.FieldOfView(),
		exaggeration: v.VerticalExaggeration(),
		surface:      v.SurfaceModelIdentity(),
	}
}

// Thresholds below which view changes reuse the previous selection.
const (
	eyeMoveFraction = 0.01 // of the altitude above ground
	angleTolerance  = 1.0  // degrees
)

// changed reports whether v differs from the snapshot enough to require a
// new selection.
func (s *snapshot) changed(v View) bool {
	moved := r3.Norm(r3.Sub(v.EyePoint(), s.eyePoint))
	if moved > altitudeAboveGround(v)*eyeMoveFraction {
		return true
	}
	if v.VerticalExaggeration() != s.exaggeration {
		return true
	}
	if angleDelta(v.Heading(), s.heading) > angleTolerance ||
		angleDelta(v.Tilt(), s.tilt) > angleTolerance ||
		angleDelta(v.FieldOfView(), s.fieldOfView) > angleTolerance {
		return true
	}
	return v.SurfaceModelIdentity() != s.surface
}

func altitudeAboveGround(v View) float64 {
	eye := v.EyePosition()
	return eye.Alt - v.Elevation(eye.Location)*v.VerticalExaggeration()
}

// angleDelta returns the smallest absolute difference between two angles.
func angleDelta(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	return math.Min(d, 360-d)
}
