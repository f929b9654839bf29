package grid

import "github.com/gogpu/graticule/geo"

// ElementType classifies a grid element.
type ElementType int

// Element types.
const (
	// Line is an interior meridian or parallel.
	Line ElementType = iota
	LineNorth
	LineSouth
	LineWest
	LineEast
	GridZoneLabel
	LongitudeLabel
	LatitudeLabel
)

var elementTypeNames = [...]string{
	Line:           "line",
	LineNorth:      "line-north",
	LineSouth:      "line-south",
	LineWest:       "line-west",
	LineEast:       "line-east",
	GridZoneLabel:  "grid-zone-label",
	LongitudeLabel: "longitude-label",
	LatitudeLabel:  "latitude-label",
}

// String implements fmt.Stringer.
func (t ElementType) String() string {
	if t < 0 || int(t) >= len(elementTypeNames) {
		return "unknown"
	}
	return elementTypeNames[t]
}

// RenderableKind tells a line primitive from a label primitive.
type RenderableKind int

const (
	KindLine RenderableKind = iota
	KindLabel
)

// Renderable is an opaque drawing primitive produced by the rendering
// backend. The grid only needs to know which kind it is.
type Renderable interface {
	Kind() RenderableKind
}

// LineFactory creates line primitives for the backend.
type LineFactory interface {
	// NewLine returns a polyline through the given points.
	NewLine(points []geo.Location) Renderable
}

// Element is one renderable owned by a tile, tagged with the region it
// covers and the coordinate it marks. Value is meaningless for plain Line
// elements that are not labeled.
type Element struct {
	Region     geo.Region
	Renderable Renderable
	Type       ElementType
	Value      float64
}
