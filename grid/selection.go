package grid

import (
	"log/slog"
	"math"

	"github.com/gogpu/graticule/geo"
)

// Primitive is a selected renderable with the level that styles it.
type Primitive struct {
	Renderable Renderable
	Level      Level
}

// LabelRequest asks for a coordinate label. Resolution is the latitude
// extent of the requesting tile and sets the label priority. Spacing is the
// distance in degrees between the line and its neighbours and sets the label
// precision. Offset anchors the label along the visible edge of the screen.
type LabelRequest struct {
	Value      float64
	Type       ElementType
	Level      Level
	Resolution float64
	Spacing    float64
	Offset     geo.Location
}

// Selection accumulates the output of one selection pass.
type Selection struct {
	Lines    []Primitive
	Labels   []Primitive
	Requests []LabelRequest

	latitudes  map[int64]struct{}
	longitudes map[int64]struct{}
}

// NewSelection returns an empty accumulator.
func NewSelection() *Selection {
	return &Selection{
		latitudes:  make(map[int64]struct{}),
		longitudes: make(map[int64]struct{}),
	}
}

func (s *Selection) add(r Renderable, level Level) {
	p := Primitive{Renderable: r, Level: level}
	if r.Kind() == KindLabel {
		s.Labels = append(s.Labels, p)
		return
	}
	s.Lines = append(s.Lines, p)
}

// Claim records that a label of the given type and value is being emitted.
// It returns false when an earlier request already claimed it this pass.
// Values are compared at 1e-9 degree precision so the same coordinate
// reached through different tiles matches.
func (s *Selection) Claim(t ElementType, value float64) bool {
	set := s.longitudes
	if t == LatitudeLabel {
		set = s.latitudes
	}
	key := int64(math.Round(value * 1e9))
	if _, ok := set[key]; ok {
		return false
	}
	set[key] = struct{}{}
	return true
}

// Pass carries the per-frame inputs of a selection walk and its output.
type Pass struct {
	View    View
	Policy  Policy
	Factory LineFactory
	Out     *Selection
	Logger  *slog.Logger

	// Visited counts tiles entered by SelectRenderables.
	Visited int
	// Generated counts tiles whose elements were built during this pass.
	Generated int

	visible    geo.Region
	hasVisible bool
	prepared   bool
}

// NewPass prepares a pass for one frame.
func NewPass(v View, p Policy, f LineFactory) *Pass {
	pass := &Pass{View: v, Policy: p, Factory: f, Out: NewSelection()}
	pass.prepare()
	return pass
}

func (p *Pass) prepare() {
	if p.prepared {
		return
	}
	p.visible, p.hasVisible = p.View.VisibleRegion()
	if p.Out == nil {
		p.Out = NewSelection()
	}
	p.prepared = true
}

// inView reports whether an element region is on screen.
func (p *Pass) inView(r geo.Region) bool {
	return p.hasVisible && p.visible.Intersects(r)
}

func (p *Pass) warn(msg string, args ...any) {
	if p.Logger != nil {
		p.Logger.Warn(msg, args...)
	}
}
