// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"math"
	"slices"

	"github.com/gogpu/gg"

	"github.com/gogpu/graticule"
	"github.com/gogpu/graticule/geo"
	"github.com/gogpu/graticule/grid"
)

// DefaultMaxSegment is the longest line step, in degrees, drawn as a
// straight screen segment.
const DefaultMaxSegment = 1.0

// Projector maps surface locations to canvas pixels. ok is false when the
// point is not visible, e.g. on the far side of the globe.
type Projector interface {
	Project(l geo.Location, elevation float64) (x, y float64, ok bool)
}

// surface is implemented by projectors that know the terrain, such as the
// camera package views. Lines and labels are then lifted onto it.
type surface interface {
	Elevation(l geo.Location) float64
	VerticalExaggeration() float64
}

// DrawStats describes the last Draw call.
type DrawStats struct {
	Lines       int // polylines with at least one visible segment
	Segments    int
	Labels      int
	Decluttered int // labels skipped because they overlapped
	Offscreen   int // labels whose anchor was not visible
}

// CanvasOption configures a Canvas.
type CanvasOption func(*Canvas)

// WithFonts sets the label fonts. The Go fonts are used by default.
func WithFonts(fs *FontSet) CanvasOption {
	return func(c *Canvas) { c.fonts = fs }
}

// WithDeclutter enables or disables dropping overlapping labels.
func WithDeclutter(on bool) CanvasOption {
	return func(c *Canvas) { c.declutter = on }
}

// WithMaxSegment sets the densification step in degrees.
func WithMaxSegment(degrees float64) CanvasOption {
	return func(c *Canvas) {
		if degrees > 0 {
			c.maxSegment = degrees
		}
	}
}

// Canvas draws graticule frames onto a gg.Context.
type Canvas struct {
	dc         *gg.Context
	proj       Projector
	styles     Styles
	fonts      *FontSet
	declutter  bool
	maxSegment float64
	stats      DrawStats
}

// NewCanvas creates a Canvas drawing on dc through proj.
func NewCanvas(dc *gg.Context, proj Projector, styles Styles, opts ...CanvasOption) *Canvas {
	c := &Canvas{
		dc:         dc,
		proj:       proj,
		styles:     styles,
		declutter:  true,
		maxSegment: DefaultMaxSegment,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Styles returns the per-level styles.
func (c *Canvas) Styles() *Styles { return &c.styles }

// Stats returns statistics of the last Draw.
func (c *Canvas) Stats() DrawStats { return c.stats }

// Draw strokes the lines and then draws the labels of frame.
func (c *Canvas) Draw(frame graticule.Frame) error {
	if c.dc == nil {
		return ErrNilContext
	}
	if c.proj == nil {
		return ErrNilProjector
	}
	if err := c.styles.Validate(); err != nil {
		return err
	}
	c.stats = DrawStats{}

	if err := c.drawLines(frame.Lines); err != nil {
		return err
	}
	if err := c.drawLabels(frame.Labels); err != nil {
		return err
	}

	graticule.Logger().Debug("render: frame drawn",
		"lines", c.stats.Lines,
		"segments", c.stats.Segments,
		"labels", c.stats.Labels,
		"decluttered", c.stats.Decluttered)
	return nil
}

func (c *Canvas) drawLines(lines []grid.Primitive) error {
	var byLevel [grid.NumLevels][]*Line
	for _, p := range lines {
		l, ok := p.Renderable.(*Line)
		if !ok {
			continue
		}
		level := p.Level
		if !level.Valid() {
			level = grid.NumLevels - 1
		}
		byLevel[level] = append(byLevel[level], l)
	}

	for i := range byLevel {
		style := c.styles[i]
		if !style.DrawLines || len(byLevel[i]) == 0 {
			continue
		}
		c.dc.SetStroke(style.Stroke())
		setColor(c.dc, style.LineColor)
		drawn := 0
		for _, l := range byLevel[i] {
			if n := c.tracePolyline(l.Points); n > 0 {
				c.stats.Lines++
				c.stats.Segments += n
				drawn++
			}
		}
		if drawn == 0 {
			c.dc.ClearPath()
			continue
		}
		if err := c.dc.Stroke(); err != nil {
			return fmt.Errorf("render: stroke level %d: %w", i, err)
		}
	}
	return nil
}

// tracePolyline adds the visible runs of a densified polyline to the current
// path and returns the number of segments added.
func (c *Canvas) tracePolyline(points []geo.Location) int {
	segments := 0
	open := false
	visit := func(l geo.Location) {
		x, y, ok := c.proj.Project(l, c.elevation(l))
		if !ok {
			open = false
			return
		}
		if open {
			c.dc.LineTo(x, y)
			segments++
			return
		}
		c.dc.MoveTo(x, y)
		open = true
	}

	for i, p := range points {
		if i == 0 {
			visit(p)
			continue
		}
		for _, q := range densify(points[i-1], p, c.maxSegment) {
			visit(q)
		}
	}
	return segments
}

// densify returns the points after a up to and including b, spaced at most
// step degrees apart.
func densify(a, b geo.Location, step float64) []geo.Location {
	span := math.Max(math.Abs(b.Lat-a.Lat), math.Abs(b.Lon-a.Lon))
	n := int(math.Ceil(span / step))
	if n < 1 {
		n = 1
	}
	out := make([]geo.Location, n)
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		out[i-1] = geo.Location{
			Lat: a.Lat + (b.Lat-a.Lat)*t,
			Lon: a.Lon + (b.Lon-a.Lon)*t,
		}
	}
	out[n-1] = b
	return out
}

type placedLabel struct {
	label *Label
	level grid.Level
}

type box struct{ x0, y0, x1, y1 float64 }

func (b box) overlaps(o box) bool {
	return b.x0 < o.x1 && o.x0 < b.x1 && b.y0 < o.y1 && o.y0 < b.y1
}

func (c *Canvas) drawLabels(labels []grid.Primitive) error {
	queue := make([]placedLabel, 0, len(labels))
	for _, p := range labels {
		l, ok := p.Renderable.(*Label)
		if !ok {
			continue
		}
		level := p.Level
		if !level.Valid() {
			level = grid.NumLevels - 1
		}
		if !c.styles[level].DrawLabels {
			continue
		}
		queue = append(queue, placedLabel{label: l, level: level})
	}
	if len(queue) == 0 {
		return nil
	}
	if c.fonts == nil {
		fs, err := DefaultFontSet()
		if err != nil {
			return err
		}
		c.fonts = fs
	}

	slices.SortStableFunc(queue, func(a, b placedLabel) int {
		switch {
		case a.label.Priority > b.label.Priority:
			return -1
		case a.label.Priority < b.label.Priority:
			return 1
		}
		return 0
	})

	w, h := float64(c.dc.Width()), float64(c.dc.Height())
	var placed []box
	for _, q := range queue {
		x, y, ok := c.proj.Project(q.label.Anchor, c.elevation(q.label.Anchor))
		if !ok || x < 0 || y < 0 || x > w || y > h {
			c.stats.Offscreen++
			continue
		}
		style := c.styles[q.level]
		c.dc.SetFont(c.fonts.Face(style.LabelSize, style.LabelBold))
		tw, th := c.dc.MeasureString(q.label.Text)
		b := box{x - tw/2, y - th/2, x + tw/2, y + th/2}
		if c.declutter && slices.ContainsFunc(placed, b.overlaps) {
			c.stats.Decluttered++
			continue
		}
		placed = append(placed, b)
		setColor(c.dc, style.LabelColor)
		c.dc.DrawStringAnchored(q.label.Text, x, y, 0.5, 0.5)
		c.stats.Labels++
	}
	return nil
}

func (c *Canvas) elevation(l geo.Location) float64 {
	s, ok := c.proj.(surface)
	if !ok {
		return 0
	}
	return s.Elevation(l) * s.VerticalExaggeration()
}

func setColor(dc *gg.Context, col gg.RGBA) {
	dc.SetRGBA(col.R, col.G, col.B, col.A)
}
