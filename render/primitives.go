// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/graticule"
	"github.com/gogpu/graticule/geo"
	"github.com/gogpu/graticule/grid"
)

// Line is a polyline on the surface.
type Line struct {
	Points []geo.Location
}

// Kind implements grid.Renderable.
func (*Line) Kind() grid.RenderableKind { return grid.KindLine }

// Label is a text anchored at a surface location.
type Label struct {
	Text     string
	Anchor   geo.Location
	Priority float64
}

// Kind implements grid.Renderable.
func (*Label) Kind() grid.RenderableKind { return grid.KindLabel }

// FactoryOption configures a Factory.
type FactoryOption func(*factoryOptions)

type factoryOptions struct {
	formatter *Formatter
}

// WithFormatter sets the label formatter.
func WithFormatter(f *Formatter) FactoryOption {
	return func(o *factoryOptions) {
		if f != nil {
			o.formatter = f
		}
	}
}

// WithAngleFormat creates the label formatter for the given format.
func WithAngleFormat(format grid.AngleFormat) FactoryOption {
	return func(o *factoryOptions) {
		o.formatter = NewFormatter(format)
	}
}

// Factory builds Line and Label primitives. It implements graticule.Factory.
type Factory struct {
	formatter *Formatter
}

var _ graticule.Factory = (*Factory)(nil)

// NewFactory creates a Factory. Labels default to sexagesimal formatting.
func NewFactory(opts ...FactoryOption) *Factory {
	o := factoryOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.formatter == nil {
		o.formatter = NewFormatter(grid.Sexagesimal)
	}
	return &Factory{formatter: o.formatter}
}

// NewLine implements grid.LineFactory.
func (f *Factory) NewLine(points []geo.Location) grid.Renderable {
	return &Line{Points: points}
}

// NewLabel implements graticule.Factory.
func (f *Factory) NewLabel(text string, anchor geo.Location, priority float64) grid.Renderable {
	return &Label{Text: text, Anchor: anchor, Priority: priority}
}

// FormatAngle implements graticule.Factory.
func (f *Factory) FormatAngle(value, spacing float64) string {
	return f.formatter.Format(value, spacing)
}
