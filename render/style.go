// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/gogpu/gg"

	"github.com/gogpu/graticule/grid"
)

// LineStyle selects the stroke pattern of grid lines.
type LineStyle int

const (
	// Solid draws continuous lines.
	Solid LineStyle = iota
	// Dashed draws lines as dashes of four times the line width.
	Dashed
	// Dotted draws lines as round dots.
	Dotted
)

// String returns the line style name.
func (s LineStyle) String() string {
	switch s {
	case Solid:
		return "solid"
	case Dashed:
		return "dashed"
	case Dotted:
		return "dotted"
	default:
		return fmt.Sprintf("LineStyle(%d)", int(s))
	}
}

// Style configures how one graticule level is drawn.
type Style struct {
	DrawLines bool
	LineColor gg.RGBA
	LineWidth float64
	LineStyle LineStyle

	DrawLabels bool
	LabelColor gg.RGBA
	LabelSize  float64
	LabelBold  bool
}

// Stroke returns the gg stroke for the line settings.
func (s Style) Stroke() gg.Stroke {
	switch s.LineStyle {
	case Dashed:
		return gg.DefaultStroke().WithWidth(s.LineWidth).WithDashPattern(4*s.LineWidth, 4*s.LineWidth)
	case Dotted:
		return gg.DottedStroke().WithWidth(s.LineWidth)
	}
	return gg.DefaultStroke().WithWidth(s.LineWidth)
}

// Validate reports whether the style can be drawn.
func (s Style) Validate() error {
	if s.DrawLines && s.LineWidth <= 0 {
		return fmt.Errorf("%w: line width %g", ErrInvalidStyle, s.LineWidth)
	}
	if s.DrawLabels && s.LabelSize <= 0 {
		return fmt.Errorf("%w: label size %g", ErrInvalidStyle, s.LabelSize)
	}
	if s.LineStyle < Solid || s.LineStyle > Dotted {
		return fmt.Errorf("%w: %v", ErrInvalidStyle, s.LineStyle)
	}
	return nil
}

// Styles holds one Style per graticule level.
type Styles [grid.NumLevels]Style

// DefaultStyles returns the default look: white level 0 labels fading
// through green and blue to pale cyan at level 5, all with 1px solid lines.
func DefaultStyles() Styles {
	colors := [grid.NumLevels]gg.RGBA{
		gg.White,
		gg.Green,
		gg.Hex("#0066FF"),
		gg.Cyan,
		gg.Hex("#009999"),
		gg.Hex("#66FFCC"),
	}
	var s Styles
	for i, c := range colors {
		s[i] = Style{
			DrawLines:  true,
			LineColor:  c,
			LineWidth:  1,
			LineStyle:  Solid,
			DrawLabels: true,
			LabelColor: c,
			LabelSize:  14,
			LabelBold:  i <= int(grid.Level1),
		}
	}
	s[grid.Level0].LabelSize = 16
	return s
}

// For returns the style of a level. Unknown levels get the finest style.
func (s *Styles) For(level grid.Level) Style {
	if !level.Valid() {
		return s[grid.NumLevels-1]
	}
	return s[level]
}

// Set replaces the style of the named level, "0" through "5".
func (s *Styles) Set(name string, style Style) error {
	level, err := grid.ParseLevel(name)
	if err != nil {
		return err
	}
	if err := style.Validate(); err != nil {
		return fmt.Errorf("level %v: %w", level, err)
	}
	s[level] = style
	return nil
}

// Validate checks every level.
func (s *Styles) Validate() error {
	for i := range s {
		if err := s[i].Validate(); err != nil {
			return fmt.Errorf("level %v: %w", grid.Level(i), err)
		}
	}
	return nil
}
