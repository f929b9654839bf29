package graticule

import "github.com/gogpu/graticule/grid"

// Frame is the selection handed to the rendering backend. Every primitive
// carries the level that selects its style.
type Frame struct {
	Lines  []grid.Primitive
	Labels []grid.Primitive
}

// Len returns the number of primitives in the frame.
func (f Frame) Len() int {
	return len(f.Lines) + len(f.Labels)
}

// CountByLevel returns the number of lines and labels per level.
func (f Frame) CountByLevel() (lines, labels [grid.NumLevels]int) {
	for _, p := range f.Lines {
		if p.Level.Valid() {
			lines[p.Level]++
		}
	}
	for _, p := range f.Labels {
		if p.Level.Valid() {
			labels[p.Level]++
		}
	}
	return lines, labels
}
