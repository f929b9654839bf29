package grid

import (
	"errors"
	"fmt"
	"strconv"
)

// Level is a discrete graticule level of detail. The rendering backend uses
// it to look up the style of a selected element.
type Level int

// Graticule levels, from 10° spacing down to 0.0001°.
const (
	Level0 Level = iota
	Level1
	Level2
	Level3
	Level4
	Level5

	NumLevels = 6
)

// String returns the level tag "0" through "5".
func (l Level) String() string {
	return strconv.Itoa(int(l))
}

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool {
	return l >= Level0 && l <= Level5
}

// levelBands lists the lower resolution bound of each level, coarsest first.
var levelBands = [NumLevels]float64{10, 1, 0.1, 0.01, 0.001, 0.0001}

// resolutionTolerance absorbs the rounding of subdivided tile edges, which
// leaves spacings such as 0.1 or 0.0001 a few ulps below their band edge.
const resolutionTolerance = 1e-9

// LevelForResolution maps a grid spacing in degrees to its level.
// Spacings below 0.0001° have no level and report false.
func LevelForResolution(resolution float64) (Level, bool) {
	r := resolution * (1 + resolutionTolerance)
	for i, lo := range levelBands {
		if r >= lo {
			return Level(i), true
		}
	}
	return 0, false
}

// ErrUnknownLevel is returned by ParseLevel for tags outside "0".."5".
var ErrUnknownLevel = errors.New("grid: unknown graticule level")

// ParseLevel parses a level tag as produced by Level.String.
func ParseLevel(s string) (Level, error) {
	n, err := strconv.Atoi(s)
	if err != nil || !Level(n).Valid() {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
	return Level(n), nil
}
