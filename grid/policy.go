package grid

// MinCellPixels is the smallest on-screen size, in pixels, of a grid cell
// that the LatLon policy still draws.
const MinCellPixels = 40.0

// Policy is the capability set that turns the generic quadtree into a
// specific graticule.
type Policy interface {
	// ChildDivisions returns the divisions of a tile created at level.
	ChildDivisions(level int) int

	// IsTileVisible reports whether a tile is worth selecting this frame.
	IsTileVisible(t *Tile, v View) bool

	// ClassifyLevel maps a grid spacing in degrees to a graticule level.
	ClassifyLevel(resolution float64) (Level, bool)

	// MinCellPixels is the smallest legible cell size in pixels.
	MinCellPixels() float64
}

// AngleFormat selects how a LatLon graticule subdivides degrees.
type AngleFormat int

const (
	// Sexagesimal subdivides into minutes and seconds, so tiles at levels 1
	// and 3 split by 6 instead of 10.
	Sexagesimal AngleFormat = iota
	// Decimal subdivides by 10 at every level.
	Decimal
)

// String implements fmt.Stringer.
func (f AngleFormat) String() string {
	if f == Decimal {
		return "dd"
	}
	return "dms"
}

// LatLon is the latitude/longitude graticule policy.
type LatLon struct {
	Format AngleFormat
}

var _ Policy = LatLon{}

// ChildDivisions returns 6 for tiles whose parent sits at level 0 or 2 in
// sexagesimal mode, and 10 otherwise.
func (p LatLon) ChildDivisions(level int) int {
	if p.Format == Sexagesimal && (level == 1 || level == 3) {
		return 6
	}
	return 10
}

// IsTileVisible extends Tile.InView: below level 0 a tile is dropped once its
// cells would be smaller than MinCellPixels on screen.
func (p LatLon) IsTileVisible(t *Tile, v View) bool {
	if !t.InView(v) {
		return false
	}
	if t.Level() == 0 {
		return true
	}
	return t.ScreenSizePixels(v)/float64(t.Divisions()) >= MinCellPixels
}

// ClassifyLevel implements Policy.
func (LatLon) ClassifyLevel(resolution float64) (Level, bool) {
	return LevelForResolution(resolution)
}

// MinCellPixels implements Policy.
func (LatLon) MinCellPixels() float64 { return MinCellPixels }
