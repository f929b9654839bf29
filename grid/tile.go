package grid

import (
	"github.com/gogpu/graticule/geo"
)

// Tile is a node of the graticule quadtree.
//
// Elements and children are independent lazy caches: either may be absent
// while the other is populated. EnsureElements and EnsureChildren fill them,
// Clear drops both. No other method mutates a tile.
type Tile struct {
	region    geo.Region
	divisions int
	level     int

	elements []Element // nil until generated
	children []*Tile   // nil until subdivided
}

// NewTile creates a tile. Divisions below 1 are raised to 1.
func NewTile(region geo.Region, divisions, level int) *Tile {
	if divisions < 1 {
		divisions = 1
	}
	return &Tile{region: region, divisions: divisions, level: level}
}

// Region returns the area covered by the tile.
func (t *Tile) Region() geo.Region { return t.region }

// Divisions returns the number of cells per side.
func (t *Tile) Divisions() int { return t.divisions }

// Level returns the depth of the tile; root tiles are level 0.
func (t *Tile) Level() int { return t.level }

// Elements returns the generated elements, or nil if none are cached.
func (t *Tile) Elements() []Element { return t.elements }

// HasElements reports whether elements are cached.
func (t *Tile) HasElements() bool { return t.elements != nil }

// Children returns the child tiles, or nil if the tile is not subdivided.
func (t *Tile) Children() []*Tile { return t.children }

// HasChildren reports whether children are cached.
func (t *Tile) HasChildren() bool { return t.children != nil }

// InView reports whether the tile volume intersects the view frustum and, when
// the view has a visible region, whether the tile overlaps it.
func (t *Tile) InView(v View) bool {
	minElev, maxElev := v.ElevationRange(t.region)
	bv := v.BoundingVolumeFor(t.region, minElev, maxElev)
	if bv == nil || !v.FrustumIntersects(bv) {
		return false
	}
	if visible, ok := v.VisibleRegion(); ok {
		return t.region.Intersects(visible)
	}
	return true
}

// ScreenSizePixels estimates the on-screen size of the tile: the arc length
// of its latitude extent divided by the pixel size at its centroid distance.
func (t *Tile) ScreenSizePixels(v View) float64 {
	distance := v.ProjectToScreenDistance(t.region.Centroid())
	meters := t.region.DeltaLatRadians() * v.GlobeRadius()
	return meters / v.PixelSizeAtDistance(distance)
}

// EnsureElements generates the tile's grid lines if they are not cached.
// It reports whether generation ran.
//
// Lines are spaced DeltaLat/divisions apart on both axes. A level 0 tile
// also emits its west meridian and south parallel, typed LineWest and
// LineSouth; deeper tiles leave their edges to the parent. A tile touching
// the north pole closes the grid with a LineNorth parallel.
func (t *Tile) EnsureElements(f LineFactory) bool {
	if t.elements != nil {
		return false
	}

	r := t.region
	step := r.DeltaLat() / float64(t.divisions)
	first := 1
	if t.level == 0 {
		first = 0
	}

	elements := make([]Element, 0, 2*t.divisions+1)

	for i := first; i < t.divisions; i++ {
		lon := r.MinLon + float64(i)*step
		if lon >= r.MaxLon-step/2 {
			break
		}
		typ := Line
		if lon == r.MinLon {
			typ = LineWest
		}
		elements = append(elements, Element{
			Region:     geo.Region{MinLat: r.MinLat, MaxLat: r.MaxLat, MinLon: lon, MaxLon: lon},
			Renderable: f.NewLine([]geo.Location{{Lat: r.MinLat, Lon: lon}, {Lat: r.MaxLat, Lon: lon}}),
			Type:       typ,
			Value:      lon,
		})
	}

	for i := first; i < t.divisions; i++ {
		lat := r.MinLat + float64(i)*step
		if lat >= r.MaxLat-step/2 {
			break
		}
		typ := Line
		if lat == r.MinLat {
			typ = LineSouth
		}
		elements = append(elements, Element{
			Region:     geo.Region{MinLat: lat, MaxLat: lat, MinLon: r.MinLon, MaxLon: r.MaxLon},
			Renderable: f.NewLine([]geo.Location{{Lat: lat, Lon: r.MinLon}, {Lat: lat, Lon: r.MaxLon}}),
			Type:       typ,
			Value:      lat,
		})
	}

	// Visible on flat projections, where the pole is a line.
	if r.MaxLat == 90 {
		elements = append(elements, Element{
			Region:     geo.Region{MinLat: 90, MaxLat: 90, MinLon: r.MinLon, MaxLon: r.MaxLon},
			Renderable: f.NewLine([]geo.Location{{Lat: 90, Lon: r.MinLon}, {Lat: 90, Lon: r.MaxLon}}),
			Type:       LineNorth,
			Value:      90,
		})
	}

	t.elements = elements
	return true
}

// EnsureChildren splits the tile into divisions×divisions children in
// row-major order if it is not subdivided yet. Children sit one level deeper
// and take their divisions from the policy.
func (t *Tile) EnsureChildren(p Policy) {
	if t.children != nil {
		return
	}
	level := t.level + 1
	divisions := p.ChildDivisions(level)
	cells := t.region.Subdivide(t.divisions)
	children := make([]*Tile, len(cells))
	for i, cell := range cells {
		children[i] = NewTile(cell, divisions, level)
	}
	t.children = children
}

// Clear drops the cached elements and the whole subtree.
func (t *Tile) Clear() {
	t.elements = nil
	for _, c := range t.children {
		c.Clear()
	}
	t.children = nil
}

// SelectRenderables collects this tile's visible lines and label requests
// into the pass and descends into children that are large enough on screen.
// Children that are not visible are cleared, so off-screen detail is not
// retained between frames.
func (t *Tile) SelectRenderables(p *Pass) {
	p.prepare()
	p.Visited++
	if t.EnsureElements(p.Factory) {
		p.Generated++
	}

	offset := p.View.EyePosition().Location
	minCell := p.Policy.MinCellPixels()
	cellPixels := t.ScreenSizePixels(p.View) / float64(t.divisions)

	if t.level == 0 {
		for _, e := range t.elements {
			var labelType ElementType
			switch e.Type {
			case LineSouth, LineNorth:
				labelType = LatitudeLabel
			case LineWest:
				labelType = LongitudeLabel
			default:
				continue
			}
			if !p.inView(e.Region) {
				continue
			}
			p.Out.add(e.Renderable, Level0)
			p.Out.Requests = append(p.Out.Requests, LabelRequest{
				Value:      e.Value,
				Type:       labelType,
				Level:      Level0,
				Resolution: t.region.DeltaLat(),
				Spacing:    t.region.DeltaLat(),
				Offset:     offset,
			})
		}
		if cellPixels < minCell {
			return
		}
	}

	resolution := t.region.DeltaLat() / float64(t.divisions)
	level, ok := p.Policy.ClassifyLevel(resolution)
	if !ok {
		p.warn("graticule: resolution below finest level", "resolution", resolution, "tile", t.region.String())
		return
	}

	for _, e := range t.elements {
		if e.Type != Line || !p.inView(e.Region) {
			continue
		}
		p.Out.add(e.Renderable, level)
		labelType := LongitudeLabel
		if e.Region.DeltaLat() == 0 {
			labelType = LatitudeLabel
		}
		p.Out.Requests = append(p.Out.Requests, LabelRequest{
			Value:      e.Value,
			Type:       labelType,
			Level:      level,
			Resolution: t.region.DeltaLat(),
			Spacing:    resolution,
			Offset:     offset,
		})
	}

	if cellPixels < 2*minCell {
		return
	}

	t.EnsureChildren(p.Policy)
	for _, c := range t.children {
		if p.Policy.IsTileVisible(c, p.View) {
			c.SelectRenderables(p)
		} else {
			c.Clear()
		}
	}
}
