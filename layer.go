package graticule

import (
	"math"

	"github.com/gogpu/graticule/geo"
	"github.com/gogpu/graticule/grid"
)

// Top-level partition of the globe.
const (
	TopLevelSize      = 10.0 // degrees per cell side
	TopLevelRows      = 18
	TopLevelColumns   = 36
	TopLevelDivisions = 10
)

// Stats reports what the Layer did so far.
type Stats struct {
	// Rebuilds counts frames that walked the tiles.
	Rebuilds int
	// Reuses counts frames served from the previous selection.
	Reuses int
	// TilesVisited counts tiles entered during the last rebuild.
	TilesVisited int
	// TilesGenerated counts tiles that built their elements during the last rebuild.
	TilesGenerated int
	// Requests counts label requests of the last rebuild, before dedup.
	Requests int
}

// Layer coordinates graticule selection across frames.
//
// It owns the top-level tile grid and the view snapshot of the last
// selection. A Layer is not safe for concurrent use.
type Layer struct {
	factory Factory
	policy  grid.Policy

	// tiles is the top-level grid in row-major order: index = row*TopLevelColumns + col.
	tiles []*grid.Tile

	last  *snapshot
	frame Frame
	stats Stats
}

// NewLayer creates a Layer that builds primitives with factory.
func NewLayer(factory Factory, opts ...Option) *Layer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Layer{
		factory: factory,
		policy:  o.policy,
		tiles:   make([]*grid.Tile, TopLevelRows*TopLevelColumns),
	}
}

// Policy returns the subdivision policy in use.
func (l *Layer) Policy() grid.Policy { return l.policy }

// Stats returns the layer counters.
func (l *Layer) Stats() Stats { return l.stats }

// Render returns the graticule primitives for the view. The previous frame is
// returned unchanged when the view has not moved enough to matter.
func (l *Layer) Render(v View) Frame {
	if !l.needsUpdate(v) {
		l.stats.Reuses++
		return l.frame
	}
	l.rebuild(v)
	return l.frame
}

// Reset clears the elements and children of every top-level tile and drops
// the view snapshot, forcing the next Render to start from scratch. The
// top-level tiles themselves stay allocated.
func (l *Layer) Reset() {
	for _, t := range l.tiles {
		if t != nil {
			t.Clear()
		}
	}
	l.last = nil
	l.frame = Frame{}
}

// needsUpdate reports whether the cached selection is stale for v.
func (l *Layer) needsUpdate(v View) bool {
	return l.last == nil || l.last.changed(v)
}

func (l *Layer) rebuild(v View) {
	log := Logger()
	l.last = takeSnapshot(v)
	l.frame = Frame{}
	l.stats.Rebuilds++

	visible, ok := v.VisibleRegion()
	if !ok {
		log.Debug("graticule: nothing visible")
		return
	}

	pass := grid.NewPass(v, l.policy, l.factory)
	pass.Logger = log
	for _, t := range l.visibleTopLevelTiles(v, visible) {
		t.SelectRenderables(pass)
	}

	out := pass.Out
	frame := Frame{
		Lines:  out.Lines,
		Labels: out.Labels,
	}
	for _, req := range out.Requests {
		if !out.Claim(req.Type, req.Value) {
			continue
		}
		frame.Labels = append(frame.Labels, grid.Primitive{
			Renderable: l.makeLabel(req),
			Level:      req.Level,
		})
	}
	l.frame = frame

	l.stats.TilesVisited = pass.Visited
	l.stats.TilesGenerated = pass.Generated
	l.stats.Requests = len(out.Requests)

	log.Debug("graticule: selection rebuilt",
		"visible", visible.String(),
		"tiles", pass.Visited,
		"generated", pass.Generated,
		"lines", len(frame.Lines),
		"labels", len(frame.Labels))
}

// makeLabel builds the label for a request. Latitude labels sit on the
// eye's meridian and longitude labels on the eye's parallel so they follow
// the visible part of the grid.
func (l *Layer) makeLabel(req grid.LabelRequest) grid.Renderable {
	anchor := geo.LatLon(req.Offset.Lat, req.Value)
	if req.Type == grid.LatitudeLabel {
		anchor = geo.LatLon(req.Value, req.Offset.Lon)
	}
	text := l.factory.FormatAngle(req.Value, req.Spacing)
	return l.factory.NewLabel(text, anchor, req.Resolution*1e6)
}

// visibleTopLevelTiles returns the top-level tiles in view. Instantiated
// tiles that are out of view are cleared.
func (l *Layer) visibleTopLevelTiles(v View, visible geo.Region) []*grid.Tile {
	c0, c1 := column(visible.MinLon), column(visible.MaxLon)
	r0, r1 := row(visible.MinLat), row(visible.MaxLat)

	var out []*grid.Tile
	for i, t := range l.tiles {
		r, c := i/TopLevelColumns, i%TopLevelColumns
		inRange := r >= r0 && r <= r1 && c >= c0 && c <= c1
		if !inRange {
			if t != nil {
				t.Clear()
			}
			continue
		}
		if t == nil {
			t = grid.NewTile(cellRegion(r, c), TopLevelDivisions, 0)
			l.tiles[i] = t
		}
		if l.policy.IsTileVisible(t, v) {
			out = append(out, t)
		} else {
			t.Clear()
		}
	}
	return out
}

// column returns the top-level column for a longitude, clamped to the grid.
func column(lon float64) int {
	return clampIndex(math.Floor((lon+180)/TopLevelSize), TopLevelColumns)
}

// row returns the top-level row for a latitude, clamped to the grid.
func row(lat float64) int {
	return clampIndex(math.Floor((lat+90)/TopLevelSize), TopLevelRows)
}

func clampIndex(f float64, n int) int {
	if f < 0 || math.IsNaN(f) {
		return 0
	}
	if f > float64(n-1) {
		return n - 1
	}
	return int(f)
}

func cellRegion(r, c int) geo.Region {
	minLat := -90 + float64(r)*TopLevelSize
	minLon := -180 + float64(c)*TopLevelSize
	return geo.Region{
		MinLat: minLat,
		MaxLat: minLat + TopLevelSize,
		MinLon: minLon,
		MaxLon: minLon + TopLevelSize,
	}
}
