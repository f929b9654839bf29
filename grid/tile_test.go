package grid

import (
	"testing"

	"github.com/gogpu/graticule/geo"
)

func countTypes(elements []Element) map[ElementType]int {
	counts := make(map[ElementType]int)
	for _, e := range elements {
		counts[e.Type]++
	}
	return counts
}

func TestEnsureElementsLevelZero(t *testing.T) {
	f := &countingFactory{}
	tile := NewTile(geo.NewRegion(0, 10, 20, 30), 10, 0)

	if !tile.EnsureElements(f) {
		t.Fatal("first EnsureElements did not generate")
	}
	counts := countTypes(tile.Elements())
	if counts[LineWest] != 1 || counts[LineSouth] != 1 {
		t.Errorf("boundary counts = %v, want one west and one south", counts)
	}
	if counts[LineNorth] != 0 {
		t.Errorf("unexpected north line on a tile away from the pole")
	}
	if counts[Line] != 18 {
		t.Errorf("interior lines = %d, want 18", counts[Line])
	}
	if f.lines != len(tile.Elements()) {
		t.Errorf("factory built %d lines for %d elements", f.lines, len(tile.Elements()))
	}

	for _, e := range tile.Elements() {
		switch e.Type {
		case LineWest:
			if e.Value != 20 || e.Region.DeltaLon() != 0 {
				t.Errorf("west line = %+v", e)
			}
		case LineSouth:
			if e.Value != 0 || e.Region.DeltaLat() != 0 {
				t.Errorf("south line = %+v", e)
			}
		}
	}
}

func TestEnsureElementsNorthPole(t *testing.T) {
	tile := NewTile(geo.NewRegion(80, 90, 0, 10), 10, 0)
	tile.EnsureElements(&countingFactory{})
	var north []Element
	for _, e := range tile.Elements() {
		if e.Type == LineNorth {
			north = append(north, e)
		}
	}
	if len(north) != 1 {
		t.Fatalf("north lines = %d, want 1", len(north))
	}
	if north[0].Value != 90 || north[0].Region.MinLat != 90 || north[0].Region.MaxLat != 90 {
		t.Errorf("north line = %+v", north[0])
	}
}

func TestEnsureElementsDeeperLevel(t *testing.T) {
	tile := NewTile(geo.NewRegion(10, 11, 20, 21), 6, 1)
	tile.EnsureElements(&countingFactory{})
	counts := countTypes(tile.Elements())
	if counts[Line] != 10 || len(tile.Elements()) != 10 {
		t.Errorf("element types = %v, want 10 interior lines only", counts)
	}
	for _, e := range tile.Elements() {
		if e.Value == 10 || e.Value == 20 {
			t.Errorf("deeper tile emitted its own edge: %+v", e)
		}
	}
}

func TestEnsureElementsIdempotent(t *testing.T) {
	f := &countingFactory{}
	tile := NewTile(geo.NewRegion(0, 10, 0, 10), 10, 0)
	tile.EnsureElements(f)
	first := tile.Elements()
	built := f.lines

	if tile.EnsureElements(f) {
		t.Error("second EnsureElements regenerated")
	}
	if f.lines != built {
		t.Errorf("factory called %d more times", f.lines-built)
	}
	if &tile.Elements()[0] != &first[0] {
		t.Error("elements slice replaced")
	}
}

func TestEnsureChildrenPartition(t *testing.T) {
	p := LatLon{}
	root := NewTile(geo.NewRegion(-40, -30, 170, 180), 10, 0)
	root.EnsureChildren(p)
	root.Children()[0].EnsureChildren(p)
	root.Children()[0].Children()[7].EnsureChildren(p)

	walk(root, func(parent, child *Tile) {
		if child.Level() != parent.Level()+1 {
			t.Errorf("child level %d under parent level %d", child.Level(), parent.Level())
		}
		if want := p.ChildDivisions(child.Level()); child.Divisions() != want {
			t.Errorf("level %d divisions = %d, want %d", child.Level(), child.Divisions(), want)
		}
	})

	var check func(*Tile)
	check = func(parent *Tile) {
		if !parent.HasChildren() {
			return
		}
		kids := parent.Children()
		if len(kids) != parent.Divisions()*parent.Divisions() {
			t.Fatalf("%d children for %d divisions", len(kids), parent.Divisions())
		}
		union := kids[0].Region()
		for _, k := range kids[1:] {
			union = union.Union(k.Region())
		}
		if union != parent.Region() {
			t.Errorf("children union %v != parent %v", union, parent.Region())
		}
		for _, k := range kids {
			check(k)
		}
	}
	check(root)
}

func TestEnsureChildrenIdempotent(t *testing.T) {
	root := NewTile(geo.NewRegion(0, 10, 0, 10), 10, 0)
	root.EnsureChildren(LatLon{})
	first := root.Children()[0]
	root.EnsureChildren(LatLon{})
	if root.Children()[0] != first {
		t.Error("EnsureChildren rebuilt existing children")
	}
}

func TestClear(t *testing.T) {
	f := &countingFactory{}
	root := NewTile(geo.NewRegion(0, 10, 0, 10), 10, 0)
	root.EnsureElements(f)
	root.EnsureChildren(LatLon{})
	child := root.Children()[3]
	child.EnsureElements(f)
	child.EnsureChildren(LatLon{})

	root.Clear()
	if root.HasElements() || root.HasChildren() {
		t.Error("root still holds caches after Clear")
	}
	if child.HasElements() || child.HasChildren() {
		t.Error("detached child still holds caches after Clear")
	}
}

func TestScreenSizePixels(t *testing.T) {
	tile := NewTile(geo.NewRegion(0, 10, 0, 10), 10, 0)
	v := uniformView(geo.World, 1000)
	// 10° of arc on a 6378137 m sphere is about 1113 km.
	got := tile.ScreenSizePixels(v)
	if got < 1113 || got > 1114 {
		t.Errorf("ScreenSizePixels() = %v, want ~1113", got)
	}
}

func TestSelectRenderablesSmallLevelZero(t *testing.T) {
	f := &countingFactory{}
	tile := NewTile(geo.NewRegion(0, 10, 0, 10), 10, 0)
	// 10° tile at 5 km/px is ~222 px, 22 px per cell.
	v := uniformView(geo.World, 5000)
	pass := NewPass(v, LatLon{}, f)

	tile.SelectRenderables(pass)

	if tile.HasChildren() {
		t.Error("small level 0 tile subdivided")
	}
	if len(pass.Out.Lines) != 2 {
		t.Fatalf("lines = %d, want the west and south boundaries", len(pass.Out.Lines))
	}
	for _, l := range pass.Out.Lines {
		if l.Level != Level0 {
			t.Errorf("line level = %v, want 0", l.Level)
		}
	}
	var lat, lon int
	for _, r := range pass.Out.Requests {
		switch r.Type {
		case LatitudeLabel:
			lat++
		case LongitudeLabel:
			lon++
		}
		if r.Resolution != 10 || r.Level != Level0 {
			t.Errorf("request = %+v", r)
		}
	}
	if lat != 1 || lon != 1 {
		t.Errorf("label requests lat=%d lon=%d, want 1 each", lat, lon)
	}
}

func TestSelectRenderablesInteriorLevel(t *testing.T) {
	tile := NewTile(geo.NewRegion(0, 10, 0, 10), 10, 0)
	// ~1113 px tile, ~55 px per cell: interior lines but no children.
	v := uniformView(geo.World, 2000)
	pass := NewPass(v, LatLon{}, &countingFactory{})

	tile.SelectRenderables(pass)

	if tile.HasChildren() {
		t.Error("tile subdivided below the 2x threshold")
	}
	var level1 int
	for _, l := range pass.Out.Lines {
		if l.Level == Level1 {
			level1++
		}
	}
	if level1 != 18 {
		t.Errorf("level 1 lines = %d, want 18", level1)
	}
	for _, r := range pass.Out.Requests {
		if r.Level != Level1 {
			continue
		}
		if r.Value != float64(int(r.Value)) {
			t.Errorf("interior label value %v not on a degree", r.Value)
		}
	}
}

func TestSelectRenderablesLabelTypes(t *testing.T) {
	tile := NewTile(geo.NewRegion(0, 1, 0, 1), 6, 1)
	v := uniformView(geo.World, 100)
	pass := NewPass(v, LatLon{}, &countingFactory{})
	tile.SelectRenderables(pass)

	byValue := make(map[ElementType]int)
	for _, r := range pass.Out.Requests {
		byValue[r.Type]++
	}
	if byValue[LatitudeLabel] != 5 || byValue[LongitudeLabel] != 5 {
		t.Errorf("requests by type = %v, want 5 of each", byValue)
	}
	for _, e := range tile.Elements() {
		if e.Region.DeltaLon() == 0 && e.Region.DeltaLat() == 0 {
			t.Errorf("degenerate element %+v", e)
		}
	}
}

func TestSelectRenderablesPrunesInvisibleChildren(t *testing.T) {
	f := &countingFactory{}
	root := NewTile(geo.NewRegion(0, 10, 0, 10), 10, 0)

	// Whole tile on screen at 100 m/px: 1° children are ~1113 px.
	wide := uniformView(geo.NewRegion(-1, 11, -1, 11), 100)
	root.SelectRenderables(NewPass(wide, LatLon{}, f))
	populated := 0
	for _, c := range root.Children() {
		if c.HasElements() {
			populated++
		}
	}
	if populated != 100 {
		t.Fatalf("populated children = %d, want 100", populated)
	}

	narrow := uniformView(geo.NewRegion(0.2, 1.8, 0.2, 1.8), 100)
	pass := NewPass(narrow, LatLon{}, f)
	root.SelectRenderables(pass)

	walk(root, func(_, c *Tile) {
		if LatLon.IsTileVisible(LatLon{}, c, narrow) {
			return
		}
		if c.HasElements() || c.HasChildren() {
			t.Errorf("invisible tile %v still cached", c.Region())
		}
	})

	visible := 0
	for _, c := range root.Children() {
		if c.HasElements() {
			visible++
		}
	}
	if visible != 4 {
		t.Errorf("children kept = %d, want the 4 overlapping the view", visible)
	}
}

func TestSelectRenderablesZoomedCell(t *testing.T) {
	focus := geo.NewRegion(0, 10, 0, 10)
	sibling := geo.NewRegion(0, 10, 10, 20)
	v := &stubView{
		visible:    geo.NewRegion(-10, 20, -10, 30),
		hasVisible: true,
		focus:      focus.Centroid(),
		pixelSize:  func(d float64) float64 { return 1000 + 1000*d },
	}
	f := &countingFactory{}
	zoomed := NewTile(focus, 10, 0)
	far := NewTile(sibling, 10, 0)

	pass := NewPass(v, LatLon{}, f)
	zoomed.SelectRenderables(pass)
	far.SelectRenderables(pass)

	if !zoomed.HasChildren() {
		t.Error("zoomed cell was not subdivided")
	}
	if far.HasChildren() {
		t.Error("sibling cell was subdivided")
	}

	levels := make(map[Level]int)
	for _, l := range pass.Out.Lines {
		levels[l.Level]++
		if l.Level != Level0 {
			pts := l.Renderable.(*testLine).points
			if pts[0].Lon > 10 || pts[1].Lon > 10 {
				t.Errorf("level %v line from the sibling: %v", l.Level, pts)
			}
		}
	}
	if levels[Level1] == 0 {
		t.Error("no level 1 lines selected")
	}
}

func TestSelectRenderablesNothingVisible(t *testing.T) {
	tile := NewTile(geo.NewRegion(0, 10, 0, 10), 10, 0)
	v := uniformView(geo.World, 100)
	v.hasVisible = false
	pass := NewPass(v, LatLon{}, &countingFactory{})
	tile.SelectRenderables(pass)
	if len(pass.Out.Lines) != 0 || len(pass.Out.Requests) != 0 {
		t.Errorf("selected %d lines without a visible region", len(pass.Out.Lines))
	}
}

func TestSelectionClaim(t *testing.T) {
	s := NewSelection()
	if !s.Claim(LatitudeLabel, 10) {
		t.Fatal("first claim rejected")
	}
	if s.Claim(LatitudeLabel, 10) {
		t.Error("duplicate latitude claim accepted")
	}
	if s.Claim(LatitudeLabel, 0.1+0.2-0.3+10) {
		t.Error("rounding noise defeated dedup")
	}
	if !s.Claim(LongitudeLabel, 10) {
		t.Error("longitude claim blocked by latitude of the same value")
	}
}

func TestSelectionAddByKind(t *testing.T) {
	s := NewSelection()
	s.add(&testLine{}, Level2)
	s.add(&testLabel{}, Level3)
	if len(s.Lines) != 1 || len(s.Labels) != 1 {
		t.Errorf("lines=%d labels=%d, want 1 each", len(s.Lines), len(s.Labels))
	}
}

func TestDecimalSubdivisionOneLevelPerDepth(t *testing.T) {
	p := LatLon{Format: Decimal}
	tile := NewTile(geo.NewRegion(40, 50, 10, 20), 10, 0)

	for depth := 0; depth <= 4; depth++ {
		tile.EnsureChildren(p)
		// Each tile's own lines sit one level below its depth.
		want := Level(depth + 2)
		for i, c := range tile.Children() {
			spacing := c.Region().DeltaLat() / float64(c.Divisions())
			got, ok := p.ClassifyLevel(spacing)
			if depth == 4 {
				if ok {
					t.Errorf("depth 5 child %d: spacing %v classified as level %v", i, spacing, got)
				}
				continue
			}
			if !ok || got != want {
				t.Errorf("depth %d child %d: spacing %v classified as %v (%v), want level %v",
					depth+1, i, spacing, got, ok, want)
			}
		}
		// The last child accumulates the most rounding.
		tile = tile.Children()[len(tile.Children())-1]
	}
}
