// Package graticule draws an adaptive latitude/longitude grid over a
// rendered planet.
//
// # Overview
//
// A Layer owns a fixed 10°×10° partition of the globe. Each partition cell is
// the root of a quadtree of grid tiles (package grid) that is subdivided on
// demand as the camera zooms in, so grid lines and labels stay legibly spaced
// at any altitude. Tiles that leave the screen are cleared.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/gg"
//	    "github.com/gogpu/graticule"
//	    "github.com/gogpu/graticule/camera"
//	    "github.com/gogpu/graticule/geo"
//	    "github.com/gogpu/graticule/render"
//	)
//
//	cam := camera.NewPerspective(800, 600)
//	cam.Eye = geo.NewPosition(45, 7, 2e6)
//
//	layer := graticule.NewLayer(render.NewFactory())
//	frame := layer.Render(cam)
//
//	dc := gg.NewContext(800, 600)
//	canvas := render.NewCanvas(dc, cam, render.DefaultStyles())
//	_ = canvas.Draw(frame)
//
// # Frames
//
// Render is meant to be called once per drawn frame from a single goroutine.
// When the camera has not moved enough to change the selection, Render
// returns the previous Frame without walking the tiles.
package graticule
