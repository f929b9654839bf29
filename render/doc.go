// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render is the software drawing backend of the graticule.
//
// It provides the primitives a graticule.Layer builds (Factory), the angle
// label formatter, the per-level style configuration, and a Canvas that
// strokes the selected lines and draws the labels on a gg.Context.
//
// # Usage
//
//	factory := render.NewFactory(render.WithAngleFormat(grid.Decimal))
//	layer := graticule.NewLayer(factory, graticule.WithAngleFormat(grid.Decimal))
//
//	dc := gg.NewContext(800, 600)
//	canvas := render.NewCanvas(dc, cam, render.DefaultStyles())
//	if err := canvas.Draw(layer.Render(cam)); err != nil {
//	    log.Fatal(err)
//	}
//
// # Projection
//
// Lines are densified in latitude/longitude before projection so meridians
// and parallels follow the globe curvature. Points the Projector rejects
// (behind the camera or on the far side of the globe) break the polyline.
//
// # Labels
//
// Labels are drawn after lines, highest priority first. A label whose box
// overlaps one already drawn is skipped unless decluttering is disabled.
package render
