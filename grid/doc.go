// Package grid implements the adaptive tile quadtree behind the graticule.
//
// A Tile covers one latitude/longitude rectangle. It lazily generates the
// grid lines that fall inside it and lazily splits into divisions×divisions
// children. Each frame, SelectRenderables walks the visible part of the tree
// and collects the lines and label requests that should be drawn, deciding
// from the projected pixel size of a tile whether to descend further.
//
// The subdivision and level-of-detail rules are injected through a Policy.
// LatLon is the policy for a latitude/longitude graticule.
//
// Tiles are not safe for concurrent use. They are meant to be driven from a
// single render loop.
package grid
