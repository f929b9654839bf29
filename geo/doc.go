// Package geo provides the geographic value types shared by the graticule
// packages: locations, positions and latitude/longitude rectangles.
//
// All angles are in degrees. A Region is a closed rectangle that never wraps
// across the antimeridian; callers split such areas into two regions.
package geo
