// Package camera provides reference views for the graticule: a perspective
// camera orbiting a spherical globe and a flat equirectangular map.
//
// Both implement graticule.View and render.Projector. They model the planet
// as a sphere and take surface heights from an ElevationModel.
package camera

// EarthRadius is the WGS84 equatorial radius in meters.
const EarthRadius = 6378137.0

// DefaultFieldOfView is the horizontal field of view in degrees.
const DefaultFieldOfView = 45.0
