// Package seismic computes the displacement of a 2-D grid of points under
// idealized seismic waves.
//
// A Grid lays out horizontal and vertical lines of rest positions inside a
// region of the canvas and, on every Update, moves each point by the active
// Field. A Scene adds a tracked marker whose recent positions are kept in a
// fixed-capacity Trail, and re-targets that marker with Locate.
package seismic
