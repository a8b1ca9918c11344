// Package life implements Conway's Game of Life on a fixed, bounded grid.
//
// The package owns the logical board only:
//
//   - [Grid]: dense board of [Status] values with clipped Moore neighbourhoods
//   - [Observer]: hook notified synchronously after every status change
//   - [Pattern]: named seed shapes that can be stamped onto a grid
//
// # Step Semantics
//
// [Grid.Step] evaluates the rule against a snapshot of the current generation.
// Every neighbour count is taken before any cell is changed, and the collected
// flips are then applied together through [Grid.Toggle] so observers see each
// change.
//
// # Thread Safety
//
// Grid instances are NOT thread-safe. A front end owns its grid and mutates it
// from a single event loop.
package life
