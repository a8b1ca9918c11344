// Package scene keeps the cube scene in step with a [life.Grid].
//
// Each cell owns one [Element] (the cube) and one [Space] (its floor tile).
// The scene is a [life.Observer]: it never changes cell state, it only mirrors
// it, so an element is visible exactly when its cell is alive.
package scene
