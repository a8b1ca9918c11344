// Package viz draws the cube scene in a terminal.
//
//   - [Camera]: rotation and perspective projection of world points
//   - [Canvas]: braille dot canvas with per-cell colour
//   - [SceneWireframe]: floor grid plus one coloured cube per visible element
//   - Themes and lipgloss styles shared by the terminal front end
package viz
