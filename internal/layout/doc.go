// Package layout turns figural-number indices into concrete 2D geometry.
//
// The package provides the two geometric stages of the pipeline:
//
//   - [Of]: index → ordered point arrangement, outline loops, label
//   - [Compose]: index range → shared viewport and panel grid
//
// # Viewport invariant
//
// Compose sizes one window from the largest index of the range and
// re-anchors that same window on every panel's own figure, so a grid of
// panels renders at identical scale regardless of per-panel extent.
package layout
