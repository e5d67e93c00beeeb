// Package render provides the drawing backends for figural arrangements.
//
// The core hands point sets, polylines, and labels to a [Renderer] and
// never touches pixels, color tables, or TeX escaping itself. Three
// backends are included:
//
//   - [Terminal]: Braille-cell canvas panels composed with lipgloss
//   - [SVG]: standalone vector document
//   - [TikZ]: tikzpicture source for TeX documents
//
// All backends buffer draw calls per panel and produce their artifact
// on Output.
package render
