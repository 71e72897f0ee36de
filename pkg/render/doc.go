// Package render turns diagram configurations into visual output.
//
// Two renderers exist. SVG draws the diagram itself - boundary, Venn
// circles, and their concentric rings - directly into an SVG document.
// The adjacency renderer derives the region adjacency graph by
// resampling the grid and hands it to Graphviz for a node-link view,
// useful for inspecting how a configuration's regions touch.
//
// Renderers consume only a Configuration; circle centers follow the
// same derivation rule the analyzer uses.
package render
