// Package analysis measures the regions of a diagram configuration by
// grid sampling.
//
// A regular grid with step Config.DotSpacing is laid over the canvas.
// Every grid point is labeled with a region signature: for each Venn
// circle and for the outer boundary, the token records whether the point
// is outside that circle or which concentric ring it falls into. Points
// with identical signatures belong to the same region, and a region's
// area is estimated as its point count times the area of one grid cell.
//
// Analysis is pure and deterministic: the same Config always produces
// the same Metrics, bit for bit. Sampling accuracy is controlled
// entirely by the dot spacing; a spacing wider than the thinnest ring
// simply leaves that ring unsampled, it is not an error.
package analysis
