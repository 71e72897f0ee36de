// Package diagram defines the value types describing a venndial diagram:
// the geometric configuration (canvas, Venn circles, outer boundary, grid
// sampling parameters) and the target criteria a search run optimizes
// toward.
//
// Both types are immutable by convention: constructors validate every
// field and callers never mutate a value after construction. The search
// loop produces a fresh Config per candidate rather than editing one in
// place.
//
// Circle centers are not stored. They are derived deterministically from
// the canvas dimensions and the circle count by [Config.Centers], so the
// analyzer and any renderer agree on placement without extra state.
package diagram
