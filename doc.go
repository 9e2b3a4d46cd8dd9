// Package pathmap maintains all-pairs-to-destination shortest paths on a
// dynamic, two-dimensional rectilinear map.
//
// 🚀 What is pathmap?
//
//	A single-purpose, synchronous engine that brings together:
//
//	  • A reduced visibility graph over a start point, an end point, and
//	    the corners of every rectangular obstacle on the map
//	  • Incremental repair of that graph on every obstacle insertion or
//	    removal, instead of recomputing shortest paths from scratch
//	  • Taxicab (Manhattan) routing queries: given any point, what is the
//	    next checkpoint on the way to the destination?
//
// ✨ Why it's shaped this way
//
//   - Incremental      — obstacles come and go; only the affected region
//     of the graph is ever touched, never a full rebuild
//   - Index-addressed  — nodes live in an arena keyed by stable integer
//     indices, with a free-slot heap for reclamation
//   - Pure Go          — no cgo, no hidden dependencies; only the standard
//     library at runtime, testify in tests
//
// Everything lives in one package because the data model — a single arena
// of geometric nodes shared by every phase of obstacle maintenance — does
// not decompose into independently reusable subpackages.
//
// Quick picture of a map with one obstacle:
//
//	 start                          end
//	   o-----------------o---o---o---o
//	   |                  \   obstacle
//	   |                   \     |
//	   o-------------------o-----o
//
// See DESIGN.md for the grounding of every component in the teacher
// repository this module was built from, and SPEC_FULL.md for the full
// requirements this package satisfies.
//
//	go get github.com/jakmeier/pathmap
package pathmap
