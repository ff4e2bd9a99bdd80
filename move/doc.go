// Package move bundles the topology and cost rules that distinguish the
// gridpath search variants: which neighbors a cell has, what a step between
// two cells costs, and when a move collides with obstacles.
//
// What
//
//   - Connectivity: Conn4 (N/S/W/E) or Conn8 (adds the four diagonals), each
//     with a precomputed, fixed-order offset table so traversals are
//     reproducible.
//   - CostModel:
//     UnitCost        — every unblocked move costs 1 (BFS/DFS layering).
//     TerrainOnly     — the terrain multiplier at the destination; move
//     geometry is ignored so cost differences come solely
//     from terrain (Dijkstra variant).
//     DistanceTerrain — Euclidean step length (1 orthogonal, √2 diagonal)
//     times the terrain multiplier at the destination
//     (A* family).
//   - Model: a validated (Connectivity, CostModel, Overlay) triple exposing
//     Neighbors and StepCost.
//   - Collides: the shared collision predicate. A move is blocked when either
//     endpoint is blocked; a diagonal move is additionally blocked when both
//     orthogonal corner cells flanking it are blocked, so a path can never
//     cut through the gap between two touching obstacles.
//
// Why
//
//	The expansion loop in search/ is variant-agnostic; everything that makes
//	Dijkstra, BFS or A* behave differently (besides the priority function)
//	lives here as data, not subclasses.
//
// Topology restrictions
//
//	UnitCost and TerrainOnly require Conn4: unit cost needs 4-connectivity to
//	preserve layer semantics, and terrain-only cost deliberately excludes
//	diagonal geometry. NewModel rejects other combinations.
//
// Errors
//
//   - ErrBadConnectivity       for an unknown Connectivity value.
//   - ErrBadCostModel          for an unknown CostModel value.
//   - ErrConnectivityMismatch  when a 4-directional cost model is paired
//     with Conn8.
package move
