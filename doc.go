// Package gridpath is your in-memory playground for planning paths on 2D
// occupancy grids — one generalized best-first engine that realizes Dijkstra,
// BFS, DFS, A* and Weighted A* by swapping its priority, topology and cost
// model.
//
// 🚀 What is gridpath?
//
//	A modern, deterministic, zero-cgo library that brings together:
//		• Grid primitives: coordinates, rectangular regions, obstacle environments
//		• Terrain overlays: seeded, reproducible per-cell cost multipliers
//		• Movement models: 4-/8-connectivity, unit / terrain / distance×terrain
//		  costs, corner-cutting collision checks for diagonal moves
//		• Search: one expansion loop covering Dijkstra, BFS, A*, Weighted A*,
//		  plus a dedicated stack-based DFS and anytime weighted restarts
//
// ✨ Why choose gridpath?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Reproducible – explicit seeds everywhere; same inputs, same outputs
//   - Pure Go – no cgo, no hidden deps
//   - Renderer-ready – every search returns its path, finalize-order visitation
//     trace and cost-to-come map for animation layers to consume
//
// Under the hood, everything is organized under four subpackages:
//
//	grid/    — Coord, Rect, Environment (blocked-cell sets) & the demo map
//	terrain/ — deterministic terrain-cost overlay generation
//	move/    — connectivity, cost models & diagonal collision rules
//	search/  — the generalized best-first engine, DFS, and variant constructors
//
// Quick ASCII example:
//
//	    S . . █ .
//	    . █ . █ .
//	    . █ . . G
//
//	S = start, G = goal, █ = blocked. The engine threads the gaps — and a
//	diagonal step never cuts the corner between two touching obstacles.
//
// Dive into the per-package doc.go files for tutorials, complexity notes and
// runnable examples.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
