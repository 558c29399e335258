// Package pkg provides the core libraries for mazeforge maze generation.
//
// # Overview
//
// Mazeforge builds random rectangular mazes, solves them, and searches for
// mazes with long solution paths. The pkg directory is organized into four
// main areas:
//
//  1. Engine - maze model, analyzer, generator, solver, optimizer
//     (maze, optimize, rng)
//  2. Infrastructure - caching, run storage, observability hooks
//     (cache, store, observability)
//  3. Serialization and output - JSON documents and renderers
//     (mazeio, render)
//  4. Orchestration - the generate → solve → render pipeline
//     (pipeline)
//
// # Architecture
//
// The typical data flow through mazeforge:
//
//	Seed packet (optional)
//	         ↓
//	maze.Generate       random spanning links over a grid
//	         ↓
//	maze.Solve          breadth-first shortest path
//	         ↓
//	render / mazeio     SVG, PNG, DOT, JSON artifacts
//
// The optimizer (optimize) wraps generate and solve in a coordinate-ascent
// search over seed packets; its results are archived by store and browsed
// through the CLI or the HTTP API.
package pkg
