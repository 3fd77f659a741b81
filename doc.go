// Package sash implements a retained-mode layout engine for rectangular
// elements inside nested containers. It positions and sizes nodes without
// rendering, input handling, or native-widget creation.
//
// The engine is built around a two-phase size negotiation: [ComputeSize]
// asks a container what size it wants given optional width/height
// constraints (read-only with respect to geometry), and [Layout] assigns
// bounds to every child from the container's current client rectangle,
// recursing into nested containers.
//
// Five strategies are provided: [Fill] (equal division), [Row] (wrapping
// flow), [Grid] (spanning cells with grab-based space distribution),
// [Form] (edge attachments with dependency resolution), and [Stack]
// (one designated child fills the container).
//
// All calls for a given tree must happen sequentially on one goroutine;
// the engine performs no I/O and keeps no state beyond a per-container
// size cache.
package sash
