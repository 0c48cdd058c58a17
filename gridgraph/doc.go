// Package gridgraph adapts a MovingAI-style passability grid into a
// core.Graph with 4- or 8-connectivity and the standard octile edge costs:
// 10 for an orthogonal step, 14 for a diagonal one.
//
// Cells are addressed by (x, y) with x the column and y the row; a cell's
// NodeId is y*width + x, row-major, matching the MovingAI on-disk layout so
// that movingai.LoadMap can hand its passability slice straight to New.
//
// Random builds synthetic grids with a seeded wall density, for benchmarking
// and property tests that do not depend on a specific MovingAI map file.
package gridgraph
