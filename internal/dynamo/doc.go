// Package dynamo provides the core types shared by the trajectory player.
//
//   - [Table]: the frame table, one [State] per simulation time step
//   - [Point], [Segment]: planar geometry of the two links
//   - [Scene]: one renderable frame (both links plus the frame label)
//
// Tables are loaded once and never mutated; every other package reads them.
package dynamo
