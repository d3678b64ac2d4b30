// Package viz plays a double-pendulum trajectory in the terminal.
//
// The package renders with the Bubble Tea framework:
//
//   - [Model]: tick-driven player, one frame per playback interval
//   - [Canvas]: Braille-based pixel canvas for high-fidelity rendering
//   - [Viewport]: fixed-bounds mapping of the pendulum plane with pan/zoom
//
// # Key Bindings
//
//	Q/Esc  - Quit
//	+/-    - Zoom in/out
//	Arrows - Pan
//	0      - Reset view
//
// Playback does not repeat: after the last frame the final pose stays on
// screen until the program is closed.
package viz
