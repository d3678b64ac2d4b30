// Package gui plays a trajectory in a native raylib window.
//
// The window shows the plane [-2.5, 2.5] x [-2.5, 2.5] by default. Mouse
// wheel zooms around the cursor, left drag pans, R resets the view and Esc,
// Q or the close button end playback. [Run] blocks until the window closes.
package gui
