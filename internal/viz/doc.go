// Package viz renders finished trajectories in the terminal.
//
//   - [Canvas]: Braille-based pixel canvas, 2x4 dots per cell
//   - [Replay]: Bubble Tea model that plays a trace back step by step
//   - Theme selection with built-in color schemes
//
// # Key Bindings
//
//	Space - Pause/Resume playback
//	R     - Restart from launch
//	T     - Cycle color themes
//	+/-   - Playback speed
//	[]/   - Step backward/forward
//	?     - Show help overlay
package viz
