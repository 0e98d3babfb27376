// Package viz provides the terminal interface for game playback.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [App]: game picker in front of the playback screen
//   - [Model]: board, status panel and playback controls
//   - [Canvas]: board surface the replay engine draws onto
//   - Theme selection with 4 built-in board color schemes
//
// # Key Bindings
//
//	Space - Play/Stop
//	R     - Reset using the current player selections
//	+/-   - Speed slider
//	W/B   - Cycle white/black player
//	T     - Cycle color themes
//	M     - Back to the game picker
//	?     - Show help overlay
//
// # Scheduling
//
// Ticks are tea.Tick commands. The tick callback runs inside Update on
// Bubble Tea's event goroutine, and the renderer paints the result on its
// next frame, so the step rate and the repaint rate stay independent.
package viz
