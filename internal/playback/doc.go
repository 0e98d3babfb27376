// Package playback drives a stepping engine at a user-controlled rate.
//
// A [Controller] owns the session state of one playback session:
//
//   - [Session]: rate, play/pause flag and the pending tick handle
//   - [Engine]: the externally supplied simulation (reset, step, render)
//   - [Scheduler]: delay-then-frame-aligned callback primitive
//
// Each tick either steps the engine (running) or re-renders it (paused),
// then schedules its own successor after 1000/rate milliseconds.
//
// # Thread Safety
//
// Controller instances are NOT thread-safe. Every handler and tick must run
// on one goroutine; [Loop] provides such a goroutine for headless use, and
// the Bubble Tea program provides one for the TUI.
package playback
