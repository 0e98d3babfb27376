// Package engine replays recorded chess games one ply at a time.
//
// The engine applies moves from a [Library] of recorded games onto a
// [Board]. It does not generate or check moves: a recorded game is shown
// exactly as written, and the game ends when its move list runs out.
//
//   - [Game]: reset/step/render surface driven by the playback controller
//   - [Library]: YAML roster of players and their recorded games
//   - [Surface], [TextSink], [Selector]: UI elements the game updates
//
// # Example
//
//	lib, _ := engine.DefaultLibrary()
//	g, _ := engine.New(surface, status, white, black, info, lib)
//	done, err := g.Step()
package engine
