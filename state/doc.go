// Package state provides an in-memory key-value game state with checkpoint history.
//
// Values are a closed set of kinds (string, int, float, bool, list, map, null).
// Every checkpoint is a deep copy: mutating the store after SaveCheckpoint never
// changes what a later RestoreCheckpoint brings back.
//
//	s := state.New()
//	s.Set("score", state.Int(10))
//	cp := s.SaveCheckpoint()
//	s.Incr("score", 5)
//	s.RestoreCheckpoint(cp) // score is 10 again
package state
