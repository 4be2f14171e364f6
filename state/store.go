package state

import (
	"errors"
	"fmt"
	"log"
	"slices"
)

var (
	// ErrCheckpointOutOfRange is returned when a restore index does not address a saved checkpoint
	ErrCheckpointOutOfRange = errors.New("checkpoint index out of range")
	// ErrCheckpointNotFound is returned when no checkpoint carries the requested name
	ErrCheckpointNotFound = errors.New("checkpoint not found")
)

// Checkpoint is a point-in-time copy of store values
type Checkpoint struct {
	Index  int
	Name   string
	Values map[string]Value
	// Keys preserves insertion order at capture time
	Keys []string
}

// Store is a key-value game state with a checkpoint history.
// Not safe for concurrent use.
type Store struct {
	values      map[string]Value
	order       []string
	checkpoints []snapshot
}

type snapshot struct {
	name   string
	values map[string]Value
	order  []string
}

// New creates an empty store
func New() *Store {
	return &Store{
		values: make(map[string]Value),
	}
}

// Set inserts or overwrites key
func (s *Store) Set(key string, v Value) {
	if _, ok := s.values[key]; !ok {
		s.order = append(s.order, key)
	}
	s.values[key] = v.Clone()
}

// Get returns the value for key, or def when key is absent
func (s *Store) Get(key string, def Value) Value {
	if v, ok := s.values[key]; ok {
		return v.Clone()
	}
	return def
}

// Lookup returns the value for key and whether it was present
func (s *Store) Lookup(key string) (Value, bool) {
	v, ok := s.values[key]
	if !ok {
		return Null(), false
	}
	return v.Clone(), true
}

// Delete removes key, no-op when absent
func (s *Store) Delete(key string) {
	if _, ok := s.values[key]; !ok {
		return
	}
	delete(s.values, key)
	if i := slices.Index(s.order, key); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
}

// Keys returns keys in insertion order
func (s *Store) Keys() []string {
	return slices.Clone(s.order)
}

func (s *Store) Len() int {
	return len(s.values)
}

// Incr adds delta to an integer key and returns the result.
// Missing or non-integer values count as zero.
func (s *Store) Incr(key string, delta int64) int64 {
	n, _ := s.Get(key, Int(0)).AsInt()
	n += delta
	s.Set(key, Int(n))
	return n
}

// SaveCheckpoint snapshots current values and returns the checkpoint index
func (s *Store) SaveCheckpoint() int {
	return s.SaveNamedCheckpoint("")
}

// SaveNamedCheckpoint snapshots current values under name and returns the checkpoint index
func (s *Store) SaveNamedCheckpoint(name string) int {
	s.checkpoints = append(s.checkpoints, snapshot{
		name:   name,
		values: cloneValues(s.values),
		order:  slices.Clone(s.order),
	})
	return len(s.checkpoints) - 1
}

// RestoreCheckpoint replaces current values with checkpoint index.
// History is left intact; later checkpoints remain restorable.
func (s *Store) RestoreCheckpoint(index int) error {
	if index < 0 || index >= len(s.checkpoints) {
		return fmt.Errorf("restore %d of %d: %w", index, len(s.checkpoints), ErrCheckpointOutOfRange)
	}
	cp := s.checkpoints[index]
	s.values = cloneValues(cp.values)
	s.order = slices.Clone(cp.order)
	log.Printf("state: restored checkpoint %d %q", index, cp.name)
	return nil
}

// RestoreLatest restores the most recently saved checkpoint
func (s *Store) RestoreLatest() error {
	return s.RestoreCheckpoint(len(s.checkpoints) - 1)
}

// RestoreNamed restores the most recent checkpoint saved under name
func (s *Store) RestoreNamed(name string) error {
	for i := len(s.checkpoints) - 1; i >= 0; i-- {
		if s.checkpoints[i].name == name {
			return s.RestoreCheckpoint(i)
		}
	}
	return fmt.Errorf("restore %q: %w", name, ErrCheckpointNotFound)
}

// Checkpoint returns a copy of checkpoint index
func (s *Store) Checkpoint(index int) (Checkpoint, error) {
	if index < 0 || index >= len(s.checkpoints) {
		return Checkpoint{}, fmt.Errorf("checkpoint %d of %d: %w", index, len(s.checkpoints), ErrCheckpointOutOfRange)
	}
	cp := s.checkpoints[index]
	return Checkpoint{
		Index:  index,
		Name:   cp.name,
		Values: cloneValues(cp.values),
		Keys:   slices.Clone(cp.order),
	}, nil
}

func (s *Store) CheckpointCount() int {
	return len(s.checkpoints)
}

// Reset drops all values and checkpoints
func (s *Store) Reset() {
	s.values = make(map[string]Value)
	s.order = nil
	s.checkpoints = nil
}

func cloneValues(m map[string]Value) map[string]Value {
	out := make(map[string]Value, len(m))
	for k, v := range m {
		out[k] = v.Clone()
	}
	return out
}
