package state

import (
	"errors"
	"testing"
)

func TestSetGet_LastWriteWins(t *testing.T) {
	s := New()
	s.Set("score", Int(1))
	s.Set("name", String("gopher"))
	s.Set("score", Int(42))

	if got := s.Get("score", Null()); !got.Equal(Int(42)) {
		t.Errorf("Expected score 42, got %v", got)
	}
	if got := s.Get("name", Null()); !got.Equal(String("gopher")) {
		t.Errorf("Expected name gopher, got %v", got)
	}
	if s.Len() != 2 {
		t.Errorf("Expected 2 keys, got %d", s.Len())
	}
}

func TestGet_MissingReturnsDefault(t *testing.T) {
	s := New()

	if got := s.Get("missing", Null()); !got.IsNull() {
		t.Errorf("Expected null default, got %v", got)
	}
	if got := s.Get("missing", Int(7)); !got.Equal(Int(7)) {
		t.Errorf("Expected supplied default 7, got %v", got)
	}
	if _, ok := s.Lookup("missing"); ok {
		t.Error("Expected Lookup to report absence")
	}
}

func TestKeys_InsertionOrder(t *testing.T) {
	s := New()
	s.Set("b", Int(1))
	s.Set("a", Int(2))
	s.Set("c", Int(3))
	s.Set("b", Int(4))
	s.Delete("a")

	keys := s.Keys()
	want := []string{"b", "c"}
	if len(keys) != len(want) {
		t.Fatalf("Expected %v, got %v", want, keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Expected key %d to be %q, got %q", i, want[i], keys[i])
		}
	}
}

func TestIncr(t *testing.T) {
	s := New()
	if n := s.Incr("score", 10); n != 10 {
		t.Errorf("Expected 10 from missing key, got %d", n)
	}
	if n := s.Incr("score", -3); n != 7 {
		t.Errorf("Expected 7, got %d", n)
	}

	s.Set("label", String("x"))
	if n := s.Incr("label", 2); n != 2 {
		t.Errorf("Expected non-integer to count as zero, got %d", n)
	}
}

func TestSaveCheckpoint_ReturnsIndex(t *testing.T) {
	s := New()
	for want := 0; want < 3; want++ {
		if got := s.SaveCheckpoint(); got != want {
			t.Errorf("Expected checkpoint index %d, got %d", want, got)
		}
	}
	if s.CheckpointCount() != 3 {
		t.Errorf("Expected 3 checkpoints, got %d", s.CheckpointCount())
	}
}

func TestCheckpoint_IsolatedFromLaterMutation(t *testing.T) {
	s := New()
	s.Set("score", Int(100))
	s.Set("inventory", List(String("sword")))
	s.Set("stats", Map(map[string]Value{"hp": Int(10)}))
	cp := s.SaveCheckpoint()

	s.Set("score", Int(0))
	s.Set("level", Int(2))
	s.Delete("inventory")
	stats, _ := s.Get("stats", Null()).AsMap()
	stats["hp"] = Int(1)
	s.Set("stats", Map(stats))

	snap, err := s.Checkpoint(cp)
	if err != nil {
		t.Fatalf("Checkpoint(%d) failed: %v", cp, err)
	}
	if !snap.Values["score"].Equal(Int(100)) {
		t.Errorf("Expected checkpoint score 100, got %v", snap.Values["score"])
	}
	if _, ok := snap.Values["level"]; ok {
		t.Error("Expected checkpoint to not contain key added later")
	}
	if !snap.Values["inventory"].Equal(List(String("sword"))) {
		t.Errorf("Expected checkpoint inventory intact, got %v", snap.Values["inventory"])
	}
	hp, _ := snap.Values["stats"].AsMap()
	if !hp["hp"].Equal(Int(10)) {
		t.Errorf("Expected nested checkpoint hp 10, got %v", hp["hp"])
	}

	// Mutating the returned copy must not reach the store history
	snap.Values["score"] = Int(-1)
	again, _ := s.Checkpoint(cp)
	if !again.Values["score"].Equal(Int(100)) {
		t.Errorf("Expected stored checkpoint unchanged, got %v", again.Values["score"])
	}
}

func TestRestoreCheckpoint(t *testing.T) {
	s := New()
	s.Set("level", Int(1))
	first := s.SaveCheckpoint()
	s.Set("level", Int(2))
	second := s.SaveCheckpoint()
	s.Set("level", Int(3))

	if err := s.RestoreCheckpoint(first); err != nil {
		t.Fatalf("RestoreCheckpoint(%d) failed: %v", first, err)
	}
	if got := s.Get("level", Null()); !got.Equal(Int(1)) {
		t.Errorf("Expected level 1 after restore, got %v", got)
	}

	// Later checkpoints survive a restore of an earlier one
	if s.CheckpointCount() != 2 {
		t.Errorf("Expected history to keep 2 checkpoints, got %d", s.CheckpointCount())
	}
	if err := s.RestoreCheckpoint(second); err != nil {
		t.Fatalf("RestoreCheckpoint(%d) failed: %v", second, err)
	}
	if got := s.Get("level", Null()); !got.Equal(Int(2)) {
		t.Errorf("Expected level 2 after restore, got %v", got)
	}
}

func TestRestoreThenSave_ProducesEqualCheckpoint(t *testing.T) {
	s := New()
	s.Set("a", String("x"))
	s.Set("b", List(Int(1), Int(2)))
	orig := s.SaveCheckpoint()
	s.Set("a", String("y"))
	s.SaveCheckpoint()

	if err := s.RestoreCheckpoint(orig); err != nil {
		t.Fatalf("RestoreCheckpoint failed: %v", err)
	}
	copyIdx := s.SaveCheckpoint()

	before, _ := s.Checkpoint(orig)
	after, _ := s.Checkpoint(copyIdx)
	if len(before.Values) != len(after.Values) {
		t.Fatalf("Expected %d values, got %d", len(before.Values), len(after.Values))
	}
	for k, v := range before.Values {
		if !after.Values[k].Equal(v) {
			t.Errorf("Expected key %q equal, got %v vs %v", k, v, after.Values[k])
		}
	}
	if s.CheckpointCount() != 3 {
		t.Errorf("Expected 3 checkpoints, got %d", s.CheckpointCount())
	}

	// Mutating restored values leaves the source checkpoint alone
	s.Set("a", String("z"))
	check, _ := s.Checkpoint(orig)
	if !check.Values["a"].Equal(String("x")) {
		t.Errorf("Expected source checkpoint unchanged, got %v", check.Values["a"])
	}
}

func TestRestoreCheckpoint_OutOfRange(t *testing.T) {
	s := New()
	s.Set("score", Int(5))
	s.SaveCheckpoint()
	s.Set("score", Int(9))

	for _, idx := range []int{1, 2, -1, -100} {
		err := s.RestoreCheckpoint(idx)
		if !errors.Is(err, ErrCheckpointOutOfRange) {
			t.Errorf("Expected ErrCheckpointOutOfRange for %d, got %v", idx, err)
		}
		if got := s.Get("score", Null()); !got.Equal(Int(9)) {
			t.Errorf("Expected values unmodified after failed restore %d, got %v", idx, got)
		}
	}
}

func TestRestoreLatest(t *testing.T) {
	s := New()
	if err := s.RestoreLatest(); !errors.Is(err, ErrCheckpointOutOfRange) {
		t.Errorf("Expected ErrCheckpointOutOfRange on empty history, got %v", err)
	}

	s.Set("hp", Int(3))
	s.SaveCheckpoint()
	s.Set("hp", Int(2))
	s.SaveCheckpoint()
	s.Set("hp", Int(0))

	if err := s.RestoreLatest(); err != nil {
		t.Fatalf("RestoreLatest failed: %v", err)
	}
	if got := s.Get("hp", Null()); !got.Equal(Int(2)) {
		t.Errorf("Expected hp 2, got %v", got)
	}
}

func TestRestoreNamed_MostRecentWins(t *testing.T) {
	s := New()
	s.Set("round", Int(1))
	s.SaveNamedCheckpoint("round")
	s.Set("round", Int(2))
	s.SaveNamedCheckpoint("round")
	s.Set("round", Int(3))
	s.SaveCheckpoint()

	if err := s.RestoreNamed("round"); err != nil {
		t.Fatalf("RestoreNamed failed: %v", err)
	}
	if got := s.Get("round", Null()); !got.Equal(Int(2)) {
		t.Errorf("Expected round 2, got %v", got)
	}

	if err := s.RestoreNamed("boss"); !errors.Is(err, ErrCheckpointNotFound) {
		t.Errorf("Expected ErrCheckpointNotFound, got %v", err)
	}

	cp, _ := s.Checkpoint(1)
	if cp.Name != "round" || cp.Index != 1 {
		t.Errorf("Expected checkpoint 1 named round, got %d %q", cp.Index, cp.Name)
	}
}

func TestReset(t *testing.T) {
	s := New()
	s.Set("x", Int(1))
	s.SaveCheckpoint()
	s.Reset()

	if s.Len() != 0 || s.CheckpointCount() != 0 || len(s.Keys()) != 0 {
		t.Errorf("Expected empty store after reset, got %d values %d checkpoints", s.Len(), s.CheckpointCount())
	}
}
