package mode

import (
	"testing"

	"github.com/Cuixjnoob/SanShan-Island-star/internal/store"
)

// Exercises the controller against the real settings store rather than the
// in-memory fake.
func TestPreferenceSurvivesRestart(t *testing.T) {
	s, err := store.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer s.Close()

	first := New(s)
	if first.Enabled() {
		t.Fatal("fresh store must start in normal mode")
	}
	first.Toggle()

	// A second controller over the same store models the next session.
	second := New(s)
	if !second.Enabled() {
		t.Fatal("red-light preference lost between sessions")
	}
}
