package store

import (
	"path/filepath"
	"testing"
)

func TestGetMissingKey(t *testing.T) {
	s, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer s.Close()

	if v, ok := s.Get("redMode"); ok {
		t.Fatalf("missing key reported present with value %q", v)
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	s, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer s.Close()

	if err := s.Set("redMode", "true"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, ok := s.Get("redMode")
	if !ok || v != "true" {
		t.Fatalf("Get = (%q, %v), want (\"true\", true)", v, ok)
	}

	if err := s.Set("redMode", "false"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	v, ok = s.Get("redMode")
	if !ok || v != "false" {
		t.Fatalf("Get after overwrite = (%q, %v), want (\"false\", true)", v, ok)
	}
}

func TestValuesSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Set("redMode", "true"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	v, ok := s.Get("redMode")
	if !ok || v != "true" {
		t.Fatalf("value lost across reopen: (%q, %v)", v, ok)
	}
}
