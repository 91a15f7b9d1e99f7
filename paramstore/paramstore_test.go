package paramstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ikle/enigma/state"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ngc.var")

	s := state.New()
	s.SetParam(state.CSSlot(1, state.AxisX), 12.5)
	s.SetParam(state.CSSlot(2, state.AxisY), -3.0)
	s.SetParam(state.ToolX, 0.25)

	if err := Save(path, s); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded := state.New()
	if err := Load(path, loaded); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got := loaded.GetParam(state.CSSlot(1, state.AxisX)); got != 12.5 {
		t.Errorf("expected CS1 X=12.5, got %v", got)
	}
	if got := loaded.GetParam(state.CSSlot(2, state.AxisY)); got != -3.0 {
		t.Errorf("expected CS2 Y=-3.0, got %v", got)
	}
	if got := loaded.GetParam(state.ToolX); got != 0.25 {
		t.Errorf("expected ToolX=0.25, got %v", got)
	}
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.var")

	s := state.New()
	if err := Load(path, s); err != nil {
		t.Fatalf("Load of a missing file should not error, got %v", err)
	}
}

func TestLoadRejectsOutOfRangeSlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.var")
	writeFile(t, path, "9999\t1\n")

	s := state.New()
	if err := Load(path, s); err == nil {
		t.Fatal("expected error for out-of-range slot")
	}
}

func TestSaveOmitsZeroSlots(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ngc.var")

	s := state.New()
	s.SetParam(state.ToolX, 1)

	if err := Save(path, s); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data := readFile(t, path)
	if got := countLines(data); got != 1 {
		t.Fatalf("expected exactly one persisted entry, got %d: %q", got, data)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read test file: %v", err)
	}
	return string(data)
}

func countLines(s string) int {
	n := 0
	for _, c := range s {
		if c == '\n' {
			n++
		}
	}
	return n
}
