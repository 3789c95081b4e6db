package highscore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"statue-snake/game/types"
)

func TestLoadMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "none.json"))

	value, err := store.Load(types.ModeNormal)
	if err != nil {
		t.Fatalf("Expected no error for missing file, got %v", err)
	}
	if value != 0 {
		t.Errorf("Expected 0, got %d", value)
	}
}

func TestSaveAndLoadPerMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scores.json")
	store := NewFileStore(path)

	if err := store.Save(types.ModeNormal, 12); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Save(types.ModeStatue, 4); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	normal, err := store.Load(types.ModeNormal)
	if err != nil || normal != 12 {
		t.Errorf("Expected NORMAL 12, got %d (%v)", normal, err)
	}
	statue, err := store.Load(types.ModeStatue)
	if err != nil || statue != 4 {
		t.Errorf("Expected STATUE 4, got %d (%v)", statue, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	var raw map[string]int
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Expected valid JSON, got %v", err)
	}
	if raw["NORMAL"] != 12 || raw["STATUE"] != 4 {
		t.Errorf("Unexpected file contents %v", raw)
	}
}

func TestSaveKeepsHigherStoredValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	if err := os.WriteFile(path, []byte(`{"STATUE": 30}`), 0644); err != nil {
		t.Fatal(err)
	}
	store := NewFileStore(path)

	if err := store.Save(types.ModeStatue, 10); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if value, _ := store.Load(types.ModeStatue); value != 30 {
		t.Errorf("Expected stored 30 to win, got %d", value)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}
	store := NewFileStore(path)

	value, err := store.Load(types.ModeNormal)
	if err == nil {
		t.Error("Expected an error for malformed data")
	}
	if value != 0 {
		t.Errorf("Expected 0 for malformed data, got %d", value)
	}

	if err := store.Save(types.ModeNormal, 5); err == nil {
		t.Error("Expected Save to refuse a malformed file")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "not json" {
		t.Errorf("Expected malformed file to be left untouched, got %q", data)
	}
}

func TestSaveKeepsOtherModeWhenFileBreaks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	store := NewFileStore(path)
	if err := store.Save(types.ModeStatue, 12); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// A truncated write leaves the prefix of a valid object
	if err := os.WriteFile(path, []byte(`{"STATUE": 12`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(types.ModeNormal, 3); err == nil {
		t.Fatal("Expected Save to fail on a truncated file")
	}

	if err := os.WriteFile(path, []byte(`{"STATUE": 12}`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(types.ModeNormal, 3); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if value, _ := store.Load(types.ModeStatue); value != 12 {
		t.Errorf("Expected Statue score 12 preserved, got %d", value)
	}
	if value, _ := store.Load(types.ModeNormal); value != 3 {
		t.Errorf("Expected Normal score 3, got %d", value)
	}
}

func TestUnknownMode(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "scores.json"))

	if _, err := store.Load(types.ModeNone); err == nil {
		t.Error("Expected Load to reject an unset mode")
	}
	if err := store.Save(types.ModeNone, 3); err == nil {
		t.Error("Expected Save to reject an unset mode")
	}
}

func TestDefaultPath(t *testing.T) {
	if NewFileStore("").Path() != DefaultPath {
		t.Errorf("Expected default path %q", DefaultPath)
	}
}
