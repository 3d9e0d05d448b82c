package sqlite

import (
	"path/filepath"
	"strings"
	"testing"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestGetMissingKey(t *testing.T) {
	store := setupTestStore(t)

	value, ok, err := store.Get("missing")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok || value != nil {
		t.Errorf("expected missing key, got %q (ok=%v)", value, ok)
	}
}

func TestSetGetOverwrite(t *testing.T) {
	store := setupTestStore(t)

	if err := store.Set("k", []byte(`["a"]`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Set("k", []byte(`["b"]`)); err != nil {
		t.Fatalf("Set (overwrite) failed: %v", err)
	}

	value, ok, err := store.Get("k")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok || string(value) != `["b"]` {
		t.Errorf("expected overwritten value, got %q (ok=%v)", value, ok)
	}
}

func TestSetManyAndDelete(t *testing.T) {
	store := setupTestStore(t)

	if err := store.SetMany(map[string][]byte{"a": []byte("1"), "b": []byte("2")}); err != nil {
		t.Fatalf("SetMany failed: %v", err)
	}
	if err := store.Delete("a"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := store.Delete("never-set"); err != nil {
		t.Fatalf("Delete of missing key failed: %v", err)
	}

	if _, ok, _ := store.Get("a"); ok {
		t.Error("expected key a to be deleted")
	}
	if value, ok, _ := store.Get("b"); !ok || string(value) != "2" {
		t.Errorf("expected b=2, got %q (ok=%v)", value, ok)
	}
}

func TestLoadPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	store := NewStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := store.Set("k", []byte("v")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	store.Close()

	reopened := NewStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defer reopened.Close()

	value, ok, err := reopened.Get("k")
	if err != nil || !ok || string(value) != "v" {
		t.Errorf("expected persisted value, got %q (ok=%v, err=%v)", value, ok, err)
	}

	current, latest, err := reopened.SchemaStatus()
	if err != nil {
		t.Fatalf("SchemaStatus failed: %v", err)
	}
	if current != latest || current == 0 {
		t.Errorf("expected schema at latest version, got %d/%d", current, latest)
	}
}

func TestLoadUninitialized(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	err := store.Load()
	if err == nil {
		t.Fatal("expected error loading uninitialized storage")
	}
	if !strings.Contains(err.Error(), "init") {
		t.Errorf("expected init hint, got: %v", err)
	}
}

func TestOperationsBeforeLoad(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "test.db"))
	if _, _, err := store.Get("k"); err == nil {
		t.Error("expected Get to fail before Load")
	}
	if err := store.Set("k", nil); err == nil {
		t.Error("expected Set to fail before Load")
	}
}
