package kvstore_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"calendar-pro/pkg/kvstore"
)

func TestMemory(t *testing.T) {
	m := kvstore.NewMemory()

	if _, err := m.Load("missing"); !errors.Is(err, kvstore.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	val := []byte(`[1,2]`)
	if err := m.Save("k", val); err != nil {
		t.Fatalf("save: %v", err)
	}
	val[0] = 'x'

	got, err := m.Load("k")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != `[1,2]` {
		t.Errorf("expected stored copy, got %q", got)
	}
}

func TestFile(t *testing.T) {
	dir := t.TempDir()
	f, err := kvstore.NewFile(filepath.Join(dir, "data"))
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}

	if _, err := f.Load("calendar_events"); !errors.Is(err, kvstore.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := f.Save("calendar_events", []byte(`[]`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := f.Save("calendar_events", []byte(`[{"id":"1"}]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	got, err := f.Load("calendar_events")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != `[{"id":"1"}]` {
		t.Errorf("unexpected content %q", got)
	}

	info, err := os.Stat(filepath.Join(f.Dir(), "calendar_events.json"))
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("expected mode 0600, got %o", perm)
	}

	entries, err := os.ReadDir(f.Dir())
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected no temp files left behind, got %d entries", len(entries))
	}
}

func TestFileInvalidKey(t *testing.T) {
	f, err := kvstore.NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	for _, key := range []string{"", "../escape", `a\b`, ".hidden"} {
		if err := f.Save(key, []byte("1")); err == nil {
			t.Errorf("expected error for key %q", key)
		}
	}
}

func TestNewFileEmptyDir(t *testing.T) {
	if _, err := kvstore.NewFile(""); err == nil {
		t.Fatal("expected error for empty dir")
	}
}

type countingStorage struct {
	inner   *kvstore.Memory
	loads   int
	failErr error
}

func (c *countingStorage) Load(key string) ([]byte, error) {
	c.loads++
	return c.inner.Load(key)
}

func (c *countingStorage) Save(key string, value []byte) error {
	if c.failErr != nil {
		return c.failErr
	}
	return c.inner.Save(key, value)
}

func TestCached(t *testing.T) {
	backend := &countingStorage{inner: kvstore.NewMemory()}
	c, err := kvstore.NewCached(backend, 2)
	if err != nil {
		t.Fatalf("NewCached: %v", err)
	}

	if err := c.Save("a", []byte("1")); err != nil {
		t.Fatalf("save: %v", err)
	}
	for i := 0; i < 3; i++ {
		got, err := c.Load("a")
		if err != nil || string(got) != "1" {
			t.Fatalf("load a: %q %v", got, err)
		}
	}
	if backend.loads != 0 {
		t.Errorf("expected cache hits only, backend loads = %d", backend.loads)
	}

	_ = backend.inner.Save("b", []byte("2"))
	if got, _ := c.Load("b"); string(got) != "2" {
		t.Errorf("expected read-through value 2, got %q", got)
	}
	if backend.loads != 1 {
		t.Errorf("expected 1 backend load, got %d", backend.loads)
	}

	if _, err := c.Load("missing"); !errors.Is(err, kvstore.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	_ = c.Save("c", []byte("3"))
	if c.Len() > 2 {
		t.Errorf("cache exceeded its size: %d", c.Len())
	}
}

func TestCachedSaveFailure(t *testing.T) {
	backend := &countingStorage{inner: kvstore.NewMemory()}
	c, err := kvstore.NewCached(backend, 4)
	if err != nil {
		t.Fatalf("NewCached: %v", err)
	}
	_ = c.Save("a", []byte("old"))

	backend.failErr = errors.New("disk full")
	if err := c.Save("a", []byte("new")); err == nil {
		t.Fatal("expected save error")
	}

	got, err := c.Load("a")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != "old" {
		t.Errorf("expected backend value after failed save, got %q", got)
	}
}

func TestNewCachedErrors(t *testing.T) {
	if _, err := kvstore.NewCached(nil, 4); err == nil {
		t.Error("expected error for nil backend")
	}
	if _, err := kvstore.NewCached(kvstore.NewMemory(), 0); err == nil {
		t.Error("expected error for zero size")
	}
}
