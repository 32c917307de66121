package cas_test

import (
	"path/filepath"
	"testing"
	"time"

	"go.trai.ch/kiln/internal/adapters/cas"
	"go.trai.ch/kiln/internal/core/domain"
)

func TestStore_PutAndGet(t *testing.T) {
	tmpDir := t.TempDir()
	storePath := filepath.Join(tmpDir, "layers.json")

	store, err := cas.NewStore(storePath)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	info := domain.LayerInfo{
		StageName: "backend-deps",
		CacheKey:  "abc",
		Digest:    domain.ChainDigest("", "abc"),
		Timestamp: time.Now(),
	}

	if err := store.Put(info); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := store.Get("backend-deps")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil {
		t.Fatal("Get returned nil")
	}

	if got.CacheKey != info.CacheKey {
		t.Errorf("expected CacheKey %q, got %q", info.CacheKey, got.CacheKey)
	}
	if got.Digest != info.Digest {
		t.Errorf("expected Digest %q, got %q", info.Digest, got.Digest)
	}
}

func TestStore_GetMissing(t *testing.T) {
	store, err := cas.NewStore(filepath.Join(t.TempDir(), "layers.json"))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	got, err := store.Get("nope")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for missing stage, got %+v", got)
	}
}

func TestStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()
	storePath := filepath.Join(tmpDir, "layers.json")

	store1, err := cas.NewStore(storePath)
	if err != nil {
		t.Fatalf("NewStore 1 failed: %v", err)
	}

	info := domain.LayerInfo{
		StageName: "frontend-deps",
		CacheKey:  "xyz",
		Parent:    "sha256:aaaa",
	}
	if err := store1.Put(info); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	store2, err := cas.NewStore(storePath)
	if err != nil {
		t.Fatalf("NewStore 2 failed: %v", err)
	}

	got, err := store2.Get("frontend-deps")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil {
		t.Fatal("Get returned nil after reload")
	}
	if got.Parent != "sha256:aaaa" {
		t.Errorf("expected Parent to survive reload, got %q", got.Parent)
	}
}
