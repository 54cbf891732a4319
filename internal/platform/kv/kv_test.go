package kv

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if _, err := store.Get(ctx, "missing"); !IsNotFound(err) {
		t.Fatalf("expected ErrNotFound for missing key, got %v", err)
	}

	if err := store.Set(ctx, "k", "v1"); err != nil {
		t.Fatalf("unexpected set error: %v", err)
	}
	if err := store.Set(ctx, "k", "v2"); err != nil {
		t.Fatalf("unexpected overwrite error: %v", err)
	}

	value, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("unexpected get error: %v", err)
	}
	if value != "v2" {
		t.Fatalf("expected overwritten value v2, got %q", value)
	}

	if err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("unexpected delete error: %v", err)
	}
	if _, err := store.Get(ctx, "k"); !IsNotFound(err) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete of absent key must be a no-op, got %v", err)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store.json")

	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("unexpected open error: %v", err)
	}

	if err := store.Set(ctx, "bazarna_cart", `[{"id":"p1","quantity":2}]`); err != nil {
		t.Fatalf("unexpected set error: %v", err)
	}
	if err := store.Set(ctx, "bazarna_user", `{"name":"Jane"}`); err != nil {
		t.Fatalf("unexpected set error: %v", err)
	}
	if err := store.Delete(ctx, "bazarna_user"); err != nil {
		t.Fatalf("unexpected delete error: %v", err)
	}

	// A fresh store against the same file must observe the flushed state.
	reopened, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("unexpected reopen error: %v", err)
	}
	value, err := reopened.Get(ctx, "bazarna_cart")
	if err != nil {
		t.Fatalf("unexpected get error: %v", err)
	}
	if value != `[{"id":"p1","quantity":2}]` {
		t.Fatalf("unexpected persisted value %q", value)
	}
	if _, err := reopened.Get(ctx, "bazarna_user"); !IsNotFound(err) {
		t.Fatalf("expected deleted key to stay absent, got %v", err)
	}
}

func TestFileStoreMissingAndCorrupt(t *testing.T) {
	dir := t.TempDir()

	if _, err := NewFileStore(""); err == nil {
		t.Fatalf("expected error for empty path")
	}

	// Missing file is a valid empty store.
	store, err := NewFileStore(filepath.Join(dir, "fresh.json"))
	if err != nil {
		t.Fatalf("missing file must open empty, got %v", err)
	}
	if _, err := store.Get(context.Background(), "any"); !IsNotFound(err) {
		t.Fatalf("expected empty store, got %v", err)
	}

	// Corrupt file refuses to open.
	corrupt := filepath.Join(dir, "corrupt.json")
	if err := os.WriteFile(corrupt, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write corrupt fixture: %v", err)
	}
	if _, err := NewFileStore(corrupt); err == nil {
		t.Fatalf("expected error opening corrupt file")
	}
}
