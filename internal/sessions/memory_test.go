package sessions

import (
	"context"
	"testing"
)

func TestMemoryStoreGetSet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	got, err := store.Get(ctx, "tok-1", KeyNationalID)
	if err != nil {
		t.Fatalf("get on empty store: %v", err)
	}
	if got != "" {
		t.Fatalf("missing key should read as empty, got %q", got)
	}

	if err := store.Set(ctx, "tok-1", KeyNationalID, "12345678A"); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err = store.Get(ctx, "tok-1", KeyNationalID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "12345678A" {
		t.Fatalf("get after set: got %q", got)
	}
}

func TestMemoryStoreIsolatesTokens(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Set(ctx, "browser-a", KeyFullName, "Ana"); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := store.Get(ctx, "browser-b", KeyFullName)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "" {
		t.Fatalf("sessions leaked across tokens: got %q", got)
	}
}

func TestMemoryStoreOverwrites(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_ = store.Set(ctx, "tok", KeyLastID, "OLD")
	_ = store.Set(ctx, "tok", KeyLastID, "NEW")
	got, _ := store.Get(ctx, "tok", KeyLastID)
	if got != "NEW" {
		t.Fatalf("expected overwrite, got %q", got)
	}
}
