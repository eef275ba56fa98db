package store

import (
	"context"
	"testing"
	"time"

	"github.com/rushteam/famkit/core"
)

func TestMemoryStore_GetSet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if _, err := s.Get(ctx, "missing"); !core.IsNotFound(err) {
		t.Errorf("missing key error = %v, want NOT_FOUND", err)
	}

	if err := s.Set(ctx, "k", []byte("v")); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	got, err := s.Get(ctx, "k")
	if err != nil || string(got) != "v" {
		t.Errorf("Get = (%q, %v)", got, err)
	}

	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := s.Get(ctx, "k"); !core.IsNotFound(err) {
		t.Errorf("deleted key error = %v, want NOT_FOUND", err)
	}
}

func TestMemoryStore_TTL(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.Set(ctx, "k", []byte("v"), 1); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Get(ctx, "k"); err != nil {
		t.Fatalf("fresh key should exist: %v", err)
	}

	// force expiry instead of sleeping
	s.mu.Lock()
	past := time.Now().Add(-time.Second)
	s.data["k"].expire = &past
	s.mu.Unlock()

	if _, err := s.Get(ctx, "k"); !core.IsNotFound(err) {
		t.Errorf("expired key error = %v, want NOT_FOUND", err)
	}
}

func TestMemoryStore_BatchGet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.Set(ctx, "a", []byte("1")); err != nil {
		t.Fatal(err)
	}
	if err := s.Set(ctx, "b", []byte("2")); err != nil {
		t.Fatal(err)
	}

	got, err := s.BatchGet(ctx, []string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("BatchGet error: %v", err)
	}
	if len(got) != 2 || string(got["a"]) != "1" || string(got["b"]) != "2" {
		t.Errorf("got %v", got)
	}
}
