package out

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shivam2408/Self-Mediation-App/internal/platform/kv"
)

func TestBestStoreRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	gateway := kv.NewFileGateway(filepath.Join(t.TempDir(), "records.json"))
	store := NewKVBestStore(gateway)

	// First run: nothing stored yet.
	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if got != 0 {
		t.Fatalf("load empty = %d, want 0", got)
	}

	if err := store.Save(ctx, 61_500); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err = store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != 61_500 {
		t.Fatalf("load = %d, want 61500", got)
	}

	// The stored form is a plain decimal string.
	raw, err := gateway.Get(ctx, "personalBest")
	if err != nil {
		t.Fatalf("get raw: %v", err)
	}
	if raw != "61500" {
		t.Fatalf("raw value = %q, want %q", raw, "61500")
	}
}

func TestBestStoreRejectsGarbledValues(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	gateway := kv.NewFileGateway(filepath.Join(t.TempDir(), "records.json"))
	store := NewKVBestStore(gateway)

	if err := gateway.Set(ctx, "personalBest", "not-a-number"); err != nil {
		t.Fatalf("seed garbled value: %v", err)
	}
	if _, err := store.Load(ctx); err == nil {
		t.Fatal("load should reject a non-numeric value")
	}

	if err := gateway.Set(ctx, "personalBest", "-42"); err != nil {
		t.Fatalf("seed negative value: %v", err)
	}
	if _, err := store.Load(ctx); err == nil {
		t.Fatal("load should reject a negative value")
	}
}
