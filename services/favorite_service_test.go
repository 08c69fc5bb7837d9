package services_test

import (
	"encoding/json"
	"testing"

	"booking-gateway/services"
)

func TestFavoriteService_ToggleAndPersist(t *testing.T) {
	store := services.NewMemoryKVStore()

	svc, err := services.NewFavoriteService(store)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	if got := svc.List(); len(got) != 0 {
		t.Fatalf("expected empty favorites, got %v", got)
	}

	favorite, err := svc.Toggle("H001")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !favorite {
		t.Error("expected H001 to become a favorite")
	}
	if !svc.IsFavorite("H001") {
		t.Error("expected IsFavorite to report true")
	}

	// Every change is written through to the store.
	raw, err := store.Get("hotelFavorites")
	if err != nil {
		t.Fatalf("store get: %v", err)
	}
	var persisted []string
	if err := json.Unmarshal(raw, &persisted); err != nil {
		t.Fatalf("decode persisted value: %v", err)
	}
	if len(persisted) != 1 || persisted[0] != "H001" {
		t.Fatalf("expected persisted [H001], got %v", persisted)
	}

	// Toggling again removes it.
	favorite, err = svc.Toggle("H001")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if favorite || svc.IsFavorite("H001") {
		t.Error("expected H001 removed from favorites")
	}
}

func TestFavoriteService_LoadsExistingState(t *testing.T) {
	store := services.NewMemoryKVStore()
	if err := store.Set("hotelFavorites", []byte(`["H001","H002"]`)); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	svc, err := services.NewFavoriteService(store)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	if got := svc.List(); len(got) != 2 {
		t.Fatalf("expected 2 favorites loaded at construction, got %v", got)
	}
	if !svc.IsFavorite("H002") {
		t.Error("expected H002 to be a favorite")
	}
}

func TestFavoriteService_Clear(t *testing.T) {
	store := services.NewMemoryKVStore()
	svc, err := services.NewFavoriteService(store)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	if _, err := svc.Toggle("H001"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if err := svc.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if got := svc.List(); len(got) != 0 {
		t.Fatalf("expected no favorites after clear, got %v", got)
	}

	raw, err := store.Get("hotelFavorites")
	if err != nil {
		t.Fatalf("store get: %v", err)
	}
	if string(raw) != "[]" {
		t.Errorf("expected cleared store value [], got %s", raw)
	}
}
