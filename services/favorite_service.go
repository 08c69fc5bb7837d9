package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

// favoritesKey matches the key the web client used in local storage.
const favoritesKey = "hotelFavorites"

// FavoriteService keeps the favorite hotel codes as a JSON array under a
// fixed key: loaded once at construction, written through on every change.
type FavoriteService struct {
	store KVStore

	mu    sync.Mutex
	codes []string
}

func NewFavoriteService(store KVStore) (*FavoriteService, error) {
	s := &FavoriteService{store: store}

	raw, err := store.Get(favoritesKey)
	switch {
	case errors.Is(err, ErrKeyNotFound):
		s.codes = []string{}
	case err != nil:
		return nil, fmt.Errorf("load favorites: %w", err)
	default:
		if err := json.Unmarshal(raw, &s.codes); err != nil {
			return nil, fmt.Errorf("decode favorites: %w", err)
		}
	}
	return s, nil
}

// Toggle adds the hotel code if absent, removes it if present, and reports
// whether it is a favorite afterwards.
func (s *FavoriteService) Toggle(hotelCode string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	next := make([]string, 0, len(s.codes)+1)
	for _, code := range s.codes {
		if code == hotelCode {
			found = true
			continue
		}
		next = append(next, code)
	}
	if !found {
		next = append(next, hotelCode)
	}

	if err := s.flush(next); err != nil {
		return found, err
	}
	s.codes = next
	return !found, nil
}

// List returns a copy of the current favorites.
func (s *FavoriteService) List() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.codes...)
}

func (s *FavoriteService) IsFavorite(hotelCode string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, code := range s.codes {
		if code == hotelCode {
			return true
		}
	}
	return false
}

func (s *FavoriteService) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.flush([]string{}); err != nil {
		return err
	}
	s.codes = []string{}
	return nil
}

func (s *FavoriteService) flush(codes []string) error {
	raw, err := json.Marshal(codes)
	if err != nil {
		return err
	}
	return s.store.Set(favoritesKey, raw)
}
