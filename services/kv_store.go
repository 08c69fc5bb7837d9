package services

import (
	"errors"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"booking-gateway/models"
)

// ErrKeyNotFound is returned by KVStore.Get for unknown keys.
var ErrKeyNotFound = errors.New("key not found")

// KVStore is the injected persistence capability: raw JSON bytes per key.
// Session-adjacent state (favorites) depends on this interface instead of
// any concrete storage medium.
type KVStore interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}

// GormKVStore persists entries in the kv_entries table.
type GormKVStore struct {
	DB *gorm.DB
}

func NewGormKVStore(db *gorm.DB) *GormKVStore {
	return &GormKVStore{DB: db}
}

func (s *GormKVStore) Get(key string) ([]byte, error) {
	var entry models.KVEntry
	err := s.DB.First(&entry, "k = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return entry.Value, nil
}

func (s *GormKVStore) Set(key string, value []byte) error {
	entry := models.KVEntry{Key: key, Value: value}
	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "k"}},
		DoUpdates: clause.AssignmentColumns([]string{"v", "updated_at"}),
	}).Create(&entry).Error
}

// MemoryKVStore is the in-process implementation used in tests.
type MemoryKVStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func NewMemoryKVStore() *MemoryKVStore {
	return &MemoryKVStore{entries: map[string][]byte{}}
}

func (s *MemoryKVStore) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return v, nil
}

func (s *MemoryKVStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = append([]byte(nil), value...)
	return nil
}
