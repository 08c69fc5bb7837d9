package models

import (
	"time"

	"gorm.io/datatypes"
)

// KVEntry backs the injected key-value store (favorites and similar
// session-adjacent state). One JSON value per key.
type KVEntry struct {
	Key       string         `gorm:"column:k;primaryKey;size:128" json:"key"`
	Value     datatypes.JSON `gorm:"column:v" json:"value"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (KVEntry) TableName() string { return "kv_entries" }
