package models

import (
	"time"

	"gorm.io/gorm"
)

// CancellationRecord stores the upstream answer to a cancel request, keyed
// by confirmation number.
type CancellationRecord struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ConfirmationNumber string   `gorm:"column:confirmation_number;size:64;index" json:"confirmation_number"`
	StatusCode         string   `gorm:"column:status_code;size:8" json:"status_code"`
	Description        string   `gorm:"column:description;size:255" json:"description,omitempty"`
	CancellationFee    float64  `gorm:"column:cancellation_fee" json:"cancellation_fee"`
	RefundAmount       *float64 `gorm:"column:refund_amount" json:"refund_amount,omitempty"`
	Currency           string   `gorm:"column:currency;size:8" json:"currency,omitempty"`
}
