package models

import (
	"time"

	"gorm.io/gorm"
)

type Customer struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Email        string `gorm:"column:email;size:255;uniqueIndex" json:"email"`
	PasswordHash string `gorm:"column:password_hash;size:255" json:"-"`
	FullName     string `gorm:"column:full_name;size:255" json:"full_name"`
	Phone        string `gorm:"column:phone;size:32" json:"phone,omitempty"`
	Nationality  string `gorm:"column:nationality;size:8" json:"nationality,omitempty"`
}
