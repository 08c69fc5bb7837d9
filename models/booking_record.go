package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BookingRecord is the persisted outcome of a committed booking. The live
// flow runs in memory per session; only confirmed bookings (and their
// cancellations) survive the process.
type BookingRecord struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	SessionID          string `gorm:"column:session_id;size:64;index" json:"session_id"`
	ConfirmationNumber string `gorm:"column:confirmation_number;size:64;uniqueIndex" json:"confirmation_number"`
	ClientReferenceID  string `gorm:"column:client_reference_id;size:64" json:"client_reference_id"`
	BookingCode        string `gorm:"column:booking_code;size:255" json:"booking_code"`
	InvoiceNumber      string `gorm:"column:invoice_number;size:64" json:"invoice_number,omitempty"`

	HotelCode string     `gorm:"column:hotel_code;size:32" json:"hotel_code"`
	HotelName string     `gorm:"column:hotel_name;size:255" json:"hotel_name"`
	CheckIn   *time.Time `gorm:"column:check_in" json:"check_in,omitempty"`
	CheckOut  *time.Time `gorm:"column:check_out" json:"check_out,omitempty"`

	Status     string  `gorm:"column:status;size:32" json:"status"`
	TotalFare  float64 `gorm:"column:total_fare" json:"total_fare"`
	Currency   string  `gorm:"column:currency;size:8" json:"currency"`
	GuestEmail string  `gorm:"column:guest_email;size:255" json:"guest_email"`

	Rooms  datatypes.JSON `gorm:"column:rooms" json:"rooms,omitempty"`
	Guests datatypes.JSON `gorm:"column:guests" json:"guests,omitempty"`
}
