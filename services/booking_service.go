package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	mysqldrv "github.com/go-sql-driver/mysql"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"booking-gateway/lifecycle"
	"booking-gateway/models"
	"booking-gateway/supplier"
)

// ErrDuplicateBooking is returned when a confirmation number was already
// recorded.
var ErrDuplicateBooking = errors.New("booking already recorded")

// BookingService persists confirmed bookings and cancellations. The live
// booking flow is in-memory; this is the durable trail.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// RecordFromSession builds the durable record for a just-confirmed session.
func RecordFromSession(snap lifecycle.Snapshot, guest lifecycle.GuestDetails) (*models.BookingRecord, error) {
	if snap.Booking == nil {
		return nil, errors.New("session has no confirmed booking")
	}

	rooms, err := json.Marshal(snap.Selections)
	if err != nil {
		return nil, fmt.Errorf("encode selections: %w", err)
	}
	guests, err := json.Marshal(guest)
	if err != nil {
		return nil, fmt.Errorf("encode guest details: %w", err)
	}

	var totalFare float64
	var currency string
	for _, sel := range snap.Selections {
		totalFare += sel.Offer.TotalFare
		if currency == "" {
			currency = sel.Offer.Currency
		}
	}

	record := &models.BookingRecord{
		SessionID:          snap.ID,
		ConfirmationNumber: snap.Booking.ConfirmationNumber,
		ClientReferenceID:  snap.Booking.ClientReferenceId,
		InvoiceNumber:      snap.Booking.InvoiceNumber,
		Status:             "Confirmed",
		TotalFare:          totalFare,
		Currency:           currency,
		GuestEmail:         guest.Email,
		Rooms:              datatypes.JSON(rooms),
		Guests:             datatypes.JSON(guests),
	}
	if t, err := time.Parse("2006-01-02", snap.Criteria.CheckIn); err == nil {
		record.CheckIn = &t
	}
	if t, err := time.Parse("2006-01-02", snap.Criteria.CheckOut); err == nil {
		record.CheckOut = &t
	}
	if len(snap.Selections) > 0 {
		record.BookingCode = snap.Selections[0].BookingCode
		for _, hotel := range snap.Hotels {
			for _, room := range hotel.Rooms {
				if room.BookingCode == record.BookingCode {
					record.HotelCode = hotel.HotelCode
					record.HotelName = hotel.HotelName
				}
			}
		}
	}
	return record, nil
}

// Save inserts a booking record, mapping a MySQL duplicate-key violation on
// the confirmation number to ErrDuplicateBooking.
func (s *BookingService) Save(record *models.BookingRecord) error {
	if err := s.DB.Create(record).Error; err != nil {
		var mysqlErr *mysqldrv.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return ErrDuplicateBooking
		}
		return err
	}
	return nil
}

// GetByConfirmation looks a record up by confirmation number.
func (s *BookingService) GetByConfirmation(confirmationNumber string) (models.BookingRecord, error) {
	var record models.BookingRecord
	err := s.DB.First(&record, "confirmation_number = ?", confirmationNumber).Error
	return record, err
}

// List returns records newest first.
func (s *BookingService) List(limit int) ([]models.BookingRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []models.BookingRecord
	err := s.DB.Order("id desc").Limit(limit).Find(&out).Error
	return out, err
}

// MarkCancelled stores the cancellation outcome and flips the matching
// booking record, if one exists, to Cancelled. The upstream stays the source
// of truth for unknown confirmation numbers.
func (s *BookingService) MarkCancelled(res *supplier.CancelResult) error {
	cancellation := &models.CancellationRecord{
		ConfirmationNumber: res.ConfirmationNumber,
		StatusCode:         res.Status.Code,
		Description:        res.Status.Description,
		CancellationFee:    res.CancellationFee,
		RefundAmount:       res.RefundAmount,
		Currency:           res.Currency,
	}
	if err := s.DB.Create(cancellation).Error; err != nil {
		return err
	}

	return s.DB.Model(&models.BookingRecord{}).
		Where("confirmation_number = ?", res.ConfirmationNumber).
		Updates(map[string]any{"status": "Cancelled", "updated_at": time.Now()}).Error
}
