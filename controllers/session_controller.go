package controllers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"booking-gateway/lifecycle"
	"booking-gateway/services"
	"booking-gateway/supplier"
	"booking-gateway/utils"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type SelectRoomPayload struct {
	BookingCode string `json:"bookingCode" binding:"required"`
	RoomIndex   *int   `json:"roomIndex" binding:"required"`
}

type DeselectRoomPayload struct {
	SelectionID string `json:"selectionId" binding:"required"`
}

type PrebookPayload struct {
	PaymentMode string `json:"paymentMode"`
}

type BookPayload struct {
	Title            string                  `json:"title"`
	FirstName        string                  `json:"firstName" binding:"required"`
	LastName         string                  `json:"lastName" binding:"required"`
	Email            string                  `json:"email" binding:"required,email"`
	Phone            int64                   `json:"phone"`
	Nationality      string                  `json:"nationality"`
	AdditionalGuests []supplier.CustomerName `json:"additionalGuests"`
}

// ---------------------------
// Controller
// ---------------------------

// SessionController drives the booking lifecycle over HTTP. Each endpoint is
// a thin DTO mapping onto one coordinator operation; all sequencing rules
// live in the lifecycle package.
type SessionController struct {
	Coordinator *lifecycle.Coordinator
	BookingSvc  *services.BookingService
	Logger      *slog.Logger
}

func NewSessionController(coordinator *lifecycle.Coordinator, bookingSvc *services.BookingService, logger *slog.Logger) *SessionController {
	return &SessionController{Coordinator: coordinator, BookingSvc: bookingSvc, Logger: logger}
}

// CreateSession starts a fresh Idle session.
func (ctrl *SessionController) CreateSession(c *gin.Context) {
	session := ctrl.Coordinator.Store().Create()
	utils.JSONSuccess(c, http.StatusCreated, session.Snapshot())
}

// GetSession returns the current session view.
func (ctrl *SessionController) GetSession(c *gin.Context) {
	session, err := ctrl.Coordinator.Store().Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, session.Snapshot())
}

// Search runs an availability search for the session.
func (ctrl *SessionController) Search(c *gin.Context) {
	var req supplier.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONErrorCode(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
		return
	}

	snap, err := ctrl.Coordinator.Search(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, snap)
}

// SelectRoom adds one selection. At capacity the coordinator no-ops and the
// unchanged snapshot comes back; the client is expected to check capacity
// before offering the action.
func (ctrl *SessionController) SelectRoom(c *gin.Context) {
	var payload SelectRoomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorCode(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
		return
	}

	snap, err := ctrl.Coordinator.Select(c.Param("id"), payload.BookingCode, *payload.RoomIndex)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, snap)
}

// DeselectRoom removes one selection by its selection ID.
func (ctrl *SessionController) DeselectRoom(c *gin.Context) {
	var payload DeselectRoomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorCode(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
		return
	}

	snap, err := ctrl.Coordinator.Deselect(c.Param("id"), payload.SelectionID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, snap)
}

// Prebook revalidates the whole selection set.
func (ctrl *SessionController) Prebook(c *gin.Context) {
	var payload PrebookPayload
	if err := c.ShouldBindJSON(&payload); err != nil && c.Request.ContentLength > 0 {
		utils.JSONErrorCode(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
		return
	}

	snap, err := ctrl.Coordinator.PrebookAll(c.Request.Context(), c.Param("id"), payload.PaymentMode)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, snap)
}

// Book commits the prebooked selection and records the confirmed booking.
func (ctrl *SessionController) Book(c *gin.Context) {
	var payload BookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorCode(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
		return
	}

	guest := lifecycle.GuestDetails{
		Title:            payload.Title,
		FirstName:        payload.FirstName,
		LastName:         payload.LastName,
		Email:            payload.Email,
		Phone:            payload.Phone,
		Nationality:      payload.Nationality,
		AdditionalGuests: payload.AdditionalGuests,
	}

	snap, err := ctrl.Coordinator.Book(c.Request.Context(), c.Param("id"), guest)
	if err != nil {
		respondError(c, err)
		return
	}

	record, err := services.RecordFromSession(snap, guest)
	if err == nil {
		if saveErr := ctrl.BookingSvc.Save(record); saveErr != nil {
			// The upstream booking stands; losing the local record is
			// log-worthy but must not fail the request.
			ctrl.Logger.Error("failed to record booking",
				"confirmation_number", snap.Booking.ConfirmationNumber,
				"error", saveErr,
			)
		} else {
			go func() {
				_ = utils.SendBookingConfirmationEmail(
					guest.Email,
					guest.FirstName+" "+guest.LastName,
					record.ConfirmationNumber,
					record.HotelName,
					record.TotalFare,
					record.Currency,
				)
			}()
		}
	}

	utils.JSONSuccess(c, http.StatusOK, snap)
}

// Cancel reverses the session's committed booking.
func (ctrl *SessionController) Cancel(c *gin.Context) {
	snap, err := ctrl.Coordinator.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	if snap.Cancellation != nil {
		if saveErr := ctrl.BookingSvc.MarkCancelled(snap.Cancellation); saveErr != nil {
			ctrl.Logger.Error("failed to record cancellation",
				"confirmation_number", snap.Cancellation.ConfirmationNumber,
				"error", saveErr,
			)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    snap,
		"message": utils.FormatCancellationMessage(snap.Cancellation),
	})
}
