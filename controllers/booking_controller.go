package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"booking-gateway/lifecycle"
	"booking-gateway/services"
	"booking-gateway/supplier"
	"booking-gateway/utils"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type CancelBookingPayload struct {
	ConfirmationNumber string `json:"ConfirmationNumber"`
}

// ---------------------------
// Controller
// ---------------------------

// BookingController serves the persisted booking trail and the standalone
// cancel path (cancellation by confirmation number, independent of any live
// session).
type BookingController struct {
	Supplier   *supplier.Client
	BookingSvc *services.BookingService
	Policy     lifecycle.CancelPolicy
}

func NewBookingController(client *supplier.Client, bookingSvc *services.BookingService, policy lifecycle.CancelPolicy) *BookingController {
	return &BookingController{Supplier: client, BookingSvc: bookingSvc, Policy: policy}
}

// List returns recorded bookings, newest first.
func (ctrl *BookingController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	records, err := ctrl.BookingSvc.List(limit)
	if err != nil {
		utils.JSONErrorCode(c, http.StatusInternalServerError, "error.internal", err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, records)
}

// Get looks a recorded booking up by confirmation number.
func (ctrl *BookingController) Get(c *gin.Context) {
	record, err := ctrl.BookingSvc.GetByConfirmation(c.Param("confirmation"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.JSONErrorCode(c, http.StatusNotFound, "error.bookingNotFound", "no booking with that confirmation number")
		return
	}
	if err != nil {
		utils.JSONErrorCode(c, http.StatusInternalServerError, "error.internal", err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, record)
}

// Cancel reverses a booking by confirmation number. The number is validated
// client-side first; an empty or out-of-policy value never reaches the
// supplier.
func (ctrl *BookingController) Cancel(c *gin.Context) {
	var payload CancelBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorCode(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
		return
	}

	if err := ctrl.Policy.Validate(payload.ConfirmationNumber); err != nil {
		respondError(c, err)
		return
	}

	res, err := ctrl.Supplier.Cancel(c.Request.Context(), payload.ConfirmationNumber)
	if err != nil {
		respondError(c, err)
		return
	}

	if saveErr := ctrl.BookingSvc.MarkCancelled(res); saveErr != nil {
		// The upstream cancellation stands either way.
		utils.JSONErrorCode(c, http.StatusInternalServerError, "error.internal", saveErr.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    res,
		"message": utils.FormatCancellationMessage(res),
	})
}
