package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"booking-gateway/supplier"
	"booking-gateway/utils"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type HotelDetailsPayload struct {
	HotelCode string `json:"Hotelcodes" binding:"required"`
}

type RoomDetailsPayload struct {
	BookingCode string `json:"BookingCode" binding:"required"`
}

type HotelCodesPayload struct {
	CityCode string `json:"CityCode" binding:"required"`
}

// ---------------------------
// Controller
// ---------------------------

// HotelController exposes sessionless supplier lookups: availability search
// and the static content endpoints. The lifecycle endpoints under /sessions
// are the stateful path; these are plain passthroughs.
type HotelController struct {
	Supplier *supplier.Client
}

func NewHotelController(client *supplier.Client) *HotelController {
	return &HotelController{Supplier: client}
}

// Search runs a one-shot availability search without a session.
func (ctrl *HotelController) Search(c *gin.Context) {
	var req supplier.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONErrorCode(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
		return
	}

	hotels, err := ctrl.Supplier.SearchHotels(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"hotels": hotels, "count": len(hotels)})
}

// Details returns static hotel content for a hotel code.
func (ctrl *HotelController) Details(c *gin.Context) {
	var payload HotelDetailsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorCode(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
		return
	}

	details, err := ctrl.Supplier.HotelDetails(c.Request.Context(), payload.HotelCode)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, details)
}

// Room returns the priced room behind a booking code.
func (ctrl *HotelController) Room(c *gin.Context) {
	var payload RoomDetailsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorCode(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
		return
	}

	room, err := ctrl.Supplier.RoomDetails(c.Request.Context(), payload.BookingCode)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// Codes lists the supplier's hotel codes for a city.
func (ctrl *HotelController) Codes(c *gin.Context) {
	var payload HotelCodesPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorCode(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
		return
	}

	codes, err := ctrl.Supplier.HotelCodes(c.Request.Context(), payload.CityCode)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, codes)
}
