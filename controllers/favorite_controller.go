package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"booking-gateway/services"
	"booking-gateway/utils"
)

type ToggleFavoritePayload struct {
	HotelCode string `json:"hotelCode" binding:"required"`
}

type FavoriteController struct {
	Favorites *services.FavoriteService
}

func NewFavoriteController(favorites *services.FavoriteService) *FavoriteController {
	return &FavoriteController{Favorites: favorites}
}

func (ctrl *FavoriteController) List(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, ctrl.Favorites.List())
}

func (ctrl *FavoriteController) Toggle(c *gin.Context) {
	var payload ToggleFavoritePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorCode(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
		return
	}

	favorite, err := ctrl.Favorites.Toggle(payload.HotelCode)
	if err != nil {
		utils.JSONErrorCode(c, http.StatusInternalServerError, "error.internal", err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"hotelCode": payload.HotelCode, "favorite": favorite})
}

func (ctrl *FavoriteController) Clear(c *gin.Context) {
	if err := ctrl.Favorites.Clear(); err != nil {
		utils.JSONErrorCode(c, http.StatusInternalServerError, "error.internal", err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, []string{})
}
