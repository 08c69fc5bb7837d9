package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"booking-gateway/services"
	"booking-gateway/utils"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type RegisterPayload struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	FullName    string `json:"fullName" binding:"required"`
	Phone       string `json:"phone"`
	Nationality string `json:"nationality"`
}

type LoginPayload struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ---------------------------
// Controller
// ---------------------------

type CustomerController struct {
	CustomerSvc *services.CustomerService
}

func NewCustomerController(svc *services.CustomerService) *CustomerController {
	return &CustomerController{CustomerSvc: svc}
}

func (ctrl *CustomerController) Register(c *gin.Context) {
	var payload RegisterPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorCode(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
		return
	}

	customer, err := ctrl.CustomerSvc.Register(payload.Email, payload.Password, payload.FullName, payload.Phone, payload.Nationality)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			utils.JSONErrorCode(c, http.StatusConflict, "error.emailTaken", err.Error())
			return
		}
		utils.JSONErrorCode(c, http.StatusBadRequest, "error.validation", err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, customer)
}

func (ctrl *CustomerController) Login(c *gin.Context) {
	var payload LoginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorCode(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
		return
	}

	customer, err := ctrl.CustomerSvc.Login(payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.JSONErrorCode(c, http.StatusUnauthorized, "error.invalidCredentials", err.Error())
			return
		}
		utils.JSONErrorCode(c, http.StatusInternalServerError, "error.internal", err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, customer)
}
