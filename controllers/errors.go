package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"booking-gateway/lifecycle"
	"booking-gateway/supplier"
)

// respondError maps the error taxonomy onto HTTP statuses:
//
//	ValidationError        -> 400 (never reached the network)
//	session not found      -> 404
//	invalid transition     -> 409
//	upstream rejection     -> 409, with the Status envelope attached
//	transport failure      -> 502 (retryable as-is)
func respondError(c *gin.Context, err error) {
	var (
		validation *lifecycle.ValidationError
		transition *lifecycle.InvalidTransitionError
		rejection  *supplier.RejectionError
		rejected   *lifecycle.RejectedSelectionError
		transport  *supplier.TransportError
	)

	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   gin.H{"code": "error.validation", "message": validation.Error()},
		})
	case errors.Is(err, lifecycle.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   gin.H{"code": "error.sessionNotFound", "message": "unknown session"},
		})
	case errors.As(err, &transition):
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"error":   gin.H{"code": "error.invalidTransition", "message": transition.Error()},
		})
	case errors.As(err, &rejected):
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"error": gin.H{
				"code":             "error.roomsUnavailable",
				"message":          rejected.Error(),
				"unavailableRooms": rejected.Codes,
			},
		})
	case errors.As(err, &rejection):
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "error.upstreamRejected",
				"message": rejection.Status.Description,
				"status":  rejection.Status,
			},
		})
	case errors.As(err, &transport):
		c.JSON(http.StatusBadGateway, gin.H{
			"success": false,
			"error":   gin.H{"code": "error.upstreamUnreachable", "message": "supplier request failed, please retry"},
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   gin.H{"code": "error.internal", "message": err.Error()},
		})
	}
}
