package handler

import (
	"errors"
	"net/http"

	"clinic-management-backend/internal/repository"
	"clinic-management-backend/internal/service"
	"clinic-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type RateHandler struct {
	rateService *service.RateService
}

func NewRateHandler(rateService *service.RateService) *RateHandler {
	return &RateHandler{
		rateService: rateService,
	}
}

type RateRequest struct {
	RatePerHour float64 `json:"rate_per_hour" binding:"required,gt=0"`
}

// Get returns the authenticated doctor's hourly rate
func (h *RateHandler) Get(c *gin.Context) {
	userID, _, ok := currentIdentity(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	rate, err := h.rateService.Get(userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "No rate on file")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch rate")
		return
	}

	utils.SuccessResponse(c, rate)
}

// Set upserts the authenticated doctor's hourly rate
func (h *RateHandler) Set(c *gin.Context) {
	userID, _, ok := currentIdentity(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Rate per hour must be greater than zero")
		return
	}

	rate, err := h.rateService.Set(userID, req.RatePerHour)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.SuccessResponse(c, rate)
}
