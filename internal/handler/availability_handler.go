package handler

import (
	"net/http"

	"clinic-management-backend/internal/service"
	"clinic-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availabilityService *service.AvailabilityService
}

func NewAvailabilityHandler(availabilityService *service.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityService: availabilityService,
	}
}

// AvailabilityRequest sets one weekday's window. DayOfWeek is a pointer so
// Monday (0) survives required-field validation.
type AvailabilityRequest struct {
	DayOfWeek   *int   `json:"day_of_week" binding:"required,gte=0,lte=6"`
	StartTime   string `json:"start_time" binding:"required,datetime=15:04"`
	EndTime     string `json:"end_time" binding:"required,datetime=15:04"`
	IsAvailable *bool  `json:"is_available"`
}

// List returns the authenticated doctor's availability rows
func (h *AvailabilityHandler) List(c *gin.Context) {
	userID, _, ok := currentIdentity(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	rows, err := h.availabilityService.List(userID)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch availability")
		return
	}

	utils.SuccessResponse(c, rows)
}

// Set upserts one weekday's availability window for the authenticated doctor
func (h *AvailabilityHandler) Set(c *gin.Context) {
	userID, _, ok := currentIdentity(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	row, err := h.availabilityService.Set(userID, service.AvailabilityInput{
		DayOfWeek:   *req.DayOfWeek,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		IsAvailable: isAvailable,
	})
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.SuccessResponse(c, row)
}
