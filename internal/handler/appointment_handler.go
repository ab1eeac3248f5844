package handler

import (
	"errors"
	"net/http"
	"strconv"

	"clinic-management-backend/internal/service"
	"clinic-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	appointmentService *service.AppointmentService
}

func NewAppointmentHandler(appointmentService *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentService: appointmentService,
	}
}

type ScheduleRequest struct {
	DoctorID  uint   `json:"doctor_id" binding:"required"`
	PatientID uint   `json:"patient_id"`
	Date      string `json:"date" binding:"required,datetime=2006-01-02"`
	Time      string `json:"time" binding:"required,datetime=15:04"`
	Duration  int    `json:"duration" binding:"omitempty,gt=0"`
	Notes     string `json:"notes"`
}

type RescheduleRequest struct {
	Date     string `json:"date" binding:"required,datetime=2006-01-02"`
	Time     string `json:"time" binding:"required,datetime=15:04"`
	Duration int    `json:"duration" binding:"omitempty,gt=0"`
}

// List returns the caller's appointments with costs attached
func (h *AppointmentHandler) List(c *gin.Context) {
	userID, role, ok := currentIdentity(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	appointments, err := h.appointmentService.List(userID, role)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch appointments")
		return
	}

	utils.SuccessResponse(c, appointments)
}

// Schedule books a new appointment
func (h *AppointmentHandler) Schedule(c *gin.Context) {
	userID, role, ok := currentIdentity(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	appointment, err := h.appointmentService.Schedule(userID, role, service.ScheduleInput{
		DoctorID:  req.DoctorID,
		PatientID: req.PatientID,
		Date:      req.Date,
		Time:      req.Time,
		Duration:  req.Duration,
		Notes:     req.Notes,
	})
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.CreatedResponse(c, appointment)
}

// Cancel marks an appointment as canceled
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	userID, role, ok := currentIdentity(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	id, err := parseID(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid appointment id")
		return
	}

	appointment, err := h.appointmentService.Cancel(userID, role, id)
	if err != nil {
		respondAppointmentError(c, err)
		return
	}

	utils.SuccessResponse(c, appointment)
}

// Reschedule moves an appointment to a new slot
func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	userID, role, ok := currentIdentity(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	id, err := parseID(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid appointment id")
		return
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	appointment, err := h.appointmentService.Reschedule(userID, role, id, service.RescheduleInput{
		Date:     req.Date,
		Time:     req.Time,
		Duration: req.Duration,
	})
	if err != nil {
		respondAppointmentError(c, err)
		return
	}

	utils.SuccessResponse(c, appointment)
}

// MarkPaid sets the payment flag and stamps the payment date
func (h *AppointmentHandler) MarkPaid(c *gin.Context) {
	userID, role, ok := currentIdentity(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	id, err := parseID(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid appointment id")
		return
	}

	appointment, err := h.appointmentService.MarkPaid(userID, role, id)
	if err != nil {
		respondAppointmentError(c, err)
		return
	}

	utils.SuccessResponse(c, appointment)
}

// Billing returns appointments with cost and payment state
func (h *AppointmentHandler) Billing(c *gin.Context) {
	userID, role, ok := currentIdentity(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	items, err := h.appointmentService.Billing(userID, role)
	if err != nil {
		utils.ErrorResponse(c, http.StatusForbidden, err.Error())
		return
	}

	utils.SuccessResponse(c, items)
}

// Dashboard returns the role-branching summary
func (h *AppointmentHandler) Dashboard(c *gin.Context) {
	userID, role, ok := currentIdentity(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	summary, err := h.appointmentService.Dashboard(userID, role)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to build dashboard")
		return
	}

	utils.SuccessResponse(c, summary)
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}

// respondAppointmentError maps service errors onto the error taxonomy:
// not-found, authorization failure, or business-rule rejection.
func respondAppointmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAppointmentNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrNotAllowed):
		utils.ErrorResponse(c, http.StatusForbidden, err.Error())
	default:
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
	}
}
