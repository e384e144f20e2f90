package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kyd-academy/feedback-api/internal/service"
	"github.com/kyd-academy/feedback-api/internal/week"
	appErrors "github.com/kyd-academy/feedback-api/pkg/errors"
	"github.com/kyd-academy/feedback-api/pkg/response"
)

// WeekHandler exposes the week window and the weekly bulk setup endpoints.
type WeekHandler struct {
	weeks    *week.Calculator
	settings *service.SettingsService
}

// NewWeekHandler constructs handler.
func NewWeekHandler(weeks *week.Calculator, settings *service.SettingsService) *WeekHandler {
	return &WeekHandler{weeks: weeks, settings: settings}
}

// List godoc
// @Summary Selectable exam weeks
// @Description Current week and its two predecessors, most recent first
// @Tags Weeks
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /weeks [get]
func (h *WeekHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.weeks.AvailableWeeks(), nil)
}

// Current godoc
// @Summary Current exam week
// @Tags Weeks
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /weeks/current [get]
func (h *WeekHandler) Current(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.weeks.CurrentWeekInfo(), nil)
}

// Completeness godoc
// @Summary Weekly setup completeness
// @Description Whether every cohort/subject target of the week has grade cutoffs
// @Tags Weeks
// @Produce json
// @Param week query string true "Week label"
// @Success 200 {object} response.Envelope
// @Router /weeks/completeness [get]
func (h *WeekHandler) Completeness(c *gin.Context) {
	complete, err := h.settings.WeekCompleteness(c.Request.Context(), c.Query("week"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"week": c.Query("week"), "complete": complete}, nil)
}

// SetCuts godoc
// @Summary Bulk weekly cutoff setup
// @Tags Weeks
// @Accept json
// @Produce json
// @Param payload body service.WeekCutsRequest true "Cutoffs for all five targets"
// @Success 200 {object} response.Envelope
// @Router /weeks/cuts [put]
func (h *WeekHandler) SetCuts(c *gin.Context) {
	var req service.WeekCutsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	if err := h.settings.SetWeekCuts(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"week": req.Week}, nil)
}
