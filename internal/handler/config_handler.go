package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kyd-academy/feedback-api/internal/models"
	"github.com/kyd-academy/feedback-api/internal/service"
	appErrors "github.com/kyd-academy/feedback-api/pkg/errors"
	"github.com/kyd-academy/feedback-api/pkg/response"
)

// ConfigHandler exposes exam configuration endpoints.
type ConfigHandler struct {
	settings *service.SettingsService
}

// NewConfigHandler constructs handler.
func NewConfigHandler(settings *service.SettingsService) *ConfigHandler {
	return &ConfigHandler{settings: settings}
}

func bindQuery(c *gin.Context) service.ConfigQuery {
	return service.ConfigQuery{
		GradeLevel: models.GradeLevel(c.Query("gradeLevel")),
		Week:       c.Query("week"),
		Subject:    models.SubjectType(c.Query("subject")),
	}
}

// Get godoc
// @Summary Get exam configuration
// @Tags Configs
// @Produce json
// @Param gradeLevel query string true "Cohort" Enums(middle3_high1, high2, high3)
// @Param week query string true "Week label"
// @Param subject query string false "Elective subject" Enums(language_media, speech_writing)
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /configs [get]
func (h *ConfigHandler) Get(c *gin.Context) {
	cfg, err := h.settings.GetConfig(c.Request.Context(), bindQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, cfg, nil)
}

// Editor godoc
// @Summary Get exam configuration for editing
// @Description Returns the stored config, or a fresh default when none exists
// @Tags Configs
// @Produce json
// @Param gradeLevel query string true "Cohort" Enums(middle3_high1, high2, high3)
// @Param week query string true "Week label"
// @Param subject query string false "Elective subject" Enums(language_media, speech_writing)
// @Success 200 {object} response.Envelope
// @Router /configs/editor [get]
func (h *ConfigHandler) Editor(c *gin.Context) {
	cfg, err := h.settings.EditorConfig(c.Request.Context(), bindQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, cfg, nil)
}

// Save godoc
// @Summary Save full exam configuration
// @Description Full-record save; shared-range explanations sync to the sibling subject
// @Tags Configs
// @Accept json
// @Produce json
// @Param payload body models.ExamConfig true "Exam configuration"
// @Success 200 {object} response.Envelope
// @Router /configs [put]
func (h *ConfigHandler) Save(c *gin.Context) {
	var cfg models.ExamConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	saved, err := h.settings.SaveConfig(c.Request.Context(), &cfg)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, saved, nil)
}

// UpsertExplanation godoc
// @Summary Add or replace one explanation
// @Tags Configs
// @Accept json
// @Produce json
// @Param payload body service.UpsertExplanationRequest true "Explanation payload"
// @Success 200 {object} response.Envelope
// @Router /configs/explanations [post]
func (h *ConfigHandler) UpsertExplanation(c *gin.Context) {
	var req service.UpsertExplanationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	cfg, err := h.settings.UpsertExplanation(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, cfg, nil)
}

// DeleteExplanation godoc
// @Summary Delete one explanation
// @Tags Configs
// @Accept json
// @Produce json
// @Param payload body service.DeleteExplanationRequest true "Explanation locator"
// @Success 200 {object} response.Envelope
// @Router /configs/explanations [delete]
func (h *ConfigHandler) DeleteExplanation(c *gin.Context) {
	var req service.DeleteExplanationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	cfg, err := h.settings.DeleteExplanation(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, cfg, nil)
}

// SetDifficulty godoc
// @Summary Set exam difficulty flag
// @Tags Configs
// @Accept json
// @Produce json
// @Param payload body service.SetDifficultyRequest true "Difficulty payload"
// @Success 200 {object} response.Envelope
// @Router /configs/difficulty [put]
func (h *ConfigHandler) SetDifficulty(c *gin.Context) {
	var req service.SetDifficultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	cfg, err := h.settings.SetDifficulty(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, cfg, nil)
}
