package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kyd-academy/feedback-api/internal/service"
	appErrors "github.com/kyd-academy/feedback-api/pkg/errors"
	"github.com/kyd-academy/feedback-api/pkg/response"
)

// MessageHandler exposes message composition and the feedback record history.
type MessageHandler struct {
	messages *service.MessageService
	metrics  *service.MetricsService
}

// NewMessageHandler constructs handler.
func NewMessageHandler(messages *service.MessageService, metrics *service.MetricsService) *MessageHandler {
	return &MessageHandler{messages: messages, metrics: metrics}
}

// Preview godoc
// @Summary Compose a feedback message without recording it
// @Tags Messages
// @Accept json
// @Produce json
// @Param payload body service.ComposeRequest true "Student entry"
// @Success 200 {object} response.Envelope
// @Router /messages/preview [post]
func (h *MessageHandler) Preview(c *gin.Context) {
	var req service.ComposeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.messages.Preview(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Compose godoc
// @Summary Compose a feedback message and record it
// @Tags Messages
// @Accept json
// @Produce json
// @Param payload body service.ComposeRequest true "Student entry"
// @Success 201 {object} response.Envelope
// @Router /messages [post]
func (h *MessageHandler) Compose(c *gin.Context) {
	var req service.ComposeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.messages.ComposeAndRecord(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.metrics.CountMessage()
	response.Created(c, result)
}

// Today godoc
// @Summary Today's feedback records
// @Tags Records
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /records/today [get]
func (h *MessageHandler) Today(c *gin.Context) {
	records, err := h.messages.TodayRecords(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, records, nil)
}

// ByDate godoc
// @Summary Feedback records for a date
// @Tags Records
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /records [get]
func (h *MessageHandler) ByDate(c *gin.Context) {
	records, err := h.messages.RecordsByDate(c.Request.Context(), c.Query("date"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, records, nil)
}

// Delete godoc
// @Summary Delete a feedback record
// @Tags Records
// @Produce json
// @Param id path string true "Record ID"
// @Success 204 "No Content"
// @Failure 404 {object} response.Envelope
// @Router /records/{id} [delete]
func (h *MessageHandler) Delete(c *gin.Context) {
	if err := h.messages.DeleteRecord(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
