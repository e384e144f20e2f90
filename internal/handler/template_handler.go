package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kyd-academy/feedback-api/internal/models"
	"github.com/kyd-academy/feedback-api/internal/service"
	appErrors "github.com/kyd-academy/feedback-api/pkg/errors"
	"github.com/kyd-academy/feedback-api/pkg/response"
)

// TemplateHandler exposes the editable message template.
type TemplateHandler struct {
	messages *service.MessageService
}

// NewTemplateHandler constructs handler.
func NewTemplateHandler(messages *service.MessageService) *TemplateHandler {
	return &TemplateHandler{messages: messages}
}

// Get godoc
// @Summary Get the message template
// @Tags Template
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /template [get]
func (h *TemplateHandler) Get(c *gin.Context) {
	tpl, err := h.messages.GetTemplate(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, tpl, nil)
}

// Save godoc
// @Summary Replace the message template
// @Tags Template
// @Accept json
// @Produce json
// @Param payload body models.MessageTemplate true "Template payload"
// @Success 200 {object} response.Envelope
// @Router /template [put]
func (h *TemplateHandler) Save(c *gin.Context) {
	var tpl models.MessageTemplate
	if err := c.ShouldBindJSON(&tpl); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	saved, err := h.messages.SaveTemplate(c.Request.Context(), tpl)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, saved, nil)
}
