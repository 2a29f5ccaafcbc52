package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/resumehub/resume-ai/internal/application"
	"github.com/resumehub/resume-ai/pkg/response"
)

type ChatHandler struct {
	Svc    *application.ChatService
	Logger *logrus.Logger
}

func NewChatHandler(svc *application.ChatService, logger *logrus.Logger) *ChatHandler {
	return &ChatHandler{Svc: svc, Logger: logger}
}

type chatRequest struct {
	Prompt string `json:"prompt"`
}

// Chat POST /api/chat {prompt}
func (h *ChatHandler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Prompt == "" {
		response.FailLabeled(c, http.StatusBadRequest, "Prompt is required", "", nil)
		return
	}

	text, err := h.Svc.Generate(c.Request.Context(), req.Prompt)
	if err != nil {
		response.FailLabeled(c, http.StatusInternalServerError, "Something went wrong", "", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": text})
}
