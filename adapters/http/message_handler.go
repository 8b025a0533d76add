package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	messageUC "github.com/sachin22-web/sachin-portfolio/internal/application/usecase/message"
	"github.com/sachin22-web/sachin-portfolio/pkg/apperror"
	"github.com/sachin22-web/sachin-portfolio/pkg/logger"
)

type MessageHandler struct {
	messageUseCase *messageUC.UseCase
	logger         logger.Logger
}

func NewMessageHandler(uc *messageUC.UseCase, log logger.Logger) *MessageHandler {
	return &MessageHandler{
		messageUseCase: uc,
		logger:         log,
	}
}

// SubmitMessage is the public contact-form endpoint. It sits behind the
// rate-limit middleware.
func (h *MessageHandler) SubmitMessage(c *gin.Context) {
	var req SubmitMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	m, err := h.messageUseCase.Submit(c.Request.Context(), messageUC.SubmitInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Message,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message_id": m.ID})
}

func (h *MessageHandler) MarkMessageRead(c *gin.Context) {
	messageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid message ID", err))
		return
	}
	if err := h.messageUseCase.MarkRead(c.Request.Context(), messageID); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MessageHandler) DeleteMessage(c *gin.Context) {
	messageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid message ID", err))
		return
	}
	if err := h.messageUseCase.Delete(c.Request.Context(), messageID); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MessageHandler) ListMessages(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	messages, err := h.messageUseCase.List(c.Request.Context(), limit, offset)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}
