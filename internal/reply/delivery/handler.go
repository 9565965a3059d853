package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"email-responder-backend/internal/reply/domain"
	"email-responder-backend/internal/reply/dto"
	"email-responder-backend/internal/reply/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReplyHandler handles reply-related HTTP requests
type ReplyHandler struct {
	replyUsecase usecase.ReplyUsecase
	logger       *zap.Logger
}

// NewReplyHandler creates a new ReplyHandler
func NewReplyHandler(replyUsecase usecase.ReplyUsecase, logger *zap.Logger) *ReplyHandler {
	return &ReplyHandler{
		replyUsecase: replyUsecase,
		logger:       logger,
	}
}

// GenerateReply generates an AI-powered reply to the submitted email
// POST /generate-reply
func (h *ReplyHandler) GenerateReply(c *gin.Context) {
	var req dto.GenerateReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := h.replyUsecase.GenerateReply(c.Request.Context(), req.EmailText, req.Tone)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewReplyResponse(reply))
}

// GetHistory returns the most recent replies, newest first
// GET /history?limit=10
func (h *ReplyHandler) GetHistory(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrInvalidLimit.Error()})
		return
	}

	replies, err := h.replyUsecase.ListReplies(c.Request.Context(), limit)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewReplyResponseList(replies))
}

// GetReplyByID returns a single reply from the history
// GET /history/:id
func (h *ReplyHandler) GetReplyByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return
	}

	reply, err := h.replyUsecase.GetReplyByID(c.Request.Context(), uint(id))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewReplyResponse(reply))
}

// respondError converts domain errors to HTTP status codes. Every error
// body carries the full message, including the underlying cause.
func (h *ReplyHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidTone) || errors.Is(err, domain.ErrInvalidLimit):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrReplyNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.logger.Error("request failed",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
