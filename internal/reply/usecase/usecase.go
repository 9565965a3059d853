package usecase

import (
	"context"

	"email-responder-backend/internal/reply/domain"
)

// ReplyUsecase defines the interface for reply business logic
type ReplyUsecase interface {
	// GenerateReply validates the tone, generates a reply through the AI
	// provider and, in persisted mode, stores the resulting record
	GenerateReply(ctx context.Context, emailText, tone string) (*domain.EmailReply, error)

	// ListReplies returns the most recent replies, newest first
	ListReplies(ctx context.Context, limit int) ([]domain.EmailReply, error)

	// GetReplyByID retrieves a single reply from the history
	GetReplyByID(ctx context.Context, id uint) (*domain.EmailReply, error)
}
