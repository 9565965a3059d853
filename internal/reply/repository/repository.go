package repository

import (
	"context"

	"email-responder-backend/internal/reply/domain"
)

// ReplyRepository defines the interface for reply data access
type ReplyRepository interface {
	// Create inserts a new reply record; the store assigns ID and CreatedAt
	Create(ctx context.Context, reply *domain.EmailReply) error

	// FindLatest returns up to limit records, newest first
	FindLatest(ctx context.Context, limit int) ([]domain.EmailReply, error)

	// FindByID finds a reply by its ID, returning nil when absent
	FindByID(ctx context.Context, id uint) (*domain.EmailReply, error)
}
