package repository

import (
	"context"

	"email-responder-backend/internal/reply/domain"

	"gorm.io/gorm"
)

// gormReplyRepository implements ReplyRepository using GORM
type gormReplyRepository struct {
	db *gorm.DB
}

// NewReplyRepository creates a new GORM-based ReplyRepository
func NewReplyRepository(db *gorm.DB) ReplyRepository {
	return &gormReplyRepository{db: db}
}

func (r *gormReplyRepository) Create(ctx context.Context, reply *domain.EmailReply) error {
	// Single-statement insert; the record is either fully written with an
	// assigned id and timestamp, or not written at all.
	return r.db.WithContext(ctx).Create(reply).Error
}

func (r *gormReplyRepository) FindLatest(ctx context.Context, limit int) ([]domain.EmailReply, error) {
	var replies []domain.EmailReply
	// created_at granularity may collide, so id breaks ties
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&replies).Error
	return replies, err
}

func (r *gormReplyRepository) FindByID(ctx context.Context, id uint) (*domain.EmailReply, error) {
	var reply domain.EmailReply
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&reply).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &reply, nil
}
