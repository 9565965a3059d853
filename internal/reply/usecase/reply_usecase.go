package usecase

import (
	"context"
	"fmt"
	"time"

	"email-responder-backend/internal/reply/domain"
	"email-responder-backend/internal/reply/prompt"
	"email-responder-backend/internal/reply/repository"
	"email-responder-backend/pkg/ai"
	"email-responder-backend/pkg/metrics"

	"go.uber.org/zap"
)

// maxHistoryLimit caps history listing. Limits above it are clamped,
// not rejected.
const maxHistoryLimit = 100

// replyUsecase implements ReplyUsecase interface
type replyUsecase struct {
	replyRepo repository.ReplyRepository // nil in stateless mode
	generator ai.ReplyGenerator
	logger    *zap.Logger
}

// NewReplyUsecase creates a new instance of replyUsecase. A nil repository
// selects stateless mode: generated replies are returned but never stored,
// and history lookups report ErrStorageFailed.
func NewReplyUsecase(replyRepo repository.ReplyRepository, generator ai.ReplyGenerator, logger *zap.Logger) ReplyUsecase {
	return &replyUsecase{
		replyRepo: replyRepo,
		generator: generator,
		logger:    logger,
	}
}

func (u *replyUsecase) GenerateReply(ctx context.Context, emailText, tone string) (*domain.EmailReply, error) {
	// The request schema declares "formal" as the default tone. JSON binding
	// cannot tell an omitted field from an empty one, so both default here.
	if tone == "" {
		tone = string(domain.ToneFormal)
	}

	t := domain.Tone(tone)
	if !t.IsValid() {
		// the tone label stays a closed set; client input never reaches it
		metrics.IncrementRepliesGenerated("invalid", "invalid_tone")
		return nil, domain.ErrInvalidTone
	}

	p := prompt.Build(emailText, t)

	start := time.Now()
	replyText, err := u.generator.GenerateReply(ctx, p)
	if err != nil {
		metrics.RecordGenerationDuration(u.generator.Name(), "error", time.Since(start))
		metrics.IncrementRepliesGenerated(tone, "generation_failed")
		u.logger.Error("reply generation failed",
			zap.String("provider", u.generator.Name()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}
	metrics.RecordGenerationDuration(u.generator.Name(), "success", time.Since(start))

	reply := &domain.EmailReply{
		EmailText: emailText,
		Tone:      t,
		ReplyText: replyText,
	}

	if u.replyRepo != nil {
		if err := u.replyRepo.Create(ctx, reply); err != nil {
			metrics.IncrementRepliesGenerated(tone, "storage_failed")
			u.logger.Error("reply insert failed", zap.Error(err))
			return nil, fmt.Errorf("%w: %v", domain.ErrStorageFailed, err)
		}
	}

	metrics.IncrementRepliesGenerated(tone, "success")
	return reply, nil
}

func (u *replyUsecase) ListReplies(ctx context.Context, limit int) ([]domain.EmailReply, error) {
	if limit < 0 {
		return nil, domain.ErrInvalidLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	if u.replyRepo == nil {
		return nil, fmt.Errorf("%w: history storage not configured", domain.ErrStorageFailed)
	}

	replies, err := u.replyRepo.FindLatest(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageFailed, err)
	}
	return replies, nil
}

func (u *replyUsecase) GetReplyByID(ctx context.Context, id uint) (*domain.EmailReply, error) {
	if u.replyRepo == nil {
		return nil, fmt.Errorf("%w: history storage not configured", domain.ErrStorageFailed)
	}

	reply, err := u.replyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageFailed, err)
	}
	if reply == nil {
		return nil, domain.ErrReplyNotFound
	}
	return reply, nil
}
