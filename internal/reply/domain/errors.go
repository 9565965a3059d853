package domain

import "errors"

var (
	ErrInvalidTone      = errors.New("tone must be 'formal' or 'casual'")
	ErrInvalidLimit     = errors.New("limit must be a non-negative integer")
	ErrReplyNotFound    = errors.New("reply not found")
	ErrGenerationFailed = errors.New("error generating reply")
	ErrStorageFailed    = errors.New("error storing reply")
)
