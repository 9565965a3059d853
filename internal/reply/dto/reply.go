package dto

import (
	"time"

	"email-responder-backend/internal/reply/domain"
)

// GenerateReplyRequest is the body of POST /generate-reply. Tone defaults
// to "formal" when omitted; an empty email_text is accepted.
type GenerateReplyRequest struct {
	EmailText string `json:"email_text"`
	Tone      string `json:"tone"`
}

// ReplyResponse mirrors a generated reply on the wire. ID and CreatedAt
// are only present for records that went through the store.
type ReplyResponse struct {
	ID            uint       `json:"id,omitempty"`
	ReceivedEmail string     `json:"received_email"`
	Tone          string     `json:"tone"`
	Reply         string     `json:"reply"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
}

// NewReplyResponse maps a domain record to its response shape
func NewReplyResponse(reply *domain.EmailReply) ReplyResponse {
	resp := ReplyResponse{
		ID:            reply.ID,
		ReceivedEmail: reply.EmailText,
		Tone:          string(reply.Tone),
		Reply:         reply.ReplyText,
	}
	if !reply.CreatedAt.IsZero() {
		createdAt := reply.CreatedAt
		resp.CreatedAt = &createdAt
	}
	return resp
}

// NewReplyResponseList maps a slice of domain records, preserving order
func NewReplyResponseList(replies []domain.EmailReply) []ReplyResponse {
	out := make([]ReplyResponse, 0, len(replies))
	for i := range replies {
		out = append(out, NewReplyResponse(&replies[i]))
	}
	return out
}
