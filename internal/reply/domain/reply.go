package domain

import "time"

// Tone represents the register of a generated reply
type Tone string

const (
	ToneFormal Tone = "formal"
	ToneCasual Tone = "casual"
)

// IsValid reports whether the tone is one of the recognized values.
// Matching is exact and case-sensitive.
func (t Tone) IsValid() bool {
	return t == ToneFormal || t == ToneCasual
}

// EmailReply represents one generated reply to a submitted email.
// ID and CreatedAt are assigned by the store on insert and stay zero
// in stateless mode. Records are immutable once created.
type EmailReply struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	EmailText string    `json:"email_text" gorm:"type:text;not null"`
	Tone      Tone      `json:"tone" gorm:"type:varchar(50);not null"`
	ReplyText string    `json:"reply_text" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for EmailReply
func (EmailReply) TableName() string {
	return "email_replies"
}
