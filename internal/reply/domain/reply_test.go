package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTone_IsValid(t *testing.T) {
	assert.True(t, ToneFormal.IsValid())
	assert.True(t, ToneCasual.IsValid())

	// Matching is exact and case-sensitive
	for _, tone := range []Tone{"", "Formal", "CASUAL", "friendly", " formal"} {
		assert.False(t, tone.IsValid(), "tone %q", tone)
	}
}

func TestEmailReply_TableName(t *testing.T) {
	assert.Equal(t, "email_replies", EmailReply{}.TableName())
}
