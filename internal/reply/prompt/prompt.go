// Package prompt builds the instruction text sent to the AI provider.
// Build is a pure function of its inputs so identical requests always
// produce byte-identical prompts.
package prompt

import (
	"fmt"

	"email-responder-backend/internal/reply/domain"
)

const replyTemplate = `
You are a polite, professional email assistant.

Write the reply in a %s tone. Follow these rules:
- Start with a short greeting.
- Answer the user's questions clearly.
- If something is unclear, ask 1-2 clarifying questions.
- End with a friendly sign-off.
- Keep the reply under 8 sentences.

EMAIL:
%s
`

// Build constructs the reply prompt for the given email and tone.
// The email text is embedded verbatim, with no sanitization or length cap.
func Build(emailText string, tone domain.Tone) string {
	return fmt.Sprintf(replyTemplate, tone, emailText)
}
