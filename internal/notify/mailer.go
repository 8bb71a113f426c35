package notify

import (
	"context"
	"fmt"
	"log"

	"labfeedback-backend/internal/models"

	"github.com/resend/resend-go/v2"
)

// Mailer sends the completion email through Resend. When no API key is
// configured it logs the notice instead, so local development works without
// an account.
type Mailer struct {
	apiKey string
	from   string
}

func NewMailer(apiKey, from string) *Mailer {
	return &Mailer{apiKey: apiKey, from: from}
}

func (m *Mailer) CompletionNotice(ctx context.Context, user *models.User) error {
	if m.apiKey == "" {
		log.Printf("📧 [Dev Mode] Completion notice for %s (%d products reviewed)",
			user.Email, len(user.CompletedFeedback))
		return nil
	}

	client := resend.NewClient(m.apiKey)

	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{user.Email},
		Subject: "You completed the lab tour! 🏆",
		Html: fmt.Sprintf(`
			<div style="font-family: sans-serif; max-width: 480px; margin: 0 auto; padding: 24px;">
				<h2 style="color: #333;">Congratulations! 🎉</h2>
				<p>You reviewed all %d products and unlocked your reward.</p>
				<p>Head back to the app to claim it.</p>
				<p style="color: #aaa; font-size: 12px;">
					You are receiving this because you submitted feedback at our labs.
				</p>
			</div>
		`, models.CompletionThreshold),
	}

	sent, err := client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send completion email: %w", err)
	}
	log.Printf("📧 Completion email sent to %s (ID: %s)", user.Email, sent.Id)
	return nil
}
