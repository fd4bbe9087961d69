package email

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/resend/resend-go/v2"

	"click2card/internal/domain"
)

// Sender delivers the finished artifact bundle by email through Resend.
// Delivery is best effort from the orchestrator's point of view; a failure
// here is logged upstream and followed up manually.
type Sender struct {
	client *resend.Client
	from   string
}

func New(apiKey, from string) *Sender {
	return &Sender{client: resend.NewClient(apiKey), from: from}
}

// SendBundle emails the card PDF, QR image and vCard file as attachments.
func (s *Sender) SendBundle(ctx context.Context, card domain.BusinessCard, bundle domain.Bundle) error {
	base := attachmentBase(card.FullName)
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{card.Email},
		Subject: "Your Smart Digital Business Card is Ready!",
		Html:    bundleHTML(card),
		Attachments: []*resend.Attachment{
			{Filename: base + "_BusinessCard.pdf", Content: bundle.PDF},
			{Filename: base + "_QRCode.png", Content: bundle.QR},
			{Filename: base + "_Contact.vcf", Content: bundle.VCF},
		},
	}
	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("send bundle email: %w", err)
	}
	return nil
}

// attachmentBase collapses whitespace runs in the customer name to single
// underscores for the attachment filenames.
func attachmentBase(name string) string {
	return strings.Join(strings.Fields(name), "_")
}

func bundleHTML(card domain.BusinessCard) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
  <body style="font-family: sans-serif; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h1>Your Business Card is Ready!</h1>
    <p>Hi <strong>%s</strong>,</p>
    <p>Your smart digital business card for <strong>%s</strong> has been created successfully.</p>
    <p>You'll find 3 files attached to this email:</p>
    <ul>
      <li><strong>Business Card PDF</strong> &mdash; share it digitally</li>
      <li><strong>QR Code</strong> &mdash; print and display for easy contact sharing</li>
      <li><strong>VCF Contact File</strong> &mdash; import directly to any phone</li>
    </ul>
    <p>Need help? Just reply to this email.</p>
  </body>
</html>`, html.EscapeString(card.FullName), html.EscapeString(card.BusinessName))
}
