package email

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
	"golang.org/x/exp/slog"

	"futuremail/internal/domain/capsule"
	"futuremail/internal/domain/user"
)

// SMTPMailer sends unlock notifications through a plain SMTP account, the
// same transport the original used via its mail library.
type SMTPMailer struct {
	client       *mail.Client
	from         string
	dashboardURL string
	log          *slog.Logger
}

func NewSMTPMailer(host string, port int, username, password, from, dashboardURL string, log *slog.Logger) (*SMTPMailer, error) {
	client, err := mail.NewClient(host,
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(username),
		mail.WithPassword(password),
	)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}

	return &SMTPMailer{
		client:       client,
		from:         from,
		dashboardURL: dashboardURL,
		log:          log.With("component", "smtp_mailer"),
	}, nil
}

func (m *SMTPMailer) SendUnlockEmail(ctx context.Context, to user.User, c capsule.Capsule) error {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("set from address: %w", err)
	}
	if err := msg.To(to.Email); err != nil {
		return fmt.Errorf("set to address: %w", err)
	}

	msg.Subject("Your FutureMail Message Is Unlocked!")
	msg.SetBodyString(mail.TypeTextHTML, fmt.Sprintf(`
		<h3>Hello %s,</h3>
		<p>Your time capsule message "<strong>%s</strong>" is now unlocked!</p>
		<p><strong>Reveal Date:</strong> %s</p>
		<p>View it on your <a href="%s">FutureMail Dashboard</a>.</p>
		<p>Thank you for using FutureMail!</p>`,
		to.Username, c.Title, c.RevealDate.Format("01/02/2006"), m.dashboardURL))

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send unlock email: %w", err)
	}

	m.log.Info("unlock email sent", "email", to.Email, "capsule_id", c.ID)
	return nil
}
