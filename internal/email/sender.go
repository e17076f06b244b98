package email

import (
	"fmt"
	"html"

	"membrostotal_backend/internal/config"

	"gopkg.in/gomail.v2"
)

// Sender delivers transactional mail over SMTP. It is best-effort:
// callers log failures and never fail the request because of mail.
type Sender struct {
	cfg *config.Config
}

func NewSender(cfg *config.Config) *Sender {
	return &Sender{cfg: cfg}
}

// Enabled reports whether SMTP delivery is configured.
func (s *Sender) Enabled() bool {
	return s.cfg.Mail.Enabled && s.cfg.Mail.SMTPHost != ""
}

func (s *Sender) Send(to, subject, body string) error {
	if !s.Enabled() {
		return fmt.Errorf("mail delivery is disabled")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.Mail.FromEmail)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		s.cfg.Mail.SMTPHost,
		s.cfg.Mail.SMTPPort,
		s.cfg.Mail.SMTPUser,
		s.cfg.Mail.SMTPPassword,
	)

	return d.DialAndSend(m)
}

// NotifyAdminExpertRequest alerts the back-office inbox about a new
// expert intake submission.
func (s *Sender) NotifyAdminExpertRequest(name, candidateEmail string) error {
	if s.cfg.Mail.AdminEmail == "" {
		return fmt.Errorf("admin email not configured")
	}
	subject := "Nova solicitação de expert"
	return s.Send(s.cfg.Mail.AdminEmail, subject, expertRequestBody(name, candidateEmail))
}

// expertRequestBody builds the HTML body. Name and email come straight
// from the public intake form, so both are escaped.
func expertRequestBody(name, candidateEmail string) string {
	return fmt.Sprintf(
		"<p>Uma nova solicitação de expert foi recebida.</p><p><b>Nome:</b> %s<br><b>E-mail:</b> %s</p>",
		html.EscapeString(name), html.EscapeString(candidateEmail),
	)
}
