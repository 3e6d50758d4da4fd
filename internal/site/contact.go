package site

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/mail"
	"net/smtp"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/sanity"
	"github.com/Zachkp/portfolio/internal/sections"
	"github.com/Zachkp/portfolio/internal/store"
)

// ErrMailerNotConfigured is returned when no SMTP credentials are set.
var ErrMailerNotConfigured = errors.New("SMTP credentials not configured")

// errNoRecipient means neither the config nor the CMS names an inbox.
var errNoRecipient = errors.New("no recipient address")

// Mail is one contact form submission on its way to the site owner.
type Mail struct {
	To      string
	Name    string
	Email   string
	Message string
}

// Mailer delivers contact form submissions.
type Mailer interface {
	Send(ctx context.Context, m Mail) error
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPMailer sends mail through an authenticated SMTP relay.
type SMTPMailer struct {
	host string
	port string
	user string
	pass string
	send sendFunc
}

func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		host: cfg.Host,
		port: cfg.Port,
		user: cfg.User,
		pass: cfg.Pass,
		send: smtp.SendMail,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, msg Mail) error {
	if m.user == "" || m.pass == "" {
		return ErrMailerNotConfigured
	}
	if msg.To == "" {
		return errNoRecipient
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	auth := smtp.PlainAuth("", m.user, m.pass, m.host)
	if err := m.send(m.host+":"+m.port, auth, m.user, []string{msg.To}, composeMessage(m.user, msg)); err != nil {
		return fmt.Errorf("sending contact email: %w", err)
	}
	return nil
}

func composeMessage(from string, m Mail) []byte {
	subject := "Portfolio Contact: " + headerValue(m.Name)
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, m.Name, m.Email, m.Message)

	var b strings.Builder
	b.WriteString("To: " + headerValue(m.To) + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("From: " + headerValue(from) + "\r\n")
	if addr, err := mail.ParseAddress(m.Email); err == nil {
		b.WriteString("Reply-To: " + addr.String() + "\r\n")
	}
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	return []byte(b.String())
}

// headerValue keeps user input from starting new header lines.
func headerValue(s string) string {
	return strings.Join(strings.FieldsFunc(s, func(r rune) bool { return r == '\r' || r == '\n' }), " ")
}

type contactForm struct {
	Name    string `form:"fullName" binding:"required,max=200"`
	Email   string `form:"email" binding:"required,email,max=320"`
	Message string `form:"message" binding:"required,max=5000"`
}

const (
	contactSuccess = "Thank you for your message! I'll get back to you soon."
	contactFailed  = "Sorry, there was an error sending your message. Please try again later."
	contactInvalid = "Please check your details and try again."
)

func (s *Server) contactFormPage(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"title": "Contact Me",
	})
}

// submitContact stores the message and then emails it. Either one succeeding
// is enough for the visitor: a stored message can still be read in the admin.
func (s *Server) submitContact(c *gin.Context) {
	var form contactForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "contact-error.html", gin.H{"error": contactInvalid})
		return
	}
	ctx := c.Request.Context()

	id, saveErr := s.store.SaveMessage(ctx, store.Message{
		Name:  form.Name,
		Email: form.Email,
		Body:  form.Message,
	})
	if saveErr != nil {
		s.log.Error("saving contact message", zap.Error(saveErr))
	}

	sendErr := s.mailer.Send(ctx, Mail{
		To:      s.recipient(ctx),
		Name:    form.Name,
		Email:   form.Email,
		Message: form.Message,
	})
	switch {
	case sendErr != nil:
		s.log.Warn("contact email not sent", zap.Error(sendErr))
	case saveErr == nil:
		if err := s.store.MarkDelivered(ctx, id); err != nil {
			s.log.Error("marking message delivered", zap.Int64("id", id), zap.Error(err))
		}
	}

	if saveErr != nil && sendErr != nil {
		c.HTML(http.StatusOK, "contact-error.html", gin.H{"error": contactFailed})
		return
	}
	s.log.Info("contact message received", zap.Bool("emailed", sendErr == nil))
	c.HTML(http.StatusOK, "contact-success.html", gin.H{"success": contactSuccess})
}

// recipient is the configured inbox, or the contact email published on the
// hero document. The hero lookup goes through the loader so a failure is
// logged and recorded like any other content read.
func (s *Server) recipient(ctx context.Context) string {
	if s.cfg.SMTP.To != "" {
		return s.cfg.SMTP.To
	}
	state := sections.LoadOne[content.Hero](ctx, s.loader, sanity.HeroQuery)
	if state.Phase != sections.Resolved || state.Data == nil {
		return ""
	}
	return state.Data.ContactEmail
}
