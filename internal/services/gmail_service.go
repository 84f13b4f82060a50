package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"strings"

	"partnerdash-be/config"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// Notifier delivers an HTML message.
type Notifier interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// GmailService sends mail as the account that granted the refresh token.
type GmailService struct {
	cfg *config.Config
}

func NewGmailService(cfg *config.Config) *GmailService {
	return &GmailService{
		cfg: cfg,
	}
}

func (s *GmailService) getOAuthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     s.cfg.GoogleClientID,
		ClientSecret: s.cfg.GoogleClientSecret,
		Scopes:       []string{gmail.GmailSendScope},
		Endpoint:     google.Endpoint,
	}
}

func (s *GmailService) GetClient(ctx context.Context) (*gmail.Service, error) {
	if err := s.cfg.RequireGmail(); err != nil {
		return nil, err
	}

	token := &oauth2.Token{
		RefreshToken: s.cfg.GmailRefreshToken,
		TokenType:    "Bearer",
	}
	tokenSource := s.getOAuthConfig().TokenSource(ctx, token)

	return gmail.NewService(ctx, option.WithTokenSource(tokenSource))
}

func (s *GmailService) Send(ctx context.Context, to, subject, htmlBody string) error {
	srv, err := s.GetClient(ctx)
	if err != nil {
		return err
	}

	message := gmail.Message{
		Raw: base64.URLEncoding.EncodeToString([]byte(buildMessage(s.cfg.GmailSender, to, subject, htmlBody))),
	}
	if _, err := srv.Users.Messages.Send("me", &message).Context(ctx).Do(); err != nil {
		return fmt.Errorf("gmail send: %w", err)
	}
	return nil
}

// buildMessage renders a single-part HTML message.
func buildMessage(from, to, subject, htmlBody string) string {
	var msg strings.Builder
	if from != "" {
		msg.WriteString("From: " + from + "\r\n")
	}
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", subject) + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("Content-Transfer-Encoding: base64\r\n\r\n")
	msg.WriteString(base64.StdEncoding.EncodeToString([]byte(htmlBody)))
	return msg.String()
}
