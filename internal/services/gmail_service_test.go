package services

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"partnerdash-be/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessage(t *testing.T) {
	raw := buildMessage("RISE Portal <ops@x.com>", "ceo@x.com", "Daily Check", "<p>hi</p>")

	assert.Contains(t, raw, "From: RISE Portal <ops@x.com>\r\n")
	assert.Contains(t, raw, "To: ceo@x.com\r\n")
	assert.Contains(t, raw, "Subject: Daily Check\r\n")
	assert.Contains(t, raw, "Content-Type: text/html; charset=\"UTF-8\"\r\n")

	parts := strings.SplitN(raw, "\r\n\r\n", 2)
	require.Len(t, parts, 2)
	body, err := base64.StdEncoding.DecodeString(parts[1])
	require.NoError(t, err)
	assert.Equal(t, "<p>hi</p>", string(body))
}

func TestBuildMessage_OmitsEmptySender(t *testing.T) {
	raw := buildMessage("", "ceo@x.com", "s", "b")
	assert.False(t, strings.HasPrefix(raw, "From:"))
}

func TestGmailSend_RequiresCredentials(t *testing.T) {
	err := NewGmailService(&config.Config{}).Send(context.Background(), "ceo@x.com", "s", "b")

	var cfgErr *config.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "GOOGLE_CLIENT_ID", cfgErr.Key)
}
