package mailer

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"

	"github.com/dtroode/videoflix-server/internal/model"
)

func newTestSMTP(t *testing.T, port int) *SMTP {
	t.Helper()

	s, err := NewSMTP(Config{
		Host:    "127.0.0.1",
		Port:    port,
		From:    "noreply@videoflix.test",
		Timeout: time.Second,
	})
	require.NoError(t, err)

	return s
}

func TestSMTP_BuildMsg(t *testing.T) {
	s := newTestSMTP(t, 2525)

	msg, err := s.buildMsg(model.EmailMessage{
		To:      "user@example.com",
		Subject: "Confirm your email",
		Body:    "Please activate your account: http://front/activate.html?token=t&uid=MQ",
	})
	require.NoError(t, err)

	rcpts, err := msg.GetRecipients()
	require.NoError(t, err)
	assert.Equal(t, []string{"user@example.com"}, rcpts)
	assert.Equal(t, []string{"Confirm your email"}, msg.GetGenHeader(mail.HeaderSubject))
}

func TestSMTP_BuildMsg_InvalidAddress(t *testing.T) {
	s := newTestSMTP(t, 2525)

	_, err := s.buildMsg(model.EmailMessage{To: "not an address"})
	assert.Error(t, err)
}

func TestSMTP_Send_ConnectionRefused(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())

	s := newTestSMTP(t, port)

	err = s.Send(context.Background(), model.EmailMessage{
		To:      "user@example.com",
		Subject: "Reset your Password",
		Body:    "body",
	})
	assert.Error(t, err)
}

func TestNewSMTP_EmptyHost(t *testing.T) {
	_, err := NewSMTP(Config{})
	assert.Error(t, err)
}
