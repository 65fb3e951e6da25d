package mail

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gopkg.in/mail.v2"
)

func TestSender_SendMail(t *testing.T) {
	t.Run("sends text and html bodies with attachment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dialer := NewMockDialer(ctrl)
		s := &sender{from: "fleet@example.com", dialer: dialer}

		var sent *mail.Message
		dialer.EXPECT().DialAndSend(gomock.Any()).DoAndReturn(func(m ...*mail.Message) error {
			sent = m[0]
			return nil
		})

		attachments := []Attachment{
			{Name: "report.xlsx", Content: strings.NewReader("sheet bytes")},
			{Name: "", Content: strings.NewReader("ignored")},
			{Name: "empty.txt"},
		}
		err := s.SendMail([]string{"ops@example.com", ""}, "Fleet report", "<h1>Fleet</h1>", "Fleet", attachments)
		require.NoError(t, err)
		require.NotNil(t, sent)

		assert.Equal(t, []string{"fleet@example.com"}, sent.GetHeader("From"))
		assert.Equal(t, []string{"ops@example.com"}, sent.GetHeader("To"))
		assert.Equal(t, []string{"Fleet report"}, sent.GetHeader("Subject"))

		var body bytes.Buffer
		_, err = sent.WriteTo(&body)
		require.NoError(t, err)
		assert.Contains(t, body.String(), "Content-Type: text/plain")
		assert.Contains(t, body.String(), "Content-Type: text/html")
		assert.Contains(t, body.String(), "<h1>Fleet</h1>")
		assert.Contains(t, body.String(), `filename="report.xlsx"`)
		assert.NotContains(t, body.String(), "empty.txt")
	})

	t.Run("html only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dialer := NewMockDialer(ctrl)
		s := &sender{from: "fleet@example.com", dialer: dialer}

		var sent *mail.Message
		dialer.EXPECT().DialAndSend(gomock.Any()).DoAndReturn(func(m ...*mail.Message) error {
			sent = m[0]
			return nil
		})

		require.NoError(t, s.SendMail([]string{"ops@example.com"}, "s", "<p>hi</p>", "", nil))
		var body bytes.Buffer
		_, err := sent.WriteTo(&body)
		require.NoError(t, err)
		assert.Contains(t, body.String(), "Content-Type: text/html")
		assert.NotContains(t, body.String(), "text/plain")
	})

	t.Run("no recipients", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s := &sender{from: "fleet@example.com", dialer: NewMockDialer(ctrl)}

		err := s.SendMail([]string{""}, "s", "", "body", nil)
		assert.ErrorIs(t, err, ErrNoRecipients)
	})

	t.Run("dialer error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dialer := NewMockDialer(ctrl)
		s := &sender{from: "fleet@example.com", dialer: dialer}
		dialErr := errors.New("connection refused")
		dialer.EXPECT().DialAndSend(gomock.Any()).Return(dialErr)

		err := s.SendMail([]string{"ops@example.com"}, "s", "", "body", nil)
		assert.ErrorIs(t, err, dialErr)
	})
}

func TestNewMailSender_UsernameFallback(t *testing.T) {
	s := NewMailSender(Config{From: "fleet@example.com", Host: "smtp.example.com", Port: 587}).(*sender)
	d, ok := s.dialer.(*mail.Dialer)
	require.True(t, ok)
	assert.Equal(t, "fleet@example.com", d.Username)
	assert.Equal(t, "smtp.example.com", d.Host)
	assert.Equal(t, 587, d.Port)
}
