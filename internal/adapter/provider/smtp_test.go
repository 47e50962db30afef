package provider

import (
	"bufio"
	"context"
	"io"
	"mime"
	"mime/quotedprintable"
	"net"
	"net/mail"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outreach/internal/config/configs"
	"outreach/internal/core/domain"
	"outreach/internal/core/port"
)

// fakeRelay speaks just enough SMTP for net/smtp. rcptReply is the reply
// line sent to RCPT TO.
type fakeRelay struct {
	ln        net.Listener
	rcptReply string
	received  chan string
}

func startRelay(t *testing.T, rcptReply string) *fakeRelay {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	r := &fakeRelay{ln: ln, rcptReply: rcptReply, received: make(chan string, 1)}
	t.Cleanup(func() { ln.Close() })
	go r.serve()
	return r
}

func (r *fakeRelay) port() int {
	return r.ln.Addr().(*net.TCPAddr).Port
}

func (r *fakeRelay) serve() {
	conn, err := r.ln.Accept()
	if err != nil {
		return
	}
	defer conn.Close()
	tp := textproto.NewConn(conn)
	_ = tp.PrintfLine("220 relay.test ESMTP")
	for {
		line, err := tp.ReadLine()
		if err != nil {
			return
		}
		cmd := strings.ToUpper(line)
		switch {
		case strings.HasPrefix(cmd, "EHLO"), strings.HasPrefix(cmd, "HELO"):
			_ = tp.PrintfLine("250 relay.test")
		case strings.HasPrefix(cmd, "MAIL FROM"):
			_ = tp.PrintfLine("250 OK")
		case strings.HasPrefix(cmd, "RCPT TO"):
			_ = tp.PrintfLine("%s", r.rcptReply)
		case cmd == "DATA":
			_ = tp.PrintfLine("354 go ahead")
			body, err := tp.ReadDotBytes()
			if err != nil {
				return
			}
			r.received <- string(body)
			_ = tp.PrintfLine("250 queued")
		case cmd == "QUIT":
			_ = tp.PrintfLine("221 bye")
			return
		default:
			_ = tp.PrintfLine("502 not implemented")
		}
	}
}

func newTestSMTPSender(t *testing.T, port int) *SMTPSender {
	t.Helper()
	s, err := NewSMTPSender(
		configs.SMTP{Host: "127.0.0.1", Port: port},
		mail.Address{Name: "Outreach Team", Address: "hello@outreach.test"},
		"replies@outreach.test",
		5*time.Second,
	)
	require.NoError(t, err)
	return s
}

var testMessage = domain.EmailMessage{
	To:         "owner@acme.test",
	Subject:    "Grüße from Austin",
	HTML:       `<html><body><p>Hi Acme = friends</p></body></html>`,
	CampaignID: "c-1",
	LeadID:     "l-1",
}

func TestSMTPSenderDelivers(t *testing.T) {
	relay := startRelay(t, "250 OK")
	sender := newTestSMTPSender(t, relay.port())

	id, err := sender.Send(context.Background(), testMessage)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(id, "@outreach.test"))

	var raw string
	select {
	case raw = <-relay.received:
	case <-time.After(5 * time.Second):
		t.Fatal("relay received nothing")
	}

	msg, err := mail.ReadMessage(bufio.NewReader(strings.NewReader(raw)))
	require.NoError(t, err)
	assert.Equal(t, "owner@acme.test", msg.Header.Get("To"))
	assert.Equal(t, "c-1", msg.Header.Get("X-Campaign-ID"))
	assert.Equal(t, "replies@outreach.test", msg.Header.Get("Reply-To"))
	assert.Equal(t, "<"+id+">", msg.Header.Get("Message-ID"))

	subject, err := new(mime.WordDecoder).DecodeHeader(msg.Header.Get("Subject"))
	require.NoError(t, err)
	assert.Equal(t, "Grüße from Austin", subject)

	body, err := io.ReadAll(quotedprintable.NewReader(msg.Body))
	require.NoError(t, err)
	assert.Equal(t, testMessage.HTML, strings.TrimRight(string(body), "\r\n"))
}

func TestSMTPSenderClassifiesReplies(t *testing.T) {
	cases := []struct {
		reply     string
		temporary bool
	}{
		{"550 5.1.1 mailbox unavailable", false},
		{"451 4.7.1 greylisted, try later", true},
	}
	for _, tc := range cases {
		t.Run(tc.reply, func(t *testing.T) {
			relay := startRelay(t, tc.reply)
			sender := newTestSMTPSender(t, relay.port())

			_, err := sender.Send(context.Background(), testMessage)
			var sendErr *port.SendError
			require.ErrorAs(t, err, &sendErr)
			assert.Equal(t, tc.temporary, sendErr.Temporary)
			assert.Equal(t, tc.reply[:3], sendErr.Code)
		})
	}
}

func TestSMTPSenderConnectionRefusedIsTemporary(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	free := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	sender := newTestSMTPSender(t, free)
	_, err = sender.Send(context.Background(), testMessage)

	var sendErr *port.SendError
	require.ErrorAs(t, err, &sendErr)
	assert.True(t, sendErr.Temporary)
	assert.Equal(t, "network", sendErr.Code)
}

func TestNewSMTPSenderRequiresHost(t *testing.T) {
	_, err := NewSMTPSender(configs.SMTP{Port: 25}, mail.Address{Address: "a@b.c"}, "", 0)
	assert.Error(t, err)
}

func TestHostOf(t *testing.T) {
	assert.Equal(t, "example.com", hostOf("a@example.com"))
	assert.Equal(t, "localhost", hostOf("broken@"))
	assert.Equal(t, "localhost", hostOf("no-at-sign"))
}
