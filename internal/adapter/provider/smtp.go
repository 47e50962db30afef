package provider

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"mime"
	"mime/quotedprintable"
	"net"
	"net/mail"
	"net/smtp"
	"net/textproto"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"outreach/internal/config/configs"
	"outreach/internal/core/domain"
	"outreach/internal/core/port"
)

// SMTPSender delivers messages to an SMTP relay, one connection per
// message.
type SMTPSender struct {
	host        string
	port        int
	username    string
	password    string
	implicitTLS bool
	from        mail.Address
	replyTo     string
	timeout     time.Duration
	dialer      *net.Dialer
	tlsConfig   *tls.Config
}

func NewSMTPSender(cfg configs.SMTP, from mail.Address, replyTo string, timeout time.Duration) (*SMTPSender, error) {
	if cfg.Host == "" {
		return nil, errors.New("smtp host is not configured")
	}
	if from.Address == "" {
		return nil, errors.New("sender address is not configured")
	}
	return &SMTPSender{
		host:        cfg.Host,
		port:        cfg.Port,
		username:    cfg.Username,
		password:    cfg.Password,
		implicitTLS: cfg.ImplicitTLS,
		from:        from,
		replyTo:     replyTo,
		timeout:     timeout,
		dialer:      &net.Dialer{},
		tlsConfig:   &tls.Config{ServerName: cfg.Host, MinVersion: tls.VersionTLS12},
	}, nil
}

func (s *SMTPSender) Send(ctx context.Context, msg domain.EmailMessage) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	messageID := uuid.NewString() + "@" + hostOf(s.from.Address)
	raw, err := buildMIME(s.from, s.replyTo, msg, messageID, time.Now())
	if err != nil {
		return "", err
	}
	if err := s.deliver(ctx, msg.To, raw); err != nil {
		return "", classifySMTP(err)
	}
	return messageID, nil
}

func (s *SMTPSender) deliver(ctx context.Context, to string, raw []byte) error {
	addr := net.JoinHostPort(s.host, strconv.Itoa(s.port))
	conn, err := s.dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("smtp connect %s: %w", addr, err)
	}
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}
	if s.implicitTLS {
		conn = tls.Client(conn, s.tlsConfig)
	}

	c, err := smtp.NewClient(conn, s.host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp greeting: %w", err)
	}
	defer c.Close()

	if !s.implicitTLS {
		if ok, _ := c.Extension("STARTTLS"); ok {
			if err := c.StartTLS(s.tlsConfig); err != nil {
				return fmt.Errorf("smtp starttls: %w", err)
			}
		}
	}
	if s.username != "" {
		if ok, _ := c.Extension("AUTH"); ok {
			if err := c.Auth(smtp.PlainAuth("", s.username, s.password, s.host)); err != nil {
				return fmt.Errorf("smtp auth: %w", err)
			}
		}
	}
	if err := c.Mail(s.from.Address); err != nil {
		return fmt.Errorf("smtp MAIL FROM: %w", err)
	}
	if err := c.Rcpt(to); err != nil {
		return fmt.Errorf("smtp RCPT TO: %w", err)
	}
	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("smtp DATA: %w", err)
	}
	if _, err := w.Write(raw); err != nil {
		return fmt.Errorf("smtp write body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp end of data: %w", err)
	}
	// The relay has accepted the message once DATA completes.
	_ = c.Quit()
	return nil
}

// buildMIME assembles a single part HTML message with a quoted-printable
// body.
func buildMIME(from mail.Address, replyTo string, msg domain.EmailMessage, messageID string, now time.Time) ([]byte, error) {
	var buf bytes.Buffer
	header := func(k, v string) { fmt.Fprintf(&buf, "%s: %s\r\n", k, v) }

	header("From", from.String())
	header("To", msg.To)
	header("Subject", mime.QEncoding.Encode("utf-8", msg.Subject))
	header("Date", now.Format(time.RFC1123Z))
	header("Message-ID", "<"+messageID+">")
	if replyTo != "" {
		header("Reply-To", replyTo)
	}
	if msg.CampaignID != "" {
		header("X-Campaign-ID", msg.CampaignID)
	}
	if msg.LeadID != "" {
		header("X-Lead-ID", msg.LeadID)
	}
	header("MIME-Version", "1.0")
	header("Content-Type", `text/html; charset="UTF-8"`)
	header("Content-Transfer-Encoding", "quoted-printable")
	buf.WriteString("\r\n")

	qp := quotedprintable.NewWriter(&buf)
	if _, err := qp.Write([]byte(msg.HTML)); err != nil {
		return nil, fmt.Errorf("encode body: %w", err)
	}
	if err := qp.Close(); err != nil {
		return nil, fmt.Errorf("encode body: %w", err)
	}
	buf.WriteString("\r\n")
	return buf.Bytes(), nil
}

// classifySMTP maps reply codes and network failures onto SendError.
// 4xx replies are transient, 5xx permanent.
func classifySMTP(err error) error {
	var reply *textproto.Error
	if errors.As(err, &reply) {
		return &port.SendError{
			Code:      strconv.Itoa(reply.Code),
			Temporary: reply.Code >= 400 && reply.Code < 500,
			Err:       err,
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &port.SendError{Code: "timeout", Temporary: true, Err: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return &port.SendError{Code: "network", Temporary: true, Err: err}
	}
	return err
}

func hostOf(address string) string {
	if i := strings.LastIndexByte(address, '@'); i >= 0 && i < len(address)-1 {
		return address[i+1:]
	}
	return "localhost"
}
