// Copyright (c) 2026 Abhishek Portfolio. All rights reserved.
// Author: abhishek.nv.dev@gmail.com

package notify

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"github.com/abhisheknv/portfolio-api/internal/platform/config"
)

// emailDialTimeout bounds the TCP connect to the SMTP server.
const emailDialTimeout = 30 * time.Second

// EmailChannel delivers notifications to the owner's inbox over SMTP.
type EmailChannel struct {
	host     string
	port     int
	username string
	password string
	from     string
	to       string
}

// NewEmailChannel wires an [EmailChannel] from configuration. Callers are
// expected to check [config.Config.EmailEnabled] first.
func NewEmailChannel(cfg *config.Config) *EmailChannel {
	return &EmailChannel{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
		from:     cfg.SMTPFrom,
		to:       cfg.AdminEmail,
	}
}

func (channel *EmailChannel) Name() string { return "email" }

// Send connects, upgrades to TLS, authenticates, and submits the message.
func (channel *EmailChannel) Send(context context.Context, message Message) error {
	addr := fmt.Sprintf("%s:%d", channel.host, channel.port)

	dialer := &net.Dialer{Timeout: emailDialTimeout}
	conn, err := dialer.DialContext(context, "tcp", addr)
	if err != nil {
		return fmt.Errorf("notify: smtp connect failed: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, channel.host)
	if err != nil {
		return fmt.Errorf("notify: smtp handshake failed: %w", err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		tlsConfig := &tls.Config{
			ServerName: channel.host,
			MinVersion: tls.VersionTLS12,
		}
		if err := client.StartTLS(tlsConfig); err != nil {
			return fmt.Errorf("notify: starttls failed: %w", err)
		}
	}

	if channel.username != "" && channel.password != "" {
		auth := smtp.PlainAuth("", channel.username, channel.password, channel.host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("notify: smtp auth failed: %w", err)
		}
	}

	if err := client.Mail(channel.from); err != nil {
		return fmt.Errorf("notify: smtp sender rejected: %w", err)
	}
	if err := client.Rcpt(channel.to); err != nil {
		return fmt.Errorf("notify: smtp recipient rejected: %w", err)
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("notify: smtp data failed: %w", err)
	}
	if _, err := writer.Write([]byte(channel.buildMessage(message))); err != nil {
		return fmt.Errorf("notify: smtp write failed: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("notify: smtp submit failed: %w", err)
	}

	return client.Quit()
}

// buildMessage renders the RFC 5322 envelope around the notification body.
func (channel *EmailChannel) buildMessage(message Message) string {
	var msg strings.Builder

	msg.WriteString(fmt.Sprintf("From: Portfolio <%s>\r\n", channel.from))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", channel.to))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", message.Subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(message.Body)
	msg.WriteString("\r\n")

	return msg.String()
}
