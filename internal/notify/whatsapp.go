// Copyright (c) 2026 Abhishek Portfolio. All rights reserved.
// Author: abhishek.nv.dev@gmail.com

package notify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/abhisheknv/portfolio-api/internal/platform/config"
)

const (
	twilioAPIBase     = "https://api.twilio.com"
	whatsappTimeout   = 15 * time.Second
	whatsappMaxLength = 1600 // Twilio rejects longer bodies
)

// WhatsAppChannel pings the owner's phone via Twilio's WhatsApp messaging API.
type WhatsAppChannel struct {
	accountSID string
	authToken  string
	from       string
	to         string

	baseURL string
	client  *http.Client
}

// NewWhatsAppChannel wires a [WhatsAppChannel] from configuration. Callers
// are expected to check [config.Config.WhatsAppEnabled] first.
func NewWhatsAppChannel(cfg *config.Config) *WhatsAppChannel {
	return &WhatsAppChannel{
		accountSID: cfg.TwilioAccountSID,
		authToken:  cfg.TwilioAuthToken,
		from:       cfg.TwilioWhatsAppFrom,
		to:         cfg.AdminWhatsAppTo,
		baseURL:    twilioAPIBase,
		client:     &http.Client{Timeout: whatsappTimeout},
	}
}

func (channel *WhatsAppChannel) Name() string { return "whatsapp" }

// Send posts the message to the Twilio Messages endpoint.
//
// WhatsApp has no subject line, so subject and body are collapsed into a
// single text, truncated to Twilio's body limit.
func (channel *WhatsAppChannel) Send(context context.Context, message Message) error {
	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", channel.baseURL, channel.accountSID)

	form := channel.buildForm(message)
	request, err := http.NewRequestWithContext(context, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("notify: whatsapp request build failed: %w", err)
	}
	request.SetBasicAuth(channel.accountSID, channel.authToken)
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, err := channel.client.Do(request)
	if err != nil {
		return fmt.Errorf("notify: whatsapp request failed: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode >= http.StatusBadRequest {
		// Bounded read: Twilio error bodies are small JSON documents.
		body, _ := io.ReadAll(io.LimitReader(response.Body, 2048))
		return fmt.Errorf("notify: whatsapp delivery rejected: status %d: %s", response.StatusCode, string(body))
	}

	return nil
}

// buildForm assembles the Twilio message parameters.
func (channel *WhatsAppChannel) buildForm(message Message) url.Values {
	body := message.Subject
	if message.Body != "" {
		body += "\n\n" + message.Body
	}
	if len(body) > whatsappMaxLength {
		body = body[:whatsappMaxLength]
	}

	return url.Values{
		"From": {"whatsapp:" + channel.from},
		"To":   {"whatsapp:" + channel.to},
		"Body": {body},
	}
}
