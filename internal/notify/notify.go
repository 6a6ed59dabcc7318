// Copyright (c) 2026 Abhishek Portfolio. All rights reserved.
// Author: abhishek.nv.dev@gmail.com

/*
Package notify delivers owner notifications for contact submissions.

Two channels exist: email over SMTP and WhatsApp via the Twilio messaging
API. Both are best-effort — the contact pipeline persists the message first
and treats delivery failures as log-worthy, not request-fatal.
*/
package notify

import "context"

// Message is a rendered owner notification.
type Message struct {
	Subject string
	Body    string
}

// Channel delivers a notification to the portfolio owner.
type Channel interface {
	// Name identifies the channel in logs ("email", "whatsapp").
	Name() string

	// Send delivers the message. Implementations honour ctx cancellation
	// and their own transport timeouts.
	Send(context context.Context, message Message) error
}
