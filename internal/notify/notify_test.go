// Copyright (c) 2026 Abhishek Portfolio. All rights reserved.
// Author: abhishek.nv.dev@gmail.com

package notify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
TestEmailChannel_BuildMessage checks the rendered SMTP envelope.
*/
func TestEmailChannel_BuildMessage(t *testing.T) {
	channel := &EmailChannel{
		from: "noreply@abhishek.org.in",
		to:   "owner@abhishek.org.in",
	}

	msg := channel.buildMessage(Message{
		Subject: "New contact message",
		Body:    "Someone wants to hire you.",
	})

	assert.Contains(t, msg, "From: Portfolio <noreply@abhishek.org.in>\r\n")
	assert.Contains(t, msg, "To: owner@abhishek.org.in\r\n")
	assert.Contains(t, msg, "Subject: New contact message\r\n")

	// Headers and body must be separated by a blank line.
	parts := strings.SplitN(msg, "\r\n\r\n", 2)
	require.Len(t, parts, 2)
	assert.Contains(t, parts[1], "Someone wants to hire you.")
}

/*
TestWhatsAppChannel_Send exercises the Twilio request against a fake endpoint.
*/
func TestWhatsAppChannel_Send(t *testing.T) {
	t.Run("posts_prefixed_numbers_and_body", func(t *testing.T) {
		var gotForm map[string][]string
		var gotAuth string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			gotForm = r.PostForm
			gotAuth = r.Header.Get("Authorization")
			w.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		channel := &WhatsAppChannel{
			accountSID: "AC123",
			authToken:  "secret",
			from:       "+14155238886",
			to:         "+919876543210",
			baseURL:    server.URL,
			client:     server.Client(),
		}

		err := channel.Send(context.Background(), Message{Subject: "New contact message", Body: "Hello"})
		require.NoError(t, err)

		assert.Equal(t, []string{"whatsapp:+14155238886"}, gotForm["From"])
		assert.Equal(t, []string{"whatsapp:+919876543210"}, gotForm["To"])
		assert.Contains(t, gotForm["Body"][0], "New contact message")
		assert.True(t, strings.HasPrefix(gotAuth, "Basic "))
	})

	t.Run("rejection_surfaces_status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"code": 20003}`))
		}))
		defer server.Close()

		channel := &WhatsAppChannel{
			accountSID: "AC123",
			authToken:  "wrong",
			from:       "+14155238886",
			to:         "+919876543210",
			baseURL:    server.URL,
			client:     server.Client(),
		}

		err := channel.Send(context.Background(), Message{Subject: "x"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 401")
	})
}

/*
TestWhatsAppChannel_BuildForm checks the body truncation bound.
*/
func TestWhatsAppChannel_BuildForm(t *testing.T) {
	channel := &WhatsAppChannel{from: "+1", to: "+2"}

	form := channel.buildForm(Message{
		Subject: "s",
		Body:    strings.Repeat("a", whatsappMaxLength*2),
	})

	assert.LessOrEqual(t, len(form.Get("Body")), whatsappMaxLength)
}
