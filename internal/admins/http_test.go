// Copyright (c) 2026 Abhishek Portfolio. All rights reserved.
// Author: abhishek.nv.dev@gmail.com

package admins_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisheknv/portfolio-api/internal/admins"
)

// passthroughGate stands in for the session gate on routes we exercise
// unauthenticated.
func passthroughGate(next http.Handler) http.Handler { return next }

/*
TestHandler_Signup_PasswordNeverSerialized pins the wire-level invariant:
the created identity comes back without any trace of the password or its
hash, no matter what the entity struct carries internally.
*/
func TestHandler_Signup_PasswordNeverSerialized(t *testing.T) {
	handler := admins.NewHandler(newService(newFakeRepository()))
	router := handler.Routes(passthroughGate)

	body := `{"name":"A","email":"a@x.com","password":"secret1","contact":"+11234567890"}`
	request := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(body))
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "password")

	var envelope struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))

	assert.Equal(t, "a@x.com", envelope.Data["email"])
	assert.NotContains(t, envelope.Data, "password")
	assert.NotContains(t, envelope.Data, "password_hash")
}
