//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ErrorBody mirrors the API error envelope.
type ErrorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail struct {
		Field  string `json:"field"`
		Reason string `json:"reason"`
	} `json:"detail"`
}

// AssertSuccessResponse checks the status and decodes a 2xx body into target when one is given.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, status int, target any) {
	t.Helper()
	if !assert.Equalf(t, status, w.Code, "body: %s", w.Body.String()) {
		return
	}
	if target == nil || status < 200 || status >= 300 {
		return
	}
	assert.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), target), "decode %T from %s", target, w.Body.String())
}

// AssertErrorResponse checks the status and that the envelope message contains msg.
// An empty msg only checks that the envelope is there.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, status int, msg string) ErrorBody {
	t.Helper()
	assert.Equalf(t, status, w.Code, "body: %s", w.Body.String())

	var body ErrorBody
	if !assert.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), &body), "decode error envelope from %s", w.Body.String()) {
		return body
	}
	assert.NotEmpty(t, body.Error.Message, "error envelope without message")
	if msg != "" {
		assert.Contains(t, body.Error.Message, msg)
	}
	return body
}

// AssertFieldError checks a 400 whose detail names field.
func AssertFieldError(t *testing.T, w *httptest.ResponseRecorder, field string) {
	t.Helper()
	body := AssertErrorResponse(t, w, 400, "")
	assert.Equal(t, field, body.Detail.Field)
}

// AssertHeaders compares each listed header; an empty value means the header must be absent.
func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, want map[string]string) {
	t.Helper()
	for name, value := range want {
		if value == "" {
			assert.Emptyf(t, w.Header().Values(name), "header %s should be absent", name)
			continue
		}
		assert.Equalf(t, value, w.Header().Get(name), "header %s", name)
	}
}
