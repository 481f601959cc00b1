package triage

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postChat(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	h.Chat(rec, req)
	return rec
}

func TestChat_ReturnsClassifiedResponse(t *testing.T) {
	h := NewHandler(NewEngine(), HandlerConfig{})

	rec := postChat(t, h, `{"message": "I have a fever"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var result struct {
		Data Response `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Contains(t, result.Data.Text, "paracetamol")
	assert.Equal(t, SeverityNone, result.Data.Severity)
}

func TestChat_EmergencyTaggedWarning(t *testing.T) {
	h := NewHandler(NewEngine(), HandlerConfig{})

	rec := postChat(t, h, `{"message": "sudden chest pain"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var result struct {
		Data Response `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, SeverityWarning, result.Data.Severity)
}

func TestChat_EmptyMessageShortCircuits(t *testing.T) {
	h := NewHandler(NewEngine(), HandlerConfig{})

	rec := postChat(t, h, `{"message": ""}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code,
		"empty input is rejected by the handler, it never enters the engine")
}

func TestChat_InvalidJSON(t *testing.T) {
	h := NewHandler(NewEngine(), HandlerConfig{})

	rec := postChat(t, h, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChat_RateLimited(t *testing.T) {
	h := NewHandler(NewEngine(), HandlerConfig{RateLimit: 0.001, RateBurst: 1})

	first := postChat(t, h, `{"message": "hello"}`)
	assert.Equal(t, http.StatusOK, first.Code)

	second := postChat(t, h, `{"message": "hello"}`)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestChat_NoLimiterWhenDisabled(t *testing.T) {
	h := NewHandler(NewEngine(), HandlerConfig{RateLimit: 0})

	for i := 0; i < 10; i++ {
		rec := postChat(t, h, `{"message": "hello"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}
