package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	p, err := NewOpenAICompatible("test", srv.URL, "test-key", "test-model")
	require.NoError(t, err)
	return p
}

func completionResponse(content string) string {
	return `{"choices":[{"message":{"role":"assistant","content":` + mustJSON(content) + `}}]}`
}

func mustJSON(s string) string {
	raw, _ := json.Marshal(s)
	return string(raw)
}

func TestOpenAIComplete(t *testing.T) {
	var captured chatRequest

	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Write([]byte(completionResponse("Hi Jane, great to connect!")))
	})

	reply, err := p.Complete(context.Background(), "system text", "user text")
	require.NoError(t, err)
	assert.Equal(t, "Hi Jane, great to connect!", reply)

	assert.Equal(t, "test-model", captured.Model)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "system text", captured.Messages[0].Content)
	assert.Equal(t, "user", captured.Messages[1].Role)
	assert.Equal(t, 0.7, captured.Temperature)
	assert.Equal(t, 500, captured.MaxTokens)
}

func TestOpenAICompleteStripsWrappingQuotes(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(completionResponse(`"Hi Jane!"`)))
	})

	reply, err := p.Complete(context.Background(), "s", "u")
	require.NoError(t, err)
	assert.Equal(t, "Hi Jane!", reply)
}

func TestOpenAICompleteErrors(t *testing.T) {
	t.Run("API error body", func(t *testing.T) {
		p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":{"message":"rate limit exceeded"}}`))
		})

		_, err := p.Complete(context.Background(), "s", "u")
		require.Error(t, err)
		assert.EqualError(t, err, "API Error (429): rate limit exceeded")
	})

	t.Run("non-200 without parseable body", func(t *testing.T) {
		p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("boom"))
		})

		_, err := p.Complete(context.Background(), "s", "u")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "API Error (500)")
	})

	t.Run("empty choices", func(t *testing.T) {
		p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"choices":[]}`))
		})

		_, err := p.Complete(context.Background(), "s", "u")
		assert.EqualError(t, err, "malformed API response: choices not found")
	})
}

func TestNewProviderRequiresAPIKey(t *testing.T) {
	_, err := NewGroq("", "")
	assert.Error(t, err)

	p, err := NewGroq("key", "")
	require.NoError(t, err)
	assert.Equal(t, "groq", p.Name())

	p, err = NewOpenAI("key", "custom-model")
	require.NoError(t, err)
	assert.Equal(t, "openai", p.Name())
}
