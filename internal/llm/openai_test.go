package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *OpenAIClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewOpenAIClient(OpenAIConfig{
		APIKey:     "test-key",
		BaseURL:    server.URL,
		ModelName:  "test-model",
		MaxRetries: 1,
		RetryDelay: time.Millisecond,
	}, zap.NewNop())
	require.NoError(t, err)
	return client
}

func chatBody(content string) string {
	resp := map[string]interface{}{
		"id": "cmpl-1",
		"choices": []map[string]interface{}{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
	}
	b, _ := json.Marshal(resp)
	return string(b)
}

func TestComplete_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "user", req.Messages[1].Role)

		w.Write([]byte(chatBody("hello there")))
	})

	got, err := client.Complete(context.Background(), Request{System: "sys", User: "hi", Shape: ShapeText})

	require.NoError(t, err)
	assert.Equal(t, "hello there", got)
}

func TestComplete_JSONShapeSetsResponseFormat(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.ResponseFormat)
		assert.Equal(t, "json_object", req.ResponseFormat.Type)

		w.Write([]byte(chatBody("```json\n{\"ok\": true}\n```")))
	})

	got, err := client.Complete(context.Background(), Request{User: "hi", Shape: ShapeJSON})

	require.NoError(t, err)
	assert.Equal(t, `{"ok": true}`, got)
}

func TestComplete_Non200Fails(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	})

	_, err := client.Complete(context.Background(), Request{User: "hi"})

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestComplete_RetriesTransientFailures(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			http.Error(w, "try again", http.StatusInternalServerError)
			return
		}
		w.Write([]byte(chatBody("second time lucky")))
	}))
	t.Cleanup(server.Close)

	client, err := NewOpenAIClient(OpenAIConfig{
		APIKey:     "test-key",
		BaseURL:    server.URL,
		MaxRetries: 2,
		RetryDelay: time.Millisecond,
	}, zap.NewNop())
	require.NoError(t, err)

	got, err := client.Complete(context.Background(), Request{User: "hi"})

	require.NoError(t, err)
	assert.Equal(t, "second time lucky", got)
	assert.Equal(t, 2, calls)
}

func TestComplete_NoChoicesFails(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": "cmpl-1", "choices": []}`))
	})

	_, err := client.Complete(context.Background(), Request{User: "hi"})

	assert.Error(t, err)
}

func TestComplete_MalformedBodyFails(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	})

	_, err := client.Complete(context.Background(), Request{User: "hi"})

	assert.Error(t, err)
}

func TestNewOpenAIClient_RequiresAPIKey(t *testing.T) {
	_, err := NewOpenAIClient(OpenAIConfig{}, zap.NewNop())
	assert.Error(t, err)
}

func TestCleanMarkdown(t *testing.T) {
	cases := map[string]string{
		"```json\n{\"a\": 1}\n```": `{"a": 1}`,
		"```\n{\"a\": 1}\n```":     `{"a": 1}`,
		`{"a": 1}`:                 `{"a": 1}`,
		"  {\"a\": 1}  ":           `{"a": 1}`,
	}
	for input, want := range cases {
		assert.Equal(t, want, CleanMarkdown(input))
	}
}
