// internal/telegram/telegram_test.go
package telegram

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"nextcard-intake/internal/common/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL string) *Client {
	return NewClient(config.TelegramConfig{
		BotToken:       "test-token",
		ChatID:         "-1001234567890",
		APIBaseURL:     serverURL,
		MessageTimeout: 1000,
		PhotoTimeout:   1000,
	})
}

func TestSendMessage(t *testing.T) {
	var gotPath string
	var gotBody map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"ok":true,"result":{}}`))
	}))
	defer srv.Close()

	err := newTestClient(srv.URL).SendMessage(context.Background(), "hello *world*")

	require.NoError(t, err)
	assert.Equal(t, "/bottest-token/sendMessage", gotPath)
	assert.Equal(t, "-1001234567890", gotBody["chat_id"])
	assert.Equal(t, "hello *world*", gotBody["text"])
	assert.Equal(t, "Markdown", gotBody["parse_mode"])
}

func TestSendMessage_APIFailures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{
			name:    "http error status",
			status:  http.StatusBadRequest,
			body:    `{"ok":false,"description":"Bad Request: chat not found"}`,
			wantErr: "chat not found",
		},
		{
			name:    "ok false under 200",
			status:  http.StatusOK,
			body:    `{"ok":false,"description":"flood control"}`,
			wantErr: "flood control",
		},
		{
			name:    "non json error body",
			status:  http.StatusBadGateway,
			body:    "<html>bad gateway</html>",
			wantErr: "status 502",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			err := newTestClient(srv.URL).SendMessage(context.Background(), "hello")

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSendMessage_UnreachableDoesNotLeakToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on

	err := newTestClient(srv.URL).SendMessage(context.Background(), "hello")

	require.Error(t, err)
	assert.NotContains(t, err.Error(), "test-token")
	assert.Contains(t, err.Error(), "telegram unreachable")
}

func TestSendPhoto(t *testing.T) {
	photo := []byte{0xFF, 0xD8, 0xFF, 0xE0}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bottest-token/sendPhoto", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "-1001234567890", r.FormValue("chat_id"))
		assert.Equal(t, "Foto do front do documento", r.FormValue("caption"))

		file, header, err := r.FormFile("photo")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "front_id.jpg", header.Filename)
		assert.Equal(t, "image/jpeg", header.Header.Get("Content-Type"))
		data, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, photo, data)

		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	err := newTestClient(srv.URL).SendPhoto(
		context.Background(), "front_id.jpg", "Foto do front do documento", photo)

	assert.NoError(t, err)
}

func TestSendPhoto_UploadRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		w.Write([]byte(`{"ok":false,"description":"Request Entity Too Large"}`))
	}))
	defer srv.Close()

	err := newTestClient(srv.URL).SendPhoto(context.Background(), "back_id.jpg", "caption", []byte("x"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "sendPhoto failed")
	assert.NotContains(t, err.Error(), "test-token")
}
