// internal/telegram/telegram.go
// Package telegram is the outbound messaging boundary: a thin Bot API client
// exposing the two calls the intake pipeline needs. Errors never echo the
// bot token.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"nextcard-intake/internal/common/config"
)

// API is the surface the dispatcher depends on; declared here for mocking.
type API interface {
	SendMessage(ctx context.Context, text string) error
	SendPhoto(ctx context.Context, filename, caption string, photo []byte) error
}

type Client struct {
	botToken string
	chatID   string
	baseURL  string

	// Separate clients: text sends get a short timeout, photo uploads a
	// longer one.
	messageClient *http.Client
	photoClient   *http.Client
}

func NewClient(cfg config.TelegramConfig) *Client {
	return &Client{
		botToken:      cfg.BotToken,
		chatID:        cfg.ChatID,
		baseURL:       cfg.APIBaseURL,
		messageClient: &http.Client{Timeout: config.GetDuration(cfg.MessageTimeout)},
		photoClient:   &http.Client{Timeout: config.GetDuration(cfg.PhotoTimeout)},
	}
}

// apiResponse is the Bot API envelope; ok=false means the call failed even
// under a 2xx status.
type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// SendMessage posts a Markdown text message to the configured chat.
func (c *Client) SendMessage(ctx context.Context, text string) error {
	payload := map[string]string{
		"chat_id":    c.chatID,
		"text":       text,
		"parse_mode": "Markdown",
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal sendMessage payload: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("create sendMessage request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.messageClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute sendMessage: telegram unreachable")
	}
	defer resp.Body.Close()

	return checkResponse("sendMessage", resp)
}

// SendPhoto uploads one JPEG photo with a caption to the configured chat.
func (c *Client) SendPhoto(ctx context.Context, filename, caption string, photo []byte) error {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if err := writer.WriteField("chat_id", c.chatID); err != nil {
		return fmt.Errorf("write chat_id field: %w", err)
	}
	if err := writer.WriteField("caption", caption); err != nil {
		return fmt.Errorf("write caption field: %w", err)
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="photo"; filename="%s"`, filename))
	header.Set("Content-Type", "image/jpeg")
	part, err := writer.CreatePart(header)
	if err != nil {
		return fmt.Errorf("create photo part: %w", err)
	}
	if _, err := part.Write(photo); err != nil {
		return fmt.Errorf("write photo part: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("close multipart body: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendPhoto", c.baseURL, c.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return fmt.Errorf("create sendPhoto request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.photoClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute sendPhoto: telegram unreachable")
	}
	defer resp.Body.Close()

	return checkResponse("sendPhoto", resp)
}

func checkResponse(method string, resp *http.Response) error {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return fmt.Errorf("read %s response: %w", method, err)
	}

	var envelope apiResponse
	if jsonErr := json.Unmarshal(body, &envelope); jsonErr == nil {
		if resp.StatusCode >= 200 && resp.StatusCode < 300 && envelope.OK {
			return nil
		}
		return fmt.Errorf("%s failed (status %d): %s", method, resp.StatusCode, envelope.Description)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	return fmt.Errorf("%s failed (status %d)", method, resp.StatusCode)
}
