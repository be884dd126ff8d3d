// Package telegram is a minimal Bot API client: the shop only ever sends one
// kind of message to one chat.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const DefaultBaseURL = "https://api.telegram.org"

type Client struct {
	token   string
	baseURL string
	httpc   *http.Client
}

func NewClient(token string) *Client {
	return &Client{
		token:   token,
		baseURL: DefaultBaseURL,
		httpc:   &http.Client{Timeout: 15 * time.Second},
	}
}

// SetBaseURL points the client at a different API host (tests).
func (c *Client) SetBaseURL(base string) {
	c.baseURL = base
}

func (c *Client) Configured() bool { return c.token != "" }

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description,omitempty"`
}

// SendMessage posts a Markdown-formatted message to a chat.
func (c *Client) SendMessage(ctx context.Context, chatID, text string) error {
	if c.token == "" {
		return fmt.Errorf("telegram: bot token not configured")
	}

	body, err := json.Marshal(sendMessageRequest{ChatID: chatID, Text: text, ParseMode: "Markdown"})
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("telegram: send message: %w", err)
	}
	defer resp.Body.Close()

	var out apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("telegram: decode response: %w", err)
	}
	if resp.StatusCode != http.StatusOK || !out.OK {
		return fmt.Errorf("telegram: sendMessage failed (%d): %s", resp.StatusCode, out.Description)
	}
	return nil
}

// DeepLink builds the t.me compose URL used as the checkout fallback channel:
// opening it pre-fills the message so the customer sends the order themselves.
func DeepLink(botUsername, text string) string {
	return "https://t.me/" + botUsername + "?text=" + url.QueryEscape(text)
}
