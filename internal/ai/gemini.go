// Package ai generates product sales blurbs through the Gemini
// GenerateContent REST API. One blocking call, no retry, no caching; a
// failure surfaces to the admin as an alert.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

var ErrNotConfigured = errors.New("ai: API key not configured, AI features are unavailable")

type Describer struct {
	apiKey  string
	model   string
	baseURL string
	httpc   *http.Client
}

func NewDescriber(apiKey, model string) *Describer {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	return &Describer{
		apiKey:  apiKey,
		model:   model,
		baseURL: DefaultBaseURL,
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

// SetBaseURL points the describer at a different API host (tests).
func (d *Describer) SetBaseURL(base string) {
	d.baseURL = base
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Describe returns a short sales description for a product given its name,
// scent profile and ingredients.
func (d *Describer) Describe(ctx context.Context, name, scent, ingredients string) (string, error) {
	if d.apiKey == "" {
		return "", ErrNotConfigured
	}

	prompt := fmt.Sprintf(
		"Write a short, alluring, and sensory-rich sales description (max 2 sentences) for a handmade item named %q. "+
			"The scent profile is %q and key ingredients are %q. Make it sound luxurious and artisanal.",
		name, scent, ingredients)

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", d.baseURL, d.model, d.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("ai: generate description: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ai: generate description: unexpected status %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("ai: decode response: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("ai: empty response from model")
	}
	text := strings.TrimSpace(out.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", errors.New("ai: empty response from model")
	}
	return text, nil
}
