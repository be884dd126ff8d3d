package ai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"sudsshop/internal/ai"
)

func generateResponse(text string) map[string]any {
	return map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
		},
	}
}

func TestDescribeBuildsPromptFromProductFields(t *testing.T) {
	var gotPath, gotKey string
	var gotReq struct {
		Contents []struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"contents"`
	}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_ = json.NewEncoder(w).Encode(generateResponse("  A silky lemongrass bar.  "))
	}))
	defer ts.Close()

	d := ai.NewDescriber("test-key", "gemini-1.5-flash")
	d.SetBaseURL(ts.URL)
	got, err := d.Describe(context.Background(), "Lemongrass Bar", "Lemongrass", "Coconut Oil, Lye")
	require.NoError(t, err)
	require.Equal(t, "A silky lemongrass bar.", got)

	require.Equal(t, "/models/gemini-1.5-flash:generateContent", gotPath)
	require.Equal(t, "test-key", gotKey)
	require.Len(t, gotReq.Contents, 1)
	prompt := gotReq.Contents[0].Parts[0].Text
	require.Contains(t, prompt, `"Lemongrass Bar"`)
	require.Contains(t, prompt, `"Lemongrass"`)
	require.Contains(t, prompt, `"Coconut Oil, Lye"`)
}

func TestDescribeWithoutKey(t *testing.T) {
	d := ai.NewDescriber("", "")
	_, err := d.Describe(context.Background(), "Bar", "", "")
	require.ErrorIs(t, err, ai.ErrNotConfigured)
}

func TestDescribeEmptyCandidates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	}))
	defer ts.Close()

	d := ai.NewDescriber("test-key", "")
	d.SetBaseURL(ts.URL)
	_, err := d.Describe(context.Background(), "Bar", "", "")
	require.Error(t, err)
}

func TestDescribeNon200(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	d := ai.NewDescriber("test-key", "")
	d.SetBaseURL(ts.URL)
	_, err := d.Describe(context.Background(), "Bar", "", "")
	require.Error(t, err)
	require.Contains(t, err.Error(), "429")
}
