package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// LLaMAClient talks to an OpenAI-compatible LLaMA endpoint. Used when no
// Gemini key is configured.
type LLaMAClient struct {
	apiKey string
	model  string
	apiURL string
	http   *http.Client
}

func NewLLaMAClient() *LLaMAClient {
	return &LLaMAClient{
		apiKey: os.Getenv("LLAMA_API_KEY"),
		model:  os.Getenv("LLAMA_MODEL"),
		apiURL: os.Getenv("LLAMA_API_URL"),
		http:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (l *LLaMAClient) SuggestPackages(ctx context.Context, mealSummary string) (string, error) {
	if l.apiKey == "" {
		return "", errors.New("missing LLAMA_API_KEY")
	}
	if l.apiURL == "" {
		return "", errors.New("missing LLAMA_API_URL")
	}
	if strings.TrimSpace(mealSummary) == "" {
		return "", fmt.Errorf("%w: empty meal summary", ErrSuggestionUnavailable)
	}

	payload := map[string]any{
		"model":       l.model,
		"input":       BuildSuggestPrompt(mealSummary),
		"temperature": 0.4,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.apiURL, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+l.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := l.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSuggestionUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSuggestionUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: llama api status %d", ErrSuggestionUnavailable, resp.StatusCode)
	}

	var parsed struct {
		OutputText    string `json:"output_text"`
		GeneratedText string `json:"generated_text"`
		Generation    struct {
			Text string `json:"text"`
		} `json:"generation"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("%w: %v", ErrSuggestionUnavailable, err)
	}

	for _, text := range []string{parsed.OutputText, parsed.GeneratedText, parsed.Generation.Text} {
		if text != "" {
			return strings.TrimSpace(text), nil
		}
	}

	return "", fmt.Errorf("%w: empty llama response", ErrSuggestionUnavailable)
}
