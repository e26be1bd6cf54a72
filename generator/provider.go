package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	deployerrors "github.com/nitinsinghh27/TDS-PR1/errors"
)

// TextGenerator produces free text for a prompt. Implementations wrap one
// generative backend; the backend is selected once at startup.
type TextGenerator interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
}

// OpenAIChat calls an OpenAI-compatible chat-completions endpoint.
type OpenAIChat struct {
	URL    string
	APIKey string
	Model  string
	// Client defaults to http.DefaultClient; deadlines come from the caller's context
	Client *http.Client
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Generate sends one chat-completion request. All failures, including
// malformed responses, surface as ErrGenerationProvider so the caller can
// fall back to the template.
func (g *OpenAIChat) Generate(ctx context.Context, system, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: g.Model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   4096,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("%w: encoding request: %v", deployerrors.ErrGenerationProvider, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.URL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", deployerrors.ErrGenerationProvider, err)
	}
	req.Header.Set("Authorization", "Bearer "+g.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client().Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", deployerrors.ErrGenerationProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("%w: status %d: %s", deployerrors.ErrGenerationProvider, resp.StatusCode, detail)
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: decoding response: %v", deployerrors.ErrGenerationProvider, err)
	}
	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%w: response has no content", deployerrors.ErrGenerationProvider)
	}
	return out.Choices[0].Message.Content, nil
}

func (g *OpenAIChat) client() *http.Client {
	if g.Client != nil {
		return g.Client
	}
	return http.DefaultClient
}
