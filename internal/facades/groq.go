package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avdeev89/chatbot-server/internal/logger"
)

const (
	// GroqEndpoint is the OpenAI-compatible chat completions endpoint.
	GroqEndpoint = "https://api.groq.com/openai/v1/chat/completions"
	// GroqModel is the model identifier sent with every completion request.
	GroqModel = "meta-llama/llama-4-scout-17b-16e-instruct"

	// RequestTimeout bounds a single completion call. There are no retries.
	RequestTimeout = 10 * time.Second
)

// Distinct failure variants of a completion call. Callers that degrade
// gracefully can still tell them apart in logs.
var (
	ErrRequestFailed     = errors.New("completion request failed")
	ErrBadStatus         = errors.New("completion returned non-success status")
	ErrMalformedResponse = errors.New("completion returned malformed response")
)

// GroqFacade calls the Groq chat completions API over HTTP.
type GroqFacade struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// Option configures a GroqFacade.
type Option func(*GroqFacade)

// WithBaseURL overrides the completion endpoint.
func WithBaseURL(url string) Option {
	return func(f *GroqFacade) {
		f.baseURL = url
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(f *GroqFacade) {
		f.client = client
	}
}

// NewGroqFacade creates a facade authenticated with the given API key.
func NewGroqFacade(apiKey string, opts ...Option) *GroqFacade {
	f := &GroqFacade{
		client:  &http.Client{Timeout: RequestTimeout},
		baseURL: GroqEndpoint,
		apiKey:  apiKey,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

type completionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string              `json:"model"`
	Messages    []completionMessage `json:"messages"`
	Temperature float64             `json:"temperature"`
}

type completionResponse struct {
	Choices []struct {
		Message completionMessage `json:"message"`
	} `json:"choices"`
}

// Complete sends the prompt as a single user message and returns the model's
// reply text. Every failure wraps one of the sentinel error variants.
func (f *GroqFacade) Complete(ctx context.Context, prompt string) (string, error) {
	payload := completionRequest{
		Model:       GroqModel,
		Messages:    []completionMessage{{Role: "user", Content: prompt}},
		Temperature: 1,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+f.apiKey)

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("completion request failed", "error", err)
		return "", fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Log.Errorw("completion returned error status", "status", resp.StatusCode, "body", string(respBody))
		return "", fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode)
	}

	var parsed completionResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices", ErrMalformedResponse)
	}

	return parsed.Choices[0].Message.Content, nil
}
