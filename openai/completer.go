// Package openai provides a provscan.Completer backed by any
// OpenAI-compatible chat-completion endpoint (OpenAI, Ollama, LiteLLM,
// vLLM, ...).
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/provscan"
)

// DefaultTimeout is the default timeout for completion requests. Extraction
// prompts are large and small local models are slow, so this is generous.
const DefaultTimeout = 60 * time.Second

// temperature is fixed low: extraction wants determinism, not creativity.
const temperature = 0.1

// Ensure Completer implements provscan.Completer at compile time.
var _ provscan.Completer = (*Completer)(nil)

// Completer sends extraction prompts to an OpenAI-compatible
// chat-completion endpoint.
type Completer struct {
	endpoint string
	model    string
	apiKey   string
	client   *http.Client
	timeout  time.Duration
}

// Option configures a Completer.
type Option func(*Completer)

// WithTimeout sets the timeout for completion requests.
// Defaults to DefaultTimeout (60s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(c *Completer) {
		c.timeout = d
	}
}

// NewCompleter creates a new Completer for the given endpoint, model and
// bearer token.
func NewCompleter(endpoint, model, apiKey string, opts ...Option) *Completer {
	c := &Completer{
		endpoint: endpoint,
		model:    model,
		apiKey:   apiKey,
		timeout:  DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.client = &http.Client{
		Timeout: c.timeout,
	}

	return c
}

// chatRequest is the OpenAI-compatible request body.
type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the subset of the response the pipeline reads.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete posts the prompt as a single user message and returns the
// assistant's text. Transport errors and non-2xx statuses surface as
// EUNAVAILABLE.
func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    []message{{Role: "user", Content: prompt}},
		Temperature: temperature,
	})
	if err != nil {
		return "", provscan.Errorf(provscan.EINTERNAL, "encoding completion request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", provscan.Errorf(provscan.EINVALID, "invalid endpoint %q: %v", c.endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", provscan.Errorf(provscan.EUNAVAILABLE, "completion request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", provscan.Errorf(provscan.EUNAVAILABLE, "completion request: HTTP %d", resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", provscan.Errorf(provscan.EUNAVAILABLE, "reading completion response: %v", err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", provscan.Errorf(provscan.EINVALID, "decoding completion response: %v", err)
	}
	if len(parsed.Choices) == 0 {
		return "", provscan.Errorf(provscan.EINVALID, "completion response has no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}
