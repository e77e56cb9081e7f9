// Package gemini provides a provscan.Completer backed by Google Gemini,
// for runs where no OpenAI-compatible endpoint is available.
package gemini

import (
	"context"

	"github.com/fwojciec/provscan"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Completer implements provscan.Completer at compile time.
var _ provscan.Completer = (*Completer)(nil)

// Completer sends extraction prompts to the Gemini API.
type Completer struct {
	client *genai.Client
	model  string
}

// NewCompleter creates a new Completer. An empty model selects DefaultModel.
func NewCompleter(client *genai.Client, model string) *Completer {
	if model == "" {
		model = DefaultModel
	}
	return &Completer{client: client, model: model}
}

// Complete sends the prompt and returns the model's text.
func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", provscan.Errorf(provscan.EINVALID, "prompt required")
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", provscan.Errorf(provscan.EUNAVAILABLE, "gemini completion: %v", err)
	}
	if result == nil {
		return "", provscan.Errorf(provscan.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for extraction calls.
// Temperature matches the OpenAI backend so the two are interchangeable.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.1)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You extract structured data from clinician profile pages. Respond with a single JSON object and nothing else.",
			}},
		},
		Temperature: &temp,
	}
}
