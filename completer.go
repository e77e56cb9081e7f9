package provscan

import "context"

// Completer sends an extraction prompt to a chat-completion service and
// returns the raw assistant text.
type Completer interface {
	// Complete returns the model's completion for the prompt.
	// Transport and HTTP-status errors return EUNAVAILABLE.
	Complete(ctx context.Context, prompt string) (string, error)
}
