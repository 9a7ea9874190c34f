package llm

import "context"

// Provider is the reasoning capability: prompt in, free text out. Decoding
// parameters are fixed at construction so identical prompts stay reproducible.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
