// Package llm defines the language model contract the pipeline services
// depend on.
package llm

import "context"

// LanguageModel sends a prompt to a text completion backend.
type LanguageModel interface {
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
}
