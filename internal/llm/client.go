package llm

import (
	"context"
	"errors"
)

// ErrSuggestionUnavailable marks a failed or unusable model response. It is
// retryable and never touches the quote being built.
var ErrSuggestionUnavailable = errors.New("package suggestion unavailable")

// Client turns a meal summary into a comma-separated list of suggested
// catering packages.
type Client interface {
	SuggestPackages(ctx context.Context, mealSummary string) (string, error)
}
