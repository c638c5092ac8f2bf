package advisor

import (
	"context"

	"elder-advice-agent/internal/model"
)

// UseCase defines the business logic interface for the advisor domain.
type UseCase interface {
	// Answer runs a query through classification, the safety gate, and
	// (when allowed) response synthesis with a mandatory post-filter.
	Answer(ctx context.Context, sc model.Scope, input AnswerInput) (AnswerOutput, error)

	// Greeting returns the standing introduction used when there is no
	// user message to answer.
	Greeting() string
}
