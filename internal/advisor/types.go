package advisor

import (
	"elder-advice-agent/internal/model"
	"elder-advice-agent/internal/taxonomy"
)

// AnswerInput is the input for answering a single query.
type AnswerInput struct {
	Text string // Raw free-text query from the user
}

// AnswerOutput is the terminal result for a query: exactly one decision,
// exactly one response.
type AnswerOutput struct {
	Response   string
	Disclaimer bool // true only on allow-path responses; templates are self-contained
	Category   taxonomy.Category
	Decision   model.DecisionKind
}
