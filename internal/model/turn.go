package model

import "time"

// DecisionKind is the terminal outcome of a single query.
type DecisionKind string

const (
	DecisionAllow    DecisionKind = "allow"
	DecisionRefuse   DecisionKind = "refuse"
	DecisionEscalate DecisionKind = "escalate"
)

// ConversationTurn is one completed query/response pair in a session.
// A turn is only recorded after a full decision and response exist.
type ConversationTurn struct {
	Query     string
	Category  string
	Decision  DecisionKind
	Response  string
	Timestamp time.Time
}
