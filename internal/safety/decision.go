package safety

import "elder-advice-agent/internal/taxonomy"

// DecisionKind is the terminal outcome the gate picks for a query.
type DecisionKind string

const (
	KindAllow    DecisionKind = "allow"
	KindRefuse   DecisionKind = "refuse"
	KindEscalate DecisionKind = "escalate"
)

// Reason codes attached to refusals and escalations.
type Reason string

const (
	ReasonEmergency        Reason = "emergency-detected"
	ReasonDiagnosis        Reason = "diagnosis-request"
	ReasonPrescription     Reason = "prescription-request"
	ReasonOutOfScope       Reason = "out-of-scope"
	ReasonGenerationDrift  Reason = "generation-drift"
	ReasonGenerationOutage Reason = "generation-unavailable"
)

// AllowContext is passed downstream for prompt shaping on the allow path.
type AllowContext struct {
	Category   taxonomy.Category
	Confidence float64
}

// Decision is the tagged variant produced once per query. Exactly one of
// the kind-specific fields is meaningful.
type Decision struct {
	Kind       DecisionKind
	Allow      *AllowContext // set when Kind == KindAllow
	TemplateID TemplateID    // set when Kind is refuse or escalate
	Reason     Reason        // set when Kind is refuse or escalate
}
