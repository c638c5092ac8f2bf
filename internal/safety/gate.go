package safety

import (
	"fmt"

	"elder-advice-agent/internal/taxonomy"
)

// DefaultThreshold is the activation threshold used for any category
// without an explicit override.
const DefaultThreshold = 0.5

// blockingPrecedence is the fixed order in which blocking categories are
// checked. Emergency strictly outranks diagnosis and prescription requests
// regardless of relative confidence.
var blockingPrecedence = []struct {
	category taxonomy.Category
	kind     DecisionKind
	template TemplateID
	reason   Reason
}{
	{taxonomy.CategoryEmergency, KindEscalate, TemplateEmergency, ReasonEmergency},
	{taxonomy.CategoryDiagnosis, KindRefuse, TemplateDiagnosisRefusal, ReasonDiagnosis},
	{taxonomy.CategoryPrescription, KindRefuse, TemplatePrescriptionRefusal, ReasonPrescription},
}

// allowedPrecedence lists allowable categories; the highest-scoring one
// above threshold wins, ties resolving in this order.
var allowedPrecedence = []taxonomy.Category{
	taxonomy.CategoryMedicationOrg,
	taxonomy.CategorySafety,
	taxonomy.CategorySleep,
	taxonomy.CategoryMood,
	taxonomy.CategoryGeneralWellness,
}

// Gate turns a classification into exactly one terminal decision. It is a
// pure function of its inputs and safe for concurrent use.
type Gate struct {
	thresholds map[taxonomy.Category]float64
}

// NewGate builds a gate with per-category threshold overrides. Categories
// absent from overrides use DefaultThreshold.
func NewGate(overrides map[taxonomy.Category]float64) *Gate {
	thresholds := make(map[taxonomy.Category]float64, len(taxonomy.AllCategories))
	for _, cat := range taxonomy.AllCategories {
		thresholds[cat] = DefaultThreshold
	}
	for cat, v := range overrides {
		thresholds[cat] = v
	}
	return &Gate{thresholds: thresholds}
}

// Decide applies the precedence rules to a classification. A category is
// "matched" only at or above its activation threshold, even if it holds
// the highest score overall.
func (g *Gate) Decide(c taxonomy.Classification) (Decision, error) {
	if err := c.Validate(); err != nil {
		return Decision{}, fmt.Errorf("%w: %v", ErrClassificationContract, err)
	}

	for _, b := range blockingPrecedence {
		if c[b.category] >= g.thresholds[b.category] {
			return Decision{
				Kind:       b.kind,
				TemplateID: b.template,
				Reason:     b.reason,
			}, nil
		}
	}

	var best taxonomy.Category
	bestScore := -1.0
	for _, cat := range allowedPrecedence {
		score := c[cat]
		if score >= g.thresholds[cat] && score > bestScore {
			best = cat
			bestScore = score
		}
	}
	if bestScore >= 0 {
		return Decision{
			Kind: KindAllow,
			Allow: &AllowContext{
				Category:   best,
				Confidence: bestScore,
			},
		}, nil
	}

	return Decision{
		Kind:       KindRefuse,
		TemplateID: TemplateOutOfScopeRedirect,
		Reason:     ReasonOutOfScope,
	}, nil
}

// Threshold reports the activation threshold for a category.
func (g *Gate) Threshold(cat taxonomy.Category) float64 {
	return g.thresholds[cat]
}
