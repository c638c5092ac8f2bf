package safety

import (
	"errors"
	"testing"

	"elder-advice-agent/internal/taxonomy"
)

// fullClassification builds a valid classification with every category at
// zero, then applies the given scores.
func fullClassification(scores map[taxonomy.Category]float64) taxonomy.Classification {
	c := make(taxonomy.Classification, len(taxonomy.AllCategories))
	for _, cat := range taxonomy.AllCategories {
		c[cat] = 0
	}
	for cat, s := range scores {
		c[cat] = s
	}
	return c
}

func TestGateContractViolations(t *testing.T) {
	g := NewGate(nil)

	t.Run("Missing Categories", func(t *testing.T) {
		_, err := g.Decide(taxonomy.Classification{taxonomy.CategorySleep: 0.9})
		if !errors.Is(err, ErrClassificationContract) {
			t.Errorf("expected ErrClassificationContract, got %v", err)
		}
	})

	t.Run("Score Out Of Range", func(t *testing.T) {
		c := fullClassification(map[taxonomy.Category]float64{taxonomy.CategorySleep: 1.5})
		if _, err := g.Decide(c); !errors.Is(err, ErrClassificationContract) {
			t.Errorf("expected ErrClassificationContract, got %v", err)
		}
	})
}

func TestGatePrecedence(t *testing.T) {
	g := NewGate(nil)

	t.Run("Emergency Beats Everything", func(t *testing.T) {
		c := fullClassification(map[taxonomy.Category]float64{
			taxonomy.CategoryEmergency: 0.55,
			taxonomy.CategoryDiagnosis: 0.99,
			taxonomy.CategorySleep:     0.99,
		})
		d, err := g.Decide(c)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Kind != KindEscalate {
			t.Errorf("expected escalate, got %s", d.Kind)
		}
		if d.TemplateID != TemplateEmergency || d.Reason != ReasonEmergency {
			t.Errorf("unexpected template/reason: %s/%s", d.TemplateID, d.Reason)
		}
	})

	t.Run("Diagnosis Beats Prescription And Allowed", func(t *testing.T) {
		c := fullClassification(map[taxonomy.Category]float64{
			taxonomy.CategoryDiagnosis:    0.6,
			taxonomy.CategoryPrescription: 0.9,
			taxonomy.CategorySleep:        0.9,
		})
		d, err := g.Decide(c)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Kind != KindRefuse || d.TemplateID != TemplateDiagnosisRefusal {
			t.Errorf("expected diagnosis refusal, got %s/%s", d.Kind, d.TemplateID)
		}
	})

	t.Run("Prescription Refusal", func(t *testing.T) {
		c := fullClassification(map[taxonomy.Category]float64{
			taxonomy.CategoryPrescription:    0.86,
			taxonomy.CategoryMedicationOrg:   0.52,
			taxonomy.CategoryGeneralWellness: 0.5,
		})
		d, err := g.Decide(c)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Kind != KindRefuse || d.TemplateID != TemplatePrescriptionRefusal {
			t.Errorf("expected prescription refusal, got %s/%s", d.Kind, d.TemplateID)
		}
	})

	t.Run("Blocking Below Threshold Ignored", func(t *testing.T) {
		c := fullClassification(map[taxonomy.Category]float64{
			taxonomy.CategoryEmergency: 0.49,
			taxonomy.CategorySleep:     0.7,
		})
		d, err := g.Decide(c)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Kind != KindAllow {
			t.Fatalf("expected allow, got %s", d.Kind)
		}
		if d.Allow.Category != taxonomy.CategorySleep {
			t.Errorf("expected sleep, got %s", d.Allow.Category)
		}
	})

	t.Run("Highest Allowed Category Wins", func(t *testing.T) {
		c := fullClassification(map[taxonomy.Category]float64{
			taxonomy.CategorySleep: 0.6,
			taxonomy.CategoryMood:  0.8,
		})
		d, err := g.Decide(c)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Kind != KindAllow || d.Allow.Category != taxonomy.CategoryMood {
			t.Errorf("expected mood allow, got %+v", d)
		}
		if d.Allow.Confidence != 0.8 {
			t.Errorf("expected confidence 0.8, got %f", d.Allow.Confidence)
		}
	})

	t.Run("Everything Below Threshold Is Out Of Scope", func(t *testing.T) {
		c := fullClassification(map[taxonomy.Category]float64{
			taxonomy.CategorySleep: 0.3,
			taxonomy.CategoryMood:  0.2,
		})
		d, err := g.Decide(c)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Kind != KindRefuse || d.TemplateID != TemplateOutOfScopeRedirect || d.Reason != ReasonOutOfScope {
			t.Errorf("expected out-of-scope refusal, got %+v", d)
		}
	})
}

func TestGateThresholdOverrides(t *testing.T) {
	g := NewGate(map[taxonomy.Category]float64{
		taxonomy.CategoryEmergency: 0.3,
	})

	c := fullClassification(map[taxonomy.Category]float64{
		taxonomy.CategoryEmergency: 0.35,
		taxonomy.CategorySleep:     0.9,
	})
	d, err := g.Decide(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Kind != KindEscalate {
		t.Errorf("lowered emergency threshold should escalate, got %s", d.Kind)
	}
	if g.Threshold(taxonomy.CategorySleep) != DefaultThreshold {
		t.Errorf("unrelated categories keep the default threshold")
	}
}

func TestTemplates(t *testing.T) {
	tpl := DefaultTemplates()

	for _, id := range []TemplateID{
		TemplateEmergency,
		TemplateDiagnosisRefusal,
		TemplatePrescriptionRefusal,
		TemplateOutOfScopeRedirect,
		TemplateGenerationUnavailable,
		TemplateGreeting,
	} {
		text, err := tpl.Text(id)
		if err != nil {
			t.Errorf("template %s: %v", id, err)
		}
		if text == "" {
			t.Errorf("template %s is empty", id)
		}
	}

	if _, err := tpl.Text("nope"); err == nil {
		t.Errorf("expected error for unknown template id")
	}
}
