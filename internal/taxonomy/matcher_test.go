package taxonomy

import (
	"errors"
	"testing"
	"time"

	"elder-advice-agent/internal/model"
)

func newTestMatcher(t *testing.T) *Matcher {
	t.Helper()
	m, err := NewMatcher(DefaultPatternTable())
	if err != nil {
		t.Fatalf("failed to build matcher: %v", err)
	}
	return m
}

func TestClassifyEmptyInput(t *testing.T) {
	m := newTestMatcher(t)

	for _, text := range []string{"", "   ", "\n\t "} {
		if _, err := m.Classify(text, nil); !errors.Is(err, ErrEmptyInput) {
			t.Errorf("Classify(%q): expected ErrEmptyInput, got %v", text, err)
		}
	}
}

func TestClassifyCoversAllCategories(t *testing.T) {
	m := newTestMatcher(t)

	c, err := m.Classify("hello there", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("classification fails its own contract: %v", err)
	}
	for cat, score := range c {
		if score != 0 {
			t.Errorf("expected zero confidence for %s on unrelated text, got %f", cat, score)
		}
	}
}

func TestClassifyEmergency(t *testing.T) {
	m := newTestMatcher(t)

	cases := []string{
		"I have sudden chest pain and trouble breathing",
		"My father fell and can't get up",
		"She passed out in the kitchen",
		"Grandpa is unresponsive",
		"I want to die, nothing matters anymore",
	}
	for _, text := range cases {
		t.Run(text, func(t *testing.T) {
			c, err := m.Classify(text, nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c[CategoryEmergency] < 0.5 {
				t.Errorf("expected emergency confidence >= 0.5, got %f", c[CategoryEmergency])
			}
		})
	}
}

func TestClassifyNegation(t *testing.T) {
	m := newTestMatcher(t)

	c, err := m.Classify("I don't have any chest pain, just trouble sleeping", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c[CategoryEmergency] != 0 {
		t.Errorf("negated chest pain must not trigger emergency, got %f", c[CategoryEmergency])
	}
	if c[CategorySleep] < 0.5 {
		t.Errorf("expected sleep confidence >= 0.5, got %f", c[CategorySleep])
	}
	if top, _ := c.Top(); top != CategorySleep {
		t.Errorf("expected top category sleep, got %s", top)
	}
}

func TestClassifyOverlappingCategories(t *testing.T) {
	m := newTestMatcher(t)

	c, err := m.Classify("What medicine should I take for my headache?", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c[CategoryPrescription] < 0.5 {
		t.Errorf("expected prescription-request above threshold, got %f", c[CategoryPrescription])
	}
	// Overlap: "medicine" and "headache" give the allowed categories
	// nonzero confidence too.
	if c[CategoryMedicationOrg] == 0 {
		t.Errorf("expected nonzero medication-organization confidence")
	}
	if c[CategoryGeneralWellness] == 0 {
		t.Errorf("expected nonzero general-wellness confidence")
	}
}

func TestClassifyDeterministic(t *testing.T) {
	m := newTestMatcher(t)

	const text = "I can't sleep well lately, any tips?"
	first, err := m.Classify(text, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := m.Classify(text, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, cat := range AllCategories {
			if first[cat] != again[cat] {
				t.Fatalf("confidence for %s changed between runs: %f vs %f", cat, first[cat], again[cat])
			}
		}
	}
}

func TestClassifyDiagnosisClaims(t *testing.T) {
	m := newTestMatcher(t)

	t.Run("Generated Diagnostic Claim", func(t *testing.T) {
		c, err := m.Classify("Based on your symptoms, you have arthritis in your knees.", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c[CategoryDiagnosis] < 0.5 {
			t.Errorf("expected diagnosis-request above threshold, got %f", c[CategoryDiagnosis])
		}
	})

	t.Run("Benign You Have", func(t *testing.T) {
		c, err := m.Classify("Do you have tips for better sleep?", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c[CategoryDiagnosis] >= 0.5 {
			t.Errorf("benign phrasing must not cross diagnosis threshold, got %f", c[CategoryDiagnosis])
		}
	})

	t.Run("User Diagnosis Request", func(t *testing.T) {
		c, err := m.Classify("Do I have arthritis?", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c[CategoryDiagnosis] < 0.5 {
			t.Errorf("expected diagnosis-request above threshold, got %f", c[CategoryDiagnosis])
		}
	})
}

func TestClassifyContinuity(t *testing.T) {
	m := newTestMatcher(t)

	history := []model.ConversationTurn{
		{
			Query:     "I can't sleep well lately, any tips?",
			Category:  string(CategorySleep),
			Decision:  model.DecisionAllow,
			Response:  "Try a calm evening routine.",
			Timestamp: time.Now(),
		},
	}

	t.Run("Follow-Up Inherits Category", func(t *testing.T) {
		c, err := m.Classify("anything else?", history)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c[CategorySleep] < 0.5 {
			t.Errorf("expected follow-up to inherit sleep, got %f", c[CategorySleep])
		}
	})

	t.Run("No History No Inheritance", func(t *testing.T) {
		c, err := m.Classify("anything else?", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c[CategorySleep] != 0 {
			t.Errorf("expected zero sleep confidence without history, got %f", c[CategorySleep])
		}
	})

	t.Run("Refused Turn Not Inherited", func(t *testing.T) {
		refused := []model.ConversationTurn{
			{Query: "what should I take?", Category: string(CategoryPrescription), Decision: model.DecisionRefuse},
		}
		c, err := m.Classify("anything else?", refused)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, cat := range AllCategories {
			if c[cat] != 0 {
				t.Errorf("expected zero confidence for %s after refused turn, got %f", cat, c[cat])
			}
		}
	})
}
