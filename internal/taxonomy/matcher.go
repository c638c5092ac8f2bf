package taxonomy

import (
	"strings"

	"elder-advice-agent/internal/model"
)

const (
	// negationWindow is how many tokens before a matched phrase a negator
	// may appear and still suppress the signal.
	negationWindow = 3

	// continuityWeight is the raw weight granted to the previous turn's
	// category when a follow-up cue matches and nothing else does.
	continuityWeight = 1.0
)

var severityMultiplier = map[Severity]float64{
	SeverityBenign:    1.0,
	SeveritySensitive: 1.1,
	SeverityBlocking:  1.25,
}

// Matcher classifies free text against the pattern table. It is a pure
// function of its inputs and safe for concurrent use.
type Matcher struct {
	table    *PatternTable
	negators map[string]bool
}

// NewMatcher builds a matcher over an immutable pattern table.
func NewMatcher(table *PatternTable) (*Matcher, error) {
	if table == nil {
		table = DefaultPatternTable()
	}
	total := 0
	for _, signals := range table.Signals {
		total += len(signals)
	}
	if total == 0 {
		return nil, ErrEmptyPattern
	}

	negators := make(map[string]bool, len(table.Negators))
	for _, n := range table.Negators {
		negators[strings.ToLower(n)] = true
	}

	return &Matcher{table: table, negators: negators}, nil
}

// Classify scores the query against every category. Confidences are
// deterministic for identical text and history. Empty or whitespace-only
// text fails with ErrEmptyInput.
func (m *Matcher) Classify(text string, history []model.ConversationTurn) (Classification, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}

	tokens := tokenize(text)

	result := make(Classification, len(AllCategories))
	anyMatch := false
	for _, cat := range AllCategories {
		raw := 0.0
		for _, sig := range m.table.Signals[cat] {
			if m.phraseMatches(tokens, sig.Phrase) {
				raw += sig.Weight
			}
		}
		raw *= severityMultiplier[cat.Severity()]
		if raw > 0 {
			anyMatch = true
		}
		result[cat] = squash(raw)
	}

	// Follow-up continuity: a cue like "anything else?" with no lexical
	// match of its own inherits the previous allowed turn's category.
	if !anyMatch {
		if cat, ok := m.continuityCategory(tokens, history); ok {
			result[cat] = squash(continuityWeight)
		}
	}

	return result, nil
}

// phraseMatches reports whether the phrase occurs in tokens without a
// negator in the window immediately before it.
func (m *Matcher) phraseMatches(tokens []string, phrase string) bool {
	want := tokenize(phrase)
	if len(want) == 0 || len(want) > len(tokens) {
		return false
	}

	for start := 0; start+len(want) <= len(tokens); start++ {
		matched := true
		for j, w := range want {
			if tokens[start+j] != w {
				matched = false
				break
			}
		}
		if !matched {
			continue
		}
		if m.negatedBefore(tokens, start) {
			continue
		}
		return true
	}
	return false
}

func (m *Matcher) negatedBefore(tokens []string, start int) bool {
	for i := start - 1; i >= 0 && i >= start-negationWindow; i-- {
		if m.negators[tokens[i]] {
			return true
		}
	}
	return false
}

func (m *Matcher) continuityCategory(tokens []string, history []model.ConversationTurn) (Category, bool) {
	if len(history) == 0 {
		return "", false
	}
	last := history[len(history)-1]
	if last.Decision != model.DecisionAllow {
		return "", false
	}
	cat := Category(last.Category)
	if !cat.Valid() || !cat.Allowable() {
		return "", false
	}
	for _, cue := range m.table.ContinuityCues {
		if m.phraseMatches(tokens, cue) {
			return cat, true
		}
	}
	return "", false
}

// squash maps a raw additive weight into [0,1). A single weight-1.0 signal
// lands exactly on the default 0.5 activation threshold.
func squash(raw float64) float64 {
	if raw <= 0 {
		return 0
	}
	return raw / (raw + 1)
}

// tokenize lowercases and splits text into words, keeping apostrophes so
// contractions like "don't" survive as single tokens.
func tokenize(text string) []string {
	lowered := strings.ToLower(text)
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '\'', r == '’':
			if r == '’' {
				return '\''
			}
			return r
		default:
			return ' '
		}
	}, lowered)
	return strings.Fields(mapped)
}
