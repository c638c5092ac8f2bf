// Package rules is a small canned-reply engine for a few common
// elder-care intents, checked on the allow path before invoking the
// generation capability.
package rules

import "strings"

// rule matches when every phrase in All and at least one phrase in Any
// (when non-empty) occurs in the lowercased query.
type rule struct {
	all   []string
	any   []string
	reply string
}

var defaultRules = []rule{
	{
		all: []string{"remind", "medication"},
		reply: "I can help you plan safe times to take your medication, but I can't change " +
			"your prescription. Has a doctor given you instructions for when to take it?",
	},
	{
		any: []string{"feeling lonely", "feel lonely"},
		reply: "I'm sorry you're feeling lonely. We can talk about ways to stay connected " +
			"with friends, family, or local groups. Would you like some ideas?",
	},
	{
		all: []string{"exercise"},
		any: []string{"safe", "okay"},
		reply: "Gentle activities such as walking or stretching are often helpful, but it " +
			"depends on your health. It's best to ask your doctor what level of activity is " +
			"safe for you.",
	},
}

// Engine returns canned replies for queries matching a known intent.
type Engine struct {
	rules []rule
}

// NewEngine builds the engine with the built-in rule set.
func NewEngine() *Engine {
	return &Engine{rules: defaultRules}
}

// Reply returns a canned reply and true when a rule matches, or "" and
// false when the query should fall through to generation.
func (e *Engine) Reply(text string) (string, bool) {
	lowered := strings.ToLower(text)

	for _, r := range e.rules {
		if !containsAll(lowered, r.all) {
			continue
		}
		if len(r.any) > 0 && !containsAny(lowered, r.any) {
			continue
		}
		return r.reply, true
	}
	return "", false
}

func containsAll(text string, phrases []string) bool {
	for _, p := range phrases {
		if !strings.Contains(text, p) {
			return false
		}
	}
	return true
}

func containsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}
