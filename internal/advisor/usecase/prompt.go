package usecase

import (
	"elder-advice-agent/internal/model"
	"elder-advice-agent/internal/safety"
	"elder-advice-agent/internal/taxonomy"
	"elder-advice-agent/pkg/llmprovider"
)

// systemPreamble is the fixed, non-overridable policy prompt. It is placed
// first in every generation request and never altered at runtime.
const systemPreamble = `You are an elder advice assistant for older adults and their caregivers.
You give gentle, respectful, simple advice about:
- everyday aches and pains
- comfort, sleep, daily routines, mood, loneliness, and safety
- organising medication schedules (but not changing doses)

SAFETY RULES (very important):
- You are NOT a doctor and must NOT claim to be one.
- Do NOT diagnose medical conditions.
- Do NOT prescribe or change medicines or doses.
- For strong, sudden, or worrying symptoms, always advise contacting a doctor or local emergency services.
- Use short paragraphs and clear, simple language.
- Be kind and supportive.`

// categoryGuidance shapes the reply per matched category.
var categoryGuidance = map[taxonomy.Category]string{
	taxonomy.CategoryGeneralWellness: "The user is asking about everyday comfort or wellness. Offer gentle, practical suggestions.",
	taxonomy.CategorySleep:           "The user is asking about sleep. Suggest calming routines and sleep hygiene, never sleeping pills.",
	taxonomy.CategoryMood:            "The user is asking about mood or loneliness. Be warm and encouraging, and suggest staying connected with people they trust.",
	taxonomy.CategorySafety:          "The user is asking about safety at home. Offer practical fall-prevention and home-safety ideas.",
	taxonomy.CategoryMedicationOrg:   "The user is asking about organising medication routines. Help with schedules and reminders only; never suggest doses or changes.",
}

// buildMessages assembles the bounded prompt: policy preamble, category
// guidance, recent history, then the current query.
func (uc *implUseCase) buildMessages(allow *safety.AllowContext, text string, history []model.ConversationTurn) []llmprovider.Message {
	system := systemPreamble
	if guidance, ok := categoryGuidance[allow.Category]; ok {
		system += "\n\n" + guidance
	}

	messages := make([]llmprovider.Message, 0, 2*len(history)+2)
	messages = append(messages, llmprovider.Message{Role: "system", Content: system})

	for _, turn := range history {
		messages = append(messages,
			llmprovider.Message{Role: "user", Content: turn.Query},
			llmprovider.Message{Role: "assistant", Content: turn.Response},
		)
	}

	messages = append(messages, llmprovider.Message{Role: "user", Content: text})
	return messages
}
