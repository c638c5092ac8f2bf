package safety

import "fmt"

// TemplateID identifies a fixed, reviewed response template.
type TemplateID string

const (
	TemplateEmergency             TemplateID = "escalate-emergency"
	TemplateDiagnosisRefusal      TemplateID = "refuse-diagnosis"
	TemplatePrescriptionRefusal   TemplateID = "refuse-prescription"
	TemplateOutOfScopeRedirect    TemplateID = "refuse-out-of-scope"
	TemplateGenerationUnavailable TemplateID = "generation-unavailable"
	TemplateGreeting              TemplateID = "greeting"
)

// Templates is the global read-only refusal/escalation template set. It is
// built once and injected into the gate and synthesizer as an explicit
// dependency; templates are returned verbatim and never pass through
// generation.
type Templates struct {
	texts map[TemplateID]string
}

// DefaultTemplates returns the reviewed template set.
func DefaultTemplates() *Templates {
	return &Templates{texts: map[TemplateID]string{
		TemplateEmergency: "This may be an emergency. I'm not a medical professional and I can't " +
			"safely advise on this. Please call your local emergency number or seek urgent " +
			"medical help immediately.",
		TemplateDiagnosisRefusal: "I'm sorry, but I can't diagnose medical conditions — I'm not a " +
			"doctor. A healthcare professional can examine you properly and give you a real " +
			"answer. Would you like to talk about comfort or daily routines instead?",
		TemplatePrescriptionRefusal: "I can't recommend medicines or doses — only a doctor or " +
			"pharmacist can do that safely. I can help you plan reminders or organise a schedule " +
			"your doctor has already given you.",
		TemplateOutOfScopeRedirect: "I'm best at gentle, general guidance about everyday comfort, " +
			"sleep, mood, safety, and organising medication routines for older adults. For this " +
			"question, the site's general help section may serve you better.",
		TemplateGenerationUnavailable: "I'm having trouble contacting my AI model right now. For " +
			"anything related to health, especially if symptoms are new or strong, please contact " +
			"a doctor or nurse.",
		TemplateGreeting: "Hello! I'm an elder advice companion. I can offer gentle, general " +
			"guidance about common aches, daily routines, comfort, sleep, mood, and safety for " +
			"older adults. I'm not a doctor and I can't diagnose or prescribe medicines, so for " +
			"medical concerns you should always talk to a healthcare professional.",
	}}
}

// Text returns the template body. Unknown ids fail loudly: every id handed
// out by the gate must exist in the reviewed set.
func (t *Templates) Text(id TemplateID) (string, error) {
	text, ok := t.texts[id]
	if !ok {
		return "", fmt.Errorf("unknown template id %q", id)
	}
	return text, nil
}

// MustText is Text for ids guaranteed at compile time, panicking on a
// missing template (a wiring defect, not a runtime condition).
func (t *Templates) MustText(id TemplateID) string {
	text, err := t.Text(id)
	if err != nil {
		panic(err)
	}
	return text
}
