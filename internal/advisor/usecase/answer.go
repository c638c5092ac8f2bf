package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"elder-advice-agent/internal/advisor"
	"elder-advice-agent/internal/model"
	"elder-advice-agent/internal/safety"
	"elder-advice-agent/internal/taxonomy"
	"elder-advice-agent/pkg/llmprovider"
)

// Answer classifies the query, applies the safety gate, and produces
// exactly one terminal response. Refusal and escalation templates are
// returned verbatim and never pass through generation.
func (uc *implUseCase) Answer(ctx context.Context, sc model.Scope, input advisor.AnswerInput) (advisor.AnswerOutput, error) {
	history := uc.sessions.Recent(sc.SessionID, uc.historyWindow)

	classification, err := uc.matcher.Classify(input.Text, history)
	if err != nil {
		if errors.Is(err, taxonomy.ErrEmptyInput) {
			return advisor.AnswerOutput{}, advisor.ErrEmptyQuery
		}
		return advisor.AnswerOutput{}, fmt.Errorf("classify: %w", err)
	}

	decision, err := uc.gate.Decide(classification)
	if err != nil {
		// Contract violations are defects; surface them, never default.
		return advisor.AnswerOutput{}, fmt.Errorf("gate: %w", err)
	}

	switch decision.Kind {
	case safety.KindEscalate, safety.KindRefuse:
		return uc.answerFromTemplate(ctx, sc, input.Text, decision)
	case safety.KindAllow:
		return uc.answerAllowed(ctx, sc, input.Text, classification, decision, history)
	default:
		return advisor.AnswerOutput{}, fmt.Errorf("gate: unknown decision kind %q", decision.Kind)
	}
}

// Greeting returns the standing introduction template.
func (uc *implUseCase) Greeting() string {
	return uc.templates.MustText(safety.TemplateGreeting)
}

// answerFromTemplate serves refusal and escalation paths from the static
// template set, without invoking generation.
func (uc *implUseCase) answerFromTemplate(ctx context.Context, sc model.Scope, query string, decision safety.Decision) (advisor.AnswerOutput, error) {
	text, err := uc.templates.Text(decision.TemplateID)
	if err != nil {
		return advisor.AnswerOutput{}, fmt.Errorf("template: %w", err)
	}

	out := advisor.AnswerOutput{
		Response:   text,
		Disclaimer: false,
		Category:   categoryForReason(decision.Reason),
		Decision:   decisionKind(decision.Kind),
	}

	uc.audit.Record(sc.SessionID, "decision_"+string(decision.Kind), string(decision.Reason))
	if decision.Kind == safety.KindEscalate {
		uc.l.Warnf(ctx, "escalation: session=%s reason=%s", sc.SessionID, decision.Reason)
	}

	uc.appendTurn(sc.SessionID, query, out)
	return out, nil
}

// answerAllowed serves the allow path: canned rule replies first, then
// bounded generation with the mandatory post-filter.
func (uc *implUseCase) answerAllowed(ctx context.Context, sc model.Scope, query string, classification taxonomy.Classification, decision safety.Decision, history []model.ConversationTurn) (advisor.AnswerOutput, error) {
	allow := decision.Allow

	if reply, ok := uc.rules.Reply(query); ok {
		out := advisor.AnswerOutput{
			Response:   reply,
			Disclaimer: true,
			Category:   allow.Category,
			Decision:   model.DecisionAllow,
		}
		uc.audit.Record(sc.SessionID, "decision_allow", "rule-engine")
		uc.appendTurn(sc.SessionID, query, out)
		return out, nil
	}

	genCtx, cancel := context.WithTimeout(ctx, uc.generationTimeout)
	defer cancel()

	resp, err := uc.llm.GenerateContent(genCtx, &llmprovider.Request{
		Messages:    uc.buildMessages(allow, query, history),
		Temperature: generationTemperature,
		MaxTokens:   generationMaxTokens,
	})
	if err != nil {
		// Caller gone: abandon without touching session history.
		if ctx.Err() != nil {
			return advisor.AnswerOutput{}, ctx.Err()
		}

		// Generation outages are recoverable: serve the safe fallback.
		uc.l.Warnf(ctx, "generation unavailable: session=%s err=%v", sc.SessionID, err)
		uc.audit.Record(sc.SessionID, "generation_unavailable", err.Error())

		out := advisor.AnswerOutput{
			Response:   uc.templates.MustText(safety.TemplateGenerationUnavailable),
			Disclaimer: false,
			Category:   allow.Category,
			Decision:   model.DecisionAllow,
		}
		uc.appendTurn(sc.SessionID, query, out)
		return out, nil
	}

	out, err := uc.postFilter(ctx, sc, allow, resp.Content)
	if err != nil {
		return advisor.AnswerOutput{}, err
	}

	uc.appendTurn(sc.SessionID, query, out)
	return out, nil
}

// postFilter re-runs the matcher on generated text. The last line of
// defense: a blocking match replaces the output with the corresponding
// template. Never skipped.
func (uc *implUseCase) postFilter(ctx context.Context, sc model.Scope, allow *safety.AllowContext, generated string) (advisor.AnswerOutput, error) {
	classification, err := uc.matcher.Classify(generated, nil)
	if err != nil {
		// Generated text empty or unusable; fall back to the outage template.
		uc.audit.Record(sc.SessionID, "generation_empty", "")
		return advisor.AnswerOutput{
			Response:   uc.templates.MustText(safety.TemplateGenerationUnavailable),
			Disclaimer: false,
			Category:   allow.Category,
			Decision:   model.DecisionAllow,
		}, nil
	}

	check, err := uc.gate.Decide(classification)
	if err != nil {
		return advisor.AnswerOutput{}, fmt.Errorf("post-filter gate: %w", err)
	}

	if check.Kind == safety.KindEscalate ||
		(check.Kind == safety.KindRefuse && check.Reason != safety.ReasonOutOfScope) {
		uc.l.Warnf(ctx, "post-filter drift: session=%s reason=%s", sc.SessionID, check.Reason)
		uc.audit.RecordDrift(sc.SessionID, string(check.Reason))

		text, err := uc.templates.Text(check.TemplateID)
		if err != nil {
			return advisor.AnswerOutput{}, fmt.Errorf("post-filter template: %w", err)
		}
		return advisor.AnswerOutput{
			Response:   text,
			Disclaimer: false,
			Category:   categoryForReason(check.Reason),
			Decision:   decisionKind(check.Kind),
		}, nil
	}

	return advisor.AnswerOutput{
		Response:   generated,
		Disclaimer: true,
		Category:   allow.Category,
		Decision:   model.DecisionAllow,
	}, nil
}

// appendTurn records a completed query/response pair. Only called once a
// full decision and response exist.
func (uc *implUseCase) appendTurn(sessionID, query string, out advisor.AnswerOutput) {
	uc.sessions.Append(sessionID, model.ConversationTurn{
		Query:     query,
		Category:  string(out.Category),
		Decision:  out.Decision,
		Response:  out.Response,
		Timestamp: time.Now().UTC(),
	})
}

func categoryForReason(reason safety.Reason) taxonomy.Category {
	switch reason {
	case safety.ReasonEmergency:
		return taxonomy.CategoryEmergency
	case safety.ReasonDiagnosis:
		return taxonomy.CategoryDiagnosis
	case safety.ReasonPrescription:
		return taxonomy.CategoryPrescription
	default:
		return taxonomy.CategoryOutOfScope
	}
}

func decisionKind(kind safety.DecisionKind) model.DecisionKind {
	switch kind {
	case safety.KindEscalate:
		return model.DecisionEscalate
	case safety.KindRefuse:
		return model.DecisionRefuse
	default:
		return model.DecisionAllow
	}
}
