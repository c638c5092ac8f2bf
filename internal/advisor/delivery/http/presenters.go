package http

import (
	"elder-advice-agent/internal/advisor"
	"elder-advice-agent/internal/model"
)

func newQueryResponse(out advisor.AnswerOutput) QueryResponse {
	return QueryResponse{
		Response:   out.Response,
		Disclaimer: out.Disclaimer,
		Category:   string(out.Category),
		Decision:   string(out.Decision),
	}
}

func newAgentResponse(out advisor.AnswerOutput) AgentResponse {
	return AgentResponse{
		AgentName: model.AgentName,
		Status:    AgentStatusSuccess,
		Data: &AgentData{
			Message:    out.Response,
			Disclaimer: out.Disclaimer,
			Category:   string(out.Category),
			Decision:   string(out.Decision),
		},
	}
}

func newAgentGreeting(message string) AgentResponse {
	return AgentResponse{
		AgentName: model.AgentName,
		Status:    AgentStatusSuccess,
		Data:      &AgentData{Message: message},
	}
}

func newAgentError(err error) AgentResponse {
	return AgentResponse{
		AgentName:    model.AgentName,
		Status:       AgentStatusError,
		ErrorMessage: err.Error(),
	}
}
