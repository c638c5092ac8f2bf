package http

// QueryRequest is one user query bound to a session.
type QueryRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
	Text      string `json:"text"`
}

// QueryResponse is the terminal result for a query.
type QueryResponse struct {
	Response   string `json:"response"`
	Disclaimer bool   `json:"disclaimer"`
	Category   string `json:"category"`
	Decision   string `json:"decision"`
}

// AgentMessage is one turn in a supervisor-style message list.
type AgentMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// AgentRequest is the supervisor entrypoint payload: the full message
// list for the conversation, most recent last.
type AgentRequest struct {
	SessionID string         `json:"sessionId"`
	Messages  []AgentMessage `json:"messages"`
}

// Agent endpoint status values.
const (
	AgentStatusSuccess = "success"
	AgentStatusError   = "error"
)

// AgentData is the payload of a successful supervisor reply.
type AgentData struct {
	Message    string `json:"message"`
	Disclaimer bool   `json:"disclaimer"`
	Category   string `json:"category,omitempty"`
	Decision   string `json:"decision,omitempty"`
}

// AgentResponse is the supervisor protocol envelope: a well-formed body
// on both success and failure.
type AgentResponse struct {
	AgentName    string     `json:"agent_name"`
	Status       string     `json:"status"`
	Data         *AgentData `json:"data"`
	ErrorMessage string     `json:"error_message"`
}
