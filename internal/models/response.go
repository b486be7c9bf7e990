package models

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status  string            `json:"status"`
	Version string            `json:"version"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// ChatResponse is returned by POST /chat.
// ActionTaken is null when the model answered without invoking a tool.
type ChatResponse struct {
	AIResponse  string  `json:"ai_response"`
	ActionTaken *string `json:"action_taken"`
}
