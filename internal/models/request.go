package models

// ChatRequest for POST /chat
type ChatRequest struct {
	UserQuery string `json:"user_query"`
}
