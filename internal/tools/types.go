// Package tools defines the Tool type, the registry the orchestration
// resolves tool calls against, and the built-in tool implementations.
package tools

import "context"

// Tool represents a callable function the LLM can invoke
type Tool struct {
	Name        string
	Description string
	InputSchema map[string]interface{}
	Execute     func(ctx context.Context, input map[string]interface{}) (string, error)
}
