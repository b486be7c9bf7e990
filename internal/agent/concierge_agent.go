package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/conciergeai/conciergeai/internal/tools"
	"github.com/rs/zerolog/log"
)

// ToolCall represents a tool invocation request from the LLM
type ToolCall struct {
	ID    string
	Name  string
	Input map[string]interface{}
}

// SystemPrompt is the fixed instruction sent with every model call.
const SystemPrompt = `You are Aria, the friendly virtual front-desk assistant for Luma Studio.

RULES:
1. Prefer the supplied context when answering; do not contradict it
2. Use the book_appointment tool for any booking or scheduling request
3. Use the check_order_status tool for any order status question
4. Keep answers short, warm and concrete
5. Never invent order details or appointment confirmations - only report what a tool returned`

// messageCreator is the slice of the Anthropic client the agent needs.
// Tests substitute a scripted implementation.
type messageCreator interface {
	New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

// ConciergeAgent wraps the Anthropic SDK for the retrieval-augmented,
// tool-calling chat flow. At most one tool round-trip happens per request:
// the first model response may request tools, the first requested call is
// executed, and a second model call produces the final answer.
type ConciergeAgent struct {
	messages  messageCreator
	registry  *tools.Registry
	model     string
	maxTokens int
}

// NewConciergeAgent creates an agent backed by Anthropic Claude or a
// compatible provider behind baseURL.
func NewConciergeAgent(apiKey, model, baseURL string, registry *tools.Registry) *ConciergeAgent {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	client := anthropic.NewClient(opts...)
	return &ConciergeAgent{
		messages:  client.Messages,
		registry:  registry,
		model:     model,
		maxTokens: 1024,
	}
}

// Chat runs the two-round flow for one combined context+question prompt.
// actionTaken is nil unless a known tool was executed, in which case it holds
// a human-readable "name(argsAsJSON) -> result" record. Only the first tool
// call in a model turn is honored; extra requests are skipped.
func (a *ConciergeAgent) Chat(ctx context.Context, prompt string) (answer string, actionTaken *string, err error) {
	toolParams := a.buildToolParams()

	messages := []anthropic.MessageParam{
		anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
	}

	resp, err := a.callModel(ctx, messages, toolParams)
	if err != nil {
		return "", nil, fmt.Errorf("model call failed: %w", err)
	}

	text, toolCalls := parseResponse(resp)

	log.Debug().
		Str("stop_reason", string(resp.StopReason)).
		Int("tool_calls", len(toolCalls)).
		Msg("first model response")

	if len(toolCalls) == 0 {
		return text, nil, nil
	}

	// Only the first requested call is honored; the flow is a single
	// round-trip, not a loop.
	tc := toolCalls[0]
	if len(toolCalls) > 1 {
		log.Debug().Int("skipped", len(toolCalls)-1).Msg("extra tool calls ignored")
	}

	result, found := a.registry.Execute(ctx, tc.Name, tc.Input)
	if !found {
		log.Warn().Str("tool", tc.Name).Msg("model requested unknown tool")
		return fmt.Sprintf("I tried to call a function named '%s', but it is not available.", tc.Name), nil, nil
	}

	argsJSON, _ := json.Marshal(tc.Input)
	action := fmt.Sprintf("%s(%s) -> %s", tc.Name, argsJSON, result)

	// Feed the tool result back: the model's tool-call turn, then a user
	// turn carrying the result block.
	messages = append(messages, resp.ToParam())
	messages = append(messages, anthropic.NewUserMessage(
		anthropic.NewToolResultBlock(tc.ID, result, false),
	))

	finalResp, err := a.callModel(ctx, messages, toolParams)
	if err != nil {
		return "", nil, fmt.Errorf("model call failed: %w", err)
	}
	finalText, _ := parseResponse(finalResp)

	return finalText, &action, nil
}

func (a *ConciergeAgent) buildToolParams() []anthropic.ToolUnionUnionParam {
	registered := a.registry.List()
	params := make([]anthropic.ToolUnionUnionParam, len(registered))
	for i, t := range registered {
		var propsRaw interface{}
		if props, ok := t.InputSchema["properties"]; ok {
			propsRaw = props
		}

		schema := map[string]interface{}{
			"type":       "object",
			"properties": propsRaw,
		}
		if required, ok := t.InputSchema["required"]; ok {
			schema["required"] = required
		}
		params[i] = anthropic.ToolParam{
			Name:        anthropic.String(t.Name),
			Description: anthropic.String(t.Description),
			InputSchema: anthropic.F[interface{}](schema),
		}
	}
	return params
}

func (a *ConciergeAgent) callModel(ctx context.Context, messages []anthropic.MessageParam, toolParams []anthropic.ToolUnionUnionParam) (*anthropic.Message, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.F(anthropic.Model(a.model)),
		MaxTokens: anthropic.F(int64(a.maxTokens)),
		Messages:  anthropic.F(messages),
		Tools:     anthropic.F(toolParams),
		System: anthropic.F([]anthropic.TextBlockParam{
			anthropic.NewTextBlock(SystemPrompt),
		}),
	}
	return a.messages.New(ctx, params)
}

func parseResponse(resp *anthropic.Message) (string, []ToolCall) {
	var text string
	var toolCalls []ToolCall

	for _, block := range resp.Content {
		switch b := block.AsUnion().(type) {
		case anthropic.TextBlock:
			text += b.Text
		case anthropic.ToolUseBlock:
			var input map[string]interface{}
			if err := json.Unmarshal(b.Input, &input); err != nil {
				log.Warn().Err(err).Str("tool", b.Name).Msg("failed to parse tool input")
				input = map[string]interface{}{}
			}
			toolCalls = append(toolCalls, ToolCall{
				ID:    b.ID,
				Name:  b.Name,
				Input: input,
			})
		}
	}
	return text, toolCalls
}
