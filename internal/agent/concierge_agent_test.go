package agent

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/conciergeai/conciergeai/internal/tools"
)

// scriptedMessages replays canned model responses in order.
type scriptedMessages struct {
	responses []*anthropic.Message
	errs      []error
	calls     int
	params    []anthropic.MessageNewParams
}

func (s *scriptedMessages) New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error) {
	i := s.calls
	s.calls++
	s.params = append(s.params, params)
	if i < len(s.errs) && s.errs[i] != nil {
		return nil, s.errs[i]
	}
	if i >= len(s.responses) {
		return nil, errors.New("scripted messages exhausted")
	}
	return s.responses[i], nil
}

func mustMessage(t *testing.T, raw string) *anthropic.Message {
	t.Helper()
	var msg anthropic.Message
	if err := json.Unmarshal([]byte(raw), &msg); err != nil {
		t.Fatalf("failed to build test message: %v", err)
	}
	return &msg
}

func textMessage(t *testing.T, text string) *anthropic.Message {
	t.Helper()
	return mustMessage(t, `{
		"id": "msg_text",
		"type": "message",
		"role": "assistant",
		"model": "claude-sonnet-4-6",
		"stop_reason": "end_turn",
		"content": [{"type": "text", "text": `+jsonString(text)+`}],
		"usage": {"input_tokens": 10, "output_tokens": 10}
	}`)
}

func toolUseMessage(t *testing.T, toolName, inputJSON string) *anthropic.Message {
	t.Helper()
	return mustMessage(t, `{
		"id": "msg_tool",
		"type": "message",
		"role": "assistant",
		"model": "claude-sonnet-4-6",
		"stop_reason": "tool_use",
		"content": [
			{"type": "text", "text": "Let me check that for you."},
			{"type": "tool_use", "id": "toolu_01", "name": "`+toolName+`", "input": `+inputJSON+`}
		],
		"usage": {"input_tokens": 10, "output_tokens": 10}
	}`)
}

func jsonString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func newTestAgent(script *scriptedMessages) *ConciergeAgent {
	return &ConciergeAgent{
		messages:  script,
		registry:  tools.DefaultRegistry(),
		model:     "claude-sonnet-4-6",
		maxTokens: 1024,
	}
}

// ─── Chat flow ────────────────────────────────────────────────────────────────

func TestChatNoToolCall(t *testing.T) {
	script := &scriptedMessages{responses: []*anthropic.Message{
		textMessage(t, "We are open Monday to Friday 9:00-18:00."),
	}}
	a := newTestAgent(script)

	answer, action, err := a.Chat(context.Background(), "what are your opening hours?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != "We are open Monday to Friday 9:00-18:00." {
		t.Errorf("answer = %q", answer)
	}
	if action != nil {
		t.Errorf("action should be nil without a tool call, got %q", *action)
	}
	if script.calls != 1 {
		t.Errorf("expected exactly 1 model call, got %d", script.calls)
	}
}

func TestChatExecutesToolAndRecordsAction(t *testing.T) {
	script := &scriptedMessages{responses: []*anthropic.Message{
		toolUseMessage(t, "check_order_status", `{"order_id": "ABC-123"}`),
		textMessage(t, "Good news - order ABC-123 is In Transit and should arrive soon."),
	}}
	a := newTestAgent(script)

	answer, action, err := a.Chat(context.Background(), "I want to check order ABC-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(answer, "In Transit") {
		t.Errorf("final answer should come from the second call, got %q", answer)
	}
	if action == nil {
		t.Fatal("action should be recorded for an executed tool")
	}
	want := `check_order_status({"order_id":"ABC-123"}) -> Order ABC-123 is currently 'In Transit' and should arrive within 2 business days.`
	if *action != want {
		t.Errorf("action = %q, want %q", *action, want)
	}
	if script.calls != 2 {
		t.Errorf("expected 2 model calls, got %d", script.calls)
	}
}

func TestChatUnknownToolSkipsSecondCall(t *testing.T) {
	script := &scriptedMessages{responses: []*anthropic.Message{
		toolUseMessage(t, "cancel_subscription", `{}`),
	}}
	a := newTestAgent(script)

	answer, action, err := a.Chat(context.Background(), "cancel my subscription")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(answer, "cancel_subscription") || !strings.Contains(answer, "not available") {
		t.Errorf("answer should name the unknown tool, got %q", answer)
	}
	if action != nil {
		t.Errorf("no action should be recorded for an unknown tool, got %q", *action)
	}
	if script.calls != 1 {
		t.Errorf("second model call should be skipped, got %d calls", script.calls)
	}
}

func TestChatOnlyFirstToolCallHonored(t *testing.T) {
	multi := mustMessage(t, `{
		"id": "msg_multi",
		"type": "message",
		"role": "assistant",
		"model": "claude-sonnet-4-6",
		"stop_reason": "tool_use",
		"content": [
			{"type": "tool_use", "id": "toolu_01", "name": "check_order_status", "input": {"order_id": "ABC-123"}},
			{"type": "tool_use", "id": "toolu_02", "name": "book_appointment", "input": {"date": "Friday", "service": "haircut"}}
		],
		"usage": {"input_tokens": 10, "output_tokens": 10}
	}`)
	script := &scriptedMessages{responses: []*anthropic.Message{
		multi,
		textMessage(t, "Your order is in transit."),
	}}
	a := newTestAgent(script)

	_, action, err := a.Chat(context.Background(), "check my order and book a haircut")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if action == nil {
		t.Fatal("first tool call should be executed")
	}
	if !strings.HasPrefix(*action, "check_order_status(") {
		t.Errorf("only the first requested call should run, got %q", *action)
	}
	if strings.Contains(*action, "book_appointment") {
		t.Errorf("second requested call leaked into the action log: %q", *action)
	}
}

func TestChatModelFailure(t *testing.T) {
	script := &scriptedMessages{errs: []error{errors.New("upstream unavailable")}}
	a := newTestAgent(script)

	_, _, err := a.Chat(context.Background(), "hello")
	if err == nil {
		t.Fatal("expected error from failed model call")
	}
	if !strings.Contains(err.Error(), "upstream unavailable") {
		t.Errorf("error should wrap the cause, got %v", err)
	}
}

func TestChatSecondCallFailure(t *testing.T) {
	script := &scriptedMessages{
		responses: []*anthropic.Message{
			toolUseMessage(t, "check_order_status", `{"order_id": "ABC-123"}`),
		},
		errs: []error{nil, errors.New("connection reset")},
	}
	a := newTestAgent(script)

	_, _, err := a.Chat(context.Background(), "check order ABC-123")
	if err == nil {
		t.Fatal("expected error from failed second call")
	}
}

func TestChatAttachesToolSchemas(t *testing.T) {
	script := &scriptedMessages{responses: []*anthropic.Message{
		textMessage(t, "Hi!"),
	}}
	a := newTestAgent(script)

	if _, _, err := a.Chat(context.Background(), "hi"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	raw, err := json.Marshal(script.params[0])
	if err != nil {
		t.Fatalf("marshal params: %v", err)
	}
	for _, name := range []string{"book_appointment", "check_order_status"} {
		if !strings.Contains(string(raw), name) {
			t.Errorf("model request should carry the %s schema", name)
		}
	}
}
