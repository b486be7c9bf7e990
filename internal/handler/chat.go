package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/conciergeai/conciergeai/internal/knowledge"
	"github.com/conciergeai/conciergeai/internal/models"
	"github.com/conciergeai/conciergeai/internal/security"
	"github.com/rs/zerolog/log"
)

// Apology is the fixed user-facing text returned when the model service
// fails. The raw error travels in action_taken, not here.
const Apology = "I'm sorry, I'm having trouble processing your request right now. Please try again in a moment."

// Conversationalist runs one chat orchestration round. Implemented by
// agent.ConciergeAgent; tests substitute a scripted one.
type Conversationalist interface {
	Chat(ctx context.Context, prompt string) (answer string, actionTaken *string, err error)
}

// ChatHandler handles POST /chat
type ChatHandler struct {
	agent     Conversationalist
	store     *knowledge.Store
	validator *security.QueryValidator
	pii       *security.PIIDetector
	audit     *security.AuditLogger
	timeout   time.Duration
}

func NewChatHandler(
	agent Conversationalist,
	store *knowledge.Store,
	validator *security.QueryValidator,
	pii *security.PIIDetector,
	audit *security.AuditLogger,
	timeout time.Duration,
) *ChatHandler {
	return &ChatHandler{
		agent:     agent,
		store:     store,
		validator: validator,
		pii:       pii,
		audit:     audit,
		timeout:   timeout,
	}
}

// Chat handles POST /chat
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		models.WriteError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if res := h.validator.Validate(req.UserQuery); !res.Valid {
		models.WriteError(w, http.StatusBadRequest, res.Message)
		return
	}

	if found, kw := h.pii.Detect(req.UserQuery); found {
		log.Warn().Str("keyword", kw).Msg("possible PII in chat query")
	}

	ctx := r.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	retrieved := h.store.Retrieve(req.UserQuery)
	prompt := buildPrompt(retrieved, req.UserQuery)

	apiKey := r.Header.Get("X-API-Key")
	start := time.Now()

	answer, action, err := h.agent.Chat(ctx, prompt)

	elapsed := time.Since(start).Milliseconds()

	if err != nil {
		log.Error().Err(err).Msg("chat orchestration failed")
		h.audit.LogChat(req.UserQuery, apiKey, "", elapsed, false, err.Error())

		serverErr := "Server Error: " + err.Error()
		models.WriteJSON(w, http.StatusInternalServerError, models.ChatResponse{
			AIResponse:  Apology,
			ActionTaken: &serverErr,
		})
		return
	}

	h.audit.LogChat(req.UserQuery, apiKey, toolName(action), elapsed, true, "")

	models.WriteJSON(w, http.StatusOK, models.ChatResponse{
		AIResponse:  answer,
		ActionTaken: action,
	})
}

func buildPrompt(retrieved, query string) string {
	return fmt.Sprintf(
		"Use the following context to answer the customer's question.\n\nContext:\n%s\n\nCustomer question: %s",
		retrieved, query,
	)
}

// toolName extracts the tool name from a "name(args) -> result" action record.
func toolName(action *string) string {
	if action == nil {
		return ""
	}
	if i := strings.Index(*action, "("); i > 0 {
		return (*action)[:i]
	}
	return ""
}
