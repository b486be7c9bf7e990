package security

import (
	"crypto/sha256"
	"fmt"

	"github.com/rs/zerolog/log"
)

// AuditLogger logs chat events with hashed identifiers so the audit trail
// never stores raw customer text.
type AuditLogger struct {
	enabled bool
}

func NewAuditLogger(enabled bool) *AuditLogger {
	return &AuditLogger{enabled: enabled}
}

// LogChat records one completed (or failed) chat request.
func (a *AuditLogger) LogChat(
	query, apiKey, toolUsed string,
	executionTimeMs int64,
	success bool,
	errMsg string,
) {
	if !a.enabled {
		return
	}
	queryHash := hashStr(query)[:16]
	keyHash := hashStr(apiKey)[:16]

	evt := log.Info().
		Str("event", "chat_audit").
		Str("query_hash", queryHash).
		Str("api_key_hash", keyHash).
		Int64("execution_time_ms", executionTimeMs).
		Bool("success", success)

	if toolUsed != "" {
		evt = evt.Str("tool_used", toolUsed)
	}
	if errMsg != "" {
		evt = evt.Str("error", errMsg)
	}
	evt.Msg("audit")
}

func hashStr(s string) string {
	h := sha256.Sum256([]byte(s))
	return fmt.Sprintf("%x", h)
}
