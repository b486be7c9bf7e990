package server

import (
	"net/http"
	"time"

	"github.com/conciergeai/conciergeai/internal/agent"
	"github.com/conciergeai/conciergeai/internal/handler"
	"github.com/conciergeai/conciergeai/internal/knowledge"
	"github.com/conciergeai/conciergeai/internal/middleware"
	"github.com/conciergeai/conciergeai/internal/security"
	"github.com/conciergeai/conciergeai/internal/tools"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

func (s *Server) setupRoutes() (http.Handler, error) {
	cfg := s.cfg

	// ─── Knowledge base ─────────────────────────────────────────────────────────
	var chunks []knowledge.Chunk
	if len(cfg.KnowledgeChunks) > 0 {
		chunks = make([]knowledge.Chunk, len(cfg.KnowledgeChunks))
		for i, c := range cfg.KnowledgeChunks {
			chunks[i] = knowledge.Chunk{Text: c.Text, Keywords: c.Keywords}
		}
	}
	store := knowledge.NewStore(chunks)

	// ─── Tools ──────────────────────────────────────────────────────────────────
	registry := tools.DefaultRegistry()

	// ─── Security ───────────────────────────────────────────────────────────────
	validator := security.NewQueryValidator(cfg.MaxQueryLength)
	piiDetector := security.NewPIIDetector(cfg.PIIKeywords)
	auditLogger := security.NewAuditLogger(cfg.EnableAuditLogging)

	// ─── AI Agent ───────────────────────────────────────────────────────────────
	conciergeAgent := agent.NewConciergeAgent(cfg.AnthropicAPIKey, cfg.Model, cfg.AnthropicBaseURL, registry)

	log.Info().
		Int("knowledge_chunks", store.Len()).
		Int("tools", len(registry.List())).
		Str("model", cfg.Model).
		Bool("auth_enabled", cfg.EnableAuth && len(cfg.APIKeys) > 0).
		Bool("audit_logging", cfg.EnableAuditLogging).
		Msg("service configuration")

	if cfg.EnableAuth && len(cfg.APIKeys) == 0 {
		log.Warn().Msg("WARNING: auth enabled but no API keys configured - all chat requests will be rejected")
	}

	// ─── Handlers ───────────────────────────────────────────────────────────────
	healthH := handler.NewHealthHandler(store)
	chatH := handler.NewChatHandler(
		conciergeAgent,
		store,
		validator,
		piiDetector,
		auditLogger,
		time.Duration(cfg.AgentTimeout)*time.Second,
	)

	// ─── Router ─────────────────────────────────────────────────────────────────
	r := chi.NewRouter()

	r.Use(middleware.Recovery)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.CORS(middleware.DefaultCORSConfig(cfg.CORSOrigins)))
	r.Use(chiMiddleware.RealIP)

	// Public routes
	r.Get("/health", healthH.Health)
	r.Get("/", healthH.Health)

	// Rate limiting + optional auth for the chat endpoint
	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitPerMinute))
		if cfg.EnableAuth && len(cfg.APIKeys) > 0 {
			r.Use(middleware.Auth(cfg.APIKeys, cfg.APIKeyHeader))
		}

		r.Post("/chat", chatH.Chat)
	})

	return r, nil
}
