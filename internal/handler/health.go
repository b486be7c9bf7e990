package handler

import (
	"net/http"
	"strconv"

	"github.com/conciergeai/conciergeai/internal/knowledge"
	"github.com/conciergeai/conciergeai/internal/models"
)

const version = "1.0.0"

// HealthHandler handles GET /health
type HealthHandler struct {
	store *knowledge.Store
}

func NewHealthHandler(store *knowledge.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

// Health handles GET /health. The model service is not probed here: health
// checks run frequently and each probe would be a billed model call.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	checks := map[string]string{"server": "ok"}
	if h.store != nil {
		checks["knowledge_chunks"] = strconv.Itoa(h.store.Len())
	}

	models.WriteJSON(w, http.StatusOK, models.HealthResponse{
		Status:  "healthy",
		Version: version,
		Checks:  checks,
	})
}
