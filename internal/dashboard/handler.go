package dashboard

import (
	"net/http"

	"github.com/arogyapath/portal/internal/pkg/httputil"
	"github.com/go-chi/chi/v5"
)

// Handler handles HTTP requests for dashboards.
type Handler struct {
	service *Service
}

// NewHandler creates a new dashboard handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers dashboard routes. Callers mount these behind the
// route guard; the identity is taken from the request context.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/dashboard", h.Dashboard)
}

// Dashboard handles GET /dashboard.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	id := httputil.GetIdentity(r.Context())
	if id == nil {
		httputil.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	httputil.Success(w, http.StatusOK, h.service.ForIdentity(id))
}
