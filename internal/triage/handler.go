package triage

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/arogyapath/portal/internal/pkg/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"golang.org/x/time/rate"
)

// HandlerConfig contains chat handler settings.
type HandlerConfig struct {
	// TypingDelay is waited before the reply is returned. Presentation only;
	// classification already happened when the wait starts.
	TypingDelay time.Duration
	// RateLimit is replies per second; RateBurst the burst size. A zero
	// RateLimit disables limiting.
	RateLimit float64
	RateBurst int
}

// Handler handles HTTP requests for the health assistant chat.
type Handler struct {
	engine      *Engine
	validator   *validator.Validate
	limiter     *rate.Limiter
	typingDelay time.Duration
}

// NewHandler creates a new chat handler.
func NewHandler(engine *Engine, cfg HandlerConfig) *Handler {
	h := &Handler{
		engine:      engine,
		validator:   validator.New(),
		typingDelay: cfg.TypingDelay,
	}
	if cfg.RateLimit > 0 {
		h.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
	}
	return h
}

// RegisterRoutes registers chat routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.Chat)
}

// ChatRequest represents a chat message body. An empty message is rejected
// here; it never enters the engine.
type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

// Chat handles POST /chat.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		httputil.ValidationError(w, err)
		return
	}

	if h.limiter != nil && !h.limiter.Allow() {
		httputil.Error(w, http.StatusTooManyRequests, "too many messages, slow down")
		return
	}

	resp := h.engine.Respond(req.Message)

	if h.typingDelay > 0 {
		select {
		case <-time.After(h.typingDelay):
		case <-r.Context().Done():
			return
		}
	}

	httputil.Success(w, http.StatusOK, resp)
}
