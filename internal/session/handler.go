package session

import (
	"encoding/json"
	"net/http"

	"github.com/arogyapath/portal/internal/domain"
	"github.com/arogyapath/portal/internal/pkg/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// Handler handles HTTP requests for the session lifecycle.
type Handler struct {
	store     *Store
	validator *validator.Validate
}

// NewHandler creates a new session handler.
func NewHandler(store *Store) *Handler {
	return &Handler{
		store:     store,
		validator: validator.New(),
	}
}

// RegisterRoutes registers session lifecycle routes. These stay unguarded:
// they are the operations that move the session between states.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/login", h.Login)
	r.Post("/auth/signup", h.Signup)
	r.Post("/auth/logout", h.Logout)
	r.Get("/auth/session", h.Session)
}

// RegisterProtectedRoutes registers routes that require authentication.
func (h *Handler) RegisterProtectedRoutes(r chi.Router) {
	r.Get("/me", h.Me)
}

var errMappings = []httputil.ErrorMapping{
	{Error: ErrSessionBusy, Status: http.StatusConflict},
	{Error: ErrAuthenticationFailed, Status: http.StatusUnauthorized},
	{Error: ErrSignupFailed, Status: http.StatusBadGateway},
}

// LoginRequest represents login request body.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=patient doctor pharmacist"`
}

// Login handles POST /auth/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		httputil.ValidationError(w, err)
		return
	}

	id, err := h.store.Login(r.Context(), req.Email, req.Password, domain.Role(req.Role))
	if err != nil {
		httputil.HandleError(r.Context(), w, err, errMappings)
		return
	}

	httputil.Success(w, http.StatusOK, id)
}

// SignupRequest represents signup request body. Password confirmation is
// validated here, at the caller layer; a mismatch never reaches the store.
type SignupRequest struct {
	FullName        string `json:"full_name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	Phone           string `json:"phone" validate:"omitempty,min=7"`
	Role            string `json:"role" validate:"required,oneof=patient doctor pharmacist"`
}

// Signup handles POST /auth/signup.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		httputil.ValidationError(w, err)
		return
	}

	id, err := h.store.Signup(r.Context(), Profile{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		httputil.HandleError(r.Context(), w, err, errMappings)
		return
	}

	httputil.Success(w, http.StatusCreated, id)
}

// Logout handles POST /auth/logout. Always succeeds.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.store.Logout()
	w.WriteHeader(http.StatusNoContent)
}

// Session handles GET /auth/session. It reports the current state and
// identity so a client can restore its view after a reload.
func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	httputil.Success(w, http.StatusOK, h.store.Snapshot())
}

// Me handles GET /me.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	id := httputil.GetIdentity(r.Context())
	if id == nil {
		httputil.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	httputil.Success(w, http.StatusOK, id)
}
