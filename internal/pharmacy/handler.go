package pharmacy

import (
	"encoding/json"
	"net/http"

	"github.com/arogyapath/portal/internal/pkg/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// Handler handles HTTP requests for the pharmacy finder and medicine orders.
type Handler struct {
	service   *Service
	validator *validator.Validate
}

// NewHandler creates a new pharmacy handler.
func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(),
	}
}

// RegisterRoutes registers pharmacy routes. Callers mount these behind the
// route guard.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/pharmacies", h.ListPharmacies)
	r.Get("/medicines", h.ListMedicines)
	r.Post("/orders", h.PlaceOrder)
	r.Get("/orders", h.ListOrders)
}

var errMappings = []httputil.ErrorMapping{
	{Error: ErrMedicineNotFound, Status: http.StatusNotFound},
	{Error: ErrOutOfStock, Status: http.StatusConflict},
	{Error: ErrEmptyOrder, Status: http.StatusBadRequest},
}

// ListPharmacies handles GET /pharmacies.
func (h *Handler) ListPharmacies(w http.ResponseWriter, r *http.Request) {
	httputil.Success(w, http.StatusOK, h.service.ListPharmacies(r.URL.Query().Get("q")))
}

// ListMedicines handles GET /medicines.
func (h *Handler) ListMedicines(w http.ResponseWriter, r *http.Request) {
	httputil.Success(w, http.StatusOK, h.service.ListMedicines(r.URL.Query().Get("q")))
}

// OrderRequest represents an order request body.
type OrderRequest struct {
	Items []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// OrderItemRequest is one requested order line.
type OrderItemRequest struct {
	MedicineID string `json:"medicine_id" validate:"required"`
	Quantity   int    `json:"quantity" validate:"required,min=1"`
}

// PlaceOrder handles POST /orders.
func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	id := httputil.GetIdentity(r.Context())
	if id == nil {
		httputil.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		httputil.ValidationError(w, err)
		return
	}

	lines := make([]OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, OrderLine{MedicineID: item.MedicineID, Quantity: item.Quantity})
	}

	order, err := h.service.PlaceOrder(id.ID, lines)
	if err != nil {
		httputil.HandleError(r.Context(), w, err, errMappings)
		return
	}

	httputil.Success(w, http.StatusCreated, order)
}

// ListOrders handles GET /orders.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	id := httputil.GetIdentity(r.Context())
	if id == nil {
		httputil.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	httputil.Success(w, http.StatusOK, h.service.ListOrders(id.ID))
}
