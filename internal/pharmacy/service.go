// Package pharmacy provides the pharmacy finder, the medicine catalog, and
// the demo order cart. The directory and catalog are fixed lists; orders
// live in memory for the lifetime of the process.
package pharmacy

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/arogyapath/portal/internal/domain"
	"github.com/google/uuid"
)

// Service errors.
var (
	ErrMedicineNotFound = errors.New("medicine not found")
	ErrOutOfStock       = errors.New("medicine out of stock")
	ErrEmptyOrder       = errors.New("order has no items")
)

// OrderLine is one requested cart line.
type OrderLine struct {
	MedicineID string
	Quantity   int
}

// Service owns the pharmacy directory, the medicine catalog, and the order
// book.
type Service struct {
	pharmacies []domain.Pharmacy
	medicines  []domain.Medicine

	mu     sync.Mutex
	orders []domain.Order
}

// NewService creates a pharmacy service with the built-in directory and
// catalog.
func NewService() *Service {
	return &Service{
		pharmacies: pharmacies,
		medicines:  medicines,
	}
}

// ListPharmacies returns directory entries matching the query on name or
// address. An empty query returns the whole directory.
func (s *Service) ListPharmacies(query string) []domain.Pharmacy {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]domain.Pharmacy, 0, len(s.pharmacies))
	for _, p := range s.pharmacies {
		if q == "" ||
			strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Address), q) {
			out = append(out, p)
		}
	}
	return out
}

// ListMedicines returns catalog entries matching the query on name, generic
// name, or category. An empty query returns the whole catalog.
func (s *Service) ListMedicines(query string) []domain.Medicine {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]domain.Medicine, 0, len(s.medicines))
	for _, m := range s.medicines {
		if q == "" ||
			strings.Contains(strings.ToLower(m.Name), q) ||
			strings.Contains(strings.ToLower(m.GenericName), q) ||
			strings.Contains(strings.ToLower(m.Category), q) {
			out = append(out, m)
		}
	}
	return out
}

// medicineByID looks up a catalog entry.
func (s *Service) medicineByID(id string) (*domain.Medicine, error) {
	for i := range s.medicines {
		if s.medicines[i].ID == id {
			return &s.medicines[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrMedicineNotFound, id)
}

// PlaceOrder checks every line against the catalog and appends a pending
// order to the book.
func (s *Service) PlaceOrder(identityID string, lines []OrderLine) (*domain.Order, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}

	order := domain.Order{
		ID:         uuid.NewString(),
		IdentityID: identityID,
		Status:     domain.OrderStatusPending,
		PlacedAt:   time.Now(),
	}

	for _, line := range lines {
		med, err := s.medicineByID(line.MedicineID)
		if err != nil {
			return nil, err
		}
		if !med.InStock {
			return nil, fmt.Errorf("%w: %s", ErrOutOfStock, med.Name)
		}
		order.Items = append(order.Items, domain.OrderItem{
			MedicineID: med.ID,
			Name:       med.Name,
			Quantity:   line.Quantity,
			UnitPrice:  med.Price,
		})
		order.Total += med.Price * float64(line.Quantity)
	}

	s.mu.Lock()
	s.orders = append(s.orders, order)
	s.mu.Unlock()

	return &order, nil
}

// ListOrders returns the orders placed by the given identity, newest first.
func (s *Service) ListOrders(identityID string) []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Order, 0)
	for i := len(s.orders) - 1; i >= 0; i-- {
		if s.orders[i].IdentityID == identityID {
			out = append(out, s.orders[i])
		}
	}
	return out
}
