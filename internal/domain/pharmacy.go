package domain

import "time"

// Pharmacy is a directory entry shown by the pharmacy finder.
type Pharmacy struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Phone     string  `json:"phone"`
	Distance  string  `json:"distance"`
	Rating    float64 `json:"rating"`
	IsOpen    bool    `json:"is_open"`
	OpenHours string  `json:"open_hours"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Medicine is a catalog entry available for ordering.
type Medicine struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	GenericName  string  `json:"generic_name"`
	Price        float64 `json:"price"`
	Unit         string  `json:"unit"`
	InStock      bool    `json:"in_stock"`
	Description  string  `json:"description"`
	Manufacturer string  `json:"manufacturer"`
	Category     string  `json:"category"`
}

// OrderStatus tracks a medicine order through fulfilment.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
)

// OrderItem is one line of a medicine order.
type OrderItem struct {
	MedicineID string  `json:"medicine_id"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
}

// Order is a placed medicine order. Orders live in memory for the lifetime
// of the process; the portal has no durable order book.
type Order struct {
	ID         string      `json:"id"`
	IdentityID string      `json:"identity_id"`
	Items      []OrderItem `json:"items"`
	Total      float64     `json:"total"`
	Status     OrderStatus `json:"status"`
	PlacedAt   time.Time   `json:"placed_at"`
}
