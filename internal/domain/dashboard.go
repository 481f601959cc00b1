package domain

// Dashboard records are demonstration data rendered by the role dashboards.
// They carry no behavior; the portal serves them as-is.

// Appointment is a scheduled consultation, seen from either side.
type Appointment struct {
	ID          string `json:"id"`
	DoctorName  string `json:"doctor_name,omitempty"`
	PatientName string `json:"patient_name,omitempty"`
	Specialty   string `json:"specialty,omitempty"`
	Date        string `json:"date,omitempty"`
	Time        string `json:"time"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	Symptoms    string `json:"symptoms,omitempty"`
	Duration    string `json:"duration,omitempty"`
}

// Prescription is an issued prescription summary.
type Prescription struct {
	ID         string   `json:"id"`
	DoctorName string   `json:"doctor_name"`
	Date       string   `json:"date"`
	Medicines  []string `json:"medicines"`
	Status     string   `json:"status"`
}

// PatientSummary is a doctor's view of a recent patient.
type PatientSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Age       int    `json:"age"`
	LastVisit string `json:"last_visit"`
	Condition string `json:"condition"`
	Status    string `json:"status"`
}

// InventoryItem is a pharmacist stock line.
type InventoryItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Stock    int    `json:"stock"`
	MinStock int    `json:"min_stock"`
	Category string `json:"category"`
	Price    string `json:"price"`
	Status   string `json:"status"`
}

// PharmacyOrderSummary is a pharmacist's view of an incoming order.
type PharmacyOrderSummary struct {
	ID             string   `json:"id"`
	CustomerName   string   `json:"customer_name"`
	Items          []string `json:"items"`
	Total          string   `json:"total"`
	Status         string   `json:"status"`
	OrderTime      string   `json:"order_time"`
	PrescriptionID string   `json:"prescription_id"`
}

// PatientOrderSummary is a patient's view of a placed order.
type PatientOrderSummary struct {
	ID           string   `json:"id"`
	PharmacyName string   `json:"pharmacy_name"`
	Items        []string `json:"items"`
	Total        string   `json:"total"`
	Status       string   `json:"status"`
	Date         string   `json:"date"`
}

// Stat is a single dashboard headline figure.
type Stat struct {
	Title string `json:"title"`
	Value string `json:"value"`
}
