// Package dashboard serves the role-aware dashboard payloads. All content
// is demonstration data; the portal renders it as-is.
package dashboard

import "github.com/arogyapath/portal/internal/domain"

// PatientView is the patient dashboard payload.
type PatientView struct {
	Welcome       string                       `json:"welcome"`
	Appointments  []domain.Appointment         `json:"appointments"`
	Prescriptions []domain.Prescription        `json:"prescriptions"`
	Orders        []domain.PatientOrderSummary `json:"orders"`
}

// DoctorView is the doctor dashboard payload.
type DoctorView struct {
	Welcome           string                  `json:"welcome"`
	TodayAppointments []domain.Appointment    `json:"today_appointments"`
	RecentPatients    []domain.PatientSummary `json:"recent_patients"`
	Stats             []domain.Stat           `json:"stats"`
}

// PharmacistView is the pharmacist dashboard payload.
type PharmacistView struct {
	Welcome   string                        `json:"welcome"`
	Orders    []domain.PharmacyOrderSummary `json:"orders"`
	Inventory []domain.InventoryItem        `json:"inventory"`
	Stats     []domain.Stat                 `json:"stats"`
}

// Service assembles dashboard payloads per role.
type Service struct{}

// NewService creates a dashboard service.
func NewService() *Service {
	return &Service{}
}

// ForIdentity returns the dashboard payload for the identity's role. An
// unknown role falls back to the patient view, matching the portal's
// original behavior.
func (s *Service) ForIdentity(id *domain.Identity) interface{} {
	welcome := "Welcome, " + id.DisplayName + "!"
	switch id.Role {
	case domain.RoleDoctor:
		return DoctorView{
			Welcome:           welcome,
			TodayAppointments: doctorAppointments,
			RecentPatients:    recentPatients,
			Stats:             doctorStats,
		}
	case domain.RolePharmacist:
		return PharmacistView{
			Welcome:   welcome,
			Orders:    pharmacyOrders,
			Inventory: pharmacyInventory,
			Stats:     pharmacistStats,
		}
	default:
		return PatientView{
			Welcome:       welcome,
			Appointments:  patientAppointments,
			Prescriptions: patientPrescriptions,
			Orders:        patientOrders,
		}
	}
}
