package dashboard

import "github.com/arogyapath/portal/internal/domain"

// Demonstration data shown on the role dashboards.

var patientAppointments = []domain.Appointment{
	{
		ID:         "1",
		DoctorName: "Dr. Priya Sharma",
		Specialty:  "General Medicine",
		Date:       "2024-01-25",
		Time:       "10:00 AM",
		Status:     "confirmed",
		Type:       "video",
	},
	{
		ID:         "2",
		DoctorName: "Dr. Rajesh Kumar",
		Specialty:  "Cardiology",
		Date:       "2024-01-28",
		Time:       "2:30 PM",
		Status:     "pending",
		Type:       "consultation",
	},
}

var patientPrescriptions = []domain.Prescription{
	{
		ID:         "1",
		DoctorName: "Dr. Priya Sharma",
		Date:       "2024-01-20",
		Medicines:  []string{"Paracetamol 500mg", "Vitamin D3"},
		Status:     "active",
	},
	{
		ID:         "2",
		DoctorName: "Dr. Amit Singh",
		Date:       "2024-01-15",
		Medicines:  []string{"Amoxicillin 250mg", "Cough Syrup"},
		Status:     "completed",
	},
}

var patientOrders = []domain.PatientOrderSummary{
	{
		ID:           "1",
		PharmacyName: "MedPlus Pharmacy",
		Items:        []string{"Paracetamol 500mg", "Vitamin D3"},
		Total:        "₹180",
		Status:       "delivered",
		Date:         "2024-01-22",
	},
	{
		ID:           "2",
		PharmacyName: "Apollo Pharmacy",
		Items:        []string{"Blood Pressure Monitor"},
		Total:        "₹1,200",
		Status:       "shipped",
		Date:         "2024-01-24",
	},
}

var doctorAppointments = []domain.Appointment{
	{
		ID:          "1",
		PatientName: "Rajesh Kumar",
		Time:        "10:00 AM",
		Type:        "video",
		Status:      "confirmed",
		Symptoms:    "Fever, headache",
		Duration:    "30 min",
	},
	{
		ID:          "2",
		PatientName: "Priya Singh",
		Time:        "11:30 AM",
		Type:        "follow-up",
		Status:      "confirmed",
		Symptoms:    "Diabetes check-up",
		Duration:    "20 min",
	},
	{
		ID:          "3",
		PatientName: "Amit Sharma",
		Time:        "2:00 PM",
		Type:        "consultation",
		Status:      "pending",
		Symptoms:    "Chest pain",
		Duration:    "30 min",
	},
}

var recentPatients = []domain.PatientSummary{
	{ID: "1", Name: "Rajesh Kumar", Age: 45, LastVisit: "2024-01-20", Condition: "Hypertension", Status: "stable"},
	{ID: "2", Name: "Priya Singh", Age: 38, LastVisit: "2024-01-18", Condition: "Diabetes Type 2", Status: "needs_attention"},
	{ID: "3", Name: "Amit Sharma", Age: 32, LastVisit: "2024-01-22", Condition: "Anxiety", Status: "improving"},
}

var doctorStats = []domain.Stat{
	{Title: "Today's Appointments", Value: "8"},
	{Title: "Total Patients", Value: "142"},
	{Title: "Pending Reports", Value: "5"},
	{Title: "This Month", Value: "89"},
}

var pharmacyOrders = []domain.PharmacyOrderSummary{
	{
		ID:             "1",
		CustomerName:   "Rajesh Kumar",
		Items:          []string{"Paracetamol 500mg x2", "Vitamin D3 x1"},
		Total:          "₹180",
		Status:         "pending",
		OrderTime:      "10:30 AM",
		PrescriptionID: "RX001",
	},
	{
		ID:             "2",
		CustomerName:   "Priya Singh",
		Items:          []string{"Insulin Glargine x1", "Test Strips x1"},
		Total:          "₹1,200",
		Status:         "preparing",
		OrderTime:      "11:15 AM",
		PrescriptionID: "RX002",
	},
	{
		ID:             "3",
		CustomerName:   "Amit Sharma",
		Items:          []string{"Amoxicillin 250mg x1"},
		Total:          "₹85",
		Status:         "ready",
		OrderTime:      "9:45 AM",
		PrescriptionID: "RX003",
	},
}

var pharmacyInventory = []domain.InventoryItem{
	{ID: "1", Name: "Paracetamol 500mg", Stock: 150, MinStock: 20, Category: "Pain Relief", Price: "₹2.50", Status: "good"},
	{ID: "2", Name: "Insulin Glargine", Stock: 8, MinStock: 10, Category: "Diabetes", Price: "₹850.00", Status: "low"},
	{ID: "3", Name: "Amoxicillin 250mg", Stock: 2, MinStock: 15, Category: "Antibiotic", Price: "₹15.00", Status: "critical"},
	{ID: "4", Name: "Vitamin D3", Stock: 75, MinStock: 25, Category: "Vitamins", Price: "₹12.00", Status: "good"},
}

var pharmacistStats = []domain.Stat{
	{Title: "Pending Orders", Value: "12"},
	{Title: "Low Stock Items", Value: "7"},
	{Title: "Today's Sales", Value: "₹15,430"},
	{Title: "Orders Fulfilled", Value: "28"},
}
