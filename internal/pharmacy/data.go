package pharmacy

import "github.com/arogyapath/portal/internal/domain"

var pharmacies = []domain.Pharmacy{
	{
		ID:        "1",
		Name:      "MedPlus Pharmacy",
		Address:   "Sector 17, Chandigarh, Punjab 160017",
		Phone:     "+91 98765 43210",
		Distance:  "0.8 km",
		Rating:    4.5,
		IsOpen:    true,
		OpenHours: "8:00 AM - 10:00 PM",
		Latitude:  30.7333,
		Longitude: 76.7794,
	},
	{
		ID:        "2",
		Name:      "Apollo Pharmacy",
		Address:   "SCO 123, Sector 22, Chandigarh 160022",
		Phone:     "+91 98765 43211",
		Distance:  "1.2 km",
		Rating:    4.3,
		IsOpen:    true,
		OpenHours: "24 Hours",
		Latitude:  30.7267,
		Longitude: 76.7753,
	},
	{
		ID:        "3",
		Name:      "Guardian Pharmacy",
		Address:   "Main Market, Village Manimajra, Chandigarh",
		Phone:     "+91 98765 43212",
		Distance:  "2.1 km",
		Rating:    4.0,
		IsOpen:    false,
		OpenHours: "9:00 AM - 9:00 PM",
		Latitude:  30.7614,
		Longitude: 76.8206,
	},
	{
		ID:        "4",
		Name:      "Jan Aushadhi Store",
		Address:   "Sector 34, Chandigarh 160034",
		Phone:     "+91 98765 43213",
		Distance:  "2.8 km",
		Rating:    4.2,
		IsOpen:    true,
		OpenHours: "8:00 AM - 8:00 PM",
		Latitude:  30.7194,
		Longitude: 76.7631,
	},
}

var medicines = []domain.Medicine{
	{
		ID:           "1",
		Name:         "Paracetamol 500mg",
		GenericName:  "Acetaminophen",
		Price:        25,
		Unit:         "strip of 10 tablets",
		InStock:      true,
		Description:  "Pain reliever and fever reducer",
		Manufacturer: "Cipla Ltd",
		Category:     "Pain Relief",
	},
	{
		ID:           "2",
		Name:         "Amoxicillin 250mg",
		GenericName:  "Amoxicillin",
		Price:        45,
		Unit:         "strip of 10 capsules",
		InStock:      true,
		Description:  "Antibiotic for bacterial infections",
		Manufacturer: "Sun Pharma",
		Category:     "Antibiotics",
	},
	{
		ID:           "3",
		Name:         "Vitamin D3",
		GenericName:  "Cholecalciferol",
		Price:        120,
		Unit:         "bottle of 30 tablets",
		InStock:      false,
		Description:  "Vitamin D supplement",
		Manufacturer: "Dr. Reddy's",
		Category:     "Vitamins",
	},
	{
		ID:           "4",
		Name:         "Cough Syrup",
		GenericName:  "Dextromethorphan",
		Price:        80,
		Unit:         "100ml bottle",
		InStock:      true,
		Description:  "Cough suppressant syrup",
		Manufacturer: "Lupin Ltd",
		Category:     "Cough & Cold",
	},
}
