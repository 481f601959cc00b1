//go:build integration

package integration

import (
	"net/http"
	"testing"

	"github.com/arogyapath/portal/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPharmacy_ListPharmacies(t *testing.T) {
	client := newTestClient(t)
	client.LoginAsPatient(t)

	resp, err := client.GET("/api/v1/pharmacies")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Data []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"data"`
	}
	testutil.DecodeJSON(t, resp, &result)
	assert.NotEmpty(t, result.Data)
}

func TestPharmacy_ListPharmacies_Filtered(t *testing.T) {
	client := newTestClient(t)
	client.LoginAsPatient(t)

	resp, err := client.GET("/api/v1/pharmacies?q=apollo")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Data []struct {
			Name string `json:"name"`
		} `json:"data"`
	}
	testutil.DecodeJSON(t, resp, &result)
	require.Len(t, result.Data, 1)
	assert.Contains(t, result.Data[0].Name, "Apollo")
}

func TestPharmacy_ListMedicines(t *testing.T) {
	client := newTestClient(t)
	client.LoginAsPatient(t)

	resp, err := client.GET("/api/v1/medicines?q=paracetamol")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Data []struct {
			ID      string  `json:"id"`
			Name    string  `json:"name"`
			Price   float64 `json:"price"`
			InStock bool    `json:"in_stock"`
		} `json:"data"`
	}
	testutil.DecodeJSON(t, resp, &result)
	require.Len(t, result.Data, 1)
	assert.True(t, result.Data[0].InStock)
}

func TestPharmacy_PlaceOrder_Flow(t *testing.T) {
	client := newTestClient(t)
	client.LoginAsPatient(t)

	resp, err := client.POST("/api/v1/orders", map[string]interface{}{
		"items": []map[string]interface{}{
			{"medicine_id": "1", "quantity": 2},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var placed struct {
		Data struct {
			ID     string  `json:"id"`
			Total  float64 `json:"total"`
			Status string  `json:"status"`
		} `json:"data"`
	}
	testutil.DecodeJSON(t, resp, &placed)
	assert.NotEmpty(t, placed.Data.ID)
	assert.Equal(t, "pending", placed.Data.Status)
	assert.Greater(t, placed.Data.Total, 0.0)

	resp, err = client.GET("/api/v1/orders")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var listed struct {
		Data []struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	testutil.DecodeJSON(t, resp, &listed)
	require.NotEmpty(t, listed.Data)
	assert.Equal(t, placed.Data.ID, listed.Data[0].ID)
}

func TestPharmacy_PlaceOrder_OutOfStock(t *testing.T) {
	client := newTestClient(t)
	client.LoginAsPatient(t)

	resp, err := client.POST("/api/v1/orders", map[string]interface{}{
		"items": []map[string]interface{}{
			{"medicine_id": "3", "quantity": 1}, // Vitamin D3 is out of stock
		},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()
}

func TestPharmacy_PlaceOrder_UnknownMedicine(t *testing.T) {
	client := newTestClient(t)
	client.LoginAsPatient(t)

	resp, err := client.POST("/api/v1/orders", map[string]interface{}{
		"items": []map[string]interface{}{
			{"medicine_id": "does-not-exist", "quantity": 1},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestPharmacy_PlaceOrder_EmptyItems(t *testing.T) {
	client := newTestClient(t)
	client.LoginAsPatient(t)

	resp, err := client.POST("/api/v1/orders", map[string]interface{}{
		"items": []map[string]interface{}{},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestDashboard_PatientView(t *testing.T) {
	client := newTestClient(t)
	client.LoginAsPatient(t)

	resp, err := client.GET("/api/v1/dashboard")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Data struct {
			Welcome      string `json:"welcome"`
			Appointments []struct {
				DoctorName string `json:"doctor_name"`
			} `json:"appointments"`
		} `json:"data"`
	}
	testutil.DecodeJSON(t, resp, &result)
	assert.Equal(t, "Welcome, Asha!", result.Data.Welcome)
	assert.NotEmpty(t, result.Data.Appointments)
}

func TestDashboard_DoctorView(t *testing.T) {
	client := newTestClient(t)
	client.LoginAs(t, "drpriya@example.com", "password123", "doctor")

	resp, err := client.GET("/api/v1/dashboard")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Data struct {
			Welcome           string `json:"welcome"`
			TodayAppointments []struct {
				PatientName string `json:"patient_name"`
			} `json:"today_appointments"`
			Stats []struct {
				Title string `json:"title"`
			} `json:"stats"`
		} `json:"data"`
	}
	testutil.DecodeJSON(t, resp, &result)
	assert.NotEmpty(t, result.Data.TodayAppointments)
	assert.NotEmpty(t, result.Data.Stats)
}

func TestDashboard_PharmacistView(t *testing.T) {
	client := newTestClient(t)
	client.LoginAs(t, "medplus@example.com", "password123", "pharmacist")

	resp, err := client.GET("/api/v1/dashboard")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Data struct {
			Welcome   string `json:"welcome"`
			Inventory []struct {
				Name string `json:"name"`
			} `json:"inventory"`
		} `json:"data"`
	}
	testutil.DecodeJSON(t, resp, &result)
	assert.NotEmpty(t, result.Data.Inventory)
}
