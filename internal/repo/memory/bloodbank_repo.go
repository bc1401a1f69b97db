package memory

import (
	"context"
	"maps"
	"slices"

	"github.com/hemolink/api/internal/domain/bloodbank"
)

// BloodBankSeed is the static data a BloodBankRepo serves.
type BloodBankSeed struct {
	Inventory []bloodbank.Unit
	Hospitals []bloodbank.Hospital
	Stats     bloodbank.DashboardStats
}

// DefaultBloodBank is the demo inventory the dashboard and hospital network pages show.
func DefaultBloodBank() BloodBankSeed {
	return BloodBankSeed{
		Inventory: []bloodbank.Unit{
			{ID: "BB001", BloodType: "A+", CollectionDate: "2024-12-01", ExpiryDate: "2024-12-20", DaysToExpiry: 3, Temperature: 4.2, Status: bloodbank.UnitAvailable, Hospital: "City General Hospital"},
			{ID: "BB002", BloodType: "O-", CollectionDate: "2024-12-05", ExpiryDate: "2024-12-22", DaysToExpiry: 5, Temperature: 3.8, Status: bloodbank.UnitAvailable, Hospital: "City General Hospital"},
			{ID: "BB003", BloodType: "B+", CollectionDate: "2024-12-10", ExpiryDate: "2024-12-28", DaysToExpiry: 11, Temperature: 4.0, Status: bloodbank.UnitAvailable, Hospital: "Metro Hospital"},
			{ID: "BB004", BloodType: "AB+", CollectionDate: "2024-11-28", ExpiryDate: "2024-12-18", DaysToExpiry: 1, Temperature: 3.5, Status: bloodbank.UnitCritical, Hospital: "City General Hospital"},
			{ID: "BB005", BloodType: "A-", CollectionDate: "2024-12-08", ExpiryDate: "2024-12-26", DaysToExpiry: 9, Temperature: 4.1, Status: bloodbank.UnitAvailable, Hospital: "St. Mary Medical"},
			{ID: "BB006", BloodType: "O+", CollectionDate: "2024-12-12", ExpiryDate: "2025-01-01", DaysToExpiry: 15, Temperature: 12.5, Status: bloodbank.UnitBreach, Hospital: "Metro Hospital"},
			{ID: "BB007", BloodType: "B-", CollectionDate: "2024-12-03", ExpiryDate: "2024-12-21", DaysToExpiry: 4, Temperature: 3.9, Status: bloodbank.UnitAvailable, Hospital: "Regional Medical Center"},
			{ID: "BB008", BloodType: "AB-", CollectionDate: "2024-12-11", ExpiryDate: "2024-12-29", DaysToExpiry: 12, Temperature: 4.3, Status: bloodbank.UnitAvailable, Hospital: "City General Hospital"},
		},
		Hospitals: []bloodbank.Hospital{
			{
				ID: "H001", Name: "City General Hospital", Lat: 40.7128, Lng: -74.006,
				Stock:      map[string]int{"A+": 15, "A-": 8, "B+": 12, "B-": 5, "AB+": 4, "AB-": 2, "O+": 20, "O-": 10},
				TotalUnits: 76, Status: "stable",
			},
			{
				ID: "H002", Name: "Metro Hospital", Lat: 40.7282, Lng: -73.9942,
				Stock:      map[string]int{"A+": 8, "A-": 3, "B+": 6, "B-": 2, "AB+": 1, "AB-": 0, "O+": 12, "O-": 4},
				TotalUnits: 36, Status: "low",
			},
			{
				ID: "H003", Name: "St. Mary Medical", Lat: 40.6892, Lng: -74.0445,
				Stock:      map[string]int{"A+": 20, "A-": 12, "B+": 15, "B-": 8, "AB+": 6, "AB-": 4, "O+": 25, "O-": 15},
				TotalUnits: 105, Status: "stable",
			},
			{
				ID: "H004", Name: "Regional Medical Center", Lat: 40.7484, Lng: -73.9857,
				Stock:      map[string]int{"A+": 5, "A-": 2, "B+": 3, "B-": 1, "AB+": 0, "AB-": 0, "O+": 8, "O-": 2},
				TotalUnits: 21, Status: "critical",
			},
		},
		Stats: bloodbank.DashboardStats{
			TotalUnits:         238,
			ExpiringUnits:      12,
			CriticalAlerts:     3,
			ActiveTransfers:    5,
			DonorsToday:        24,
			TemperaturesNormal: 95,
		},
	}
}

// BloodBankRepo serves a read-only copy of its seed. Callers get copies, so
// mutating a returned value never leaks back into the table.
type BloodBankRepo struct {
	inventory []bloodbank.Unit
	hospitals []bloodbank.Hospital
	stats     bloodbank.DashboardStats
}

func NewBloodBankRepo(seed BloodBankSeed) *BloodBankRepo {
	return &BloodBankRepo{
		inventory: slices.Clone(seed.Inventory),
		hospitals: cloneHospitals(seed.Hospitals),
		stats:     seed.Stats,
	}
}

func (r *BloodBankRepo) ListInventory(ctx context.Context) ([]bloodbank.Unit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := slices.Clone(r.inventory)
	if out == nil {
		out = []bloodbank.Unit{}
	}

	return out, nil
}

func (r *BloodBankRepo) ListHospitals(ctx context.Context) ([]bloodbank.Hospital, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return cloneHospitals(r.hospitals), nil
}

func (r *BloodBankRepo) Stats(ctx context.Context) (bloodbank.DashboardStats, error) {
	if err := ctx.Err(); err != nil {
		return bloodbank.DashboardStats{}, err
	}

	return r.stats, nil
}

func cloneHospitals(in []bloodbank.Hospital) []bloodbank.Hospital {
	out := make([]bloodbank.Hospital, len(in))

	for i, h := range in {
		h.Stock = maps.Clone(h.Stock)
		out[i] = h
	}

	return out
}
