package bloodbank

// BloodTypes lists the ABO/Rh groups in display order.
var BloodTypes = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

const (
	UnitAvailable = "available"
	UnitCritical  = "critical"
	UnitBreach    = "breach"
)

// Unit is one blood bag in inventory. Dates are calendar dates (YYYY-MM-DD).
type Unit struct {
	ID             string  `json:"id"`
	BloodType      string  `json:"bloodType"`
	CollectionDate string  `json:"collectionDate"`
	ExpiryDate     string  `json:"expiryDate"`
	DaysToExpiry   int     `json:"daysToExpiry"`
	Temperature    float64 `json:"temperature"` // celsius
	Status         string  `json:"status"`
	Hospital       string  `json:"hospital"`
}

type Hospital struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Lat        float64        `json:"lat"`
	Lng        float64        `json:"lng"`
	Stock      map[string]int `json:"stock"` // units per blood type
	TotalUnits int            `json:"totalUnits"`
	Status     string         `json:"status"`
}

type DashboardStats struct {
	TotalUnits         int `json:"totalUnits"`
	ExpiringUnits      int `json:"expiringUnits"`
	CriticalAlerts     int `json:"criticalAlerts"`
	ActiveTransfers    int `json:"activeTransfers"`
	DonorsToday        int `json:"donorsToday"`
	TemperaturesNormal int `json:"temperaturesNormal"` // percent
}
