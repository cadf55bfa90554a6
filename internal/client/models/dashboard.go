package models

// DashboardStats is the aggregate view served to admins.
type DashboardStats struct {
	TotalFarmers     int     `json:"total_farmers"`
	TotalLandlords   int     `json:"total_landlords"`
	TotalSpaces      int     `json:"total_spaces"`
	TotalConnections int     `json:"total_connections"`
	TotalAcres       float64 `json:"total_acres"`
}

// Collaboration is one farmer–landlord pairing with its crop and status.
type Collaboration struct {
	Farmer   string `json:"farmer"`
	Landlord string `json:"landlord"`
	Crop     string `json:"crop"`
	Status   string `json:"status"`
}
