package model

// DashboardSummary is recomputed on every request from a user's records.
type DashboardSummary struct {
	Budget  BudgetSummary `json:"budget"`
	Guests  GuestSummary  `json:"guests"`
	Tasks   TaskSummary   `json:"tasks"`
	Vendors VendorSummary `json:"vendors"`
}

type BudgetSummary struct {
	TotalPlanned float64 `json:"total_planned"`
	TotalSpent   float64 `json:"total_spent"`
	// Remaining is TotalPlanned - TotalSpent and may be negative.
	Remaining  float64 `json:"remaining"`
	Categories int     `json:"categories"`
}

type GuestSummary struct {
	Total    int `json:"total"`
	Accepted int `json:"accepted"`
	Declined int `json:"declined"`
	Pending  int `json:"pending"`
}

type TaskSummary struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
}

type VendorSummary struct {
	Total  int `json:"total"`
	Booked int `json:"booked"`
}
