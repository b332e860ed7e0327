package dashboard

import (
	"time"
)

// TodayKPIs are the admin landing-page counters for the current day.
type TodayKPIs struct {
	ActiveEmployees int `json:"active_employees"`
	Present         int `json:"present"`
	Absent          int `json:"absent"`
	Late            int `json:"late"`
}

// ActivityItem is one entry of the recent check-in/check-out feed.
type ActivityItem struct {
	EmployeeName string    `json:"employee_name"`
	Direction    string    `json:"direction"` // "in" or "out"
	At           time.Time `json:"at"`
}

type DashboardResponse struct {
	KPIs           TodayKPIs      `json:"kpis"`
	RecentActivity []ActivityItem `json:"recent_activity"`
}
