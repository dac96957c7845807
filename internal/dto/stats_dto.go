package dto

// MonthCount is one point of the monthly registration trend, for charting.
type MonthCount struct {
	Month string `json:"month"` // "2024-01"
	Count int64  `json:"count"`
}

// FrequentVisitor is one row of the most-frequent-visitors ranking.
type FrequentVisitor struct {
	CIN    string `json:"cin"`
	Name   string `json:"name"`
	Visits int64  `json:"visits"`
}

// AgentCount is the visitor count registered by one agent.
type AgentCount struct {
	AgentID   string `json:"agent_id"`
	AgentName string `json:"agent_name"`
	Visits    int64  `json:"visits"`
}

// StatsResponse is returned by GET /visitor-stats.
type StatsResponse struct {
	TotalVisitors    int64             `json:"total_visitors"`
	Today            int64             `json:"today"`
	ThisMonth        int64             `json:"this_month"`
	MonthlyTrend     []MonthCount      `json:"monthly_trend"`
	FrequentVisitors []FrequentVisitor `json:"frequent_visitors"`
	VisitsPerAgent   []AgentCount      `json:"visits_per_agent"`
}
