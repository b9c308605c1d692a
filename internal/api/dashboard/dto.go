package dashboard

import "github.com/phpedruo/mypocket/internal/stats"

type StatsResponse struct {
	Stats stats.Totals `json:"stats"`
}

type TrendResponse struct {
	Months int                `json:"months"`
	Trend  []stats.TrendPoint `json:"trend"`
}

type BreakdownResponse struct {
	Type      string                 `json:"type"`
	Breakdown []stats.BreakdownEntry `json:"breakdown"`
}
