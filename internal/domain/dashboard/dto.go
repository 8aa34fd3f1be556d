package dashboard

import "github.com/holiday-manager/ponto-backend-go/internal/domain/vacation"

// DashboardResponse is the combined response for the main dashboard endpoint
type DashboardResponse struct {
	Headcount         int64                       `json:"headcount"`
	AwayToday         []vacation.VacationResponse `json:"away_today"`
	UpcomingVacations []UpcomingVacationResponse  `json:"upcoming_vacations"`

	// ProjectedVacationCost sums the estimate of every upcoming vacation
	ProjectedVacationCost string `json:"projected_vacation_cost"`

	PresentNow  int    `json:"present_now"`
	Date        string `json:"date"` // YYYY-MM-DD in establishment timezone
	GeneratedAt string `json:"generated_at"`
}

// UpcomingVacationResponse is a vacation starting within the look-ahead window
type UpcomingVacationResponse struct {
	vacation.VacationResponse
	DaysUntilStart int    `json:"days_until_start"`
	ProjectedCost  string `json:"projected_cost"`
}
