package handlers

import (
	"log"
	"net/http"
	"sort"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"onyxcrm/services"
	"onyxcrm/store"
)

// MonthlyPoint is one bar of the dashboard revenue chart: quotes dated
// in that month, totalled in their own quote currencies converted to INR.
type MonthlyPoint struct {
	Month    string  `json:"month"`
	Count    int     `json:"count"`
	TotalINR float64 `json:"totalInr"`
}

// DashboardData is the landing page payload.
type DashboardData struct {
	StatusCounts map[string]int      `json:"statusCounts"`
	Monthly      []MonthlyPoint      `json:"monthly"`
	Calendar     map[string][]string `json:"calendar"`
	Recent       []services.Quote    `json:"recent"`
}

// HandleDashboard aggregates the visible quotes into status counts, a
// monthly revenue series, a date -> quote numbers calendar and the five
// most recent quotes.
func HandleDashboard(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		actor := CurrentActor(e.Request)

		quotes, err := store.ListQuotes(app, actor, store.QuoteFilter{})
		if err != nil {
			log.Printf("dashboard: %v", err)
			return apiError(e, http.StatusInternalServerError, "Could not load quotes")
		}

		rates, err := store.OfficialRates(app)
		if err != nil {
			log.Printf("dashboard: could not load rates: %v", err)
			return apiError(e, http.StatusInternalServerError, "Could not load rates")
		}

		statusCounts := make(map[string]int)
		for _, s := range services.QuoteStatuses {
			statusCounts[s] = 0
		}

		monthly := make(map[string]*MonthlyPoint)
		calendar := make(map[string][]string)

		for _, q := range quotes {
			statusCounts[q.Status]++

			if len(q.Date) >= 7 {
				month := q.Date[:7]
				point, ok := monthly[month]
				if !ok {
					point = &MonthlyPoint{Month: month}
					monthly[month] = point
				}
				point.Count++
				if inr, err := services.Convert(q.GrandTotal, q.Currency, services.BaseCurrency, rates); err == nil {
					point.TotalINR += inr
				}
			}

			if q.Date != "" {
				calendar[q.Date] = append(calendar[q.Date], q.Number)
			}
		}

		series := make([]MonthlyPoint, 0, len(monthly))
		for _, point := range monthly {
			series = append(series, *point)
		}
		sort.Slice(series, func(i, j int) bool { return series[i].Month < series[j].Month })

		// Quotes come back oldest first; the tail is the most recent.
		recent := quotes
		if len(recent) > 5 {
			recent = recent[len(recent)-5:]
		}

		return e.JSON(http.StatusOK, DashboardData{
			StatusCounts: statusCounts,
			Monthly:      series,
			Calendar:     calendar,
			Recent:       recent,
		})
	}
}
