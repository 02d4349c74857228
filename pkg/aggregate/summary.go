package aggregate

import (
	"time"

	"github.com/yurifrl/unistats/pkg/models"
)

type DayCount struct {
	Day   time.Time `yaml:"day"`
	Count int       `yaml:"count"`
}

// ActionTotal is an action's weekly count and its per-day breakdown.
type ActionTotal struct {
	Action    string `yaml:"action"`
	Count     int    `yaml:"count"`
	Breakdown string `yaml:"breakdown,omitempty"`
}

type ActionCount struct {
	Action string `yaml:"action"`
	Count  int    `yaml:"count"`
}

// OfficerDetail lists what one officer did, actions in allow-list order.
type OfficerDetail struct {
	Officer string        `yaml:"officer"`
	Total   int           `yaml:"total"`
	Actions []ActionCount `yaml:"actions"`
}

// Summary holds every aggregation the report needs, computed once.
type Summary struct {
	Total int `yaml:"total"`
	// Days with at least one Record, ascending.
	Days []DayCount `yaml:"days"`
	// Actions in allow-list order, zero counts included.
	Actions []ActionTotal `yaml:"actions"`
	// Ranking and Details cover officers with at least one Record, by count
	// descending then name.
	Ranking []OfficerCount  `yaml:"ranking"`
	Details []OfficerDetail `yaml:"details"`

	ByOfficer map[string]int `yaml:"by_officer"`
	Accepted  map[string]int `yaml:"accepted"`
	ByAction  map[string]int `yaml:"by_action"`
}

// Summarize runs every aggregation over records. actions fixes the order of
// per-action output; breakdownLayout formats the day labels in breakdowns.
func Summarize(records []models.Record, actions []string, breakdownLayout string) *Summary {
	byDay := ByDay(records)
	byAction := ByAction(records)
	byOfficer := ByOfficer(records)

	s := &Summary{
		Total:     len(records),
		ByOfficer: byOfficer,
		Accepted:  AcceptedByOfficer(records),
		ByAction:  byAction,
	}

	for _, d := range Days(byDay) {
		s.Days = append(s.Days, DayCount{Day: d, Count: byDay[d]})
	}

	for _, a := range actions {
		total := ActionTotal{Action: a, Count: byAction[a]}
		if total.Count > 0 {
			total.Breakdown = Breakdown(records, a, breakdownLayout)
		}
		s.Actions = append(s.Actions, total)
	}

	s.Ranking = RankOfficers(byOfficer)
	for _, oc := range s.Ranking {
		perAction := ByOfficerAction(records, oc.Officer)
		detail := OfficerDetail{Officer: oc.Officer, Total: oc.Count}
		for _, a := range actions {
			if n := perAction[a]; n > 0 {
				detail.Actions = append(detail.Actions, ActionCount{Action: a, Count: n})
			}
		}
		s.Details = append(s.Details, detail)
	}

	return s
}
