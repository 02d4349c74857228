// Package aggregate groups and counts filtered Records for the weekly report.
// Every function is pure: it reads the Records and returns fresh maps or
// slices.
package aggregate

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/yurifrl/unistats/pkg/models"
)

// AcceptAction is the action label counted as a completed interview in the
// INTERVIEWS block.
const AcceptAction = "Accept"

func countBy[K comparable](records []models.Record, key func(models.Record) K) map[K]int {
	counts := make(map[K]int)
	for _, r := range records {
		counts[key(r)]++
	}
	return counts
}

// ByDay counts Records per calendar day.
func ByDay(records []models.Record) map[time.Time]int {
	return countBy(records, models.Record.Date)
}

// Days returns the keys of a per-day count in ascending order.
func Days(byDay map[time.Time]int) []time.Time {
	days := make([]time.Time, 0, len(byDay))
	for d := range byDay {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// ByAction counts Records per action label.
func ByAction(records []models.Record) map[string]int {
	return countBy(records, models.Record.Action)
}

// Breakdown summarises one action's Records per day, oldest first, as
// "Mon 3, Tue 5". dayLayout formats the day label.
func Breakdown(records []models.Record, action, dayLayout string) string {
	byDay := ByDay(filter(records, func(r models.Record) bool { return r.Action() == action }))

	parts := make([]string, 0, len(byDay))
	for _, d := range Days(byDay) {
		parts = append(parts, d.Format(dayLayout)+" "+strconv.Itoa(byDay[d]))
	}
	return strings.Join(parts, ", ")
}

// ByOfficer counts Records per officer.
func ByOfficer(records []models.Record) map[string]int {
	return countBy(records, models.Record.Officer)
}

// ByOfficerAction counts one officer's Records per action. Actions the
// officer never took are absent.
func ByOfficerAction(records []models.Record, officer string) map[string]int {
	return ByAction(filter(records, func(r models.Record) bool { return r.Officer() == officer }))
}

// AcceptedByOfficer counts, per officer, the Records whose action is exactly
// AcceptAction.
func AcceptedByOfficer(records []models.Record) map[string]int {
	return ByOfficer(filter(records, func(r models.Record) bool { return r.Action() == AcceptAction }))
}

// OfficerCount pairs an officer with a count.
type OfficerCount struct {
	Officer string `yaml:"officer"`
	Count   int    `yaml:"count"`
}

// RankOfficers orders officers by count descending. Equal counts are ordered
// by officer name ascending.
func RankOfficers(byOfficer map[string]int) []OfficerCount {
	ranked := make([]OfficerCount, 0, len(byOfficer))
	for officer, n := range byOfficer {
		ranked = append(ranked, OfficerCount{Officer: officer, Count: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Officer < ranked[j].Officer
	})
	return ranked
}

func filter(records []models.Record, keep func(models.Record) bool) []models.Record {
	var out []models.Record
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
