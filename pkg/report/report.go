// Package report renders the weekly report as an ordered list of lines. The
// bracketed tags are forum markup and are reproduced verbatim.
package report

import (
	"fmt"
	"strconv"

	"github.com/yurifrl/unistats/pkg/aggregate"
)

const (
	loadedOfficersBanner = "======================LOADED OFFICERS================================"
	loadedActionsBanner  = "======================LOADED ACTIONS================================"
	forumPostBanner      = "=======================FORUM POST==================================="
	actionsBanner        = "==========================ACTIONS================================="
	interviewsBanner     = "===========================INTERVIEWS=============================="
	yearlyBanner         = "=============================YEARLY================================"
)

// Input is everything needed to render a full report.
type Input struct {
	Officers []string
	Actions  []string
	// ReportDate is the dd/mm/yyyy heading date.
	ReportDate string
	// WeekdayLayout formats days in the daily summary.
	WeekdayLayout string
	Summary       *aggregate.Summary
}

// Render assembles all sections in their fixed order.
func Render(in Input) []string {
	s := in.Summary

	var lines []string
	lines = append(lines, LoadedOfficers(in.Officers)...)
	lines = append(lines, LoadedActions(in.Actions)...)
	lines = append(lines, ForumPost(in.ReportDate, in.WeekdayLayout, s)...)
	lines = append(lines, Actions(in.Officers, s.ByOfficer)...)
	lines = append(lines, Interviews(in.Officers, s.Accepted)...)
	lines = append(lines, Yearly(in.Actions, s.ByAction)...)
	return lines
}

func banner(title string) []string {
	return []string{"", title, ""}
}

func LoadedOfficers(officers []string) []string {
	return append(banner(loadedOfficersBanner), officers...)
}

func LoadedActions(actions []string) []string {
	return append(banner(loadedActionsBanner), actions...)
}

// ForumPost renders the block that is pasted into the forum: heading, daily
// summary, action summary, officer ranking and per-officer detail.
func ForumPost(reportDate, weekdayLayout string, s *aggregate.Summary) []string {
	lines := banner(forumPostBanner)
	lines = append(lines, Heading(reportDate))
	lines = append(lines, DailySummary(s.Days, weekdayLayout)...)
	lines = append(lines, ActionSummary(s.Total, s.Actions)...)
	lines = append(lines, OfficerSummary(s.Ranking)...)
	return append(lines, OfficerDetail(s.Details)...)
}

func Heading(reportDate string) string {
	return "[size=120]Report as of " + reportDate + "[/size]"
}

// DailySummary lists the interviews per day; days must already be ascending.
func DailySummary(days []aggregate.DayCount, weekdayLayout string) []string {
	lines := []string{"[quote]", "[size=120]Daily Summary[/size]", "[list]"}
	for _, d := range days {
		lines = append(lines, fmt.Sprintf("[*] %d on %s", d.Count, d.Day.Format(weekdayLayout)))
	}
	return append(lines, "[/list][/quote]")
}

// ActionSummary shows the weekly total and, for each action with at least
// one interview, its count and per-day breakdown.
func ActionSummary(total int, actions []aggregate.ActionTotal) []string {
	lines := []string{
		fmt.Sprintf("[quote][size=120][color=#80FF00]%d[/color] interviews completed this week[/size][list]", total),
	}
	for _, a := range actions {
		if a.Count > 0 {
			lines = append(lines, fmt.Sprintf("[*] %d were %s [%s]", a.Count, a.Action, a.Breakdown))
		}
	}
	return append(lines, "[/list][/quote]")
}

func OfficerSummary(ranking []aggregate.OfficerCount) []string {
	lines := []string{"", "[log]Summary by Officer"}
	for _, oc := range ranking {
		lines = append(lines, fmt.Sprintf("%d %s", oc.Count, oc.Officer))
	}
	return append(lines, "[/log]")
}

func OfficerDetail(details []aggregate.OfficerDetail) []string {
	lines := []string{"", "[Spoiler]"}
	for _, d := range details {
		lines = append(lines, fmt.Sprintf("%s completed %d interviews", d.Officer, d.Total))
		for _, a := range d.Actions {
			lines = append(lines, fmt.Sprintf("%d %s", a.Count, a.Action))
		}
		lines = append(lines, "")
	}
	return append(lines, "[/Spoiler]")
}

// Actions lists each allow-listed officer's interview count, 0 included.
func Actions(officers []string, byOfficer map[string]int) []string {
	return counts(actionsBanner, officers, byOfficer)
}

// Interviews lists each allow-listed officer's Accept count, 0 included.
func Interviews(officers []string, accepted map[string]int) []string {
	return counts(interviewsBanner, officers, accepted)
}

// Yearly lists each allow-listed action's total, 0 included.
func Yearly(actions []string, byAction map[string]int) []string {
	return counts(yearlyBanner, actions, byAction)
}

func counts(title string, keys []string, values map[string]int) []string {
	lines := banner(title)
	for _, k := range keys {
		lines = append(lines, strconv.Itoa(values[k]))
	}
	return lines
}
