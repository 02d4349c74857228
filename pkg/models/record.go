package models

import (
	"fmt"
	"time"
)

// Record represents one logged interview action that passed both allow-lists
type Record struct {
	date      time.Time
	applicant string
	officer   string
	action    string
}

// NewRecord builds a Record. The date is truncated to its calendar day in UTC.
func NewRecord(date time.Time, applicant, officer, action string) Record {
	return Record{
		date:      time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		applicant: applicant,
		officer:   officer,
		action:    action,
	}
}

func (r Record) Date() time.Time   { return r.date }
func (r Record) Applicant() string { return r.applicant }
func (r Record) Officer() string   { return r.officer }
func (r Record) Action() string    { return r.action }

func (r Record) String() string {
	return fmt.Sprintf("%s | %s | %s | %s", r.date.Format("2006-01-02"), r.applicant, r.officer, r.action)
}

// RejectReason explains why a row never reached the report
type RejectReason string

const (
	UnrecognizedOfficer RejectReason = "unrecognized officer"
	UnrecognizedAction  RejectReason = "unrecognized action"
)

// Outcome is the classification of a single data row: either the Record is
// accepted, or it is rejected with a reason.
type Outcome struct {
	Record   Record
	Accepted bool
	Reason   RejectReason
}

func Accepted(r Record) Outcome {
	return Outcome{Record: r, Accepted: true}
}

func Rejected(r Record, reason RejectReason) Outcome {
	return Outcome{Record: r, Reason: reason}
}
