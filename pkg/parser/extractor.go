package parser

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/yurifrl/unistats/pkg/config"
	"github.com/yurifrl/unistats/pkg/document"
	"github.com/yurifrl/unistats/pkg/models"
)

// AllowList is the membership test the extractor filters against.
type AllowList interface {
	Contains(string) bool
}

// Extractor turns raw document rows into Records, dropping any row whose
// officer or action is not allow-listed.
type Extractor struct {
	officers AllowList
	actions  AllowList
	formats  config.Formats
	logger   *log.Logger
}

func NewExtractor(officers, actions AllowList, formats config.Formats, logger *log.Logger) *Extractor {
	return &Extractor{
		officers: officers,
		actions:  actions,
		formats:  formats,
		logger:   logger,
	}
}

// Classify returns one Outcome per data row, in document order. Label rows
// are skipped. A row with an unparseable date fails the whole call.
func (e *Extractor) Classify(rows []document.Row) ([]models.Outcome, error) {
	outcomes := make([]models.Outcome, 0, len(rows))
	for i, row := range rows {
		if row.Header {
			continue
		}

		date, err := e.parseRowDate(row.Date)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}

		record := models.NewRecord(
			date,
			strings.TrimSpace(row.Applicant),
			strings.TrimSpace(row.Officer),
			strings.TrimSpace(row.Action),
		)

		outcome := e.classify(record)
		if !outcome.Accepted {
			e.logger.Debug("dropping row", "row", i, "reason", outcome.Reason, "officer", record.Officer(), "action", record.Action())
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes, nil
}

// Extract returns only the accepted Records, in document order.
func (e *Extractor) Extract(rows []document.Row) ([]models.Record, error) {
	outcomes, err := e.Classify(rows)
	if err != nil {
		return nil, err
	}

	records := make([]models.Record, 0, len(outcomes))
	for _, o := range outcomes {
		if o.Accepted {
			records = append(records, o.Record)
		}
	}
	e.logger.Debug("extracted records", "rows", len(outcomes), "kept", len(records))
	return records, nil
}

func (e *Extractor) classify(r models.Record) models.Outcome {
	if !e.officers.Contains(r.Officer()) {
		return models.Rejected(r, models.UnrecognizedOfficer)
	}
	if !e.actions.Contains(r.Action()) {
		return models.Rejected(r, models.UnrecognizedAction)
	}
	return models.Accepted(r)
}

// parseRowDate strips the " HH:MM:SS" suffix and parses the remaining
// "Jan 2, 2006" date.
func (e *Extractor) parseRowDate(raw string) (time.Time, error) {
	if len(raw) <= e.formats.TimeSuffixLen {
		return time.Time{}, fmt.Errorf("%w: %q is too short", ErrDateParse, raw)
	}
	datePart := raw[:len(raw)-e.formats.TimeSuffixLen]
	date, err := time.Parse(e.formats.RowDate, datePart)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrDateParse, raw, err)
	}
	return date, nil
}
