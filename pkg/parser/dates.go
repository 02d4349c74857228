package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/yurifrl/unistats/pkg/config"
)

// ErrDateParse is returned when the header date or a row date does not match
// the expected layout. It always aborts the run.
var ErrDateParse = errors.New("date parse error")

// headerSkipTokens is the number of leading words before the date, as in
// "Actions logged since 1st January 2024".
const headerSkipTokens = 3

// ordinalDateRegex strips ordinal suffixes and filler between the day number
// and "<Month> <Year>".
var ordinalDateRegex = regexp.MustCompile(`^(\d+).*? (\w+ \d+)`)

// Dates carries the log date stated in the header and the week-ending report date.
type Dates struct {
	Log    time.Time
	Report time.Time

	formats config.Formats
}

// Heading formats the report date for the forum post, dd/mm/yyyy.
func (d Dates) Heading() string {
	return d.Report.Format(d.formats.ReportDate)
}

// FileBase is the report file name without extension, yyyy-mm-dd.
func (d Dates) FileBase() string {
	return d.Report.Format(d.formats.FileDate)
}

// ResolveDates derives the log and report dates from the document header.
func ResolveDates(header string, f config.Formats) (Dates, error) {
	tokens := strings.Fields(header)
	if len(tokens) <= headerSkipTokens {
		return Dates{}, fmt.Errorf("%w: header %q has no date", ErrDateParse, header)
	}
	raw := strings.Join(tokens[headerSkipTokens:], " ")
	normalized := replaceFirst(ordinalDateRegex, raw, "$1 $2")

	logDate, err := time.Parse(f.LogDate, normalized)
	if err != nil {
		return Dates{}, fmt.Errorf("%w: header date %q: %v", ErrDateParse, normalized, err)
	}

	return Dates{
		Log:     logDate,
		Report:  logDate.AddDate(0, 0, f.ReportOffsetDays),
		formats: f,
	}, nil
}

// replaceFirst rewrites only the first match of re in s.
func replaceFirst(re *regexp.Regexp, s, template string) string {
	loc := re.FindStringSubmatchIndex(s)
	if loc == nil {
		return s
	}
	var dst []byte
	dst = re.ExpandString(dst, template, s, loc)
	return s[:loc[0]] + string(dst) + s[loc[1]:]
}
