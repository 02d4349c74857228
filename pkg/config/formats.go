package config

// Formats groups the date layouts used to read the activity log and to write
// the report. Month and weekday names are the English (UK) ones.
type Formats struct {
	// LogDate parses the normalized header date, e.g. "1 January 2024".
	LogDate string
	// RowDate parses a row's date once the time suffix is removed, e.g. "Jan 5, 2024".
	RowDate string
	// TimeSuffixLen is the width of the " HH:MM:SS" suffix on row dates.
	TimeSuffixLen int
	// ReportDate is the heading date, dd/mm/yyyy.
	ReportDate string
	// FileDate is the report file base name, yyyy-mm-dd.
	FileDate string
	// Weekday and ShortWeekday label days in the daily summary and breakdowns.
	Weekday      string
	ShortWeekday string
	// ReportOffsetDays is added to the log date to get the week-ending date.
	ReportOffsetDays int
}

func DefaultFormats() Formats {
	return Formats{
		LogDate:          "2 January 2006",
		RowDate:          "Jan 2, 2006",
		TimeSuffixLen:    len(" 15:04:05"),
		ReportDate:       "02/01/2006",
		FileDate:         "2006-01-02",
		Weekday:          "Monday",
		ShortWeekday:     "Mon",
		ReportOffsetDays: 6,
	}
}
