package service

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/yurifrl/unistats/pkg/aggregate"
	"github.com/yurifrl/unistats/pkg/allowlist"
	"github.com/yurifrl/unistats/pkg/config"
	"github.com/yurifrl/unistats/pkg/document"
	"github.com/yurifrl/unistats/pkg/models"
	"github.com/yurifrl/unistats/pkg/output"
	"github.com/yurifrl/unistats/pkg/parser"
	"github.com/yurifrl/unistats/pkg/report"
)

type Processor struct {
	config  *config.Config
	formats config.Formats
	logger  *log.Logger
}

func NewProcessor(config *config.Config, formats config.Formats, logger *log.Logger) *Processor {
	return &Processor{
		config:  config,
		formats: formats,
		logger:  logger,
	}
}

// Result is a fully rendered report, not yet written anywhere.
type Result struct {
	Dates   parser.Dates
	Summary *aggregate.Summary
	Lines   []string
}

// input is the loaded state shared by every command.
type input struct {
	officers *allowlist.List
	actions  *allowlist.List
	dates    parser.Dates
	rows     []document.Row
}

func (p *Processor) load() (*input, error) {
	officers, err := allowlist.Load("officers", p.config.OfficersPath, p.logger)
	if err != nil {
		return nil, err
	}
	actions, err := allowlist.Load("actions", p.config.ActionsPath, p.logger)
	if err != nil {
		return nil, err
	}

	doc, err := document.Open(p.config.DocumentPath)
	if err != nil {
		return nil, err
	}

	header, ok := doc.Header()
	if !ok {
		return nil, fmt.Errorf("%w: document has no header paragraph", parser.ErrDateParse)
	}
	dates, err := parser.ResolveDates(header, p.formats)
	if err != nil {
		return nil, err
	}

	rows, err := doc.Rows()
	if err != nil {
		return nil, err
	}

	p.logger.Debug("loaded document", "path", p.config.DocumentPath, "rows", len(rows), "log_date", dates.Log.Format(p.formats.FileDate))
	return &input{officers: officers, actions: actions, dates: dates, rows: rows}, nil
}

func (p *Processor) extractor(in *input) *parser.Extractor {
	return parser.NewExtractor(in.officers, in.actions, p.formats, p.logger)
}

// Generate runs the whole pipeline in memory.
func (p *Processor) Generate() (*Result, error) {
	in, err := p.load()
	if err != nil {
		return nil, err
	}

	records, err := p.extractor(in).Extract(in.rows)
	if err != nil {
		return nil, err
	}

	summary := aggregate.Summarize(records, in.actions.Values(), p.formats.ShortWeekday)
	lines := report.Render(report.Input{
		Officers:      in.officers.Values(),
		Actions:       in.actions.Values(),
		ReportDate:    in.dates.Heading(),
		WeekdayLayout: p.formats.Weekday,
		Summary:       summary,
	})

	return &Result{Dates: in.dates, Summary: summary, Lines: lines}, nil
}

// Run generates the report, prints it to stdout and writes the dated file.
// Nothing is printed or written unless generation succeeds.
func (p *Processor) Run(stdout io.Writer) (string, error) {
	result, err := p.Generate()
	if err != nil {
		return "", err
	}

	if err := output.Print(stdout, result.Lines); err != nil {
		return "", fmt.Errorf("failed to print report: %w", err)
	}

	path, err := output.WriteFile(p.config.ReportsDir, result.Dates.FileBase(), result.Lines)
	if err != nil {
		return "", err
	}

	p.logger.Info("report written", "path", path, "interviews", result.Summary.Total)
	return path, nil
}

// Inspect classifies every data row without aggregating.
func (p *Processor) Inspect() ([]models.Outcome, error) {
	in, err := p.load()
	if err != nil {
		return nil, err
	}
	return p.extractor(in).Classify(in.rows)
}
