package service

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yurifrl/unistats/pkg/allowlist"
	"github.com/yurifrl/unistats/pkg/config"
	"github.com/yurifrl/unistats/pkg/document"
	"github.com/yurifrl/unistats/pkg/models"
	"github.com/yurifrl/unistats/pkg/parser"
)

const weekPage = `<html><body>
<p>Actions logged since 1st January 2024</p>
<div id="actionList">
  <div class="tr headers"><div class="date">Date</div><div class="vChar">Applicant</div><div class="aChar">Officer</div><div class="action">Action</div></div>
  <div class="tr"><div class="date">Jan 1, 2024 10:15:00</div><div class="vChar">Carol-applicant</div><div class="aChar">Alice</div><div class="action">Accept</div></div>
  <div class="tr"><div class="date">Jan 2, 2024 12:00:00</div><div class="vChar">Dave-applicant</div><div class="aChar">Bob</div><div class="action">Reject</div></div>
  <div class="tr"><div class="date">Jan 3, 2024 09:30:00</div><div class="vChar">Eve-applicant</div><div class="aChar">Zoe</div><div class="action">Accept</div></div>
</div>
</body></html>`

type fixture struct {
	cfg *config.Config
	dir string
}

func newFixture(t *testing.T, page, officers, actions string) *fixture {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{
		DocumentPath: filepath.Join(dir, "data", "E-Uni Tools.html"),
		OfficersPath: filepath.Join(dir, "config", "officers.txt"),
		ActionsPath:  filepath.Join(dir, "config", "actions.txt"),
		ReportsDir:   filepath.Join(dir, "reports"),
	}
	writeFile(t, cfg.DocumentPath, page)
	writeFile(t, cfg.OfficersPath, officers)
	writeFile(t, cfg.ActionsPath, actions)
	return &fixture{cfg: cfg, dir: dir}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func (f *fixture) processor() *Processor {
	return NewProcessor(f.cfg, config.DefaultFormats(), log.New(io.Discard))
}

// block returns the lines following a banner up to the next blank line.
func block(lines []string, banner string) []string {
	for i, l := range lines {
		if strings.Contains(l, banner) {
			var out []string
			for _, v := range lines[i+2:] {
				if v == "" {
					break
				}
				out = append(out, v)
			}
			return out
		}
	}
	return nil
}

func TestRun(t *testing.T) {
	f := newFixture(t, weekPage, "Alice\nBob\n", "Accept\nReject\n")

	var stdout bytes.Buffer
	path, err := f.processor().Run(&stdout)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(f.cfg.ReportsDir, "2024-01-07.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(data)+"\n", stdout.String())

	lines := strings.Split(string(data), "\n")
	assert.Contains(t, lines, "[size=120]Report as of 07/01/2024[/size]")
	assert.NotContains(t, string(data), "Zoe")
	assert.Equal(t, []string{"1", "1"}, block(lines, "==ACTIONS=="))
	assert.Equal(t, []string{"1", "0"}, block(lines, "==INTERVIEWS=="))
	assert.Equal(t, []string{"1", "1"}, block(lines, "==YEARLY=="))
}

func TestGenerateIsIdempotent(t *testing.T) {
	f := newFixture(t, weekPage, "Alice\nBob\n", "Accept\nReject\n")

	first, err := f.processor().Generate()
	require.NoError(t, err)
	second, err := f.processor().Generate()
	require.NoError(t, err)

	assert.Equal(t, first.Lines, second.Lines)
}

func TestGenerateTotalsAgree(t *testing.T) {
	f := newFixture(t, weekPage, "Alice\nBob\nCarol\n", "Accept\nReject\nDefer\n")

	result, err := f.processor().Generate()
	require.NoError(t, err)

	sum := func(values []string) int {
		total := 0
		for _, v := range values {
			n, err := strconv.Atoi(v)
			require.NoError(t, err)
			total += n
		}
		return total
	}

	assert.Equal(t, 2, result.Summary.Total)
	assert.Contains(t, result.Lines, "[quote][size=120][color=#80FF00]2[/color] interviews completed this week[/size][list]")
	assert.Equal(t, result.Summary.Total, sum(block(result.Lines, "==ACTIONS==")))
	assert.Equal(t, result.Summary.Total, sum(block(result.Lines, "==YEARLY==")))
	assert.Equal(t, []string{"1", "1", "0"}, block(result.Lines, "==YEARLY=="))
}

func TestRunFailuresWriteNothing(t *testing.T) {
	badRow := strings.Replace(weekPage, "Jan 2, 2024 12:00:00", "2 Jan 2024", 1)
	noHeader := strings.Replace(weekPage, "<p>Actions logged since 1st January 2024</p>", "", 1)
	badHeader := strings.Replace(weekPage, "1st January 2024", "sometime", 1)
	noList := strings.Replace(weekPage, `id="actionList"`, `id="other"`, 1)

	tests := []struct {
		name   string
		page   string
		mutate func(*config.Config)
		target error
	}{
		{name: "bad row date", page: badRow, target: parser.ErrDateParse},
		{name: "no header", page: noHeader, target: parser.ErrDateParse},
		{name: "bad header date", page: badHeader, target: parser.ErrDateParse},
		{name: "no action list", page: noList, target: document.ErrMalformed},
		{name: "missing officers", page: weekPage, mutate: func(c *config.Config) { c.OfficersPath += ".missing" }, target: allowlist.ErrUnreadable},
		{name: "missing actions", page: weekPage, mutate: func(c *config.Config) { c.ActionsPath += ".missing" }, target: allowlist.ErrUnreadable},
		{name: "missing document", page: weekPage, mutate: func(c *config.Config) { c.DocumentPath += ".missing" }, target: document.ErrUnreadable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.page, "Alice\nBob\n", "Accept\nReject\n")
			if tt.mutate != nil {
				tt.mutate(f.cfg)
			}

			var stdout bytes.Buffer
			_, err := f.processor().Run(&stdout)
			require.ErrorIs(t, err, tt.target)
			assert.Empty(t, stdout.String())

			_, statErr := os.Stat(f.cfg.ReportsDir)
			assert.True(t, os.IsNotExist(statErr), "reports directory should not exist")
		})
	}
}

func TestInspect(t *testing.T) {
	f := newFixture(t, weekPage, "Alice\nBob\n", "Accept\nReject\n")

	outcomes, err := f.processor().Inspect()
	require.NoError(t, err)
	require.Len(t, outcomes, 3)

	assert.True(t, outcomes[0].Accepted)
	assert.True(t, outcomes[1].Accepted)
	assert.False(t, outcomes[2].Accepted)
	assert.Equal(t, models.UnrecognizedOfficer, outcomes[2].Reason)
	assert.Equal(t, "Zoe", outcomes[2].Record.Officer())
}
