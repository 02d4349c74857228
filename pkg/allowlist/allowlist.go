package allowlist

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// ErrUnreadable is returned when an allow-list file cannot be opened or read
var ErrUnreadable = errors.New("allow-list unreadable")

// List is an ordered set of permitted values. Its order drives the order of
// rows and sections in the report.
type List struct {
	name   string
	values []string
	index  map[string]struct{}
}

// New builds a List from already trimmed values, skipping blanks and later
// duplicates.
func New(name string, values []string) *List {
	l := &List{name: name, index: make(map[string]struct{}, len(values))}
	for _, v := range values {
		l.add(v)
	}
	return l
}

func (l *List) add(v string) bool {
	if v == "" {
		return false
	}
	if _, ok := l.index[v]; ok {
		return false
	}
	l.index[v] = struct{}{}
	l.values = append(l.values, v)
	return true
}

// Load reads one value per line from path.
func Load(name, path string, logger *log.Logger) (*List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", ErrUnreadable, name, path, err)
	}
	return Parse(name, data, logger)
}

// Parse reads one value per line. Values are trimmed; blank lines are
// skipped and a repeated value keeps its first position.
func Parse(name string, data []byte, logger *log.Logger) (*List, error) {
	l := &List{name: name, index: make(map[string]struct{})}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		value := strings.TrimSpace(scanner.Text())
		if value == "" {
			continue
		}
		if !l.add(value) {
			logger.Warn("duplicate allow-list entry ignored", "list", name, "line", lineNo, "value", value)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, name, err)
	}

	logger.Debug("loaded allow-list", "list", name, "entries", len(l.values))
	return l, nil
}

func (l *List) Name() string { return l.name }

func (l *List) Len() int { return len(l.values) }

// Values returns a copy of the entries in file order.
func (l *List) Values() []string {
	out := make([]string, len(l.values))
	copy(out, l.values)
	return out
}

// Contains reports exact, case-sensitive membership.
func (l *List) Contains(v string) bool {
	_, ok := l.index[v]
	return ok
}
