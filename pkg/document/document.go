// Package document reads the exported activity log page: a header paragraph
// stating the log date and a list of action rows.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

var (
	// ErrUnreadable is returned when the document cannot be opened or decoded.
	ErrUnreadable = errors.New("document unreadable")
	// ErrMalformed is returned when the document lacks the action list.
	ErrMalformed = errors.New("document malformed")
)

const (
	actionListID   = "actionList"
	rowClass       = "tr"
	headerRowClass = "headers"
	dateClass      = "date"
	applicantClass = "vChar"
	officerClass   = "aChar"
	actionClass    = "action"
)

// Row holds the raw text of one row in the action list.
type Row struct {
	Header    bool
	Date      string
	Applicant string
	Officer   string
	Action    string
}

// Document is a parsed activity log.
type Document struct {
	root *html.Node
}

// Open reads and parses the document at path.
func Open(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	return Parse(bytes.NewReader(data))
}

// Parse decodes r (honouring any charset declared in the page) and builds the
// node tree.
func Parse(r io.Reader) (*Document, error) {
	decoded, err := charset.NewReader(r, "text/html")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	root, err := html.Parse(decoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	return &Document{root: root}, nil
}

// Header returns the whitespace-normalized text of the first paragraph, and
// false when the page has none.
func (d *Document) Header() (string, bool) {
	p := findFirst(d.root, func(n *html.Node) bool { return isElement(n, "p") })
	if p == nil {
		return "", false
	}
	return text(p), true
}

// Rows returns every row of the first action list in document order,
// including label rows (flagged with Header).
func (d *Document) Rows() ([]Row, error) {
	list := findFirst(d.root, func(n *html.Node) bool {
		return isElement(n, "div") && getAttr(n, "id") == actionListID
	})
	if list == nil {
		return nil, fmt.Errorf("%w: no div#%s", ErrMalformed, actionListID)
	}

	var rows []Row
	for _, n := range findAll(list, divWithClass(rowClass)) {
		rows = append(rows, Row{
			Header:    hasClass(n, headerRowClass),
			Date:      fieldText(n, dateClass),
			Applicant: fieldText(n, applicantClass),
			Officer:   fieldText(n, officerClass),
			Action:    fieldText(n, actionClass),
		})
	}
	return rows, nil
}

// fieldText joins the text of every div.<class> under n with a single space.
func fieldText(n *html.Node, class string) string {
	var parts []string
	for _, f := range findAll(n, divWithClass(class)) {
		if t := text(f); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}

func divWithClass(class string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return isElement(n, "div") && hasClass(n, class)
	}
}

func isElement(n *html.Node, tag string) bool {
	return n.Type == html.ElementNode && n.Data == tag
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(getAttr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// findFirst does a depth-first search of n's descendants.
func findFirst(n *html.Node, match func(*html.Node) bool) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if match(c) {
			return c
		}
		if found := findFirst(c, match); found != nil {
			return found
		}
	}
	return nil
}

func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if match(c) {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(n)
	return out
}

// text concatenates the text nodes under n and collapses runs of whitespace.
func text(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			return
		}
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style":
				return
			case "br":
				sb.WriteString(" ")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}
