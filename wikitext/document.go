package wikitext

import (
	"regexp"
	"strings"
)

var headingRegex = regexp.MustCompile(`^(={1,6})\s*(.*?)\s*(={1,6})\s*$`)

// Document is a parsed wikitext article.
type Document struct {
	lines    []string
	Sections []Section
}

// Section is a titled region of a document. The lead section has level 0 and
// an empty title. A section spans all of its subsections.
type Section struct {
	Title  string
	Level  int
	Tables []Table

	start, end int
}

// Parse splits source into sections and tables.
func Parse(source string) *Document {
	source = strings.ReplaceAll(source, "\r\n", "\n")
	doc := &Document{lines: strings.Split(source, "\n")}

	type heading struct {
		line  int
		level int
		title string
	}
	headings := []heading{{line: -1}}
	for i, line := range doc.lines {
		level, title, ok := parseHeading(line)
		if ok {
			headings = append(headings, heading{line: i, level: level, title: title})
		}
	}

	tables := findTables(doc.lines)

	for i, h := range headings {
		end := len(doc.lines)
		for _, next := range headings[i+1:] {
			// the lead section stops at the first heading of any level
			if h.level == 0 || next.level <= h.level {
				end = next.line
				break
			}
		}
		s := Section{Title: h.title, Level: h.level, start: h.line + 1, end: end}
		for _, t := range tables {
			if t.start >= s.start && t.start < s.end {
				s.Tables = append(s.Tables, t)
			}
		}
		doc.Sections = append(doc.Sections, s)
	}
	return doc
}

// Lines returns the raw source lines.
func (d *Document) Lines() []string {
	return d.lines
}

func parseHeading(line string) (int, string, bool) {
	m := headingRegex.FindStringSubmatch(strings.TrimRight(line, " \t"))
	if m == nil {
		return 0, "", false
	}
	level := len(m[1])
	if len(m[3]) < level {
		level = len(m[3])
	}
	// unbalanced equals signs stay part of the title
	title := strings.Repeat("=", len(m[1])-level) + m[2] + strings.Repeat("=", len(m[3])-level)
	return level, strings.TrimSpace(title), true
}

// findTables returns the top level tables of lines. Nested tables stay part of
// the cell that holds them.
func findTables(lines []string) []Table {
	var tables []Table
	depth := 0
	start := 0
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "{|"):
			if depth == 0 {
				start = i
			}
			depth++
		case strings.HasPrefix(trimmed, "|}"):
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 {
				tables = append(tables, Table{lines: lines[start : i+1], start: start})
			}
		}
	}
	return tables
}
