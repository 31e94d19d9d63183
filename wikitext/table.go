package wikitext

import (
	"regexp"
	"strings"
)

var (
	colspanRegex = regexp.MustCompile(`colspan\s*=\s*["']?(\d+)["']?`)
	rowspanRegex = regexp.MustCompile(`rowspan\s*=\s*["']?(\d+)["']?`)
)

// Table is a `{| ... |}` block.
type Table struct {
	lines []string
	start int
}

// TableRow is one row of a table after span expansion. Header is set when
// every cell of the source row was a `!` cell.
type TableRow struct {
	Cells  []string
	Header bool
}

type rawCell struct {
	content string
	header  bool
	colspan int
	rowspan int
}

// Rows parses the table into rows. Cell values are trimmed, cells with a
// colspan are repeated and cells with a rowspan are carried into the rows
// below them.
func (t Table) Rows() []TableRow {
	return expandSpans(t.rawRows())
}

// Data returns the cell values of every row, header rows included.
func (t Table) Data() [][]string {
	var data [][]string
	for _, row := range t.Rows() {
		data = append(data, row.Cells)
	}
	return data
}

// DataRows returns the cell values of the rows that are not header rows.
func (t Table) DataRows() [][]string {
	var data [][]string
	for _, row := range t.Rows() {
		if row.Header {
			continue
		}
		data = append(data, row.Cells)
	}
	return data
}

func (t Table) rawRows() [][]rawCell {
	var rows [][]rawCell
	var current []rawCell
	nested := 0

	flush := func() {
		if len(current) > 0 {
			rows = append(rows, current)
		}
		current = nil
	}
	appendToLast := func(line string) {
		if len(current) == 0 {
			return
		}
		current[len(current)-1].content += "\n" + line
	}

	if len(t.lines) < 2 {
		return nil
	}
	for _, line := range t.lines[1 : len(t.lines)-1] {
		trimmed := strings.TrimSpace(line)

		if nested > 0 {
			if strings.HasPrefix(trimmed, "{|") {
				nested++
			} else if strings.HasPrefix(trimmed, "|}") {
				nested--
			}
			appendToLast(line)
			continue
		}

		switch {
		case strings.HasPrefix(trimmed, "{|"):
			nested++
			appendToLast(line)
		case strings.HasPrefix(trimmed, "|+"):
			// caption
		case strings.HasPrefix(trimmed, "|-"):
			flush()
		case strings.HasPrefix(trimmed, "!"):
			for _, part := range smartSplit(trimmed[1:], "!!") {
				for _, c := range smartSplit(part, "||") {
					cell := parseCell(c)
					cell.header = true
					current = append(current, cell)
				}
			}
		case strings.HasPrefix(trimmed, "|"):
			for _, c := range smartSplit(trimmed[1:], "||") {
				current = append(current, parseCell(c))
			}
		default:
			appendToLast(line)
		}
	}
	flush()
	return rows
}

func expandSpans(rows [][]rawCell) []TableRow {
	type carry struct {
		value string
		left  int
	}
	pending := map[int]carry{}
	var out []TableRow

	for _, row := range rows {
		var cells []string
		col := 0
		fill := func() {
			for {
				p, ok := pending[col]
				if !ok {
					return
				}
				cells = append(cells, p.value)
				p.left--
				if p.left == 0 {
					delete(pending, col)
				} else {
					pending[col] = p
				}
				col++
			}
		}

		header := true
		for _, cell := range row {
			if !cell.header {
				header = false
			}
			fill()
			for k := 0; k < cell.colspan; k++ {
				cells = append(cells, cell.content)
				if cell.rowspan > 1 {
					pending[col] = carry{value: cell.content, left: cell.rowspan - 1}
				}
				col++
			}
		}
		fill()
		out = append(out, TableRow{Cells: cells, Header: header})
	}
	return out
}

// parseCell separates cell attributes from content. `style="x" | text` has
// the attributes before the first single pipe outside of links and templates.
func parseCell(text string) rawCell {
	cell := rawCell{colspan: 1, rowspan: 1}
	content := text

	if i := attributePipe(text); i >= 0 {
		attrs := text[:i]
		content = text[i+1:]
		if m := colspanRegex.FindStringSubmatch(attrs); len(m) > 1 {
			if v := parseInt(m[1]); v > 0 {
				cell.colspan = v
			}
		}
		if m := rowspanRegex.FindStringSubmatch(attrs); len(m) > 1 {
			if v := parseInt(m[1]); v > 0 {
				cell.rowspan = v
			}
		}
	}
	cell.content = strings.TrimSpace(content)
	return cell
}

func attributePipe(text string) int {
	templateDepth, linkDepth := 0, 0
	for i := 0; i < len(text); i++ {
		if i+1 < len(text) {
			switch text[i : i+2] {
			case "{{":
				templateDepth++
				i++
				continue
			case "}}":
				templateDepth--
				i++
				continue
			case "[[":
				linkDepth++
				i++
				continue
			case "]]":
				linkDepth--
				i++
				continue
			}
		}
		if text[i] == '[' {
			// external link text may not hold an attribute separator either
			if j := strings.IndexByte(text[i:], ']'); j > 0 && templateDepth == 0 && linkDepth == 0 {
				i += j
				continue
			}
		}
		if text[i] == '|' && templateDepth == 0 && linkDepth == 0 {
			return i
		}
	}
	return -1
}

// smartSplit splits text on delimiter when the delimiter is outside of
// templates and links. Empty parts are kept.
func smartSplit(text, delimiter string) []string {
	var parts []string
	var current strings.Builder
	templateDepth := 0
	linkDepth := 0

	i := 0
	for i < len(text) {
		if i < len(text)-1 {
			switch text[i : i+2] {
			case "{{":
				templateDepth++
				current.WriteString("{{")
				i += 2
				continue
			case "}}":
				templateDepth--
				current.WriteString("}}")
				i += 2
				continue
			case "[[":
				linkDepth++
				current.WriteString("[[")
				i += 2
				continue
			case "]]":
				linkDepth--
				current.WriteString("]]")
				i += 2
				continue
			}
		}

		if strings.HasPrefix(text[i:], delimiter) && templateDepth <= 0 && linkDepth <= 0 {
			parts = append(parts, current.String())
			current.Reset()
			i += len(delimiter)
			continue
		}

		current.WriteByte(text[i])
		i++
	}

	parts = append(parts, current.String())
	return parts
}

func parseInt(s string) int {
	var result int
	for _, char := range s {
		if char >= '0' && char <= '9' {
			result = result*10 + int(char-'0')
		} else {
			return 0
		}
	}
	return result
}
