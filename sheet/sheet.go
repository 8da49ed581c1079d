// Package sheet turns a sheet's cell grid into ordered row records.
//
// Column layout (row 1 is a header and is never read):
//
//	A  key (becomes msgctxt)
//	B  source text (becomes msgid)
//	C  translated text (becomes msgstr in the seed catalog)
//	D  description (becomes a translator comment)
package sheet

import (
	"regexp"
	"sort"
	"strings"

	"github.com/minios-linux/sheetpo/workbook"
)

// DefaultMsgSheet is the sheet whose cells hold declarations such as
// `greeting = "Hello"` instead of plain text.
const DefaultMsgSheet = "Msg"

// Row is one logical spreadsheet row.
type Row struct {
	Index       int
	Key         string
	Source      string
	Translation string
	Description string
}

// Extract groups the cells of grid by row index. Metadata keys (prefixed
// with "!") and the header row are skipped. A malformed address aborts
// extraction with a *workbook.AddressError.
func Extract(grid workbook.Grid) (map[int]*Row, error) {
	rows := make(map[int]*Row)
	for key, value := range grid {
		if strings.HasPrefix(key, "!") {
			continue
		}
		addr, err := workbook.ParseAddress(key)
		if err != nil {
			return nil, err
		}
		if addr.Row == 1 {
			continue
		}

		r := rows[addr.Row]
		if r == nil {
			r = &Row{Index: addr.Row}
			rows[addr.Row] = r
		}
		switch addr.Column {
		case "A":
			r.Key = value
		case "B":
			r.Source = value
		case "C":
			r.Translation = value
		case "D":
			r.Description = value
		}
	}
	return rows, nil
}

// Rows is Extract followed by an ascending sort on row index.
func Rows(grid workbook.Grid) ([]*Row, error) {
	byIndex, err := Extract(grid)
	if err != nil {
		return nil, err
	}
	rows := make([]*Row, 0, len(byIndex))
	for _, r := range byIndex {
		rows = append(rows, r)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Index < rows[j].Index })
	return rows, nil
}

var quotedRe = regexp.MustCompile(`(?i)^[^"]+?"(.+?)"`)

// Unquote returns the first double-quoted literal that follows a non-quote
// prefix, e.g. `title = "Settings"` yields "Settings".
func Unquote(s string) (string, bool) {
	m := quotedRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return s, false
	}
	return m[1], true
}

// Normalize replaces declaration strings with their quoted literal. It only
// touches rows of the sheet named msgSheet; other sheets hold plain text.
func Normalize(sheetName string, rows []*Row, msgSheet string) {
	if sheetName != msgSheet {
		return
	}
	for _, r := range rows {
		if v, ok := Unquote(r.Source); ok {
			r.Source = v
		}
		if r.Translation != "" {
			if v, ok := Unquote(r.Translation); ok {
				r.Translation = v
			}
		}
	}
}
