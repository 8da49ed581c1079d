// Package rewrite writes collected translations back into a workbook.
package rewrite

import (
	"fmt"
	"sort"
	"strings"

	"github.com/minios-linux/sheetpo/catalog"
	"github.com/minios-linux/sheetpo/workbook"
)

// Sheet is the read-write view of a workbook the rewriter needs.
type Sheet interface {
	SheetNames() []string
	Grid(sheet string) (workbook.Grid, error)
	SetCell(sheet string, addr workbook.Address, value string) error
}

// Change records one rewritten translation cell.
type Change struct {
	Sheet string
	Cell  string
	Key   string
	Value string
}

// Apply updates column C of every row whose column-A key has a
// translation in trans. On the msg sheet column C is rebuilt from the
// declaration in column B with the translation as its quoted literal;
// elsewhere the translation is written verbatim.
func Apply(wb Sheet, sheetName string, trans map[string]string, msgSheet string) ([]Change, error) {
	grid, err := wb.Grid(sheetName)
	if err != nil {
		return nil, err
	}

	var keys []workbook.Address
	for k := range grid {
		addr, err := workbook.ParseAddress(k)
		if err != nil || addr.Column != "A" || addr.Row == 1 {
			continue
		}
		keys = append(keys, addr)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Row < keys[j].Row })

	var changes []Change
	for _, a := range keys {
		key := grid[a.String()]
		value := trans[key]
		if value == "" {
			continue
		}

		cell := workbook.Address{Column: "C", Row: a.Row}
		if sheetName == msgSheet {
			decl := grid[workbook.Address{Column: "B", Row: a.Row}.String()]
			if decl == "" {
				continue
			}
			value = Declaration(decl, value)
		}
		if err := wb.SetCell(sheetName, cell, value); err != nil {
			return changes, err
		}
		changes = append(changes, Change{Sheet: sheetName, Cell: cell.String(), Key: key, Value: value})
	}
	return changes, nil
}

// Declaration replaces the right-hand side of a `name = "..."` declaration
// with value quoted. Everything before the first '=' is kept; without an
// '=' the left-hand side is empty.
func Declaration(decl, value string) string {
	lhs := ""
	if idx := strings.Index(decl, "="); idx >= 0 {
		lhs = decl[:idx]
	}
	return lhs + `= "` + strings.ReplaceAll(value, `"`, `\"`) + `"`
}

// Options controls the reverse pipeline.
type Options struct {
	// TranslationsDir holds the translated .po files.
	TranslationsDir string
	// ExportPath is the workbook file to write.
	ExportPath string
	// MsgSheet names the sheet holding declaration strings.
	MsgSheet string
}

// Saver persists the mutated workbook.
type Saver interface {
	Sheet
	SaveAs(path string) error
}

// Export merges the translations of every sheet back into wb and saves it
// to opts.ExportPath.
func Export(wb Saver, opts Options) ([]Change, error) {
	var all []Change
	for _, name := range wb.SheetNames() {
		trans, err := catalog.Collect(opts.TranslationsDir, name)
		if err != nil {
			return all, fmt.Errorf("sheet %q: %w", name, err)
		}
		changes, err := Apply(wb, name, trans, opts.MsgSheet)
		all = append(all, changes...)
		if err != nil {
			return all, fmt.Errorf("sheet %q: %w", name, err)
		}
	}
	if err := wb.SaveAs(opts.ExportPath); err != nil {
		return all, err
	}
	return all, nil
}
