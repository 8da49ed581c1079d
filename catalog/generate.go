package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/minios-linux/sheetpo/merge"
	"github.com/minios-linux/sheetpo/paginate"
	po "github.com/minios-linux/sheetpo/pofile"
	"github.com/minios-linux/sheetpo/sheet"
	"github.com/minios-linux/sheetpo/workbook"
)

// Source is the read-only view of a workbook the generator needs.
type Source interface {
	SheetNames() []string
	Grid(sheet string) (workbook.Grid, error)
}

// Options controls where and how catalogs are generated.
type Options struct {
	// OutputDir is the root of the generated tree.
	OutputDir string
	// POTDir is the template subdirectory of OutputDir ("pot").
	POTDir string
	// Locale is the seed translation subdirectory of OutputDir ("en-US").
	Locale string
	// PageSize is the target number of rows per file.
	PageSize int
	// MsgSheet names the sheet holding declaration strings.
	MsgSheet string
	// KeepTranslations merges into existing .po files instead of
	// overwriting them; non-empty translations already on disk win.
	KeepTranslations bool
}

// PageResult describes the two files written for one page.
type PageResult struct {
	Sheet      string
	Label      string
	POTPath    string
	POPath     string
	Messages   int
	Translated int
}

// Report lists every page written by Generate.
type Report struct {
	Pages []PageResult
}

// Generate converts every sheet of src into paginated catalog files. Sheets
// are processed in workbook order and pages in ascending order. The first
// error aborts the run; files already written are left in place.
func Generate(src Source, opts Options) (*Report, error) {
	report := &Report{}
	for _, name := range src.SheetNames() {
		grid, err := src.Grid(name)
		if err != nil {
			return report, err
		}
		rows, err := sheet.Rows(grid)
		if err != nil {
			return report, fmt.Errorf("sheet %q: %w", name, err)
		}
		sheet.Normalize(name, rows, opts.MsgSheet)

		pages := paginate.Split(len(rows), opts.PageSize)
		for _, p := range pages {
			res, err := writePage(name, paginate.Label(p.Number, len(pages)), rows[p.Start:p.End], opts)
			if err != nil {
				return report, err
			}
			report.Pages = append(report.Pages, res)
		}
	}
	return report, nil
}

func writePage(sheetName, label string, rows []*sheet.Row, opts Options) (PageResult, error) {
	potName, poName := FileNames(sheetName, label)
	res := PageResult{
		Sheet:   sheetName,
		Label:   label,
		POTPath: filepath.Join(opts.OutputDir, opts.POTDir, potName),
		POPath:  filepath.Join(opts.OutputDir, opts.Locale, poName),
	}

	source, target := BuildPage(rows)
	res.Messages = source.Len()
	res.Translated = target.Len()

	potFile := source.File()
	if err := potFile.WriteFile(res.POTPath); err != nil {
		return res, fmt.Errorf("writing %s: %w", res.POTPath, err)
	}

	poFile := target.File()
	if opts.KeepTranslations {
		existing, err := po.ParseFile(res.POPath)
		switch {
		case err == nil:
			poFile = merge.Merge(existing, potFile, poFile)
			res.Translated = countTranslated(poFile)
		case !os.IsNotExist(err):
			return res, fmt.Errorf("reading existing %s: %w", res.POPath, err)
		}
	}
	if err := poFile.WriteFile(res.POPath); err != nil {
		return res, fmt.Errorf("writing %s: %w", res.POPath, err)
	}
	return res, nil
}

func countTranslated(f *po.File) int {
	n := 0
	for _, e := range f.Entries {
		if !e.Obsolete && e.FirstTranslation() != "" {
			n++
		}
	}
	return n
}
