// Package workbook wraps an .xlsx workbook and exposes each sheet as a
// sparse cell grid addressed by A1-style cell references.
package workbook

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrMalformedAddress is matched by every *AddressError.
var ErrMalformedAddress = errors.New("malformed cell address")

// AddressError reports a cell reference that does not follow the
// <letters><digits> grammar.
type AddressError struct {
	Addr   string
	Reason string
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("unable to parse cell address %q: %s", e.Addr, e.Reason)
}

func (e *AddressError) Is(target error) bool {
	return target == ErrMalformedAddress
}

// Address is a parsed cell reference such as "B17".
type Address struct {
	// Column is the upper-cased column letter sequence ("A", "AB").
	Column string
	// Row is the 1-based row index.
	Row int
}

// String renders the address back to A1 notation.
func (a Address) String() string {
	return a.Column + strconv.Itoa(a.Row)
}

// ParseAddress parses one or more letters followed by one or more digits.
func ParseAddress(s string) (Address, error) {
	i := 0
	for i < len(s) && isLetter(s[i]) {
		i++
	}
	if i == 0 {
		return Address{}, &AddressError{Addr: s, Reason: "missing column letters"}
	}
	digits := s[i:]
	if digits == "" {
		return Address{}, &AddressError{Addr: s, Reason: "missing row number"}
	}
	for j := 0; j < len(digits); j++ {
		if digits[j] < '0' || digits[j] > '9' {
			return Address{}, &AddressError{Addr: s, Reason: "row is not a number"}
		}
	}
	row, err := strconv.Atoi(digits)
	if err != nil || row < 1 {
		return Address{}, &AddressError{Addr: s, Reason: "row out of range"}
	}
	return Address{Column: strings.ToUpper(s[:i]), Row: row}, nil
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// Grid maps a cell address ("A2") to its raw stored value. Empty cells are
// absent. Keys starting with "!" are reserved for sheet metadata.
type Grid map[string]string

// Workbook is an opened spreadsheet. It is passed explicitly to each
// pipeline; the forward pipeline only reads it, the reverse pipeline
// mutates cells and then saves it.
type Workbook struct {
	file *excelize.File
	path string
}

// Open reads an .xlsx workbook from disk.
func Open(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	return &Workbook{file: f, path: path}, nil
}

// New wraps an in-memory excelize file.
func New(f *excelize.File) *Workbook {
	return &Workbook{file: f}
}

// Path returns the file the workbook was opened from, if any.
func (w *Workbook) Path() string {
	return w.path
}

// Close releases the underlying file.
func (w *Workbook) Close() error {
	return w.file.Close()
}

// SheetNames returns sheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	return w.file.GetSheetList()
}

// rawValues reads the stored cell value, ignoring number formats.
var rawValues = excelize.Options{RawCellValue: true}

// Grid returns the non-empty cells of a sheet as raw stored values.
func (w *Workbook) Grid(sheet string) (Grid, error) {
	rows, err := w.file.GetRows(sheet, rawValues)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}

	grid := make(Grid)
	for r, row := range rows {
		for c, value := range row {
			if value == "" {
				continue
			}
			addr, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return nil, fmt.Errorf("sheet %q: %w", sheet, err)
			}
			grid[addr] = value
		}
	}
	if dim, err := w.file.GetSheetDimension(sheet); err == nil && dim != "" {
		grid["!ref"] = dim
	}
	return grid, nil
}

// Cell returns the raw value of a single cell.
func (w *Workbook) Cell(sheet string, addr Address) (string, error) {
	v, err := w.file.GetCellValue(sheet, addr.String(), rawValues)
	if err != nil {
		return "", fmt.Errorf("reading %s!%s: %w", sheet, addr, err)
	}
	return v, nil
}

// SetCell stores value as a string-typed cell, creating it if needed.
func (w *Workbook) SetCell(sheet string, addr Address, value string) error {
	if err := w.file.SetCellStr(sheet, addr.String(), value); err != nil {
		return fmt.Errorf("writing %s!%s: %w", sheet, addr, err)
	}
	return nil
}

// SaveAs writes the whole workbook to path, creating parent directories.
func (w *Workbook) SaveAs(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := w.file.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}
	return nil
}
