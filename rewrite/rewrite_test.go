package rewrite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/minios-linux/sheetpo/sheet"
	"github.com/minios-linux/sheetpo/workbook"
)

func newWorkbook(t *testing.T) *workbook.Workbook {
	t.Helper()
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", "Msg"); err != nil {
		t.Fatalf("SetSheetName: %v", err)
	}
	if _, err := f.NewSheet("Labels"); err != nil {
		t.Fatalf("NewSheet: %v", err)
	}

	f.SetCellValue("Msg", "A1", "key")
	f.SetCellValue("Msg", "A2", "K")
	f.SetCellValue("Msg", "B2", `greeting = "Hello"`)
	f.SetCellValue("Msg", "A3", "K2")
	f.SetCellValue("Msg", "B3", `farewell = "Bye"`)

	f.SetCellValue("Labels", "A1", "K")
	f.SetCellValue("Labels", "B1", "header must stay")
	f.SetCellValue("Labels", "A2", "K")
	f.SetCellValue("Labels", "B2", "你好")
	f.SetCellValue("Labels", "C2", "old")

	wb := workbook.New(f)
	t.Cleanup(func() { wb.Close() })
	return wb
}

func cell(t *testing.T, wb *workbook.Workbook, sheetName, addr string) string {
	t.Helper()
	a, err := workbook.ParseAddress(addr)
	if err != nil {
		t.Fatalf("ParseAddress: %v", err)
	}
	v, err := wb.Cell(sheetName, a)
	if err != nil {
		t.Fatalf("Cell: %v", err)
	}
	return v
}

func TestApplyMsgSheetEscapesQuotes(t *testing.T) {
	wb := newWorkbook(t)
	changes, err := Apply(wb, "Msg", map[string]string{"K": `Bonjour "tous"`}, sheet.DefaultMsgSheet)
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	if len(changes) != 1 || changes[0].Cell != "C2" {
		t.Fatalf("changes = %+v", changes)
	}
	if got, want := cell(t, wb, "Msg", "C2"), `greeting = "Bonjour \"tous\""`; got != want {
		t.Fatalf("C2 = %q, want %q", got, want)
	}
	if got := cell(t, wb, "Msg", "C3"); got != "" {
		t.Fatalf("C3 without translation should stay empty, got %q", got)
	}
}

func TestApplyOtherSheetWritesVerbatim(t *testing.T) {
	wb := newWorkbook(t)
	if _, err := Apply(wb, "Labels", map[string]string{"K": `Hola "x"`}, sheet.DefaultMsgSheet); err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	if got := cell(t, wb, "Labels", "C2"); got != `Hola "x"` {
		t.Fatalf("C2 = %q, want verbatim value", got)
	}
	if got := cell(t, wb, "Labels", "C1"); got != "" {
		t.Fatalf("header row must not be rewritten, C1 = %q", got)
	}
}

func TestDeclaration(t *testing.T) {
	tests := []struct {
		decl, value, want string
	}{
		{decl: `greeting = "Hello"`, value: `Bonjour "tous"`, want: `greeting = "Bonjour \"tous\""`},
		{decl: `a=b="c"`, value: "x", want: `a= "x"`},
		{decl: "no separator", value: "x", want: `= "x"`},
	}
	for _, tc := range tests {
		if got := Declaration(tc.decl, tc.value); got != tc.want {
			t.Fatalf("Declaration(%q, %q) = %q, want %q", tc.decl, tc.value, got, tc.want)
		}
	}
}

func TestExport(t *testing.T) {
	wb := newWorkbook(t)
	dir := t.TempDir()
	transDir := filepath.Join(dir, "en-US")
	if err := os.MkdirAll(transDir, 0755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	po := "msgctxt \"K\"\nmsgid \"你好\"\nmsgstr \"Hola\"\n"
	if err := os.WriteFile(filepath.Join(transDir, "Labels_01.po"), []byte(po), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	out := filepath.Join(dir, "output", "export.xlsx")
	changes, err := Export(wb, Options{TranslationsDir: transDir, ExportPath: out, MsgSheet: sheet.DefaultMsgSheet})
	if err != nil {
		t.Fatalf("Export error: %v", err)
	}
	if len(changes) != 1 || changes[0].Sheet != "Labels" || changes[0].Value != "Hola" {
		t.Fatalf("changes = %+v", changes)
	}

	saved, err := workbook.Open(out)
	if err != nil {
		t.Fatalf("Open exported workbook: %v", err)
	}
	defer saved.Close()
	if got := cell(t, saved, "Labels", "C2"); got != "Hola" {
		t.Fatalf("exported C2 = %q, want Hola", got)
	}
}
