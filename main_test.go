package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/minios-linux/sheetpo/config"
)

func writeWorkbook(t *testing.T, dir string) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "loginForm"); err != nil {
		t.Fatalf("SetSheetName: %v", err)
	}
	if _, err := f.NewSheet("Msg"); err != nil {
		t.Fatalf("NewSheet: %v", err)
	}

	for sheet, rows := range map[string][][]string{
		"loginForm": {
			{"key", "cn", "en", "desc"},
			{"login.title", "登录", "Sign in", "Window title"},
			{"login.forgot", "忘记密码", "", ""},
		},
		"Msg": {
			{"key", "cn", "en"},
			{"msg.hello", `hello = "你好"`, `hello = "Hello"`},
		},
	} {
		for r, row := range rows {
			for c, v := range row {
				if v == "" {
					continue
				}
				cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
				f.SetCellValue(sheet, cell, v)
			}
		}
	}

	if err := f.SaveAs(filepath.Join(dir, config.DefaultWorkbook)); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
}

func TestGenerateCheckExport(t *testing.T) {
	dir := t.TempDir()
	writeWorkbook(t, dir)

	if err := runGenerate(dir, false); err != nil {
		t.Fatalf("runGenerate error: %v", err)
	}
	for _, p := range []string{
		filepath.Join(dir, "output", "pot", "LoginForm_01.pot"),
		filepath.Join(dir, "output", "en-US", "LoginForm_01.po"),
		filepath.Join(dir, "output", "pot", "Msg_01.pot"),
		filepath.Join(dir, "output", "en-US", "Msg_01.po"),
	} {
		if _, err := os.Stat(p); err != nil {
			t.Fatalf("expected %s: %v", p, err)
		}
	}

	if err := runCheck(dir); err != nil {
		t.Fatalf("runCheck error: %v", err)
	}

	transDir := filepath.Join(dir, config.DefaultTranslationsDir)
	if err := os.MkdirAll(transDir, 0755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	translated := "msgctxt \"login.forgot\"\nmsgid \"忘记密码\"\nmsgstr \"Forgot password?\"\n"
	if err := os.WriteFile(filepath.Join(transDir, "LoginForm_01.po"), []byte(translated), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	msg := "msgctxt \"msg.hello\"\nmsgid \"你好\"\nmsgstr \"Hi \\\"there\\\"\"\n"
	if err := os.WriteFile(filepath.Join(transDir, "Msg_01.po"), []byte(msg), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := runExport(dir, true); err != nil {
		t.Fatalf("runExport error: %v", err)
	}

	out, err := excelize.OpenFile(filepath.Join(dir, "output", config.DefaultExportFile))
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer out.Close()

	if got, _ := out.GetCellValue("loginForm", "C3"); got != "Forgot password?" {
		t.Fatalf("loginForm!C3 = %q", got)
	}
	if got, _ := out.GetCellValue("loginForm", "C2"); got != "Sign in" {
		t.Fatalf("loginForm!C2 should be untouched, got %q", got)
	}
	if got, want := mustCell(t, out, "Msg", "C2"), `hello = "Hi \"there\""`; got != want {
		t.Fatalf("Msg!C2 = %q, want %q", got, want)
	}
}

func mustCell(t *testing.T, f *excelize.File, sheet, cell string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, cell)
	if err != nil {
		t.Fatalf("GetCellValue(%s!%s): %v", sheet, cell, err)
	}
	return v
}

func TestGenerateMissingWorkbook(t *testing.T) {
	if err := runGenerate(t.TempDir(), false); err == nil {
		t.Fatal("runGenerate should fail without a workbook")
	}
}

func TestCheckWithoutOutput(t *testing.T) {
	if err := runCheck(t.TempDir()); err == nil {
		t.Fatal("runCheck should fail when nothing was generated")
	}
}
