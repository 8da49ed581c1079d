package verify

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/minios-linux/sheetpo/catalog"
	"github.com/minios-linux/sheetpo/sheet"
)

func TestDirAcceptsGeneratedCatalogs(t *testing.T) {
	dir := t.TempDir()
	_, target := catalog.BuildPage([]*sheet.Row{
		{Key: "login.title", Source: "登录", Translation: "Sign in", Description: "title"},
		{Key: "login.ok", Source: "确定", Translation: `Say "OK"`},
		{Key: "login.hint", Source: "提示", Translation: "line one\nline two"},
		{Key: "other.ok", Source: "确定", Translation: "Okay"},
	})
	if err := target.File().WriteFile(filepath.Join(dir, "Login_01.po")); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip me"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	n, mismatches, err := Dir(dir)
	if err != nil {
		t.Fatalf("Dir error: %v", err)
	}
	if n != 1 {
		t.Fatalf("checked %d files, want 1", n)
	}
	if len(mismatches) != 0 {
		t.Fatalf("unexpected mismatches: %v", mismatches)
	}
}

func TestDirMissing(t *testing.T) {
	if _, _, err := Dir(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("Dir should fail for a missing directory")
	}
}
