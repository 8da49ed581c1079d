// Package verify cross-checks generated catalogs against an independent
// gettext runtime (gotext), so a file that our own reader accepts but a
// real consumer would misread is caught before it ships.
package verify

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"

	po "github.com/minios-linux/sheetpo/pofile"
)

// Mismatch is a translated entry that gotext resolves differently.
type Mismatch struct {
	File    string
	Context string
	MsgID   string
	Want    string
	Got     string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: [%s] %q resolves to %q, want %q", filepath.Base(m.File), m.Context, m.MsgID, m.Got, m.Want)
}

// File checks one .po file and returns the entries gotext disagrees on.
func File(path string) ([]Mismatch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ours, err := po.ParseFile(path)
	if err != nil {
		return nil, err
	}

	theirs := gotext.NewPo()
	theirs.Parse(data)

	var out []Mismatch
	for _, e := range ours.Entries {
		if e.Obsolete || e.IsHeader() || e.MsgStr == "" {
			continue
		}
		got := theirs.GetC(e.MsgID, e.MsgCtxt)
		if got != e.MsgStr {
			out = append(out, Mismatch{File: path, Context: e.MsgCtxt, MsgID: e.MsgID, Want: e.MsgStr, Got: got})
		}
	}
	return out, nil
}

// Dir checks every .po file in dir, in name order. It returns the number
// of files checked.
func Dir(dir string) (int, []Mismatch, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, nil, err
	}

	var files []string
	for _, e := range entries {
		if e.Type().IsRegular() && strings.HasSuffix(e.Name(), ".po") {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)

	var all []Mismatch
	for _, f := range files {
		m, err := File(f)
		if err != nil {
			return 0, all, err
		}
		all = append(all, m...)
	}
	return len(files), all, nil
}
