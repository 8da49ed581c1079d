package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	po "github.com/minios-linux/sheetpo/pofile"
)

// Collect reads every catalog in dir whose name starts with "<sheet>_"
// (case-insensitive) and returns the translations keyed by context. Per
// context the first entry of a file counts, and only when its msgstr is
// non-empty. Files are visited in name order, so a later file overrides an
// earlier one for the same context.
func Collect(dir, sheetName string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading translations directory: %w", err)
	}

	prefix := strings.ToLower(sheetName) + "_"
	trans := make(map[string]string)
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !strings.HasPrefix(strings.ToLower(entry.Name()), prefix) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		f, err := po.ParseFile(path)
		if err != nil {
			return nil, err
		}

		seen := make(map[string]bool)
		for _, m := range FromFile(f).Messages() {
			if m.Context == "" || seen[m.Context] {
				continue
			}
			seen[m.Context] = true
			if m.Value != "" {
				trans[m.Context] = m.Value
			}
		}
	}
	return trans, nil
}
