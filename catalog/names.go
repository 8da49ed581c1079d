package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var upper = cases.Upper(language.Und)

// Pascalize converts a sheet name to PascalCase: runs of '-', '_' and
// whitespace are dropped and the following character is upper-cased, as is
// the first character. Everything else is kept, so "loginForm" becomes
// "LoginForm" and "error_codes" becomes "ErrorCodes".
func Pascalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	capNext := true
	for _, r := range s {
		if r == '-' || r == '_' || unicode.IsSpace(r) {
			capNext = true
			continue
		}
		if capNext {
			b.WriteString(upper.String(string(r)))
			capNext = false
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FileNames returns the template and translation file names for one page
// of a sheet, e.g. "LoginForm_03.pot" and "LoginForm_03.po".
func FileNames(sheetName, label string) (pot, po string) {
	base := Pascalize(sheetName) + "_" + label
	return base + ".pot", base + ".po"
}

func splitComment(s string) []string {
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}

func joinComment(lines []string) string {
	return strings.Join(lines, "\n")
}
