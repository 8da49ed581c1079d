// Package pofile implements reading and writing of PO/POT files
// following the GNU gettext format specification.
package pofile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Entry represents a single translatable message in a PO file.
type Entry struct {
	// TranslatorComments are lines starting with "# " (translator comments).
	TranslatorComments []string
	// ExtractedComments are lines starting with "#." (extracted/automatic comments).
	ExtractedComments []string
	// References are source locations, lines starting with "#:".
	References []string
	// Flags are format flags, lines starting with "#,".
	Flags []string

	// MsgCtxt is the message context (msgctxt).
	MsgCtxt string
	// MsgID is the untranslated string.
	MsgID string
	// MsgIDPlural is the untranslated plural string.
	MsgIDPlural string
	// MsgStr is the translated string (singular or the only form).
	MsgStr string
	// MsgStrPlural maps plural form index to translated string.
	MsgStrPlural map[int]string

	// Obsolete marks entries prefixed with "#~".
	Obsolete bool
}

// IsHeader reports whether e is the metadata entry (empty msgctxt and msgid).
func (e *Entry) IsHeader() bool {
	return e.MsgCtxt == "" && e.MsgID == ""
}

// FirstTranslation returns the first msgstr form: msgstr[0] for plural
// entries, msgstr otherwise.
func (e *Entry) FirstTranslation() string {
	if e.MsgIDPlural != "" {
		return e.MsgStrPlural[0]
	}
	return e.MsgStr
}

// File represents a parsed PO/POT file.
type File struct {
	// Header is the metadata entry (msgid "").
	Header *Entry
	// Entries are the translatable message entries in file order.
	Entries []*Entry
}

// NewFile creates a new empty PO file.
func NewFile() *File {
	return &File{
		Header:  &Entry{},
		Entries: make([]*Entry, 0),
	}
}

// HeaderField returns a header field value by name (case-insensitive).
func (f *File) HeaderField(name string) string {
	if f.Header == nil {
		return ""
	}
	for _, line := range strings.Split(f.Header.MsgStr, "\n") {
		if idx := strings.Index(line, ":"); idx > 0 {
			key := strings.TrimSpace(line[:idx])
			if strings.EqualFold(key, name) {
				return strings.TrimSpace(line[idx+1:])
			}
		}
	}
	return ""
}

// SetHeaderField sets a header field value, appending it if absent.
func (f *File) SetHeaderField(name, value string) {
	if f.Header == nil {
		f.Header = &Entry{}
	}

	lines := strings.Split(f.Header.MsgStr, "\n")
	for i, line := range lines {
		if idx := strings.Index(line, ":"); idx > 0 {
			if strings.EqualFold(strings.TrimSpace(line[:idx]), name) {
				lines[i] = name + ": " + value
				f.Header.MsgStr = strings.Join(lines, "\n")
				return
			}
		}
	}

	// Insert before the trailing empty line
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = append(lines[:len(lines)-1], name+": "+value, "")
	} else {
		lines = append(lines, name+": "+value, "")
	}
	f.Header.MsgStr = strings.Join(lines, "\n")
}

// Lookup finds a live entry by context and msgid.
func (f *File) Lookup(ctxt, msgid string) *Entry {
	for _, e := range f.Entries {
		if e.MsgCtxt == ctxt && e.MsgID == msgid && !e.Obsolete {
			return e
		}
	}
	return nil
}

// Parse reads a PO/POT file from a reader.
func Parse(r io.Reader) (*File, error) {
	f := NewFile()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)

	var current *Entry
	var lastField string // last msgid/msgstr/etc. field, for continuation lines
	lineNum := 0

	flush := func() {
		if current == nil {
			return
		}
		if current.IsHeader() && !current.Obsolete {
			f.Header = current
		} else {
			f.Entries = append(f.Entries, current)
		}
		current = nil
		lastField = ""
	}

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if lineNum == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}

		// Empty line separates entries
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}

		if current == nil {
			current = &Entry{MsgStrPlural: make(map[int]string)}
		}

		if strings.HasPrefix(line, "#~") {
			current.Obsolete = true
			line = strings.TrimPrefix(strings.TrimPrefix(line, "#~"), " ")
		}

		if strings.HasPrefix(line, "#") {
			switch {
			case strings.HasPrefix(line, "#:"):
				current.References = append(current.References, strings.TrimSpace(line[2:]))
			case strings.HasPrefix(line, "#,"):
				for _, flag := range strings.Split(line[2:], ",") {
					if flag = strings.TrimSpace(flag); flag != "" {
						current.Flags = append(current.Flags, flag)
					}
				}
			case strings.HasPrefix(line, "#."):
				current.ExtractedComments = append(current.ExtractedComments, strings.TrimSpace(line[2:]))
			case strings.HasPrefix(line, "#|"):
				// previous msgid, not kept
			default:
				current.TranslatorComments = append(current.TranslatorComments, strings.TrimPrefix(line[1:], " "))
			}
			continue
		}

		switch {
		case strings.HasPrefix(line, "msgctxt "):
			current.MsgCtxt = unquote(strings.TrimPrefix(line, "msgctxt "))
			lastField = "msgctxt"

		case strings.HasPrefix(line, "msgid_plural "):
			current.MsgIDPlural = unquote(strings.TrimPrefix(line, "msgid_plural "))
			lastField = "msgid_plural"

		case strings.HasPrefix(line, "msgid "):
			current.MsgID = unquote(strings.TrimPrefix(line, "msgid "))
			lastField = "msgid"

		case strings.HasPrefix(line, "msgstr["):
			var idx int
			if n, err := fmt.Sscanf(line, "msgstr[%d]", &idx); err != nil || n != 1 {
				return nil, fmt.Errorf("line %d: invalid msgstr index: %s", lineNum, line)
			}
			bracketEnd := strings.Index(line, "] ")
			if bracketEnd < 0 {
				return nil, fmt.Errorf("line %d: invalid msgstr format: %s", lineNum, line)
			}
			current.MsgStrPlural[idx] = unquote(line[bracketEnd+2:])
			lastField = fmt.Sprintf("msgstr[%d]", idx)

		case strings.HasPrefix(line, "msgstr "):
			current.MsgStr = unquote(strings.TrimPrefix(line, "msgstr "))
			lastField = "msgstr"

		case strings.HasPrefix(line, "\""):
			val := unquote(line)
			switch {
			case lastField == "msgctxt":
				current.MsgCtxt += val
			case lastField == "msgid":
				current.MsgID += val
			case lastField == "msgid_plural":
				current.MsgIDPlural += val
			case lastField == "msgstr":
				current.MsgStr += val
			case strings.HasPrefix(lastField, "msgstr["):
				var idx int
				fmt.Sscanf(lastField, "msgstr[%d]", &idx)
				current.MsgStrPlural[idx] += val
			default:
				return nil, fmt.Errorf("line %d: string without keyword", lineNum)
			}

		default:
			return nil, fmt.Errorf("line %d: unexpected %q", lineNum, line)
		}
	}

	flush()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading PO file: %w", err)
	}

	return f, nil
}

// ParseFile reads a PO/POT file from disk.
func ParseFile(path string) (*File, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	f, err := Parse(in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Write writes the PO file to a writer.
func (f *File) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if f.Header != nil {
		writeEntry(bw, f.Header)
	}

	for _, e := range f.Entries {
		fmt.Fprintln(bw)
		writeEntry(bw, e)
	}

	return bw.Flush()
}

// WriteFile writes the PO file to disk, creating parent directories.
func (f *File) WriteFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := f.Write(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func writeEntry(w *bufio.Writer, e *Entry) {
	prefix := ""
	if e.Obsolete {
		prefix = "#~ "
	}

	for _, c := range e.TranslatorComments {
		if c == "" {
			fmt.Fprintln(w, "#")
			continue
		}
		fmt.Fprintf(w, "# %s\n", c)
	}
	for _, c := range e.ExtractedComments {
		fmt.Fprintf(w, "#. %s\n", c)
	}
	for _, ref := range e.References {
		fmt.Fprintf(w, "#: %s\n", ref)
	}
	if len(e.Flags) > 0 {
		fmt.Fprintf(w, "#, %s\n", strings.Join(e.Flags, ", "))
	}

	if e.MsgCtxt != "" {
		writeQuotedField(w, prefix, "msgctxt", e.MsgCtxt)
	}
	writeQuotedField(w, prefix, "msgid", e.MsgID)
	if e.MsgIDPlural != "" {
		writeQuotedField(w, prefix, "msgid_plural", e.MsgIDPlural)
	}

	if e.MsgIDPlural != "" && len(e.MsgStrPlural) > 0 {
		indices := make([]int, 0, len(e.MsgStrPlural))
		for idx := range e.MsgStrPlural {
			indices = append(indices, idx)
		}
		sort.Ints(indices)
		for _, idx := range indices {
			writeQuotedField(w, prefix, fmt.Sprintf("msgstr[%d]", idx), e.MsgStrPlural[idx])
		}
	} else {
		writeQuotedField(w, prefix, "msgstr", e.MsgStr)
	}
}

// writeQuotedField writes a PO field with proper multiline quoting.
// Continuation lines of obsolete entries carry the "#~ " prefix too.
func writeQuotedField(w *bufio.Writer, prefix, field, value string) {
	if !strings.Contains(value, "\n") {
		fmt.Fprintf(w, "%s%s %s\n", prefix, field, quote(value))
		return
	}

	fmt.Fprintf(w, "%s%s \"\"\n", prefix, field)
	parts := strings.Split(value, "\n")
	for i, part := range parts {
		if i < len(parts)-1 {
			fmt.Fprintf(w, "%s%s\n", prefix, quote(part+"\n"))
		} else if part != "" {
			fmt.Fprintf(w, "%s%s\n", prefix, quote(part))
		}
	}
}

// quote produces a PO-style quoted string.
func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\r", `\r`)
	s = strings.ReplaceAll(s, "\t", `\t`)
	return `"` + s + `"`
}

// unquote removes PO-style quoting from a string.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return s
	}
	s = s[1 : len(s)-1]

	var result strings.Builder
	result.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
			switch s[i] {
			case 'n':
				result.WriteByte('\n')
			case 'r':
				result.WriteByte('\r')
			case 't':
				result.WriteByte('\t')
			case '\\', '"':
				result.WriteByte(s[i])
			default:
				result.WriteByte('\\')
				result.WriteByte(s[i])
			}
		} else {
			result.WriteByte(s[i])
		}
	}
	return result.String()
}
