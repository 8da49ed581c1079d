// Package catalog builds gettext catalogs from sheet rows and collects
// translations back out of them.
package catalog

import (
	po "github.com/minios-linux/sheetpo/pofile"
	"github.com/minios-linux/sheetpo/sheet"
)

// Catalog-level metadata written into every generated file.
const (
	Charset     = "utf-8"
	ContentType = "text/plain; charset=utf-8"
	PluralForms = "nplurals=2; plural=(n!=1);"
)

// Key addresses a message by context and msgid.
type Key struct {
	Context string
	ID      string
}

// Message is one catalog entry.
type Message struct {
	Key
	Comment string
	Value   string
}

// Catalog is an insertion-ordered set of messages. Adding a message with
// an existing key replaces it in place.
type Catalog struct {
	index    map[Key]int
	messages []*Message
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{index: make(map[Key]int)}
}

// Add inserts or replaces m.
func (c *Catalog) Add(m Message) {
	if i, ok := c.index[m.Key]; ok {
		c.messages[i] = &m
		return
	}
	c.index[m.Key] = len(c.messages)
	c.messages = append(c.messages, &m)
}

// Len returns the number of messages.
func (c *Catalog) Len() int {
	return len(c.messages)
}

// Messages returns messages in insertion order.
func (c *Catalog) Messages() []Message {
	out := make([]Message, len(c.messages))
	for i, m := range c.messages {
		out[i] = *m
	}
	return out
}

// BuildPage turns one page of rows into a source catalog (msgstr left
// empty, used as the .pot template) and a target catalog seeded with the
// sheet's translations. Rows without a key or source text are skipped;
// rows without a translation only appear in the source catalog.
func BuildPage(rows []*sheet.Row) (source, target *Catalog) {
	source, target = New(), New()
	for _, r := range rows {
		if r.Key == "" || r.Source == "" {
			continue
		}
		m := Message{
			Key:     Key{Context: r.Key, ID: r.Source},
			Comment: r.Description,
		}
		source.Add(m)
		if r.Translation != "" {
			m.Value = r.Translation
			target.Add(m)
		}
	}
	return source, target
}

// File renders the catalog as a PO file with the standard header.
func (c *Catalog) File() *po.File {
	f := po.NewFile()
	f.SetHeaderField("Content-Type", ContentType)
	f.SetHeaderField("Plural-Forms", PluralForms)

	for _, m := range c.messages {
		e := &po.Entry{
			MsgCtxt: m.Context,
			MsgID:   m.ID,
			MsgStr:  m.Value,
		}
		if m.Comment != "" {
			e.TranslatorComments = splitComment(m.Comment)
		}
		f.Entries = append(f.Entries, e)
	}
	return f
}

// FromFile loads the live entries of a PO file. The header and obsolete
// entries are dropped.
func FromFile(f *po.File) *Catalog {
	c := New()
	for _, e := range f.Entries {
		if e.Obsolete || e.IsHeader() {
			continue
		}
		c.Add(Message{
			Key:     Key{Context: e.MsgCtxt, ID: e.MsgID},
			Comment: joinComment(e.TranslatorComments),
			Value:   e.FirstTranslation(),
		})
	}
	return c
}
