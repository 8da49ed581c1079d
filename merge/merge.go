// Package merge implements PO file merging logic, a context-aware cousin
// of the msgmerge utility.
package merge

import (
	po "github.com/minios-linux/sheetpo/pofile"
)

type key struct {
	ctxt  string
	msgid string
}

// translatorFields are header fields edited by translators, not by sheetpo.
var translatorFields = []string{"Language", "Language-Team", "Last-Translator", "PO-Revision-Date"}

// Merge rebuilds a translation file from a freshly generated template and
// seed, keeping the work already done in existing.
//   - Entries follow the template order.
//   - A non-empty translation in existing wins over the seed.
//   - Entries with no translation in either file are left out.
//   - Live entries of existing that are no longer in the template are
//     kept as obsolete.
//   - Comments always come from the template.
//   - The header comes from the seed; translator-maintained fields of the
//     existing header are carried over.
func Merge(existing, template, seed *po.File) *po.File {
	result := po.NewFile()
	result.Header = &po.Entry{MsgStr: seed.Header.MsgStr}
	for _, field := range translatorFields {
		if v := existing.HeaderField(field); v != "" {
			result.SetHeaderField(field, v)
		}
	}

	seedByKey := make(map[key]*po.Entry)
	for _, e := range seed.Entries {
		seedByKey[key{e.MsgCtxt, e.MsgID}] = e
	}

	matched := make(map[key]bool)
	for _, t := range template.Entries {
		k := key{t.MsgCtxt, t.MsgID}
		matched[k] = true

		msgstr := ""
		if e := existing.Lookup(t.MsgCtxt, t.MsgID); e != nil && e.FirstTranslation() != "" {
			msgstr = e.FirstTranslation()
		} else if s, ok := seedByKey[k]; ok {
			msgstr = s.MsgStr
		}
		if msgstr == "" {
			continue
		}

		result.Entries = append(result.Entries, &po.Entry{
			TranslatorComments: t.TranslatorComments,
			MsgCtxt:            t.MsgCtxt,
			MsgID:              t.MsgID,
			MsgStr:             msgstr,
		})
	}

	for _, e := range existing.Entries {
		if e.Obsolete || e.IsHeader() {
			continue
		}
		if !matched[key{e.MsgCtxt, e.MsgID}] {
			obsolete := *e
			obsolete.Obsolete = true
			obsolete.References = nil
			result.Entries = append(result.Entries, &obsolete)
		}
	}

	return result
}
