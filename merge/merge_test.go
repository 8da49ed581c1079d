package merge

import (
	"testing"

	po "github.com/minios-linux/sheetpo/pofile"
)

func TestMergeKeepsExistingTranslationsAndObsoletes(t *testing.T) {
	existing := po.NewFile()
	existing.Header.MsgStr = "Language: en-US\n"
	existing.Entries = []*po.Entry{
		{MsgCtxt: "k1", MsgID: "保存", MsgStr: "Save (edited)"},
		{MsgCtxt: "k2", MsgID: "取消", MsgStr: ""},
		{MsgCtxt: "gone", MsgID: "旧", MsgStr: "Old", References: []string{"x"}},
		{MsgCtxt: "dead", MsgID: "死", MsgStr: "Dead", Obsolete: true},
	}

	template := po.NewFile()
	template.Entries = []*po.Entry{
		{MsgCtxt: "k1", MsgID: "保存", TranslatorComments: []string{"button"}},
		{MsgCtxt: "k2", MsgID: "取消"},
		{MsgCtxt: "k3", MsgID: "新"},
		{MsgCtxt: "k4", MsgID: "空"},
	}

	seed := po.NewFile()
	seed.Header.MsgStr = "Content-Type: text/plain; charset=utf-8\n"
	seed.Entries = []*po.Entry{
		{MsgCtxt: "k1", MsgID: "保存", MsgStr: "Save"},
		{MsgCtxt: "k2", MsgID: "取消", MsgStr: "Cancel"},
		{MsgCtxt: "k3", MsgID: "新", MsgStr: "New"},
	}

	merged := Merge(existing, template, seed)

	if got := merged.HeaderField("Content-Type"); got != "text/plain; charset=utf-8" {
		t.Fatalf("header should come from seed, Content-Type = %q", got)
	}
	if got := merged.HeaderField("Language"); got != "en-US" {
		t.Fatalf("translator header field Language = %q, want en-US", got)
	}
	if got := seed.HeaderField("Language"); got != "" {
		t.Fatalf("seed header must not be modified, Language = %q", got)
	}

	want := []struct {
		ctxt, msgstr string
		obsolete     bool
	}{
		{"k1", "Save (edited)", false},
		{"k2", "Cancel", false},
		{"k3", "New", false},
		{"gone", "Old", true},
	}
	if len(merged.Entries) != len(want) {
		t.Fatalf("entries len = %d, want %d", len(merged.Entries), len(want))
	}
	for i, w := range want {
		e := merged.Entries[i]
		if e.MsgCtxt != w.ctxt || e.MsgStr != w.msgstr || e.Obsolete != w.obsolete {
			t.Fatalf("entry %d = %+v, want %+v", i, e, w)
		}
	}
	if c := merged.Entries[0].TranslatorComments; len(c) != 1 || c[0] != "button" {
		t.Fatalf("comments should come from template, got %v", c)
	}
	if merged.Entries[3].References != nil {
		t.Fatalf("obsolete references should be cleared, got %v", merged.Entries[3].References)
	}
}
