package layout

import (
	"context"
	"strings"
	"testing"
)

func TestMarkdownSource(t *testing.T) {
	src := `# Handbook

Welcome text
that wraps.

---

## 1 Scope

- item *one*
- item two

` + "```\ncode line\n```\n"

	doc, err := (&MarkdownSource{}).Read(context.Background(), strings.NewReader(src), int64(len(src)))
	if err != nil {
		t.Fatalf("read markdown: %v", err)
	}
	if len(doc.Pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(doc.Pages))
	}

	pages := doc.Lines()
	first := pages[0]
	if len(first) != 3 {
		t.Fatalf("expected 3 lines on page 0, got %+v", first)
	}
	if first[0].Text != "Handbook" || first[0].Size != 24 {
		t.Errorf("expected 'Handbook' at 24, got %q at %v", first[0].Text, first[0].Size)
	}
	if first[1].Text != "Welcome text" || first[2].Text != "that wraps." {
		t.Errorf("expected soft breaks to split lines, got %q / %q", first[1].Text, first[2].Text)
	}

	second := pages[1]
	want := []string{"1 Scope", "item one", "item two", "code line"}
	if len(second) != len(want) {
		t.Fatalf("expected %d lines on page 1, got %+v", len(want), second)
	}
	for i, w := range want {
		if second[i].Text != w {
			t.Errorf("line %d: expected %q, got %q", i, w, second[i].Text)
		}
	}
	if second[0].Size != 18 {
		t.Errorf("expected h2 size 18, got %v", second[0].Size)
	}
}

func TestMarkdownSource_Empty(t *testing.T) {
	doc, err := (&MarkdownSource{}).Read(context.Background(), strings.NewReader(""), 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Pages) != 1 {
		t.Errorf("expected one empty page, got %d", len(doc.Pages))
	}
}
