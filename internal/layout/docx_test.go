package layout

import (
	"bytes"
	"context"
	"testing"

	"github.com/fumiama/go-docx"
)

func buildDOCX(t *testing.T, build func(f *docx.Docx)) []byte {
	t.Helper()
	f := docx.New().WithDefaultTheme()
	build(f)
	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		t.Fatalf("write docx: %v", err)
	}
	return buf.Bytes()
}

func TestDOCXSource_SizesAndPages(t *testing.T) {
	data := buildDOCX(t, func(f *docx.Docx) {
		f.AddParagraph().AddText("Quarterly Review").Size("48")
		f.AddParagraph().AddText("Plain body text.")
		f.AddParagraph().AddPageBreaks()
		f.AddParagraph().Style("Heading1").AddText("Background")
		f.AddParagraph().AddText("More text.")
	})

	doc, err := (&DOCXSource{}).Read(context.Background(), bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("read docx: %v", err)
	}
	if len(doc.Pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(doc.Pages))
	}

	pages := doc.Lines()
	first := pages[0]
	if len(first) != 2 {
		t.Fatalf("expected 2 lines on page 0, got %+v", first)
	}
	if first[0].Text != "Quarterly Review" || first[0].Size != 24 {
		t.Errorf("expected 'Quarterly Review' at 24pt, got %q at %v", first[0].Text, first[0].Size)
	}
	if first[1].Size != DefaultDOCXSize {
		t.Errorf("expected default size for body, got %v", first[1].Size)
	}
	if first[1].Top <= first[0].Top {
		t.Errorf("expected tops to increase down the page, got %v then %v", first[0].Top, first[1].Top)
	}

	second := pages[1]
	if len(second) != 2 {
		t.Fatalf("expected 2 lines on page 1, got %+v", second)
	}
	if second[0].Text != "Background" || second[0].Size != 16 {
		t.Errorf("expected Heading1 'Background' at 16pt, got %q at %v", second[0].Text, second[0].Size)
	}
	// Tops restart on a new page.
	if second[0].Top != 16*lineSpacing {
		t.Errorf("expected top %v, got %v", 16*lineSpacing, second[0].Top)
	}
}

func TestDOCXSource_TrailingPageBreak(t *testing.T) {
	data := buildDOCX(t, func(f *docx.Docx) {
		f.AddParagraph().AddText("ONLY PAGE").Size("32")
		f.AddParagraph().AddPageBreaks()
	})

	doc, err := (&DOCXSource{}).Read(context.Background(), bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("read docx: %v", err)
	}
	if len(doc.Pages) != 1 {
		t.Errorf("expected trailing break to add no page, got %d pages", len(doc.Pages))
	}
}

func TestDOCXSource_NotAZip(t *testing.T) {
	data := []byte("plain text pretending to be docx")
	_, err := (&DOCXSource{}).Read(context.Background(), bytes.NewReader(data), int64(len(data)))
	if !IsOpenError(err) {
		t.Errorf("expected open error, got %v", err)
	}
}

func TestHalfPoints(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"24", 12, true},
		{"21", 10.5, true},
		{"", 0, false},
		{"0", 0, false},
		{"big", 0, false},
	}
	for _, tt := range tests {
		got, ok := halfPoints(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("halfPoints(%q): expected (%v, %v), got (%v, %v)", tt.in, tt.want, tt.ok, got, ok)
		}
	}
}
