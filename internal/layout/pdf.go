package layout

import (
	"context"
	"fmt"
	"io"
	"math"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PDFSource reads positioned glyphs with ledongthuc/pdf and groups them
// into lines by baseline.
type PDFSource struct {
	PageErrors PageErrorPolicy
	// Validate runs pdfcpu's structural validation first. A file that fails
	// it is reported as an open error.
	Validate bool
}

func (s *PDFSource) Read(ctx context.Context, r io.ReaderAt, size int64) (*Document, error) {
	if s.Validate {
		if err := validatePDF(r, size); err != nil {
			return nil, openError(fmt.Errorf("validate pdf: %w", err))
		}
	}

	reader, err := newPDFReader(r, size)
	if err != nil {
		return nil, openError(fmt.Errorf("open pdf: %w", err))
	}

	doc := &Document{Bookmarks: pdfBookmarks(reader)}
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page, err := pdfPage(reader, i)
		if err != nil {
			if s.PageErrors == SkipPageOnError {
				doc.Skipped = append(doc.Skipped, i-1)
				doc.Pages = append(doc.Pages, Page{Index: i - 1})
				continue
			}
			return nil, parseError(i-1, err)
		}
		doc.Pages = append(doc.Pages, page)
	}
	return doc, nil
}

func validatePDF(r io.ReaderAt, size int64) error {
	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(io.NewSectionReader(r, 0, size), conf)
	if err != nil {
		return err
	}
	if ctx.PageCount == 0 {
		return fmt.Errorf("no pages")
	}
	return nil
}

// newPDFReader turns the library's panics on malformed input into errors.
func newPDFReader(r io.ReaderAt, size int64) (reader *pdflib.Reader, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			reader, err = nil, fmt.Errorf("%v", rec)
		}
	}()
	return pdflib.NewReader(r, size)
}

func pdfBookmarks(r *pdflib.Reader) (n int) {
	defer func() {
		if recover() != nil {
			n = 0
		}
	}()
	return countBookmarks(r.Outline())
}

func countBookmarks(o pdflib.Outline) int {
	n := 0
	for _, c := range o.Child {
		n += 1 + countBookmarks(c)
	}
	return n
}

func pdfPage(r *pdflib.Reader, num int) (page Page, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("read page content: %v", rec)
		}
	}()

	page.Index = num - 1
	p := r.Page(num)
	if p.V.IsNull() {
		return page, nil
	}
	page.Blocks = groupGlyphs(p.Content().Text, pageTop(p.V))
	return page, nil
}

// pageTop returns the upper y of the page's MediaBox, which may be inherited
// from an ancestor in the page tree. Zero when none is found.
func pageTop(v pdflib.Value) float64 {
	for depth := 0; depth < 32 && v.Kind() == pdflib.Dict; depth++ {
		if box := v.Key("MediaBox"); box.Kind() == pdflib.Array && box.Len() == 4 {
			return box.Index(3).Float64()
		}
		v = v.Key("Parent")
	}
	return 0
}

// lineBuilder collects the glyphs of one baseline.
type lineBuilder struct {
	baseline float64
	size     float64 // current fragment
	max      float64 // largest on the line
	top      float64
	frags    []Fragment
	font     string
	lastEnd  float64
	text     strings.Builder
}

func (b *lineBuilder) add(g pdflib.Text) {
	size := math.Round(g.FontSize*10) / 10
	if b.text.Len() > 0 && (g.Font != b.font || size != b.size) {
		b.cut()
	}
	if b.text.Len() == 0 {
		b.font, b.size = g.Font, size
	} else if gap := g.X - b.lastEnd; gap > 0.2*g.FontSize && g.S != " " && !strings.HasSuffix(b.text.String(), " ") {
		b.text.WriteByte(' ')
	}
	b.text.WriteString(g.S)
	b.lastEnd = g.X + g.W
	b.max = math.Max(b.max, size)
}

func (b *lineBuilder) cut() {
	if b.text.Len() > 0 {
		b.frags = append(b.frags, Fragment{Text: b.text.String(), Size: b.size, Top: b.top})
	}
	b.text.Reset()
}

func (b *lineBuilder) line() RawLine {
	b.cut()
	return RawLine{Fragments: b.frags}
}

// groupGlyphs splits glyphs into lines whenever the baseline moves by more
// than a third of the font size, and into blocks at gaps wider than twice
// the largest size on either line.
func groupGlyphs(glyphs []pdflib.Text, pageTop float64) []Block {
	var blocks []Block
	var cur Block
	var lb *lineBuilder
	var prevBaseline, prevSize float64

	finishLine := func() {
		if lb == nil {
			return
		}
		if len(cur.Lines) > 0 && math.Abs(prevBaseline-lb.baseline) > 2*math.Max(prevSize, lb.max) {
			blocks = append(blocks, cur)
			cur = Block{}
		}
		cur.Lines = append(cur.Lines, lb.line())
		prevBaseline, prevSize = lb.baseline, lb.max
		lb = nil
	}

	for _, g := range glyphs {
		if g.S == "" {
			continue
		}
		tol := math.Max(1, g.FontSize/3)
		if lb != nil && math.Abs(g.Y-lb.baseline) > tol {
			finishLine()
		}
		if lb == nil {
			top := -g.Y
			if pageTop > 0 {
				top = pageTop - g.Y
			}
			lb = &lineBuilder{baseline: g.Y, top: top}
		}
		lb.add(g)
	}
	finishLine()
	if len(cur.Lines) > 0 {
		blocks = append(blocks, cur)
	}
	return blocks
}
