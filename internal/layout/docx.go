package layout

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fumiama/go-docx"
)

// DefaultDOCXSize is the point size of runs that carry no w:sz.
const DefaultDOCXSize = 11.0

// DOCXSource treats every paragraph as one line. Explicit page breaks start
// a new page; Top is a running offset from the top of the page.
type DOCXSource struct{}

func (s *DOCXSource) Read(ctx context.Context, r io.ReaderAt, size int64) (doc *Document, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			doc, err = nil, parseError(-1, fmt.Errorf("parse docx: %v", rec))
		}
	}()

	d, err := docx.Parse(r, size)
	if err != nil {
		return nil, openError(fmt.Errorf("parse docx: %w", err))
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	w := &flowWriter{}
	for _, item := range d.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		base := docxParagraphSize(para)
		for _, child := range para.Children {
			switch c := child.(type) {
			case *docx.Run:
				docxRun(w, c, base)
			case *docx.Hyperlink:
				docxRun(w, &c.Run, base)
			}
		}
		w.endLine()
	}
	return &Document{Pages: w.finish()}, nil
}

func docxRun(w *flowWriter, run *docx.Run, base float64) {
	size := base
	if run.RunProperties != nil && run.RunProperties.Size != nil {
		if v, ok := halfPoints(run.RunProperties.Size.Val); ok {
			size = v
		}
	}
	for _, rc := range run.Children {
		switch c := rc.(type) {
		case *docx.Text:
			w.write(c.Text, size)
		case *docx.Tab:
			w.write(" ", size)
		case *docx.BarterRabbet:
			w.endLine()
			if c.Type == "page" {
				w.newPage()
			}
		}
	}
}

// docxParagraphSize resolves the size a paragraph's runs inherit: the
// paragraph mark's w:sz, then the heading style, then the default.
func docxParagraphSize(para *docx.Paragraph) float64 {
	if para.Properties == nil {
		return DefaultDOCXSize
	}
	if rp := para.Properties.RunProperties; rp != nil && rp.Size != nil {
		if v, ok := halfPoints(rp.Size.Val); ok {
			return v
		}
	}
	if para.Properties.Style != nil {
		if v, ok := docxStyleSizes[strings.ToLower(strings.ReplaceAll(para.Properties.Style.Val, " ", ""))]; ok {
			return v
		}
	}
	return DefaultDOCXSize
}

// Sizes of Word's built-in styles, used when a run has no explicit size.
var docxStyleSizes = map[string]float64{
	"title":    28,
	"subtitle": 15,
	"heading1": 16,
	"heading2": 13,
	"heading3": 12,
	"heading4": 11,
}

func halfPoints(val string) (float64, bool) {
	n, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n / 2, true
}
