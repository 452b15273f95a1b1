package layout

import "strings"

// lineSpacing is the leading applied to reflowed lines, as a multiple of
// the tallest size on the line.
const lineSpacing = 1.2

// flowWriter lays out reflowable text (DOCX, HTML, Markdown) into pages.
// Lines stack downward from the top of the page.
type flowWriter struct {
	pages []Page
	page  Page
	block Block
	line  []Fragment
	top   float64
}

func (w *flowWriter) write(text string, size float64) {
	if text == "" {
		return
	}
	if n := len(w.line); n > 0 && w.line[n-1].Size == size {
		w.line[n-1].Text += text
		return
	}
	w.line = append(w.line, Fragment{Text: text, Size: size})
}

func (w *flowWriter) endLine() {
	frags := w.line
	w.line = nil

	var size float64
	empty := true
	for _, f := range frags {
		if strings.TrimSpace(f.Text) != "" {
			empty = false
		}
		if f.Size > size {
			size = f.Size
		}
	}
	if empty {
		return
	}

	w.top += size * lineSpacing
	for i := range frags {
		frags[i].Top = w.top
	}
	w.block.Lines = append(w.block.Lines, RawLine{Fragments: frags})
}

func (w *flowWriter) endBlock() {
	w.endLine()
	if len(w.block.Lines) > 0 {
		w.page.Blocks = append(w.page.Blocks, w.block)
	}
	w.block = Block{}
}

func (w *flowWriter) newPage() {
	w.endBlock()
	w.page.Index = len(w.pages)
	w.pages = append(w.pages, w.page)
	w.page = Page{}
	w.top = 0
}

// finish closes the last page. A trailing page break does not produce an
// empty final page.
func (w *flowWriter) finish() []Page {
	w.endBlock()
	if len(w.page.Blocks) > 0 || len(w.pages) == 0 {
		w.page.Index = len(w.pages)
		w.pages = append(w.pages, w.page)
	}
	w.page = Page{}
	return w.pages
}
