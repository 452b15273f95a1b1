package layout

import (
	"context"
	"fmt"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownSource lays out a Markdown file with goldmark. Headings get the
// HTML tag sizes, everything else the body size, and each thematic break
// (---) starts a new page.
type MarkdownSource struct{}

func (s *MarkdownSource) Read(ctx context.Context, r io.ReaderAt, size int64) (*Document, error) {
	src, err := io.ReadAll(io.NewSectionReader(r, 0, size))
	if err != nil {
		return nil, openError(fmt.Errorf("read markdown: %w", err))
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root := goldmark.New().Parser().Parse(text.NewReader(src))
	w := &flowWriter{}
	mdBlocks(w, root, src)
	return &Document{Pages: w.finish()}, nil
}

func mdBlocks(w *flowWriter, parent ast.Node, src []byte) {
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			w.endBlock()
			size := HTMLBodySize
			if v, ok := htmlTagSizes[fmt.Sprintf("h%d", node.Level)]; ok {
				size = v
			}
			mdInline(w, node, src, size)
			w.endBlock()
		case *ast.Paragraph, *ast.TextBlock:
			mdInline(w, node, src, HTMLBodySize)
			w.endBlock()
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			lines := node.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				w.write(string(seg.Value(src)), HTMLBodySize)
				w.endLine()
			}
			w.endBlock()
		case *ast.ThematicBreak:
			w.newPage()
		case *ast.HTMLBlock:
		default:
			mdBlocks(w, node, src)
		}
	}
}

func mdInline(w *flowWriter, parent ast.Node, src []byte, size float64) {
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		switch node := c.(type) {
		case *ast.Text:
			w.write(string(node.Value(src)), size)
			if node.SoftLineBreak() || node.HardLineBreak() {
				w.endLine()
			}
		case *ast.String:
			w.write(string(node.Value), size)
		case *ast.AutoLink:
			w.write(string(node.URL(src)), size)
		case *ast.RawHTML:
		default:
			mdInline(w, node, src, size)
		}
	}
	w.endLine()
}
