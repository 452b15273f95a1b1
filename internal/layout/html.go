package layout

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// HTMLBodySize is the point size of text outside headings.
const HTMLBodySize = 10.0

var htmlTagSizes = map[string]float64{
	"h1": 24,
	"h2": 18,
	"h3": 15,
	"h4": 13,
	"h5": 12,
	"h6": 12,
}

var htmlBlocks = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"caption": true, "dd": true, "div": true, "dl": true, "dt": true,
	"figcaption": true, "figure": true, "footer": true, "form": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"header": true, "li": true, "main": true, "nav": true, "ol": true,
	"p": true, "pre": true, "section": true, "table": true, "td": true,
	"th": true, "tr": true, "ul": true,
}

var (
	fontSizeDecl = regexp.MustCompile(`(?i)font-size\s*:\s*([0-9]*\.?[0-9]+)\s*(pt|px|em|rem|%)?`)
	breakBefore  = regexp.MustCompile(`(?i)(page-break-before|break-before)\s*:\s*(always|page)`)
	breakAfter   = regexp.MustCompile(`(?i)(page-break-after|break-after)\s*:\s*(always|page)`)
	spaceRun     = regexp.MustCompile(`\s+`)
)

// HTMLSource lays out block elements as lines. Sizes come from inline
// font-size declarations or heading tag defaults. Page breaks are taken from
// page-break CSS or an <hr class="page-break">.
type HTMLSource struct{}

func (s *HTMLSource) Read(ctx context.Context, r io.ReaderAt, size int64) (*Document, error) {
	root, err := html.Parse(io.NewSectionReader(r, 0, size))
	if err != nil {
		return nil, parseError(-1, fmt.Errorf("parse html: %w", err))
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	body := findElement(root, "body")
	if body == nil {
		body = root
	}
	w := &flowWriter{}
	htmlWalk(w, body, HTMLBodySize)
	return &Document{Pages: w.finish()}, nil
}

func htmlWalk(w *flowWriter, n *html.Node, size float64) {
	switch n.Type {
	case html.TextNode:
		w.write(spaceRun.ReplaceAllString(n.Data, " "), size)
		return
	case html.ElementNode:
	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			htmlWalk(w, c, size)
		}
		return
	}

	switch n.Data {
	case "script", "style", "noscript", "template", "head":
		return
	case "br":
		w.endLine()
		return
	case "hr":
		if strings.Contains(attr(n, "class"), "page-break") || breakBefore.MatchString(attr(n, "style")) ||
			breakAfter.MatchString(attr(n, "style")) {
			w.newPage()
		} else {
			w.endBlock()
		}
		return
	}

	style := attr(n, "style")
	if breakBefore.MatchString(style) {
		w.newPage()
	}
	if v, ok := htmlTagSizes[n.Data]; ok {
		size = v
	}
	if v, ok := cssFontSize(style, size); ok {
		size = v
	}

	block := htmlBlocks[n.Data]
	if block {
		w.endBlock()
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		htmlWalk(w, c, size)
	}
	if block {
		w.endBlock()
	}
	if breakAfter.MatchString(style) {
		w.newPage()
	}
}

// cssFontSize reads a font-size declaration in points. Relative units
// resolve against parent; px converts at 96dpi.
func cssFontSize(style string, parent float64) (float64, bool) {
	m := fontSizeDecl.FindStringSubmatch(style)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	switch strings.ToLower(m[2]) {
	case "pt":
		return v, true
	case "em":
		return v * parent, true
	case "rem":
		return v * 12, true
	case "%":
		return v / 100 * parent, true
	default:
		return v * 0.75, true
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}
