package render

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/dgallion1/docoutline/internal/outline"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
)

var markdownToHTML = goldmark.New(goldmark.WithParserOptions(parser.WithAutoHeadingID()))

// HTML renders the Markdown form of doc with goldmark and wraps it in a
// standalone page. Heading ids are slugs of the heading text.
func HTML(w io.Writer, doc outline.Document) error {
	var md bytes.Buffer
	if err := Markdown(&md, doc); err != nil {
		return err
	}

	var body bytes.Buffer
	ctx := parser.NewContext(parser.WithIDs(newSlugIDs()))
	if err := markdownToHTML.Convert(md.Bytes(), &body, parser.WithContext(ctx)); err != nil {
		return fmt.Errorf("convert outline to html: %w", err)
	}

	_, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n<body>\n%s</body>\n</html>\n",
		html.EscapeString(doc.Title), body.String())
	if err != nil {
		return fmt.Errorf("write html: %w", err)
	}
	return nil
}

const maxSlugLen = 50

var (
	nonSlug = regexp.MustCompile(`[^a-z0-9-]`)
	dashRun = regexp.MustCompile(`-+`)
)

// Slugify converts a string to a URL-safe anchor.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = nonSlug.ReplaceAllString(s, "-")
	s = dashRun.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > maxSlugLen {
		s = strings.TrimRight(s[:maxSlugLen], "-")
	}
	return s
}

// slugIDs hands out Slugify ids, suffixing repeats with -1, -2, ...
type slugIDs struct {
	used map[string]bool
}

func newSlugIDs() *slugIDs {
	return &slugIDs{used: map[string]bool{}}
}

func (s *slugIDs) Generate(value []byte, _ ast.NodeKind) []byte {
	base := Slugify(string(value))
	if base == "" {
		base = "heading"
	}
	id := base
	for i := 1; s.used[id]; i++ {
		id = base + "-" + strconv.Itoa(i)
	}
	s.used[id] = true
	return []byte(id)
}

func (s *slugIDs) Put(value []byte) {
	s.used[string(value)] = true
}
