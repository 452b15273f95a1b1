// Package layout reads positioned text out of documents and aggregates it
// into the per-page lines the outline heuristics consume.
package layout

import (
	"context"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"

	"github.com/dgallion1/docoutline/internal/outline"
)

// Fragment is a run of text sharing one font size. Top grows downward
// from the top edge of the page.
type Fragment struct {
	Text string
	Size float64
	Top  float64
}

// RawLine is one visual line as the layout facility reports it.
type RawLine struct {
	Fragments []Fragment
}

// Block groups consecutive lines.
type Block struct {
	Lines []RawLine
}

// Page holds the blocks of one page in reading order.
type Page struct {
	Index  int
	Blocks []Block
}

// Document is the layout of a whole file.
type Document struct {
	Pages []Page
	// Bookmarks is the number of outline entries the file already embeds.
	// Only PDF sources report it.
	Bookmarks int
	// Skipped lists page indexes that failed to parse and were left empty.
	Skipped []int
}

// Lines aggregates every page of the document.
func (d *Document) Lines() [][]outline.Line {
	out := make([][]outline.Line, len(d.Pages))
	for i, p := range d.Pages {
		out[i] = Aggregate(p)
	}
	return out
}

// Aggregate turns a page's raw lines into outline lines. Fragment texts are
// trimmed and joined with one space, the size is the largest fragment size
// rounded to one decimal and Top comes from the last fragment. Lines with no
// text are dropped.
func Aggregate(p Page) []outline.Line {
	var lines []outline.Line
	for _, b := range p.Blocks {
		for _, rl := range b.Lines {
			var parts []string
			var size, top float64
			for _, f := range rl.Fragments {
				if t := strings.TrimSpace(f.Text); t != "" {
					parts = append(parts, t)
				}
				size = math.Max(size, f.Size)
				top = f.Top
			}
			if len(parts) == 0 {
				continue
			}
			lines = append(lines, outline.Line{
				Text: strings.Join(parts, " "),
				Size: math.Round(size*10) / 10,
				Top:  top,
			})
		}
	}
	return lines
}

// Source reads the layout of one document.
type Source interface {
	Read(ctx context.Context, r io.ReaderAt, size int64) (*Document, error)
}

// PageErrorPolicy decides what happens when a single page cannot be parsed.
type PageErrorPolicy string

const (
	// AbortOnPageError fails the whole document.
	AbortOnPageError PageErrorPolicy = "abort"
	// SkipPageOnError leaves the page empty and keeps going.
	SkipPageOnError PageErrorPolicy = "skip"
)

// ParsePageErrorPolicy accepts "abort", "skip" or "" (abort).
func ParsePageErrorPolicy(s string) (PageErrorPolicy, error) {
	switch PageErrorPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", AbortOnPageError:
		return AbortOnPageError, nil
	case SkipPageOnError:
		return SkipPageOnError, nil
	}
	return "", fmt.Errorf("unknown page error policy %q (want abort or skip)", s)
}

// Options configures the sources.
type Options struct {
	PageErrors PageErrorPolicy
	// ValidatePDF runs a structural check before extracting PDF text.
	ValidatePDF bool
}

// SupportedExtensions lists file extensions that have a layout source.
var SupportedExtensions = map[string]bool{
	".pdf":      true,
	".docx":     true,
	".html":     true,
	".htm":      true,
	".md":       true,
	".markdown": true,
}

// ForFile returns the source for a filename.
func ForFile(filename string, opts Options) (Source, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return &PDFSource{PageErrors: opts.PageErrors, Validate: opts.ValidatePDF}, nil
	case ".docx":
		return &DOCXSource{}, nil
	case ".html", ".htm":
		return &HTMLSource{}, nil
	case ".md", ".markdown":
		return &MarkdownSource{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	return SupportedExtensions[strings.ToLower(filepath.Ext(filename))]
}
