package outline

import "strings"

// Build derives the title and outline of one document from its pages, each
// given as lines in layout order. Build is pure: the same pages and options
// always give the same Document.
func Build(pages [][]Line, opts Options) Document {
	doc := Document{Title: FallbackTitle, Outline: []Entry{}}
	if len(pages) == 0 {
		return doc
	}
	if t := ExtractTitle(pages[0], opts); t != "" {
		doc.Title = t
	}

	filter := NewNoiseFilter(doc.Title, opts)

	if len(pages) == 1 && opts.SinglePageStrict {
		if e, ok := singlePageHeading(pages[0], filter, opts); ok {
			doc.Outline = append(doc.Outline, e)
		}
		return doc
	}

	for i, lines := range pages {
		page := i + opts.PageOffset
		for _, c := range DetectHeadings(lines, opts) {
			if filter.Rejects(c.Text) {
				continue
			}
			filter.Accept(c.Text)
			doc.Outline = append(doc.Outline, Entry{Level: c.Level, Text: c.Text, Page: page})
		}
	}

	// The first physical page holds title material, not body headings.
	if len(pages) > 1 && opts.DropFirstPage {
		kept := doc.Outline[:0]
		for _, e := range doc.Outline {
			if e.Page != 0 {
				kept = append(kept, e)
			}
		}
		doc.Outline = kept
	}
	return doc
}

// singlePageHeading picks the first candidate that looks like a real heading:
// short, upper-case and not an excluded phrase. It is always reported as H1 on page 0.
func singlePageHeading(lines []Line, filter *NoiseFilter, opts Options) (Entry, bool) {
	for _, c := range DetectHeadings(lines, opts) {
		if filter.Rejects(c.Text) {
			continue
		}
		if len(strings.Fields(c.Text)) > opts.StrictMaxWords || !isUpperText(c.Text) || opts.excluded(c.Text) {
			continue
		}
		filter.Accept(c.Text)
		return Entry{Level: H1, Text: c.Text, Page: 0}, true
	}
	return Entry{}, false
}
