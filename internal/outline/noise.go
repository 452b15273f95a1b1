package outline

import "strings"

// SeenSet holds the heading texts already emitted for one document.
type SeenSet map[string]struct{}

func (s SeenSet) Has(text string) bool {
	_, ok := s[text]
	return ok
}

func (s SeenSet) Add(text string) {
	s[text] = struct{}{}
}

// NoiseFilter rejects candidates that are typographic noise rather than
// structure: title repeats, page footers, bare dates and duplicates.
// One filter serves one document.
type NoiseFilter struct {
	title string
	dedup bool
	seen  SeenSet
}

func NewNoiseFilter(title string, opts Options) *NoiseFilter {
	return &NoiseFilter{
		title: strings.ToLower(strings.TrimSpace(title)),
		dedup: opts.TitleDedup,
		seen:  make(SeenSet),
	}
}

// Rejects reports whether text must not become an outline entry.
func (f *NoiseFilter) Rejects(text string) bool {
	switch {
	case f.dedup && f.sameAsTitle(text):
		return true
	case isFooter(text):
		return true
	case isDateLine(text):
		return true
	case f.seen.Has(text):
		return true
	}
	return false
}

// Accept records text as emitted.
func (f *NoiseFilter) Accept(text string) {
	f.seen.Add(text)
}

// sameAsTitle matches text that equals, prefixes or is contained in the title.
func (f *NoiseFilter) sameAsTitle(text string) bool {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" || f.title == "" {
		return false
	}
	return strings.Contains(f.title, t)
}
