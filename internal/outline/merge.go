package outline

import (
	"math"
	"strings"
)

// Merger folds consecutive classified lines into headings. A heading wrapped
// over several physical lines arrives as lines of the same level a short
// distance apart; those are joined with single spaces.
type Merger struct {
	distance float64

	active   bool
	text     string
	level    Level
	firstTop float64
	lastTop  float64
}

// NewMerger returns a merger joining same-level lines at most distance apart.
func NewMerger(distance float64) *Merger {
	return &Merger{distance: distance}
}

// Push adds a classified line. When the line starts a new heading, the
// previously buffered heading is flushed and returned.
func (m *Merger) Push(line Line, level Level) (Candidate, bool) {
	if m.joins(line, level) {
		m.text += " " + line.Text
		m.lastTop = line.Top
		return Candidate{}, false
	}
	out, ok := m.Flush()
	m.active = true
	m.text = line.Text
	m.level = level
	m.firstTop = line.Top
	m.lastTop = line.Top
	return out, ok
}

// Flush emits the buffered heading, if any, and empties the buffer.
// Headings made up mostly of dates are dropped.
func (m *Merger) Flush() (Candidate, bool) {
	if !m.active {
		return Candidate{}, false
	}
	c := Candidate{Level: m.level, Text: strings.TrimSpace(m.text), Top: m.firstTop}
	*m = Merger{distance: m.distance}
	if c.Text == "" || isMostlyDates(c.Text) {
		return Candidate{}, false
	}
	return c, true
}

func (m *Merger) joins(line Line, level Level) bool {
	if !m.active || level != m.level {
		return false
	}
	if math.Abs(line.Top-m.lastTop) > m.distance {
		return false
	}
	return !multiSegment.MatchString(line.Text)
}

// DetectHeadings classifies and merges the lines of one page, in order.
func DetectHeadings(lines []Line, opts Options) []Candidate {
	c := NewClassifier(lines, opts)
	m := NewMerger(opts.MergeDistance)

	var out []Candidate
	for _, ln := range lines {
		lvl := c.Classify(ln)
		if lvl == LevelNone {
			continue
		}
		if h, ok := m.Push(ln, lvl); ok {
			out = append(out, h)
		}
	}
	if h, ok := m.Flush(); ok {
		out = append(out, h)
	}
	return out
}
