// Package outline derives a document title and a heading outline from the
// per-page text lines of a document, using only typographic cues: font size
// ranking, section numbering and upper-case short lines.
package outline

import (
	"fmt"
	"strconv"
	"strings"
)

// FallbackTitle is used when no line on the first page is large enough to be a title.
const FallbackTitle = "Untitled Document"

// Level is a heading seniority rank. The zero value means "not a heading".
type Level int

const (
	LevelNone Level = iota
	H1
	H2
	H3
	H4
)

func (l Level) String() string {
	if l >= H1 && l <= H4 {
		return "H" + strconv.Itoa(int(l))
	}
	return "none"
}

// MarshalText encodes the level as "H1".."H4".
func (l Level) MarshalText() ([]byte, error) {
	if l < H1 || l > H4 {
		return nil, fmt.Errorf("invalid heading level %d", int(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText accepts "H1".."H4" (case-insensitive).
func (l *Level) UnmarshalText(b []byte) error {
	s := strings.ToUpper(strings.TrimSpace(string(b)))
	if len(s) == 2 && s[0] == 'H' && s[1] >= '1' && s[1] <= '4' {
		*l = Level(s[1] - '0')
		return nil
	}
	return fmt.Errorf("invalid heading level %q", string(b))
}

// Line is one visually distinct row of text on a page.
type Line struct {
	Text string  // Fragment texts joined with single spaces
	Size float64 // Largest font size on the line, rounded to one decimal
	Top  float64 // Vertical origin, increasing down the page
}

// Candidate is a classified (and possibly merged) heading before noise filtering.
type Candidate struct {
	Level Level
	Text  string
	Top   float64
}

// Entry is one heading in the final outline.
type Entry struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`
}

// Document is the outline extracted from one input document.
type Document struct {
	Title   string  `json:"title"`
	Outline []Entry `json:"outline"`
}
