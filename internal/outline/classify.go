package outline

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	// "2 Scope", "2.1 Terms", "2.1.1: Foo"
	numberedPrefix = regexp.MustCompile(`^(\d+(?:\.\d+)*):?\s`)
	// "2.1" or deeper; never folded into the previous heading.
	multiSegment = regexp.MustCompile(`^\d+\.\d+`)
)

// Classifier resolves the heading level of the lines of one page.
type Classifier struct {
	levels  LevelMap
	largest float64
	opts    Options
}

// NewClassifier builds the page's size ranking from all of its lines.
func NewClassifier(lines []Line, opts Options) *Classifier {
	levels := BuildLevelMap(lines, opts)
	return &Classifier{
		levels:  levels,
		largest: levels.Largest(),
		opts:    opts,
	}
}

// Levels exposes the page's size ranking.
func (c *Classifier) Levels() LevelMap {
	return c.levels
}

// Classify returns the level of a line, or LevelNone for body text.
// Numbering wins over size; the upper-case fallback applies only when
// neither numbering nor size yields a level.
func (c *Classifier) Classify(line Line) Level {
	if isDateLine(line.Text) {
		return LevelNone
	}
	if lvl, ok := numberingLevel(line.Text, c.opts.MaxLevels); ok {
		return lvl
	}
	if lvl := c.levels.Lookup(line.Size); lvl != LevelNone {
		return lvl
	}
	if c.fallback(line) {
		return H1
	}
	return LevelNone
}

func (c *Classifier) fallback(line Line) bool {
	if c.largest == 0 {
		return false
	}
	if !isUpperText(line.Text) {
		return false
	}
	if len(strings.Fields(line.Text)) > c.opts.FallbackMaxWords {
		return false
	}
	return roundSize(line.Size) >= c.opts.FallbackSizeRatio*c.largest
}

// numberingLevel maps a leading section number to a level by its depth.
func numberingLevel(text string, maxLevels int) (Level, bool) {
	m := numberedPrefix.FindStringSubmatch(text)
	if m == nil {
		return LevelNone, false
	}
	depth := strings.Count(m[1], ".") + 1
	return Level(min(depth, maxLevels, int(H4))), true
}

// isUpperText reports whether s has at least one cased letter and no lower-case ones.
func isUpperText(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) || unicode.IsTitle(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}
