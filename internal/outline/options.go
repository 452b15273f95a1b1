package outline

import (
	"fmt"
	"strings"
)

// Options holds every threshold and toggle of the heuristic. The zero value is
// not usable; start from DefaultOptions.
type Options struct {
	// BodyThreshold is the font size at or below which text is body text.
	BodyThreshold float64 `yaml:"body_threshold" json:"body_threshold"`
	// MaxLevels caps the number of heading levels (3 or 4).
	MaxLevels int `yaml:"max_levels" json:"max_levels"`
	// MergeDistance is the largest vertical gap between two lines of a wrapped heading.
	MergeDistance float64 `yaml:"merge_distance" json:"merge_distance"`

	// Upper-case fallback for lines that neither numbering nor size classify.
	FallbackMaxWords  int     `yaml:"fallback_max_words" json:"fallback_max_words"`
	FallbackSizeRatio float64 `yaml:"fallback_size_ratio" json:"fallback_size_ratio"`

	// TitleMaxLines is how many lines of the largest size make up the title.
	TitleMaxLines int `yaml:"title_max_lines" json:"title_max_lines"`
	// TitleDedup drops headings contained in the title.
	TitleDedup bool `yaml:"title_dedup" json:"title_dedup"`

	// SinglePageStrict emits at most one short upper-case heading for one-page documents.
	SinglePageStrict bool     `yaml:"single_page_strict" json:"single_page_strict"`
	StrictMaxWords   int      `yaml:"strict_max_words" json:"strict_max_words"`
	ExcludedPrefixes []string `yaml:"excluded_prefixes" json:"excluded_prefixes"`

	// DropFirstPage removes entries tagged page 0 from multi-page outlines.
	DropFirstPage bool `yaml:"drop_first_page" json:"drop_first_page"`
	// PageOffset is added to the zero-based page index of every multi-page entry.
	PageOffset int `yaml:"page_offset" json:"page_offset"`
}

// DefaultOptions returns the tuned defaults.
func DefaultOptions() Options {
	return Options{
		BodyThreshold:     11.5,
		MaxLevels:         4,
		MergeDistance:     25,
		FallbackMaxWords:  6,
		FallbackSizeRatio: 0.9,
		TitleMaxLines:     2,
		TitleDedup:        true,
		SinglePageStrict:  true,
		StrictMaxWords:    8,
		ExcludedPrefixes:  []string{"mission"},
		DropFirstPage:     true,
	}
}

// Validate reports the first setting that cannot produce a meaningful outline.
func (o Options) Validate() error {
	if o.MaxLevels < 3 || o.MaxLevels > 4 {
		return fmt.Errorf("max_levels must be 3 or 4, got %d", o.MaxLevels)
	}
	if o.BodyThreshold < 0 {
		return fmt.Errorf("body_threshold must not be negative, got %g", o.BodyThreshold)
	}
	if o.MergeDistance < 0 {
		return fmt.Errorf("merge_distance must not be negative, got %g", o.MergeDistance)
	}
	if o.FallbackSizeRatio <= 0 || o.FallbackSizeRatio > 1 {
		return fmt.Errorf("fallback_size_ratio must be in (0, 1], got %g", o.FallbackSizeRatio)
	}
	if o.FallbackMaxWords < 0 || o.StrictMaxWords < 0 {
		return fmt.Errorf("word limits must not be negative")
	}
	if o.TitleMaxLines <= 0 {
		return fmt.Errorf("title_max_lines must be positive, got %d", o.TitleMaxLines)
	}
	if o.PageOffset < 0 {
		return fmt.Errorf("page_offset must not be negative, got %d", o.PageOffset)
	}
	return nil
}

func (o Options) excluded(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	for _, p := range o.ExcludedPrefixes {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" && strings.HasPrefix(lower, p) {
			return true
		}
	}
	return false
}
