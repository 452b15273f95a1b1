package outline

import "strings"

// ExtractTitle builds the document title from the first page: the first
// TitleMaxLines lines sharing the single largest font size above the body
// threshold, joined by two spaces. It returns "" when no line qualifies.
func ExtractTitle(lines []Line, opts Options) string {
	var best float64
	found := false
	for _, ln := range lines {
		s := roundSize(ln.Size)
		if s > opts.BodyThreshold && (!found || s > best) {
			best = s
			found = true
		}
	}
	if !found {
		return ""
	}

	var parts []string
	for _, ln := range lines {
		if roundSize(ln.Size) != best {
			continue
		}
		if t := strings.TrimSpace(ln.Text); t != "" {
			parts = append(parts, t)
		}
		if len(parts) == opts.TitleMaxLines {
			break
		}
	}
	return strings.TrimSpace(strings.Join(parts, "  "))
}
