package outline

import (
	"math"
	"sort"
)

// LevelMap assigns heading levels to the distinct font sizes of one page.
type LevelMap map[float64]Level

// BuildLevelMap ranks the distinct sizes above the body threshold in
// descending order and assigns H1, H2, ... to the largest ones. Pages use
// sizes differently, so the map is built per page.
func BuildLevelMap(lines []Line, opts Options) LevelMap {
	seen := make(map[float64]bool)
	var sizes []float64
	for _, ln := range lines {
		s := roundSize(ln.Size)
		if s <= opts.BodyThreshold || seen[s] {
			continue
		}
		seen[s] = true
		sizes = append(sizes, s)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(sizes)))

	n := min(len(sizes), opts.MaxLevels, int(H4))
	m := make(LevelMap, n)
	for i := 0; i < n; i++ {
		m[sizes[i]] = Level(i + 1)
	}
	return m
}

// Lookup returns the level for a font size, or LevelNone.
func (m LevelMap) Lookup(size float64) Level {
	return m[roundSize(size)]
}

// Largest returns the largest mapped size, or 0 for an empty map.
func (m LevelMap) Largest() float64 {
	var largest float64
	for s := range m {
		if s > largest {
			largest = s
		}
	}
	return largest
}

func roundSize(s float64) float64 {
	return math.Round(s*10) / 10
}
