package outline

import "testing"

func TestBuildLevelMap_RanksDistinctSizes(t *testing.T) {
	lines := []Line{
		{Text: "c", Size: 12},
		{Text: "body", Size: 10},
		{Text: "a", Size: 18},
		{Text: "b", Size: 14},
		{Text: "a again", Size: 18},
	}
	m := BuildLevelMap(lines, DefaultOptions())

	want := map[float64]Level{18: H1, 14: H2, 12: H3}
	if len(m) != len(want) {
		t.Fatalf("expected %d levels, got %d (%v)", len(want), len(m), m)
	}
	for size, lvl := range want {
		if got := m.Lookup(size); got != lvl {
			t.Errorf("size %g: expected %s, got %s", size, lvl, got)
		}
	}
	if got := m.Lookup(10); got != LevelNone {
		t.Errorf("body size: expected no level, got %s", got)
	}
}

func TestBuildLevelMap_CapsAtMaxLevels(t *testing.T) {
	lines := []Line{{Size: 30}, {Size: 26}, {Size: 22}, {Size: 18}, {Size: 14}}

	four := BuildLevelMap(lines, DefaultOptions())
	if four.Lookup(18) != H4 {
		t.Errorf("expected 18 -> H4, got %s", four.Lookup(18))
	}
	if four.Lookup(14) != LevelNone {
		t.Errorf("expected fifth size unmapped, got %s", four.Lookup(14))
	}

	opts := DefaultOptions()
	opts.MaxLevels = 3
	three := BuildLevelMap(lines, opts)
	if len(three) != 3 {
		t.Fatalf("expected 3 levels, got %d", len(three))
	}
	if three.Lookup(18) != LevelNone {
		t.Errorf("expected fourth size unmapped with 3 levels, got %s", three.Lookup(18))
	}
}

func TestBuildLevelMap_ThresholdIsExclusive(t *testing.T) {
	m := BuildLevelMap([]Line{{Size: 11.5}, {Size: 11.6}}, DefaultOptions())
	if m.Lookup(11.5) != LevelNone {
		t.Errorf("expected 11.5 to be body text")
	}
	if m.Lookup(11.6) != H1 {
		t.Errorf("expected 11.6 -> H1, got %s", m.Lookup(11.6))
	}
}

func TestBuildLevelMap_BodyOnlyPage(t *testing.T) {
	m := BuildLevelMap([]Line{{Size: 10}, {Size: 9}, {Size: 11}}, DefaultOptions())
	if len(m) != 0 {
		t.Errorf("expected empty map, got %v", m)
	}
	if m.Largest() != 0 {
		t.Errorf("expected largest 0, got %g", m.Largest())
	}
}

func TestBuildLevelMap_RoundsToOneDecimal(t *testing.T) {
	m := BuildLevelMap([]Line{{Size: 14.04}, {Size: 13.96}}, DefaultOptions())
	if len(m) != 1 {
		t.Fatalf("expected sizes to collapse to one level, got %v", m)
	}
	if m.Lookup(14) != H1 {
		t.Errorf("expected 14 -> H1, got %s", m.Lookup(14))
	}
}
