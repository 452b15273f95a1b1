package doctree

import (
	"strings"
	"testing"

	"github.com/dgallion1/docoutline/internal/outline"
)

func TestFromDocument_Nesting(t *testing.T) {
	doc := outline.Document{
		Title: "Guide",
		Outline: []outline.Entry{
			{Level: outline.H1, Text: "Intro", Page: 1},
			{Level: outline.H2, Text: "Scope", Page: 1},
			{Level: outline.H3, Text: "Terms", Page: 2},
			{Level: outline.H2, Text: "Audience", Page: 2},
			{Level: outline.H1, Text: "Body", Page: 3},
		},
	}

	tree := FromDocument(doc)
	if tree.Title != "Guide" {
		t.Errorf("expected title Guide, got %q", tree.Title)
	}
	if len(tree.Children) != 2 {
		t.Fatalf("expected 2 top-level nodes, got %d", len(tree.Children))
	}
	intro := tree.Children[0]
	if len(intro.Children) != 2 {
		t.Fatalf("expected Intro to have 2 children, got %d", len(intro.Children))
	}
	if intro.Children[0].Children[0].Title != "Terms" {
		t.Errorf("expected Terms under Scope, got %q", intro.Children[0].Children[0].Title)
	}
	if intro.Children[1].Page != 2 {
		t.Errorf("expected Audience on page 2, got %d", intro.Children[1].Page)
	}
}

func TestFromDocument_LevelJumpsAndLeadingSubheadings(t *testing.T) {
	doc := outline.Document{Outline: []outline.Entry{
		{Level: outline.H3, Text: "Orphan"},
		{Level: outline.H1, Text: "Top"},
		{Level: outline.H4, Text: "Deep"},
	}}

	tree := FromDocument(doc)
	if len(tree.Children) != 2 {
		t.Fatalf("expected 2 top-level nodes, got %d", len(tree.Children))
	}
	if tree.Children[0].Title != "Orphan" {
		t.Errorf("expected leading H3 at top level, got %q", tree.Children[0].Title)
	}
	if got := tree.Children[1].Children[0].Title; got != "Deep" {
		t.Errorf("expected Deep nested under Top, got %q", got)
	}
}

func TestWalk_DepthAndBreadcrumb(t *testing.T) {
	tree := FromDocument(outline.Document{Outline: []outline.Entry{
		{Level: outline.H1, Text: "A"},
		{Level: outline.H2, Text: "B"},
		{Level: outline.H3, Text: "C"},
		{Level: outline.H1, Text: "D"},
	}})

	var got []string
	tree.Walk(func(n *DocNode, depth int, breadcrumb []string) {
		got = append(got, strings.Repeat("-", depth)+n.Title+"<"+strings.Join(breadcrumb, "/"))
	})

	want := []string{"A<", "-B<A", "--C<A/B", "D<"}
	if len(got) != len(want) {
		t.Fatalf("expected %d visits, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("visit %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFromDocument_Empty(t *testing.T) {
	tree := FromDocument(outline.Document{Title: outline.FallbackTitle})
	if len(tree.Children) != 0 {
		t.Errorf("expected no children, got %d", len(tree.Children))
	}
	visited := 0
	tree.Walk(func(*DocNode, int, []string) { visited++ })
	if visited != 0 {
		t.Errorf("expected no visits, got %d", visited)
	}
}
