// Package doctree nests a flat outline into a heading tree for rendering.
package doctree

import "github.com/dgallion1/docoutline/internal/outline"

// DocTree is the root of a nested outline.
type DocTree struct {
	Title    string     // Document title
	Children []*DocNode // Top-level headings
}

// DocNode is one heading and the headings nested under it.
type DocNode struct {
	Level    outline.Level
	Title    string     // Heading text
	Page     int        // Tagged page of the heading
	Children []*DocNode // Subsections
}

// FromDocument nests doc's entries by level. Each entry goes under the
// closest preceding entry of a more senior level, so a jump from H1 to H3
// nests the H3 directly under the H1. Entry order is preserved.
func FromDocument(doc outline.Document) *DocTree {
	tree := &DocTree{Title: doc.Title}

	type stackEntry struct {
		node  *DocNode
		level outline.Level
	}
	root := &DocNode{}
	stack := []stackEntry{{node: root, level: outline.LevelNone}}

	for _, e := range doc.Outline {
		node := &DocNode{Level: e.Level, Title: e.Text, Page: e.Page}
		for len(stack) > 1 && stack[len(stack)-1].level >= e.Level {
			stack = stack[:len(stack)-1]
		}
		parent := stack[len(stack)-1].node
		parent.Children = append(parent.Children, node)
		stack = append(stack, stackEntry{node: node, level: e.Level})
	}

	tree.Children = root.Children
	return tree
}

// Walk visits every node depth-first. depth is 0 for top-level headings and
// breadcrumb holds the titles of the node's ancestors.
func (t *DocTree) Walk(fn func(n *DocNode, depth int, breadcrumb []string)) {
	for _, child := range t.Children {
		walkNode(child, 0, nil, fn)
	}
}

func walkNode(node *DocNode, depth int, breadcrumb []string, fn func(*DocNode, int, []string)) {
	fn(node, depth, copyBreadcrumb(breadcrumb))

	bc := append(copyBreadcrumb(breadcrumb), node.Title)
	for _, child := range node.Children {
		walkNode(child, depth+1, bc, fn)
	}
}

func copyBreadcrumb(bc []string) []string {
	if len(bc) == 0 {
		return nil
	}
	out := make([]string, len(bc))
	copy(out, bc)
	return out
}
