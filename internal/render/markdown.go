package render

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/dgallion1/docoutline/internal/doctree"
	"github.com/dgallion1/docoutline/internal/outline"
)

var mdEscaper = strings.NewReplacer(
	`\`, `\\`,
	`*`, `\*`,
	`_`, `\_`,
	"`", "\\`",
	`[`, `\[`,
	`]`, `\]`,
	`<`, `\<`,
	`>`, `\>`,
	`&`, `\&`,
	`#`, `\#`,
)

// Text that would otherwise open an ordered list or a bullet.
var (
	orderedMarker = regexp.MustCompile(`^(\d+)([.)])(\s|$)`)
	bulletMarker  = regexp.MustCompile(`^([-+])(\s|$)`)
)

func mdText(s string) string {
	s = mdEscaper.Replace(s)
	s = orderedMarker.ReplaceAllString(s, `$1\$2$3`)
	return bulletMarker.ReplaceAllString(s, `\$1$2`)
}

// Markdown writes the title as a level-one heading followed by the outline
// as a nested bullet list. Each item ends with its page, e.g. "(p. 3)".
func Markdown(w io.Writer, doc outline.Document) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %s\n", mdText(doc.Title))

	tree := doctree.FromDocument(doc)
	if len(tree.Children) > 0 {
		bw.WriteString("\n")
	}
	tree.Walk(func(n *doctree.DocNode, depth int, _ []string) {
		fmt.Fprintf(bw, "%s- %s (p. %d)\n", strings.Repeat("  ", depth), mdText(n.Title), n.Page)
	})

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}
