package scraper

import (
	"strings"

	"github.com/tscribe-cli/tscribe/util"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var skipped = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Style:    true,
	atom.Template: true,
}

// Text renders the visible text below root: every text node trimmed,
// empty ones dropped, the rest joined with newlines.
func Text(root *html.Node) string {
	var (
		lines []string
		stack util.Stack[*html.Node]
	)

	pushChildren(&stack, root)
	for {
		n, ok := stack.Pop()
		if !ok {
			break
		}

		switch n.Type {
		case html.TextNode:
			if line := strings.TrimSpace(n.Data); line != "" {
				lines = append(lines, line)
			}
		case html.ElementNode:
			if skipped[n.DataAtom] {
				continue
			}
			pushChildren(&stack, n)
		}
	}

	return strings.Join(lines, "\n")
}

// pushChildren pushes in reverse so the first child is popped first.
func pushChildren(stack *util.Stack[*html.Node], n *html.Node) {
	for c := n.LastChild; c != nil; c = c.PrevSibling {
		stack.Push(c)
	}
}
