package richtext

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Legacy CMS content carries inline `style="text-align: ..."` on block
// elements; the editor only understands its own alignment classes. This
// rewrites the former into the latter so old documents load aligned.

var blockTags = map[atom.Atom]bool{
	atom.P: true, atom.Div: true, atom.Li: true, atom.Blockquote: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
}

// NormalizeAlignment coerces inline text-align styles on block elements into
// ql-align-* classes. Left/start alignment is the default and is simply
// dropped. Unparseable input is returned unchanged.
func NormalizeAlignment(fragment string) string {
	if fragment == "" || !strings.Contains(fragment, "text-align") {
		return fragment
	}

	ctx := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), ctx)
	if err != nil {
		return fragment
	}

	var b strings.Builder
	for _, n := range nodes {
		normalizeNode(n)
		if err := html.Render(&b, n); err != nil {
			return fragment
		}
	}
	return b.String()
}

func normalizeNode(n *html.Node) {
	if n.Type == html.ElementNode && blockTags[n.DataAtom] {
		coerceAlign(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		normalizeNode(c)
	}
}

func coerceAlign(n *html.Node) {
	styleIdx := -1
	align := ""
	for i, a := range n.Attr {
		if a.Key != "style" {
			continue
		}
		styleIdx = i
		rest, v := splitTextAlign(a.Val)
		n.Attr[i].Val = rest
		align = v
		break
	}
	if styleIdx >= 0 && n.Attr[styleIdx].Val == "" {
		n.Attr = append(n.Attr[:styleIdx], n.Attr[styleIdx+1:]...)
	}
	switch align {
	case "center", "right", "justify":
		addClass(n, "ql-align-"+align)
	}
	// left/start/empty: default alignment, nothing to add
}

// splitTextAlign removes the text-align declaration from a style value and
// returns the remaining declarations plus the alignment keyword.
func splitTextAlign(style string) (rest, align string) {
	var kept []string
	for _, decl := range strings.Split(style, ";") {
		d := strings.TrimSpace(decl)
		if d == "" {
			continue
		}
		k, v, ok := strings.Cut(d, ":")
		if ok && strings.EqualFold(strings.TrimSpace(k), "text-align") {
			align = strings.ToLower(strings.TrimSpace(v))
			continue
		}
		kept = append(kept, d)
	}
	return strings.Join(kept, "; "), align
}

func addClass(n *html.Node, class string) {
	for i, a := range n.Attr {
		if a.Key == "class" {
			for _, c := range strings.Fields(a.Val) {
				if c == class {
					return
				}
			}
			n.Attr[i].Val = a.Val + " " + class
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: class})
}
