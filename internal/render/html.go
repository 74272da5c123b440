package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mistweaverco/skeleton/internal/view"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

// HTMLNode converts the display tree into an HTML element tree.
// Utility classes become the class attribute.
func HTMLNode(n *view.Node) *html.Node {
	tag := n.Tag()
	el := &html.Node{Type: html.ElementNode, DataAtom: atom.Lookup([]byte(tag)), Data: tag}
	if len(n.Classes) > 0 {
		el.Attr = append(el.Attr, html.Attribute{Key: "class", Val: strings.Join(n.Classes, " ")})
	}
	if n.Text != "" {
		el.AppendChild(&html.Node{Type: html.TextNode, Data: n.Text})
	}
	for _, child := range n.Children {
		el.AppendChild(HTMLNode(child))
	}
	return el
}

// HTMLDocument wraps the tree in a complete HTML5 document.
// The title is the text of the first heading.
func HTMLDocument(root *view.Node) *html.Node {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	htmlEl := element(atom.Html, html.Attribute{Key: "lang", Val: "en"})
	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, html.Attribute{Key: "charset", Val: "utf-8"}))
	head.AppendChild(element(atom.Meta,
		html.Attribute{Key: "name", Val: "viewport"},
		html.Attribute{Key: "content", Val: "width=device-width, initial-scale=1"},
	))
	title := element(atom.Title)
	title.AppendChild(&html.Node{Type: html.TextNode, Data: documentTitle(root)})
	head.AppendChild(title)

	body := element(atom.Body)
	body.AppendChild(HTMLNode(root))

	htmlEl.AppendChild(head)
	htmlEl.AppendChild(body)
	doc.AppendChild(htmlEl)
	return doc
}

func documentTitle(root *view.Node) string {
	title := ""
	root.Walk(func(n *view.Node) bool {
		if title == "" && n.Kind == view.KindHeading {
			title = n.TextContent()
		}
		return title == ""
	})
	return title
}

// WriteHTML renders the tree to w, as a full document or a bare fragment
func WriteHTML(w io.Writer, root *view.Node, document bool) error {
	node := HTMLNode(root)
	if document {
		node = HTMLDocument(root)
	}
	if err := html.Render(w, node); err != nil {
		return fmt.Errorf("rendering html: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}
