package view

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies what a Node displays
type Kind int

const (
	KindContainer Kind = iota
	KindGlyph
	KindHeading
	KindCaption
)

var kindNames = map[Kind]string{
	KindContainer: "container",
	KindGlyph:     "glyph",
	KindHeading:   "heading",
	KindCaption:   "caption",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// MarshalText implements encoding.TextMarshaler
func (k Kind) MarshalText() ([]byte, error) {
	name, ok := kindNames[k]
	if !ok {
		return nil, fmt.Errorf("unknown node kind: %d", int(k))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (k *Kind) UnmarshalText(text []byte) error {
	for kind, name := range kindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown node kind: %q", text)
}

// Node is one element of the display tree.
// Text is the node's own text; descendants carry theirs separately.
type Node struct {
	Kind     Kind     `json:"kind"`
	Level    int      `json:"level,omitempty"`
	Classes  []string `json:"classes,omitempty"`
	Text     string   `json:"text,omitempty"`
	Children []*Node  `json:"children,omitempty"`
}

// Container groups child nodes
func Container(classes []string, children ...*Node) *Node {
	return &Node{Kind: KindContainer, Classes: classes, Children: children}
}

// Glyph is a decorative symbol
func Glyph(symbol string, classes ...string) *Node {
	return &Node{Kind: KindGlyph, Classes: classes, Text: symbol}
}

// Heading is a heading of the given level (1-6)
func Heading(level int, text string, classes ...string) *Node {
	return &Node{Kind: KindHeading, Level: level, Classes: classes, Text: text}
}

// Caption is a line of secondary text
func Caption(text string, classes ...string) *Node {
	return &Node{Kind: KindCaption, Classes: classes, Text: text}
}

// Tag returns the HTML element name for the node
func (n *Node) Tag() string {
	switch n.Kind {
	case KindHeading:
		level := min(max(n.Level, 1), 6)
		return "h" + strconv.Itoa(level)
	case KindCaption:
		return "p"
	default:
		return "div"
	}
}

// HasClass reports whether the node carries the utility class
func (n *Node) HasClass(class string) bool {
	for _, c := range n.Classes {
		if c == class {
			return true
		}
	}
	return false
}

// Walk visits n and its descendants depth-first, parents before children.
// Returning false from fn skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// TextContent returns the text of the subtree, one line per text-bearing node
func (n *Node) TextContent() string {
	var parts []string
	n.Walk(func(node *Node) bool {
		if node.Text != "" {
			parts = append(parts, node.Text)
		}
		return true
	})
	return strings.Join(parts, "\n")
}
