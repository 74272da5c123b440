package view

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	ErrNotFound      = errors.New("unable to find a node with the text")
	ErrMultipleFound = errors.New("found multiple nodes with the text")
)

// MatchText returns a case-insensitive matcher for the literal text
func MatchText(text string) *regexp.Regexp {
	return regexp.MustCompile("(?i)" + regexp.QuoteMeta(text))
}

// QueryAllByText returns every node under root whose own text matches pattern
func QueryAllByText(root *Node, pattern *regexp.Regexp) []*Node {
	var matches []*Node
	root.Walk(func(n *Node) bool {
		if n.Text != "" && pattern.MatchString(n.Text) {
			matches = append(matches, n)
		}
		return true
	})
	return matches
}

// GetByText returns the single node under root whose own text matches
// pattern. It fails when there is no match or more than one.
func GetByText(root *Node, pattern *regexp.Regexp) (*Node, error) {
	matches := QueryAllByText(root, pattern)
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, pattern)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("%w: %s (%d matches)", ErrMultipleFound, pattern, len(matches))
	}
}

// Contains reports whether node is attached to the tree rooted at root
func Contains(root, node *Node) bool {
	if node == nil {
		return false
	}
	found := false
	root.Walk(func(n *Node) bool {
		if n == node {
			found = true
		}
		return !found
	})
	return found
}
