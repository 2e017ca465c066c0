package model

import "strings"

// Path represents a file system path.
type Path string

// NodePath is the ordered list of titles and labels from the document root to a node.
type NodePath []string

// Append returns a new path extended by segment. The receiver is never modified, so
// sibling branches of a traversal cannot observe each other's segments.
func (p NodePath) Append(segment string) NodePath {
	next := make(NodePath, len(p), len(p)+1)
	copy(next, p)

	return append(next, segment)
}

// Join renders the path with sep between segments.
func (p NodePath) Join(sep string) string {
	return strings.Join(p, sep)
}

func (p NodePath) String() string {
	return p.Join(" // ")
}
