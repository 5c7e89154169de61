// Package mindmap implements the hierarchical mind-map tool: a strict tree
// of nodes mutated with a persistent-update strategy (new nodes only along
// the path from the root to the mutated node) and positioned by a
// deterministic radial layout.
package mindmap

import "errors"

// RootID is the fixed identifier of the root node. The root is created with
// the tree and can never be removed.
const RootID = "root"

// ErrDeleteRoot is returned when a delete targets the root node.
var ErrDeleteRoot = errors.New("the root node cannot be deleted")

// Node is a single entry in the mind-map tree. Children are owned
// exclusively by their parent; child order is insertion order and affects
// angular placement. Positions are derived by Layout and never stored on
// the node.
type Node struct {
	ID       string  `json:"id"`
	Content  string  `json:"content"`
	Color    string  `json:"color,omitempty"`
	Children []*Node `json:"children"`
}

// Point is a node position computed by the radial layout.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DefaultTree returns the single-root tree used when no map has been saved
// yet or the stored record does not parse.
func DefaultTree() *Node {
	return &Node{ID: RootID, Content: "My Mind Map", Children: []*Node{}}
}
