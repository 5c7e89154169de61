package mindmap

import "github.com/google/uuid"

// Find returns the node with the given id, searching depth-first from n,
// or nil if no such node exists.
func Find(n *Node, id string) *Node {
	if n == nil {
		return nil
	}
	if n.ID == id {
		return n
	}
	for _, c := range n.Children {
		if found := Find(c, id); found != nil {
			return found
		}
	}
	return nil
}

// Count returns the number of nodes reachable from n, including n itself.
func Count(n *Node) int {
	if n == nil {
		return 0
	}
	total := 1
	for _, c := range n.Children {
		total += Count(c)
	}
	return total
}

// AddChild appends a new node with the given content and color to the
// children of parentID and returns the updated tree along with the new
// node's id. If parentID is not present the original tree is returned
// unchanged and the id is empty; callers treat that as a no-op.
func AddChild(root *Node, parentID, content, color string) (*Node, string) {
	child := &Node{
		ID:       uuid.New().String(),
		Content:  content,
		Color:    color,
		Children: []*Node{},
	}
	updated, ok := addChild(root, parentID, child)
	if !ok {
		return root, ""
	}
	return updated, child.ID
}

func addChild(n *Node, parentID string, child *Node) (*Node, bool) {
	if n.ID == parentID {
		cp := *n
		cp.Children = make([]*Node, 0, len(n.Children)+1)
		cp.Children = append(cp.Children, n.Children...)
		cp.Children = append(cp.Children, child)
		return &cp, true
	}
	for i, c := range n.Children {
		updated, ok := addChild(c, parentID, child)
		if !ok {
			continue
		}
		cp := *n
		cp.Children = append([]*Node{}, n.Children...)
		cp.Children[i] = updated
		return &cp, true
	}
	return n, false
}

// DeleteSubtree removes the node with the given id and its entire subtree.
// Deleting the root is rejected with ErrDeleteRoot and leaves the tree
// unchanged. An id not present in the tree is a no-op.
func DeleteSubtree(root *Node, id string) (*Node, error) {
	if id == root.ID {
		return root, ErrDeleteRoot
	}
	updated, _ := deleteIn(root, id)
	return updated, nil
}

// deleteIn filters id out of n's children and recurses into the survivors
// so deletions at any depth are handled in one pass. Subtrees without a
// match are returned as the same instance.
func deleteIn(n *Node, id string) (*Node, bool) {
	changed := false
	kept := make([]*Node, 0, len(n.Children))
	for _, c := range n.Children {
		if c.ID == id {
			changed = true
			continue
		}
		updated, ok := deleteIn(c, id)
		if ok {
			changed = true
		}
		kept = append(kept, updated)
	}
	if !changed {
		return n, false
	}
	cp := *n
	cp.Children = kept
	return &cp, true
}

// Rename replaces the content of the node with the given id, leaving the
// structure untouched. An id not present in the tree is a no-op.
func Rename(root *Node, id, content string) *Node {
	updated, _ := rename(root, id, content)
	return updated
}

func rename(n *Node, id, content string) (*Node, bool) {
	if n.ID == id {
		cp := *n
		cp.Content = content
		return &cp, true
	}
	for i, c := range n.Children {
		updated, ok := rename(c, id, content)
		if !ok {
			continue
		}
		cp := *n
		cp.Children = append([]*Node{}, n.Children...)
		cp.Children[i] = updated
		return &cp, true
	}
	return n, false
}
