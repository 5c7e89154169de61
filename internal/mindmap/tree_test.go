package mindmap

import (
	"encoding/json"
	"testing"
)

// buildTestTree returns a small fixed tree:
//
//	root
//	├── a
//	│   ├── a1
//	│   └── a2
//	└── b
func buildTestTree() *Node {
	return &Node{ID: RootID, Content: "root", Children: []*Node{
		{ID: "a", Content: "A", Children: []*Node{
			{ID: "a1", Content: "A1", Children: []*Node{}},
			{ID: "a2", Content: "A2", Children: []*Node{}},
		}},
		{ID: "b", Content: "B", Children: []*Node{}},
	}}
}

func TestAddChildIncreasesCountByOne(t *testing.T) {
	root := buildTestTree()
	before := Count(root)

	updated, id := AddChild(root, "a1", "x", "#fff")
	if id == "" {
		t.Fatal("expected a new node id")
	}
	if got := Count(updated); got != before+1 {
		t.Errorf("expected count %d, got %d", before+1, got)
	}

	added := Find(updated, id)
	if added == nil {
		t.Fatal("new node not reachable from root")
	}
	if added.Content != "x" {
		t.Errorf("expected content %q, got %q", "x", added.Content)
	}
	if len(Find(updated, "a1").Children) != 1 {
		t.Error("new node not attached to requested parent")
	}
}

func TestAddChildMissingParentIsNoOp(t *testing.T) {
	root := buildTestTree()

	updated, id := AddChild(root, "nope", "x", "")
	if id != "" {
		t.Errorf("expected empty id for missing parent, got %q", id)
	}
	if updated != root {
		t.Error("expected the original tree instance back")
	}
	if Count(updated) != Count(root) {
		t.Error("node count changed on no-op")
	}
}

func TestAddChildSharesSiblingsOffPath(t *testing.T) {
	root := buildTestTree()

	updated, _ := AddChild(root, "a", "x", "")
	if updated == root {
		t.Fatal("expected a structurally new root")
	}
	// The b subtree is off the mutated path and must be the same instance.
	if Find(updated, "b") != Find(root, "b") {
		t.Error("sibling off the mutated path was copied")
	}
	// The original tree is untouched.
	if len(Find(root, "a").Children) != 2 {
		t.Error("original tree was mutated")
	}
}

func TestDeleteSubtreeRemovesAllDescendants(t *testing.T) {
	root := buildTestTree()

	updated, err := DeleteSubtree(root, "a")
	if err != nil {
		t.Fatalf("DeleteSubtree: %v", err)
	}
	for _, id := range []string{"a", "a1", "a2"} {
		if Find(updated, id) != nil {
			t.Errorf("node %q still reachable after delete", id)
		}
	}
	if Find(updated, "b") == nil {
		t.Error("unrelated node removed")
	}
	if Count(updated) != 2 {
		t.Errorf("expected 2 nodes, got %d", Count(updated))
	}
}

func TestDeleteSubtreeAtDepth(t *testing.T) {
	root := buildTestTree()

	updated, err := DeleteSubtree(root, "a2")
	if err != nil {
		t.Fatalf("DeleteSubtree: %v", err)
	}
	if Find(updated, "a2") != nil {
		t.Error("deep node still reachable after delete")
	}
	if len(Find(updated, "a").Children) != 1 {
		t.Error("parent children not filtered")
	}
	// Sibling subtree off the path is shared.
	if Find(updated, "b") != Find(root, "b") {
		t.Error("sibling off the mutated path was copied")
	}
}

func TestDeleteRootRejected(t *testing.T) {
	root := buildTestTree()

	updated, err := DeleteSubtree(root, RootID)
	if err != ErrDeleteRoot {
		t.Fatalf("expected ErrDeleteRoot, got %v", err)
	}
	if updated != root {
		t.Error("tree changed on rejected delete")
	}
}

func TestDeleteMissingIDIsNoOp(t *testing.T) {
	root := buildTestTree()

	updated, err := DeleteSubtree(root, "ghost")
	if err != nil {
		t.Fatalf("DeleteSubtree: %v", err)
	}
	if updated != root {
		t.Error("expected the original tree instance back")
	}
}

func TestRenameReplacesContentOnly(t *testing.T) {
	root := buildTestTree()

	updated := Rename(root, "a1", "renamed")
	if got := Find(updated, "a1").Content; got != "renamed" {
		t.Errorf("expected content %q, got %q", "renamed", got)
	}
	if Count(updated) != Count(root) {
		t.Error("rename changed the structure")
	}
	// Original untouched.
	if Find(root, "a1").Content != "A1" {
		t.Error("original tree was mutated")
	}
}

func TestRenameMissingIDIsNoOp(t *testing.T) {
	root := buildTestTree()

	updated := Rename(root, "ghost", "x")
	if updated != root {
		t.Error("expected the original tree instance back")
	}
}

func TestSerializationRoundTrip(t *testing.T) {
	root := buildTestTree()

	data, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var parsed *Node
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	var walk func(a, b *Node)
	walk = func(a, b *Node) {
		if a.ID != b.ID || a.Content != b.Content {
			t.Errorf("mismatch at %q: got (%q, %q)", a.ID, b.ID, b.Content)
		}
		if len(a.Children) != len(b.Children) {
			t.Fatalf("child count mismatch at %q", a.ID)
		}
		for i := range a.Children {
			walk(a.Children[i], b.Children[i])
		}
	}
	walk(root, parsed)
}
