package mindmap

import (
	"context"
	"math/rand/v2"

	"github.com/deskhub/deskhub/internal/record"
)

// Store persists the mind-map tree as one whole-document record, rewritten
// in full after every mutation.
type Store struct {
	records *record.Store
	palette []string
	base    float64
	decay   float64
}

// NewStore creates a mind-map store. palette is the fixed set of colors
// assigned to new nodes; base and decay are the radial layout constants.
func NewStore(records *record.Store, palette []string, base, decay float64) *Store {
	return &Store{records: records, palette: palette, base: base, decay: decay}
}

// Load returns the persisted tree, or the default single-root tree when no
// record exists or the stored record does not parse.
func (s *Store) Load(ctx context.Context) (*Node, error) {
	var root *Node
	_, err := s.records.Load(ctx, record.KeyMindmap, &root, func() {
		root = DefaultTree()
	})
	if err != nil {
		return nil, err
	}
	if root == nil {
		root = DefaultTree()
	}
	return root, nil
}

// Save rewrites the whole tree record.
func (s *Store) Save(ctx context.Context, root *Node) error {
	return s.records.Save(ctx, record.KeyMindmap, root)
}

// PickColor chooses a color for a new node pseudo-randomly from the
// palette.
func (s *Store) PickColor() string {
	if len(s.palette) == 0 {
		return ""
	}
	return s.palette[rand.IntN(len(s.palette))]
}
