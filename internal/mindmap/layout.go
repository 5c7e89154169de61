package mindmap

import "math"

// Layout assigns a position to every node in the tree. It is a pure
// function of the tree shape and container size: the root sits at the
// container center, a node with k children spreads them at angular steps of
// 2π/k starting from the parent's incoming angle, and the radial distance
// starts at base and shrinks by decay at each depth level. Traversal is
// pre-order so a parent is always placed before its children.
func Layout(root *Node, width, height, base, decay float64) map[string]Point {
	positions := make(map[string]Point, Count(root))
	center := Point{X: width / 2, Y: height / 2}
	positions[root.ID] = center
	place(root, center, 0, base, decay, positions)
	return positions
}

func place(n *Node, at Point, incoming, dist, decay float64, positions map[string]Point) {
	k := len(n.Children)
	if k == 0 {
		return
	}
	step := 2 * math.Pi / float64(k)
	for i, c := range n.Children {
		angle := incoming + float64(i)*step
		p := Point{
			X: at.X + dist*math.Cos(angle),
			Y: at.Y + dist*math.Sin(angle),
		}
		positions[c.ID] = p
		place(c, p, angle, dist*decay, decay, positions)
	}
}
