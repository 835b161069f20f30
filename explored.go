package maze

import "github.com/zyedidia/generic/mapset"

// Explored is the closed list: positions that were already expanded, in
// expansion order.
type Explored struct {
	nodes     []SearchNode
	positions mapset.Set[Point]
}

func NewExplored() *Explored {
	return &Explored{positions: mapset.New[Point]()}
}

// Add records n unless its position was already expanded.
func (e *Explored) Add(n SearchNode) bool {
	if e.positions.Has(n.Pos) {
		return false
	}
	e.positions.Put(n.Pos)
	e.nodes = append(e.nodes, n)
	return true
}

func (e *Explored) Contains(p Point) bool { return e.positions.Has(p) }

func (e *Explored) Len() int { return len(e.nodes) }

// Nodes returns a copy of the expanded nodes in expansion order.
func (e *Explored) Nodes() []SearchNode {
	out := make([]SearchNode, len(e.nodes))
	copy(out, e.nodes)
	return out
}
