package maze

// NodeID indexes a SearchNode inside the arena of the Stepper that created it.
type NodeID int

// NoParent marks the root of the search tree.
const NoParent NodeID = -1

// SearchNode is a position reached through a specific parent chain.
// Nodes are created by the Stepper during expansion and never change.
type SearchNode struct {
	ID     NodeID
	Parent NodeID
	Pos    Point
	G      float64 // accumulated path cost
	H      float64 // heuristic estimate to the goal
}

// Cost is the total estimate G + H used for frontier ordering.
func (n SearchNode) Cost() float64 { return n.G + n.H }

// IsAtPosition compares positions only, ignoring cost and parent.
func (n SearchNode) IsAtPosition(p Point) bool { return n.Pos == p }

// Compare orders nodes by Cost. Equal costs compare as 0; the frontier
// breaks such ties by insertion order.
func (n SearchNode) Compare(other SearchNode) int {
	a, b := n.Cost(), other.Cost()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// nodeArena is append-only storage for the nodes of one search run.
type nodeArena struct {
	nodes []SearchNode
}

func (a *nodeArena) add(parent NodeID, pos Point, g, h float64) SearchNode {
	n := SearchNode{ID: NodeID(len(a.nodes)), Parent: parent, Pos: pos, G: g, H: h}
	a.nodes = append(a.nodes, n)
	return n
}

func (a *nodeArena) get(id NodeID) SearchNode { return a.nodes[id] }

func (a *nodeArena) parentOf(id NodeID) NodeID { return a.nodes[id].Parent }
