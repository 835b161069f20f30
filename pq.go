package maze

import (
	"container/heap"
	"sort"

	"github.com/zyedidia/generic/mapset"
)

type PriorityQueueItem struct {
	Node         SearchNode
	Sequence     uint64
	IndexInQueue int
}

// PriorityQueue orders items by node cost, then by insertion sequence.
type PriorityQueue []*PriorityQueueItem

func (queue PriorityQueue) Len() int { return len(queue) }
func (queue PriorityQueue) Less(i, j int) bool {
	if c := queue[i].Node.Compare(queue[j].Node); c != 0 {
		return c < 0
	}
	return queue[i].Sequence < queue[j].Sequence
}
func (queue PriorityQueue) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
	queue[i].IndexInQueue = i
	queue[j].IndexInQueue = j
}

func (queue *PriorityQueue) Push(x any) {
	item := x.(*PriorityQueueItem)
	item.IndexInQueue = len(*queue)
	*queue = append(*queue, item)
}

func (queue *PriorityQueue) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	item.IndexInQueue = -1
	*queue = oldQueue[:n-1]
	return item
}

// Frontier is the open list: discovered positions waiting for expansion.
//
// Membership is by position. A node whose position is already queued is
// rejected, even when it is cheaper than the queued one. Among equal costs
// the earliest pushed node comes out first.
type Frontier struct {
	queue     PriorityQueue
	positions mapset.Set[Point]
	sequence  uint64
}

func NewFrontier() *Frontier {
	return &Frontier{positions: mapset.New[Point]()}
}

// Push queues n unless its position is already present. It reports
// whether n was queued.
func (f *Frontier) Push(n SearchNode) bool {
	if f.positions.Has(n.Pos) {
		return false
	}
	f.positions.Put(n.Pos)
	heap.Push(&f.queue, &PriorityQueueItem{Node: n, Sequence: f.sequence})
	f.sequence++
	return true
}

// PopBest removes and returns the cheapest node. The frontier must not be empty.
func (f *Frontier) PopBest() SearchNode {
	item := heap.Pop(&f.queue).(*PriorityQueueItem)
	f.positions.Remove(item.Node.Pos)
	return item.Node
}

func (f *Frontier) Contains(p Point) bool { return f.positions.Has(p) }

func (f *Frontier) Len() int { return f.queue.Len() }

// Nodes lists the queued nodes in extraction order.
func (f *Frontier) Nodes() []SearchNode {
	items := make([]*PriorityQueueItem, len(f.queue))
	copy(items, f.queue)
	sort.Slice(items, func(i, j int) bool { return PriorityQueue(items).Less(i, j) })
	nodes := make([]SearchNode, len(items))
	for i, item := range items {
		nodes[i] = item.Node
	}
	return nodes
}
