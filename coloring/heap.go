package coloring

// conflictItem is a node with its local conflict count at ranking time.
type conflictItem struct {
	node      int
	conflicts int
}

// conflictPQ is a min-heap of conflictItem ordered by (conflicts, node)
// ascending; the node tie-break keeps pops deterministic.
type conflictPQ []conflictItem

// Len returns the number of items in the heap.
func (pq conflictPQ) Len() int { return len(pq) }

// Less orders by fewer conflicts first, then by smaller node ID.
func (pq conflictPQ) Less(i, j int) bool {
	if pq[i].conflicts != pq[j].conflicts {
		return pq[i].conflicts < pq[j].conflicts
	}
	return pq[i].node < pq[j].node
}

// Swap swaps two elements in the heap.
func (pq conflictPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be a conflictItem.
func (pq *conflictPQ) Push(x interface{}) { *pq = append(*pq, x.(conflictItem)) }

// Pop is called by heap.Pop and returns the last element.
func (pq *conflictPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
