// FILE: tomlmap/order.go
package tomlmap

import (
	"cmp"
	"slices"
)

// sortNode carries a converted field through ordering.
type sortNode struct {
	name  string
	value *Node
	order int
}

// orderNodes returns nodes in emission order. Explicitly ordered nodes come
// first in ascending order; the rest all take max+1 and keep their
// declaration order. Without any explicit order the input is returned as is.
func orderNodes(nodes []sortNode) []sortNode {
	maxOrder := unsortedOrder
	for _, n := range nodes {
		maxOrder = max(maxOrder, n.order)
	}
	if maxOrder == unsortedOrder {
		return nodes
	}

	sorted := make([]sortNode, len(nodes))
	for i, n := range nodes {
		if n.order < 0 {
			n.order = maxOrder + 1
		}
		sorted[i] = n
	}

	slices.SortStableFunc(sorted, func(a, b sortNode) int {
		return cmp.Compare(a.order, b.order)
	})
	return sorted
}
