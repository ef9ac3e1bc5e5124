// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package tree

import "container/heap"

type item struct {
	node *Node
	seq  uint64
}

// nodeHeap implements heap.Interface. Nodes with equal keys leave the
// heap in the order they have been pushed.
type nodeHeap []item

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.node.key != b.node.key {
		return a.node.key < b.node.key
	}
	return a.seq < b.seq
}

func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(item)) }

func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old) - 1
	x := old[n]
	old[n] = item{}
	*h = old[:n]
	return x
}

// queue is a min-priority queue of nodes.
type queue struct {
	h   nodeHeap
	seq uint64
}

func newQueue(capacity int) *queue {
	return &queue{h: make(nodeHeap, 0, capacity)}
}

func (q *queue) len() int { return len(q.h) }

func (q *queue) push(n *Node) {
	heap.Push(&q.h, item{node: n, seq: q.seq})
	q.seq++
}

func (q *queue) pop() *Node {
	return heap.Pop(&q.h).(item).node
}
