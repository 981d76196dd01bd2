package anchors

import (
	"container/heap"

	mapset "github.com/deckarep/golang-set/v2"
)

// recomputeHeap orders stale anchors by height so that by the time an anchor
// is popped, everything beneath it has already been considered. The
// membership set mirrors the heap and keeps an anchor from being queued
// twice within a stabilization pass.
type recomputeHeap struct {
	entries anchorsByHeight
	members mapset.Set[AnchorBase]
}

type anchorsByHeight []AnchorBase

func (h anchorsByHeight) Len() int { return len(h) }

func (h anchorsByHeight) Less(i, j int) bool {
	if h[i].getHeight() != h[j].getHeight() {
		return h[i].getHeight() < h[j].getHeight()
	}
	return h[i].getID() < h[j].getID()
}

func (h anchorsByHeight) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *anchorsByHeight) Push(x any) { *h = append(*h, x.(AnchorBase)) }

func (h *anchorsByHeight) Pop() any {
	old := *h
	n := len(old)
	entry := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return entry
}

func newRecomputeHeap() *recomputeHeap {
	return &recomputeHeap{
		members: mapset.NewSet[AnchorBase](),
	}
}

func (rh *recomputeHeap) push(anchor AnchorBase) {
	if rh.members.Contains(anchor) {
		return
	}

	rh.members.Add(anchor)
	heap.Push(&rh.entries, anchor)
}

func (rh *recomputeHeap) pop() AnchorBase {
	anchor := heap.Pop(&rh.entries).(AnchorBase)
	rh.members.Remove(anchor)
	return anchor
}

func (rh *recomputeHeap) contains(anchor AnchorBase) bool {
	return rh.members.Contains(anchor)
}

func (rh *recomputeHeap) len() int {
	return len(rh.entries)
}

func (rh *recomputeHeap) clear() {
	rh.entries = rh.entries[:0]
	rh.members.Clear()
}
