package anchors

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Engine brings observed anchors up to date. Only anchors on a path from an
// observed anchor down to a value anchor are ever recomputed; everything
// else stays lazy. Not safe for concurrent use.
type Engine struct {
	// Current stabilization number. Advances on each Set that changes a
	// value and once per stabilization pass that has work to do, so a
	// recompute ID or change ID pins down exactly when an anchor last moved.
	stabilizationNumber int

	observed mapset.Set[AnchorBase]
	heap     *recomputeHeap
}

func NewEngine() *Engine {
	return &Engine{
		observed: mapset.NewSet[AnchorBase](),
		heap:     newRecomputeHeap(),
	}
}

// Get returns the value of the given anchor. Only an anchor marked observed
// with Observe is guaranteed to be up to date; for anything else the stored
// value is returned as-is, which for a derived anchor that has never been
// computed is the zero value of its type.
func Get[T any](e *Engine, anchor *Anchor[T]) T {
	if e.observed.Contains(anchor) {
		e.stabilize()
	}

	return anchor.value
}

// Set replaces the value of the given anchor. Setting the value it already
// holds is a no-op. Observed anchors that depend on it return the new
// derived value on their next Get. Set is for value anchors made with
// Create; on a derived anchor the value is overwritten and stands until an
// input change recomputes it.
func Set[T any](e *Engine, anchor *Anchor[T], value T) {
	if anchor.equals(anchor.value, value) {
		return
	}

	e.stabilizationNumber++
	anchor.value = value
	anchor.recomputeID = e.stabilizationNumber
	anchor.changeID = e.stabilizationNumber

	if !anchor.isNecessary() {
		return
	}

	for _, dependant := range anchor.dependants.ToSlice() {
		if dependant.isNecessary() {
			e.heap.push(dependant)
		}
	}
}

// Observe marks the given anchors as observed, pinning them and their
// transitive inputs as necessary. Observing an already-observed anchor is a
// no-op.
func (e *Engine) Observe(anchors ...AnchorBase) {
	for _, anchor := range anchors {
		if e.observed.Contains(anchor) {
			continue
		}

		e.observed.Add(anchor)

		visited := mapset.NewSet[AnchorBase]()
		e.observeNode(anchor, visited)
	}
}

// observeNode walks the inputs of current, bumping necessary counts,
// registering dependant back-edges and queueing anything stale. The visited
// set keeps a diamond from being counted twice within one Observe call.
func (e *Engine) observeNode(current AnchorBase, visited mapset.Set[AnchorBase]) {
	if visited.Contains(current) {
		return
	}
	visited.Add(current)

	current.markNecessary()

	if current.isStale() {
		e.heap.push(current)
	}

	for _, dependency := range current.getDependencies() {
		dependency.addDependant(current)
		e.observeNode(dependency, visited)
	}
}

// Unobserve undoes Observe for the given anchors. Unobserving an anchor that
// is not observed is a no-op.
func (e *Engine) Unobserve(anchors ...AnchorBase) {
	for _, anchor := range anchors {
		if !e.observed.Contains(anchor) {
			continue
		}

		e.observed.Remove(anchor)

		visited := mapset.NewSet[AnchorBase]()
		e.unobserveNode(anchor, visited)
	}
}

// unobserveNode mirrors observeNode: every anchor the observe traversal
// counted gets decremented once. A back-edge is only dropped once its
// dependant is no longer necessary, since another observed anchor may still
// rely on the same edge for change propagation.
func (e *Engine) unobserveNode(current AnchorBase, visited mapset.Set[AnchorBase]) {
	if visited.Contains(current) {
		return
	}
	visited.Add(current)

	current.decrementNecessaryCount()

	for _, dependency := range current.getDependencies() {
		e.unobserveNode(dependency, visited)

		if !current.isNecessary() {
			dependency.removeDependant(current)
		}
	}
}

// stabilize drains the recompute heap in increasing height order:
//   - pop the anchor with the smallest height
//   - recompute it, if it is still stale
//   - if its value changed, queue the anchors that depend on it
//
// Dependants always sit higher than the anchor being processed, so pushing
// them mid-drain never disturbs anchors not yet popped, and each anchor is
// recomputed at most once per stabilization number.
func (e *Engine) stabilize() {
	if e.heap.len() == 0 {
		return
	}

	e.stabilizationNumber++

	for e.heap.len() > 0 {
		top := e.heap.pop()

		// Enqueued anchors can stop being stale before they are popped, when
		// the change that queued them cut off at an equal value upstream.
		if !top.isStale() {
			continue
		}

		top.compute(e.stabilizationNumber)

		if top.getChangeID() != e.stabilizationNumber {
			continue
		}

		for _, dependant := range top.getDependants().ToSlice() {
			if dependant.isNecessary() {
				e.heap.push(dependant)
			}
		}
	}
}
