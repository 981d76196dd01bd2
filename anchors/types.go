package anchors

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// AnchorBase is the type-erased view of an anchor. The engine's containers
// (observed set, recompute heap, dependant sets) only deal with this
// interface; the value type lives behind the typed *Anchor the caller holds.
// It is sealed: only Anchor implements it.
type AnchorBase interface {
	getID() uint64
	getHeight() int

	compute(stabilizationNumber int)
	rawValue() any

	markNecessary()
	decrementNecessaryCount()
	isNecessary() bool
	isStale() bool

	getRecomputeID() int
	getChangeID() int

	getDependencies() []AnchorBase
	getDependants() mapset.Set[AnchorBase]
	addDependant(dependant AnchorBase)
	removeDependant(dependant AnchorBase)
}
