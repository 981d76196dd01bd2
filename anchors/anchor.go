package anchors

import (
	"fmt"
	"log"
	"reflect"

	"github.com/cespare/xxhash/v2"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
)

// Anchor is a single node in the computation graph. An anchor either holds a
// user-set value (no inputs) or derives its value from its inputs through an
// updater. Values flow through the engine, so reading an up-to-date value
// goes through Get, not the anchor itself.
type Anchor[T any] struct {
	anchorID uuid.UUID
	idHash   uint64

	value  T
	height int

	// For each observe-rooted traversal that reaches this anchor, incremented
	// by 1; decremented again on unobserve. The anchor is necessary while > 0.
	necessary int

	recomputeID  int
	changeID     int
	everComputed bool

	inputs     []AnchorBase
	dependants mapset.Set[AnchorBase]

	updater func(args ...any) T
	equals  func(prev, next T) bool
}

func newAnchor[T any](value T, inputs []AnchorBase, updater func(args ...any) T) *Anchor[T] {
	anchorID := uuid.New()

	height := 0
	for _, input := range inputs {
		if input.getHeight() >= height {
			height = input.getHeight() + 1
		}
	}

	return &Anchor[T]{
		anchorID:     anchorID,
		idHash:       xxhash.Sum64(anchorID[:]),
		value:        value,
		height:       height,
		everComputed: updater == nil,
		inputs:       inputs,
		dependants:   mapset.NewSet[AnchorBase](),
		updater:      updater,
		equals: func(prev, next T) bool {
			return reflect.DeepEqual(prev, next)
		},
	}
}

// WithComparator replaces the equality check used for the change cutoff.
// The default is reflect.DeepEqual; a comparator that always reports false
// makes every recompute count as a change. Must be called before the anchor
// is handed to an engine.
func (a *Anchor[T]) WithComparator(equals func(prev, next T) bool) *Anchor[T] {
	a.equals = equals
	return a
}

func (a *Anchor[T]) String() string {
	return fmt.Sprintf("[ id=%s value=%v height=%d ]", a.anchorID, a.value, a.height)
}

func (a *Anchor[T]) getID() uint64 {
	return a.idHash
}

func (a *Anchor[T]) getHeight() int {
	return a.height
}

func (a *Anchor[T]) rawValue() any {
	return a.value
}

// compute brings the anchor's value up to date for the given stabilization
// number. The recompute ID is stamped before the updater runs, so an updater
// that panics leaves the value and change ID untouched and the anchor is not
// retried until an input changes again.
func (a *Anchor[T]) compute(stabilizationNumber int) {
	if a.recomputeID == stabilizationNumber {
		// don't compute an anchor more than once in the same cycle
		return
	}

	a.recomputeID = stabilizationNumber
	a.everComputed = true

	if a.updater == nil {
		return
	}

	args := make([]any, len(a.inputs))
	for i, input := range a.inputs {
		args[i] = input.rawValue()
	}

	newValue := a.updater(args...)
	if !a.equals(a.value, newValue) {
		a.changeID = stabilizationNumber
		a.value = newValue
	}
}

func (a *Anchor[T]) markNecessary() {
	a.necessary++
}

func (a *Anchor[T]) decrementNecessaryCount() {
	if a.necessary <= 0 {
		log.Printf("anchors: necessary count underflow on %s, observe/unobserve calls are unbalanced", a.anchorID)
		return
	}

	a.necessary--
}

func (a *Anchor[T]) isNecessary() bool {
	return a.necessary > 0
}

// isStale reports whether the anchor needs recomputing: it is necessary and
// either has never been computed or an input changed after its last
// recompute. Value anchors are computed at construction, so they are never
// stale themselves.
func (a *Anchor[T]) isStale() bool {
	if !a.isNecessary() {
		return false
	}

	if !a.everComputed {
		return true
	}

	for _, input := range a.inputs {
		if a.recomputeID < input.getChangeID() {
			return true
		}
	}

	return false
}

func (a *Anchor[T]) getRecomputeID() int {
	return a.recomputeID
}

func (a *Anchor[T]) getChangeID() int {
	return a.changeID
}

func (a *Anchor[T]) getDependencies() []AnchorBase {
	return a.inputs
}

func (a *Anchor[T]) getDependants() mapset.Set[AnchorBase] {
	return a.dependants
}

func (a *Anchor[T]) addDependant(dependant AnchorBase) {
	a.dependants.Add(dependant)
}

func (a *Anchor[T]) removeDependant(dependant AnchorBase) {
	a.dependants.Remove(dependant)
}
