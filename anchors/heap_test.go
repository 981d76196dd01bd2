package anchors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func heapFixture() (*recomputeHeap, []AnchorBase) {
	a := Create(1)
	b := Map(a, func(a int) int { return a })
	c := Map(b, func(b int) int { return b })
	d := Map2(b, c, func(b, c int) int { return b + c })

	return newRecomputeHeap(), []AnchorBase{a, b, c, d}
}

func TestHeapPopsInHeightOrder(t *testing.T) {
	rh, nodes := heapFixture()

	// insertion order should not matter
	rh.push(nodes[3])
	rh.push(nodes[0])
	rh.push(nodes[2])
	rh.push(nodes[1])

	heights := make([]int, 0, 4)
	for rh.len() > 0 {
		heights = append(heights, rh.pop().getHeight())
	}
	assert.Equal(t, []int{0, 1, 2, 3}, heights)
}

func TestHeapSuppressesDuplicates(t *testing.T) {
	rh, nodes := heapFixture()

	rh.push(nodes[1])
	rh.push(nodes[1])
	rh.push(nodes[1])

	assert.Equal(t, 1, rh.len())
	assert.True(t, rh.contains(nodes[1]))

	popped := rh.pop()
	assert.Equal(t, nodes[1], popped)
	assert.Equal(t, 0, rh.len())
	assert.False(t, rh.contains(nodes[1]))
}

func TestHeapMembershipMirrorsContents(t *testing.T) {
	rh, nodes := heapFixture()

	for _, node := range nodes {
		rh.push(node)
	}
	assert.Equal(t, len(nodes), rh.members.Cardinality())
	assert.Equal(t, len(nodes), rh.len())

	// popping an anchor frees it for re-queueing
	popped := rh.pop()
	assert.False(t, rh.contains(popped))
	rh.push(popped)
	assert.Equal(t, len(nodes), rh.len())
}

func TestHeapClear(t *testing.T) {
	rh, nodes := heapFixture()

	for _, node := range nodes {
		rh.push(node)
	}
	rh.clear()

	assert.Equal(t, 0, rh.len())
	assert.Equal(t, 0, rh.members.Cardinality())
	for _, node := range nodes {
		assert.False(t, rh.contains(node))
	}
}
