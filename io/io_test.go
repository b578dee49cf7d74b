package io

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/tis/node"
)

// testFabric is a minimal unit container, swept in slice order.
type testFabric []node.Unit

func (fab testFabric) Peer(index int) (peer node.Peer, ok bool) {
	if index < 0 || index >= len(fab) {
		return
	}
	return fab[index], true
}

func (fab testFabric) tick() (err error) {
	for _, unit := range fab {
		unit.BeforeTick(fab)
	}
	for _, unit := range fab {
		err = unit.Tick()
		if err != nil {
			return
		}
	}
	for _, unit := range fab {
		unit.AfterTick()
	}
	return
}

func newNode(t *testing.T, id int, text string) *node.Node {
	asm := &node.Assembler{}
	prog, err := asm.Assemble(strings.NewReader(text))
	if err != nil {
		t.Fatal(err)
	}

	n := node.NewNode(id)
	n.Load(prog)

	return n
}

func TestInput(t *testing.T) {
	assert := assert.New(t)

	in := &Input{Name: "IN.A", Values: []int{5, 7}}
	in.SetNeighbor(node.DIR_DOWN, 1)
	n := newNode(t, 1, "MOV UP, ACC")
	n.SetNeighbor(node.DIR_UP, 0)

	fab := testFabric{in, n}

	assert.NoError(fab.tick())
	assert.True(in.Blocked)
	assert.True(n.Blocked)
	assert.True(n.Deadlocked)
	assert.Equal(0, in.Cursor)

	assert.NoError(fab.tick())
	assert.Equal(5, n.Acc)
	assert.Equal(1, in.Cursor)
	assert.False(in.Exhausted)

	assert.NoError(fab.tick())
	assert.NoError(fab.tick())
	assert.Equal(7, n.Acc)
	assert.Equal(2, in.Cursor)
	assert.True(in.Exhausted)

	// Nothing more to send.
	for range 4 {
		assert.NoError(fab.tick())
	}
	assert.Equal(7, n.Acc)
	assert.True(n.Blocked)
	assert.False(in.Blocked)

	in.Reset()
	assert.Equal(0, in.Cursor)
	assert.False(in.Exhausted)
	_, ok := in.Neighbor(node.DIR_DOWN)
	assert.True(ok)
}

func TestInput_Empty(t *testing.T) {
	assert := assert.New(t)

	in := &Input{Name: "IN.A"}
	in.SetNeighbor(node.DIR_DOWN, 1)

	assert.NoError(in.Tick())
	assert.True(in.Exhausted)
	assert.False(in.Blocked)
}

func TestOutput(t *testing.T) {
	assert := assert.New(t)

	n := newNode(t, 0, "MOV 3, DOWN\nHALT")
	n.SetNeighbor(node.DIR_DOWN, 1)
	out := &Output{Name: "OUT.A", Expected: []int{3}}
	out.SetNeighbor(node.DIR_UP, 0)

	fab := testFabric{n, out}

	assert.NoError(fab.tick())
	assert.True(out.Blocked)
	assert.False(out.Complete())

	assert.NoError(fab.tick())
	assert.Equal([]int{3}, out.Values)
	assert.True(out.Complete())
	assert.True(out.Passed())
	assert.Equal(-1, out.Mismatch())
	assert.True(n.Halted)

	out.Reset()
	assert.Empty(out.Values)
	assert.False(out.Complete())
}

func TestOutput_Mismatch(t *testing.T) {
	assert := assert.New(t)

	table := [...]struct {
		expected []int
		values   []int
		mismatch int
		passed   bool
	}{
		{nil, nil, -1, true},
		{[]int{1, 2}, []int{1}, -1, false},
		{[]int{1, 2}, []int{1, 2}, -1, true},
		{[]int{1, 2}, []int{1, 3}, 1, false},
		{[]int{1}, []int{1, 2}, 1, false},
	}

	for n, entry := range table {
		out := &Output{Expected: entry.expected, Values: entry.values}
		assert.Equal(entry.mismatch, out.Mismatch(), "case %d", n)
		assert.Equal(entry.passed, out.Passed(), "case %d", n)
	}
}

func TestUnlinked(t *testing.T) {
	assert := assert.New(t)

	in := &Input{Values: []int{1}}
	assert.ErrorIs(in.Tick(), ErrUnlinked)

	out := &Output{}
	assert.ErrorIs(out.Tick(), ErrUnlinked)

	_, ok := out.Take(node.DIR_UP)
	assert.False(ok)
}
