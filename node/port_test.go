package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlot(t *testing.T) {
	assert := assert.New(t)

	var slot Slot
	_, ok := slot.Take()
	assert.False(ok)

	slot.Put(0)
	assert.True(slot.Full())
	value, ok := slot.Peek()
	assert.True(ok)
	assert.Equal(0, value)

	value, ok = slot.Take()
	assert.True(ok)
	assert.Equal(0, value)
	assert.False(slot.Full())
}

func TestLinks(t *testing.T) {
	assert := assert.New(t)

	var links Links
	_, _, ok := links.Only()
	assert.False(ok)

	for dir := range Direction(DIRECTIONS) {
		_, ok := links.Neighbor(dir)
		assert.False(ok, dir.String())
	}

	links.SetNeighbor(DIR_DOWN, 0)
	index, ok := links.Neighbor(DIR_DOWN)
	assert.True(ok)
	assert.Equal(0, index)

	dir, index, ok := links.Only()
	assert.True(ok)
	assert.Equal(DIR_DOWN, dir)
	assert.Equal(0, index)
}

func TestDirection(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(DIR_RIGHT, DIR_LEFT.Opposite())
	assert.Equal(DIR_LEFT, DIR_RIGHT.Opposite())
	assert.Equal(DIR_DOWN, DIR_UP.Opposite())
	assert.Equal(DIR_UP, DIR_DOWN.Opposite())

	for dir := range Direction(DIRECTIONS) {
		back, ok := dir.Register().Direction()
		assert.True(ok)
		assert.Equal(dir, back)
		assert.Equal(dir.String(), dir.Register().String())
	}

	for _, reg := range []Register{REG_ACC, REG_BAK, REG_NIL, REG_ANY, REG_LAST} {
		_, ok := reg.Direction()
		assert.False(ok, reg.String())
	}
}

func TestPortRetry(t *testing.T) {
	assert := assert.New(t)

	writer := NewNode(0)
	reader := NewNode(1)
	fab := testFabric{writer, reader}
	fab.connect(1, 0, DIR_UP)

	// Nothing to retry unless blocked reading.
	assert.False(reader.Retry(fab))

	_, ok := reader.Read(DIR_UP)
	assert.False(ok)
	assert.Equal(STATE_READING, reader.State)
	assert.False(reader.Retry(fab))

	writer.Write(DIR_DOWN, -5)
	assert.True(reader.Retry(fab))
	assert.False(reader.Blocked)
	assert.False(writer.Blocked)
	assert.Equal(STATE_IDLE, writer.State)

	value, ok := reader.Read(DIR_UP)
	assert.True(ok)
	assert.Equal(-5, value)

	reader.ResetPort()
	assert.False(reader.Latch[DIR_UP].Full())
	index, ok := reader.Neighbor(DIR_UP)
	assert.True(ok)
	assert.Equal(0, index)
}
