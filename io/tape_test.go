package io

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadTape(t *testing.T) {
	assert := assert.New(t)

	values, err := ReadTape(strings.NewReader("1, 2 -3\n4,5,\n\n"))
	assert.NoError(err)
	assert.Equal([]int{1, 2, -3, 4, 5}, values)

	values, err = ReadTape(strings.NewReader(""))
	assert.NoError(err)
	assert.Empty(values)

	_, err = ReadTape(strings.NewReader("1 2 x3"))
	assert.Equal(ErrTapeValue{Index: 2, Word: "x3"}, err)
}

func TestWriteTape(t *testing.T) {
	assert := assert.New(t)

	var sb strings.Builder
	err := WriteTape(&sb, []int{1, -20, 300})
	assert.NoError(err)
	assert.Equal("1\n-20\n300\n", sb.String())
}
