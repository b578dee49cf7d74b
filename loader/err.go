package loader

import (
	"github.com/ezrec/tis/translate"
)

var f = translate.From

// ErrNodeMissing is program text found before the first node marker.
type ErrNodeMissing struct {
	LineNo int
}

func (err ErrNodeMissing) Error() string {
	return f("line %d: program text before the first node marker", err.LineNo)
}

// ErrNodeDuplicate is a node marker seen more than once.
type ErrNodeDuplicate struct {
	LineNo int
	Index  int
}

func (err ErrNodeDuplicate) Error() string {
	return f("line %d: node @%d is already defined", err.LineNo, err.Index)
}

// ErrNodeTooLong is a node section with too many program lines.
type ErrNodeTooLong struct {
	LineNo int
	Index  int
}

func (err ErrNodeTooLong) Error() string {
	return f("line %d: node @%d has more than %d lines", err.LineNo, err.Index, MAX_LINES)
}
