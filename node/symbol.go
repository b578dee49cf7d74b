package node

import (
	"iter"
	"maps"
	"slices"
)

// SymbolTable maps label names to instruction indexes.
type SymbolTable struct {
	label map[string]int
}

// Insert adds a label. Fails if the label is already present.
func (st *SymbolTable) Insert(label string, index int) (err error) {
	if _, ok := st.label[label]; ok {
		err = ErrLabelDuplicate{Label: label}
		return
	}

	if st.label == nil {
		st.label = make(map[string]int, 8)
	}
	st.label[label] = index

	return
}

// Lookup returns the index of a label.
func (st *SymbolTable) Lookup(label string) (index int, ok bool) {
	index, ok = st.label[label]
	return
}

// Len returns the number of labels.
func (st *SymbolTable) Len() int {
	return len(st.label)
}

// All iterates over the labels in name order.
func (st *SymbolTable) All() iter.Seq2[string, int] {
	return func(yield func(label string, index int) bool) {
		for _, label := range slices.Sorted(maps.Keys(st.label)) {
			if !yield(label, st.label[label]) {
				return
			}
		}
	}
}
