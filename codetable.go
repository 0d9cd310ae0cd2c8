package hufftree

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"
)

// ErrTreeNotBuilt is returned by Forest.GenerateCodeTable when the forest
// still holds two or more nodes.
var ErrTreeNotBuilt = errors.New("tree is not built")

// CodeTable maps each symbol of the alphabet to its Code.
type CodeTable[T comparable] map[T]Code

// GenerateCodeTable walks the finished tree and returns the Code of every
// leaf.  Descending into a left child appends a 1 bit, descending into a
// right child appends a 0 bit.
//
// An empty forest yields an empty table.  A forest holding a single leaf
// yields the one-bit code "1" for that leaf, since a zero-length code could
// not be told apart from no code at all.
//
// GenerateCodeTable returns ErrTreeNotBuilt if the forest holds two or more
// nodes.
func (f *Forest[T]) GenerateCodeTable() (CodeTable[T], error) {
	if !f.IsBuilt() {
		return nil, fmt.Errorf("%w: forest has %d nodes", ErrTreeNotBuilt, len(f.nodes))
	}

	table := make(CodeTable[T])
	root, ok := f.Root()
	switch {
	case !ok:
		// pass
	case root.IsLeaf():
		table[root.symbol] = Code{true}
	default:
		walkTree(table, root)
	}
	return table, nil
}

type walkItem[T comparable] struct {
	node *Node[T]
	code Code
	x    byte
}

// walkTree uses an explicit stack instead of recursion to walk the tree, so
// that a badly skewed tree cannot exhaust the goroutine stack.
//
// We use walkItem.x to keep track of where we are in the tree walk:
//
//	x=0 → We just arrived at walkItem for the first time
//	x=1 → We have already processed the left child
//	x=2 → We have already processed both children
func walkTree[T comparable](table CodeTable[T], root *Node[T]) {
	stack := make([]walkItem[T], 0, 16)
	stack = append(stack, walkItem[T]{node: root})

	processChild := func(child *Node[T], code Code) {
		if child.IsLeaf() {
			table[child.symbol] = code
			return
		}
		stack = append(stack, walkItem[T]{node: child, code: code})
	}

	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			processChild(top.node.left, top.code.appendBit(true))
		case 1:
			processChild(top.node.right, top.code.appendBit(false))
		case 2:
			stack[len(stack)-1] = walkItem[T]{}
			stack = stack[:len(stack)-1]
		}
	}
}

// MinSize is the bit length of the shortest code, or 0 for an empty table.
func (table CodeTable[T]) MinSize() int {
	var minSize int
	for _, hc := range table {
		if minSize == 0 || minSize > len(hc) {
			minSize = len(hc)
		}
	}
	return minSize
}

// MaxSize is the bit length of the longest code, or 0 for an empty table.
func (table CodeTable[T]) MaxSize() int {
	var maxSize int
	for _, hc := range table {
		if maxSize < len(hc) {
			maxSize = len(hc)
		}
	}
	return maxSize
}

// WeightedLength returns the sum of freqs[symbol] × len(code) over every
// symbol in the table, i.e. the number of bits needed to encode an input with
// the given frequencies.  Symbols missing from freqs count as 0.
func (table CodeTable[T]) WeightedLength(freqs map[T]Frequency) uint64 {
	var sum uint64
	for symbol, hc := range table {
		sum += uint64(freqs[symbol]) * uint64(len(hc))
	}
	return sum
}

// IsPrefixFree returns true iff no code in the table is a prefix of another.
func (table CodeTable[T]) IsPrefixFree() bool {
	// In lexicographic order, a code that is a prefix of any other code is
	// also a prefix of its immediate successor.
	sorted := make([]string, 0, len(table))
	for _, hc := range table {
		sorted = append(sorted, hc.Bits())
	}
	sort.Strings(sorted)
	for i := 1; i < len(sorted); i++ {
		a, b := sorted[i-1], sorted[i]
		if len(a) <= len(b) && b[:len(a)] == a {
			return false
		}
	}
	return true
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer, ordered by code size and then by code.  A nil label means
// fmt.Sprint.
func (table CodeTable[T]) Dump(w io.Writer, label func(T) string) (int64, error) {
	if label == nil {
		label = defaultLabel[T]
	}

	entries := make(byCode[T], 0, len(table))
	for symbol, hc := range table {
		entries = append(entries, symbolAndCode[T]{symbol, hc.Bits()})
	}
	entries.Sort()

	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", table.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", table.MaxSize())
	for _, item := range entries {
		fmt.Fprintf(&buf, "\tEncode(%s) = %q\n", label(item.symbol), item.bits)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type symbolAndCode + type byCode {{{

type symbolAndCode[T comparable] struct {
	symbol T
	bits   string
}

type byCode[T comparable] []symbolAndCode[T]

func (list byCode[T]) Sort() {
	sort.Sort(list)
}

func (list byCode[T]) Len() int {
	return len(list)
}

func (list byCode[T]) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode[T]) Less(i, j int) bool {
	a, b := list[i].bits, list[j].bits
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

var _ sort.Interface = byCode[rune](nil)

// }}}
