package hufftree

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// ErrNotEnoughNodes is returned by Forest.Step when the forest holds fewer
// than two nodes, i.e. when there is nothing left to merge.
var ErrNotEnoughNodes = errors.New("not enough nodes to merge")

// Forest is the working collection of Huffman tree nodes that have not yet
// been merged.  Between calls to Step, the nodes are sorted by ascending
// frequency.
//
// A Forest is not safe for concurrent use.  Callers that drive a Forest from
// more than one goroutine must serialize the calls themselves.
type Forest[T comparable] struct {
	nodes  []*Node[T]
	merges int
}

// NewForest counts the symbols and seeds a Forest with one leaf per distinct
// symbol.
func NewForest[T comparable](symbols []T) *Forest[T] {
	return NewForestFromCounts(CountInOrder(symbols))
}

// NewForestFromString is a convenience wrapper around NewForest for the runes
// of a string.  Every invalid UTF-8 byte in s decodes to utf8.RuneError
// (U+FFFD), so distinct invalid bytes share a single symbol.  Use
// NewForestFromBytes for input that is not valid text.
func NewForestFromString(s string) *Forest[rune] {
	return NewForest([]rune(s))
}

// NewForestFromBytes is a convenience wrapper around NewForest for the bytes
// of b.
func NewForestFromBytes(b []byte) *Forest[byte] {
	return NewForest(b)
}

// NewForestFromCounts seeds a Forest with one leaf per Count.  Each Count
// must have a frequency of at least 1, and each symbol must appear only once.
//
// Leaves of equal frequency keep the order in which they were given.
func NewForestFromCounts[T comparable](counts []Count[T]) *Forest[T] {
	seen := make(map[T]struct{}, len(counts))
	nodes := make([]*Node[T], 0, len(counts))
	for _, c := range counts {
		_, dupe := seen[c.Symbol]
		assert.Assertf(!dupe, "duplicate symbol %v", c.Symbol)
		seen[c.Symbol] = struct{}{}
		nodes = append(nodes, NewLeaf(c.Symbol, c.Freq))
	}
	f := &Forest[T]{nodes: nodes}
	f.sort()
	return f
}

// Step performs one merge: the two nodes of lowest frequency are removed and
// replaced by a new internal node whose children they are.  The node with the
// lower frequency becomes the left child.
//
// Step returns ErrNotEnoughNodes if the forest holds fewer than two nodes.
func (f *Forest[T]) Step() error {
	if f.IsBuilt() {
		return fmt.Errorf("%w: forest has %d node(s)", ErrNotEnoughNodes, len(f.nodes))
	}

	// The merged node goes in at the front, so the stable sort places it
	// ahead of any other node of equal frequency.
	left, right := f.nodes[0], f.nodes[1]
	f.nodes[1] = merge(left, right)
	f.nodes[0] = nil
	f.nodes = f.nodes[1:]
	f.merges++
	f.sort()
	return nil
}

// Build performs merge steps until the forest is fully built.
func (f *Forest[T]) Build() {
	for !f.IsBuilt() {
		err := f.Step()
		assert.Assertf(err == nil, "BUG: Step failed on a forest of %d nodes: %v", len(f.nodes), err)
	}
}

// IsBuilt returns true iff the forest holds fewer than two nodes.
func (f *Forest[T]) IsBuilt() bool {
	return len(f.nodes) < 2
}

// Len returns the number of nodes in the forest.
func (f *Forest[T]) Len() int {
	return len(f.nodes)
}

// Merges returns the number of merge steps performed so far.
func (f *Forest[T]) Merges() int {
	return f.merges
}

// Nodes returns the roots of the forest, in order.  The returned slice is a
// copy; the nodes themselves are immutable.
func (f *Forest[T]) Nodes() []*Node[T] {
	out := make([]*Node[T], len(f.nodes))
	copy(out, f.nodes)
	return out
}

// Root returns the root of the finished tree.  It returns false if the forest
// is empty or not yet built.
func (f *Forest[T]) Root() (*Node[T], bool) {
	if len(f.nodes) != 1 {
		return nil, false
	}
	return f.nodes[0], true
}

// Clone returns an independent copy of this Forest.  Stepping the copy does
// not affect the original.
func (f *Forest[T]) Clone() *Forest[T] {
	return &Forest[T]{nodes: f.Nodes(), merges: f.merges}
}

// Dump writes a programmer-readable debugging dump of the Forest's current
// state to the given writer.  A nil label means fmt.Sprint.
func (f *Forest[T]) Dump(w io.Writer, label func(T) string) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Forest{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", len(f.nodes))
	fmt.Fprintf(&buf, "\tMerges() = %d\n", f.merges)
	fmt.Fprintf(&buf, "\tIsBuilt() = %t\n", f.IsBuilt())
	for index, node := range f.nodes {
		fmt.Fprintf(&buf, "\tNodes()[%d] = %s\n", index, node.Format(label))
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// sort orders the nodes by ascending frequency.  Nodes of equal frequency
// keep their relative order.
func (f *Forest[T]) sort() {
	sort.Stable(byFreq[T](f.nodes))
}

// type byFreq {{{

type byFreq[T comparable] []*Node[T]

func (list byFreq[T]) Len() int {
	return len(list)
}

func (list byFreq[T]) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byFreq[T]) Less(i, j int) bool {
	return list[i].freq < list[j].freq
}

var _ sort.Interface = byFreq[rune](nil)

// }}}
