package hufftree

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Node is a node of a Huffman tree.  A Node is either a leaf, which holds a
// symbol and its frequency, or an internal node, which holds the sum of its
// two children's frequencies.  Nodes are immutable once built.
type Node[T comparable] struct {
	symbol T
	freq   Frequency
	left   *Node[T]
	right  *Node[T]
}

// NewLeaf constructs a leaf node.  The frequency must be at least 1.
func NewLeaf[T comparable](symbol T, freq Frequency) *Node[T] {
	assert.Assertf(freq >= 1, "leaf frequency %d < 1", freq)
	return &Node[T]{symbol: symbol, freq: freq}
}

func merge[T comparable](left, right *Node[T]) *Node[T] {
	assert.Assertf(left != nil && right != nil, "merge of nil node")

	// Frequencies are occurrence counts of an in-memory sequence, so the
	// sum cannot overflow unless something has gone badly wrong.
	freq := left.freq + right.freq
	assert.Assertf(freq >= left.freq, "frequency overflow: %d + %d", left.freq, right.freq)

	return &Node[T]{freq: freq, left: left, right: right}
}

// Freq returns the frequency of this node.
func (n *Node[T]) Freq() Frequency {
	return n.freq
}

// IsLeaf returns true iff this node is a leaf.
func (n *Node[T]) IsLeaf() bool {
	return n.left == nil
}

// Symbol returns the symbol of a leaf.  For an internal node, it returns the
// zero value and false.
func (n *Node[T]) Symbol() (T, bool) {
	if !n.IsLeaf() {
		var zero T
		return zero, false
	}
	return n.symbol, true
}

// Left returns the left child of an internal node, or nil for a leaf.
func (n *Node[T]) Left() *Node[T] {
	return n.left
}

// Right returns the right child of an internal node, or nil for a leaf.
func (n *Node[T]) Right() *Node[T] {
	return n.right
}

// Depth returns the height of the subtree rooted at this node.  A leaf has
// depth 0.
func (n *Node[T]) Depth() int {
	if n.IsLeaf() {
		return 0
	}
	l, r := n.left.Depth(), n.right.Depth()
	if l < r {
		l = r
	}
	return l + 1
}

// NumLeaves returns the number of leaves in the subtree rooted at this node.
func (n *Node[T]) NumLeaves() int {
	if n.IsLeaf() {
		return 1
	}
	return n.left.NumLeaves() + n.right.NumLeaves()
}

// Equal returns true iff both subtrees have the same shape, the same
// frequencies, and the same symbols at the leaves.
func (n *Node[T]) Equal(other *Node[T]) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.freq != other.freq || n.IsLeaf() != other.IsLeaf() {
		return false
	}
	if n.IsLeaf() {
		return n.symbol == other.symbol
	}
	return n.left.Equal(other.left) && n.right.Equal(other.right)
}

// Format renders the subtree as an S-expression, e.g. "(14 a:5 b:9)", using
// label to render each symbol.  A nil label means fmt.Sprint.
func (n *Node[T]) Format(label func(T) string) string {
	if label == nil {
		label = defaultLabel[T]
	}
	var sb strings.Builder
	n.format(&sb, label)
	return sb.String()
}

// String returns the string representation of this subtree.
func (n *Node[T]) String() string {
	if n == nil {
		return "<nil>"
	}
	return n.Format(nil)
}

func (n *Node[T]) format(sb *strings.Builder, label func(T) string) {
	if n.IsLeaf() {
		fmt.Fprintf(sb, "%s:%d", label(n.symbol), n.freq)
		return
	}
	fmt.Fprintf(sb, "(%d ", n.freq)
	n.left.format(sb, label)
	sb.WriteByte(' ')
	n.right.format(sb, label)
	sb.WriteByte(')')
}

type nodeJSON[T comparable] struct {
	Symbol *T        `json:"symbol,omitempty"`
	Freq   Frequency `json:"freq"`
	Left   *Node[T]  `json:"left,omitempty"`
	Right  *Node[T]  `json:"right,omitempty"`
}

// MarshalJSON renders the subtree as nested JSON objects.  Leaves carry
// "symbol" and "freq"; internal nodes carry "freq", "left" and "right".
func (n *Node[T]) MarshalJSON() ([]byte, error) {
	out := nodeJSON[T]{Freq: n.freq, Left: n.left, Right: n.right}
	if n.IsLeaf() {
		symbol := n.symbol
		out.Symbol = &symbol
	}
	return json.Marshal(out)
}

var (
	_ fmt.Stringer   = (*Node[rune])(nil)
	_ json.Marshaler = (*Node[rune])(nil)
)

func defaultLabel[T comparable](symbol T) string {
	return fmt.Sprint(symbol)
}

// RuneLabel renders a rune symbol as the character itself.
func RuneLabel(r rune) string {
	return string(r)
}
