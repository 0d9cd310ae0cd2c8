package hufftree

import (
	"bytes"
	"fmt"
	"io"
)

type edge byte

const (
	rootEdge edge = iota
	leftEdge
	rightEdge
)

var edgeSuffix = [...]string{
	rootEdge:  "",
	leftEdge:  ",edge label={node[midway,left] {1}}",
	rightEdge: ",edge label={node[midway,right] {0}}",
}

// WriteDiagram writes each tree of the forest in the bracket notation of the
// LaTeX "forest" package, one line per node.  Edges are labelled with the bit
// that GenerateCodeTable assigns to them.  A nil label means fmt.Sprint.
func (f *Forest[T]) WriteDiagram(w io.Writer, label func(T) string) (int64, error) {
	if label == nil {
		label = defaultLabel[T]
	}
	var buf bytes.Buffer
	for _, node := range f.nodes {
		writeSubtree(&buf, node, rootEdge, label)
	}
	return buf.WriteTo(w)
}

func writeSubtree[T comparable](buf *bytes.Buffer, node *Node[T], e edge, label func(T) string) {
	if node.IsLeaf() {
		fmt.Fprintf(buf, "[%s%s]\n", label(node.symbol), edgeSuffix[e])
		return
	}
	fmt.Fprintf(buf, "[{}%s\n", edgeSuffix[e])
	writeSubtree(buf, node.left, leftEdge, label)
	writeSubtree(buf, node.right, rightEdge, label)
	buf.WriteString("]\n")
}
