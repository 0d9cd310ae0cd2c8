// Package hufftree builds Huffman trees by the classical greedy merge of the
// two least frequent nodes, and derives a prefix-free code table from the
// finished tree.
//
// The construction is exposed one merge at a time (Forest.Step) as well as
// straight through (Forest.Build), so that a front-end can animate it.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
//
//	Cormen et al., "Introduction to Algorithms", Section 16.3
package hufftree
