package hufftree

import (
	"container/heap"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodeTable_Dump(t *testing.T) {
	f := makeTextbookForest()
	f.Build()
	table, err := f.GenerateCodeTable()
	if err != nil {
		t.Fatalf("GenerateCodeTable failed: %v", err)
	}

	expectDump := strings.Join([]string{
		"CodeTable{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tEncode(f) = \"1\"\n",
		"\tEncode(e) = \"000\"\n",
		"\tEncode(d) = \"010\"\n",
		"\tEncode(c) = \"011\"\n",
		"\tEncode(b) = \"0010\"\n",
		"\tEncode(a) = \"0011\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = table.Dump(&buf, nil)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestCodeTable_Textbook(t *testing.T) {
	f := makeTextbookForest()
	f.Build()
	table, err := f.GenerateCodeTable()
	require.NoError(t, err)

	freqs := map[string]Frequency{"a": 5, "b": 9, "c": 12, "d": 13, "e": 16, "f": 45}
	require.Equal(t, uint64(224), table.WeightedLength(freqs))
	require.True(t, table.IsPrefixFree())
}

func TestCodeTable_LoremIpsum(t *testing.T) {
	f := NewForestFromString("lorem ipsum")
	f.Build()
	require.Equal(t, 1, f.Len())

	table, err := f.GenerateCodeTable()
	require.NoError(t, err)
	require.Len(t, table, 10)
	require.True(t, table.IsPrefixFree())
	require.Equal(t, uint64(37), table.WeightedLength(CountRunes("lorem ipsum")))
}

func TestCodeTable_NotBuilt(t *testing.T) {
	f := makeTextbookForest()
	for !f.IsBuilt() {
		table, err := f.GenerateCodeTable()
		require.ErrorIs(t, err, ErrTreeNotBuilt)
		require.Nil(t, table)
		require.NoError(t, f.Step())
	}
	_, err := f.GenerateCodeTable()
	require.NoError(t, err)
}

func TestCodeTable_Empty(t *testing.T) {
	f := NewForestFromString("")
	require.True(t, f.IsBuilt())

	table, err := f.GenerateCodeTable()
	require.NoError(t, err)
	require.NotNil(t, table)
	require.Empty(t, table)
	require.Equal(t, 0, table.MinSize())
	require.Equal(t, 0, table.MaxSize())
}

func TestCodeTable_SingleSymbol(t *testing.T) {
	f := NewForestFromString("aaaa")
	f.Build()

	table, err := f.GenerateCodeTable()
	require.NoError(t, err)
	require.Equal(t, CodeTable[rune]{'a': Code{true}}, table)
	require.Equal(t, 1, table['a'].Size())
}

func TestCodeTable_IsPrefixFree(t *testing.T) {
	good := CodeTable[string]{
		"a": MustParseCode("0"),
		"b": MustParseCode("10"),
		"c": MustParseCode("11"),
	}
	require.True(t, good.IsPrefixFree())

	bad := CodeTable[string]{
		"a": MustParseCode("1"),
		"b": MustParseCode("0"),
		"c": MustParseCode("10"),
	}
	require.False(t, bad.IsPrefixFree())
}

func TestCodeTable_Skewed(t *testing.T) {
	// Fibonacci frequencies produce a tree of maximal depth.
	counts := make([]Count[int], 0, 40)
	a, b := Frequency(1), Frequency(1)
	for i := 0; i < 40; i++ {
		counts = append(counts, Count[int]{Symbol: i, Freq: a})
		a, b = b, a+b
	}

	f := NewForestFromCounts(counts)
	f.Build()
	root, ok := f.Root()
	require.True(t, ok)
	require.Equal(t, 39, root.Depth())

	table, err := f.GenerateCodeTable()
	require.NoError(t, err)
	require.Len(t, table, 40)
	require.Equal(t, 1, table.MinSize())
	require.Equal(t, 39, table.MaxSize())
	require.True(t, table.IsPrefixFree())
}

func TestCodeTable_Optimal(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		symbols := make([]byte, 1+rng.Intn(300))
		alphabet := 2 + rng.Intn(30)
		for j := range symbols {
			symbols[j] = byte(rng.Intn(alphabet))
		}
		freqs := CountFrequencies(symbols)

		f := NewForest(symbols)
		f.Build()
		table, err := f.GenerateCodeTable()
		require.NoError(t, err)
		require.Len(t, table, len(freqs))
		require.True(t, table.IsPrefixFree())

		if len(freqs) >= 2 {
			require.Equal(t, optimalCost(freqs), table.WeightedLength(freqs))
		}
	}
}

// optimalCost computes the weighted path length of an optimal code
// independently, as the sum of the merged frequencies.
func optimalCost[T comparable](freqs map[T]Frequency) uint64 {
	h := &uint64Heap{}
	for _, freq := range freqs {
		*h = append(*h, uint64(freq))
	}
	heap.Init(h)

	var cost uint64
	for h.Len() > 1 {
		a := heap.Pop(h).(uint64)
		b := heap.Pop(h).(uint64)
		cost += a + b
		heap.Push(h, a+b)
	}
	return cost
}

type uint64Heap []uint64

func (h uint64Heap) Len() int            { return len(h) }
func (h uint64Heap) Less(i, j int) bool  { return h[i] < h[j] }
func (h uint64Heap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *uint64Heap) Push(x interface{}) { *h = append(*h, x.(uint64)) }
func (h *uint64Heap) Pop() interface{} {
	old := *h
	x := old[len(old)-1]
	*h = old[:len(old)-1]
	return x
}
