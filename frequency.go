package hufftree

// Frequency counts the occurrences of a symbol.  The frequency of an internal
// node is the sum of the frequencies of its leaves.
type Frequency uint64

// Count pairs a symbol with its frequency.
type Count[T comparable] struct {
	Symbol T
	Freq   Frequency
}

// CountFrequencies counts the occurrences of each distinct symbol.  An empty
// input yields an empty map.
func CountFrequencies[T comparable](symbols []T) map[T]Frequency {
	m := make(map[T]Frequency, len(symbols))
	for _, symbol := range symbols {
		m[symbol]++
	}
	return m
}

// CountRunes counts the occurrences of each distinct rune in s.  Invalid UTF-8
// bytes are all counted as utf8.RuneError.
func CountRunes(s string) map[rune]Frequency {
	return CountFrequencies([]rune(s))
}

// CountInOrder is like CountFrequencies, but it returns the counts in order
// of first appearance.
func CountInOrder[T comparable](symbols []T) []Count[T] {
	index := make(map[T]int, len(symbols))
	counts := make([]Count[T], 0, len(symbols))
	for _, symbol := range symbols {
		i, found := index[symbol]
		if !found {
			i = len(counts)
			index[symbol] = i
			counts = append(counts, Count[T]{Symbol: symbol})
		}
		counts[i].Freq++
	}
	return counts
}
