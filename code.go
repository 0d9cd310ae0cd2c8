package hufftree

import (
	"fmt"
	"strconv"
	"strings"
)

// Code represents a sequence of bits, read from the root of the tree toward
// a leaf.  The first element is the first bit.
type Code []bool

// ParseCode parses a string of '0' and '1' characters into a Code.
func ParseCode(str string) (Code, error) {
	hc := make(Code, len(str))
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case '0':
			hc[i] = false
		case '1':
			hc[i] = true
		default:
			return nil, fmt.Errorf("invalid character %q at offset %d in code %q", str[i], i, str)
		}
	}
	return hc, nil
}

// MustParseCode is like ParseCode, but panics on error.
func MustParseCode(str string) Code {
	hc, err := ParseCode(str)
	if err != nil {
		panic(err)
	}
	return hc
}

// Size returns the number of bits.
func (hc Code) Size() int {
	return len(hc)
}

// HasPrefix returns true iff prefix is a prefix of this Code.
func (hc Code) HasPrefix(prefix Code) bool {
	if len(prefix) > len(hc) {
		return false
	}
	for i, bit := range prefix {
		if hc[i] != bit {
			return false
		}
	}
	return true
}

// Equal returns true iff both Codes hold the same bits.
func (hc Code) Equal(other Code) bool {
	return len(hc) == len(other) && hc.HasPrefix(other)
}

// Bits returns the bits as a string of '0' and '1' characters.
func (hc Code) Bits() string {
	var sb strings.Builder
	sb.Grow(len(hc))
	for _, bit := range hc {
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(hc.Bits())
}

var _ fmt.Stringer = Code(nil)

// appendBit returns hc with bit appended, never sharing the backing array of
// hc.
func (hc Code) appendBit(bit bool) Code {
	out := make(Code, len(hc)+1)
	copy(out, hc)
	out[len(hc)] = bit
	return out
}
