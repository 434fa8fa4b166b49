package match

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeRanges(t *testing.T) {
	cases := []struct {
		name string
		in   []Range
		want []Range
	}{
		{"empty", nil, nil},
		{"single", []Range{{2, 4}}, []Range{{2, 4}}},
		{"disjoint stays", []Range{{0, 1}, {5, 6}}, []Range{{0, 1}, {5, 6}}},
		{"overlap and touch", []Range{{0, 3}, {2, 5}, {7, 9}, {9, 10}}, []Range{{0, 5}, {7, 10}}},
		{"unsorted input", []Range{{7, 9}, {0, 3}, {9, 10}, {2, 5}}, []Range{{0, 5}, {7, 10}}},
		{"contained", []Range{{0, 10}, {2, 3}, {4, 8}}, []Range{{0, 10}}},
		{"touching chain", []Range{{0, 3}, {3, 5}}, []Range{{0, 5}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MergeRanges(tc.in))
		})
	}
}

func TestMergeRangesDoesNotModifyInput(t *testing.T) {
	in := []Range{{7, 9}, {0, 3}}
	MergeRanges(in)
	assert.Equal(t, []Range{{7, 9}, {0, 3}}, in)
}

func TestMergeRangesIdempotentAndOrderInvariant(t *testing.T) {
	assert := assert.New(t)
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		n := rng.Intn(8)
		in := make([]Range, n)
		for j := range in {
			start := rng.Intn(30)
			in[j] = Range{Start: start, End: start + 1 + rng.Intn(6)}
		}

		once := MergeRanges(in)
		assert.Equal(once, MergeRanges(once))

		shuffled := append([]Range(nil), in...)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		assert.Equal(once, MergeRanges(shuffled))

		for k := 1; k < len(once); k++ {
			assert.Less(once[k-1].End, once[k].Start)
		}
	}
}
