package sieve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTake(t *testing.T) {
	tests := []struct {
		name string
		it   Iterator[uint32]
		n    int
		want []uint32
	}{
		{"zero", Infinite[uint32](), 0, []uint32{}},
		{"negative", Infinite[uint32](), -3, []uint32{}},
		{"infinite", Infinite[uint32](), 5, []uint32{2, 3, 5, 7, 11}},
		{"bounded shorter than n", Bounded(uint32(12)), 10, []uint32{2, 3, 5, 7, 11}},
		{"bounded longer than n", Bounded(uint32(100)), 3, []uint32{2, 3, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Take(tt.it, tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTakeReportsOverflow(t *testing.T) {
	got, err := Take[uint8](Infinite[uint8](), 100)
	require.ErrorIs(t, err, ErrOverflow)
	assert.Len(t, got, 54)
}

func TestSeqStopsEarly(t *testing.T) {
	it := Bounded(uint64(1000))
	n := 0
	for range Seq[uint64](it) {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
	assert.Equal(t, 168-3, it.Remaining())
}
