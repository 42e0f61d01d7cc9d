package sieve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestISqrt(t *testing.T) {
	tests := []struct {
		n    uint64
		want uint64
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 1},
		{4, 2},
		{15, 3},
		{16, 4},
		{17, 4},
		{1<<32 - 1, 65535},
		{1 << 32, 65536},
		{(1<<32 - 1) * (1<<32 - 1), 1<<32 - 1},
		{math.MaxUint64, 1<<32 - 1},
		{1 << 62, 1 << 31},
		{1<<62 - 1, 1<<31 - 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ISqrt(tt.n), "ISqrt(%d)", tt.n)
	}
}

func TestISqrtExhaustiveSmall(t *testing.T) {
	for n := uint64(0); n < 100_000; n++ {
		r := ISqrt(n)
		if r*r > n || (r+1)*(r+1) <= n {
			t.Fatalf("ISqrt(%d) = %d", n, r)
		}
	}
}

func TestMaxOf(t *testing.T) {
	assert.Equal(t, uint64(math.MaxUint8), MaxOf[uint8]())
	assert.Equal(t, uint64(math.MaxUint16), MaxOf[uint16]())
	assert.Equal(t, uint64(math.MaxUint32), MaxOf[uint32]())
	assert.Equal(t, uint64(math.MaxUint64), MaxOf[uint64]())
}

func TestNextGrowLimit(t *testing.T) {
	tests := []struct {
		name    string
		limit   uint64
		ceiling uint64
		want    uint64
		wantOK  bool
	}{
		{"empty starts at 16", 0, 1000, 16, true},
		{"small starts at 16", 7, 1000, 16, true},
		{"eight doubles to 16", 8, 1000, 16, true},
		{"doubles", 16, 1000, 32, true},
		{"clamped to ceiling", 600, 1000, 1000, true},
		{"at ceiling", 1000, 1000, 0, false},
		{"tiny ceiling", 0, 10, 10, true},
		{"uint64 range", math.MaxUint64/2 + 1, math.MaxUint64, math.MaxUint64, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := nextGrowLimit(tt.limit, tt.ceiling)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
