package race

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

func bruteForce(time, record int64) map[int64]struct{} {
	res := make(map[int64]struct{})
	for p := int64(0); p <= time; p++ {
		if p*(time-p) > record {
			res[p] = struct{}{}
		}
	}
	return res
}

func TestIntro(t *testing.T) {
	assert.Equal(t, int64(4), Count(7, 9))
	assert.Equal(t, int64(8), Count(15, 40))
	assert.Equal(t, int64(9), Count(30, 200))
	assert.Equal(t, int64(4), Race{Time: 7, Record: 9}.Count())

	counts := []int64{Count(7, 9), Count(15, 40), Count(30, 200)}
	require.Equal(t, []int64{4, 8, 9}, counts)
	p, err := Product(counts)
	require.NoError(t, err)
	require.Equal(t, int64(288), p)
}

func TestQualifyingPressTimes(t *testing.T) {
	winners := maps.Keys(bruteForce(7, 9))
	slices.Sort(winners)
	require.Equal(t, []int64{2, 3, 4, 5}, winners)
}

func TestMatchesBruteForce(t *testing.T) {
	for time := int64(0); time <= 200; time++ {
		for record := int64(0); record <= time*time/4+1; record += 1 + time/7 {
			require.Equal(t, int64(len(bruteForce(time, record))), Count(time, record),
				"time %d record %d", time, record)
		}
	}
}

func TestSymmetric(t *testing.T) {
	for time := int64(0); time <= 60; time++ {
		for record := int64(0); record <= 900; record += 13 {
			w := bruteForce(time, record)
			for p := range w {
				_, ok := w[time-p]
				require.True(t, ok, "time %d record %d p %d", time, record, p)
			}
		}
	}
}

func TestMonotonicInRecord(t *testing.T) {
	for _, time := range []int64{0, 1, 2, 7, 15, 30, 31, 99} {
		prev := Count(time, 0)
		for record := int64(1); record <= 2500; record++ {
			c := Count(time, record)
			require.LessOrEqual(t, c, prev, "time %d record %d", time, record)
			prev = c
		}
	}
}

func TestZeroAtMaximumDistance(t *testing.T) {
	for time := int64(0); time <= 150; time++ {
		best := (time / 2) * ((time + 1) / 2)
		assert.Equal(t, int64(0), Count(time, best), "time %d", time)
		assert.Equal(t, int64(0), Count(time, best+1), "time %d", time)
		if time >= 2 {
			assert.Greater(t, Count(time, best-1), int64(0), "time %d", time)
		}
	}
}

func TestZeroTime(t *testing.T) {
	for _, record := range []int64{0, 1, 9, 1 << 40} {
		assert.Equal(t, int64(0), Count(0, record))
	}
}

func TestCenters(t *testing.T) {
	// odd time: both centres count once
	assert.Equal(t, int64(2), Count(7, 11))
	// even time: the single centre counts once
	assert.Equal(t, int64(1), Count(30, 224))
	assert.Equal(t, int64(0), Count(30, 225))
}

func TestLargeTime(t *testing.T) {
	require.Equal(t, int64(71503), Count(71530, 940200))
	// only p=0 and p=time fail to move
	require.Equal(t, int64(math.MaxInt64-1), Count(math.MaxInt64, 0))
	require.Equal(t, int64(math.MaxInt64-3), Count(math.MaxInt64, math.MaxInt64-1))
}

func TestProduct(t *testing.T) {
	p, err := Product([]int64{3})
	require.NoError(t, err)
	require.Equal(t, int64(3), p)

	p, err = Product([]int64{4, 0, 9})
	require.NoError(t, err)
	require.Equal(t, int64(0), p)

	_, err = Product(nil)
	require.ErrorIs(t, err, ErrNoRaces)

	_, err = Product([]int64{math.MaxInt64, 2})
	require.ErrorIs(t, err, ErrOverflow)
}
