// Package race counts the ways to beat boat race records.
//
// Holding the button for p of a race's time units leaves time-p units of
// travel at speed p, so the distance covered is p*(time-p).
package race

import (
	"errors"

	"github.com/johncgriffin/overflow"
)

var (
	ErrNoRaces  = errors.New("no races")
	ErrOverflow = errors.New("product overflows int64")
)

type Race struct {
	Time   int64
	Record int64
}

func (r Race) Count() int64 {
	return Count(r.Time, r.Record)
}

// Count returns how many press times p in [0, time] travel strictly further
// than record. Negative arguments are treated as zero.
func Count(time, record int64) int64 {
	if time <= 0 {
		return 0
	}
	if record < 0 {
		record = 0
	}
	half := time / 2
	if !beats(half, time, record) {
		return 0
	}
	// smallest winning press time in [0, half]; beats(half) is known true
	lo, hi := int64(0), half
	for lo < hi {
		mid := lo + (hi-lo)/2
		if beats(mid, time, record) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	// winners are exactly [lo, time-lo]
	return time - 2*lo + 1
}

func beats(press, time, record int64) bool {
	d, ok := overflow.Mul64(press, time-press)
	if !ok {
		return true
	}
	return d > record
}

// Product multiplies the per-race counts.
func Product(counts []int64) (int64, error) {
	if len(counts) == 0 {
		return 0, ErrNoRaces
	}
	res := int64(1)
	for i := range counts {
		var ok bool
		res, ok = overflow.Mul64(res, counts[i])
		if !ok {
			return 0, ErrOverflow
		}
	}
	return res, nil
}
