package core

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/shopspring/decimal"
)

// AmountDecimals is the precision sampled amounts are rounded to.
const AmountDecimals = 6

var (
	ErrEmptyAmountRange error = errors.New("amount range holds no value")
	ErrAmountTooLarge   error = errors.New("amount range exceeds the sampling grid")
)

var maxGridPoint = decimal.NewFromInt(math.MaxInt64)

// IntSource returns a uniform integer in [0, n).
type IntSource interface {
	Int64N(n int64) int64
}

type globalSource struct{}

func (globalSource) Int64N(n int64) int64 {
	return rand.Int64N(n)
}

// RandomAmountSampler picks amounts uniformly from the inclusive range
// [min, max] on a grid of AmountDecimals places.
type RandomAmountSampler struct {
	lo     int64
	hi     int64
	source IntSource
}

// NewRandomAmountSampler uses the process wide generator when source is nil.
func NewRandomAmountSampler(min, max decimal.Decimal, source IntSource) (*RandomAmountSampler, error) {
	lo := min.Shift(AmountDecimals).Ceil()
	hi := max.Shift(AmountDecimals).Floor()
	if !lo.IsPositive() || hi.LessThan(lo) {
		return nil, fmt.Errorf("%w: [%s, %s]", ErrEmptyAmountRange, min, max)
	}
	// lo is at least 1, so hi-lo+1 cannot overflow below this bound.
	if hi.GreaterThan(maxGridPoint) {
		return nil, fmt.Errorf("%w: max %s", ErrAmountTooLarge, max)
	}

	if source == nil {
		source = globalSource{}
	}

	return &RandomAmountSampler{
		lo:     lo.IntPart(),
		hi:     hi.IntPart(),
		source: source,
	}, nil
}

func (s *RandomAmountSampler) Sample() (decimal.Decimal, error) {
	n := s.lo + s.source.Int64N(s.hi-s.lo+1)
	return decimal.New(n, -AmountDecimals), nil
}
