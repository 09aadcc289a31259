package units

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// EtherDecimals is the number of wei decimal places in one ether.
const EtherDecimals = 18

var ErrFractionalWei error = errors.New("amount is not a whole number of wei")
var ErrNegativeAmount error = errors.New("amount is negative")

// ToWei converts an ether amount into wei. The amount must be non-negative
// and representable as a whole number of wei.
func ToWei(eth decimal.Decimal) (*big.Int, error) {
	if eth.IsNegative() {
		return nil, fmt.Errorf("%s: %w", eth, ErrNegativeAmount)
	}

	wei := eth.Shift(EtherDecimals)
	if !wei.IsInteger() {
		return nil, fmt.Errorf("%s: %w", eth, ErrFractionalWei)
	}

	return wei.BigInt(), nil
}

// FromWei converts a wei amount into ether.
func FromWei(wei *big.Int) decimal.Decimal {
	if wei == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(wei, -EtherDecimals)
}
