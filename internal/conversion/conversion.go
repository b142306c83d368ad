// Package conversion holds the fixed-point conversions between on-chain
// integer units and the decimal values persisted on entities. All monetary
// math is decimal; float64 is never used for amounts.
package conversion

import (
	"math/big"

	"github.com/shopspring/decimal"
)

const (
	// weiPerETHExp is the base-10 exponent between wei and ETH
	weiPerETHExp = 18
	// basisPointsPerPercentExp is the base-10 exponent between basis points and percent
	basisPointsPerPercentExp = 2
)

// ToETH converts an integer wei amount to a decimal ETH amount.
// A nil amount converts to zero.
func ToETH(wei *big.Int) decimal.Decimal {
	if wei == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(wei, -weiPerETHExp)
}

// ToPercent converts integer basis points to a decimal percent value.
// A nil amount converts to zero.
func ToPercent(basisPoints *big.Int) decimal.Decimal {
	if basisPoints == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(basisPoints, -basisPointsPerPercentExp)
}
