package projector

import (
	"math/big"

	"github.com/gallerie/market-indexer/internal/providers/ethereum"
)

// Fallback revenue schedule, in basis points. Used only when the market's
// getFees view reverts; every fallback use is logged at Warn so operators can
// see which rows carry estimated splits.
const (
	// BasisPoints is the full-price denominator of the schedule
	BasisPoints = 10000

	// Primary sales: the protocol takes 15%, the creator keeps the rest
	PrimaryProtocolFeeBasisPoints = 1500
	PrimaryCreatorBasisPoints     = 8500
	PrimarySellerBasisPoints      = 0

	// Secondary sales: 5% protocol, 10% creator royalty, 85% seller
	SecondaryProtocolFeeBasisPoints = 500
	SecondaryCreatorBasisPoints     = 1000
	SecondarySellerBasisPoints      = 8500
)

// estimateFees computes the fallback revenue split for a sale amount
func estimateFees(amount *big.Int, isPrimarySale bool) *ethereum.Fees {
	if isPrimarySale {
		return &ethereum.Fees{
			TotalFees:  portionOf(amount, PrimaryProtocolFeeBasisPoints),
			CreatorRev: portionOf(amount, PrimaryCreatorBasisPoints),
			SellerRev:  portionOf(amount, PrimarySellerBasisPoints),
		}
	}
	return &ethereum.Fees{
		TotalFees:  portionOf(amount, SecondaryProtocolFeeBasisPoints),
		CreatorRev: portionOf(amount, SecondaryCreatorBasisPoints),
		SellerRev:  portionOf(amount, SecondarySellerBasisPoints),
	}
}

// portionOf returns amount * basisPoints / BasisPoints in integer wei
func portionOf(amount *big.Int, basisPoints int64) *big.Int {
	portion := new(big.Int).Mul(amount, big.NewInt(basisPoints))
	return portion.Div(portion, big.NewInt(BasisPoints))
}
