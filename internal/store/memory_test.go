package store_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gallerie/market-indexer/internal/store"
	"github.com/gallerie/market-indexer/internal/store/schema"
)

func saveSale(t *testing.T, s store.Store, id string, dateCreated int64) {
	t.Helper()
	require.NoError(t, s.SaveFixedPriceSale(context.Background(), &schema.FixedPriceSale{
		ID:              id,
		NftContractID:   "0xc1",
		SellerID:        "0x01",
		UnitPriceInETH:  decimal.Zero,
		AmountSoldInETH: decimal.Zero,
		DateCreated:     dateCreated,
	}))
}

func TestMemoryStore_GetFixedPriceSaleByContract_LatestWins(t *testing.T) {
	s := store.NewMemoryStore()
	ctx := context.Background()

	saveSale(t, s, "0xaa-1", 100)
	saveSale(t, s, "0xbb-0", 200)

	sale, err := s.GetFixedPriceSaleByContract(ctx, "0xc1")
	require.NoError(t, err)
	require.NotNil(t, sale)
	assert.Equal(t, "0xbb-0", sale.ID)

	missing, err := s.GetFixedPriceSaleByContract(ctx, "0xc2")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemoryStore_GetFixedPriceSaleByContract_TieBreaksOnGreatestID(t *testing.T) {
	s := store.NewMemoryStore()
	ctx := context.Background()

	// Equal DateCreated: the lexicographically greatest ID wins, matching the
	// postgres ordering
	saveSale(t, s, "0xaa-0", 100)
	saveSale(t, s, "0xcc-0", 100)
	saveSale(t, s, "0xbb-0", 100)

	sale, err := s.GetFixedPriceSaleByContract(ctx, "0xc1")
	require.NoError(t, err)
	require.NotNil(t, sale)
	assert.Equal(t, "0xcc-0", sale.ID)
}
