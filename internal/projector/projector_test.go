package projector_test

import (
	"context"
	"math/big"
	"os"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gallerie/market-indexer/internal/domain"
	"github.com/gallerie/market-indexer/internal/ids"
	"github.com/gallerie/market-indexer/internal/logger"
	"github.com/gallerie/market-indexer/internal/projector"
	"github.com/gallerie/market-indexer/internal/providers/ethereum"
	"github.com/gallerie/market-indexer/internal/store"
	"github.com/gallerie/market-indexer/internal/store/schema"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

var (
	marketAddr   = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	dropMarket   = common.HexToAddress("0x00000000000000000000000000000000000000ab")
	fethAddr     = common.HexToAddress("0x00000000000000000000000000000000000000ac")
	collection   = common.HexToAddress("0x00000000000000000000000000000000000000c1")
	sellerAddr   = common.HexToAddress("0x0000000000000000000000000000000000000001")
	creatorAddr  = common.HexToAddress("0x0000000000000000000000000000000000000002")
	bidderAddr   = common.HexToAddress("0x0000000000000000000000000000000000000003")
	bidder2Addr  = common.HexToAddress("0x0000000000000000000000000000000000000004")
	referrerAddr = common.HexToAddress("0x0000000000000000000000000000000000000005")
	originAddr   = common.HexToAddress("0x00000000000000000000000000000000000000ff")
)

// fakeReader satisfies the contract reader with canned answers; anything not
// seeded reverts, like a read against a self-destructed contract would
type fakeReader struct {
	owners    map[string]common.Address
	creators  map[string]common.Address
	isPrimary map[string]bool
	fees      *ethereum.Fees
}

func newFakeReader() *fakeReader {
	return &fakeReader{
		owners:    make(map[string]common.Address),
		creators:  make(map[string]common.Address),
		isPrimary: make(map[string]bool),
	}
}

func (r *fakeReader) Name(context.Context, common.Address) (string, error) {
	return "", domain.ErrCallReverted
}

func (r *fakeReader) Symbol(context.Context, common.Address) (string, error) {
	return "", domain.ErrCallReverted
}

func (r *fakeReader) TokenURI(context.Context, common.Address, *big.Int) (string, error) {
	return "", domain.ErrCallReverted
}

func (r *fakeReader) OwnerOf(_ context.Context, contract common.Address, tokenID *big.Int) (common.Address, error) {
	owner, ok := r.owners[ids.NftID(contract, tokenID)]
	if !ok {
		return common.Address{}, domain.ErrCallReverted
	}
	return owner, nil
}

func (r *fakeReader) TokenCreator(_ context.Context, contract common.Address, tokenID *big.Int) (common.Address, error) {
	creator, ok := r.creators[ids.NftID(contract, tokenID)]
	if !ok {
		return common.Address{}, domain.ErrCallReverted
	}
	return creator, nil
}

func (r *fakeReader) GetIsPrimary(_ context.Context, _, contract common.Address, tokenID *big.Int) (bool, error) {
	isPrimary, ok := r.isPrimary[ids.NftID(contract, tokenID)]
	if !ok {
		return false, domain.ErrCallReverted
	}
	return isPrimary, nil
}

func (r *fakeReader) GetFees(context.Context, common.Address, common.Address, *big.Int, *big.Int) (*ethereum.Fees, error) {
	if r.fees == nil {
		return nil, domain.ErrCallReverted
	}
	return r.fees, nil
}

func (r *fakeReader) Close() {}

type fixture struct {
	store  store.Store
	reader *fakeReader
	proj   *projector.Projector
}

func setupTest() *fixture {
	reader := newFakeReader()
	dataStore := store.NewMemoryStore()
	return &fixture{
		store:  dataStore,
		reader: reader,
		proj:   projector.New(dataStore, reader, common.Address{}),
	}
}

func newEvent(source domain.EventSource, name string, contract common.Address, tx uint64, logIndex uint, ts int64, payload any) *domain.Event {
	return &domain.Event{
		Envelope: domain.Envelope{
			Contract:  contract,
			TxHash:    common.BigToHash(new(big.Int).SetUint64(tx)),
			LogIndex:  logIndex,
			Timestamp: ts,
			TxOrigin:  originAddr,
		},
		Source:  source,
		Name:    name,
		Payload: payload,
	}
}

func (f *fixture) apply(t *testing.T, event *domain.Event) {
	t.Helper()
	require.NoError(t, f.proj.Apply(context.Background(), event))
}

// mintToken replays a mint Transfer followed by a Minted event so the token
// exists with an owner and a creator
func (f *fixture) mintToken(t *testing.T, tokenID int64, owner, creator common.Address, tx uint64, ts int64) *schema.Nft {
	t.Helper()
	f.apply(t, newEvent(domain.SourceNft, "Transfer", collection, tx, 0, ts, &domain.NftTransferred{
		From:    common.Address{},
		To:      owner,
		TokenID: big.NewInt(tokenID),
	}))
	f.apply(t, newEvent(domain.SourceNft, "Minted", collection, tx, 1, ts, &domain.NftMinted{
		Creator:  creator,
		TokenID:  big.NewInt(tokenID),
		TokenCID: "QmToken",
	}))
	nft, err := f.store.GetNft(context.Background(), ids.NftID(collection, big.NewInt(tokenID)))
	require.NoError(t, err)
	require.NotNil(t, nft)
	return nft
}

func eth(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func weiFromETH(value string) *big.Int {
	return eth(value).Shift(18).BigInt()
}

func assertETH(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, eth(expected).Equal(actual), "expected %s ETH, got %s", expected, actual.String())
}

func TestNftTransfer_MintCreatesToken(t *testing.T) {
	f := setupTest()
	ctx := context.Background()

	nft := f.mintToken(t, 7, sellerAddr, creatorAddr, 1, 100)

	assert.Equal(t, ids.Address(sellerAddr), nft.OwnerID)
	assert.Equal(t, ids.Address(sellerAddr), nft.OwnedOrListedByID)
	assert.True(t, nft.IsFirstSale)
	require.NotNil(t, nft.CreatorID)
	assert.Equal(t, ids.Address(creatorAddr), *nft.CreatorID)
	require.NotNil(t, nft.TokenIPFSPath)
	assert.Equal(t, "QmToken", *nft.TokenIPFSPath)
	require.NotNil(t, nft.MintedTransferID)

	transfer, err := f.store.GetNftTransfer(ctx, *nft.MintedTransferID)
	require.NoError(t, err)
	require.NotNil(t, transfer)
	assert.Equal(t, ids.Address(common.Address{}), transfer.FromID)

	// A mint records Minted, not Transferred
	mintTx := common.BigToHash(big.NewInt(1))
	minted, err := f.store.GetNftHistory(ctx, ids.EventID(mintTx, 1, schema.HistoryMinted))
	require.NoError(t, err)
	assert.NotNil(t, minted)
	transferred, err := f.store.GetNftHistory(ctx, ids.EventID(mintTx, 0, schema.HistoryTransferred))
	require.NoError(t, err)
	assert.Nil(t, transferred)
}

func TestNftTransfer_BurnRecordsHistory(t *testing.T) {
	f := setupTest()
	ctx := context.Background()

	f.mintToken(t, 7, sellerAddr, creatorAddr, 1, 100)
	f.apply(t, newEvent(domain.SourceNft, "Transfer", collection, 2, 0, 200, &domain.NftTransferred{
		From:    sellerAddr,
		To:      common.Address{},
		TokenID: big.NewInt(7),
	}))

	nft, err := f.store.GetNft(ctx, ids.NftID(collection, big.NewInt(7)))
	require.NoError(t, err)
	assert.Equal(t, ids.Address(common.Address{}), nft.OwnerID)

	burned, err := f.store.GetNftHistory(ctx, ids.EventID(common.BigToHash(big.NewInt(2)), 0, schema.HistoryBurned))
	require.NoError(t, err)
	assert.NotNil(t, burned)
}

func TestAuctionLifecycle(t *testing.T) {
	f := setupTest()
	ctx := context.Background()

	f.mintToken(t, 7, sellerAddr, creatorAddr, 1, 100)

	// Listing: the custody transfer and the auction land in one transaction
	f.apply(t, newEvent(domain.SourceNft, "Transfer", collection, 2, 0, 200, &domain.NftTransferred{
		From:    sellerAddr,
		To:      marketAddr,
		TokenID: big.NewInt(7),
	}))
	f.apply(t, newEvent(domain.SourceMarket, "ReserveAuctionCreated", marketAddr, 2, 1, 200, &domain.ReserveAuctionCreated{
		NftContract:       collection,
		TokenID:           big.NewInt(7),
		Seller:            sellerAddr,
		Duration:          big.NewInt(86400),
		ExtensionDuration: big.NewInt(900),
		ReservePrice:      weiFromETH("1"),
		AuctionID:         big.NewInt(1),
	}))

	auctionID := ids.AuctionID(marketAddr, big.NewInt(1))
	auction, err := f.store.GetAuction(ctx, auctionID)
	require.NoError(t, err)
	require.NotNil(t, auction)
	assert.Equal(t, schema.AuctionStatusOpen, auction.Status)
	assertETH(t, "1", auction.ReservePriceInETH)
	// The reader reverted; seller is not the creator so the estimate says
	// secondary
	assert.False(t, auction.IsPrimarySale)

	nft, err := f.store.GetNft(ctx, ids.NftID(collection, big.NewInt(7)))
	require.NoError(t, err)
	assert.Equal(t, ids.Address(sellerAddr), nft.OwnedOrListedByID)
	require.NotNil(t, nft.MostRecentActiveAuctionID)
	assert.Equal(t, auctionID, *nft.MostRecentActiveAuctionID)

	// Listing retracts the custody transfer from the feed
	listTx := common.BigToHash(big.NewInt(2))
	transferred, err := f.store.GetNftHistory(ctx, ids.EventID(listTx, 0, schema.HistoryTransferred))
	require.NoError(t, err)
	assert.Nil(t, transferred)
	listed, err := f.store.GetNftHistory(ctx, ids.EventID(listTx, 1, schema.HistoryListed))
	require.NoError(t, err)
	require.NotNil(t, listed)
	assert.Equal(t, ids.Address(sellerAddr), listed.ActorAccountID)

	// First bid: 1 ETH, fee read reverts, fallback secondary schedule
	f.apply(t, newEvent(domain.SourceMarket, "ReserveAuctionBidPlaced", marketAddr, 3, 0, 300, &domain.ReserveAuctionBidPlaced{
		AuctionID: big.NewInt(1),
		Bidder:    bidderAddr,
		Amount:    weiFromETH("1"),
		EndTime:   big.NewInt(86700),
	}))

	auction, err = f.store.GetAuction(ctx, auctionID)
	require.NoError(t, err)
	require.NotNil(t, auction.HighestBidID)
	firstBidID := *auction.HighestBidID
	assert.Equal(t, int64(1), auction.NumberOfBids)
	assertETH(t, "0.1", *auction.CreatorRevenueInETH)
	assertETH(t, "0.85", *auction.OwnerRevenueInETH)
	assertETH(t, "0.05", *auction.ProtocolRevenueInETH)

	creator, err := f.store.GetCreator(ctx, ids.Address(creatorAddr))
	require.NoError(t, err)
	assertETH(t, "0.1", creator.NetRevenuePendingInETH)
	assertETH(t, "1", creator.NetSalesPendingInETH)
	seller, err := f.store.GetAccount(ctx, ids.Address(sellerAddr))
	require.NoError(t, err)
	assertETH(t, "0.85", seller.NetRevenuePendingInETH)

	// Second bid: 2 ETH from another bidder outbids and re-attributes
	f.apply(t, newEvent(domain.SourceMarket, "ReserveAuctionBidPlaced", marketAddr, 4, 0, 400, &domain.ReserveAuctionBidPlaced{
		AuctionID: big.NewInt(1),
		Bidder:    bidder2Addr,
		Amount:    weiFromETH("2"),
		EndTime:   big.NewInt(86700),
	}))

	auction, err = f.store.GetAuction(ctx, auctionID)
	require.NoError(t, err)
	secondBidID := *auction.HighestBidID
	assert.NotEqual(t, firstBidID, secondBidID)
	assert.Equal(t, int64(2), auction.NumberOfBids)
	assertETH(t, "3", auction.BidVolumeInETH)

	firstBid, err := f.store.GetBid(ctx, firstBidID)
	require.NoError(t, err)
	assert.Equal(t, schema.BidStatusOutbid, firstBid.Status)
	require.NotNil(t, firstBid.OutbidByBidID)
	assert.Equal(t, secondBidID, *firstBid.OutbidByBidID)
	secondBid, err := f.store.GetBid(ctx, secondBidID)
	require.NoError(t, err)
	assert.Equal(t, schema.BidStatusHighest, secondBid.Status)
	require.NotNil(t, secondBid.BidThisOutbidID)
	assert.Equal(t, firstBidID, *secondBid.BidThisOutbidID)
	assert.False(t, secondBid.ExtendedAuction)

	// Pending reflects only the standing bid
	creator, err = f.store.GetCreator(ctx, ids.Address(creatorAddr))
	require.NoError(t, err)
	assertETH(t, "0.2", creator.NetRevenuePendingInETH)
	assertETH(t, "2", creator.NetSalesPendingInETH)
	seller, err = f.store.GetAccount(ctx, ids.Address(sellerAddr))
	require.NoError(t, err)
	assertETH(t, "1.7", seller.NetRevenuePendingInETH)

	// Settlement realizes the split reported on-chain
	f.apply(t, newEvent(domain.SourceNft, "Transfer", collection, 5, 0, 90000, &domain.NftTransferred{
		From:    marketAddr,
		To:      bidder2Addr,
		TokenID: big.NewInt(7),
	}))
	f.apply(t, newEvent(domain.SourceMarket, "ReserveAuctionFinalized", marketAddr, 5, 1, 90000, &domain.ReserveAuctionFinalized{
		AuctionID:  big.NewInt(1),
		Seller:     sellerAddr,
		Bidder:     bidder2Addr,
		TotalFees:  weiFromETH("0.1"),
		CreatorRev: weiFromETH("0.2"),
		SellerRev:  weiFromETH("1.7"),
	}))

	auction, err = f.store.GetAuction(ctx, auctionID)
	require.NoError(t, err)
	assert.Equal(t, schema.AuctionStatusFinalized, auction.Status)
	assertETH(t, "0.1", *auction.NetProtocolFeeInETH)

	winner, err := f.store.GetBid(ctx, secondBidID)
	require.NoError(t, err)
	assert.Equal(t, schema.BidStatusFinalizedWinner, winner.Status)

	// Pending nets back to exactly zero, realized revenue lands
	creator, err = f.store.GetCreator(ctx, ids.Address(creatorAddr))
	require.NoError(t, err)
	assertETH(t, "0", creator.NetRevenuePendingInETH)
	assertETH(t, "0", creator.NetSalesPendingInETH)
	assertETH(t, "0.2", creator.NetRevenueInETH)
	assertETH(t, "2", creator.NetSalesInETH)
	seller, err = f.store.GetAccount(ctx, ids.Address(sellerAddr))
	require.NoError(t, err)
	assertETH(t, "0", seller.NetRevenuePendingInETH)
	assertETH(t, "1.7", seller.NetRevenueInETH)

	nft, err = f.store.GetNft(ctx, ids.NftID(collection, big.NewInt(7)))
	require.NoError(t, err)
	assert.False(t, nft.IsFirstSale)
	assertETH(t, "0", nft.NetRevenuePendingInETH)
	assertETH(t, "0", nft.NetSalesPendingInETH)
	assertETH(t, "2", nft.NetSalesInETH)
	require.NotNil(t, nft.LastSalePriceInETH)
	assertETH(t, "2", *nft.LastSalePriceInETH)
	require.NotNil(t, nft.LatestFinalizedAuctionID)
	assert.Equal(t, auctionID, *nft.LatestFinalizedAuctionID)

	// The Sold row is dated to the auction end, the Settled row to the block
	settleTx := common.BigToHash(big.NewInt(5))
	sold, err := f.store.GetNftHistory(ctx, ids.EventID(settleTx, 1, schema.HistorySold))
	require.NoError(t, err)
	require.NotNil(t, sold)
	assert.Equal(t, int64(86700), sold.Date)
	settled, err := f.store.GetNftHistory(ctx, ids.EventID(settleTx, 1, schema.HistorySettled))
	require.NoError(t, err)
	require.NotNil(t, settled)
	assert.Equal(t, int64(90000), settled.Date)
	// The settlement custody transfer leaves the feed
	transferred, err = f.store.GetNftHistory(ctx, ids.EventID(settleTx, 0, schema.HistoryTransferred))
	require.NoError(t, err)
	assert.Nil(t, transferred)
}

func TestAuctionCanceled(t *testing.T) {
	f := setupTest()
	ctx := context.Background()

	f.mintToken(t, 7, sellerAddr, creatorAddr, 1, 100)
	f.apply(t, newEvent(domain.SourceMarket, "ReserveAuctionCreated", marketAddr, 2, 0, 200, &domain.ReserveAuctionCreated{
		NftContract:       collection,
		TokenID:           big.NewInt(7),
		Seller:            sellerAddr,
		Duration:          big.NewInt(86400),
		ExtensionDuration: big.NewInt(900),
		ReservePrice:      weiFromETH("1"),
		AuctionID:         big.NewInt(1),
	}))
	f.apply(t, newEvent(domain.SourceMarket, "ReserveAuctionCanceled", marketAddr, 3, 0, 300, &domain.ReserveAuctionCanceled{
		AuctionID: big.NewInt(1),
	}))

	auction, err := f.store.GetAuction(ctx, ids.AuctionID(marketAddr, big.NewInt(1)))
	require.NoError(t, err)
	assert.Equal(t, schema.AuctionStatusCanceled, auction.Status)

	nft, err := f.store.GetNft(ctx, ids.NftID(collection, big.NewInt(7)))
	require.NoError(t, err)
	assert.Nil(t, nft.MostRecentActiveAuctionID)

	unlisted, err := f.store.GetNftHistory(ctx, ids.EventID(common.BigToHash(big.NewInt(3)), 0, schema.HistoryUnlisted))
	require.NoError(t, err)
	require.NotNil(t, unlisted)
	assert.Equal(t, ids.Address(sellerAddr), unlisted.ActorAccountID)
}

func TestOffer_LazyExpiry(t *testing.T) {
	f := setupTest()
	ctx := context.Background()

	f.mintToken(t, 7, sellerAddr, creatorAddr, 1, 100)

	f.apply(t, newEvent(domain.SourceMarket, "OfferMade", marketAddr, 2, 0, 200, &domain.OfferMade{
		NftContract: collection,
		TokenID:     big.NewInt(7),
		Buyer:       bidderAddr,
		Amount:      weiFromETH("1"),
		Expiration:  big.NewInt(500),
	}))
	firstOfferID := ids.LogID(common.BigToHash(big.NewInt(2)), 0)

	// The next offer lands after the first one's expiration passed
	f.apply(t, newEvent(domain.SourceMarket, "OfferMade", marketAddr, 3, 0, 900, &domain.OfferMade{
		NftContract: collection,
		TokenID:     big.NewInt(7),
		Buyer:       bidder2Addr,
		Amount:      weiFromETH("2"),
		Expiration:  big.NewInt(2000),
	}))

	first, err := f.store.GetOffer(ctx, firstOfferID)
	require.NoError(t, err)
	assert.Equal(t, schema.OfferStatusExpired, first.Status)
	assert.Nil(t, first.OfferOutbidByID)

	// The expiry row carries the original expiration, not the block time
	expired, err := f.store.GetNftHistory(ctx, ids.EventID(common.BigToHash(big.NewInt(3)), 0, schema.HistoryOfferExpired))
	require.NoError(t, err)
	require.NotNil(t, expired)
	assert.Equal(t, int64(500), expired.Date)

	// The new offer opened as a fresh OfferMade
	made, err := f.store.GetNftHistory(ctx, ids.EventID(common.BigToHash(big.NewInt(3)), 0, schema.HistoryOfferMade))
	require.NoError(t, err)
	assert.NotNil(t, made)
}

func TestOffer_OutbidAndRaise(t *testing.T) {
	f := setupTest()
	ctx := context.Background()

	f.mintToken(t, 7, sellerAddr, creatorAddr, 1, 100)

	f.apply(t, newEvent(domain.SourceMarket, "OfferMade", marketAddr, 2, 0, 200, &domain.OfferMade{
		NftContract: collection,
		TokenID:     big.NewInt(7),
		Buyer:       bidderAddr,
		Amount:      weiFromETH("1"),
		Expiration:  big.NewInt(5000),
	}))
	firstOfferID := ids.LogID(common.BigToHash(big.NewInt(2)), 0)

	// A different buyer outbids before expiry
	f.apply(t, newEvent(domain.SourceMarket, "OfferMade", marketAddr, 3, 0, 300, &domain.OfferMade{
		NftContract: collection,
		TokenID:     big.NewInt(7),
		Buyer:       bidder2Addr,
		Amount:      weiFromETH("1.5"),
		Expiration:  big.NewInt(5000),
	}))
	secondOfferID := ids.LogID(common.BigToHash(big.NewInt(3)), 0)

	first, err := f.store.GetOffer(ctx, firstOfferID)
	require.NoError(t, err)
	assert.Equal(t, schema.OfferStatusOutbid, first.Status)
	require.NotNil(t, first.OfferOutbidByID)
	assert.Equal(t, secondOfferID, *first.OfferOutbidByID)
	second, err := f.store.GetOffer(ctx, secondOfferID)
	require.NoError(t, err)
	require.NotNil(t, second.OutbidOfferID)
	assert.Equal(t, firstOfferID, *second.OutbidOfferID)

	// The same buyer raising their own offer reads as a change
	f.apply(t, newEvent(domain.SourceMarket, "OfferMade", marketAddr, 4, 0, 400, &domain.OfferMade{
		NftContract: collection,
		TokenID:     big.NewInt(7),
		Buyer:       bidder2Addr,
		Amount:      weiFromETH("2"),
		Expiration:  big.NewInt(5000),
	}))
	changed, err := f.store.GetNftHistory(ctx, ids.EventID(common.BigToHash(big.NewInt(4)), 0, schema.HistoryOfferChanged))
	require.NoError(t, err)
	assert.NotNil(t, changed)
}

func TestOfferAccepted_RealizesSale(t *testing.T) {
	f := setupTest()
	ctx := context.Background()

	f.mintToken(t, 7, sellerAddr, creatorAddr, 1, 100)
	f.apply(t, newEvent(domain.SourceMarket, "OfferMade", marketAddr, 2, 0, 200, &domain.OfferMade{
		NftContract: collection,
		TokenID:     big.NewInt(7),
		Buyer:       bidderAddr,
		Amount:      weiFromETH("1"),
		Expiration:  big.NewInt(5000),
	}))
	f.apply(t, newEvent(domain.SourceMarket, "OfferAccepted", marketAddr, 3, 0, 300, &domain.OfferAccepted{
		NftContract: collection,
		TokenID:     big.NewInt(7),
		Buyer:       bidderAddr,
		Seller:      sellerAddr,
		TotalFees:   weiFromETH("0.05"),
		CreatorRev:  weiFromETH("0.1"),
		SellerRev:   weiFromETH("0.85"),
	}))

	offer, err := f.store.GetOffer(ctx, ids.LogID(common.BigToHash(big.NewInt(2)), 0))
	require.NoError(t, err)
	assert.Equal(t, schema.OfferStatusAccepted, offer.Status)
	require.NotNil(t, offer.SellerID)
	assert.Equal(t, ids.Address(sellerAddr), *offer.SellerID)
	assertETH(t, "0.05", *offer.NetProtocolFeeInETH)

	seller, err := f.store.GetAccount(ctx, ids.Address(sellerAddr))
	require.NoError(t, err)
	assertETH(t, "0.85", seller.NetRevenueInETH)

	nft, err := f.store.GetNft(ctx, ids.NftID(collection, big.NewInt(7)))
	require.NoError(t, err)
	assert.False(t, nft.IsFirstSale)
	assertETH(t, "1", nft.NetSalesInETH)
}

func TestBuyNow_RepriceKeepsRowIdentity(t *testing.T) {
	f := setupTest()
	ctx := context.Background()

	f.mintToken(t, 7, sellerAddr, creatorAddr, 1, 100)

	f.apply(t, newEvent(domain.SourceMarket, "BuyPriceSet", marketAddr, 2, 0, 200, &domain.BuyPriceSet{
		NftContract: collection,
		TokenID:     big.NewInt(7),
		Seller:      sellerAddr,
		Price:       weiFromETH("1"),
	}))
	buyNowID := ids.LogID(common.BigToHash(big.NewInt(2)), 0)

	f.apply(t, newEvent(domain.SourceMarket, "BuyPriceSet", marketAddr, 3, 0, 300, &domain.BuyPriceSet{
		NftContract: collection,
		TokenID:     big.NewInt(7),
		Seller:      sellerAddr,
		Price:       weiFromETH("2"),
	}))

	buyNow, err := f.store.GetBuyNow(ctx, buyNowID)
	require.NoError(t, err)
	require.NotNil(t, buyNow)
	assert.Equal(t, schema.BuyNowStatusOpen, buyNow.Status)
	assertETH(t, "2", buyNow.AmountInETH)

	nft, err := f.store.GetNft(ctx, ids.NftID(collection, big.NewInt(7)))
	require.NoError(t, err)
	require.NotNil(t, nft.MostRecentBuyNowID)
	assert.Equal(t, buyNowID, *nft.MostRecentBuyNowID)

	set, err := f.store.GetNftHistory(ctx, ids.EventID(common.BigToHash(big.NewInt(2)), 0, schema.HistoryBuyPriceSet))
	require.NoError(t, err)
	assert.NotNil(t, set)
	changed, err := f.store.GetNftHistory(ctx, ids.EventID(common.BigToHash(big.NewInt(3)), 0, schema.HistoryBuyPriceChanged))
	require.NoError(t, err)
	assert.NotNil(t, changed)
}

func TestBuyNowAccepted_RealizesSale(t *testing.T) {
	f := setupTest()
	ctx := context.Background()

	f.mintToken(t, 7, sellerAddr, creatorAddr, 1, 100)
	f.apply(t, newEvent(domain.SourceMarket, "BuyPriceSet", marketAddr, 2, 0, 200, &domain.BuyPriceSet{
		NftContract: collection,
		TokenID:     big.NewInt(7),
		Seller:      sellerAddr,
		Price:       weiFromETH("1"),
	}))
	f.apply(t, newEvent(domain.SourceMarket, "BuyPriceAccepted", marketAddr, 3, 0, 300, &domain.BuyPriceAccepted{
		NftContract: collection,
		TokenID:     big.NewInt(7),
		Buyer:       bidderAddr,
		Seller:      sellerAddr,
		TotalFees:   weiFromETH("0.05"),
		CreatorRev:  weiFromETH("0.1"),
		SellerRev:   weiFromETH("0.85"),
	}))

	buyNow, err := f.store.GetBuyNow(ctx, ids.LogID(common.BigToHash(big.NewInt(2)), 0))
	require.NoError(t, err)
	assert.Equal(t, schema.BuyNowStatusAccepted, buyNow.Status)
	require.NotNil(t, buyNow.BuyerID)
	assert.Equal(t, ids.Address(bidderAddr), *buyNow.BuyerID)
	assert.False(t, buyNow.IsPrimarySale)

	nft, err := f.store.GetNft(ctx, ids.NftID(collection, big.NewInt(7)))
	require.NoError(t, err)
	assert.False(t, nft.IsFirstSale)
	require.NotNil(t, nft.LastSalePriceInETH)
	assertETH(t, "1", *nft.LastSalePriceInETH)
}

func TestPrivateSale_MergesSharesWhenSellerIsCreator(t *testing.T) {
	f := setupTest()
	ctx := context.Background()

	f.mintToken(t, 7, creatorAddr, creatorAddr, 1, 100)
	f.apply(t, newEvent(domain.SourceMarket, "PrivateSaleFinalized", marketAddr, 2, 0, 200, &domain.PrivateSaleFinalized{
		NftContract: collection,
		TokenID:     big.NewInt(7),
		Seller:      creatorAddr,
		Buyer:       bidderAddr,
		TotalFees:   weiFromETH("0.15"),
		CreatorRev:  weiFromETH("0.8"),
		SellerRev:   weiFromETH("0.05"),
		Deadline:    big.NewInt(9999),
	}))

	history, err := f.store.GetNftHistory(ctx, ids.EventID(common.BigToHash(big.NewInt(2)), 0, schema.HistoryPrivateSale))
	require.NoError(t, err)
	require.NotNil(t, history)
	require.NotNil(t, history.PrivateSaleID)
	require.NotNil(t, history.AmountInETH)
	assertETH(t, "1", *history.AmountInETH)

	creator, err := f.store.GetCreator(ctx, ids.Address(creatorAddr))
	require.NoError(t, err)
	// Creator and seller shares merge on the creator side
	assertETH(t, "0.85", creator.NetRevenueInETH)
	assertETH(t, "1", creator.NetSalesInETH)
	account, err := f.store.GetAccount(ctx, ids.Address(creatorAddr))
	require.NoError(t, err)
	assertETH(t, "0", account.NetRevenueInETH)
}

func TestBuyReferralRouting(t *testing.T) {
	f := setupTest()
	ctx := context.Background()

	f.mintToken(t, 7, sellerAddr, creatorAddr, 1, 100)

	// An open offer and an open buy-now: the referral goes to the buy-now
	f.apply(t, newEvent(domain.SourceMarket, "OfferMade", marketAddr, 2, 0, 200, &domain.OfferMade{
		NftContract: collection,
		TokenID:     big.NewInt(7),
		Buyer:       bidderAddr,
		Amount:      weiFromETH("1"),
		Expiration:  big.NewInt(5000),
	}))
	f.apply(t, newEvent(domain.SourceMarket, "BuyPriceSet", marketAddr, 3, 0, 300, &domain.BuyPriceSet{
		NftContract: collection,
		TokenID:     big.NewInt(7),
		Seller:      sellerAddr,
		Price:       weiFromETH("2"),
	}))
	f.apply(t, newEvent(domain.SourceMarket, "BuyReferralPaid", marketAddr, 4, 0, 400, &domain.BuyReferralPaid{
		NftContract:          collection,
		TokenID:              big.NewInt(7),
		BuyReferrer:          referrerAddr,
		BuyReferrerFee:       weiFromETH("0.01"),
		BuyReferrerSellerFee: weiFromETH("0"),
	}))

	buyNow, err := f.store.GetBuyNow(ctx, ids.LogID(common.BigToHash(big.NewInt(3)), 0))
	require.NoError(t, err)
	require.NotNil(t, buyNow.BuyReferrerID)
	assert.Equal(t, ids.Address(referrerAddr), *buyNow.BuyReferrerID)
	assertETH(t, "0.01", *buyNow.BuyReferrerFeeInETH)

	offer, err := f.store.GetOffer(ctx, ids.LogID(common.BigToHash(big.NewInt(2)), 0))
	require.NoError(t, err)
	assert.Nil(t, offer.BuyReferrerID)

	// With the buy-now gone, the open offer is next in line
	f.apply(t, newEvent(domain.SourceMarket, "BuyPriceCanceled", marketAddr, 5, 0, 500, &domain.BuyPriceCanceled{
		NftContract: collection,
		TokenID:     big.NewInt(7),
	}))
	f.apply(t, newEvent(domain.SourceMarket, "BuyReferralPaid", marketAddr, 6, 0, 600, &domain.BuyReferralPaid{
		NftContract:          collection,
		TokenID:              big.NewInt(7),
		BuyReferrer:          referrerAddr,
		BuyReferrerFee:       weiFromETH("0.02"),
		BuyReferrerSellerFee: weiFromETH("0"),
	}))

	offer, err = f.store.GetOffer(ctx, ids.LogID(common.BigToHash(big.NewInt(2)), 0))
	require.NoError(t, err)
	require.NotNil(t, offer.BuyReferrerID)
	assertETH(t, "0.02", *offer.BuyReferrerFeeInETH)
}

func TestFethEscrow_ReopensDrainedBucket(t *testing.T) {
	f := setupTest()
	ctx := context.Background()

	f.apply(t, newEvent(domain.SourceFeth, "BalanceLocked", fethAddr, 1, 0, 100, &domain.BalanceLocked{
		Account:        bidderAddr,
		Amount:         weiFromETH("1"),
		ValueDeposited: weiFromETH("1"),
		Expiration:     big.NewInt(1000),
	}))

	escrowID := ids.EscrowID(bidderAddr, big.NewInt(1000))
	escrow, err := f.store.GetFethEscrow(ctx, escrowID)
	require.NoError(t, err)
	require.NotNil(t, escrow)
	assertETH(t, "1", escrow.AmountInETH)
	assert.Nil(t, escrow.DateRemoved)

	feth, err := f.store.GetFeth(ctx, ids.Address(bidderAddr))
	require.NoError(t, err)
	assertETH(t, "1", feth.BalanceInETH)

	// Draining to exactly zero closes the bucket
	f.apply(t, newEvent(domain.SourceFeth, "BalanceUnlocked", fethAddr, 2, 0, 200, &domain.BalanceUnlocked{
		Account:    bidderAddr,
		Amount:     weiFromETH("1"),
		Expiration: big.NewInt(1000),
	}))
	escrow, err = f.store.GetFethEscrow(ctx, escrowID)
	require.NoError(t, err)
	assertETH(t, "0", escrow.AmountInETH)
	require.NotNil(t, escrow.DateRemoved)
	assert.Equal(t, int64(200), *escrow.DateRemoved)

	// A later lock on the same expiration reopens the bucket from scratch
	f.apply(t, newEvent(domain.SourceFeth, "BalanceLocked", fethAddr, 3, 0, 300, &domain.BalanceLocked{
		Account:        bidderAddr,
		Amount:         weiFromETH("0.5"),
		ValueDeposited: weiFromETH("0.5"),
		Expiration:     big.NewInt(1000),
	}))
	escrow, err = f.store.GetFethEscrow(ctx, escrowID)
	require.NoError(t, err)
	assertETH(t, "0.5", escrow.AmountInETH)
	assert.Nil(t, escrow.DateRemoved)

	feth, err = f.store.GetFeth(ctx, ids.Address(bidderAddr))
	require.NoError(t, err)
	assertETH(t, "1.5", feth.BalanceInETH)
}

func TestFethTransfer_DepositSkipsZeroAddressDebit(t *testing.T) {
	f := setupTest()
	ctx := context.Background()

	f.apply(t, newEvent(domain.SourceFeth, "Transfer", fethAddr, 1, 0, 100, &domain.FethTransferred{
		From:   common.Address{},
		To:     bidderAddr,
		Amount: weiFromETH("2"),
	}))
	f.apply(t, newEvent(domain.SourceFeth, "Transfer", fethAddr, 2, 0, 200, &domain.FethTransferred{
		From:   bidderAddr,
		To:     bidder2Addr,
		Amount: weiFromETH("0.5"),
	}))

	zeroFeth, err := f.store.GetFeth(ctx, ids.Address(common.Address{}))
	require.NoError(t, err)
	assert.Nil(t, zeroFeth)

	from, err := f.store.GetFeth(ctx, ids.Address(bidderAddr))
	require.NoError(t, err)
	assertETH(t, "1.5", from.BalanceInETH)
	to, err := f.store.GetFeth(ctx, ids.Address(bidder2Addr))
	require.NoError(t, err)
	assertETH(t, "0.5", to.BalanceInETH)
}

func TestPercentSplit_AssignsShareIndices(t *testing.T) {
	f := setupTest()
	ctx := context.Background()

	splitAddr := common.HexToAddress("0x00000000000000000000000000000000000000dd")
	f.apply(t, newEvent(domain.SourcePercentSplit, "PercentSplitCreated", splitAddr, 1, 0, 100, &domain.PercentSplitCreated{
		ContractAddress: splitAddr,
	}))
	f.apply(t, newEvent(domain.SourcePercentSplit, "PercentSplitShare", splitAddr, 1, 1, 100, &domain.PercentSplitShare{
		Recipient:            sellerAddr,
		PercentInBasisPoints: big.NewInt(6000),
	}))
	f.apply(t, newEvent(domain.SourcePercentSplit, "PercentSplitShare", splitAddr, 1, 2, 100, &domain.PercentSplitShare{
		Recipient:            creatorAddr,
		PercentInBasisPoints: big.NewInt(4000),
	}))

	split, err := f.store.GetPercentSplit(ctx, ids.Address(splitAddr))
	require.NoError(t, err)
	assert.Equal(t, int64(2), split.ShareCount)
}

func TestDropSale_MintAndReferral(t *testing.T) {
	f := setupTest()
	ctx := context.Background()

	f.apply(t, newEvent(domain.SourceDropMarket, "CreateFixedPriceSale", dropMarket, 1, 0, 100, &domain.CreateFixedPriceSale{
		NftContract:     collection,
		Seller:          sellerAddr,
		Price:           weiFromETH("0.1"),
		LimitPerAccount: big.NewInt(3),
	}))
	f.apply(t, newEvent(domain.SourceDropMarket, "MintFromFixedPriceDrop", dropMarket, 2, 0, 200, &domain.MintFromFixedPriceDrop{
		NftContract:  collection,
		Buyer:        bidderAddr,
		FirstTokenID: big.NewInt(1),
		Count:        big.NewInt(2),
		TotalFees:    weiFromETH("0.03"),
		CreatorRev:   weiFromETH("0.17"),
	}))
	f.apply(t, newEvent(domain.SourceDropMarket, "BuyReferralPaid", dropMarket, 2, 1, 200, &domain.BuyReferralPaid{
		NftContract:          collection,
		TokenID:              big.NewInt(1),
		BuyReferrer:          referrerAddr,
		BuyReferrerFee:       weiFromETH("0.005"),
		BuyReferrerSellerFee: weiFromETH("0"),
	}))

	sale, err := f.store.GetFixedPriceSale(ctx, ids.LogID(common.BigToHash(big.NewInt(1)), 0))
	require.NoError(t, err)
	require.NotNil(t, sale)
	assert.Equal(t, int64(3), sale.LimitPerAccount)
	assert.Equal(t, int64(2), sale.NumberSold)
	assertETH(t, "0.2", sale.AmountSoldInETH)

	mint, err := f.store.GetFixedPriceSaleMint(ctx, common.BigToHash(big.NewInt(2)).Hex())
	require.NoError(t, err)
	require.NotNil(t, mint)
	assert.Equal(t, int64(2), mint.Count)
	assertETH(t, "0.2", mint.AmountInETH)
	require.NotNil(t, mint.BuyReferrerID)
	assert.Equal(t, ids.Address(referrerAddr), *mint.BuyReferrerID)
	assertETH(t, "0.005", *mint.BuyReferrerFeeInETH)
}

func TestProcess_AdvancesCursor(t *testing.T) {
	f := setupTest()
	ctx := context.Background()

	event := newEvent(domain.SourceNft, "Transfer", collection, 1, 3, 100, &domain.NftTransferred{
		From:    common.Address{},
		To:      sellerAddr,
		TokenID: big.NewInt(7),
	})
	event.BlockNumber = 42
	require.NoError(t, f.proj.Process(ctx, event))

	cursor, err := f.store.GetBlockCursor(ctx, "projector")
	require.NoError(t, err)
	require.NotNil(t, cursor)
	assert.Equal(t, uint64(42), cursor.BlockNumber)
	assert.Equal(t, uint(3), cursor.LogIndex)
}

// replayMarketSession feeds one canonical stream covering a mint, a full
// auction with an outbid chain, an accepted offer, an accepted buy-now and an
// escrow lock
func replayMarketSession(t *testing.T, f *fixture) {
	t.Helper()

	// Token 7 runs through a full auction
	f.mintToken(t, 7, sellerAddr, creatorAddr, 1, 100)
	f.apply(t, newEvent(domain.SourceNft, "Transfer", collection, 2, 0, 200, &domain.NftTransferred{
		From:    sellerAddr,
		To:      marketAddr,
		TokenID: big.NewInt(7),
	}))
	f.apply(t, newEvent(domain.SourceMarket, "ReserveAuctionCreated", marketAddr, 2, 1, 200, &domain.ReserveAuctionCreated{
		NftContract:       collection,
		TokenID:           big.NewInt(7),
		Seller:            sellerAddr,
		Duration:          big.NewInt(86400),
		ExtensionDuration: big.NewInt(900),
		ReservePrice:      weiFromETH("1"),
		AuctionID:         big.NewInt(1),
	}))
	f.apply(t, newEvent(domain.SourceMarket, "ReserveAuctionBidPlaced", marketAddr, 3, 0, 300, &domain.ReserveAuctionBidPlaced{
		AuctionID: big.NewInt(1),
		Bidder:    bidderAddr,
		Amount:    weiFromETH("1"),
		EndTime:   big.NewInt(86700),
	}))
	f.apply(t, newEvent(domain.SourceMarket, "ReserveAuctionBidPlaced", marketAddr, 4, 0, 400, &domain.ReserveAuctionBidPlaced{
		AuctionID: big.NewInt(1),
		Bidder:    bidder2Addr,
		Amount:    weiFromETH("2"),
		EndTime:   big.NewInt(86700),
	}))
	f.apply(t, newEvent(domain.SourceNft, "Transfer", collection, 5, 0, 90000, &domain.NftTransferred{
		From:    marketAddr,
		To:      bidder2Addr,
		TokenID: big.NewInt(7),
	}))
	f.apply(t, newEvent(domain.SourceMarket, "ReserveAuctionFinalized", marketAddr, 5, 1, 90000, &domain.ReserveAuctionFinalized{
		AuctionID:  big.NewInt(1),
		Seller:     sellerAddr,
		Bidder:     bidder2Addr,
		TotalFees:  weiFromETH("0.1"),
		CreatorRev: weiFromETH("0.2"),
		SellerRev:  weiFromETH("1.7"),
	}))

	// Token 8 sells through an offer
	f.mintToken(t, 8, sellerAddr, creatorAddr, 6, 90100)
	f.apply(t, newEvent(domain.SourceMarket, "OfferMade", marketAddr, 7, 0, 90200, &domain.OfferMade{
		NftContract: collection,
		TokenID:     big.NewInt(8),
		Buyer:       bidderAddr,
		Amount:      weiFromETH("1"),
		Expiration:  big.NewInt(95000),
	}))
	f.apply(t, newEvent(domain.SourceMarket, "OfferAccepted", marketAddr, 8, 0, 90300, &domain.OfferAccepted{
		NftContract: collection,
		TokenID:     big.NewInt(8),
		Buyer:       bidderAddr,
		Seller:      sellerAddr,
		TotalFees:   weiFromETH("0.05"),
		CreatorRev:  weiFromETH("0.1"),
		SellerRev:   weiFromETH("0.85"),
	}))

	// Token 9 sells through a buy-now
	f.mintToken(t, 9, sellerAddr, creatorAddr, 9, 90400)
	f.apply(t, newEvent(domain.SourceMarket, "BuyPriceSet", marketAddr, 10, 0, 90500, &domain.BuyPriceSet{
		NftContract: collection,
		TokenID:     big.NewInt(9),
		Seller:      sellerAddr,
		Price:       weiFromETH("1"),
	}))
	f.apply(t, newEvent(domain.SourceMarket, "BuyPriceAccepted", marketAddr, 11, 0, 90600, &domain.BuyPriceAccepted{
		NftContract: collection,
		TokenID:     big.NewInt(9),
		Buyer:       bidderAddr,
		Seller:      sellerAddr,
		TotalFees:   weiFromETH("0.05"),
		CreatorRev:  weiFromETH("0.1"),
		SellerRev:   weiFromETH("0.85"),
	}))

	f.apply(t, newEvent(domain.SourceFeth, "BalanceLocked", fethAddr, 12, 0, 90700, &domain.BalanceLocked{
		Account:        bidderAddr,
		Amount:         weiFromETH("1"),
		ValueDeposited: weiFromETH("1"),
		Expiration:     big.NewInt(999000),
	}))
}

// requireSameRow fetches the same row from both stores and asserts it exists
// and matches field for field
func requireSameRow[T any](t *testing.T, first, second store.Store, fetch func(store.Store) (*T, error)) *T {
	t.Helper()
	rowA, err := fetch(first)
	require.NoError(t, err)
	require.NotNil(t, rowA)
	rowB, err := fetch(second)
	require.NoError(t, err)
	require.Equal(t, rowA, rowB)
	return rowA
}

func TestApply_ReplayFromEmptyYieldsIdenticalState(t *testing.T) {
	ctx := context.Background()

	first := setupTest()
	replayMarketSession(t, first)
	second := setupTest()
	replayMarketSession(t, second)

	for _, tokenID := range []int64{7, 8, 9} {
		id := ids.NftID(collection, big.NewInt(tokenID))
		requireSameRow(t, first.store, second.store, func(s store.Store) (*schema.Nft, error) {
			return s.GetNft(ctx, id)
		})
	}
	for _, addr := range []common.Address{sellerAddr, creatorAddr, bidderAddr, bidder2Addr} {
		id := ids.Address(addr)
		requireSameRow(t, first.store, second.store, func(s store.Store) (*schema.Account, error) {
			return s.GetAccount(ctx, id)
		})
	}
	requireSameRow(t, first.store, second.store, func(s store.Store) (*schema.Creator, error) {
		return s.GetCreator(ctx, ids.Address(creatorAddr))
	})
	requireSameRow(t, first.store, second.store, func(s store.Store) (*schema.NftContract, error) {
		return s.GetNftContract(ctx, ids.Address(collection))
	})
	requireSameRow(t, first.store, second.store, func(s store.Store) (*schema.NftMarketContract, error) {
		return s.GetNftMarketContract(ctx, ids.Address(marketAddr))
	})

	// The auction row pins the winning bid ID, so equal rows mean both runs
	// minted identical bid identities; follow the chain down to the outbid row
	auction := requireSameRow(t, first.store, second.store, func(s store.Store) (*schema.NftMarketAuction, error) {
		return s.GetAuction(ctx, ids.AuctionID(marketAddr, big.NewInt(1)))
	})
	assert.Equal(t, schema.AuctionStatusFinalized, auction.Status)
	require.NotNil(t, auction.HighestBidID)
	winner := requireSameRow(t, first.store, second.store, func(s store.Store) (*schema.NftMarketBid, error) {
		return s.GetBid(ctx, *auction.HighestBidID)
	})
	require.NotNil(t, winner.BidThisOutbidID)
	requireSameRow(t, first.store, second.store, func(s store.Store) (*schema.NftMarketBid, error) {
		return s.GetBid(ctx, *winner.BidThisOutbidID)
	})

	requireSameRow(t, first.store, second.store, func(s store.Store) (*schema.NftMarketOffer, error) {
		return s.GetOffer(ctx, ids.LogID(common.BigToHash(big.NewInt(7)), 0))
	})
	requireSameRow(t, first.store, second.store, func(s store.Store) (*schema.NftMarketBuyNow, error) {
		return s.GetBuyNow(ctx, ids.LogID(common.BigToHash(big.NewInt(10)), 0))
	})
	requireSameRow(t, first.store, second.store, func(s store.Store) (*schema.Feth, error) {
		return s.GetFeth(ctx, ids.Address(bidderAddr))
	})
	requireSameRow(t, first.store, second.store, func(s store.Store) (*schema.FethEscrow, error) {
		return s.GetFethEscrow(ctx, ids.EscrowID(bidderAddr, big.NewInt(999000)))
	})

	for _, historyID := range []string{
		ids.EventID(common.BigToHash(big.NewInt(1)), 1, schema.HistoryMinted),
		ids.EventID(common.BigToHash(big.NewInt(2)), 1, schema.HistoryListed),
		ids.EventID(common.BigToHash(big.NewInt(5)), 1, schema.HistorySold),
		ids.EventID(common.BigToHash(big.NewInt(5)), 1, schema.HistorySettled),
		ids.EventID(common.BigToHash(big.NewInt(7)), 0, schema.HistoryOfferMade),
		ids.EventID(common.BigToHash(big.NewInt(10)), 0, schema.HistoryBuyPriceSet),
	} {
		id := historyID
		requireSameRow(t, first.store, second.store, func(s store.Store) (*schema.NftHistory, error) {
			return s.GetNftHistory(ctx, id)
		})
	}

	// The replayed totals anchor the whole session: 1.7 from the auction plus
	// 0.85 each from the offer and the buy-now
	seller, err := first.store.GetAccount(ctx, ids.Address(sellerAddr))
	require.NoError(t, err)
	assertETH(t, "3.4", seller.NetRevenueInETH)
	assertETH(t, "0", seller.NetRevenuePendingInETH)
}

func TestUnknownAuction_IsSkipped(t *testing.T) {
	f := setupTest()

	// A bid for an auction that predates the stream must not fail
	f.apply(t, newEvent(domain.SourceMarket, "ReserveAuctionBidPlaced", marketAddr, 1, 0, 100, &domain.ReserveAuctionBidPlaced{
		AuctionID: big.NewInt(99),
		Bidder:    bidderAddr,
		Amount:    weiFromETH("1"),
		EndTime:   big.NewInt(1000),
	}))
}
