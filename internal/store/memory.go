package store

import (
	"context"
	"sync"

	"github.com/gallerie/market-indexer/internal/store/schema"
)

// memStore is an in-memory Store used by tests. Rows are stored by value so
// callers never share state with the store through pointers.
type memStore struct {
	mu sync.Mutex

	accounts         map[string]schema.Account
	creators         map[string]schema.Creator
	nftContracts     map[string]schema.NftContract
	nfts             map[string]schema.Nft
	nftTransfers     map[string]schema.NftTransfer
	approvals        map[string]schema.NftAccountApproval
	collections      map[string]schema.CollectionContract
	dropCollections  map[string]schema.NftDropCollectionContract
	marketContracts  map[string]schema.NftMarketContract
	auctions         map[string]schema.NftMarketAuction
	bids             map[string]schema.NftMarketBid
	offers           map[string]schema.NftMarketOffer
	buyNows          map[string]schema.NftMarketBuyNow
	privateSales     map[string]schema.PrivateSale
	fixedPriceSales  map[string]schema.FixedPriceSale
	fixedPriceMints  map[string]schema.FixedPriceSaleMint
	feths            map[string]schema.Feth
	fethEscrows      map[string]schema.FethEscrow
	splits           map[string]schema.PercentSplit
	splitShares      map[string]schema.PercentSplitShare
	histories        map[string]schema.NftHistory
	cursors          map[string]schema.BlockCursor
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() Store {
	return &memStore{
		accounts:        make(map[string]schema.Account),
		creators:        make(map[string]schema.Creator),
		nftContracts:    make(map[string]schema.NftContract),
		nfts:            make(map[string]schema.Nft),
		nftTransfers:    make(map[string]schema.NftTransfer),
		approvals:       make(map[string]schema.NftAccountApproval),
		collections:     make(map[string]schema.CollectionContract),
		dropCollections: make(map[string]schema.NftDropCollectionContract),
		marketContracts: make(map[string]schema.NftMarketContract),
		auctions:        make(map[string]schema.NftMarketAuction),
		bids:            make(map[string]schema.NftMarketBid),
		offers:          make(map[string]schema.NftMarketOffer),
		buyNows:         make(map[string]schema.NftMarketBuyNow),
		privateSales:    make(map[string]schema.PrivateSale),
		fixedPriceSales: make(map[string]schema.FixedPriceSale),
		fixedPriceMints: make(map[string]schema.FixedPriceSaleMint),
		feths:           make(map[string]schema.Feth),
		fethEscrows:     make(map[string]schema.FethEscrow),
		splits:          make(map[string]schema.PercentSplit),
		splitShares:     make(map[string]schema.PercentSplitShare),
		histories:       make(map[string]schema.NftHistory),
		cursors:         make(map[string]schema.BlockCursor),
	}
}

func memGet[T any](mu *sync.Mutex, table map[string]T, id string) (*T, error) {
	mu.Lock()
	defer mu.Unlock()
	row, ok := table[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func memPut[T any](mu *sync.Mutex, table map[string]T, id string, row *T) error {
	mu.Lock()
	defer mu.Unlock()
	table[id] = *row
	return nil
}

func memDelete[T any](mu *sync.Mutex, table map[string]T, id string) error {
	mu.Lock()
	defer mu.Unlock()
	delete(table, id)
	return nil
}

func (s *memStore) GetAccount(_ context.Context, id string) (*schema.Account, error) {
	return memGet(&s.mu, s.accounts, id)
}

func (s *memStore) SaveAccount(_ context.Context, account *schema.Account) error {
	return memPut(&s.mu, s.accounts, account.ID, account)
}

func (s *memStore) GetCreator(_ context.Context, id string) (*schema.Creator, error) {
	return memGet(&s.mu, s.creators, id)
}

func (s *memStore) SaveCreator(_ context.Context, creator *schema.Creator) error {
	return memPut(&s.mu, s.creators, creator.ID, creator)
}

func (s *memStore) GetNftContract(_ context.Context, id string) (*schema.NftContract, error) {
	return memGet(&s.mu, s.nftContracts, id)
}

func (s *memStore) SaveNftContract(_ context.Context, contract *schema.NftContract) error {
	return memPut(&s.mu, s.nftContracts, contract.ID, contract)
}

func (s *memStore) GetNft(_ context.Context, id string) (*schema.Nft, error) {
	return memGet(&s.mu, s.nfts, id)
}

func (s *memStore) SaveNft(_ context.Context, nft *schema.Nft) error {
	return memPut(&s.mu, s.nfts, nft.ID, nft)
}

func (s *memStore) GetNftTransfer(_ context.Context, id string) (*schema.NftTransfer, error) {
	return memGet(&s.mu, s.nftTransfers, id)
}

func (s *memStore) SaveNftTransfer(_ context.Context, transfer *schema.NftTransfer) error {
	return memPut(&s.mu, s.nftTransfers, transfer.ID, transfer)
}

func (s *memStore) SaveNftAccountApproval(_ context.Context, approval *schema.NftAccountApproval) error {
	return memPut(&s.mu, s.approvals, approval.ID, approval)
}

func (s *memStore) DeleteNftAccountApproval(_ context.Context, id string) error {
	return memDelete(&s.mu, s.approvals, id)
}

func (s *memStore) GetCollectionContract(_ context.Context, id string) (*schema.CollectionContract, error) {
	return memGet(&s.mu, s.collections, id)
}

func (s *memStore) SaveCollectionContract(_ context.Context, collection *schema.CollectionContract) error {
	return memPut(&s.mu, s.collections, collection.ID, collection)
}

func (s *memStore) GetNftDropCollectionContract(_ context.Context, id string) (*schema.NftDropCollectionContract, error) {
	return memGet(&s.mu, s.dropCollections, id)
}

func (s *memStore) SaveNftDropCollectionContract(_ context.Context, collection *schema.NftDropCollectionContract) error {
	return memPut(&s.mu, s.dropCollections, collection.ID, collection)
}

func (s *memStore) GetNftMarketContract(_ context.Context, id string) (*schema.NftMarketContract, error) {
	return memGet(&s.mu, s.marketContracts, id)
}

func (s *memStore) SaveNftMarketContract(_ context.Context, market *schema.NftMarketContract) error {
	return memPut(&s.mu, s.marketContracts, market.ID, market)
}

func (s *memStore) GetAuction(_ context.Context, id string) (*schema.NftMarketAuction, error) {
	return memGet(&s.mu, s.auctions, id)
}

func (s *memStore) SaveAuction(_ context.Context, auction *schema.NftMarketAuction) error {
	return memPut(&s.mu, s.auctions, auction.ID, auction)
}

func (s *memStore) GetBid(_ context.Context, id string) (*schema.NftMarketBid, error) {
	return memGet(&s.mu, s.bids, id)
}

func (s *memStore) SaveBid(_ context.Context, bid *schema.NftMarketBid) error {
	return memPut(&s.mu, s.bids, bid.ID, bid)
}

func (s *memStore) GetOffer(_ context.Context, id string) (*schema.NftMarketOffer, error) {
	return memGet(&s.mu, s.offers, id)
}

func (s *memStore) SaveOffer(_ context.Context, offer *schema.NftMarketOffer) error {
	return memPut(&s.mu, s.offers, offer.ID, offer)
}

func (s *memStore) GetBuyNow(_ context.Context, id string) (*schema.NftMarketBuyNow, error) {
	return memGet(&s.mu, s.buyNows, id)
}

func (s *memStore) SaveBuyNow(_ context.Context, buyNow *schema.NftMarketBuyNow) error {
	return memPut(&s.mu, s.buyNows, buyNow.ID, buyNow)
}

func (s *memStore) SavePrivateSale(_ context.Context, sale *schema.PrivateSale) error {
	return memPut(&s.mu, s.privateSales, sale.ID, sale)
}

func (s *memStore) GetFixedPriceSale(_ context.Context, id string) (*schema.FixedPriceSale, error) {
	return memGet(&s.mu, s.fixedPriceSales, id)
}

func (s *memStore) GetFixedPriceSaleByContract(_ context.Context, nftContractID string) (*schema.FixedPriceSale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var latest *schema.FixedPriceSale
	for id := range s.fixedPriceSales {
		sale := s.fixedPriceSales[id]
		if sale.NftContractID != nftContractID {
			continue
		}
		// Ties on DateCreated break on the greatest ID, matching the SQL
		// ordering of the postgres store
		if latest == nil || sale.DateCreated > latest.DateCreated ||
			(sale.DateCreated == latest.DateCreated && sale.ID > latest.ID) {
			copied := sale
			latest = &copied
		}
	}
	return latest, nil
}

func (s *memStore) SaveFixedPriceSale(_ context.Context, sale *schema.FixedPriceSale) error {
	return memPut(&s.mu, s.fixedPriceSales, sale.ID, sale)
}

func (s *memStore) GetFixedPriceSaleMint(_ context.Context, id string) (*schema.FixedPriceSaleMint, error) {
	return memGet(&s.mu, s.fixedPriceMints, id)
}

func (s *memStore) SaveFixedPriceSaleMint(_ context.Context, mint *schema.FixedPriceSaleMint) error {
	return memPut(&s.mu, s.fixedPriceMints, mint.ID, mint)
}

func (s *memStore) GetFeth(_ context.Context, id string) (*schema.Feth, error) {
	return memGet(&s.mu, s.feths, id)
}

func (s *memStore) SaveFeth(_ context.Context, feth *schema.Feth) error {
	return memPut(&s.mu, s.feths, feth.ID, feth)
}

func (s *memStore) GetFethEscrow(_ context.Context, id string) (*schema.FethEscrow, error) {
	return memGet(&s.mu, s.fethEscrows, id)
}

func (s *memStore) SaveFethEscrow(_ context.Context, escrow *schema.FethEscrow) error {
	return memPut(&s.mu, s.fethEscrows, escrow.ID, escrow)
}

func (s *memStore) GetPercentSplit(_ context.Context, id string) (*schema.PercentSplit, error) {
	return memGet(&s.mu, s.splits, id)
}

func (s *memStore) SavePercentSplit(_ context.Context, split *schema.PercentSplit) error {
	return memPut(&s.mu, s.splits, split.ID, split)
}

func (s *memStore) SavePercentSplitShare(_ context.Context, share *schema.PercentSplitShare) error {
	return memPut(&s.mu, s.splitShares, share.ID, share)
}

func (s *memStore) GetNftHistory(_ context.Context, id string) (*schema.NftHistory, error) {
	return memGet(&s.mu, s.histories, id)
}

func (s *memStore) SaveNftHistory(_ context.Context, history *schema.NftHistory) error {
	return memPut(&s.mu, s.histories, history.ID, history)
}

func (s *memStore) DeleteNftHistory(_ context.Context, id string) error {
	return memDelete(&s.mu, s.histories, id)
}

func (s *memStore) GetBlockCursor(_ context.Context, id string) (*schema.BlockCursor, error) {
	return memGet(&s.mu, s.cursors, id)
}

func (s *memStore) SetBlockCursor(_ context.Context, cursor *schema.BlockCursor) error {
	return memPut(&s.mu, s.cursors, cursor.ID, cursor)
}
