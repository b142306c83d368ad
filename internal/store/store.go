package store

import (
	"context"

	"github.com/gallerie/market-indexer/internal/store/schema"
)

// Store defines the interface for database operations. Every Get returns
// (nil, nil) when the row does not exist; every Save is an upsert keyed on
// the row's primary key, so replaying the same event rewrites identical rows.
type Store interface {
	// GetAccount retrieves an account by address
	GetAccount(ctx context.Context, id string) (*schema.Account, error)
	// SaveAccount creates or updates an account
	SaveAccount(ctx context.Context, account *schema.Account) error
	// GetCreator retrieves a creator by account address
	GetCreator(ctx context.Context, id string) (*schema.Creator, error)
	// SaveCreator creates or updates a creator
	SaveCreator(ctx context.Context, creator *schema.Creator) error

	// GetNftContract retrieves a collection contract row by address
	GetNftContract(ctx context.Context, id string) (*schema.NftContract, error)
	// SaveNftContract creates or updates a collection contract row
	SaveNftContract(ctx context.Context, contract *schema.NftContract) error
	// GetNft retrieves a token by {contract}-{tokenId}
	GetNft(ctx context.Context, id string) (*schema.Nft, error)
	// SaveNft creates or updates a token
	SaveNft(ctx context.Context, nft *schema.Nft) error
	// GetNftTransfer retrieves a transfer row by {txHash}-{logIndex}
	GetNftTransfer(ctx context.Context, id string) (*schema.NftTransfer, error)
	// SaveNftTransfer creates or updates a transfer row
	SaveNftTransfer(ctx context.Context, transfer *schema.NftTransfer) error
	// SaveNftAccountApproval creates or updates an operator approval
	SaveNftAccountApproval(ctx context.Context, approval *schema.NftAccountApproval) error
	// DeleteNftAccountApproval removes an operator approval; deleting a
	// missing row is not an error
	DeleteNftAccountApproval(ctx context.Context, id string) error

	// GetCollectionContract retrieves a factory-made collection by address
	GetCollectionContract(ctx context.Context, id string) (*schema.CollectionContract, error)
	// SaveCollectionContract creates or updates a factory-made collection
	SaveCollectionContract(ctx context.Context, collection *schema.CollectionContract) error
	// GetNftDropCollectionContract retrieves a drop collection by address
	GetNftDropCollectionContract(ctx context.Context, id string) (*schema.NftDropCollectionContract, error)
	// SaveNftDropCollectionContract creates or updates a drop collection
	SaveNftDropCollectionContract(ctx context.Context, collection *schema.NftDropCollectionContract) error

	// GetNftMarketContract retrieves a market contract row by address
	GetNftMarketContract(ctx context.Context, id string) (*schema.NftMarketContract, error)
	// SaveNftMarketContract creates or updates a market contract row
	SaveNftMarketContract(ctx context.Context, market *schema.NftMarketContract) error
	// GetAuction retrieves an auction by {market}-{auctionId}
	GetAuction(ctx context.Context, id string) (*schema.NftMarketAuction, error)
	// SaveAuction creates or updates an auction
	SaveAuction(ctx context.Context, auction *schema.NftMarketAuction) error
	// GetBid retrieves a bid by id
	GetBid(ctx context.Context, id string) (*schema.NftMarketBid, error)
	// SaveBid creates or updates a bid
	SaveBid(ctx context.Context, bid *schema.NftMarketBid) error
	// GetOffer retrieves an offer by {txHash}-{logIndex}
	GetOffer(ctx context.Context, id string) (*schema.NftMarketOffer, error)
	// SaveOffer creates or updates an offer
	SaveOffer(ctx context.Context, offer *schema.NftMarketOffer) error
	// GetBuyNow retrieves a fixed-price listing by {txHash}-{logIndex}
	GetBuyNow(ctx context.Context, id string) (*schema.NftMarketBuyNow, error)
	// SaveBuyNow creates or updates a fixed-price listing
	SaveBuyNow(ctx context.Context, buyNow *schema.NftMarketBuyNow) error
	// SavePrivateSale creates or updates a private sale
	SavePrivateSale(ctx context.Context, sale *schema.PrivateSale) error

	// GetFixedPriceSale retrieves a drop sale by id
	GetFixedPriceSale(ctx context.Context, id string) (*schema.FixedPriceSale, error)
	// GetFixedPriceSaleByContract retrieves the drop sale configured for a
	// collection contract
	GetFixedPriceSaleByContract(ctx context.Context, nftContractID string) (*schema.FixedPriceSale, error)
	// SaveFixedPriceSale creates or updates a drop sale
	SaveFixedPriceSale(ctx context.Context, sale *schema.FixedPriceSale) error
	// GetFixedPriceSaleMint retrieves a drop mint by transaction hash
	GetFixedPriceSaleMint(ctx context.Context, id string) (*schema.FixedPriceSaleMint, error)
	// SaveFixedPriceSaleMint creates or updates a drop mint
	SaveFixedPriceSaleMint(ctx context.Context, mint *schema.FixedPriceSaleMint) error

	// GetFeth retrieves a wrapped-ETH balance row by account address
	GetFeth(ctx context.Context, id string) (*schema.Feth, error)
	// SaveFeth creates or updates a wrapped-ETH balance row
	SaveFeth(ctx context.Context, feth *schema.Feth) error
	// GetFethEscrow retrieves an escrow bucket by {account}-{expiration}
	GetFethEscrow(ctx context.Context, id string) (*schema.FethEscrow, error)
	// SaveFethEscrow creates or updates an escrow bucket
	SaveFethEscrow(ctx context.Context, escrow *schema.FethEscrow) error

	// GetPercentSplit retrieves a split contract by address
	GetPercentSplit(ctx context.Context, id string) (*schema.PercentSplit, error)
	// SavePercentSplit creates or updates a split contract
	SavePercentSplit(ctx context.Context, split *schema.PercentSplit) error
	// SavePercentSplitShare creates or updates one share of a split
	SavePercentSplitShare(ctx context.Context, share *schema.PercentSplitShare) error

	// GetNftHistory retrieves a history record by {txHash}-{logIndex}-{eventType}
	GetNftHistory(ctx context.Context, id string) (*schema.NftHistory, error)
	// SaveNftHistory creates or updates a history record
	SaveNftHistory(ctx context.Context, history *schema.NftHistory) error
	// DeleteNftHistory removes a history record; deleting a missing row is
	// not an error
	DeleteNftHistory(ctx context.Context, id string) error

	// GetBlockCursor retrieves the replay position for a named cursor
	GetBlockCursor(ctx context.Context, id string) (*schema.BlockCursor, error)
	// SetBlockCursor stores the replay position for a named cursor
	SetBlockCursor(ctx context.Context, cursor *schema.BlockCursor) error
}
