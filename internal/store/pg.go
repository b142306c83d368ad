package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gallerie/market-indexer/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to reasonable defaults:
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// getByID loads one row by primary key, mapping not-found to (nil, nil)
func getByID[T any](ctx context.Context, db *gorm.DB, id string) (*T, error) {
	var row T
	err := db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get %T: %w", row, err)
	}
	return &row, nil
}

// upsertRow writes one row, replacing all columns when the primary key
// already exists. Re-applying an event therefore rewrites the same row.
func upsertRow[T any](ctx context.Context, db *gorm.DB, row *T) error {
	err := db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(row).Error
	if err != nil {
		return fmt.Errorf("failed to upsert %T: %w", *row, err)
	}
	return nil
}

// deleteByID removes one row by primary key; missing rows are ignored
func deleteByID[T any](ctx context.Context, db *gorm.DB, id string) error {
	var row T
	err := db.WithContext(ctx).Where("id = ?", id).Delete(&row).Error
	if err != nil {
		return fmt.Errorf("failed to delete %T: %w", row, err)
	}
	return nil
}

func (s *pgStore) GetAccount(ctx context.Context, id string) (*schema.Account, error) {
	return getByID[schema.Account](ctx, s.db, id)
}

func (s *pgStore) SaveAccount(ctx context.Context, account *schema.Account) error {
	return upsertRow(ctx, s.db, account)
}

func (s *pgStore) GetCreator(ctx context.Context, id string) (*schema.Creator, error) {
	return getByID[schema.Creator](ctx, s.db, id)
}

func (s *pgStore) SaveCreator(ctx context.Context, creator *schema.Creator) error {
	return upsertRow(ctx, s.db, creator)
}

func (s *pgStore) GetNftContract(ctx context.Context, id string) (*schema.NftContract, error) {
	return getByID[schema.NftContract](ctx, s.db, id)
}

func (s *pgStore) SaveNftContract(ctx context.Context, contract *schema.NftContract) error {
	return upsertRow(ctx, s.db, contract)
}

func (s *pgStore) GetNft(ctx context.Context, id string) (*schema.Nft, error) {
	return getByID[schema.Nft](ctx, s.db, id)
}

func (s *pgStore) SaveNft(ctx context.Context, nft *schema.Nft) error {
	return upsertRow(ctx, s.db, nft)
}

func (s *pgStore) GetNftTransfer(ctx context.Context, id string) (*schema.NftTransfer, error) {
	return getByID[schema.NftTransfer](ctx, s.db, id)
}

func (s *pgStore) SaveNftTransfer(ctx context.Context, transfer *schema.NftTransfer) error {
	return upsertRow(ctx, s.db, transfer)
}

func (s *pgStore) SaveNftAccountApproval(ctx context.Context, approval *schema.NftAccountApproval) error {
	return upsertRow(ctx, s.db, approval)
}

func (s *pgStore) DeleteNftAccountApproval(ctx context.Context, id string) error {
	return deleteByID[schema.NftAccountApproval](ctx, s.db, id)
}

func (s *pgStore) GetCollectionContract(ctx context.Context, id string) (*schema.CollectionContract, error) {
	return getByID[schema.CollectionContract](ctx, s.db, id)
}

func (s *pgStore) SaveCollectionContract(ctx context.Context, collection *schema.CollectionContract) error {
	return upsertRow(ctx, s.db, collection)
}

func (s *pgStore) GetNftDropCollectionContract(ctx context.Context, id string) (*schema.NftDropCollectionContract, error) {
	return getByID[schema.NftDropCollectionContract](ctx, s.db, id)
}

func (s *pgStore) SaveNftDropCollectionContract(ctx context.Context, collection *schema.NftDropCollectionContract) error {
	return upsertRow(ctx, s.db, collection)
}

func (s *pgStore) GetNftMarketContract(ctx context.Context, id string) (*schema.NftMarketContract, error) {
	return getByID[schema.NftMarketContract](ctx, s.db, id)
}

func (s *pgStore) SaveNftMarketContract(ctx context.Context, market *schema.NftMarketContract) error {
	return upsertRow(ctx, s.db, market)
}

func (s *pgStore) GetAuction(ctx context.Context, id string) (*schema.NftMarketAuction, error) {
	return getByID[schema.NftMarketAuction](ctx, s.db, id)
}

func (s *pgStore) SaveAuction(ctx context.Context, auction *schema.NftMarketAuction) error {
	return upsertRow(ctx, s.db, auction)
}

func (s *pgStore) GetBid(ctx context.Context, id string) (*schema.NftMarketBid, error) {
	return getByID[schema.NftMarketBid](ctx, s.db, id)
}

func (s *pgStore) SaveBid(ctx context.Context, bid *schema.NftMarketBid) error {
	return upsertRow(ctx, s.db, bid)
}

func (s *pgStore) GetOffer(ctx context.Context, id string) (*schema.NftMarketOffer, error) {
	return getByID[schema.NftMarketOffer](ctx, s.db, id)
}

func (s *pgStore) SaveOffer(ctx context.Context, offer *schema.NftMarketOffer) error {
	return upsertRow(ctx, s.db, offer)
}

func (s *pgStore) GetBuyNow(ctx context.Context, id string) (*schema.NftMarketBuyNow, error) {
	return getByID[schema.NftMarketBuyNow](ctx, s.db, id)
}

func (s *pgStore) SaveBuyNow(ctx context.Context, buyNow *schema.NftMarketBuyNow) error {
	return upsertRow(ctx, s.db, buyNow)
}

func (s *pgStore) SavePrivateSale(ctx context.Context, sale *schema.PrivateSale) error {
	return upsertRow(ctx, s.db, sale)
}

func (s *pgStore) GetFixedPriceSale(ctx context.Context, id string) (*schema.FixedPriceSale, error) {
	return getByID[schema.FixedPriceSale](ctx, s.db, id)
}

func (s *pgStore) GetFixedPriceSaleByContract(ctx context.Context, nftContractID string) (*schema.FixedPriceSale, error) {
	var sale schema.FixedPriceSale
	err := s.db.WithContext(ctx).
		Where("nft_contract_id = ?", nftContractID).
		Order("date_created DESC, id DESC").
		First(&sale).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get fixed price sale by contract: %w", err)
	}
	return &sale, nil
}

func (s *pgStore) SaveFixedPriceSale(ctx context.Context, sale *schema.FixedPriceSale) error {
	return upsertRow(ctx, s.db, sale)
}

func (s *pgStore) GetFixedPriceSaleMint(ctx context.Context, id string) (*schema.FixedPriceSaleMint, error) {
	return getByID[schema.FixedPriceSaleMint](ctx, s.db, id)
}

func (s *pgStore) SaveFixedPriceSaleMint(ctx context.Context, mint *schema.FixedPriceSaleMint) error {
	return upsertRow(ctx, s.db, mint)
}

func (s *pgStore) GetFeth(ctx context.Context, id string) (*schema.Feth, error) {
	return getByID[schema.Feth](ctx, s.db, id)
}

func (s *pgStore) SaveFeth(ctx context.Context, feth *schema.Feth) error {
	return upsertRow(ctx, s.db, feth)
}

func (s *pgStore) GetFethEscrow(ctx context.Context, id string) (*schema.FethEscrow, error) {
	return getByID[schema.FethEscrow](ctx, s.db, id)
}

func (s *pgStore) SaveFethEscrow(ctx context.Context, escrow *schema.FethEscrow) error {
	return upsertRow(ctx, s.db, escrow)
}

func (s *pgStore) GetPercentSplit(ctx context.Context, id string) (*schema.PercentSplit, error) {
	return getByID[schema.PercentSplit](ctx, s.db, id)
}

func (s *pgStore) SavePercentSplit(ctx context.Context, split *schema.PercentSplit) error {
	return upsertRow(ctx, s.db, split)
}

func (s *pgStore) SavePercentSplitShare(ctx context.Context, share *schema.PercentSplitShare) error {
	return upsertRow(ctx, s.db, share)
}

func (s *pgStore) GetNftHistory(ctx context.Context, id string) (*schema.NftHistory, error) {
	return getByID[schema.NftHistory](ctx, s.db, id)
}

func (s *pgStore) SaveNftHistory(ctx context.Context, history *schema.NftHistory) error {
	return upsertRow(ctx, s.db, history)
}

func (s *pgStore) DeleteNftHistory(ctx context.Context, id string) error {
	return deleteByID[schema.NftHistory](ctx, s.db, id)
}

func (s *pgStore) GetBlockCursor(ctx context.Context, id string) (*schema.BlockCursor, error) {
	return getByID[schema.BlockCursor](ctx, s.db, id)
}

func (s *pgStore) SetBlockCursor(ctx context.Context, cursor *schema.BlockCursor) error {
	return upsertRow(ctx, s.db, cursor)
}
