package projector

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"github.com/gallerie/market-indexer/internal/domain"
	"github.com/gallerie/market-indexer/internal/ids"
	"github.com/gallerie/market-indexer/internal/store/schema"
)

// defaultBaseURI is assumed for collections until a BaseURIUpdated lands
const defaultBaseURI = "ipfs://"

// loadOrCreateAccount returns the account row for an address, creating it
// with zeroed revenue on first reference
func (p *Projector) loadOrCreateAccount(ctx context.Context, address common.Address) (*schema.Account, error) {
	id := ids.Address(address)
	account, err := p.store.GetAccount(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load account %s: %w", id, err)
	}
	if account != nil {
		return account, nil
	}

	account = &schema.Account{
		ID:                     id,
		NetRevenueInETH:        decimal.Zero,
		NetRevenuePendingInETH: decimal.Zero,
	}
	if err := p.store.SaveAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account %s: %w", id, err)
	}
	return account, nil
}

// loadOrCreateCreator returns the creator row for an address. The backing
// account row is created first so the two always share an id.
func (p *Projector) loadOrCreateCreator(ctx context.Context, address common.Address) (*schema.Creator, error) {
	account, err := p.loadOrCreateAccount(ctx, address)
	if err != nil {
		return nil, err
	}

	creator, err := p.store.GetCreator(ctx, account.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load creator %s: %w", account.ID, err)
	}
	if creator != nil {
		return creator, nil
	}

	creator = &schema.Creator{
		ID:                     account.ID,
		AccountID:              account.ID,
		NetSalesInETH:          decimal.Zero,
		NetSalesPendingInETH:   decimal.Zero,
		NetRevenueInETH:        decimal.Zero,
		NetRevenuePendingInETH: decimal.Zero,
	}
	if err := p.store.SaveCreator(ctx, creator); err != nil {
		return nil, fmt.Errorf("failed to create creator %s: %w", account.ID, err)
	}
	return creator, nil
}

// loadOrCreateNftContract returns the collection row for a contract address.
// Name and symbol are read from the chain on first reference; a revert leaves
// them unset rather than failing the event.
func (p *Projector) loadOrCreateNftContract(ctx context.Context, address common.Address) (*schema.NftContract, error) {
	id := ids.Address(address)
	contract, err := p.store.GetNftContract(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load nft contract %s: %w", id, err)
	}
	if contract != nil {
		return contract, nil
	}

	contract = &schema.NftContract{
		ID:      id,
		BaseURI: ref(defaultBaseURI),
	}
	name, err := p.reader.Name(ctx, address)
	if err == nil {
		contract.Name = &name
	} else if !errors.Is(err, domain.ErrCallReverted) {
		return nil, err
	}
	symbol, err := p.reader.Symbol(ctx, address)
	if err == nil {
		contract.Symbol = &symbol
	} else if !errors.Is(err, domain.ErrCallReverted) {
		return nil, err
	}

	if err := p.store.SaveNftContract(ctx, contract); err != nil {
		return nil, fmt.Errorf("failed to create nft contract %s: %w", id, err)
	}
	return contract, nil
}

// loadOrCreateNft returns the token row, creating it from on-chain reads
// when a market or escrow event references a token whose mint predates the
// stream. Reverting reads degrade field by field.
func (p *Projector) loadOrCreateNft(ctx context.Context, address common.Address, tokenID *big.Int, event *domain.Event) (*schema.Nft, error) {
	id := ids.NftID(address, tokenID)
	nft, err := p.store.GetNft(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load nft %s: %w", id, err)
	}
	if nft != nil {
		return nft, nil
	}

	contract, err := p.loadOrCreateNftContract(ctx, address)
	if err != nil {
		return nil, err
	}

	nft = &schema.Nft{
		ID:                     id,
		NftContractID:          contract.ID,
		TokenID:                tokenID.String(),
		DateMinted:             event.Timestamp,
		IsFirstSale:            true,
		NetSalesInETH:          decimal.Zero,
		NetSalesPendingInETH:   decimal.Zero,
		NetRevenueInETH:        decimal.Zero,
		NetRevenuePendingInETH: decimal.Zero,
	}

	ownerAddress := zeroAddress
	owner, err := p.reader.OwnerOf(ctx, address, tokenID)
	if err == nil {
		ownerAddress = owner
	} else if !errors.Is(err, domain.ErrCallReverted) {
		return nil, err
	}
	ownerAccount, err := p.loadOrCreateAccount(ctx, ownerAddress)
	if err != nil {
		return nil, err
	}
	nft.OwnerID = ownerAccount.ID
	nft.OwnedOrListedByID = ownerAccount.ID

	path, err := p.reader.TokenURI(ctx, address, tokenID)
	if err == nil {
		nft.TokenIPFSPath = &path
	} else if !errors.Is(err, domain.ErrCallReverted) {
		return nil, err
	}

	creatorAddress, err := p.reader.TokenCreator(ctx, address, tokenID)
	if err == nil {
		creator, creatorErr := p.loadOrCreateCreator(ctx, creatorAddress)
		if creatorErr != nil {
			return nil, creatorErr
		}
		nft.CreatorID = &creator.ID
	} else if !errors.Is(err, domain.ErrCallReverted) {
		return nil, err
	}

	if err := p.store.SaveNft(ctx, nft); err != nil {
		return nil, fmt.Errorf("failed to create nft %s: %w", id, err)
	}
	return nft, nil
}

// loadOrCreateMarketContract returns the market row for a market address
func (p *Projector) loadOrCreateMarketContract(ctx context.Context, address common.Address) (*schema.NftMarketContract, error) {
	id := ids.Address(address)
	market, err := p.store.GetNftMarketContract(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load market contract %s: %w", id, err)
	}
	if market != nil {
		return market, nil
	}

	market = &schema.NftMarketContract{ID: id}
	if err := p.store.SaveNftMarketContract(ctx, market); err != nil {
		return nil, fmt.Errorf("failed to create market contract %s: %w", id, err)
	}
	return market, nil
}

// loadOrCreateFeth returns the escrow balance row for an account
func (p *Projector) loadOrCreateFeth(ctx context.Context, account *schema.Account, timestamp int64) (*schema.Feth, error) {
	feth, err := p.store.GetFeth(ctx, account.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load feth balance %s: %w", account.ID, err)
	}
	if feth != nil {
		return feth, nil
	}

	return &schema.Feth{
		ID:              account.ID,
		UserID:          account.ID,
		BalanceInETH:    decimal.Zero,
		DateLastUpdated: timestamp,
	}, nil
}

// loadOrCreateFethEscrow returns the time-locked bucket row for an
// (account, expiration) pair
func (p *Projector) loadOrCreateFethEscrow(ctx context.Context, account common.Address, expiration *big.Int, fethID string) (*schema.FethEscrow, error) {
	id := ids.EscrowID(account, expiration)
	escrow, err := p.store.GetFethEscrow(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load feth escrow %s: %w", id, err)
	}
	if escrow != nil {
		return escrow, nil
	}

	return &schema.FethEscrow{
		ID:            id,
		FethAccountID: fethID,
		AmountInETH:   decimal.Zero,
	}, nil
}
