package projector

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/gallerie/market-indexer/internal/domain"
	"github.com/gallerie/market-indexer/internal/ids"
	"github.com/gallerie/market-indexer/internal/store/schema"
)

// handleNftTransfer applies an ERC721 Transfer. A zero from-address mints
// the token row directly from the event, without chain reads; a zero
// to-address is a burn.
func (p *Projector) handleNftTransfer(ctx context.Context, event *domain.Event, params *domain.NftTransferred) error {
	contract, err := p.loadOrCreateNftContract(ctx, event.Contract)
	if err != nil {
		return err
	}

	nftID := ids.NftID(event.Contract, params.TokenID)
	var nft *schema.Nft
	isMint := params.From == zeroAddress
	if isMint {
		to, err := p.loadOrCreateAccount(ctx, params.To)
		if err != nil {
			return err
		}
		nft = &schema.Nft{
			ID:                     nftID,
			NftContractID:          contract.ID,
			TokenID:                params.TokenID.String(),
			DateMinted:             event.Timestamp,
			OwnerID:                to.ID,
			OwnedOrListedByID:      to.ID,
			IsFirstSale:            true,
			NetSalesInETH:          decimal.Zero,
			NetSalesPendingInETH:   decimal.Zero,
			NetRevenueInETH:        decimal.Zero,
			NetRevenuePendingInETH: decimal.Zero,
		}
	} else {
		nft, err = p.loadOrCreateNft(ctx, event.Contract, params.TokenID, event)
		if err != nil {
			return err
		}
		to, err := p.loadOrCreateAccount(ctx, params.To)
		if err != nil {
			return err
		}
		nft.OwnerID = to.ID
		nft.OwnedOrListedByID = to.ID

		from, err := p.loadOrCreateAccount(ctx, params.From)
		if err != nil {
			return err
		}
		if params.To == zeroAddress {
			err = p.recordNftEvent(ctx, event, nft, schema.HistoryBurned, from.ID, historyExtras{})
		} else {
			err = p.recordNftEvent(ctx, event, nft, schema.HistoryTransferred, from.ID, historyExtras{
				RecipientID: to.ID,
			})
		}
		if err != nil {
			return err
		}
	}

	from, err := p.loadOrCreateAccount(ctx, params.From)
	if err != nil {
		return err
	}
	to, err := p.loadOrCreateAccount(ctx, params.To)
	if err != nil {
		return err
	}
	transfer := &schema.NftTransfer{
		ID:              ids.LogID(event.TxHash, event.LogIndex),
		NftID:           nftID,
		FromID:          from.ID,
		ToID:            to.ID,
		DateTransferred: event.Timestamp,
		TransactionHash: event.TxHash.Hex(),
	}
	if err := p.store.SaveNftTransfer(ctx, transfer); err != nil {
		return fmt.Errorf("failed to save transfer %s: %w", transfer.ID, err)
	}

	if isMint {
		nft.MintedTransferID = &transfer.ID
	}
	return p.store.SaveNft(ctx, nft)
}

func (p *Projector) handleNftApproval(ctx context.Context, event *domain.Event, params *domain.NftApproval) error {
	nft, err := p.loadOrCreateNft(ctx, event.Contract, params.TokenID, event)
	if err != nil {
		return err
	}

	if params.Approved != zeroAddress {
		spender, err := p.loadOrCreateAccount(ctx, params.Approved)
		if err != nil {
			return err
		}
		nft.ApprovedSpenderID = &spender.ID
	} else {
		nft.ApprovedSpenderID = nil
	}
	return p.store.SaveNft(ctx, nft)
}

func (p *Projector) handleNftApprovalForAll(ctx context.Context, event *domain.Event, params *domain.NftApprovalForAll) error {
	id := ids.AccountApprovalID(event.Contract, params.Owner, params.Operator)
	if !params.Approved {
		return p.store.DeleteNftAccountApproval(ctx, id)
	}

	contract, err := p.loadOrCreateNftContract(ctx, event.Contract)
	if err != nil {
		return err
	}
	owner, err := p.loadOrCreateAccount(ctx, params.Owner)
	if err != nil {
		return err
	}
	spender, err := p.loadOrCreateAccount(ctx, params.Operator)
	if err != nil {
		return err
	}

	return p.store.SaveNftAccountApproval(ctx, &schema.NftAccountApproval{
		ID:            id,
		NftContractID: contract.ID,
		OwnerID:       owner.ID,
		SpenderID:     spender.ID,
	})
}

func (p *Projector) handleNftMinted(ctx context.Context, event *domain.Event, params *domain.NftMinted) error {
	nft, err := p.loadOrCreateNft(ctx, event.Contract, params.TokenID, event)
	if err != nil {
		return err
	}

	nft.TokenIPFSPath = ref(params.TokenCID)
	creator, err := p.loadOrCreateCreator(ctx, params.Creator)
	if err != nil {
		return err
	}
	nft.CreatorID = &creator.ID
	if err := p.store.SaveNft(ctx, nft); err != nil {
		return err
	}

	return p.recordNftEvent(ctx, event, nft, schema.HistoryMinted, creator.ID, historyExtras{
		RecipientID: creator.ID,
	})
}

func (p *Projector) handleBaseURIUpdated(ctx context.Context, event *domain.Event, params *domain.BaseURIUpdated) error {
	contract, err := p.loadOrCreateNftContract(ctx, event.Contract)
	if err != nil {
		return err
	}
	contract.BaseURI = ref(params.BaseURI)
	return p.store.SaveNftContract(ctx, contract)
}

func (p *Projector) handleTokenCreatorUpdated(ctx context.Context, event *domain.Event, params *domain.TokenCreatorUpdated) error {
	nft, err := p.loadOrCreateNft(ctx, event.Contract, params.TokenID, event)
	if err != nil {
		return err
	}

	creator, err := p.loadOrCreateCreator(ctx, params.ToCreator)
	if err != nil {
		return err
	}
	nft.CreatorID = &creator.ID
	if err := p.store.SaveNft(ctx, nft); err != nil {
		return err
	}

	if params.FromCreator == zeroAddress {
		return nil
	}
	from, err := p.loadOrCreateAccount(ctx, params.FromCreator)
	if err != nil {
		return err
	}
	return p.recordNftEvent(ctx, event, nft, schema.HistoryCreatorMigrated, from.ID, historyExtras{
		RecipientID: creator.ID,
	})
}

// handleTokenCreatorPaymentAddressSet points creator revenue at an alternate
// address. The split reference only sticks when a split contract actually
// exists at that address.
func (p *Projector) handleTokenCreatorPaymentAddressSet(ctx context.Context, event *domain.Event, params *domain.TokenCreatorPaymentAddressSet) error {
	nft, err := p.loadOrCreateNft(ctx, event.Contract, params.TokenID, event)
	if err != nil {
		return err
	}

	paymentAddress := ids.Address(params.ToPaymentAddress)
	nft.TokenCreatorPaymentAddress = ref(paymentAddress)
	split, err := p.store.GetPercentSplit(ctx, paymentAddress)
	if err != nil {
		return err
	}
	if split != nil {
		nft.PercentSplitID = &split.ID
	} else {
		nft.PercentSplitID = nil
	}
	return p.store.SaveNft(ctx, nft)
}

func (p *Projector) handlePaymentAddressMigrated(ctx context.Context, event *domain.Event, params *domain.PaymentAddressMigrated) error {
	nft, err := p.loadOrCreateNft(ctx, event.Contract, params.TokenID, event)
	if err != nil {
		return err
	}

	original, err := p.loadOrCreateAccount(ctx, params.OriginalAddress)
	if err != nil {
		return err
	}
	migrated, err := p.loadOrCreateAccount(ctx, params.NewAddress)
	if err != nil {
		return err
	}
	return p.recordNftEvent(ctx, event, nft, schema.HistoryCreatorPaymentAddressMigrated, original.ID, historyExtras{
		RecipientID: migrated.ID,
	})
}

func (p *Projector) handleNftOwnerMigrated(ctx context.Context, event *domain.Event, params *domain.NftOwnerMigrated) error {
	nft, err := p.loadOrCreateNft(ctx, event.Contract, params.TokenID, event)
	if err != nil {
		return err
	}

	original, err := p.loadOrCreateAccount(ctx, params.OriginalAddress)
	if err != nil {
		return err
	}
	migrated, err := p.loadOrCreateAccount(ctx, params.NewAddress)
	if err != nil {
		return err
	}
	err = p.recordNftEvent(ctx, event, nft, schema.HistoryOwnerMigrated, original.ID, historyExtras{
		RecipientID: migrated.ID,
	})
	if err != nil {
		return err
	}
	return p.retractTransfer(ctx, event)
}

// handleCollectionSelfDestructed marks the factory rows for a destroyed
// collection; token rows stay, they just stop resolving on chain
func (p *Projector) handleCollectionSelfDestructed(ctx context.Context, event *domain.Event, _ *domain.CollectionSelfDestructed) error {
	id := ids.Address(event.Contract)
	collection, err := p.store.GetCollectionContract(ctx, id)
	if err != nil {
		return err
	}
	if collection != nil {
		collection.DateSelfDestructed = ref(event.Timestamp)
		if err := p.store.SaveCollectionContract(ctx, collection); err != nil {
			return err
		}
	}

	dropCollection, err := p.store.GetNftDropCollectionContract(ctx, id)
	if err != nil {
		return err
	}
	if dropCollection != nil {
		dropCollection.DateSelfDestructed = ref(event.Timestamp)
		return p.store.SaveNftDropCollectionContract(ctx, dropCollection)
	}
	return nil
}
