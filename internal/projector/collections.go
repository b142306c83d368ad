package projector

import (
	"context"
	"fmt"

	"github.com/gallerie/market-indexer/internal/domain"
	"github.com/gallerie/market-indexer/internal/ids"
	"github.com/gallerie/market-indexer/internal/store/schema"
)

// handleCollectionCreated registers a factory-deployed collection. Deploying
// again to an address that previously self-destructed revives the row.
func (p *Projector) handleCollectionCreated(ctx context.Context, event *domain.Event, params *domain.CollectionCreated) error {
	contract, err := p.loadOrCreateNftContract(ctx, params.Collection)
	if err != nil {
		return err
	}
	creator, err := p.loadOrCreateCreator(ctx, params.Creator)
	if err != nil {
		return err
	}

	collection, err := p.store.GetCollectionContract(ctx, ids.Address(params.Collection))
	if err != nil {
		return err
	}
	if collection == nil {
		collection = &schema.CollectionContract{ID: ids.Address(params.Collection)}
	} else {
		collection.DateSelfDestructed = nil
	}
	collection.NftContractID = contract.ID
	collection.CreatorID = creator.ID
	collection.Version = ids.VersionID(event.Contract, params.Version)
	collection.DateCreated = event.Timestamp
	if err := p.store.SaveCollectionContract(ctx, collection); err != nil {
		return fmt.Errorf("failed to save collection %s: %w", collection.ID, err)
	}
	return nil
}

func (p *Projector) handleDropCollectionCreated(ctx context.Context, event *domain.Event, params *domain.DropCollectionCreated) error {
	contract, err := p.loadOrCreateNftContract(ctx, params.Collection)
	if err != nil {
		return err
	}
	creator, err := p.loadOrCreateCreator(ctx, params.Creator)
	if err != nil {
		return err
	}
	paymentAccount, err := p.loadOrCreateAccount(ctx, params.PaymentAddress)
	if err != nil {
		return err
	}

	collection, err := p.store.GetNftDropCollectionContract(ctx, ids.Address(params.Collection))
	if err != nil {
		return err
	}
	if collection == nil {
		collection = &schema.NftDropCollectionContract{ID: ids.Address(params.Collection)}
	} else {
		collection.DateSelfDestructed = nil
	}
	collection.NftContractID = contract.ID
	collection.CreatorID = creator.ID
	collection.PaymentAddressID = paymentAccount.ID
	collection.Version = ids.VersionID(event.Contract, params.Version)
	collection.DateCreated = event.Timestamp
	if params.ApprovedMinter != zeroAddress {
		minter, err := p.loadOrCreateAccount(ctx, params.ApprovedMinter)
		if err != nil {
			return err
		}
		collection.ApprovedMinterID = &minter.ID
	}
	if err := p.store.SaveNftDropCollectionContract(ctx, collection); err != nil {
		return fmt.Errorf("failed to save drop collection %s: %w", collection.ID, err)
	}
	return nil
}
