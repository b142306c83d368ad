package projector

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/gallerie/market-indexer/internal/domain"
	"github.com/gallerie/market-indexer/internal/ids"
	"github.com/gallerie/market-indexer/internal/store/schema"
)

// historyExtras carries the optional columns of a history row. Zero values
// mean the column stays null.
type historyExtras struct {
	AuctionID     string
	OfferID       string
	BuyNowID      string
	PrivateSaleID string
	Marketplace   string
	Amount        *decimal.Decimal
	RecipientID   string
	// Date overrides the block timestamp when non-zero; used for records
	// whose effective time is earlier than the block that surfaced them
	Date int64
}

// recordNftEvent appends one typed row to the token's activity feed. The row
// id embeds the event type, so a single log can produce several rows.
func (p *Projector) recordNftEvent(ctx context.Context, event *domain.Event, nft *schema.Nft, eventType string, actorID string, extras historyExtras) error {
	txOrigin, err := p.loadOrCreateAccount(ctx, event.TxOrigin)
	if err != nil {
		return err
	}

	row := &schema.NftHistory{
		ID:              ids.EventID(event.TxHash, event.LogIndex, eventType),
		NftID:           nft.ID,
		EventType:       eventType,
		Date:            event.Timestamp,
		ContractAddress: ids.Address(event.Contract),
		TransactionHash: event.TxHash.Hex(),
		ActorAccountID:  actorID,
		TxOriginID:      txOrigin.ID,
		AmountInETH:     extras.Amount,
	}
	if extras.Date != 0 {
		row.Date = extras.Date
	}
	if extras.AuctionID != "" {
		row.AuctionID = ref(extras.AuctionID)
	}
	if extras.OfferID != "" {
		row.OfferID = ref(extras.OfferID)
	}
	if extras.BuyNowID != "" {
		row.BuyNowID = ref(extras.BuyNowID)
	}
	if extras.PrivateSaleID != "" {
		row.PrivateSaleID = ref(extras.PrivateSaleID)
	}
	if extras.Marketplace != "" {
		row.Marketplace = ref(extras.Marketplace)
	}
	if extras.RecipientID != "" {
		row.NftRecipientID = ref(extras.RecipientID)
	}

	if err := p.store.SaveNftHistory(ctx, row); err != nil {
		return fmt.Errorf("failed to record %s history: %w", eventType, err)
	}
	return nil
}

// retractTransfer deletes the Transferred row of the escrow transfer that
// preceded this event in the same transaction. Marketplace custody moves are
// bookkeeping, not trades, so the feed keeps the marketplace record instead.
// The transfer sits at an earlier log index in the same transaction; the
// scan walks down and stops at the first hit.
func (p *Projector) retractTransfer(ctx context.Context, event *domain.Event) error {
	for i := int(event.LogIndex) - 1; i >= 0; i-- {
		id := ids.EventID(event.TxHash, uint(i), schema.HistoryTransferred)
		row, err := p.store.GetNftHistory(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to probe transfer history: %w", err)
		}
		if row == nil {
			continue
		}
		if err := p.store.DeleteNftHistory(ctx, id); err != nil {
			return fmt.Errorf("failed to retract transfer history: %w", err)
		}
		return nil
	}
	return nil
}
