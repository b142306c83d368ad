package projector

import (
	"context"

	"github.com/gallerie/market-indexer/internal/conversion"
	"github.com/gallerie/market-indexer/internal/domain"
)

// handleFethTransfer moves escrow balance between accounts. A zero
// from-address is a deposit mint; only the credit side applies then.
func (p *Projector) handleFethTransfer(ctx context.Context, event *domain.Event, params *domain.FethTransferred) error {
	amount := conversion.ToETH(params.Amount)

	if params.From != zeroAddress {
		from, err := p.loadOrCreateAccount(ctx, params.From)
		if err != nil {
			return err
		}
		fethFrom, err := p.loadOrCreateFeth(ctx, from, event.Timestamp)
		if err != nil {
			return err
		}
		fethFrom.BalanceInETH = fethFrom.BalanceInETH.Sub(amount)
		fethFrom.DateLastUpdated = event.Timestamp
		if err := p.store.SaveFeth(ctx, fethFrom); err != nil {
			return err
		}
	}

	to, err := p.loadOrCreateAccount(ctx, params.To)
	if err != nil {
		return err
	}
	fethTo, err := p.loadOrCreateFeth(ctx, to, event.Timestamp)
	if err != nil {
		return err
	}
	fethTo.BalanceInETH = fethTo.BalanceInETH.Add(amount)
	fethTo.DateLastUpdated = event.Timestamp
	return p.store.SaveFeth(ctx, fethTo)
}

func (p *Projector) handleFethWithdrawn(ctx context.Context, event *domain.Event, params *domain.FethWithdrawn) error {
	from, err := p.loadOrCreateAccount(ctx, params.From)
	if err != nil {
		return err
	}
	feth, err := p.loadOrCreateFeth(ctx, from, event.Timestamp)
	if err != nil {
		return err
	}
	feth.BalanceInETH = feth.BalanceInETH.Sub(conversion.ToETH(params.Amount))
	feth.DateLastUpdated = event.Timestamp
	return p.store.SaveFeth(ctx, feth)
}

// handleBalanceLocked credits the newly deposited value and tops up the
// expiration bucket. A bucket that previously drained reopens with the
// locked amount instead of accumulating on top of its stale value.
func (p *Projector) handleBalanceLocked(ctx context.Context, event *domain.Event, params *domain.BalanceLocked) error {
	account, err := p.loadOrCreateAccount(ctx, params.Account)
	if err != nil {
		return err
	}
	feth, err := p.loadOrCreateFeth(ctx, account, event.Timestamp)
	if err != nil {
		return err
	}
	feth.BalanceInETH = feth.BalanceInETH.Add(conversion.ToETH(params.ValueDeposited))
	feth.DateLastUpdated = event.Timestamp
	if err := p.store.SaveFeth(ctx, feth); err != nil {
		return err
	}

	escrow, err := p.loadOrCreateFethEscrow(ctx, params.Account, params.Expiration, feth.ID)
	if err != nil {
		return err
	}
	if escrow.DateRemoved != nil {
		escrow.AmountInETH = conversion.ToETH(params.Amount)
		escrow.DateRemoved = nil
		escrow.TransactionHashRemoved = nil
	} else {
		escrow.AmountInETH = escrow.AmountInETH.Add(conversion.ToETH(params.Amount))
	}
	escrow.DateExpiry = params.Expiration.Int64()
	escrow.TransactionHashCreated = event.TxHash.Hex()
	return p.store.SaveFethEscrow(ctx, escrow)
}

// handleBalanceUnlocked releases locked funds; the bucket closes only when
// it drains to exactly zero
func (p *Projector) handleBalanceUnlocked(ctx context.Context, event *domain.Event, params *domain.BalanceUnlocked) error {
	account, err := p.loadOrCreateAccount(ctx, params.Account)
	if err != nil {
		return err
	}
	feth, err := p.loadOrCreateFeth(ctx, account, event.Timestamp)
	if err != nil {
		return err
	}

	escrow, err := p.loadOrCreateFethEscrow(ctx, params.Account, params.Expiration, feth.ID)
	if err != nil {
		return err
	}
	escrow.AmountInETH = escrow.AmountInETH.Sub(conversion.ToETH(params.Amount))
	if escrow.AmountInETH.IsZero() {
		escrow.DateRemoved = ref(event.Timestamp)
		escrow.TransactionHashRemoved = ref(event.TxHash.Hex())
	}
	return p.store.SaveFethEscrow(ctx, escrow)
}
