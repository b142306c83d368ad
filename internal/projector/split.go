package projector

import (
	"context"
	"fmt"

	"github.com/gallerie/market-indexer/internal/conversion"
	"github.com/gallerie/market-indexer/internal/domain"
	"github.com/gallerie/market-indexer/internal/ids"
	"github.com/gallerie/market-indexer/internal/store/schema"
)

func (p *Projector) handlePercentSplitCreated(ctx context.Context, event *domain.Event, params *domain.PercentSplitCreated) error {
	split := &schema.PercentSplit{
		ID:          ids.Address(params.ContractAddress),
		DateCreated: event.Timestamp,
	}
	if err := p.store.SavePercentSplit(ctx, split); err != nil {
		return fmt.Errorf("failed to save percent split %s: %w", split.ID, err)
	}
	return nil
}

// handlePercentSplitShare appends one recipient to a split. The contract
// emits shares in order with no index field; the running share count assigns
// the index.
func (p *Projector) handlePercentSplitShare(ctx context.Context, event *domain.Event, params *domain.PercentSplitShare) error {
	split, err := p.store.GetPercentSplit(ctx, ids.Address(event.Contract))
	if err != nil || split == nil {
		return err
	}

	account, err := p.loadOrCreateAccount(ctx, params.Recipient)
	if err != nil {
		return err
	}
	share := &schema.PercentSplitShare{
		ID:             ids.ShareID(event.Contract, event.LogIndex),
		SplitID:        split.ID,
		AccountID:      account.ID,
		ShareInPercent: conversion.ToPercent(params.PercentInBasisPoints),
		IndexOfShare:   split.ShareCount,
	}
	if err := p.store.SavePercentSplitShare(ctx, share); err != nil {
		return fmt.Errorf("failed to save split share %s: %w", share.ID, err)
	}

	split.ShareCount++
	return p.store.SavePercentSplit(ctx, split)
}
