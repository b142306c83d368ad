package domain

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// EventSource identifies which contract family emitted an event. Two
// different contract families emit an event named "Transfer", so the name
// alone does not identify a payload shape.
type EventSource string

const (
	SourceNft               EventSource = "nft"
	SourceCollectionFactory EventSource = "collection_factory"
	SourceMarket            EventSource = "market"
	SourceDropMarket        EventSource = "drop_market"
	SourceFeth              EventSource = "feth"
	SourcePercentSplit      EventSource = "percent_split"
)

// Envelope carries the on-chain coordinates shared by every decoded event.
// Events are delivered exactly once, in (block, tx index, log index) order.
type Envelope struct {
	Contract    common.Address `json:"contract"`
	TxHash      common.Hash    `json:"tx_hash"`
	LogIndex    uint           `json:"log_index"`
	TxIndex     uint           `json:"tx_index"`
	BlockNumber uint64         `json:"block_number"`
	Timestamp   int64          `json:"timestamp"` // block timestamp, unix seconds
	TxOrigin    common.Address `json:"tx_origin"`
}

// Time returns the block timestamp as a time.Time
func (e *Envelope) Time() time.Time {
	return time.Unix(e.Timestamp, 0).UTC()
}

// Event is one decoded contract event: envelope plus a typed payload.
// Payload holds a pointer to one of the structs in payloads.go.
type Event struct {
	Envelope
	Source  EventSource `json:"source"`
	Name    string      `json:"name"`
	Payload any         `json:"params"`
}
