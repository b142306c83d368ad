// Package ids derives deterministic entity identifiers from on-chain event
// coordinates. The same on-chain fact always maps to the same id, which is
// what makes handler re-application idempotent.
package ids

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// LogID identifies a single log: {txHash}-{logIndex}
func LogID(txHash common.Hash, logIndex uint) string {
	return fmt.Sprintf("%s-%d", txHash.Hex(), logIndex)
}

// EventID identifies a history record: {txHash}-{logIndex}-{eventType}
func EventID(txHash common.Hash, logIndex uint, eventType string) string {
	return fmt.Sprintf("%s-%s", LogID(txHash, logIndex), eventType)
}

// NftID identifies a token: {contract}-{tokenId}
func NftID(contract common.Address, tokenID *big.Int) string {
	return fmt.Sprintf("%s-%s", Address(contract), tokenID.String())
}

// AuctionID identifies an auction: {market}-{auctionId}
func AuctionID(market common.Address, auctionID *big.Int) string {
	return fmt.Sprintf("%s-%s", Address(market), auctionID.String())
}

// EscrowID identifies a time-locked escrow bucket: {account}-{expiration}
func EscrowID(account common.Address, expiration *big.Int) string {
	return fmt.Sprintf("%s-%s", Address(account), expiration.String())
}

// AccountApprovalID identifies an operator approval: {contract}-{owner}-{spender}
func AccountApprovalID(contract, owner, spender common.Address) string {
	return fmt.Sprintf("%s-%s-%s", Address(contract), Address(owner), Address(spender))
}

// ShareID identifies a percent-split share: {split}-{logIndex}
func ShareID(split common.Address, logIndex uint) string {
	return fmt.Sprintf("%s-%d", Address(split), logIndex)
}

// VersionID identifies a factory contract version: {factory}-{version}
func VersionID(factory common.Address, version *big.Int) string {
	return fmt.Sprintf("%s-%s", Address(factory), version.String())
}

// Address renders an address in the canonical lowercase hex form used for
// every address-derived entity id
func Address(addr common.Address) string {
	return "0x" + fmt.Sprintf("%x", addr.Bytes())
}
