package ids_test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"

	"github.com/gallerie/market-indexer/internal/ids"
)

func TestAddress_IsLowercaseHex(t *testing.T) {
	addr := common.HexToAddress("0xAbCdEf0123456789aBcDeF0123456789AbCdEf01")
	assert.Equal(t, "0xabcdef0123456789abcdef0123456789abcdef01", ids.Address(addr))
}

func TestAddress_KeepsLeadingZeros(t *testing.T) {
	addr := common.HexToAddress("0x0000000000000000000000000000000000000001")
	assert.Equal(t, "0x0000000000000000000000000000000000000001", ids.Address(addr))
}

func TestLogID(t *testing.T) {
	txHash := common.HexToHash("0x01")
	assert.Equal(t, txHash.Hex()+"-3", ids.LogID(txHash, 3))
}

func TestEventID(t *testing.T) {
	txHash := common.HexToHash("0x01")
	assert.Equal(t, txHash.Hex()+"-3-Sold", ids.EventID(txHash, 3, "Sold"))
}

func TestNftID(t *testing.T) {
	contract := common.HexToAddress("0x0000000000000000000000000000000000000002")
	assert.Equal(t,
		"0x0000000000000000000000000000000000000002-42",
		ids.NftID(contract, big.NewInt(42)))
}

func TestAuctionID(t *testing.T) {
	market := common.HexToAddress("0x0000000000000000000000000000000000000003")
	assert.Equal(t,
		"0x0000000000000000000000000000000000000003-7",
		ids.AuctionID(market, big.NewInt(7)))
}

func TestEscrowID(t *testing.T) {
	account := common.HexToAddress("0x0000000000000000000000000000000000000004")
	assert.Equal(t,
		"0x0000000000000000000000000000000000000004-1700000000",
		ids.EscrowID(account, big.NewInt(1700000000)))
}

func TestDerivedIDs_AreDeterministic(t *testing.T) {
	contract := common.HexToAddress("0x0000000000000000000000000000000000000005")
	tokenID := big.NewInt(9)
	assert.Equal(t, ids.NftID(contract, tokenID), ids.NftID(contract, tokenID))
	assert.Equal(t,
		ids.AccountApprovalID(contract, contract, contract),
		ids.AccountApprovalID(contract, contract, contract))
}
