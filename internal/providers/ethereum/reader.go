// Package ethereum reads marketplace and collection contract state over
// eth_call. Every read targets the block the triggering event came from being
// already final, so results are deterministic for a given event stream.
package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/gallerie/market-indexer/internal/adapter"
	"github.com/gallerie/market-indexer/internal/domain"
)

//go:generate mockgen -source=reader.go -destination=../../mocks/contract_reader.go -package=mocks

// Fees is the revenue split quoted by the market for a hypothetical sale
type Fees struct {
	// TotalFees is the protocol take in wei
	TotalFees *big.Int
	// CreatorRev is the creator share in wei
	CreatorRev *big.Int
	// SellerRev is the owner share in wei
	SellerRev *big.Int
}

// ContractReader exposes the contract view functions the projector needs.
// Reads against self-destructed or non-conforming contracts revert; callers
// get domain.ErrCallReverted and decide how to degrade.
type ContractReader interface {
	// Name reads the ERC721 collection name
	Name(ctx context.Context, contract common.Address) (string, error)
	// Symbol reads the ERC721 collection symbol
	Symbol(ctx context.Context, contract common.Address) (string, error)
	// TokenURI reads the metadata path of a token
	TokenURI(ctx context.Context, contract common.Address, tokenID *big.Int) (string, error)
	// OwnerOf reads the current owner of a token
	OwnerOf(ctx context.Context, contract common.Address, tokenID *big.Int) (common.Address, error)
	// TokenCreator reads the creator recorded on the collection contract
	TokenCreator(ctx context.Context, contract common.Address, tokenID *big.Int) (common.Address, error)
	// GetIsPrimary asks the market whether the next sale of a token counts
	// as a primary sale
	GetIsPrimary(ctx context.Context, market, contract common.Address, tokenID *big.Int) (bool, error)
	// GetFees asks the market how a sale at the given price would be split
	GetFees(ctx context.Context, market, contract common.Address, tokenID, price *big.Int) (*Fees, error)
	// Close closes the underlying connection
	Close()
}

type contractReader struct {
	client adapter.EthClient
}

// NewContractReader creates a ContractReader on top of an eth client
func NewContractReader(client adapter.EthClient) ContractReader {
	return &contractReader{client: client}
}

// call packs a view-function call, executes it with retry on transient RPC
// failures, and unpacks the outputs. A revert is returned as
// domain.ErrCallReverted without retrying.
func (r *contractReader) call(ctx context.Context, to common.Address, abiJSON, method string, args ...interface{}) ([]interface{}, error) {
	parsed, err := abi.JSON(strings.NewReader(abiJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI: %w", err)
	}

	data, err := parsed.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack data: %w", err)
	}

	var result []byte
	operation := func() error {
		var callErr error
		result, callErr = r.client.CallContract(ctx, ethereum.CallMsg{
			To:   &to,
			Data: data,
		}, nil)
		if callErr != nil {
			if isRevertError(callErr) {
				return backoff.Permanent(domain.ErrCallReverted)
			}
			return callErr
		}
		return nil
	}

	// backoff.Retry hands back the inner error of a Permanent wrapper, so a
	// revert surfaces here as domain.ErrCallReverted directly
	b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	if err := backoff.Retry(operation, b); err != nil {
		if errors.Is(err, domain.ErrCallReverted) {
			return nil, domain.ErrCallReverted
		}
		return nil, fmt.Errorf("failed to call %s: %w", method, err)
	}

	// Solidity view functions that exist always return data; an empty reply
	// means the address has no matching function
	if len(result) == 0 {
		return nil, domain.ErrCallReverted
	}

	values, err := parsed.Unpack(method, result)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s result: %w", method, err)
	}

	return values, nil
}

// isRevertError reports whether an eth_call failure is a revert rather than
// a transport problem
func isRevertError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "execution reverted") ||
		strings.Contains(errStr, "invalid opcode") ||
		strings.Contains(errStr, "out of gas")
}

func (r *contractReader) Name(ctx context.Context, contract common.Address) (string, error) {
	values, err := r.call(ctx, contract,
		`[{"constant":true,"inputs":[],"name":"name","outputs":[{"name":"","type":"string"}],"payable":false,"stateMutability":"view","type":"function"}]`,
		"name")
	if err != nil {
		return "", err
	}
	name, ok := values[0].(string)
	if !ok {
		return "", fmt.Errorf("unexpected name result type %T", values[0])
	}
	return name, nil
}

func (r *contractReader) Symbol(ctx context.Context, contract common.Address) (string, error) {
	values, err := r.call(ctx, contract,
		`[{"constant":true,"inputs":[],"name":"symbol","outputs":[{"name":"","type":"string"}],"payable":false,"stateMutability":"view","type":"function"}]`,
		"symbol")
	if err != nil {
		return "", err
	}
	symbol, ok := values[0].(string)
	if !ok {
		return "", fmt.Errorf("unexpected symbol result type %T", values[0])
	}
	return symbol, nil
}

func (r *contractReader) TokenURI(ctx context.Context, contract common.Address, tokenID *big.Int) (string, error) {
	values, err := r.call(ctx, contract,
		`[{"constant":true,"inputs":[{"name":"tokenId","type":"uint256"}],"name":"tokenURI","outputs":[{"name":"","type":"string"}],"payable":false,"stateMutability":"view","type":"function"}]`,
		"tokenURI", tokenID)
	if err != nil {
		return "", err
	}
	uri, ok := values[0].(string)
	if !ok {
		return "", fmt.Errorf("unexpected tokenURI result type %T", values[0])
	}
	return uri, nil
}

func (r *contractReader) OwnerOf(ctx context.Context, contract common.Address, tokenID *big.Int) (common.Address, error) {
	values, err := r.call(ctx, contract,
		`[{"constant":true,"inputs":[{"name":"tokenId","type":"uint256"}],"name":"ownerOf","outputs":[{"name":"","type":"address"}],"payable":false,"stateMutability":"view","type":"function"}]`,
		"ownerOf", tokenID)
	if err != nil {
		return common.Address{}, err
	}
	owner, ok := values[0].(common.Address)
	if !ok {
		return common.Address{}, fmt.Errorf("unexpected ownerOf result type %T", values[0])
	}
	return owner, nil
}

func (r *contractReader) TokenCreator(ctx context.Context, contract common.Address, tokenID *big.Int) (common.Address, error) {
	values, err := r.call(ctx, contract,
		`[{"constant":true,"inputs":[{"name":"tokenId","type":"uint256"}],"name":"tokenCreator","outputs":[{"name":"","type":"address"}],"payable":false,"stateMutability":"view","type":"function"}]`,
		"tokenCreator", tokenID)
	if err != nil {
		return common.Address{}, err
	}
	creator, ok := values[0].(common.Address)
	if !ok {
		return common.Address{}, fmt.Errorf("unexpected tokenCreator result type %T", values[0])
	}
	return creator, nil
}

func (r *contractReader) GetIsPrimary(ctx context.Context, market, contract common.Address, tokenID *big.Int) (bool, error) {
	values, err := r.call(ctx, market,
		`[{"constant":true,"inputs":[{"name":"nftContract","type":"address"},{"name":"tokenId","type":"uint256"}],"name":"getIsPrimary","outputs":[{"name":"","type":"bool"}],"payable":false,"stateMutability":"view","type":"function"}]`,
		"getIsPrimary", contract, tokenID)
	if err != nil {
		return false, err
	}
	isPrimary, ok := values[0].(bool)
	if !ok {
		return false, fmt.Errorf("unexpected getIsPrimary result type %T", values[0])
	}
	return isPrimary, nil
}

func (r *contractReader) GetFees(ctx context.Context, market, contract common.Address, tokenID, price *big.Int) (*Fees, error) {
	values, err := r.call(ctx, market,
		`[{"constant":true,"inputs":[{"name":"nftContract","type":"address"},{"name":"tokenId","type":"uint256"},{"name":"price","type":"uint256"}],"name":"getFees","outputs":[{"name":"","type":"uint256"},{"name":"","type":"uint256"},{"name":"","type":"uint256"}],"payable":false,"stateMutability":"view","type":"function"}]`,
		"getFees", contract, tokenID, price)
	if err != nil {
		return nil, err
	}
	if len(values) != 3 {
		return nil, fmt.Errorf("unexpected getFees result count %d", len(values))
	}

	fees := &Fees{}
	var ok bool
	if fees.TotalFees, ok = values[0].(*big.Int); !ok {
		return nil, fmt.Errorf("unexpected getFees result type %T", values[0])
	}
	if fees.CreatorRev, ok = values[1].(*big.Int); !ok {
		return nil, fmt.Errorf("unexpected getFees result type %T", values[1])
	}
	if fees.SellerRev, ok = values[2].(*big.Int); !ok {
		return nil, fmt.Errorf("unexpected getFees result type %T", values[2])
	}

	return fees, nil
}

func (r *contractReader) Close() {
	r.client.Close()
}

// DialTimeout bounds the initial RPC connection attempt
const DialTimeout = 30 * time.Second
