package chain

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Accounts is the binding for the Xaya accounts (name registry) contract.
type Accounts interface {
	Address() common.Address
	TokenIDForName(ctx context.Context, ns, name string) (*big.Int, error)
	TokenIDToName(ctx context.Context, tokenID *big.Int) (ns, name string, err error)
	OwnerOf(ctx context.Context, tokenID *big.Int) (common.Address, error)
	IsApprovedForAll(ctx context.Context, owner, operator common.Address) (bool, error)
	GetApproved(ctx context.Context, tokenID *big.Int) (common.Address, error)
	WchiToken(ctx context.Context) (common.Address, error)
	// MoveCalldata builds the calldata for a direct move. Approval
	// nonce, fee and recipient use the "no constraint" sentinels.
	MoveCalldata(ns, name, mv string) ([]byte, error)
}

// maxUint256 is the sentinel for "no approval expiry" in direct moves.
var maxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

type accountsContract struct {
	*contract
}

// NewAccounts binds the accounts contract at the given address.
func NewAccounts(address common.Address, backend Backend) (Accounts, error) {
	c, err := newContract(accountsABI, address, backend)
	if err != nil {
		return nil, err
	}
	return &accountsContract{contract: c}, nil
}

func (a *accountsContract) Address() common.Address {
	return a.address
}

func (a *accountsContract) TokenIDForName(ctx context.Context, ns, name string) (*big.Int, error) {
	out, err := a.call(ctx, "tokenIdForName", ns, name)
	if err != nil {
		return nil, err
	}
	return out[0].(*big.Int), nil
}

func (a *accountsContract) TokenIDToName(ctx context.Context, tokenID *big.Int) (string, string, error) {
	out, err := a.call(ctx, "tokenIdToName", tokenID)
	if err != nil {
		return "", "", err
	}
	return out[0].(string), out[1].(string), nil
}

func (a *accountsContract) OwnerOf(ctx context.Context, tokenID *big.Int) (common.Address, error) {
	out, err := a.call(ctx, "ownerOf", tokenID)
	if err != nil {
		return common.Address{}, err
	}
	return out[0].(common.Address), nil
}

func (a *accountsContract) IsApprovedForAll(ctx context.Context, owner, operator common.Address) (bool, error) {
	out, err := a.call(ctx, "isApprovedForAll", owner, operator)
	if err != nil {
		return false, err
	}
	return out[0].(bool), nil
}

func (a *accountsContract) GetApproved(ctx context.Context, tokenID *big.Int) (common.Address, error) {
	out, err := a.call(ctx, "getApproved", tokenID)
	if err != nil {
		return common.Address{}, err
	}
	return out[0].(common.Address), nil
}

func (a *accountsContract) WchiToken(ctx context.Context) (common.Address, error) {
	out, err := a.call(ctx, "wchiToken")
	if err != nil {
		return common.Address{}, err
	}
	return out[0].(common.Address), nil
}

func (a *accountsContract) MoveCalldata(ns, name, mv string) ([]byte, error) {
	return a.pack("move", ns, name, mv, maxUint256, big.NewInt(0), common.Address{})
}
