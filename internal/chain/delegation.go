package chain

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Delegation is the binding for the XayaDelegation contract.
type Delegation interface {
	Address() common.Address
	AccountsAddress(ctx context.Context) (common.Address, error)
	// GetDefinedKeys returns the child segment names and the full /
	// fallback access grantee lists defined exactly at path.
	GetDefinedKeys(ctx context.Context, tokenID *big.Int, owner common.Address, path []string) (children []string, fullAccess, fallbackAccess []common.Address, err error)
	GetExpiration(ctx context.Context, tokenID *big.Int, owner common.Address, path []string, operator common.Address, fallbackOnly bool) (*big.Int, error)
	HasAccess(ctx context.Context, ns, name string, path []string, operator common.Address, atTime *big.Int) (bool, error)
	// HierarchicalMoveCalldata builds the calldata for a delegated move
	// routed through path.
	HierarchicalMoveCalldata(ns, name string, path []string, mv string) ([]byte, error)
}

type delegationContract struct {
	*contract
}

// NewDelegation binds the delegation contract at the given address.
func NewDelegation(address common.Address, backend Backend) (Delegation, error) {
	c, err := newContract(delegationABI, address, backend)
	if err != nil {
		return nil, err
	}
	return &delegationContract{contract: c}, nil
}

func (d *delegationContract) Address() common.Address {
	return d.address
}

func (d *delegationContract) AccountsAddress(ctx context.Context) (common.Address, error) {
	out, err := d.call(ctx, "accounts")
	if err != nil {
		return common.Address{}, err
	}
	return out[0].(common.Address), nil
}

func (d *delegationContract) GetDefinedKeys(ctx context.Context, tokenID *big.Int, owner common.Address, path []string) ([]string, []common.Address, []common.Address, error) {
	out, err := d.call(ctx, "getDefinedKeys", tokenID, owner, path)
	if err != nil {
		return nil, nil, nil, err
	}
	return out[0].([]string), out[1].([]common.Address), out[2].([]common.Address), nil
}

func (d *delegationContract) GetExpiration(ctx context.Context, tokenID *big.Int, owner common.Address, path []string, operator common.Address, fallbackOnly bool) (*big.Int, error) {
	out, err := d.call(ctx, "getExpiration", tokenID, owner, path, operator, fallbackOnly)
	if err != nil {
		return nil, err
	}
	return out[0].(*big.Int), nil
}

func (d *delegationContract) HasAccess(ctx context.Context, ns, name string, path []string, operator common.Address, atTime *big.Int) (bool, error) {
	out, err := d.call(ctx, "hasAccess", ns, name, path, operator, atTime)
	if err != nil {
		return false, err
	}
	return out[0].(bool), nil
}

func (d *delegationContract) HierarchicalMoveCalldata(ns, name string, path []string, mv string) ([]byte, error) {
	return d.pack("sendHierarchicalMove", ns, name, path, mv)
}
