package chain

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Wchi is the binding for the WCHI ERC-20 token contract.
type Wchi interface {
	Address() common.Address
	BalanceOf(ctx context.Context, owner common.Address) (*big.Int, error)
	Allowance(ctx context.Context, owner, spender common.Address) (*big.Int, error)
	Decimals(ctx context.Context) (uint8, error)
}

type wchiContract struct {
	*contract
}

// NewWchi binds the WCHI token contract at the given address.
func NewWchi(address common.Address, backend Backend) (Wchi, error) {
	c, err := newContract(wchiABI, address, backend)
	if err != nil {
		return nil, err
	}
	return &wchiContract{contract: c}, nil
}

func (w *wchiContract) Address() common.Address {
	return w.address
}

func (w *wchiContract) BalanceOf(ctx context.Context, owner common.Address) (*big.Int, error) {
	out, err := w.call(ctx, "balanceOf", owner)
	if err != nil {
		return nil, err
	}
	return out[0].(*big.Int), nil
}

func (w *wchiContract) Allowance(ctx context.Context, owner, spender common.Address) (*big.Int, error) {
	out, err := w.call(ctx, "allowance", owner, spender)
	if err != nil {
		return nil, err
	}
	return out[0].(*big.Int), nil
}

func (w *wchiContract) Decimals(ctx context.Context) (uint8, error) {
	out, err := w.call(ctx, "decimals")
	if err != nil {
		return 0, err
	}
	return out[0].(uint8), nil
}
