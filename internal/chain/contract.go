package chain

import (
	"context"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/xayaplatform/xaya-move-api/internal/apperr"
)

// contract is a thin binding around one deployed contract: it packs
// arguments, issues eth_call reads and unpacks results.
type contract struct {
	abi     abi.ABI
	address common.Address
	backend Backend
}

func newContract(rawABI string, address common.Address, backend Backend) (*contract, error) {
	parsed, err := abi.JSON(strings.NewReader(rawABI))
	if err != nil {
		return nil, err
	}
	return &contract{abi: parsed, address: address, backend: backend}, nil
}

// call performs a read-only contract call and unpacks the outputs. A
// revert or node failure surfaces as a contract execution error.
func (c *contract) call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	data, err := c.abi.Pack(method, args...)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindContractExecution, err, "failed to encode %s call", method)
	}
	out, err := c.backend.CallContract(ctx, ethereum.CallMsg{To: &c.address, Data: data}, nil)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindContractExecution, err, "%s call failed", method)
	}
	results, err := c.abi.Unpack(method, out)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindContractExecution, err, "failed to decode %s result", method)
	}
	return results, nil
}

// pack returns the calldata for a state-changing method, for use in a
// signed transaction.
func (c *contract) pack(method string, args ...interface{}) ([]byte, error) {
	data, err := c.abi.Pack(method, args...)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindContractExecution, err, "failed to encode %s call", method)
	}
	return data, nil
}
