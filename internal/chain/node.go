package chain

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/xayaplatform/xaya-move-api/internal/logger"
	"go.uber.org/zap"
)

// Node represents the connection to the blockchain node and the Xaya
// contracts. The accounts and WCHI contracts are discovered from the
// delegation contract on startup.
type Node struct {
	client     *ethclient.Client
	backend    Backend
	chainID    *big.Int
	Accounts   Accounts
	Delegation Delegation
	Wchi       Wchi
}

// Dial connects to the node at rpcURL and binds the contracts starting
// from the delegation contract address.
func Dial(ctx context.Context, rpcURL, delegationContract string) (*Node, error) {
	if !common.IsHexAddress(delegationContract) {
		return nil, fmt.Errorf("invalid delegation contract address %q", delegationContract)
	}

	logger.Info("Connecting to EVM node", zap.String("rpc_url", rpcURL))
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to node: %w", err)
	}

	node, err := newNode(ctx, client, client, common.HexToAddress(delegationContract))
	if err != nil {
		client.Close()
		return nil, err
	}
	node.client = client

	logger.Info("Connected to chain", zap.String("chain_id", node.chainID.String()))
	logger.Info("WCHI contract", zap.String("address", node.Wchi.Address().Hex()))
	logger.Info("Xaya accounts contract", zap.String("address", node.Accounts.Address().Hex()))
	logger.Info("Xaya delegation contract", zap.String("address", node.Delegation.Address().Hex()))

	return node, nil
}

// newNode performs contract discovery on any Backend. Split from Dial
// so tests can run it against a mocked backend.
func newNode(ctx context.Context, client *ethclient.Client, backend Backend, delegationAddr common.Address) (*Node, error) {
	delegation, err := NewDelegation(delegationAddr, backend)
	if err != nil {
		return nil, fmt.Errorf("failed to bind delegation contract: %w", err)
	}

	accountsAddr, err := delegation.AccountsAddress(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve accounts contract: %w", err)
	}
	accounts, err := NewAccounts(accountsAddr, backend)
	if err != nil {
		return nil, fmt.Errorf("failed to bind accounts contract: %w", err)
	}

	wchiAddr, err := accounts.WchiToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve WCHI contract: %w", err)
	}
	wchi, err := NewWchi(wchiAddr, backend)
	if err != nil {
		return nil, fmt.Errorf("failed to bind WCHI contract: %w", err)
	}

	chainID, err := backend.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}

	return &Node{
		client:     client,
		backend:    backend,
		chainID:    chainID,
		Accounts:   accounts,
		Delegation: delegation,
		Wchi:       wchi,
	}, nil
}

// Backend returns the underlying node backend.
func (n *Node) Backend() Backend {
	return n.backend
}

// ChainID returns the connected chain's ID.
func (n *Node) ChainID() *big.Int {
	return new(big.Int).Set(n.chainID)
}

// Close closes the RPC connection.
func (n *Node) Close() {
	if n.client != nil {
		n.client.Close()
	}
}
