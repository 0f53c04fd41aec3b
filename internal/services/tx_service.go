package services

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/params"
	"github.com/xayaplatform/xaya-move-api/internal/apperr"
	"github.com/xayaplatform/xaya-move-api/internal/chain"
	"github.com/xayaplatform/xaya-move-api/internal/constants"
	"github.com/xayaplatform/xaya-move-api/internal/logger"
	"github.com/xayaplatform/xaya-move-api/internal/types"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// statusParallelism bounds concurrent receipt lookups in GetStatus.
const statusParallelism = 8

// TxService builds, signs and broadcasts move transactions and tracks
// their outcome. Nothing is retried here; resubmission on node errors
// is caller policy.
type TxService struct {
	backend    chain.Backend
	accounts   chain.Accounts
	delegation chain.Delegation
	mover      *MoveService

	chainID     *big.Int
	operatorKey *ecdsa.PrivateKey
	defaultGas  types.GasSettings

	receiptTimeout time.Duration
	pollInterval   time.Duration

	logger *zap.Logger
}

// NewTxService creates a new transaction service. operatorKey may be
// nil when no default signing key is configured.
func NewTxService(backend chain.Backend, accounts chain.Accounts, delegation chain.Delegation, mover *MoveService, chainID *big.Int, operatorKey *ecdsa.PrivateKey, defaultGas types.GasSettings, receiptTimeout time.Duration) *TxService {
	return &TxService{
		backend:        backend,
		accounts:       accounts,
		delegation:     delegation,
		mover:          mover,
		chainID:        chainID,
		operatorKey:    operatorKey,
		defaultGas:     defaultGas,
		receiptTimeout: receiptTimeout,
		pollInterval:   constants.DefaultReceiptPollSeconds * time.Second,
		logger:         logger.Log,
	}
}

// SubmitMove authorizes, builds, signs and broadcasts a move for
// ns/name and returns the transaction hash.
func (s *TxService) SubmitMove(ctx context.Context, ns, name string, move interface{}, privKey string, gasOverride *types.GasSettings) (string, error) {
	key, err := s.signingKey(privKey)
	if err != nil {
		return "", err
	}
	from := crypto.PubkeyToAddress(key.PublicKey)

	gas := s.defaultGas.Merge(gasOverride)
	if !gas.Complete() {
		return "", apperr.New(apperr.KindInvalidArgument, "gas settings must contain 'max' and 'prio'")
	}

	permission, err := s.mover.CheckPermission(ctx, ns, name, move, from.Hex())
	if err != nil {
		return "", err
	}
	if !permission.HasPermission {
		if permission.Reason != "" {
			return "", apperr.New(apperr.KindPermissionDenied, "account does not have permission to send this move: %s", permission.Reason)
		}
		return "", apperr.New(apperr.KindPermissionDenied, "account does not have permission to send this move")
	}

	var to common.Address
	var calldata []byte
	if permission.Delegation {
		to = s.delegation.Address()
		calldata, err = s.delegation.HierarchicalMoveCalldata(ns, name, permission.Path, permission.Move)
	} else {
		to = s.accounts.Address()
		calldata, err = s.accounts.MoveCalldata(ns, name, permission.Move)
	}
	if err != nil {
		return "", err
	}

	nonce, err := s.backend.PendingNonceAt(ctx, from)
	if err != nil {
		return "", apperr.Wrap(apperr.KindSubmission, err, "failed to fetch account nonce")
	}

	feeCap := gweiToWei(*gas.Max)
	tipCap := gweiToWei(*gas.Prio)

	gasLimit, err := s.backend.EstimateGas(ctx, ethereum.CallMsg{
		From:      from,
		To:        &to,
		GasFeeCap: feeCap,
		GasTipCap: tipCap,
		Data:      calldata,
	})
	if err != nil {
		return "", apperr.Wrap(apperr.KindContractExecution, err, "gas estimation failed")
	}

	tx := ethtypes.NewTx(&ethtypes.DynamicFeeTx{
		ChainID:   s.chainID,
		Nonce:     nonce,
		GasTipCap: tipCap,
		GasFeeCap: feeCap,
		Gas:       gasLimit,
		To:        &to,
		Value:     big.NewInt(0),
		Data:      calldata,
	})
	signed, err := ethtypes.SignTx(tx, ethtypes.LatestSignerForChainID(s.chainID), key)
	if err != nil {
		return "", apperr.Wrap(apperr.KindSubmission, err, "failed to sign transaction")
	}

	if err := s.backend.SendTransaction(ctx, signed); err != nil {
		return "", apperr.Wrap(apperr.KindSubmission, err, "node rejected transaction broadcast")
	}

	txid := signed.Hash().Hex()
	s.logger.Info("Broadcast move transaction",
		zap.String("ns", ns),
		zap.String("name", name),
		zap.String("from", from.Hex()),
		zap.Bool("delegation", permission.Delegation),
		zap.String("txid", txid),
	)
	return txid, nil
}

// GetStatus resolves the outcome of each transaction identifier
// independently. With wait, it polls for receipts until the configured
// timeout; otherwise each lookup is a single non-blocking query.
func (s *TxService) GetStatus(ctx context.Context, txids []string, wait bool) (map[string]types.TxOutcome, error) {
	if len(txids) == 0 {
		return nil, apperr.New(apperr.KindInvalidArgument, "at least one transaction ID is required")
	}
	for _, txid := range txids {
		if !strings.HasPrefix(txid, "0x") {
			return nil, apperr.New(apperr.KindInvalidArgument, "transaction ID %q must be a 0x-prefixed hex string", txid)
		}
	}

	result := make(map[string]types.TxOutcome, len(txids))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(statusParallelism)
	for _, txid := range txids {
		txid := txid
		g.Go(func() error {
			outcome, err := s.statusOf(gctx, txid, wait)
			if err != nil {
				return err
			}
			mu.Lock()
			result[txid] = outcome
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *TxService) statusOf(ctx context.Context, txid string, wait bool) (types.TxOutcome, error) {
	hash := common.HexToHash(txid)

	if !wait {
		return s.lookupReceipt(ctx, hash)
	}

	waitCtx, cancel := context.WithTimeout(ctx, s.receiptTimeout)
	defer cancel()

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		outcome, err := s.lookupReceipt(waitCtx, hash)
		if err != nil {
			if waitCtx.Err() != nil {
				return "", apperr.Wrap(apperr.KindTimeout, waitCtx.Err(), "timed out waiting for receipt of %s", txid)
			}
			return "", err
		}
		if outcome != types.TxNotFound {
			return outcome, nil
		}

		select {
		case <-waitCtx.Done():
			return "", apperr.Wrap(apperr.KindTimeout, waitCtx.Err(), "timed out waiting for receipt of %s", txid)
		case <-ticker.C:
		}
	}
}

// lookupReceipt performs one receipt query. A missing receipt means the
// transaction is unmined or unknown; the node cannot distinguish the
// two, so neither do we.
func (s *TxService) lookupReceipt(ctx context.Context, hash common.Hash) (types.TxOutcome, error) {
	receipt, err := s.backend.TransactionReceipt(ctx, hash)
	if errors.Is(err, ethereum.NotFound) {
		return types.TxNotFound, nil
	}
	if err != nil {
		return "", apperr.Wrap(apperr.KindContractExecution, err, "failed to query receipt for %s", hash.Hex())
	}
	if receipt.Status == ethtypes.ReceiptStatusSuccessful {
		return types.TxSuccess, nil
	}
	return types.TxReverted, nil
}

// signingKey resolves the key for a submission: the explicit argument
// wins, else the configured operator key.
func (s *TxService) signingKey(privKey string) (*ecdsa.PrivateKey, error) {
	if privKey != "" {
		key, err := crypto.HexToECDSA(strings.TrimPrefix(privKey, "0x"))
		if err != nil {
			return nil, apperr.Wrap(apperr.KindInvalidArgument, err, "invalid private key")
		}
		return key, nil
	}
	if s.operatorKey == nil {
		return nil, apperr.New(apperr.KindInvalidArgument, "no private key specified and no operator account configured")
	}
	return s.operatorKey, nil
}

// gweiToWei converts a fractional gwei amount to wei.
func gweiToWei(gwei float64) *big.Int {
	wei, _ := new(big.Float).Mul(big.NewFloat(gwei), big.NewFloat(params.GWei)).Int(nil)
	return wei
}
