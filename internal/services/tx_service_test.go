package services_test

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xayaplatform/xaya-move-api/internal/apperr"
	"github.com/xayaplatform/xaya-move-api/internal/mocks"
	"github.com/xayaplatform/xaya-move-api/internal/services"
	"github.com/xayaplatform/xaya-move-api/internal/types"
	"go.uber.org/mock/gomock"
)

func gasPtr(v float64) *float64 { return &v }

type txFixture struct {
	backend    *mocks.MockBackend
	accounts   *mocks.MockAccounts
	delegation *mocks.MockDelegation
	service    *services.TxService
}

func newTxFixture(t *testing.T, timeout time.Duration) *txFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	backend := mocks.NewMockBackend(ctrl)
	accounts := mocks.NewMockAccounts(ctrl)
	delegation := mocks.NewMockDelegation(ctrl)

	mover := services.NewMoveService(accounts, delegation, nil, time.Minute)
	defaultGas := types.GasSettings{Max: gasPtr(5), Prio: gasPtr(1)}
	service := services.NewTxService(backend, accounts, delegation, mover,
		big.NewInt(137), nil, defaultGas, timeout)

	return &txFixture{
		backend:    backend,
		accounts:   accounts,
		delegation: delegation,
		service:    service,
	}
}

func TestTxService_SubmitMove_DirectMove(t *testing.T) {
	f := newTxFixture(t, time.Minute)
	ctx := context.Background()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	from := crypto.PubkeyToAddress(key.PublicKey)
	accountsAddr := common.HexToAddress("0x6666666666666666666666666666666666666666")
	calldata := []byte{0xde, 0xad, 0xbe, 0xef}

	// The signer owns the name, so the move goes straight to the
	// accounts contract.
	f.accounts.EXPECT().TokenIDForName(ctx, "p", "domob").Return(big.NewInt(7), nil)
	f.accounts.EXPECT().OwnerOf(ctx, big.NewInt(7)).Return(from, nil)
	f.accounts.EXPECT().Address().Return(accountsAddr)
	f.accounts.EXPECT().MoveCalldata("p", "domob", `{"g":{"tn":{"m":"x"}}}`).Return(calldata, nil)
	f.backend.EXPECT().PendingNonceAt(ctx, from).Return(uint64(3), nil)
	f.backend.EXPECT().
		EstimateGas(ctx, gomock.Cond(func(msg ethereum.CallMsg) bool {
			return msg.From == from && *msg.To == accountsAddr
		})).
		Return(uint64(90000), nil)

	var sent *ethtypes.Transaction
	f.backend.EXPECT().
		SendTransaction(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *ethtypes.Transaction) error {
			sent = tx
			return nil
		})

	txid, err := f.service.SubmitMove(ctx, "p", "domob", nestedMove(),
		"0x"+common.Bytes2Hex(crypto.FromECDSA(key)), &types.GasSettings{Prio: gasPtr(2)})

	assert.NoError(t, err)
	require.NotNil(t, sent)
	assert.Equal(t, sent.Hash().Hex(), txid)

	assert.Equal(t, uint64(3), sent.Nonce())
	assert.Equal(t, uint64(90000), sent.Gas())
	assert.Equal(t, accountsAddr, *sent.To())
	assert.Equal(t, calldata, sent.Data())
	assert.Equal(t, int64(0), sent.Value().Int64())
	// 5 gwei from the default, 2 gwei prio from the override.
	assert.Equal(t, big.NewInt(5_000_000_000), sent.GasFeeCap())
	assert.Equal(t, big.NewInt(2_000_000_000), sent.GasTipCap())

	sender, err := ethtypes.Sender(ethtypes.LatestSignerForChainID(big.NewInt(137)), sent)
	assert.NoError(t, err)
	assert.Equal(t, from, sender)
}

func TestTxService_SubmitMove_DelegatedMove(t *testing.T) {
	f := newTxFixture(t, time.Minute)
	ctx := context.Background()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	from := crypto.PubkeyToAddress(key.PublicKey)
	calldata := []byte{0x01, 0x02}

	f.delegation.EXPECT().Address().Return(delegationAddr).AnyTimes()
	f.accounts.EXPECT().TokenIDForName(ctx, "p", "domob").Return(big.NewInt(7), nil)
	f.accounts.EXPECT().OwnerOf(ctx, big.NewInt(7)).Return(ownerAddr, nil)
	f.accounts.EXPECT().IsApprovedForAll(ctx, ownerAddr, from).Return(false, nil)
	f.accounts.EXPECT().GetApproved(ctx, big.NewInt(7)).Return(common.Address{}, nil)
	f.accounts.EXPECT().IsApprovedForAll(ctx, ownerAddr, delegationAddr).Return(true, nil)
	f.delegation.EXPECT().
		HasAccess(ctx, "p", "domob", []string{"g", "tn"}, from, gomock.Any()).
		Return(true, nil)
	f.delegation.EXPECT().
		HierarchicalMoveCalldata("p", "domob", []string{"g", "tn"}, `{"m":"x"}`).
		Return(calldata, nil)
	f.backend.EXPECT().PendingNonceAt(ctx, from).Return(uint64(0), nil)
	f.backend.EXPECT().
		EstimateGas(ctx, gomock.Cond(func(msg ethereum.CallMsg) bool {
			return *msg.To == delegationAddr
		})).
		Return(uint64(120000), nil)

	var sent *ethtypes.Transaction
	f.backend.EXPECT().
		SendTransaction(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *ethtypes.Transaction) error {
			sent = tx
			return nil
		})

	txid, err := f.service.SubmitMove(ctx, "p", "domob", nestedMove(),
		common.Bytes2Hex(crypto.FromECDSA(key)), nil)

	assert.NoError(t, err)
	require.NotNil(t, sent)
	assert.Equal(t, sent.Hash().Hex(), txid)
	assert.Equal(t, delegationAddr, *sent.To())
	assert.Equal(t, calldata, sent.Data())
}

func TestTxService_SubmitMove_Errors(t *testing.T) {
	ctx := context.Background()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	keyHex := common.Bytes2Hex(crypto.FromECDSA(key))
	from := crypto.PubkeyToAddress(key.PublicKey)

	tests := []struct {
		name         string
		privKey      string
		gas          *types.GasSettings
		setupMocks   func(f *txFixture)
		expectedKind apperr.Kind
	}{
		{
			name:         "no key and no operator configured",
			privKey:      "",
			setupMocks:   func(f *txFixture) {},
			expectedKind: apperr.KindInvalidArgument,
		},
		{
			name:         "malformed private key",
			privKey:      "0xzz",
			setupMocks:   func(f *txFixture) {},
			expectedKind: apperr.KindInvalidArgument,
		},
		{
			name:    "no permission",
			privKey: keyHex,
			setupMocks: func(f *txFixture) {
				f.delegation.EXPECT().Address().Return(delegationAddr).AnyTimes()
				f.accounts.EXPECT().TokenIDForName(ctx, "p", "domob").Return(big.NewInt(7), nil)
				f.accounts.EXPECT().OwnerOf(ctx, big.NewInt(7)).Return(ownerAddr, nil)
				f.accounts.EXPECT().IsApprovedForAll(ctx, ownerAddr, from).Return(false, nil)
				f.accounts.EXPECT().GetApproved(ctx, big.NewInt(7)).Return(common.Address{}, nil).Times(2)
				f.accounts.EXPECT().IsApprovedForAll(ctx, ownerAddr, delegationAddr).Return(false, nil)
			},
			expectedKind: apperr.KindPermissionDenied,
		},
		{
			name:    "nonce fetch failure",
			privKey: keyHex,
			setupMocks: func(f *txFixture) {
				f.accounts.EXPECT().TokenIDForName(ctx, "p", "domob").Return(big.NewInt(7), nil)
				f.accounts.EXPECT().OwnerOf(ctx, big.NewInt(7)).Return(from, nil)
				f.accounts.EXPECT().Address().Return(common.Address{})
				f.accounts.EXPECT().MoveCalldata("p", "domob", gomock.Any()).Return([]byte{0x01}, nil)
				f.backend.EXPECT().PendingNonceAt(ctx, from).Return(uint64(0), assert.AnError)
			},
			expectedKind: apperr.KindSubmission,
		},
		{
			name:    "gas estimation failure surfaces as contract error",
			privKey: keyHex,
			setupMocks: func(f *txFixture) {
				f.accounts.EXPECT().TokenIDForName(ctx, "p", "domob").Return(big.NewInt(7), nil)
				f.accounts.EXPECT().OwnerOf(ctx, big.NewInt(7)).Return(from, nil)
				f.accounts.EXPECT().Address().Return(common.Address{})
				f.accounts.EXPECT().MoveCalldata("p", "domob", gomock.Any()).Return([]byte{0x01}, nil)
				f.backend.EXPECT().PendingNonceAt(ctx, from).Return(uint64(0), nil)
				f.backend.EXPECT().EstimateGas(ctx, gomock.Any()).Return(uint64(0), assert.AnError)
			},
			expectedKind: apperr.KindContractExecution,
		},
		{
			name:    "broadcast rejection",
			privKey: keyHex,
			setupMocks: func(f *txFixture) {
				f.accounts.EXPECT().TokenIDForName(ctx, "p", "domob").Return(big.NewInt(7), nil)
				f.accounts.EXPECT().OwnerOf(ctx, big.NewInt(7)).Return(from, nil)
				f.accounts.EXPECT().Address().Return(common.Address{})
				f.accounts.EXPECT().MoveCalldata("p", "domob", gomock.Any()).Return([]byte{0x01}, nil)
				f.backend.EXPECT().PendingNonceAt(ctx, from).Return(uint64(0), nil)
				f.backend.EXPECT().EstimateGas(ctx, gomock.Any()).Return(uint64(21000), nil)
				f.backend.EXPECT().SendTransaction(ctx, gomock.Any()).Return(assert.AnError)
			},
			expectedKind: apperr.KindSubmission,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTxFixture(t, time.Minute)
			tt.setupMocks(f)

			_, err := f.service.SubmitMove(ctx, "p", "domob", nestedMove(), tt.privKey, tt.gas)

			assert.Error(t, err)
			assert.True(t, apperr.IsKind(err, tt.expectedKind),
				"expected kind %v, got %v (%v)", tt.expectedKind, apperr.KindOf(err), err)
		})
	}
}

func TestTxService_SubmitMove_IncompleteGas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := mocks.NewMockBackend(ctrl)
	accounts := mocks.NewMockAccounts(ctrl)
	delegation := mocks.NewMockDelegation(ctrl)
	mover := services.NewMoveService(accounts, delegation, nil, time.Minute)

	// Only max configured; no prio from either side.
	service := services.NewTxService(backend, accounts, delegation, mover,
		big.NewInt(137), nil, types.GasSettings{Max: gasPtr(5)}, time.Minute)

	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	_, err = service.SubmitMove(context.Background(), "p", "domob", nestedMove(),
		common.Bytes2Hex(crypto.FromECDSA(key)), nil)

	assert.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidArgument))
}

func TestTxService_GetStatus(t *testing.T) {
	ctx := context.Background()

	txSuccess := common.HexToHash("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	txReverted := common.HexToHash("0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")
	txMissing := common.HexToHash("0xcccccccccccccccccccccccccccccccccccccccccccccccccccccccccccccccc")

	t.Run("validation", func(t *testing.T) {
		f := newTxFixture(t, time.Minute)

		_, err := f.service.GetStatus(ctx, nil, false)
		assert.True(t, apperr.IsKind(err, apperr.KindInvalidArgument))

		_, err = f.service.GetStatus(ctx, []string{"abcdef"}, false)
		assert.True(t, apperr.IsKind(err, apperr.KindInvalidArgument))
	})

	t.Run("mixed outcomes without waiting", func(t *testing.T) {
		f := newTxFixture(t, time.Minute)

		f.backend.EXPECT().TransactionReceipt(gomock.Any(), txSuccess).
			Return(&ethtypes.Receipt{Status: ethtypes.ReceiptStatusSuccessful}, nil)
		f.backend.EXPECT().TransactionReceipt(gomock.Any(), txReverted).
			Return(&ethtypes.Receipt{Status: ethtypes.ReceiptStatusFailed}, nil)
		f.backend.EXPECT().TransactionReceipt(gomock.Any(), txMissing).
			Return(nil, ethereum.NotFound)

		result, err := f.service.GetStatus(ctx,
			[]string{txSuccess.Hex(), txReverted.Hex(), txMissing.Hex()}, false)

		assert.NoError(t, err)
		assert.Equal(t, types.TxSuccess, result[txSuccess.Hex()])
		assert.Equal(t, types.TxReverted, result[txReverted.Hex()])
		assert.Equal(t, types.TxNotFound, result[txMissing.Hex()])
	})

	t.Run("waiting returns once the receipt exists", func(t *testing.T) {
		f := newTxFixture(t, time.Minute)

		f.backend.EXPECT().TransactionReceipt(gomock.Any(), txSuccess).
			Return(&ethtypes.Receipt{Status: ethtypes.ReceiptStatusSuccessful}, nil)

		result, err := f.service.GetStatus(ctx, []string{txSuccess.Hex()}, true)

		assert.NoError(t, err)
		assert.Equal(t, types.TxSuccess, result[txSuccess.Hex()])
	})

	t.Run("waiting times out on a missing receipt", func(t *testing.T) {
		f := newTxFixture(t, 50*time.Millisecond)

		f.backend.EXPECT().TransactionReceipt(gomock.Any(), txMissing).
			Return(nil, ethereum.NotFound).AnyTimes()

		_, err := f.service.GetStatus(ctx, []string{txMissing.Hex()}, true)

		assert.Error(t, err)
		assert.True(t, apperr.IsKind(err, apperr.KindTimeout))
	})

	t.Run("node error surfaces", func(t *testing.T) {
		f := newTxFixture(t, time.Minute)

		f.backend.EXPECT().TransactionReceipt(gomock.Any(), txSuccess).
			Return(nil, assert.AnError)

		_, err := f.service.GetStatus(ctx, []string{txSuccess.Hex()}, false)

		assert.Error(t, err)
		assert.True(t, apperr.IsKind(err, apperr.KindContractExecution))
	})
}
