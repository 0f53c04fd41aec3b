package handlers_test

import (
	"bytes"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xayaplatform/xaya-move-api/internal/handlers"
	"github.com/xayaplatform/xaya-move-api/internal/logger"
	"github.com/xayaplatform/xaya-move-api/internal/middleware"
	"github.com/xayaplatform/xaya-move-api/internal/mocks"
	"github.com/xayaplatform/xaya-move-api/internal/services"
	"github.com/xayaplatform/xaya-move-api/internal/types"
	"go.uber.org/mock/gomock"
)

func init() {
	logger.InitLogger("test")
	gin.SetMode(gin.TestMode)
	binding.EnableDecoderUseNumber = true
}

type handlerFixture struct {
	accounts   *mocks.MockAccounts
	delegation *mocks.MockDelegation
	wchi       *mocks.MockWchi
	backend    *mocks.MockBackend
	router     *gin.Engine
}

func gasPtr(v float64) *float64 { return &v }

func newHandlerFixture(t *testing.T) *handlerFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	accounts := mocks.NewMockAccounts(ctrl)
	delegation := mocks.NewMockDelegation(ctrl)
	wchi := mocks.NewMockWchi(ctrl)
	backend := mocks.NewMockBackend(ctrl)

	nameService := services.NewNameService(accounts)
	tokenService := services.NewTokenService(wchi, accounts, delegation, big.NewInt(137))
	permissionService := services.NewPermissionService(accounts, delegation)
	moveService := services.NewMoveService(accounts, delegation, nil, time.Minute)
	txService := services.NewTxService(backend, accounts, delegation, moveService,
		big.NewInt(137), nil, types.GasSettings{Max: gasPtr(5), Prio: gasPtr(1)}, time.Minute)

	nameHandler := handlers.NewNameHandler(nameService, tokenService, permissionService)
	moveHandler := handlers.NewMoveHandler(moveService, txService)

	router := gin.New()
	router.Use(middleware.CorrelationIDMiddleware())
	router.GET("/health", handlers.HealthCheck)
	router.GET("/chain/info", nameHandler.ChainInfo)
	router.POST("/names/token-id", nameHandler.ResolveToken)
	router.POST("/names/owner", nameHandler.ResolveOwner)
	router.POST("/tokens/owner", nameHandler.TokenOwner)
	router.POST("/wchi/balance", nameHandler.WchiBalance)
	router.POST("/moves/check", moveHandler.CheckPermission)
	router.POST("/moves/send", moveHandler.SendMove)
	router.POST("/transactions/status", moveHandler.TransactionStatus)

	return &handlerFixture{
		accounts:   accounts,
		delegation: delegation,
		wchi:       wchi,
		backend:    backend,
		router:     router,
	}
}

func (f *handlerFixture) request(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealthCheck(t *testing.T) {
	f := newHandlerFixture(t)

	w := f.request(t, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decodeBody(t, w)["status"])
}

func TestNameHandler_ResolveToken(t *testing.T) {
	t.Run("existing name", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.accounts.EXPECT().TokenIDForName(gomock.Any(), "p", "domob").Return(big.NewInt(12345), nil)

		w := f.request(t, http.MethodPost, "/names/token-id", `{"ns": "p", "name": "domob"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "12345", decodeBody(t, w)["tokenId"])
	})

	t.Run("unknown name maps to 404 with a typed kind", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.accounts.EXPECT().TokenIDForName(gomock.Any(), "p", "nobody").Return(nil, assert.AnError)

		w := f.request(t, http.MethodPost, "/names/token-id", `{"ns": "p", "name": "nobody"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "not_found", body["kind"])
		assert.NotEmpty(t, body["correlation_id"])
	})

	t.Run("missing fields are a bad request", func(t *testing.T) {
		f := newHandlerFixture(t)

		w := f.request(t, http.MethodPost, "/names/token-id", `{"ns": "p"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestNameHandler_TokenOwner(t *testing.T) {
	f := newHandlerFixture(t)
	owner := common.HexToAddress("0x1111111111111111111111111111111111111111")

	// A large decimal token ID must survive JSON decoding unmangled.
	f.accounts.EXPECT().
		OwnerOf(gomock.Any(), gomock.Cond(func(id *big.Int) bool {
			expected, _ := new(big.Int).SetString("36185027886661344501709775484676719393561338212044008423475592217920668107902", 10)
			return id.Cmp(expected) == 0
		})).
		Return(owner, nil)

	w := f.request(t, http.MethodPost, "/tokens/owner",
		`{"token_id": 36185027886661344501709775484676719393561338212044008423475592217920668107902}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, owner.Hex(), decodeBody(t, w)["owner"])
}

func TestNameHandler_WchiBalance(t *testing.T) {
	f := newHandlerFixture(t)
	holder := common.HexToAddress("0x7777777777777777777777777777777777777777")

	f.wchi.EXPECT().BalanceOf(gomock.Any(), holder).Return(big.NewInt(150000000), nil)
	f.wchi.EXPECT().Decimals(gomock.Any()).Return(uint8(8), nil)

	w := f.request(t, http.MethodPost, "/wchi/balance",
		`{"owner": "`+holder.Hex()+`"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1.5 WCHI", decodeBody(t, w)["balance"])
}

func TestMoveHandler_CheckPermission(t *testing.T) {
	f := newHandlerFixture(t)
	owner := common.HexToAddress("0x1111111111111111111111111111111111111111")

	f.accounts.EXPECT().TokenIDForName(gomock.Any(), "p", "domob").Return(big.NewInt(7), nil)
	f.accounts.EXPECT().OwnerOf(gomock.Any(), big.NewInt(7)).Return(owner, nil)

	w := f.request(t, http.MethodPost, "/moves/check",
		`{"ns": "p", "name": "domob", "move": {"g": {"tn": {"m": "x"}}}, "address": "`+owner.Hex()+`"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["hasPermission"])
	assert.Equal(t, false, body["delegation"])
}

func TestMoveHandler_SendMove_NoKeyConfigured(t *testing.T) {
	f := newHandlerFixture(t)

	w := f.request(t, http.MethodPost, "/moves/send",
		`{"ns": "p", "name": "domob", "move": {"g": {}}}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_argument", decodeBody(t, w)["kind"])
}

func TestMoveHandler_TransactionStatus(t *testing.T) {
	txHash := common.HexToHash("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")

	t.Run("single txid as a plain string", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.backend.EXPECT().TransactionReceipt(gomock.Any(), txHash).
			Return(&ethtypes.Receipt{Status: ethtypes.ReceiptStatusSuccessful}, nil)

		w := f.request(t, http.MethodPost, "/transactions/status",
			`{"txids": "`+txHash.Hex()+`", "wait": false}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "success", decodeBody(t, w)[txHash.Hex()])
	})

	t.Run("list of txids", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.backend.EXPECT().TransactionReceipt(gomock.Any(), txHash).
			Return(nil, ethereum.NotFound)

		w := f.request(t, http.MethodPost, "/transactions/status",
			`{"txids": ["`+txHash.Hex()+`"], "wait": false}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "notfound", decodeBody(t, w)[txHash.Hex()])
	})

	t.Run("malformed txids value", func(t *testing.T) {
		f := newHandlerFixture(t)

		w := f.request(t, http.MethodPost, "/transactions/status",
			`{"txids": {"tx": 1}, "wait": false}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestChainInfo(t *testing.T) {
	f := newHandlerFixture(t)

	wchiAddr := common.HexToAddress("0x9999999999999999999999999999999999999999")
	accountsAddr := common.HexToAddress("0x8888888888888888888888888888888888888888")
	delegationAddr := common.HexToAddress("0x3333333333333333333333333333333333333333")

	f.wchi.EXPECT().Address().Return(wchiAddr)
	f.accounts.EXPECT().Address().Return(accountsAddr)
	f.delegation.EXPECT().Address().Return(delegationAddr)

	w := f.request(t, http.MethodGet, "/chain/info", "")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "137", body["chainId"])
	assert.Equal(t, wchiAddr.Hex(), body["wchiAddress"])
	assert.Equal(t, accountsAddr.Hex(), body["accountsAddress"])
	assert.Equal(t, delegationAddr.Hex(), body["delegationAddress"])
}
