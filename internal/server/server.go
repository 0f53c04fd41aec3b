package server

import (
	"crypto/ecdsa"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/xayaplatform/xaya-move-api/internal/chain"
	"github.com/xayaplatform/xaya-move-api/internal/config"
	"github.com/xayaplatform/xaya-move-api/internal/constants"
	"github.com/xayaplatform/xaya-move-api/internal/handlers"
	"github.com/xayaplatform/xaya-move-api/internal/logger"
	"github.com/xayaplatform/xaya-move-api/internal/middleware"
	"github.com/xayaplatform/xaya-move-api/internal/services"
	"github.com/xayaplatform/xaya-move-api/internal/subgraph"
	"go.uber.org/zap"
)

// Server wires the services and handlers onto a gin router.
type Server struct {
	router *gin.Engine
	cfg    *config.Config
}

// New builds the full handler stack on top of a connected node.
func New(cfg *config.Config, node *chain.Node) (*Server, error) {
	var operatorAddr *common.Address
	operatorKey, err := loadOperatorKey(cfg.OperatorPrivKey)
	if err != nil {
		return nil, err
	}
	if operatorKey != nil {
		addr := crypto.PubkeyToAddress(operatorKey.PublicKey)
		operatorAddr = &addr
		logger.Info("Operator account configured", zap.String("address", addr.Hex()))
	}

	nameService := services.NewNameService(node.Accounts)
	tokenService := services.NewTokenService(node.Wchi, node.Accounts, node.Delegation, node.ChainID())
	permissionService := services.NewPermissionService(node.Accounts, node.Delegation)
	moveService := services.NewMoveService(node.Accounts, node.Delegation, operatorAddr,
		time.Duration(cfg.AccessGraceSeconds)*time.Second)
	txService := services.NewTxService(node.Backend(), node.Accounts, node.Delegation, moveService,
		node.ChainID(), operatorKey, cfg.DefaultGas,
		time.Duration(cfg.ReceiptTimeoutSeconds)*time.Second)

	nameHandler := handlers.NewNameHandler(nameService, tokenService, permissionService)
	moveHandler := handlers.NewMoveHandler(moveService, txService)

	if cfg.Stage == constants.StageProd {
		gin.SetMode(gin.ReleaseMode)
	}
	// Token IDs are uint256; interface-typed JSON fields must decode as
	// json.Number, not float64, to survive the trip.
	binding.EnableDecoderUseNumber = true

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CorrelationIDMiddleware())
	router.Use(cors.Default())

	router.GET("/health", handlers.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/chain/info", nameHandler.ChainInfo)

		v1.POST("/names/token-id", nameHandler.ResolveToken)
		v1.POST("/names/owner", nameHandler.ResolveOwner)
		v1.POST("/tokens/name", nameHandler.TokenName)
		v1.POST("/tokens/owner", nameHandler.TokenOwner)

		v1.POST("/wchi/balance", nameHandler.WchiBalance)
		v1.POST("/wchi/allowance", nameHandler.WchiAllowance)

		v1.POST("/permissions", nameHandler.DelegationPermissions)

		v1.POST("/moves/check", moveHandler.CheckPermission)
		v1.POST("/moves/send", moveHandler.SendMove)
		v1.POST("/transactions/status", moveHandler.TransactionStatus)

		if cfg.SubgraphURL != "" {
			subgraphService := subgraph.NewService(subgraph.NewClient(cfg.SubgraphURL), node.Accounts)
			subgraphHandler := handlers.NewSubgraphHandler(subgraphService)
			v1.POST("/subgraph/registration", subgraphHandler.NameRegistration)
			v1.POST("/subgraph/names", subgraphHandler.NamesOwnedBy)
			v1.POST("/subgraph/game-moves", subgraphHandler.MovesForGame)
			v1.POST("/subgraph/name-moves", subgraphHandler.MovesForName)
		} else {
			logger.Warn("SUBGRAPH_URL not set, subgraph endpoints disabled")
		}
	}

	return &Server{router: router, cfg: cfg}, nil
}

// Router exposes the gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts serving on the configured port.
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	logger.Info("Server starting", zap.String("addr", addr))
	return s.router.Run(addr)
}

func loadOperatorKey(privKey string) (*ecdsa.PrivateKey, error) {
	if privKey == "" {
		return nil, nil
	}
	key, err := crypto.HexToECDSA(strings.TrimPrefix(privKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid OPERATOR_PRIVKEY: %w", err)
	}
	return key, nil
}
