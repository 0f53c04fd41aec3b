package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/xayaplatform/xaya-move-api/internal/chain"
	"github.com/xayaplatform/xaya-move-api/internal/config"
	"github.com/xayaplatform/xaya-move-api/internal/logger"
	"github.com/xayaplatform/xaya-move-api/internal/server"
	"go.uber.org/zap"
)

func main() {
	envFile := flag.String("env", ".env", "Path to the environment file for local development")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil && !os.IsNotExist(err) {
		// A missing .env file is fine in deployed environments where the
		// variables are set directly.
		log.Printf("Warning: Error loading env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger.InitLogger(cfg.Stage)
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	node, err := chain.Dial(ctx, cfg.RPCURL, cfg.DelegationContract)
	cancel()
	if err != nil {
		logger.Fatal("Failed to initialize blockchain node", zap.Error(err))
	}
	defer node.Close()

	srv, err := server.New(cfg, node)
	if err != nil {
		logger.Fatal("Failed to initialize server", zap.Error(err))
	}

	if err := srv.Run(); err != nil {
		logger.Fatal("Server exited", zap.Error(err))
	}
}
