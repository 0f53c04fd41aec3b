// Package config loads service configuration from the environment. The
// entrypoint loads a .env file first for local development; in deployed
// stages the variables are set directly on the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/xayaplatform/xaya-move-api/internal/constants"
	"github.com/xayaplatform/xaya-move-api/internal/types"
)

// Config holds the full service configuration.
type Config struct {
	Stage string
	Port  int

	// RPCURL is the EVM node JSON-RPC endpoint.
	RPCURL string
	// DelegationContract is the address of the XayaDelegation contract;
	// the accounts and WCHI contracts are discovered from it on startup.
	DelegationContract string
	// SubgraphURL is The Graph endpoint for the stats subgraph. Optional;
	// the subgraph endpoints are disabled when empty.
	SubgraphURL string

	// OperatorPrivKey is the hex-encoded private key used to sign moves
	// when no per-call key is given. Optional.
	OperatorPrivKey string

	// DefaultGas is the gas configuration merged with per-call overrides.
	DefaultGas types.GasSettings

	// AccessGraceSeconds forward-dates the delegation hasAccess check to
	// tolerate submission latency.
	AccessGraceSeconds int
	// ReceiptTimeoutSeconds bounds waiting for a transaction receipt.
	ReceiptTimeoutSeconds int
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = constants.StageLocal
	}
	if !constants.IsValidStage(stage) {
		return nil, fmt.Errorf("invalid STAGE %q: must be one of %s, %s, %s",
			stage, constants.StageProd, constants.StageDev, constants.StageLocal)
	}

	cfg := &Config{
		Stage:                 stage,
		Port:                  8000,
		RPCURL:                os.Getenv("RPC_URL"),
		DelegationContract:    os.Getenv("DELEGATION_CONTRACT"),
		SubgraphURL:           os.Getenv("SUBGRAPH_URL"),
		OperatorPrivKey:       os.Getenv("OPERATOR_PRIVKEY"),
		AccessGraceSeconds:    constants.DefaultAccessGraceSeconds,
		ReceiptTimeoutSeconds: constants.DefaultReceiptTimeoutSeconds,
	}

	if cfg.RPCURL == "" {
		return nil, fmt.Errorf("RPC_URL is required")
	}
	if cfg.DelegationContract == "" {
		return nil, fmt.Errorf("DELEGATION_CONTRACT is required")
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 {
			return nil, fmt.Errorf("invalid PORT %q", v)
		}
		cfg.Port = port
	}

	if v := os.Getenv("GAS_MAX_GWEI"); v != "" {
		max, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid GAS_MAX_GWEI %q", v)
		}
		cfg.DefaultGas.Max = &max
	}
	if v := os.Getenv("GAS_PRIO_GWEI"); v != "" {
		prio, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid GAS_PRIO_GWEI %q", v)
		}
		cfg.DefaultGas.Prio = &prio
	}

	if v := os.Getenv("ACCESS_GRACE_SECONDS"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs < 0 {
			return nil, fmt.Errorf("invalid ACCESS_GRACE_SECONDS %q", v)
		}
		cfg.AccessGraceSeconds = secs
	}
	if v := os.Getenv("RECEIPT_TIMEOUT_SECONDS"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			return nil, fmt.Errorf("invalid RECEIPT_TIMEOUT_SECONDS %q", v)
		}
		cfg.ReceiptTimeoutSeconds = secs
	}

	return cfg, nil
}
