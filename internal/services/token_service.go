package services

import (
	"context"
	"fmt"
	"math/big"

	"github.com/xayaplatform/xaya-move-api/internal/chain"
	"github.com/xayaplatform/xaya-move-api/internal/logger"
	"github.com/xayaplatform/xaya-move-api/internal/types"
	"go.uber.org/zap"
)

// TokenService exposes WCHI token queries and static chain information.
type TokenService struct {
	wchi       chain.Wchi
	accounts   chain.Accounts
	delegation chain.Delegation
	chainID    *big.Int
	logger     *zap.Logger
}

// NewTokenService creates a new token service.
func NewTokenService(wchi chain.Wchi, accounts chain.Accounts, delegation chain.Delegation, chainID *big.Int) *TokenService {
	return &TokenService{
		wchi:       wchi,
		accounts:   accounts,
		delegation: delegation,
		chainID:    chainID,
		logger:     logger.Log,
	}
}

// WchiBalance returns the WCHI balance of an address, formatted with
// the token's decimals.
func (s *TokenService) WchiBalance(ctx context.Context, owner string) (string, error) {
	addr, err := NormalizeAddress(owner)
	if err != nil {
		return "", err
	}
	balance, err := s.wchi.BalanceOf(ctx, addr)
	if err != nil {
		return "", err
	}
	decimals, err := s.wchi.Decimals(ctx)
	if err != nil {
		return "", err
	}
	return formatWchi(balance, decimals), nil
}

// WchiAllowance returns the WCHI allowance a spender holds from an
// owner, formatted with the token's decimals.
func (s *TokenService) WchiAllowance(ctx context.Context, owner, spender string) (string, error) {
	ownerAddr, err := NormalizeAddress(owner)
	if err != nil {
		return "", err
	}
	spenderAddr, err := NormalizeAddress(spender)
	if err != nil {
		return "", err
	}
	allowance, err := s.wchi.Allowance(ctx, ownerAddr, spenderAddr)
	if err != nil {
		return "", err
	}
	decimals, err := s.wchi.Decimals(ctx)
	if err != nil {
		return "", err
	}
	return formatWchi(allowance, decimals), nil
}

// ChainInfo reports the chain ID and the contract addresses in use.
func (s *TokenService) ChainInfo() types.ChainInfo {
	return types.ChainInfo{
		ChainID:           s.chainID.String(),
		WchiAddress:       s.wchi.Address().Hex(),
		AccountsAddress:   s.accounts.Address().Hex(),
		DelegationAddress: s.delegation.Address().Hex(),
	}
}

// formatWchi renders a raw token amount as a decimal WCHI quantity.
func formatWchi(amount *big.Int, decimals uint8) string {
	value := new(big.Float).SetPrec(256).SetInt(amount)
	scale := new(big.Float).SetPrec(256).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil))
	value.Quo(value, scale)
	return fmt.Sprintf("%s WCHI", value.Text('f', -1))
}
