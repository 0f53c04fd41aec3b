package services

import (
	"context"
	"math/big"

	"github.com/xayaplatform/xaya-move-api/internal/apperr"
	"github.com/xayaplatform/xaya-move-api/internal/chain"
	"github.com/xayaplatform/xaya-move-api/internal/logger"
	"go.uber.org/zap"
)

// NameService resolves Xaya names to token identifiers and owners.
type NameService struct {
	accounts chain.Accounts
	logger   *zap.Logger
}

// NewNameService creates a new name service.
func NewNameService(accounts chain.Accounts) *NameService {
	return &NameService{
		accounts: accounts,
		logger:   logger.Log,
	}
}

// ResolveToken converts a namespace and name to its token identifier.
func (s *NameService) ResolveToken(ctx context.Context, ns, name string) (*big.Int, error) {
	if ns == "" {
		return nil, apperr.New(apperr.KindInvalidArgument, "ns (namespace) is required")
	}
	if name == "" {
		return nil, apperr.New(apperr.KindInvalidArgument, "name is required")
	}
	tokenID, err := s.accounts.TokenIDForName(ctx, ns, name)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindNotFound, err, "name %s/%s not found", ns, name)
	}
	return tokenID, nil
}

// ResolveOwner returns the owner address of a token. The identifier is
// accepted as integer, decimal string or 0x-prefixed hex string.
func (s *NameService) ResolveOwner(ctx context.Context, tokenID interface{}) (string, error) {
	id, err := NormalizeTokenID(tokenID)
	if err != nil {
		return "", err
	}
	owner, err := s.accounts.OwnerOf(ctx, id)
	if err != nil {
		return "", apperr.Wrap(apperr.KindNotFound, err, "token ID %s not found", id)
	}
	return owner.Hex(), nil
}

// TokenIDToName converts a token identifier back to its namespace and
// name.
func (s *NameService) TokenIDToName(ctx context.Context, tokenID interface{}) (string, string, error) {
	id, err := NormalizeTokenID(tokenID)
	if err != nil {
		return "", "", err
	}
	ns, name, err := s.accounts.TokenIDToName(ctx, id)
	if err != nil {
		return "", "", apperr.Wrap(apperr.KindNotFound, err, "token ID %s not found", id)
	}
	return ns, name, nil
}

// GetOwner resolves the owner of a name directly.
func (s *NameService) GetOwner(ctx context.Context, ns, name string) (string, error) {
	tokenID, err := s.ResolveToken(ctx, ns, name)
	if err != nil {
		return "", err
	}
	owner, err := s.accounts.OwnerOf(ctx, tokenID)
	if err != nil {
		return "", apperr.Wrap(apperr.KindNotFound, err, "name %s/%s not found", ns, name)
	}
	s.logger.Debug("Resolved name owner",
		zap.String("ns", ns),
		zap.String("name", name),
		zap.String("owner", owner.Hex()),
	)
	return owner.Hex(), nil
}
