package services

import (
	"context"
	"encoding/json"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/xayaplatform/xaya-move-api/internal/apperr"
	"github.com/xayaplatform/xaya-move-api/internal/chain"
	"github.com/xayaplatform/xaya-move-api/internal/logger"
	"github.com/xayaplatform/xaya-move-api/internal/types"
	"go.uber.org/zap"
)

// ReasonDelegationNotApproved is reported when a non-owner address can
// only act through delegation but the delegation contract itself is not
// approved for the token.
const ReasonDelegationNotApproved = "Delegation contract is not approved for this name"

// MoveService decides whether an address may send a move for a name.
// Precedence: owner, then direct approval, then delegated access via
// the delegation contract.
type MoveService struct {
	accounts   chain.Accounts
	delegation chain.Delegation

	// operator is the default acting address when none is given.
	operator *common.Address
	// grace forward-dates the hasAccess check so a grant expiring
	// between the check and the mined block does not cause a spurious
	// rejection.
	grace time.Duration

	now    func() time.Time
	logger *zap.Logger
}

// NewMoveService creates a new move permission service. operator may be
// nil when no default acting address is configured.
func NewMoveService(accounts chain.Accounts, delegation chain.Delegation, operator *common.Address, grace time.Duration) *MoveService {
	return &MoveService{
		accounts:   accounts,
		delegation: delegation,
		operator:   operator,
		grace:      grace,
		now:        time.Now,
		logger:     logger.Log,
	}
}

// CheckPermission decides whether actingAddress (or the configured
// operator when empty) may send the given move for ns/name. The result
// carries the serialized payload that would actually be submitted.
func (s *MoveService) CheckPermission(ctx context.Context, ns, name string, move interface{}, actingAddress string) (*types.AuthorizationResult, error) {
	if ns == "" {
		return nil, apperr.New(apperr.KindInvalidArgument, "ns (namespace) is required")
	}
	if name == "" {
		return nil, apperr.New(apperr.KindInvalidArgument, "name is required")
	}
	if move == nil {
		return nil, apperr.New(apperr.KindInvalidArgument, "move is required")
	}

	var checked common.Address
	if actingAddress == "" {
		if s.operator == nil {
			return nil, apperr.New(apperr.KindInvalidArgument, "no sending address provided and no operator account configured")
		}
		checked = *s.operator
	} else {
		addr, err := NormalizeAddress(actingAddress)
		if err != nil {
			return nil, err
		}
		checked = addr
	}

	tokenID, err := s.accounts.TokenIDForName(ctx, ns, name)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindNotFound, err, "name %s/%s not found", ns, name)
	}
	owner, err := s.accounts.OwnerOf(ctx, tokenID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindNotFound, err, "token ID %s not found", tokenID)
	}

	allowed := checked == owner
	if !allowed {
		allowed, err = s.isApproved(ctx, owner, tokenID, checked)
		if err != nil {
			return nil, err
		}
	}

	if allowed {
		serialized, err := serializeMove(move)
		if err != nil {
			return nil, err
		}
		return &types.AuthorizationResult{
			HasPermission: true,
			Delegation:    false,
			Move:          serialized,
			Address:       checked.Hex(),
		}, nil
	}

	delegationApproved, err := s.isApproved(ctx, owner, tokenID, s.delegation.Address())
	if err != nil {
		return nil, err
	}
	if !delegationApproved {
		return &types.AuthorizationResult{
			HasPermission: false,
			Address:       checked.Hex(),
			Reason:        ReasonDelegationNotApproved,
		}, nil
	}

	path, remainder := SplitMovePath(move)

	atTime := big.NewInt(s.now().Add(s.grace).Unix())
	hasAccess, err := s.delegation.HasAccess(ctx, ns, name, path, checked, atTime)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindContractExecution, err, "error calling hasAccess")
	}

	serialized, err := serializeMove(remainder)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Checked delegated move permission",
		zap.String("ns", ns),
		zap.String("name", name),
		zap.Strings("path", path),
		zap.Bool("has_access", hasAccess),
	)

	return &types.AuthorizationResult{
		HasPermission: hasAccess,
		Delegation:    true,
		Move:          serialized,
		Address:       checked.Hex(),
		Path:          path,
	}, nil
}

// isApproved reports whether operator holds blanket approval over all
// of owner's tokens or specific approval over this token. The two are
// deliberately equivalent here; approval is not scoped to move paths.
func (s *MoveService) isApproved(ctx context.Context, owner common.Address, tokenID *big.Int, operator common.Address) (bool, error) {
	approved, err := s.accounts.IsApprovedForAll(ctx, owner, operator)
	if err != nil {
		return false, err
	}
	if approved {
		return true, nil
	}
	single, err := s.accounts.GetApproved(ctx, tokenID)
	if err != nil {
		return false, err
	}
	return single == operator, nil
}

func serializeMove(move interface{}) (string, error) {
	data, err := json.Marshal(move)
	if err != nil {
		return "", apperr.Wrap(apperr.KindInvalidArgument, err, "move is not serializable")
	}
	return string(data), nil
}
