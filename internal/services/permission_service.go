package services

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/xayaplatform/xaya-move-api/internal/apperr"
	"github.com/xayaplatform/xaya-move-api/internal/chain"
	"github.com/xayaplatform/xaya-move-api/internal/constants"
	"github.com/xayaplatform/xaya-move-api/internal/logger"
	"github.com/xayaplatform/xaya-move-api/internal/types"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// PermissionService resolves the hierarchical delegation permission
// tree attached to a token. Every resolution fetches fresh on-chain
// state; nothing is cached because grants can change each block.
type PermissionService struct {
	accounts   chain.Accounts
	delegation chain.Delegation
	fanout     int
	logger     *zap.Logger
}

// NewPermissionService creates a new permission service. fanout bounds
// the number of concurrent contract calls per tree node.
func NewPermissionService(accounts chain.Accounts, delegation chain.Delegation) *PermissionService {
	return &PermissionService{
		accounts:   accounts,
		delegation: delegation,
		fanout:     constants.DefaultPermissionFanout,
		logger:     logger.Log,
	}
}

// GetDelegationPermissions returns the full permission report for a
// name: its owner, whether the delegation contract is approved, and the
// grant tree. If subject is non-empty, only grants for that address are
// listed; the tree shape itself is always expanded in full.
func (s *PermissionService) GetDelegationPermissions(ctx context.Context, ns, name, subject string) (*types.DelegationPermissions, error) {
	if ns == "" {
		return nil, apperr.New(apperr.KindInvalidArgument, "ns (namespace) is required")
	}
	if name == "" {
		return nil, apperr.New(apperr.KindInvalidArgument, "name is required")
	}

	var subjectFilter *common.Address
	if subject != "" {
		addr, err := NormalizeAddress(subject)
		if err != nil {
			return nil, err
		}
		subjectFilter = &addr
	}

	tokenID, err := s.accounts.TokenIDForName(ctx, ns, name)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindNotFound, err, "name %s/%s not found", ns, name)
	}
	owner, err := s.accounts.OwnerOf(ctx, tokenID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindNotFound, err, "token ID %s not found", tokenID)
	}

	approved, err := s.accounts.IsApprovedForAll(ctx, owner, s.delegation.Address())
	if err != nil {
		return nil, err
	}
	if !approved {
		singleApproved, err := s.accounts.GetApproved(ctx, tokenID)
		if err != nil {
			return nil, err
		}
		approved = singleApproved == s.delegation.Address()
	}

	permissions, err := s.ResolvePermissions(ctx, tokenID, owner, []string{}, subjectFilter)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Resolved delegation permissions",
		zap.String("ns", ns),
		zap.String("name", name),
		zap.Bool("approved", approved),
	)

	return &types.DelegationPermissions{
		Owner:       owner.Hex(),
		TokenID:     tokenID.String(),
		Approved:    approved,
		Permissions: permissions,
	}, nil
}

// ResolvePermissions fetches the permission node at path and recurses
// into its children. Sibling subtrees and grant expirations are fetched
// concurrently; each node is an immutable record assembled only after
// all of its fetches complete.
func (s *PermissionService) ResolvePermissions(ctx context.Context, tokenID *big.Int, owner common.Address, path []string, subjectFilter *common.Address) (*types.PermissionNode, error) {
	children, fullAccess, fallbackAccess, err := s.delegation.GetDefinedKeys(ctx, tokenID, owner, path)
	if err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.fanout)

	childNodes := make([]types.ChildPermission, len(children))
	for i, key := range children {
		i, key := i, key
		childPath := append(append([]string{}, path...), key)
		g.Go(func() error {
			node, err := s.ResolvePermissions(gctx, tokenID, owner, childPath, subjectFilter)
			if err != nil {
				return err
			}
			childNodes[i] = types.ChildPermission{Name: key, PermissionNode: *node}
			return nil
		})
	}

	fullGrants := s.fetchGrants(gctx, g, tokenID, owner, path, fullAccess, false, subjectFilter)
	fallbackGrants := s.fetchGrants(gctx, g, tokenID, owner, path, fallbackAccess, true, subjectFilter)

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &types.PermissionNode{
		Path:           append([]string{}, path...),
		Children:       childNodes,
		FullAccess:     compactGrants(fullGrants),
		FallbackAccess: compactGrants(fallbackGrants),
	}, nil
}

// fetchGrants schedules expiration lookups for the retained grantees on
// the node's errgroup and returns a slice the goroutines fill in place.
func (s *PermissionService) fetchGrants(ctx context.Context, g *errgroup.Group, tokenID *big.Int, owner common.Address, path []string, grantees []common.Address, fallbackOnly bool, subjectFilter *common.Address) []*types.AccessGrant {
	grants := make([]*types.AccessGrant, len(grantees))
	for i, addr := range grantees {
		if subjectFilter != nil && addr != *subjectFilter {
			continue
		}
		i, addr := i, addr
		g.Go(func() error {
			expiration, err := s.delegation.GetExpiration(ctx, tokenID, owner, path, addr, fallbackOnly)
			if err != nil {
				return err
			}
			grants[i] = &types.AccessGrant{
				Address:    addr.Hex(),
				Expiration: expiration.String(),
			}
			return nil
		})
	}
	return grants
}

// compactGrants drops entries filtered out by the subject filter while
// keeping the contract's ordering for the rest.
func compactGrants(grants []*types.AccessGrant) []types.AccessGrant {
	out := make([]types.AccessGrant, 0, len(grants))
	for _, g := range grants {
		if g != nil {
			out = append(out, *g)
		}
	}
	return out
}
