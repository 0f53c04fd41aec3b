// Package types holds the plain data structures exchanged between the
// services and the HTTP layer. Everything here is serializable; no live
// handles are exposed to callers.
package types

// GasSettings holds EIP-1559 fee settings in gwei. Both fields must be
// present before a transaction can be priced; either may come from the
// configured default or a per-call override.
type GasSettings struct {
	Max  *float64 `json:"max,omitempty"`
	Prio *float64 `json:"prio,omitempty"`
}

// Merge returns the settings with any fields from override taking
// precedence over the receiver's fields.
func (g GasSettings) Merge(override *GasSettings) GasSettings {
	merged := g
	if override != nil {
		if override.Max != nil {
			merged.Max = override.Max
		}
		if override.Prio != nil {
			merged.Prio = override.Prio
		}
	}
	return merged
}

// Complete reports whether both fee fields are set.
func (g GasSettings) Complete() bool {
	return g.Max != nil && g.Prio != nil
}

// AccessGrant is a single delegation grant at a tree node. Expiration is
// a unix timestamp rendered as a decimal string (uint256 on-chain).
type AccessGrant struct {
	Address    string `json:"address"`
	Expiration string `json:"expiration"`
}

// PermissionNode is one node of the delegation permission tree. The
// grants apply exactly at Path; children expand to their own subtrees.
type PermissionNode struct {
	Path           []string          `json:"path"`
	Children       []ChildPermission `json:"children"`
	FullAccess     []AccessGrant     `json:"fullAccess"`
	FallbackAccess []AccessGrant     `json:"fallbackAccess"`
}

// ChildPermission is a named subtree of a PermissionNode.
type ChildPermission struct {
	Name string `json:"name"`
	PermissionNode
}

// DelegationPermissions is the full permission report for a name.
type DelegationPermissions struct {
	Owner       string          `json:"owner"`
	TokenID     string          `json:"tokenId"`
	Approved    bool            `json:"approved"`
	Permissions *PermissionNode `json:"permissions"`
}

// AuthorizationResult is the outcome of a move permission check. Move
// carries the serialized payload that would be submitted: the post-split
// remainder when Delegation is true, the whole move otherwise.
type AuthorizationResult struct {
	HasPermission bool     `json:"hasPermission"`
	Delegation    bool     `json:"delegation"`
	Move          string   `json:"move,omitempty"`
	Address       string   `json:"address"`
	Path          []string `json:"path,omitempty"`
	Reason        string   `json:"reason,omitempty"`
}

// TxOutcome classifies a tracked transaction.
type TxOutcome string

const (
	TxSuccess  TxOutcome = "success"
	TxReverted TxOutcome = "reverted"
	TxNotFound TxOutcome = "notfound"
)

// ChainInfo reports the connected chain and contract addresses.
type ChainInfo struct {
	ChainID           string `json:"chainId"`
	WchiAddress       string `json:"wchiAddress"`
	AccountsAddress   string `json:"accountsAddress"`
	DelegationAddress string `json:"delegationAddress"`
}
