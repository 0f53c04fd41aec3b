package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xayaplatform/xaya-move-api/internal/services"
)

// NameHandler serves name and token resolution endpoints.
type NameHandler struct {
	names       *services.NameService
	tokens      *services.TokenService
	permissions *services.PermissionService
}

// NewNameHandler creates a new name handler.
func NewNameHandler(names *services.NameService, tokens *services.TokenService, permissions *services.PermissionService) *NameHandler {
	return &NameHandler{names: names, tokens: tokens, permissions: permissions}
}

type nameRequest struct {
	Ns   string `json:"ns" binding:"required"`
	Name string `json:"name" binding:"required"`
}

type tokenIDRequest struct {
	TokenID interface{} `json:"token_id" binding:"required"`
}

// ResolveToken converts a namespace/name pair to its token ID.
func (h *NameHandler) ResolveToken(c *gin.Context) {
	var req nameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	tokenID, err := h.names.ResolveToken(c.Request.Context(), req.Ns, req.Name)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, gin.H{"tokenId": tokenID.String()})
}

// ResolveOwner returns the owner of a name.
func (h *NameHandler) ResolveOwner(c *gin.Context) {
	var req nameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	owner, err := h.names.GetOwner(c.Request.Context(), req.Ns, req.Name)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, gin.H{"owner": owner})
}

// TokenOwner returns the owner of a token by its identifier.
func (h *NameHandler) TokenOwner(c *gin.Context) {
	var req tokenIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	owner, err := h.names.ResolveOwner(c.Request.Context(), req.TokenID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, gin.H{"owner": owner})
}

// TokenName converts a token identifier back to its name.
func (h *NameHandler) TokenName(c *gin.Context) {
	var req tokenIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	ns, name, err := h.names.TokenIDToName(c.Request.Context(), req.TokenID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, gin.H{"ns": ns, "name": name})
}

type permissionsRequest struct {
	Ns      string `json:"ns" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Subject string `json:"subject"`
}

// DelegationPermissions returns the delegation permission tree for a
// name, optionally filtered to a single subject address.
func (h *NameHandler) DelegationPermissions(c *gin.Context) {
	var req permissionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	permissions, err := h.permissions.GetDelegationPermissions(c.Request.Context(), req.Ns, req.Name, req.Subject)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, permissions)
}

type balanceRequest struct {
	Owner string `json:"owner" binding:"required"`
}

type allowanceRequest struct {
	Owner   string `json:"owner" binding:"required"`
	Spender string `json:"spender" binding:"required"`
}

// WchiBalance returns the formatted WCHI balance of an address.
func (h *NameHandler) WchiBalance(c *gin.Context) {
	var req balanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	balance, err := h.tokens.WchiBalance(c.Request.Context(), req.Owner)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, gin.H{"balance": balance})
}

// WchiAllowance returns the formatted WCHI allowance for a spender.
func (h *NameHandler) WchiAllowance(c *gin.Context) {
	var req allowanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	allowance, err := h.tokens.WchiAllowance(c.Request.Context(), req.Owner, req.Spender)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, gin.H{"allowance": allowance})
}

// ChainInfo reports the chain ID and contract addresses.
func (h *NameHandler) ChainInfo(c *gin.Context) {
	sendSuccess(c, http.StatusOK, h.tokens.ChainInfo())
}
