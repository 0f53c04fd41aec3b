package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xayaplatform/xaya-move-api/internal/subgraph"
)

// SubgraphHandler serves the stats-subgraph query endpoints.
type SubgraphHandler struct {
	subgraph *subgraph.Service
}

// NewSubgraphHandler creates a new subgraph handler.
func NewSubgraphHandler(service *subgraph.Service) *SubgraphHandler {
	return &SubgraphHandler{subgraph: service}
}

// NameRegistration returns the registration record for a name.
func (h *SubgraphHandler) NameRegistration(c *gin.Context) {
	var req nameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	registration, err := h.subgraph.NameRegistration(c.Request.Context(), req.Ns, req.Name)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, registration)
}

type namesOwnedRequest struct {
	Owner  string `json:"owner" binding:"required"`
	Offset int    `json:"offset"`
}

// NamesOwnedBy returns a page of names owned by an address.
func (h *SubgraphHandler) NamesOwnedBy(c *gin.Context) {
	var req namesOwnedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	page, err := h.subgraph.NamesOwnedBy(c.Request.Context(), req.Owner, req.Offset)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, page)
}

type gameMovesRequest struct {
	Game          string `json:"game" binding:"required"`
	FromTimestamp *int64 `json:"from_timestamp"`
	ToTimestamp   *int64 `json:"to_timestamp"`
	Offset        int    `json:"offset"`
}

// MovesForGame returns a page of moves for a game, newest first.
func (h *SubgraphHandler) MovesForGame(c *gin.Context) {
	var req gameMovesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	page, err := h.subgraph.MovesForGame(c.Request.Context(), req.Game, req.FromTimestamp, req.ToTimestamp, req.Offset)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, page)
}

type nameMovesRequest struct {
	Ns            string `json:"ns" binding:"required"`
	Name          string `json:"name" binding:"required"`
	FromTimestamp *int64 `json:"from_timestamp"`
	ToTimestamp   *int64 `json:"to_timestamp"`
	Offset        int    `json:"offset"`
}

// MovesForName returns a page of moves for a name, newest first.
func (h *SubgraphHandler) MovesForName(c *gin.Context) {
	var req nameMovesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	page, err := h.subgraph.MovesForName(c.Request.Context(), req.Ns, req.Name, req.FromTimestamp, req.ToTimestamp, req.Offset)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, page)
}
