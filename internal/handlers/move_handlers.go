package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xayaplatform/xaya-move-api/internal/services"
	"github.com/xayaplatform/xaya-move-api/internal/types"
)

// MoveHandler serves move permission, submission and tracking endpoints.
type MoveHandler struct {
	moves *services.MoveService
	txs   *services.TxService
}

// NewMoveHandler creates a new move handler.
func NewMoveHandler(moves *services.MoveService, txs *services.TxService) *MoveHandler {
	return &MoveHandler{moves: moves, txs: txs}
}

type checkPermissionRequest struct {
	Ns      string          `json:"ns" binding:"required"`
	Name    string          `json:"name" binding:"required"`
	Move    json.RawMessage `json:"move" binding:"required"`
	Address string          `json:"address"`
}

// CheckPermission decides whether an address may send a move.
func (h *MoveHandler) CheckPermission(c *gin.Context) {
	var req checkPermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	move, err := decodeMove(req.Move)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	result, err := h.moves.CheckPermission(c.Request.Context(), req.Ns, req.Name, move, req.Address)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, result)
}

type sendMoveRequest struct {
	Ns         string             `json:"ns" binding:"required"`
	Name       string             `json:"name" binding:"required"`
	Move       json.RawMessage    `json:"move" binding:"required"`
	PrivateKey string             `json:"private_key"`
	Gas        *types.GasSettings `json:"gas"`
}

// SendMove submits a signed move transaction.
func (h *MoveHandler) SendMove(c *gin.Context) {
	var req sendMoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	move, err := decodeMove(req.Move)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	txid, err := h.txs.SubmitMove(c.Request.Context(), req.Ns, req.Name, move, req.PrivateKey, req.Gas)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, gin.H{"txid": txid})
}

type statusRequest struct {
	// Txids accepts a single hex string or a list of them.
	Txids json.RawMessage `json:"txids" binding:"required"`
	Wait  *bool           `json:"wait"`
}

// TransactionStatus reports the outcome of one or more transactions.
func (h *MoveHandler) TransactionStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var txids []string
	var single string
	if err := json.Unmarshal(req.Txids, &single); err == nil {
		txids = []string{single}
	} else if err := json.Unmarshal(req.Txids, &txids); err != nil {
		sendError(c, http.StatusBadRequest, "txids must be a hex string or a list of hex strings", err)
		return
	}

	// Waiting for mining is the default.
	wait := true
	if req.Wait != nil {
		wait = *req.Wait
	}

	result, err := h.txs.GetStatus(c.Request.Context(), txids, wait)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, result)
}
