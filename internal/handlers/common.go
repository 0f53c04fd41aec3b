package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xayaplatform/xaya-move-api/internal/apperr"
	"github.com/xayaplatform/xaya-move-api/internal/logger"
	"github.com/xayaplatform/xaya-move-api/internal/middleware"
	"go.uber.org/zap"
)

// sendError is a helper function that combines logging and error response
// It logs the error with the given message and sends a JSON error response
func sendError(c *gin.Context, statusCode int, message string, err error) {
	correlationID := middleware.GetCorrelationID(c)

	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("correlation_id", correlationID),
	)

	response := struct {
		Error         string `json:"error"`
		Kind          string `json:"kind,omitempty"`
		CorrelationID string `json:"correlation_id,omitempty"`
	}{
		Error:         message,
		CorrelationID: correlationID,
	}
	if kind := apperr.KindOf(err); kind != apperr.KindUnknown {
		response.Kind = kind.String()
	}

	c.JSON(statusCode, response)
}

// sendSuccess is a helper function that sends a success response
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// handleServiceError maps a typed service error to the right HTTP
// status. The error's own message is the response text so callers can
// tell "not approved" from "query failed".
func handleServiceError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch apperr.KindOf(err) {
	case apperr.KindInvalidArgument:
		status = http.StatusBadRequest
	case apperr.KindNotFound:
		status = http.StatusNotFound
	case apperr.KindPermissionDenied:
		status = http.StatusForbidden
	case apperr.KindContractExecution, apperr.KindSubmission:
		status = http.StatusBadGateway
	case apperr.KindTimeout:
		status = http.StatusGatewayTimeout
	}
	sendError(c, status, err.Error(), err)
}

// decodeMove decodes a raw JSON move value preserving number literals,
// so large integers survive the round trip back onto the chain.
func decodeMove(raw json.RawMessage) (interface{}, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	var move interface{}
	if err := decoder.Decode(&move); err != nil {
		return nil, apperr.Wrap(apperr.KindInvalidArgument, err, "move is not valid JSON")
	}
	return move, nil
}
