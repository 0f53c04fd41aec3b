package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/xayaplatform/xaya-move-api/internal/logger"
	"github.com/xayaplatform/xaya-move-api/internal/middleware"
)

func init() {
	logger.InitLogger("test")
	gin.SetMode(gin.TestMode)
}

func TestCorrelationIDMiddleware_GeneratesID(t *testing.T) {
	router := gin.New()
	router.Use(middleware.CorrelationIDMiddleware())

	var seenInContext string
	router.GET("/test", func(c *gin.Context) {
		seenInContext = middleware.GetCorrelationID(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	router.ServeHTTP(w, req)

	generated := w.Header().Get(middleware.CorrelationIDHeader)
	assert.NotEmpty(t, generated)
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)
	assert.Equal(t, generated, seenInContext)
}

func TestCorrelationIDMiddleware_PreservesIncomingID(t *testing.T) {
	router := gin.New()
	router.Use(middleware.CorrelationIDMiddleware())

	var requestCtx context.Context
	router.GET("/test", func(c *gin.Context) {
		requestCtx = c.Request.Context()
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(middleware.CorrelationIDHeader, "incoming-id")
	router.ServeHTTP(w, req)

	assert.Equal(t, "incoming-id", w.Header().Get(middleware.CorrelationIDHeader))
	assert.Equal(t, "incoming-id", middleware.CorrelationIDFromContext(requestCtx))
}

func TestCorrelationIDFromContext_Missing(t *testing.T) {
	assert.Empty(t, middleware.CorrelationIDFromContext(context.Background()))
}
