// Package subgraph queries the Xaya stats subgraph (The Graph) for
// registration and move history. These are read-only convenience
// queries; all authorization state comes from the chain directly.
package subgraph

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	"github.com/xayaplatform/xaya-move-api/internal/logger"
	"go.uber.org/zap"
)

// Client is a minimal GraphQL client for the subgraph endpoint.
// Transient HTTP failures are retried with exponential backoff; GraphQL
// errors are not retried.
type Client struct {
	httpClient *http.Client
	url        string
	maxRetries uint64
	logger     *zap.Logger
}

// NewClient creates a subgraph client for the given endpoint URL.
func NewClient(url string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		url:        url,
		maxRetries: 3,
		logger:     logger.Log,
	}
}

type graphqlRequest struct {
	Query string `json:"query"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// Query executes a GraphQL query and decodes the data object into out.
func (c *Client) Query(ctx context.Context, query string, out interface{}) error {
	body, err := json.Marshal(graphqlRequest{Query: query})
	if err != nil {
		return errors.Wrap(err, "failed to encode subgraph query")
	}

	var data json.RawMessage
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			// Transient server-side failure, worth retrying.
			io.Copy(io.Discard, resp.Body)
			return errors.Errorf("subgraph returned status %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			return backoff.Permanent(errors.Errorf("subgraph returned status %d", resp.StatusCode))
		}

		var decoded graphqlResponse
		if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
			return backoff.Permanent(errors.Wrap(err, "failed to decode subgraph response"))
		}
		if len(decoded.Errors) > 0 {
			return backoff.Permanent(errors.Errorf("subgraph query failed: %s", decoded.Errors[0].Message))
		}
		data = decoded.Data
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.maxRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		c.logger.Error("Subgraph query failed", zap.Error(err))
		return err
	}

	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrap(err, "failed to decode subgraph data")
	}
	return nil
}
