package safe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"masterchef-rewards/pkg/errno"
)

var ErrRemoteRejected = errno.RemoteRejected

// Client 宿主钱包的交易提案接口 (对应 Safe Apps SDK 的 txs.send / txs.getBySafeTxHash)
type Client interface {
	// Send 提交交易提案，返回 safeTxHash
	Send(ctx context.Context, params SendTransactionsParams) (*SendTransactionsResponse, error)
	// GetBySafeTxHash 查询提案记录
	GetBySafeTxHash(ctx context.Context, safeTxHash string) (*TransactionRecord, error)
}

// HTTPClient talks to the host wallet's JSON API:
//
//	POST {base}/safes/{safe}/txs/send
//	GET  {base}/safes/{safe}/txs/{safeTxHash}
type HTTPClient struct {
	baseURL     string
	safeAddress string
	httpClient  *http.Client
}

type ClientOption func(*HTTPClient)

// WithHTTPClient overrides the default http.Client (15s timeout).
func WithHTTPClient(c *http.Client) ClientOption {
	return func(h *HTTPClient) {
		if c != nil {
			h.httpClient = c
		}
	}
}

func NewHTTPClient(baseURL, safeAddress string, opts ...ClientOption) *HTTPClient {
	c := &HTTPClient{
		baseURL:     strings.TrimRight(baseURL, "/"),
		safeAddress: safeAddress,
		httpClient:  &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *HTTPClient) Send(ctx context.Context, params SendTransactionsParams) (*SendTransactionsResponse, error) {
	if len(params.Txs) == 0 {
		return nil, fmt.Errorf("empty transaction batch: %w", ErrRemoteRejected)
	}

	var resp SendTransactionsResponse
	if err := c.do(ctx, http.MethodPost, c.path("txs", "send"), params, &resp); err != nil {
		return nil, err
	}
	if resp.SafeTxHash == "" {
		return nil, fmt.Errorf("response without safeTxHash: %w", ErrRemoteRejected)
	}
	return &resp, nil
}

func (c *HTTPClient) GetBySafeTxHash(ctx context.Context, safeTxHash string) (*TransactionRecord, error) {
	var record TransactionRecord
	if err := c.do(ctx, http.MethodGet, c.path("txs", safeTxHash), nil, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c *HTTPClient) path(parts ...string) string {
	escaped := make([]string, 0, len(parts)+2)
	escaped = append(escaped, "safes", url.PathEscape(c.safeAddress))
	for _, p := range parts {
		escaped = append(escaped, url.PathEscape(p))
	}
	return c.baseURL + "/" + strings.Join(escaped, "/")
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *HTTPClient) do(ctx context.Context, method, target string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %v: %w", method, target, err, ErrRemoteRejected)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %v: %w", err, ErrRemoteRejected)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%s %s: status %d: %s: %w", method, target, resp.StatusCode, remoteMessage(raw), ErrRemoteRejected)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %v: %w", err, ErrRemoteRejected)
	}
	return nil
}

func remoteMessage(raw []byte) string {
	var e errorBody
	if err := json.Unmarshal(raw, &e); err == nil {
		if e.Message != "" {
			return e.Message
		}
		if e.Error != "" {
			return e.Error
		}
	}
	msg := strings.TrimSpace(string(raw))
	if len(msg) > 200 {
		msg = msg[:200]
	}
	return msg
}
