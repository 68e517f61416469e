package safe

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"masterchef-rewards/pkg/errno"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	safeAddr   = "0x3333333333333333333333333333333333333333"
	safeTxHash = "0xabc0000000000000000000000000000000000000000000000000000000000def"
)

func TestSend(t *testing.T) {
	var got SendTransactionsParams
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/safes/"+safeAddr+"/txs/send", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(SendTransactionsResponse{SafeTxHash: safeTxHash})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL+"/api/v1/", safeAddr)
	resp, err := c.Send(context.Background(), SendTransactionsParams{
		Txs: []TxRequest{{To: "0x1111111111111111111111111111111111111111", Value: "0", Data: "0x01"}},
	})
	require.NoError(t, err)
	assert.Equal(t, safeTxHash, resp.SafeTxHash)

	require.Len(t, got.Txs, 1)
	assert.Equal(t, "0", got.Txs[0].Value)
	assert.Equal(t, "0x01", got.Txs[0].Data)
}

func TestSendRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"user rejected the proposal"}`))
	}))
	defer srv.Close()

	_, err := NewHTTPClient(srv.URL, safeAddr).Send(context.Background(), SendTransactionsParams{
		Txs: []TxRequest{{To: "0x1", Value: "0", Data: "0x"}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errno.RemoteRejected)
	assert.Contains(t, err.Error(), "user rejected the proposal")
}

func TestSendMissingHash(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := NewHTTPClient(srv.URL, safeAddr).Send(context.Background(), SendTransactionsParams{
		Txs: []TxRequest{{To: "0x1", Value: "0", Data: "0x"}},
	})
	assert.ErrorIs(t, err, ErrRemoteRejected)
}

func TestSendEmptyBatch(t *testing.T) {
	_, err := NewHTTPClient("http://127.0.0.1:1", safeAddr).Send(context.Background(), SendTransactionsParams{})
	assert.ErrorIs(t, err, ErrRemoteRejected)
}

func TestSendNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewHTTPClient(url, safeAddr).Send(context.Background(), SendTransactionsParams{
		Txs: []TxRequest{{To: "0x1", Value: "0", Data: "0x"}},
	})
	assert.ErrorIs(t, err, ErrRemoteRejected)
}

func TestGetBySafeTxHash(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/safes/"+safeAddr+"/txs/"+safeTxHash, r.URL.Path)
		_, _ = w.Write([]byte(`{
			"safeAddress": "` + safeAddr + `",
			"safeTxHash": "` + safeTxHash + `",
			"to": "0x1111111111111111111111111111111111111111",
			"value": "0",
			"data": "0x01",
			"nonce": 7,
			"txStatus": "AWAITING_CONFIRMATIONS",
			"confirmations": 1,
			"confirmationsRequired": 2,
			"submissionDate": "2026-10-19T08:00:00Z"
		}`))
	}))
	defer srv.Close()

	record, err := NewHTTPClient(srv.URL, safeAddr).GetBySafeTxHash(context.Background(), safeTxHash)
	require.NoError(t, err)
	assert.Equal(t, safeTxHash, record.SafeTxHash)
	assert.Equal(t, uint64(7), record.Nonce)
	assert.Equal(t, 2, record.ConfirmationsRequired)
	assert.True(t, record.Pending())
	require.NotNil(t, record.SubmissionDate)
	assert.False(t, record.IsExecuted)
}

func TestGetBySafeTxHashNotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := NewHTTPClient(srv.URL, safeAddr).GetBySafeTxHash(context.Background(), safeTxHash)
	assert.ErrorIs(t, err, ErrRemoteRejected)
}
