package handler

import (
	"bytes"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"masterchef-rewards/internal/contract"
	"masterchef-rewards/internal/handler/response"
	"masterchef-rewards/internal/safe"
	"masterchef-rewards/internal/service"
	"masterchef-rewards/pkg/cache"
	"masterchef-rewards/pkg/errno"
	"masterchef-rewards/pkg/validator"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	rewardsAddr = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
	factoryAddr = "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359"
	zeroAddr    = "0x0000000000000000000000000000000000000000"
	txHash      = "0x2222222222222222222222222222222222222222222222222222222222222222"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.Init()
}

// fakeSafe 模拟宿主钱包的 HTTP 接口
type fakeSafe struct {
	sends   atomic.Int32
	fetches atomic.Int32
	reject  atomic.Bool

	mu   sync.Mutex
	last safe.SendTransactionsParams
}

func (f *fakeSafe) lastSent() safe.SendTransactionsParams {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.last
}

func (f *fakeSafe) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	switch {
	case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/txs/send"):
		f.sends.Add(1)
		if f.reject.Load() {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"message":"owner rejected"}`))
			return
		}
		f.mu.Lock()
		_ = json.NewDecoder(r.Body).Decode(&f.last)
		f.mu.Unlock()
		_ = json.NewEncoder(w).Encode(safe.SendTransactionsResponse{SafeTxHash: txHash})
	case r.Method == http.MethodGet:
		f.fetches.Add(1)
		_ = json.NewEncoder(w).Encode(safe.TransactionRecord{
			SafeTxHash:            txHash,
			TxStatus:              safe.TxStatusAwaitingConfirmations,
			ConfirmationsRequired: 2,
		})
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func newEngine(t *testing.T, target string) (*gin.Engine, *fakeSafe) {
	t.Helper()
	return newEngineWithConfig(t, target, service.FormConfig{Decimals: 18})
}

func newEngineWithConfig(t *testing.T, target string, cfg service.FormConfig) (*gin.Engine, *fakeSafe) {
	t.Helper()
	fake := &fakeSafe{}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	proposer := service.NewProposer(safe.NewHTTPClient(srv.URL, rewardsAddr), nil)
	form := service.NewForm(proposer, cfg, target)
	records := service.NewRecordService(proposer, cache.NewMemoryCache(time.Minute, time.Minute), time.Minute)

	formH := NewFormHandler(form)
	actionH := NewActionHandler(form)
	txH := NewTransactionHandler(records)

	r := gin.New()
	r.GET("/health", HealthCheck)
	api := r.Group("/api/v1")
	api.GET("/form", formH.GetForm)
	api.PUT("/form/target", formH.SetTarget)
	api.POST("/actions/trust-amm-factory", actionH.TrustAMMFactory)
	api.POST("/actions/untrust-amm-factory", actionH.UntrustAMMFactory)
	api.POST("/actions/withdraw-rewards", actionH.WithdrawRewards)
	api.POST("/actions/add-rewards", actionH.AddRewards)
	api.GET("/transactions/:safeTxHash", txH.GetTransaction)
	api.POST("/encode", Encode)
	return r, fake
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"msg"`
	Data    json.RawMessage `json:"data"`
}

func call(t *testing.T, r http.Handler, method, path string, body interface{}) envelope {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHealthCheck(t *testing.T) {
	r, _ := newEngine(t, zeroAddr)
	resp := call(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, errno.OK.Code, resp.Code)
	assert.Contains(t, string(resp.Data), contract.SchemaVersion)
}

func TestFormTargetGatesCards(t *testing.T) {
	r, _ := newEngine(t, zeroAddr)

	var state service.FormState
	resp := call(t, r, http.MethodGet, "/api/v1/form", nil)
	require.NoError(t, json.Unmarshal(resp.Data, &state))
	assert.Equal(t, service.ModeAwaitingTarget, state.Mode)
	assert.Equal(t, []service.Card{service.CardTarget}, state.Cards)

	resp = call(t, r, http.MethodPut, "/api/v1/form/target", gin.H{"address": "not-an-address"})
	require.NoError(t, json.Unmarshal(resp.Data, &state))
	assert.Equal(t, service.ModeAwaitingTarget, state.Mode)

	resp = call(t, r, http.MethodPut, "/api/v1/form/target", gin.H{"address": strings.ToLower(rewardsAddr)})
	require.NoError(t, json.Unmarshal(resp.Data, &state))
	assert.Equal(t, service.ModeReady, state.Mode)
	assert.Equal(t, rewardsAddr, state.Target)
	assert.Len(t, state.Cards, 4)
}

func TestActionWhileAwaitingTarget(t *testing.T) {
	r, fake := newEngine(t, zeroAddr)

	resp := call(t, r, http.MethodPost, "/api/v1/actions/trust-amm-factory", gin.H{"amm_factory": factoryAddr})
	assert.Equal(t, errno.InvalidAddress.Code, resp.Code)
	assert.Zero(t, fake.sends.Load())
}

func TestTrustAMMFactoryProposes(t *testing.T) {
	r, fake := newEngine(t, rewardsAddr)

	resp := call(t, r, http.MethodPost, "/api/v1/actions/trust-amm-factory", gin.H{"amm_factory": factoryAddr})
	require.Equal(t, errno.OK.Code, resp.Code, resp.Message)

	var result service.Result
	require.NoError(t, json.Unmarshal(resp.Data, &result))
	assert.Equal(t, txHash, result.Handle.SafeTxHash)
	require.NotNil(t, result.Record)
	assert.Equal(t, safe.TxStatusAwaitingConfirmations, result.Record.TxStatus)

	want, err := contract.EncodeCall(contract.TrustAMMFactory(common.HexToAddress(factoryAddr)), contract.MasterChefSchema())
	require.NoError(t, err)
	sent := fake.lastSent()
	require.Len(t, sent.Txs, 1)
	assert.Equal(t, rewardsAddr, sent.Txs[0].To)
	assert.Equal(t, "0", sent.Txs[0].Value)
	assert.Equal(t, hexutil.Encode(want), sent.Txs[0].Data)
	assert.EqualValues(t, 1, fake.fetches.Load())
}

func TestActionValidationErrors(t *testing.T) {
	r, fake := newEngine(t, rewardsAddr)

	tests := []struct {
		name string
		path string
		body gin.H
		code int
	}{
		{"zero factory", "/api/v1/actions/untrust-amm-factory", gin.H{"amm_factory": zeroAddr}, errno.InvalidAddress.Code},
		{"missing factory", "/api/v1/actions/trust-amm-factory", gin.H{}, errno.ErrBind.Code},
		{"negative amount", "/api/v1/actions/withdraw-rewards", gin.H{"amount": "-1"}, errno.InvalidAmount.Code},
		{"missing amount", "/api/v1/actions/withdraw-rewards", gin.H{}, errno.InvalidAmount.Code},
		{"fractional days", "/api/v1/actions/add-rewards", gin.H{
			"market_factory":              factoryAddr,
			"rewards_per_market":          "1",
			"reward_days_per_market":      "1.5",
			"early_deposit_bonus_rewards": "1",
		}, errno.InvalidAmount.Code},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := call(t, r, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.code, resp.Code, resp.Message)
		})
	}
	assert.Zero(t, fake.sends.Load())
}

func TestRemoteRejectionSurfaces(t *testing.T) {
	r, fake := newEngine(t, rewardsAddr)
	fake.reject.Store(true)

	resp := call(t, r, http.MethodPost, "/api/v1/actions/withdraw-rewards", gin.H{"amount": "2.5"})
	assert.Equal(t, errno.RemoteRejected.Code, resp.Code)
	assert.Contains(t, resp.Message, "owner rejected")
	assert.EqualValues(t, 1, fake.sends.Load())
	assert.Zero(t, fake.fetches.Load())
}

func TestWithdrawPrecisionFollowsConfiguredDecimals(t *testing.T) {
	amount := "1.00000000000000000001"

	r, fake := newEngineWithConfig(t, rewardsAddr, service.FormConfig{Decimals: 24})
	resp := call(t, r, http.MethodPost, "/api/v1/actions/withdraw-rewards", gin.H{"amount": amount})
	require.Equal(t, errno.OK.Code, resp.Code, resp.Message)

	want, ok := new(big.Int).SetString("1000000000000000000010000", 10)
	require.True(t, ok)
	data, err := contract.EncodeCall(contract.WithdrawRewards(want), contract.MasterChefSchema())
	require.NoError(t, err)
	sent := fake.lastSent()
	require.Len(t, sent.Txs, 1)
	assert.Equal(t, hexutil.Encode(data), sent.Txs[0].Data)

	r, fake = newEngine(t, rewardsAddr)
	resp = call(t, r, http.MethodPost, "/api/v1/actions/withdraw-rewards", gin.H{"amount": amount})
	assert.Equal(t, errno.InvalidAmount.Code, resp.Code)
	assert.Zero(t, fake.sends.Load())
}

func TestGetTransactionCached(t *testing.T) {
	r, fake := newEngine(t, rewardsAddr)

	for i := 0; i < 3; i++ {
		resp := call(t, r, http.MethodGet, "/api/v1/transactions/"+txHash, nil)
		require.Equal(t, errno.OK.Code, resp.Code)
	}
	assert.EqualValues(t, 1, fake.fetches.Load())

	resp := call(t, r, http.MethodGet, "/api/v1/transactions/0xabc", nil)
	assert.Equal(t, errno.InvalidTxHash.Code, resp.Code)
}

func TestEncode(t *testing.T) {
	r, fake := newEngine(t, rewardsAddr)

	resp := call(t, r, http.MethodPost, "/api/v1/encode", gin.H{
		"operation": "withdrawRewards",
		"args":      []string{"1000000000000000000"},
	})
	require.Equal(t, errno.OK.Code, resp.Code, resp.Message)

	var out EncodeResult
	require.NoError(t, json.Unmarshal(resp.Data, &out))
	assert.Equal(t, "withdrawRewards(uint256)", out.Signature)
	assert.Len(t, out.Data, 2+2*(4+32))
	assert.True(t, strings.HasPrefix(out.Data, out.Selector))

	resp = call(t, r, http.MethodPost, "/api/v1/encode", gin.H{"operation": "mint", "args": []string{}})
	assert.Equal(t, errno.UnknownOperation.Code, resp.Code)

	resp = call(t, r, http.MethodPost, "/api/v1/encode", gin.H{"operation": "trustAMMFactory", "args": []string{"0x12"}})
	assert.Equal(t, errno.TypeMismatch.Code, resp.Code)

	assert.Zero(t, fake.sends.Load())
}

func TestResponseCarriesRequestID(t *testing.T) {
	r := gin.New()
	r.GET("/x", func(c *gin.Context) {
		c.Set(response.RequestIDKey, "req-1")
		response.Success(c, nil)
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "req-1", resp.RequestID)
}
