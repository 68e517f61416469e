package service

import (
	"context"
	"math/big"

	"masterchef-rewards/internal/safe"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
)

// MockSafeClient 宿主钱包测试替身
type MockSafeClient struct {
	mock.Mock
}

func (m *MockSafeClient) Send(ctx context.Context, params safe.SendTransactionsParams) (*safe.SendTransactionsResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*safe.SendTransactionsResponse), args.Error(1)
}

func (m *MockSafeClient) GetBySafeTxHash(ctx context.Context, safeTxHash string) (*safe.TransactionRecord, error) {
	args := m.Called(ctx, safeTxHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*safe.TransactionRecord), args.Error(1)
}

var _ safe.Client = (*MockSafeClient)(nil)

type MockBalanceReader struct {
	mock.Mock
}

func (m *MockBalanceReader) BalanceOf(ctx context.Context, token, owner common.Address) (*big.Int, error) {
	args := m.Called(ctx, token, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}
