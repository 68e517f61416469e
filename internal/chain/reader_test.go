package chain

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"masterchef-rewards/internal/contract"
	"masterchef-rewards/pkg/errno"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCaller struct {
	calls []ethereum.CallMsg
	out   []byte
	err   error
}

func (f *fakeCaller) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	f.calls = append(f.calls, call)
	return f.out, f.err
}

var (
	token = common.HexToAddress("0x1111111111111111111111111111111111111111")
	owner = common.HexToAddress("0x2222222222222222222222222222222222222222")
)

func TestBalanceOf(t *testing.T) {
	balance, _ := new(big.Int).SetString("123456789012123456000000000000", 10)
	caller := &fakeCaller{out: common.LeftPadBytes(balance.Bytes(), 32)}

	got, err := NewReader(caller).BalanceOf(context.Background(), token, owner)
	require.NoError(t, err)
	assert.Equal(t, 0, balance.Cmp(got))

	require.Len(t, caller.calls, 1)
	call := caller.calls[0]
	assert.Equal(t, token, *call.To)

	want, err := contract.EncodeCall(contract.BalanceOf(owner), contract.ERC20Schema())
	require.NoError(t, err)
	assert.Equal(t, want, call.Data)
}

func TestBalanceOfRPCError(t *testing.T) {
	caller := &fakeCaller{err: errors.New("connection refused")}

	_, err := NewReader(caller).BalanceOf(context.Background(), token, owner)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Len(t, caller.calls, 1)
}

func TestBalanceOfMalformedOutput(t *testing.T) {
	caller := &fakeCaller{out: []byte{0x01, 0x02}}

	_, err := NewReader(caller).BalanceOf(context.Background(), token, owner)
	assert.ErrorIs(t, err, errno.TypeMismatch)
}
