package contract

import (
	"bytes"
	"math/big"
	"testing"

	"masterchef-rewards/pkg/errno"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var factory = common.HexToAddress("0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA")

func word(v int64) []byte {
	return common.LeftPadBytes(big.NewInt(v).Bytes(), 32)
}

func selectorOf(sig string) []byte {
	return crypto.Keccak256([]byte(sig))[:4]
}

func TestSelectors(t *testing.T) {
	schema := MasterChefSchema()
	tests := []struct {
		op  Operation
		sig string
	}{
		{OpTrustAMMFactory, "trustAMMFactory(address)"},
		{OpUntrustAMMFactory, "untrustAMMFactory(address)"},
		{OpWithdrawRewards, "withdrawRewards(uint256)"},
		{OpAddRewards, "addRewards(address,uint256,uint256,uint256)"},
	}

	for _, tt := range tests {
		t.Run(string(tt.op), func(t *testing.T) {
			sel, err := Selector(tt.op, schema)
			require.NoError(t, err)
			assert.Equal(t, selectorOf(tt.sig), sel)

			sig, err := Signature(tt.op, schema)
			require.NoError(t, err)
			assert.Equal(t, tt.sig, sig)
		})
	}
}

func TestEncodeAddRewards(t *testing.T) {
	desc := AddRewards(factory, big.NewInt(100), big.NewInt(5), big.NewInt(10))

	data, err := EncodeCall(desc, MasterChefSchema())
	require.NoError(t, err)

	require.Len(t, data, 4+4*32)
	assert.Equal(t, selectorOf("addRewards(address,uint256,uint256,uint256)"), data[:4])
	assert.Equal(t, common.LeftPadBytes(factory.Bytes(), 32), data[4:36])
	assert.Equal(t, word(100), data[36:68])
	assert.Equal(t, word(5), data[68:100])
	assert.Equal(t, word(10), data[100:132])
}

func TestEncodeWithdrawRewardsDeterministic(t *testing.T) {
	amount, _ := new(big.Int).SetString("123456789012123456000000000000", 10)

	first, err := EncodeCall(WithdrawRewards(amount), MasterChefSchema())
	require.NoError(t, err)
	second, err := EncodeCall(WithdrawRewards(amount), MasterChefSchema())
	require.NoError(t, err)

	assert.True(t, bytes.Equal(first, second))
	assert.Equal(t, common.LeftPadBytes(amount.Bytes(), 32), first[4:])
}

func TestEncodeTrustAMMFactory(t *testing.T) {
	data, err := EncodeCall(TrustAMMFactory(factory), MasterChefSchema())
	require.NoError(t, err)
	assert.Equal(t, selectorOf("trustAMMFactory(address)"), data[:4])
	assert.Equal(t, common.LeftPadBytes(factory.Bytes(), 32), data[4:])
}

func TestEncodeCoercesLooseArguments(t *testing.T) {
	typed, err := EncodeCall(AddRewards(factory, big.NewInt(100), big.NewInt(5), big.NewInt(10)), MasterChefSchema())
	require.NoError(t, err)

	loose := NewCallDescriptor(OpAddRewards, factory.Hex(), "100", 5, uint64(10))
	got, err := EncodeCall(loose, MasterChefSchema())
	require.NoError(t, err)

	assert.Equal(t, typed, got)
}

func TestEncodeUnknownOperation(t *testing.T) {
	_, err := EncodeCall(NewCallDescriptor("mint", factory), MasterChefSchema())
	require.Error(t, err)
	assert.ErrorIs(t, err, errno.UnknownOperation)

	// balanceOf 只存在于 ERC-20 schema 中
	_, err = EncodeCall(BalanceOf(factory), MasterChefSchema())
	assert.ErrorIs(t, err, ErrUnknownOperation)

	_, err = EncodeCall(TrustAMMFactory(factory), nil)
	assert.ErrorIs(t, err, ErrUnknownOperation)
}

func TestEncodeTypeMismatch(t *testing.T) {
	tests := []struct {
		name string
		desc CallDescriptor
	}{
		{"non numeric uint", NewCallDescriptor(OpWithdrawRewards, "ten")},
		{"decimal uint", NewCallDescriptor(OpWithdrawRewards, "1.5")},
		{"negative uint", NewCallDescriptor(OpWithdrawRewards, big.NewInt(-1))},
		{"overflow uint", NewCallDescriptor(OpWithdrawRewards, new(big.Int).Lsh(big.NewInt(1), 256))},
		{"bad address", NewCallDescriptor(OpTrustAMMFactory, "0x1234")},
		{"number as address", NewCallDescriptor(OpTrustAMMFactory, 42)},
		{"missing args", NewCallDescriptor(OpAddRewards, factory)},
		{"extra args", NewCallDescriptor(OpWithdrawRewards, 1, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EncodeCall(tt.desc, MasterChefSchema())
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrTypeMismatch)
		})
	}
}

func TestDecodeCall(t *testing.T) {
	data, err := EncodeCall(AddRewards(factory, big.NewInt(100), big.NewInt(5), big.NewInt(10)), MasterChefSchema())
	require.NoError(t, err)

	desc, err := DecodeCall(data, MasterChefSchema())
	require.NoError(t, err)
	assert.Equal(t, OpAddRewards, desc.Op)
	args := desc.Args()
	require.Len(t, args, 4)
	assert.Equal(t, factory, args[0])
	assert.Equal(t, int64(100), args[1].(*big.Int).Int64())
	assert.Equal(t, int64(5), args[2].(*big.Int).Int64())
	assert.Equal(t, int64(10), args[3].(*big.Int).Int64())

	_, err = DecodeCall([]byte{0xde, 0xad, 0xbe, 0xef}, MasterChefSchema())
	assert.ErrorIs(t, err, ErrUnknownOperation)

	_, err = DecodeCall([]byte{0x01}, MasterChefSchema())
	assert.ErrorIs(t, err, ErrUnknownOperation)
}

func TestBalanceOfRoundTrip(t *testing.T) {
	schema := ERC20Schema()
	data, err := EncodeCall(BalanceOf(factory), schema)
	require.NoError(t, err)
	assert.Equal(t, selectorOf("balanceOf(address)"), data[:4])

	v, err := DecodeUint256(OpBalanceOf, schema, word(777))
	require.NoError(t, err)
	assert.Equal(t, int64(777), v.Int64())

	_, err = DecodeUint256(OpBalanceOf, schema, []byte{0x01})
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestDescriptorIsImmutable(t *testing.T) {
	amount := big.NewInt(5)
	desc := WithdrawRewards(amount)
	amount.SetInt64(6)

	args := desc.Args()
	args[0] = big.NewInt(7)

	assert.Equal(t, "withdrawRewards(5)", desc.String())
}

func TestParseOperation(t *testing.T) {
	op, err := ParseOperation("AddRewards")
	require.NoError(t, err)
	assert.Equal(t, OpAddRewards, op)

	_, err = ParseOperation("emergencyWithdraw")
	assert.ErrorIs(t, err, errno.UnknownOperation)
}
