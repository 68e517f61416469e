package chain

import (
	"context"
	"fmt"
	"math/big"

	"masterchef-rewards/internal/contract"
	"masterchef-rewards/pkg/logger"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
)

// Reader 只读链上访问 (eth_call)，不签名、不发交易
type Reader struct {
	caller ethereum.ContractCaller
}

func NewReader(caller ethereum.ContractCaller) *Reader {
	return &Reader{caller: caller}
}

// Dial 连接单一 RPC 节点，没有 failover
func Dial(ctx context.Context, rpcURL string) (*Reader, *ethclient.Client, error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, nil, fmt.Errorf("dial rpc %s: %w", rpcURL, err)
	}
	return NewReader(client), client, nil
}

// BalanceOf returns token.balanceOf(owner) at the latest block.
func (r *Reader) BalanceOf(ctx context.Context, token, owner common.Address) (*big.Int, error) {
	schema := contract.ERC20Schema()
	data, err := contract.EncodeCall(contract.BalanceOf(owner), schema)
	if err != nil {
		return nil, err
	}

	out, err := r.caller.CallContract(ctx, ethereum.CallMsg{To: &token, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("balanceOf call on %s failed: %w", token.Hex(), err)
	}

	balance, err := contract.DecodeUint256(contract.OpBalanceOf, schema, out)
	if err != nil {
		return nil, err
	}

	logger.Debug("balanceOf",
		zap.String("token", token.Hex()),
		zap.String("owner", owner.Hex()),
		zap.String("balance", balance.String()))
	return balance, nil
}
