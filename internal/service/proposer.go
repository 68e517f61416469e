package service

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"masterchef-rewards/internal/contract"
	"masterchef-rewards/internal/safe"
	"masterchef-rewards/pkg/errno"
	"masterchef-rewards/pkg/logger"
	"masterchef-rewards/pkg/monitor"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.uber.org/zap"
)

// BalanceReader 链上只读查询 (chain.Reader 实现)
type BalanceReader interface {
	BalanceOf(ctx context.Context, token, owner common.Address) (*big.Int, error)
}

// TransactionHandle identifies a proposal on the host wallet.
type TransactionHandle struct {
	SafeTxHash string `json:"safe_tx_hash"`
}

// Result 一次提交动作的结果
type Result struct {
	Operation contract.Operation      `json:"operation"`
	Call      string                  `json:"call"`
	Envelope  safe.TxRequest          `json:"envelope"`
	Handle    TransactionHandle       `json:"handle"`
	Record    *safe.TransactionRecord `json:"record,omitempty"`
}

// Proposer 把 calldata 包装成 {to, value:"0", data} 交给宿主钱包
// 每次动作只提交一次，失败直接返回给调用方，不重试
type Proposer struct {
	client  safe.Client
	reader  BalanceReader
	confirm ConfirmFunc
}

// ConfirmFunc 提交前由操作员核对；返回 false 则放弃，不产生任何网络请求
type ConfirmFunc func(call string, envelope safe.TxRequest) bool

func NewProposer(client safe.Client, reader BalanceReader) *Proposer {
	return &Proposer{client: client, reader: reader}
}

// WithConfirm installs an operator confirmation step in front of every Submit.
func (p *Proposer) WithConfirm(fn ConfirmFunc) *Proposer {
	p.confirm = fn
	return p
}

// Envelope builds the fixed-shape transaction handed to the host wallet.
func Envelope(to common.Address, data []byte) safe.TxRequest {
	return safe.TxRequest{
		To:    to.Hex(),
		Value: "0",
		Data:  hexutil.Encode(data),
	}
}

// Propose submits one envelope. A zero destination is refused before any network traffic.
func (p *Proposer) Propose(ctx context.Context, to common.Address, data []byte) (TransactionHandle, error) {
	if to == (common.Address{}) {
		return TransactionHandle{}, fmt.Errorf("refusing to propose to the zero address: %w", errno.InvalidAddress)
	}

	envelope := Envelope(to, data)
	resp, err := p.client.Send(ctx, safe.SendTransactionsParams{Txs: []safe.TxRequest{envelope}})
	if err != nil {
		logger.Error("Safe 提案失败", zap.String("to", envelope.To), zap.Error(err))
		return TransactionHandle{}, remoteErr("send", err)
	}

	logger.Info("Safe 提案已提交", zap.String("to", envelope.To), zap.String("safeTxHash", resp.SafeTxHash))
	return TransactionHandle{SafeTxHash: resp.SafeTxHash}, nil
}

// Fetch retrieves the host wallet's record for a previous proposal.
func (p *Proposer) Fetch(ctx context.Context, handle TransactionHandle) (*safe.TransactionRecord, error) {
	record, err := p.client.GetBySafeTxHash(ctx, handle.SafeTxHash)
	if err != nil {
		logger.Error("查询 Safe 交易失败", zap.String("safeTxHash", handle.SafeTxHash), zap.Error(err))
		return nil, remoteErr("getBySafeTxHash", err)
	}
	return record, nil
}

// QueryBalance reads token.balanceOf(owner); a pure read without retries.
func (p *Proposer) QueryBalance(ctx context.Context, token, owner common.Address) (*big.Int, error) {
	if p.reader == nil {
		return nil, fmt.Errorf("no chain reader configured: %w", errno.RemoteRejected)
	}
	balance, err := p.reader.BalanceOf(ctx, token, owner)
	if err != nil {
		monitor.Business.BalanceQueriesTotal.WithLabelValues("error").Inc()
		logger.Error("查询奖励代币余额失败",
			zap.String("token", token.Hex()), zap.String("owner", owner.Hex()), zap.Error(err))
		return nil, remoteErr("balanceOf", err)
	}
	monitor.Business.BalanceQueriesTotal.WithLabelValues("ok").Inc()
	return balance, nil
}

// Submit encodes desc against the MasterChef schema, proposes it to `to` and fetches the record.
// When the send fails no fetch is attempted. When only the fetch fails the handle is still returned.
func (p *Proposer) Submit(ctx context.Context, to common.Address, desc contract.CallDescriptor) (*Result, error) {
	start := time.Now()
	op := string(desc.Op)

	data, err := contract.EncodeCall(desc, contract.MasterChefSchema())
	if err != nil {
		// 操作集合是固定的，编码失败说明代码与 ABI 不一致
		logger.Error("calldata 编码失败", zap.String("call", desc.String()), zap.Error(err))
		monitor.Business.ProposalsTotal.WithLabelValues(op, "encode_error").Inc()
		return nil, err
	}

	result := &Result{
		Operation: desc.Op,
		Call:      desc.String(),
		Envelope:  Envelope(to, data),
	}

	if p.confirm != nil && !p.confirm(result.Call, result.Envelope) {
		logger.Info("操作员取消提案", zap.String("call", result.Call))
		monitor.Business.ProposalsTotal.WithLabelValues(op, "cancelled").Inc()
		return nil, fmt.Errorf("%s: %w", result.Call, errno.Cancelled)
	}

	handle, err := p.Propose(ctx, to, data)
	if err != nil {
		monitor.Business.ProposalsTotal.WithLabelValues(op, "rejected").Inc()
		return nil, err
	}
	result.Handle = handle

	record, err := p.Fetch(ctx, handle)
	monitor.Business.ProposalDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil {
		monitor.Business.ProposalsTotal.WithLabelValues(op, "fetch_error").Inc()
		return result, err
	}
	result.Record = record
	monitor.Business.ProposalsTotal.WithLabelValues(op, "proposed").Inc()

	logger.Info("Safe 交易记录",
		zap.String("call", result.Call),
		zap.String("safeTxHash", handle.SafeTxHash),
		zap.String("status", string(record.TxStatus)),
		zap.Int("confirmations", record.Confirmations),
		zap.Int("required", record.ConfirmationsRequired))
	return result, nil
}

func remoteErr(op string, err error) error {
	if errors.Is(err, errno.RemoteRejected) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %v: %w", op, err, errno.RemoteRejected)
}
