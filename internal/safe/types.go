package safe

import "time"

// TxRequest 交给 Safe 的一笔交易 (to, value, data)，value 固定为 "0"
type TxRequest struct {
	To    string `json:"to"`
	Value string `json:"value"`
	Data  string `json:"data"` // 0x 前缀 hex
}

// SendTransactionsParams is the body of a proposal: one or more calls batched into one Safe transaction.
type SendTransactionsParams struct {
	Txs []TxRequest `json:"txs"`
}

type SendTransactionsResponse struct {
	SafeTxHash string `json:"safeTxHash"`
}

// TxStatus 由 Safe 端维护的生命周期
type TxStatus string

const (
	TxStatusAwaitingConfirmations TxStatus = "AWAITING_CONFIRMATIONS"
	TxStatusAwaitingExecution     TxStatus = "AWAITING_EXECUTION"
	TxStatusSuccess               TxStatus = "SUCCESS"
	TxStatusFailed                TxStatus = "FAILED"
	TxStatusCancelled             TxStatus = "CANCELLED"
)

// TransactionRecord is the host wallet's view of a proposed transaction.
type TransactionRecord struct {
	SafeAddress           string     `json:"safeAddress"`
	SafeTxHash            string     `json:"safeTxHash"`
	To                    string     `json:"to"`
	Value                 string     `json:"value"`
	Data                  string     `json:"data"`
	Nonce                 uint64     `json:"nonce"`
	TxStatus              TxStatus   `json:"txStatus"`
	Confirmations         int        `json:"confirmations"`
	ConfirmationsRequired int        `json:"confirmationsRequired"`
	IsExecuted            bool       `json:"isExecuted"`
	TransactionHash       string     `json:"transactionHash,omitempty"` // 执行后的链上 Hash
	SubmissionDate        *time.Time `json:"submissionDate,omitempty"`
	ExecutionDate         *time.Time `json:"executionDate,omitempty"`
}

// Pending reports whether the record still waits for owners or an executor.
func (r *TransactionRecord) Pending() bool {
	return r.TxStatus == TxStatusAwaitingConfirmations || r.TxStatus == TxStatusAwaitingExecution
}
