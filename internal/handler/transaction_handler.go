package handler

import (
	"masterchef-rewards/internal/handler/response"
	"masterchef-rewards/internal/service"

	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	records *service.RecordService
}

func NewTransactionHandler(records *service.RecordService) *TransactionHandler {
	return &TransactionHandler{records: records}
}

// GetTransaction 查询 Safe 交易记录
// @Summary 查询提案
// @Tags Transactions
// @Produce json
// @Param safeTxHash path string true "Safe transaction hash"
// @Success 200 {object} response.Response{data=safe.TransactionRecord}
// @Router /api/v1/transactions/{safeTxHash} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	record, err := h.records.Get(c.Request.Context(), c.Param("safeTxHash"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, record)
}
