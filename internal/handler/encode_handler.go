package handler

import (
	"masterchef-rewards/internal/contract"
	"masterchef-rewards/internal/handler/request"
	"masterchef-rewards/internal/handler/response"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gin-gonic/gin"
)

type EncodeResult struct {
	Operation contract.Operation `json:"operation"`
	Signature string             `json:"signature"`
	Selector  string             `json:"selector"`
	Data      string             `json:"data"`
}

// Encode 只编码 calldata，不提交
// @Summary 试编码
// @Description 按 MasterChef ABI 编码调用数据，用于提案前核对
// @Tags Tools
// @Accept json
// @Produce json
// @Param request body request.EncodeRequest true "操作与参数"
// @Success 200 {object} response.Response{data=EncodeResult}
// @Router /api/v1/encode [post]
func Encode(c *gin.Context) {
	var req request.EncodeRequest
	if !bind(c, &req) {
		return
	}

	op, err := contract.ParseOperation(req.Operation)
	if err != nil {
		response.Error(c, err)
		return
	}
	schema := contract.MasterChefSchema()

	args := make([]interface{}, len(req.Args))
	for i, a := range req.Args {
		args[i] = a
	}
	data, err := contract.EncodeCall(contract.NewCallDescriptor(op, args...), schema)
	if err != nil {
		response.Error(c, err)
		return
	}
	sig, _ := contract.Signature(op, schema)

	response.Success(c, EncodeResult{
		Operation: op,
		Signature: sig,
		Selector:  hexutil.Encode(data[:4]),
		Data:      hexutil.Encode(data),
	})
}
