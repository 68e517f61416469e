package request

// SetTargetRequest 设置目标奖励合约
// 不做 eth_addr 校验：非法输入是合法的操作，只会让表单回到等待状态
type SetTargetRequest struct {
	Address string `json:"address"`
}
