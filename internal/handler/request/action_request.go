package request

// AMMFactoryRequest trustAMMFactory / untrustAMMFactory 参数
type AMMFactoryRequest struct {
	AMMFactory string `json:"amm_factory" binding:"required,eth_addr"`
}

// WithdrawRewardsRequest carries a decimal token amount; ignored when the amount source is "balance".
type WithdrawRewardsRequest struct {
	Amount string `json:"amount" binding:"omitempty,token_amount"`
}

type AddRewardsRequest struct {
	MarketFactory            string `json:"market_factory" binding:"required,eth_addr"`
	RewardsPerMarket         string `json:"rewards_per_market" binding:"required,token_amount"`
	RewardDaysPerMarket      string `json:"reward_days_per_market" binding:"required,uint_string"`
	EarlyDepositBonusRewards string `json:"early_deposit_bonus_rewards" binding:"required,token_amount"`
}

// EncodeRequest 试编码：参数按 ABI 原样传入 (uint256 为最小单位整数)
type EncodeRequest struct {
	Operation string   `json:"operation" binding:"required"`
	Args      []string `json:"args"`
}
