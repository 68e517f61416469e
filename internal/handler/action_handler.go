package handler

import (
	"errors"

	"masterchef-rewards/internal/handler/request"
	"masterchef-rewards/internal/handler/response"
	"masterchef-rewards/internal/service"
	"masterchef-rewards/pkg/errno"
	"masterchef-rewards/pkg/validator"

	"github.com/gin-gonic/gin"
	govalidator "github.com/go-playground/validator/v10"
)

// ActionHandler 四个操作卡片对应的提交接口
type ActionHandler struct {
	form *service.Form
}

func NewActionHandler(form *service.Form) *ActionHandler {
	return &ActionHandler{form: form}
}

// TrustAMMFactory 提案 trustAMMFactory
// @Summary trustAMMFactory
// @Tags Actions
// @Accept json
// @Produce json
// @Param request body request.AMMFactoryRequest true "AMM factory"
// @Success 200 {object} response.Response{data=service.Result}
// @Router /api/v1/actions/trust-amm-factory [post]
func (h *ActionHandler) TrustAMMFactory(c *gin.Context) {
	var req request.AMMFactoryRequest
	if !bind(c, &req) {
		return
	}
	result, err := h.form.TrustAMMFactory(c.Request.Context(), req.AMMFactory)
	reply(c, result, err)
}

// UntrustAMMFactory 提案 untrustAMMFactory
// @Summary untrustAMMFactory
// @Tags Actions
// @Accept json
// @Produce json
// @Param request body request.AMMFactoryRequest true "AMM factory"
// @Success 200 {object} response.Response{data=service.Result}
// @Router /api/v1/actions/untrust-amm-factory [post]
func (h *ActionHandler) UntrustAMMFactory(c *gin.Context) {
	var req request.AMMFactoryRequest
	if !bind(c, &req) {
		return
	}
	result, err := h.form.UntrustAMMFactory(c.Request.Context(), req.AMMFactory)
	reply(c, result, err)
}

// WithdrawRewards 提案 withdrawRewards
// @Summary withdrawRewards
// @Description amount_source=manual 时使用 amount；amount_source=balance 时先查询目标合约的奖励代币余额
// @Tags Actions
// @Accept json
// @Produce json
// @Param request body request.WithdrawRewardsRequest false "金额 (代币单位)"
// @Success 200 {object} response.Response{data=service.Result}
// @Router /api/v1/actions/withdraw-rewards [post]
func (h *ActionHandler) WithdrawRewards(c *gin.Context) {
	var req request.WithdrawRewardsRequest
	if c.Request.ContentLength != 0 && !bind(c, &req) {
		return
	}
	if h.form.AmountSource() == service.AmountManual && req.Amount == "" {
		response.Error(c, errno.InvalidAmount.WithMessage("amount is required"))
		return
	}
	result, err := h.form.WithdrawRewards(c.Request.Context(), req.Amount)
	reply(c, result, err)
}

// AddRewards 提案 addRewards
// @Summary addRewards
// @Description rewards_per_market 与 early_deposit_bonus_rewards 按 18 位小数换算，reward_days_per_market 为整数
// @Tags Actions
// @Accept json
// @Produce json
// @Param request body request.AddRewardsRequest true "addRewards 参数"
// @Success 200 {object} response.Response{data=service.Result}
// @Router /api/v1/actions/add-rewards [post]
func (h *ActionHandler) AddRewards(c *gin.Context) {
	var req request.AddRewardsRequest
	if !bind(c, &req) {
		return
	}
	result, err := h.form.AddRewards(c.Request.Context(), service.AddRewardsInput{
		MarketFactory:            req.MarketFactory,
		RewardsPerMarket:         req.RewardsPerMarket,
		RewardDaysPerMarket:      req.RewardDaysPerMarket,
		EarlyDepositBonusRewards: req.EarlyDepositBonusRewards,
	})
	reply(c, result, err)
}

// bind 校验失败时按 tag 映射到业务错误码，动作保持无副作用
func bind(c *gin.Context, req interface{}) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	var verrs govalidator.ValidationErrors
	if !errors.As(err, &verrs) {
		response.Error(c, errno.ErrBind)
		return false
	}

	msg := validator.GetErrorMsg(err)
	switch validator.Tag(err) {
	case "eth_addr":
		response.Error(c, errno.InvalidAddress.WithMessage(msg))
	case "token_amount", "uint_string":
		response.Error(c, errno.InvalidAmount.WithMessage(msg))
	default:
		response.Error(c, errno.ErrBind.WithMessage(msg))
	}
	return false
}

func reply(c *gin.Context, result *service.Result, err error) {
	if err != nil {
		if result != nil {
			response.ErrorWithData(c, err, result)
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
