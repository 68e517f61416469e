package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"masterchef-rewards/internal/contract"
	"masterchef-rewards/pkg/config"
	"masterchef-rewards/pkg/errno"
	"masterchef-rewards/pkg/logger"
	"masterchef-rewards/pkg/units"
	"masterchef-rewards/pkg/validator"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

// Mode 表单状态: 等待合法目标合约 / 可以操作
type Mode string

const (
	ModeAwaitingTarget Mode = "awaiting_target"
	ModeReady          Mode = "ready"
)

// Card 对应页面上的一个操作卡片
type Card string

const (
	CardTarget            Card = "target"
	CardTrustAMMFactory   Card = "trustAMMFactory"
	CardUntrustAMMFactory Card = "untrustAMMFactory"
	CardWithdrawRewards   Card = "withdrawRewards"
	CardAddRewards        Card = "addRewards"
)

// AmountSource decides where withdrawRewards takes its amount from.
type AmountSource string

const (
	AmountManual  AmountSource = "manual"  // 操作员输入
	AmountBalance AmountSource = "balance" // 目标合约持有的全部奖励代币
)

func ParseAmountSource(s string) (AmountSource, error) {
	switch AmountSource(strings.ToLower(strings.TrimSpace(s))) {
	case AmountManual, "":
		return AmountManual, nil
	case AmountBalance:
		return AmountBalance, nil
	}
	return "", fmt.Errorf("unknown amount source %q", s)
}

type FormConfig struct {
	RewardToken  common.Address
	AmountSource AmountSource
	Decimals     int // 0 是合法精度，不会被替换成 18
}

// FormState is what the presentation layer renders.
type FormState struct {
	Mode         Mode         `json:"mode"`
	Target       string       `json:"target"`
	Cards        []Card       `json:"cards"`
	AmountSource AmountSource `json:"amount_source"`
}

// AddRewardsInput 原样保存操作员输入的文本，校验和换算在 AddRewards 内完成
type AddRewardsInput struct {
	MarketFactory            string
	RewardsPerMarket         string
	RewardDaysPerMarket      string
	EarlyDepositBonusRewards string
}

// Form holds the operator-entered rewards-contract address and gates every action on it.
// Actions are not serialized against each other; the lock only protects the target field.
type Form struct {
	mu       sync.RWMutex
	target   string
	proposer *Proposer
	cfg      FormConfig
}

func NewForm(proposer *Proposer, cfg FormConfig, initialTarget string) *Form {
	if cfg.AmountSource == "" {
		cfg.AmountSource = AmountManual
	}
	return &Form{proposer: proposer, cfg: cfg, target: strings.TrimSpace(initialTarget)}
}

// SetTarget records the operator's input and reports the resulting mode.
func (f *Form) SetTarget(text string) Mode {
	f.mu.Lock()
	f.target = strings.TrimSpace(text)
	f.mu.Unlock()

	mode := f.Mode()
	logger.Info("目标合约已更新", zap.String("target", text), zap.String("mode", string(mode)))
	return mode
}

func (f *Form) Mode() Mode {
	return modeOf(f.targetText())
}

// Target returns the validated rewards-contract address.
func (f *Form) Target() (common.Address, bool) {
	text := f.targetText()
	if !validator.IsValidAddress(text) {
		return common.Address{}, false
	}
	return common.HexToAddress(text), true
}

func (f *Form) Cards() []Card {
	return cardsFor(f.Mode())
}

// State derives mode and cards from a single read of the target.
func (f *Form) State() FormState {
	text := f.targetText()
	mode := modeOf(text)

	return FormState{
		Mode:         mode,
		Target:       validator.ToChecksumAddress(text),
		Cards:        cardsFor(mode),
		AmountSource: f.cfg.AmountSource,
	}
}

func (f *Form) targetText() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.target
}

func modeOf(text string) Mode {
	if validator.IsValidAddress(text) {
		return ModeReady
	}
	return ModeAwaitingTarget
}

func cardsFor(mode Mode) []Card {
	if mode != ModeReady {
		return []Card{CardTarget}
	}
	return []Card{CardTrustAMMFactory, CardUntrustAMMFactory, CardWithdrawRewards, CardAddRewards}
}

func (f *Form) AmountSource() AmountSource {
	return f.cfg.AmountSource
}

func (f *Form) TrustAMMFactory(ctx context.Context, ammFactory string) (*Result, error) {
	target, err := f.ready()
	if err != nil {
		return nil, err
	}
	factory, err := parseAddress("_ammFactory", ammFactory)
	if err != nil {
		return nil, err
	}
	return f.proposer.Submit(ctx, target, contract.TrustAMMFactory(factory))
}

func (f *Form) UntrustAMMFactory(ctx context.Context, ammFactory string) (*Result, error) {
	target, err := f.ready()
	if err != nil {
		return nil, err
	}
	factory, err := parseAddress("_ammFactory", ammFactory)
	if err != nil {
		return nil, err
	}
	return f.proposer.Submit(ctx, target, contract.UntrustAMMFactory(factory))
}

// WithdrawRewards 按配置的金额来源构造 withdrawRewards
//   - manual: amount 为十进制代币数量，按 decimals 换算
//   - balance: 忽略 amount，先查询目标合约持有的奖励代币余额，原样编码
func (f *Form) WithdrawRewards(ctx context.Context, amount string) (*Result, error) {
	target, err := f.ready()
	if err != nil {
		return nil, err
	}

	switch f.cfg.AmountSource {
	case AmountBalance:
		if f.cfg.RewardToken == (common.Address{}) {
			return nil, fmt.Errorf("reward token not configured: %w", errno.InvalidAddress)
		}
		balance, err := f.proposer.QueryBalance(ctx, f.cfg.RewardToken, target)
		if err != nil {
			return nil, err
		}
		if balance.Sign() == 0 {
			logger.Warn("目标合约奖励余额为 0", zap.String("target", target.Hex()))
		}
		return f.proposer.Submit(ctx, target, contract.WithdrawRewards(balance))

	default:
		scaled, err := units.ToBaseUnits(amount, f.cfg.Decimals)
		if err != nil {
			return nil, fmt.Errorf("_amount: %w", err)
		}
		return f.proposer.Submit(ctx, target, contract.WithdrawRewards(scaled))
	}
}

// AddRewards scales the two token amounts by decimals; reward days are a plain integer.
func (f *Form) AddRewards(ctx context.Context, in AddRewardsInput) (*Result, error) {
	target, err := f.ready()
	if err != nil {
		return nil, err
	}
	marketFactory, err := parseAddress("_marketFactory", in.MarketFactory)
	if err != nil {
		return nil, err
	}
	rewardsPerMarket, err := units.ToBaseUnits(in.RewardsPerMarket, f.cfg.Decimals)
	if err != nil {
		return nil, fmt.Errorf("_rewardsPerMarket: %w", err)
	}
	rewardDays, err := units.ParseUint256(in.RewardDaysPerMarket)
	if err != nil {
		return nil, fmt.Errorf("_rewardDaysPerMarket: %w", err)
	}
	bonus, err := units.ToBaseUnits(in.EarlyDepositBonusRewards, f.cfg.Decimals)
	if err != nil {
		return nil, fmt.Errorf("_earlyDepositBonusRewards: %w", err)
	}

	return f.proposer.Submit(ctx, target, contract.AddRewards(marketFactory, rewardsPerMarket, rewardDays, bonus))
}

func (f *Form) ready() (common.Address, error) {
	target, ok := f.Target()
	if !ok {
		return common.Address{}, fmt.Errorf("rewards contract: awaiting a valid target: %w", errno.InvalidAddress)
	}
	return target, nil
}

func parseAddress(field, text string) (common.Address, error) {
	if !validator.IsValidAddress(text) {
		return common.Address{}, fmt.Errorf("%s %q: %w", field, text, errno.InvalidAddress)
	}
	return common.HexToAddress(strings.TrimSpace(text)), nil
}

// FormConfigFrom 从配置构造 FormConfig，reward_token 为空时保持零值
func FormConfigFrom(c config.ContractConfig) (FormConfig, error) {
	source, err := ParseAmountSource(c.AmountSource)
	if err != nil {
		return FormConfig{}, err
	}
	if c.Decimals < 0 {
		return FormConfig{}, fmt.Errorf("contract.decimals %d: %w", c.Decimals, errno.InvalidAmount)
	}
	cfg := FormConfig{AmountSource: source, Decimals: c.Decimals}
	if token := strings.TrimSpace(c.RewardToken); token != "" && token != config.ZeroAddress {
		if !validator.IsValidAddress(token) {
			return FormConfig{}, fmt.Errorf("contract.reward_token %q: %w", token, errno.InvalidAddress)
		}
		cfg.RewardToken = common.HexToAddress(token)
	}
	if source == AmountBalance && cfg.RewardToken == (common.Address{}) {
		return FormConfig{}, fmt.Errorf("amount_source=balance requires contract.reward_token: %w", errno.InvalidAddress)
	}
	return cfg, nil
}
