package service

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"masterchef-rewards/pkg/lock"
	"masterchef-rewards/pkg/logger"
	"masterchef-rewards/pkg/monitor"

	"github.com/ethereum/go-ethereum/common"
	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const balanceWatchLockKey = "cron:masterchef:reward_balance"

// BalanceWatcher 定时读取目标合约持有的奖励代币余额并写入 gauge，只读，不会发起提案
type BalanceWatcher struct {
	form *Form
	cron *cron.Cron
	lock lock.DistributedLock // 可为 nil (单实例)
}

func NewBalanceWatcher(form *Form, locker lock.DistributedLock) *BalanceWatcher {
	return &BalanceWatcher{form: form, cron: cron.New(), lock: locker}
}

// Start 按 cron 表达式调度，例如 "@every 5m"
func (w *BalanceWatcher) Start(spec string) error {
	_, err := w.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if _, err := w.RunOnce(ctx); err != nil {
			logger.Warn("奖励余额巡检失败", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("balance watch schedule %q: %w", spec, err)
	}

	w.cron.Start()
	logger.Info("Balance watcher started", zap.String("schedule", spec))
	return nil
}

func (w *BalanceWatcher) Stop() {
	<-w.cron.Stop().Done()
	logger.Info("Balance watcher stopped")
}

// RunOnce reads the balance once. It returns nil without error when there is nothing to watch
// or another instance holds the lock.
func (w *BalanceWatcher) RunOnce(ctx context.Context) (*big.Int, error) {
	token := w.form.cfg.RewardToken
	target, ok := w.form.Target()
	if !ok || token == (common.Address{}) {
		return nil, nil
	}

	if w.lock != nil {
		locked, err := w.lock.Acquire(ctx, balanceWatchLockKey, 30*time.Second)
		if err != nil {
			return nil, err
		}
		if !locked {
			logger.Debug("奖励余额巡检: 已有实例在运行")
			return nil, nil
		}
		defer func() { _ = w.lock.Release(ctx, balanceWatchLockKey) }()
	}

	balance, err := w.form.proposer.QueryBalance(ctx, token, target)
	if err != nil {
		return nil, err
	}

	amount := decimal.NewFromBigInt(balance, -int32(w.form.cfg.Decimals))
	monitor.Business.RewardTokenBalance.WithLabelValues(token.Hex(), target.Hex()).Set(amount.InexactFloat64())
	logger.Info("奖励代币余额",
		zap.String("token", token.Hex()),
		zap.String("owner", target.Hex()),
		zap.String("balance", amount.String()))
	return balance, nil
}
