package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"masterchef-rewards/internal/safe"
	"masterchef-rewards/pkg/cache"
	"masterchef-rewards/pkg/errno"
	"masterchef-rewards/pkg/logger"
	"masterchef-rewards/pkg/monitor"

	"go.uber.org/zap"
)

var safeTxHashPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)

// RecordService 查询 Safe 交易记录，短 TTL 读穿缓存，避免页面轮询打满宿主钱包
type RecordService struct {
	proposer *Proposer
	cache    cache.Cache
	ttl      time.Duration
}

func NewRecordService(proposer *Proposer, c cache.Cache, ttl time.Duration) *RecordService {
	return &RecordService{proposer: proposer, cache: c, ttl: ttl}
}

func (s *RecordService) Get(ctx context.Context, safeTxHash string) (*safe.TransactionRecord, error) {
	safeTxHash = strings.TrimSpace(safeTxHash)
	if !safeTxHashPattern.MatchString(safeTxHash) {
		return nil, fmt.Errorf("%q: %w", safeTxHash, errno.InvalidTxHash)
	}
	key := strings.ToLower(safeTxHash)

	if s.cache != nil {
		var cached safe.TransactionRecord
		if err := s.cache.Get(ctx, key, &cached); err == nil {
			monitor.Business.RecordFetchesTotal.WithLabelValues("cache").Inc()
			return &cached, nil
		}
	}

	record, err := s.proposer.Fetch(ctx, TransactionHandle{SafeTxHash: safeTxHash})
	if err != nil {
		monitor.Business.RecordFetchesTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	monitor.Business.RecordFetchesTotal.WithLabelValues("remote").Inc()

	if s.cache != nil && s.ttl > 0 {
		if err := s.cache.Set(ctx, key, record, s.ttl); err != nil {
			logger.Warn("缓存 Safe 交易记录失败", zap.String("safeTxHash", safeTxHash), zap.Error(err))
		}
	}
	return record, nil
}
