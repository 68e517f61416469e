package monitor

import (
	"github.com/prometheus/client_golang/prometheus"
)

// BusinessMetrics 定义业务监控指标
type BusinessMetrics struct {
	ProposalsTotal      *prometheus.CounterVec
	ProposalDuration    *prometheus.HistogramVec
	BalanceQueriesTotal *prometheus.CounterVec
	RecordFetchesTotal  *prometheus.CounterVec
	RewardTokenBalance  *prometheus.GaugeVec
}

// Business 在包加载时创建，Init 时注册到默认 Registry。
// 未注册时计数照常进行，只是不会被 /metrics 暴露 (CLI 和单测即是如此)。
var Business = newBusinessMetrics()

func newBusinessMetrics() *BusinessMetrics {
	return &BusinessMetrics{
		ProposalsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "masterchef_proposals_total",
			Help: "Safe transaction proposals by operation and outcome",
		}, []string{"operation", "status"}),
		ProposalDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "masterchef_proposal_duration_seconds",
			Help:    "Duration of a proposal round trip (send + fetch)",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		BalanceQueriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "masterchef_balance_queries_total",
			Help: "Reward token balance reads by outcome",
		}, []string{"status"}),
		RecordFetchesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "masterchef_record_fetches_total",
			Help: "Safe transaction record lookups by source (cache, remote, error)",
		}, []string{"source"}),
		RewardTokenBalance: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "masterchef_reward_token_balance",
			Help: "Reward token balance held by the rewards contract, in token units",
		}, []string{"token", "owner"}),
	}
}

func (b *BusinessMetrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		b.ProposalsTotal,
		b.ProposalDuration,
		b.BalanceQueriesTotal,
		b.RecordFetchesTotal,
		b.RewardTokenBalance,
	}
}
