// Package metrics 暴露上游调用与降级结果的 Prometheus 指标。
//
// 约束：
// - 默认使用独立 registry（不混入 Go runtime 默认指标）
// - *Manager 为 nil 时所有记录方法都是 no-op，调用方不需要判空
package metrics

import (
	"io"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

const defaultNamespace = "tmdbnote"

// Manager 持有全部指标。
type Manager struct {
	namespace string
	buckets   []float64
	registry  *prometheus.Registry

	upstreamRequests *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	degradedResults  *prometheus.CounterVec
}

// Option 配置 Manager。
type Option func(*Manager)

func WithNamespace(ns string) Option {
	return func(m *Manager) {
		if ns != "" {
			m.namespace = ns
		}
	}
}

// WithHistogramBuckets 覆盖耗时直方图的桶（秒）。
func WithHistogramBuckets(b []float64) Option {
	return func(m *Manager) {
		if len(b) > 0 {
			m.buckets = b
		}
	}
}

// WithRegistry 指定 registry（测试里每个用例用自己的 registry，避免重复注册）。
func WithRegistry(r *prometheus.Registry) Option {
	return func(m *Manager) {
		if r != nil {
			m.registry = r
		}
	}
}

func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: defaultNamespace,
		buckets:   prometheus.DefBuckets,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}

	auto := promauto.With(m.registry)
	m.upstreamRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "upstream_requests_total",
		Help:      "Upstream catalog requests by endpoint and HTTP status (\"error\" for transport failures).",
	}, []string{"endpoint", "status"})
	m.upstreamDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Upstream catalog request latency.",
		Buckets:   m.buckets,
	}, []string{"endpoint"})
	m.degradedResults = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "degraded_results_total",
		Help:      "Best-effort operations that degraded to an empty result.",
	}, []string{"op"})
	return m
}

// Registry 返回底层 registry（用于测试断言或导出）。
func (m *Manager) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveUpstream 记录一次上游请求；status<=0 表示传输层失败（没有拿到响应）。
func (m *Manager) ObserveUpstream(endpoint string, status int, d time.Duration) {
	if m == nil {
		return
	}
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	m.upstreamRequests.WithLabelValues(endpoint, label).Inc()
	m.upstreamDuration.WithLabelValues(endpoint).Observe(d.Seconds())
}

// RecordDegraded 记录一次“失败后降级为空结果”。
func (m *Manager) RecordDegraded(op string) {
	if m == nil {
		return
	}
	m.degradedResults.WithLabelValues(op).Inc()
}

// WriteText 以 Prometheus 文本格式导出当前所有指标。
func (m *Manager) WriteText(w io.Writer) error {
	if m == nil {
		return nil
	}
	families, err := m.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
