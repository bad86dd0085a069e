package searcher

import (
	"sync/atomic"
	"time"
)

type SearchMetrics struct {
	StartTime      time.Time
	Duration       time.Duration
	Permutations   int64
	NodesExpanded  int64
	PrunedChildren int64
}

type MetricsCollector interface {
	Start()
	AddPermutation()
	AddExpansion()
	AddPruned()
	Complete() SearchMetrics
}

type metricsCollector struct {
	startTime    time.Time
	permutations atomic.Int64
	expansions   atomic.Int64
	pruned       atomic.Int64
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start() {
	m.startTime = time.Now()
}

func (m *metricsCollector) AddPermutation() {
	m.permutations.Add(1)
}

func (m *metricsCollector) AddExpansion() {
	m.expansions.Add(1)
}

func (m *metricsCollector) AddPruned() {
	m.pruned.Add(1)
}

func (m *metricsCollector) Complete() SearchMetrics {
	return SearchMetrics{
		StartTime:      m.startTime,
		Duration:       time.Since(m.startTime),
		Permutations:   m.permutations.Load(),
		NodesExpanded:  m.expansions.Load(),
		PrunedChildren: m.pruned.Load(),
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start()                  {}
func (m *noMetricsCollector) AddPermutation()         {}
func (m *noMetricsCollector) AddExpansion()           {}
func (m *noMetricsCollector) AddPruned()              {}
func (m *noMetricsCollector) Complete() SearchMetrics { return SearchMetrics{} }
