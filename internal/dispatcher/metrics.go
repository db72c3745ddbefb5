package dispatcher

import (
	"sort"
	"sync"
	"time"
)

// Metrics collects dispatch statistics.
type Metrics struct {
	mu sync.RWMutex

	actionMetrics map[string]*ActionMetrics

	totalDispatches uint64
	totalNoOps      uint64
	totalErrors     uint64
	totalDuration   time.Duration
}

// ActionMetrics holds metrics for a specific action.
type ActionMetrics struct {
	Name          string
	DispatchCount uint64
	NoOpCount     uint64
	ErrorCount    uint64
	TotalDuration time.Duration
	LastStatus    ResultStatus
}

// NewMetrics creates a new metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{
		actionMetrics: make(map[string]*ActionMetrics),
	}
}

// RecordDispatch records a dispatch event.
func (m *Metrics) RecordDispatch(actionName string, duration time.Duration, status ResultStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalDispatches++
	m.totalDuration += duration

	am := m.actionMetrics[actionName]
	if am == nil {
		am = &ActionMetrics{Name: actionName}
		m.actionMetrics[actionName] = am
	}
	am.DispatchCount++
	am.TotalDuration += duration
	am.LastStatus = status

	switch status {
	case StatusNoOp:
		m.totalNoOps++
		am.NoOpCount++
	case StatusError:
		m.totalErrors++
		am.ErrorCount++
	}
}

// Totals returns dispatch, no-op and error counts across all actions.
func (m *Metrics) Totals() (dispatches, noOps, errors uint64) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalDispatches, m.totalNoOps, m.totalErrors
}

// Action returns a copy of the metrics for one action.
func (m *Metrics) Action(name string) (ActionMetrics, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	am, ok := m.actionMetrics[name]
	if !ok {
		return ActionMetrics{}, false
	}
	return *am, true
}

// TopActions returns up to n actions ordered by dispatch count.
func (m *Metrics) TopActions(n int) []ActionMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := make([]ActionMetrics, 0, len(m.actionMetrics))
	for _, am := range m.actionMetrics {
		all = append(all, *am)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].DispatchCount != all[j].DispatchCount {
			return all[i].DispatchCount > all[j].DispatchCount
		}
		return all[i].Name < all[j].Name
	})
	if n >= 0 && n < len(all) {
		all = all[:n]
	}
	return all
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.actionMetrics = make(map[string]*ActionMetrics)
	m.totalDispatches = 0
	m.totalNoOps = 0
	m.totalErrors = 0
	m.totalDuration = 0
}
