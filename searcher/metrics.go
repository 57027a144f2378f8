package searcher

import "isolation/game"

// IterationMetric describes one completed depth of iterative deepening
type IterationMetric struct {
	Depth int
	Move  game.Move
	Value float64
}

type SearchMetric struct {
	Nodes       int64
	Evaluations int64
	Cutoffs     int64
	Iterations  []IterationMetric
	TimedOut    bool
}

// Depth is the deepest completed iteration, 0 if none completed
func (m SearchMetric) Depth() int {
	if len(m.Iterations) == 0 {
		return 0
	}
	return m.Iterations[len(m.Iterations)-1].Depth
}

type MetricsCollector interface {
	AddNode()
	AddEvaluation()
	AddCutoff()
	CompleteIteration(depth int, move game.Move, value float64)
	TimeOut()
	Complete() SearchMetric
}

// Searches are single threaded, so no atomics needed
type metricsCollector struct {
	metric SearchMetric
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) AddNode() {
	m.metric.Nodes++
}

func (m *metricsCollector) AddEvaluation() {
	m.metric.Evaluations++
}

func (m *metricsCollector) AddCutoff() {
	m.metric.Cutoffs++
}

func (m *metricsCollector) CompleteIteration(depth int, move game.Move, value float64) {
	m.metric.Iterations = append(m.metric.Iterations, IterationMetric{Depth: depth, Move: move, Value: value})
}

func (m *metricsCollector) TimeOut() {
	m.metric.TimedOut = true
}

func (m *metricsCollector) Complete() SearchMetric {
	return m.metric
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) AddNode()                                  {}
func (m *noMetricsCollector) AddEvaluation()                            {}
func (m *noMetricsCollector) AddCutoff()                                {}
func (m *noMetricsCollector) CompleteIteration(int, game.Move, float64) {}
func (m *noMetricsCollector) TimeOut()                                  {}
func (m *noMetricsCollector) Complete() SearchMetric                    { return SearchMetric{} }
