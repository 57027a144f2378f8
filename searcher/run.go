package searcher

import "isolation/game"

// run holds everything scoped to a single top-level search call
type run struct {
	clock     Clock
	settings  settings
	metrics   MetricsCollector
	truncated bool // Some leaf was cut off by the depth limit
}

func newRun(s settings, clock Clock, metrics MetricsCollector) *run {
	return &run{
		clock:    clock,
		settings: s,
		metrics:  metrics,
	}
}

// poll must be the first thing every search frame does
func (r *run) poll() error {
	if r.clock() < r.settings.threshold {
		return ErrSearchTimeout
	}
	r.metrics.AddNode()
	return nil
}

func (r *run) score(state game.State, player string) float64 {
	r.metrics.AddEvaluation()
	return r.settings.evaluate(state, player)
}

func (r *run) leaf(depth int) bool {
	if depth <= 0 {
		r.truncated = true
		return true
	}
	return false
}
