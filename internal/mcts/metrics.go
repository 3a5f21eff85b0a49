package mcts

import "time"

// Metrics summarizes one Run call: how long it took and how many of its
// iterations reached an expansion (as opposed to re-simulating an already
// fully-expanded leaf). Grounded on the teacher's MoveMetrics/
// MetricsCollector (searcher/metrics.go): the same StartTime/Duration/
// Episodes/FullPlayouts shape, trimmed to what a single-tree, single-thread
// search can report without the teacher's tree-reuse concept.
type Metrics struct {
	StartTime  time.Time
	Duration   time.Duration
	Iterations int
	Expansions int
}

// Metrics returns the statistics gathered by the most recent Run call.
func (t *Tree) Metrics() Metrics {
	return t.metrics
}
