package engine

import "twixt/experiments/metrics"

// Runner plays a game to the end.
type Runner interface {
	// Run starts a game till there's a winner or the turn limit is reached
	Run() (winner string, gameMetric metrics.GameMetric, turnMetrics []metrics.TurnMetric)
}
