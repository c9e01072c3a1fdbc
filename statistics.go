package osmroutes

import (
	"fmt"
	"log/slog"
)

// Statistics Counters of a single reconstruction run
type Statistics struct {
	TotalWays     int
	EmptyWays     int
	InvalidNodes  int
	UsedWays      int
	MissingWays   int
	TotalRoutes   int
	EmptyRoutes   int
	EmittedRoutes int
	JoinSuccesses int
	JoinFailures  int
	ForcedJoins   int
}

// addJoin accumulates counters of one joined route
func (stats *Statistics) addJoin(result JoinResult) {
	stats.TotalRoutes++
	stats.UsedWays += result.Resolved
	stats.MissingWays += result.Missing
	stats.JoinSuccesses += result.Successes
	stats.JoinFailures += result.Failures
	stats.ForcedJoins += result.Forced
	if result.Empty() {
		stats.EmptyRoutes++
	}
}

// Log reports counters, one record per counter
func (stats Statistics) Log(logger *slog.Logger) {
	logger.Info(fmt.Sprintf("%d way joins failed", stats.JoinFailures))
	logger.Info(fmt.Sprintf("%d way joins succeeded", stats.JoinSuccesses))
	logger.Info(fmt.Sprintf("%d way joins forced", stats.ForcedJoins))
	logger.Info(fmt.Sprintf("%d total ways", stats.TotalWays))
	logger.Info(fmt.Sprintf("%d empty ways", stats.EmptyWays))
	logger.Info(fmt.Sprintf("%d invalid nodes", stats.InvalidNodes))
	logger.Info(fmt.Sprintf("%d used ways", stats.UsedWays))
	logger.Info(fmt.Sprintf("%d missing ways", stats.MissingWays))
	logger.Info(fmt.Sprintf("%d total routes", stats.TotalRoutes))
	logger.Info(fmt.Sprintf("%d empty routes", stats.EmptyRoutes))
	logger.Info(fmt.Sprintf("%d emitted routes", stats.EmittedRoutes))
}

func (stats Statistics) String() string {
	return fmt.Sprintf(`
Reconstruction statistics:
	total ways: %d
	empty ways: %d
	invalid nodes: %d
	used ways: %d
	missing ways: %d
	total routes: %d
	empty routes: %d
	emitted routes: %d
	join successes: %d
	join failures: %d
	forced joins: %d
	`,
		stats.TotalWays,
		stats.EmptyWays,
		stats.InvalidNodes,
		stats.UsedWays,
		stats.MissingWays,
		stats.TotalRoutes,
		stats.EmptyRoutes,
		stats.EmittedRoutes,
		stats.JoinSuccesses,
		stats.JoinFailures,
		stats.ForcedJoins,
	)
}
