package osmroutes

import (
	"log/slog"
)

// JoinOutcome What happened to a single way reference while joining route
type JoinOutcome uint16

const (
	JOIN_SEED = JoinOutcome(iota + 1)
	JOIN_FORWARD
	JOIN_REVERSED
	JOIN_FORCED
	JOIN_SKIPPED
	JOIN_MISSING
)

func (iotaIdx JoinOutcome) String() string {
	return [...]string{"seed", "forward", "reversed", "forced", "skipped", "missing"}[iotaIdx-1]
}

// JoinResult Reconstructed route and per-route counters
type JoinResult struct {
	Route     Route
	Outcomes  []JoinOutcome
	Resolved  int
	Missing   int
	Successes int
	Failures  int
	Forced    int
}

// Empty reports whether nothing could be put into route
func (result JoinResult) Empty() bool {
	return len(result.Route) == 0
}

// RouteJoiner Stitches ways of a route into single coordinate sequence by matching endpoints
type RouteJoiner struct {
	ways       WayLookup
	forceJoins bool
	logger     *slog.Logger
}

// NewRouteJoiner returns joiner reading geometry from ways
func NewRouteJoiner(ways WayLookup, forceJoins bool, logger *slog.Logger) *RouteJoiner {
	if logger == nil {
		logger = slog.Default()
	}
	return &RouteJoiner{
		ways:       ways,
		forceJoins: forceJoins,
		logger:     logger,
	}
}

// Join reconstructs route from way references in given order
/*
	The first resolved way seeds the route. Each next way is appended forward when
	its first coordinate equals the route's last one, reversed when its last
	coordinate does. The whole way is appended, so the shared coordinate shows up
	twice in a row. Otherwise the join fails: with forceJoins the way is appended
	as is, without it the way is dropped. Coordinates are compared exactly.
*/
func (joiner *RouteJoiner) Join(relationID int64, refs []int64) JoinResult {
	result := JoinResult{
		Outcomes: make([]JoinOutcome, 0, len(refs)),
	}
	for _, ref := range refs {
		coordinates, ok := joiner.ways.Get(ref)
		if !ok || len(coordinates) == 0 {
			result.Missing++
			result.Outcomes = append(result.Outcomes, JOIN_MISSING)
			joiner.logger.Debug("could not find way for route", "way_id", ref, "relation_id", relationID)
			continue
		}
		result.Resolved++
		if len(result.Route) == 0 {
			result.Route = append(make(Route, 0, len(coordinates)), coordinates...)
			result.Outcomes = append(result.Outcomes, JOIN_SEED)
			continue
		}
		last := result.Route.Last()
		switch {
		case last == coordinates[0]:
			result.Route = append(result.Route, coordinates...)
			result.Successes++
			result.Outcomes = append(result.Outcomes, JOIN_FORWARD)
		case last == coordinates[len(coordinates)-1]:
			result.Route = appendReversed(result.Route, coordinates)
			result.Successes++
			result.Outcomes = append(result.Outcomes, JOIN_REVERSED)
		default:
			result.Failures++
			joiner.logger.Debug("error joining way into route", "way_id", ref, "relation_id", relationID, "forced", joiner.forceJoins)
			if !joiner.forceJoins {
				result.Outcomes = append(result.Outcomes, JOIN_SKIPPED)
				continue
			}
			result.Route = append(result.Route, coordinates...)
			result.Forced++
			result.Outcomes = append(result.Outcomes, JOIN_FORCED)
		}
	}
	return result
}

// appendReversed appends points to dst in reverse order. Stored way is left untouched
func appendReversed(dst Route, pts []Coordinate) Route {
	for i := len(pts) - 1; i >= 0; i-- {
		dst = append(dst, pts[i])
	}
	return dst
}
