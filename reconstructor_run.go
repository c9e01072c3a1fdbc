package osmroutes

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
)

// Run reconstructs every route of source and writes non-empty ones to sink as soon as they are complete
/*
	Single pass keeps every way seen so far. Relations referencing ways which
	appear later in the stream will miss them.
	Low memory mode replays source twice: the first pass collects identifiers of
	route members, the second one keeps geometry of those ways only and joins routes.
	Returned error is fatal (source or sink failure); counters collected so far are returned with it.
*/
func (r *Reconstructor) Run(ctx context.Context, source Source, sink RouteSink) (Statistics, error) {
	logger := r.log()
	store := NewWayStore()
	if r.lowMemory {
		logger.Debug("scanning route members")
		st := time.Now()
		members, err := NewMembershipScanner(r.routeFilter()).Scan(ctx, source)
		if err != nil {
			return Statistics{}, err
		}
		logger.Debug("route members scanned", "ways", members.Len(), "elapsed", time.Since(st))
		store = NewFilteredWayStore(members)
	}

	pass := &reconstructionPass{
		store:  store,
		joiner: NewRouteJoiner(store, r.forceJoins, logger),
		filter: r.routeFilter(),
		sink:   sink,
		logger: logger,
	}
	st := time.Now()
	err := source.Replay(ctx, pass, PassFull)
	if err != nil {
		return pass.stats, errors.Wrap(err, "Can't reconstruct routes")
	}
	err = sink.Flush()
	if err != nil {
		return pass.stats, errors.Wrap(err, "Can't flush routes")
	}
	logger.Debug("routes reconstructed", "stored_ways", store.Len(), "elapsed", time.Since(st))
	return pass.stats, nil
}

// reconstructionPass Handler of the pass which stores ways and joins routes
type reconstructionPass struct {
	store  *WayStore
	joiner *RouteJoiner
	filter RouteFilter
	sink   RouteSink
	logger *slog.Logger
	stats  Statistics
}

func (pass *reconstructionPass) Way(way WayEvent) error {
	pass.stats.TotalWays++
	if !pass.store.Wanted(way.ID) {
		return nil
	}
	coordinates := make([]Coordinate, 0, len(way.Nodes))
	for _, node := range way.Nodes {
		if !node.Valid {
			pass.stats.InvalidNodes++
			pass.logger.Warn("way has an invalid node", "way_id", way.ID)
			continue
		}
		coordinates = append(coordinates, node.Coordinate)
	}
	if pass.store.Put(way.ID, coordinates) == WAY_EMPTY {
		pass.stats.EmptyWays++
		pass.logger.Warn("way has no nodes", "way_id", way.ID)
	}
	return nil
}

func (pass *reconstructionPass) Relation(rel RelationEvent) error {
	if !pass.filter(rel.Tags) {
		return nil
	}
	if len(rel.Members) == 0 {
		pass.logger.Warn("route has no way members", "relation_id", rel.ID)
	}
	result := pass.joiner.Join(rel.ID, rel.WayRefs())
	pass.stats.addJoin(result)
	if result.Empty() {
		pass.logger.Debug("route is empty", "relation_id", rel.ID)
		return nil
	}
	err := pass.sink.WriteRoute(rel.ID, result.Route)
	if err != nil {
		return errors.Wrapf(err, "Can't write route %d", rel.ID)
	}
	pass.stats.EmittedRoutes++
	return nil
}
