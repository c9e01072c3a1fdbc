package osmroutes

import (
	"fmt"
	"log/slog"
)

// Reconstructor Rebuilds road routes from ways and relations
type Reconstructor struct {
	forceJoins bool
	lowMemory  bool
	filter     RouteFilter
	logger     *slog.Logger
}

func (r *Reconstructor) String() string {
	return fmt.Sprintf(`
Route reconstruction parameters:
	force joins?: %t
	low memory (two passes)?: %t
	custom route filter?: %t
	`,
		r.forceJoins,
		r.lowMemory,
		r.filter != nil,
	)
}

func NewReconstructor(options ...func(*Reconstructor)) *Reconstructor {
	r := &Reconstructor{
		forceJoins: false,
		lowMemory:  false,
	}
	for _, option := range options {
		option(r)
	}
	return r
}

// WithForceJoins appends ways without shared endpoint instead of dropping them
func WithForceJoins(forceJoins bool) func(*Reconstructor) {
	return func(r *Reconstructor) {
		r.forceJoins = forceJoins
	}
}

// WithLowMemory switches to two passes: route members first, then geometry of those members only
func WithLowMemory(lowMemory bool) func(*Reconstructor) {
	return func(r *Reconstructor) {
		r.lowMemory = lowMemory
	}
}

// WithRouteFilter replaces IsRoadRoute as the test of which relations are routes
func WithRouteFilter(filter RouteFilter) func(*Reconstructor) {
	return func(r *Reconstructor) {
		r.filter = filter
	}
}

func WithLogger(logger *slog.Logger) func(*Reconstructor) {
	return func(r *Reconstructor) {
		r.logger = logger
	}
}

func (r *Reconstructor) routeFilter() RouteFilter {
	if r.filter == nil {
		return IsRoadRoute
	}
	return r.filter
}

func (r *Reconstructor) log() *slog.Logger {
	if r.logger == nil {
		return slog.Default()
	}
	return r.logger
}
