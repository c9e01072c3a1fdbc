package osmroutes

import (
	"errors"
	"io"
	"log/slog"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func wayEvent(id int64, coordinates ...Coordinate) WayEvent {
	nodes := make([]NodeLocation, len(coordinates))
	for i, c := range coordinates {
		nodes[i] = NodeLocation{Coordinate: c, Valid: true}
	}
	return WayEvent{ID: id, Nodes: nodes}
}

func roadRoute(id int64, refs ...int64) RelationEvent {
	members := make([]Member, len(refs))
	for i, ref := range refs {
		members[i] = Member{Ref: ref}
	}
	return RelationEvent{
		ID:      id,
		Tags:    map[string]string{"type": "route", "route": "road"},
		Members: members,
	}
}

func pt(lat, lon float64) Coordinate {
	return Coordinate{Lat: lat, Lon: lon}
}

func sameRoute(a, b Route) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

var errSinkBroken = errors.New("sink is broken")

// memorySink Keeps written routes
type memorySink struct {
	ids     []int64
	routes  []Route
	flushed bool
	failOn  int64
}

func (sink *memorySink) WriteRoute(relationID int64, route Route) error {
	if sink.failOn != 0 && relationID == sink.failOn {
		return errSinkBroken
	}
	sink.ids = append(sink.ids, relationID)
	sink.routes = append(sink.routes, route)
	return nil
}

func (sink *memorySink) Flush() error {
	sink.flushed = true
	return nil
}
