package osmroutes

import (
	"context"
)

// Event Either WayEvent or RelationEvent
type Event interface {
	isEvent()
}

// NodeLocation Way node as reported by decoder. Invalid nodes carry no usable coordinate
type NodeLocation struct {
	Coordinate
	Valid bool
}

// WayEvent Way with its node locations in order
type WayEvent struct {
	ID    int64
	Nodes []NodeLocation
}

// Member Reference to a way inside of relation
type Member struct {
	Ref int64
}

// RelationEvent Relation with its tags and way members in order
type RelationEvent struct {
	ID      int64
	Tags    map[string]string
	Members []Member
}

func (WayEvent) isEvent()      {}
func (RelationEvent) isEvent() {}

// WayRefs returns referenced way identifiers in member order
func (rel RelationEvent) WayRefs() []int64 {
	refs := make([]int64, len(rel.Members))
	for i, member := range rel.Members {
		refs[i] = member.Ref
	}
	return refs
}

// Handler Consumer of decoded events. Returning an error aborts the replay
type Handler interface {
	Way(way WayEvent) error
	Relation(rel RelationEvent) error
}

// Pass Tells the source which events the handler needs
type Pass uint16

const (
	// PassFull Ways and relations
	PassFull = Pass(iota + 1)
	// PassRelations Relations only. Way geometry is not decoded at all
	PassRelations
)

func (iotaIdx Pass) String() string {
	return [...]string{"full", "relations"}[iotaIdx-1]
}

// Source Stream of events which could be replayed from the very beginning any number of times
type Source interface {
	Replay(ctx context.Context, handler Handler, pass Pass) error
}

// RouteFilter Decides whether relation with given tags is processed as a route
type RouteFilter func(tags map[string]string) bool

// IsRoadRoute Checks that tags describe road route: type=route and route=road
func IsRoadRoute(tags map[string]string) bool {
	return tags["type"] == "route" && tags["route"] == "road"
}
