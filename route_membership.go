package osmroutes

import (
	"context"

	"github.com/pkg/errors"
)

// MembershipSet Identifiers of ways referenced by at least one route
type MembershipSet struct {
	ids map[int64]struct{}
}

func NewMembershipSet() *MembershipSet {
	return &MembershipSet{
		ids: make(map[int64]struct{}),
	}
}

func (set *MembershipSet) Add(id int64) {
	set.ids[id] = struct{}{}
}

func (set *MembershipSet) Contains(id int64) bool {
	_, ok := set.ids[id]
	return ok
}

func (set *MembershipSet) Len() int {
	return len(set.ids)
}

// MembershipScanner Collects way references of routes without looking at way geometry
type MembershipScanner struct {
	filter  RouteFilter
	members *MembershipSet
	routes  int
}

// NewMembershipScanner returns scanner for relations accepted by filter. Nil filter means IsRoadRoute
func NewMembershipScanner(filter RouteFilter) *MembershipScanner {
	if filter == nil {
		filter = IsRoadRoute
	}
	return &MembershipScanner{
		filter: filter,
	}
}

// Way implements Handler. Ways are ignored
func (scanner *MembershipScanner) Way(WayEvent) error {
	return nil
}

// Relation implements Handler. Every way member of route is recorded whether it exists or not
func (scanner *MembershipScanner) Relation(rel RelationEvent) error {
	if !scanner.filter(rel.Tags) {
		return nil
	}
	scanner.routes++
	for _, member := range rel.Members {
		scanner.members.Add(member.Ref)
	}
	return nil
}

// Scan replays relations of source and returns complete membership set
func (scanner *MembershipScanner) Scan(ctx context.Context, source Source) (*MembershipSet, error) {
	scanner.members = NewMembershipSet()
	scanner.routes = 0
	err := source.Replay(ctx, scanner, PassRelations)
	if err != nil {
		return nil, errors.Wrap(err, "Can't scan route members")
	}
	members := scanner.members
	scanner.members = nil
	return members, nil
}

// Routes returns number of routes seen by the last Scan
func (scanner *MembershipScanner) Routes() int {
	return scanner.routes
}
