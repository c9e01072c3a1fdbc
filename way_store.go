package osmroutes

// PutStatus Outcome of storing way
type PutStatus uint16

const (
	WAY_STORED = PutStatus(iota + 1)
	WAY_EMPTY
	WAY_NOT_REFERENCED
)

func (iotaIdx PutStatus) String() string {
	return [...]string{"stored", "empty", "not_referenced"}[iotaIdx-1]
}

// WayLookup Read access to stored way geometry
type WayLookup interface {
	Get(id int64) ([]Coordinate, bool)
}

// WayStore Way geometry by way identifier
/*
	Stored coordinates are never modified: joining a way in reverse orientation
	copies it. When store is built with membership set only referenced ways are kept.
*/
type WayStore struct {
	ways    map[int64][]Coordinate
	members *MembershipSet
}

// NewWayStore returns store which keeps every non-empty way
func NewWayStore() *WayStore {
	return &WayStore{
		ways: make(map[int64][]Coordinate),
	}
}

// NewFilteredWayStore returns store which keeps only ways contained in members
func NewFilteredWayStore(members *MembershipSet) *WayStore {
	return &WayStore{
		ways:    make(map[int64][]Coordinate, members.Len()),
		members: members,
	}
}

// Wanted reports whether way with given identifier would be kept
func (store *WayStore) Wanted(id int64) bool {
	return store.members == nil || store.members.Contains(id)
}

// Put stores coordinates for given way. Empty ways and ways outside of membership set are discarded
func (store *WayStore) Put(id int64, coordinates []Coordinate) PutStatus {
	if !store.Wanted(id) {
		return WAY_NOT_REFERENCED
	}
	if len(coordinates) == 0 {
		return WAY_EMPTY
	}
	store.ways[id] = coordinates
	return WAY_STORED
}

// Get returns coordinates of way
func (store *WayStore) Get(id int64) ([]Coordinate, bool) {
	coordinates, ok := store.ways[id]
	return coordinates, ok
}

// Len returns number of stored ways
func (store *WayStore) Len() int {
	return len(store.ways)
}
