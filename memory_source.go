package osmroutes

import (
	"context"

	"github.com/pkg/errors"
)

// MemorySource Replays fixed list of events. Useful when events are produced by something else than OSM file
type MemorySource struct {
	events []Event
}

// NewMemorySource returns source which replays given events in order
func NewMemorySource(events ...Event) *MemorySource {
	return &MemorySource{
		events: events,
	}
}

// Append adds events to the end of stream
func (src *MemorySource) Append(events ...Event) {
	src.events = append(src.events, events...)
}

// Replay implements Source
func (src *MemorySource) Replay(ctx context.Context, handler Handler, pass Pass) error {
	for _, event := range src.events {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, "Replay interrupted")
		}
		var err error
		switch event := event.(type) {
		case WayEvent:
			if pass == PassRelations {
				continue
			}
			err = handler.Way(event)
		case RelationEvent:
			err = handler.Relation(event)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
