package osmroutes

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"github.com/pkg/errors"
)

const (
	DEFAULT_SCANNER_PROCS = 4
)

type OSMScanner interface {
	Scan() bool
	Close() error
	Err() error
	Object() osm.Object
}

// FileSource Source of events backed by OSM file (PBF or XML)
/*
	Every replay seeks the file to start and scans it again. Node locations are
	indexed while scanning so that way nodes could be resolved to coordinates; for
	PBF files with "locations on ways" embedded locations are used as is.
*/
type FileSource struct {
	filename string
	file     *os.File
	procs    int
}

// OpenFileSource opens OSM file. Caller must Close it
func OpenFileSource(filename string, options ...func(*FileSource)) (*FileSource, error) {
	ext := filepath.Ext(filename)
	switch ext {
	case ".osm", ".xml", ".pbf":
	default:
		return nil, fmt.Errorf("File extension '%s' for file '%s' is not handled yet", ext, filename)
	}
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "File open")
	}
	src := &FileSource{
		filename: filename,
		file:     file,
		procs:    DEFAULT_SCANNER_PROCS,
	}
	for _, option := range options {
		option(src)
	}
	return src, nil
}

// WithScannerProcs sets number of goroutines used by PBF decoder
func WithScannerProcs(procs int) func(*FileSource) {
	return func(src *FileSource) {
		if procs > 0 {
			src.procs = procs
		}
	}
}

// Close closes underlying file
func (src *FileSource) Close() error {
	return src.file.Close()
}

// Filename returns path to OSM file
func (src *FileSource) Filename() string {
	return src.filename
}

// Replay implements Source
func (src *FileSource) Replay(ctx context.Context, handler Handler, pass Pass) error {
	// Seek file to start
	_, err := src.file.Seek(0, io.SeekStart)
	if err != nil {
		return errors.Wrapf(err, "Can't seek to start of '%s' before %s pass", src.filename, pass)
	}
	scanner := src.newScanner(ctx, pass)
	defer scanner.Close()

	locations := make(map[osm.NodeID]Coordinate)
	for scanner.Scan() {
		switch obj := scanner.Object().(type) {
		case *osm.Node:
			if pass == PassRelations {
				continue
			}
			locations[obj.ID] = Coordinate{Lat: obj.Lat, Lon: obj.Lon}
		case *osm.Way:
			if pass == PassRelations {
				continue
			}
			err = handler.Way(prepareWayEvent(obj, locations))
		case *osm.Relation:
			err = handler.Relation(prepareRelationEvent(obj))
		}
		if err != nil {
			return err
		}
	}
	err = scanner.Err()
	if err != nil {
		return errors.Wrapf(err, "Scanner error on %s pass", pass)
	}
	return nil
}

// newScanner guesses file extension and prepares correct scanner
func (src *FileSource) newScanner(ctx context.Context, pass Pass) OSMScanner {
	switch filepath.Ext(src.filename) {
	case ".pbf":
		scanner := osmpbf.New(ctx, src.file, src.procs)
		scanner.SkipNodes = pass == PassRelations
		scanner.SkipWays = pass == PassRelations
		return scanner
	default:
		return osmxml.New(ctx, src.file)
	}
}

// prepareWayEvent resolves way nodes to locations
func prepareWayEvent(way *osm.Way, locations map[osm.NodeID]Coordinate) WayEvent {
	event := WayEvent{
		ID:    int64(way.ID),
		Nodes: make([]NodeLocation, len(way.Nodes)),
	}
	for i, wayNode := range way.Nodes {
		location := Coordinate{Lat: wayNode.Lat, Lon: wayNode.Lon}
		if location.Lat == 0 && location.Lon == 0 {
			var ok bool
			location, ok = locations[wayNode.ID]
			if !ok {
				continue
			}
		}
		event.Nodes[i] = NodeLocation{Coordinate: location, Valid: location.Valid()}
	}
	return event
}

// prepareRelationEvent keeps way members only
func prepareRelationEvent(relation *osm.Relation) RelationEvent {
	event := RelationEvent{
		ID:      int64(relation.ID),
		Tags:    relation.TagMap(),
		Members: make([]Member, 0, len(relation.Members)),
	}
	for _, member := range relation.Members {
		if member.Type != osm.TypeWay {
			continue
		}
		event.Members = append(event.Members, Member{Ref: member.Ref})
	}
	return event
}
