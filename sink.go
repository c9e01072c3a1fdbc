package osmroutes

import (
	"fmt"
	"io"
	"strings"
)

// RouteSink Destination of reconstructed routes. Routes are written one by one in completion order
type RouteSink interface {
	WriteRoute(relationID int64, route Route) error
	Flush() error
}

// Output formats accepted by NewSink
const (
	FORMAT_CSV     = "csv"
	FORMAT_WKT     = "wkt"
	FORMAT_GEOJSON = "geojson"
)

// NewSink returns sink for given output format
func NewSink(format string, w io.Writer) (RouteSink, error) {
	switch strings.ToLower(format) {
	case FORMAT_CSV, "":
		return NewCSVSink(w), nil
	case FORMAT_WKT:
		return NewWKTSink(w), nil
	case FORMAT_GEOJSON:
		return NewGeoJSONSink(w), nil
	default:
		return nil, fmt.Errorf("Output format '%s' is not handled. Expected values: csv / wkt / geojson", format)
	}
}
