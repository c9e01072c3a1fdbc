package osmroutes

import (
	"bufio"
	"fmt"
	"io"

	"github.com/paulmach/orb/encoding/wkt"
)

// WKTSink Writes "relation_id;geometry" lines. Geometry is LINESTRING in longitude/latitude order (POINT for single coordinate routes)
type WKTSink struct {
	w *bufio.Writer
}

func NewWKTSink(w io.Writer) *WKTSink {
	return &WKTSink{
		w: bufio.NewWriter(w),
	}
}

// WriteRoute implements RouteSink
func (sink *WKTSink) WriteRoute(relationID int64, route Route) error {
	_, err := fmt.Fprintf(sink.w, "%d;%s\n", relationID, PrepareWKTRoute(route))
	return err
}

// Flush implements RouteSink
func (sink *WKTSink) Flush() error {
	return sink.w.Flush()
}

// PrepareWKTRoute returns WKT representation of route
func PrepareWKTRoute(route Route) string {
	if len(route) == 1 {
		return wkt.MarshalString(route[0].Point())
	}
	return wkt.MarshalString(route.LineString())
}
