package osmroutes

import (
	"bufio"
	"io"

	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
)

// GeoJSONSink Writes one GeoJSON Feature per line (newline delimited GeoJSON)
type GeoJSONSink struct {
	w *bufio.Writer
}

func NewGeoJSONSink(w io.Writer) *GeoJSONSink {
	return &GeoJSONSink{
		w: bufio.NewWriter(w),
	}
}

// WriteRoute implements RouteSink
func (sink *GeoJSONSink) WriteRoute(relationID int64, route Route) error {
	b, err := PrepareGeoJSONRoute(relationID, route).MarshalJSON()
	if err != nil {
		return errors.Wrapf(err, "Can't convert route %d to geojson", relationID)
	}
	_, err = sink.w.Write(append(b, '\n'))
	return err
}

// Flush implements RouteSink
func (sink *GeoJSONSink) Flush() error {
	return sink.w.Flush()
}

// PrepareGeoJSONRoute returns GeoJSON feature for route. Properties: relation_id, points, length_km, centroid
func PrepareGeoJSONRoute(relationID int64, route Route) *geojson.Feature {
	var feature *geojson.Feature
	if len(route) == 1 {
		feature = geojson.NewPointFeature([]float64{route[0].Lon, route[0].Lat})
	} else {
		pts2d := make([][]float64, len(route))
		for i := range route {
			pts2d[i] = []float64{route[i].Lon, route[i].Lat}
		}
		feature = geojson.NewLineStringFeature(pts2d)
	}
	feature.ID = relationID
	centroid := route.Centroid()
	feature.SetProperty("relation_id", relationID)
	feature.SetProperty("points", len(route))
	feature.SetProperty("length_km", route.Length())
	feature.SetProperty("centroid", []float64{centroid.Lon, centroid.Lat})
	return feature
}
