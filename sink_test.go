package osmroutes

import (
	"bytes"
	"strings"
	"testing"

	geojson "github.com/paulmach/go.geojson"
)

func TestCSVSink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewCSVSink(&buf)
	err := sink.WriteRoute(100, Route{pt(0, 0), pt(1, 1), pt(2, 2)})
	if err != nil {
		t.Fatal(err)
	}
	err = sink.WriteRoute(101, Route{pt(55.7518494, 37.6417351)})
	if err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("Nothing should reach writer before flush")
	}
	if err = sink.Flush(); err != nil {
		t.Fatal(err)
	}
	correct := "|(0.0, 0.0)| |(1.0, 1.0)| |(2.0, 2.0)|\r\n|(55.7518494, 37.6417351)|\r\n"
	if buf.String() != correct {
		t.Errorf("CSV output should be %q, but got %q", correct, buf.String())
	}
}

func TestCSVSinkQuoting(t *testing.T) {
	var buf bytes.Buffer
	sink := NewCSVSink(&buf)
	sink.Comma = ';'
	sink.UseCRLF = false
	if err := sink.WriteRoute(1, Route{pt(0, 0), pt(1.5, -2)}); err != nil {
		t.Fatal(err)
	}
	sink.Flush()
	correct := "(0.0, 0.0);(1.5, -2.0)\n"
	if buf.String() != correct {
		t.Errorf("Fields without delimiter should not be quoted: expected %q, got %q", correct, buf.String())
	}

	buf.Reset()
	sink.Quote = '('
	if err := sink.writeField("(a)"); err != nil {
		t.Fatal(err)
	}
	sink.Flush()
	if buf.String() != "(((a)(" {
		t.Errorf("Quote chars inside field should be doubled, got %q", buf.String())
	}
}

func TestReadRoutes(t *testing.T) {
	routes := []Route{
		{pt(0, 0), pt(1, 1), pt(2, 2)},
		{pt(55.751849391735284, 37.6417350769043)},
	}
	var buf bytes.Buffer
	sink := NewCSVSink(&buf)
	for i, route := range routes {
		sink.WriteRoute(int64(i), route)
	}
	sink.Flush()
	got := []Route{}
	err := ReadRoutes(&buf, func(route Route) error {
		got = append(got, route)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(routes) {
		t.Fatalf("Should be %d routes, but got %d", len(routes), len(got))
	}
	for i := range routes {
		if !sameRoute(got[i], routes[i]) {
			t.Errorf("Route %d should be %v, but got %v", i, routes[i], got[i])
		}
	}

	if _, err := ParseRouteRecord("|(0.0, 0.0) |(1.0, 1.0)|"); err == nil {
		t.Errorf("Record with unterminated quote should not be parsed")
	}
}

func TestWKTSink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewWKTSink(&buf)
	sink.WriteRoute(100, Route{pt(1, 2), pt(3, 4)})
	sink.WriteRoute(101, Route{pt(1, 2)})
	sink.Flush()
	correct := "100;LINESTRING(2 1,4 3)\n101;POINT(2 1)\n"
	if buf.String() != correct {
		t.Errorf("WKT output should be %q, but got %q", correct, buf.String())
	}
}

func TestGeoJSONSink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewGeoJSONSink(&buf)
	if err := sink.WriteRoute(100, Route{pt(1, 2), pt(3, 4)}); err != nil {
		t.Fatal(err)
	}
	sink.Flush()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("Should be 1 feature line, but got %d", len(lines))
	}
	feature, err := geojson.UnmarshalFeature([]byte(lines[0]))
	if err != nil {
		t.Fatal(err)
	}
	if !feature.Geometry.IsLineString() {
		t.Fatalf("Geometry should be LineString, but got %s", feature.Geometry.Type)
	}
	coords := feature.Geometry.LineString
	if len(coords) != 2 || coords[0][0] != 2 || coords[0][1] != 1 || coords[1][0] != 4 || coords[1][1] != 3 {
		t.Errorf("Coordinates should be in lon/lat order, got %v", coords)
	}
	// numbers come back from JSON as float64
	relationID, err := feature.PropertyFloat64("relation_id")
	if err != nil || relationID != 100 {
		t.Errorf("relation_id should be 100, got %f (%v)", relationID, err)
	}
	points, err := feature.PropertyFloat64("points")
	if err != nil || points != 2 {
		t.Errorf("points should be 2, got %f (%v)", points, err)
	}
	centroid, ok := feature.Properties["centroid"].([]interface{})
	if !ok || len(centroid) != 2 || centroid[0] != 3.0 || centroid[1] != 2.0 {
		t.Errorf("centroid should be [3, 2] in lon/lat order, got %v", feature.Properties["centroid"])
	}
	length, err := feature.PropertyFloat64("length_km")
	if err != nil || length <= 0 {
		t.Errorf("length_km should be positive, got %f (%v)", length, err)
	}
}

func TestNewSink(t *testing.T) {
	var buf bytes.Buffer
	for _, format := range []string{"csv", "WKT", "geojson", ""} {
		if _, err := NewSink(format, &buf); err != nil {
			t.Errorf("Format '%s' should be handled: %v", format, err)
		}
	}
	if _, err := NewSink("kml", &buf); err == nil {
		t.Errorf("Format 'kml' should not be handled")
	}
}
