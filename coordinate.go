package osmroutes

import (
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// Coordinate Location of a way node in the decoder's native axis order (latitude first)
type Coordinate struct {
	Lat float64
	Lon float64
}

// String renders coordinate as "(lat, lon)". This is the field format of CSV output
func (c Coordinate) String() string {
	return "(" + formatFloat(c.Lat) + ", " + formatFloat(c.Lon) + ")"
}

// Valid reports whether coordinate is a real location on Earth
func (c Coordinate) Valid() bool {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lon) {
		return false
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// Point returns orb representation of coordinate (X = longitude, Y = latitude)
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Lon, c.Lat}
}

// ParseCoordinate Parses field produced by Coordinate.String back to coordinate
func ParseCoordinate(field string) (Coordinate, error) {
	trimmed := strings.TrimSpace(field)
	trimmed = strings.TrimPrefix(trimmed, "(")
	trimmed = strings.TrimSuffix(trimmed, ")")
	parts := strings.Split(trimmed, ", ")
	if len(parts) != 2 {
		return Coordinate{}, errors.Errorf("Coordinate field '%s' must contain exactly two values", field)
	}
	lat, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return Coordinate{}, errors.Wrapf(err, "Can't parse first value of '%s'", field)
	}
	lon, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return Coordinate{}, errors.Wrapf(err, "Can't parse second value of '%s'", field)
	}
	return Coordinate{Lat: lat, Lon: lon}, nil
}

// formatFloat writes the shortest decimal which parses back to the same value.
// Integral values keep a ".0" suffix, tiny and huge values use exponent form.
func formatFloat(v float64) string {
	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return s
	}
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
