package osmroutes

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

const (
	DEFAULT_CSV_COMMA = ' '
	DEFAULT_CSV_QUOTE = '|'
)

// CSVSink Writes one record per route, one field per coordinate
/*
	Fields are rendered as "(lat, lon)" and separated by Comma. A field holding
	Comma, Quote or a line break is wrapped in Quote, inner quotes are doubled.
	With defaults a route of two coordinates looks like:
		|(0.0, 0.0)| |(1.0, 1.0)|
*/
type CSVSink struct {
	Comma   rune
	Quote   rune
	UseCRLF bool
	w       *bufio.Writer
}

// NewCSVSink returns sink with space as delimiter, '|' as quote char and CRLF line endings
func NewCSVSink(w io.Writer) *CSVSink {
	return &CSVSink{
		Comma:   DEFAULT_CSV_COMMA,
		Quote:   DEFAULT_CSV_QUOTE,
		UseCRLF: true,
		w:       bufio.NewWriter(w),
	}
}

// WriteRoute implements RouteSink
func (sink *CSVSink) WriteRoute(relationID int64, route Route) error {
	for i, c := range route {
		if i > 0 {
			if _, err := sink.w.WriteRune(sink.Comma); err != nil {
				return err
			}
		}
		if err := sink.writeField(c.String()); err != nil {
			return err
		}
	}
	var err error
	if sink.UseCRLF {
		_, err = sink.w.WriteString("\r\n")
	} else {
		err = sink.w.WriteByte('\n')
	}
	return err
}

// Flush implements RouteSink
func (sink *CSVSink) Flush() error {
	return sink.w.Flush()
}

func (sink *CSVSink) fieldNeedsQuotes(field string) bool {
	return strings.ContainsRune(field, sink.Comma) || strings.ContainsRune(field, sink.Quote) || strings.ContainsAny(field, "\r\n")
}

func (sink *CSVSink) writeField(field string) error {
	if !sink.fieldNeedsQuotes(field) {
		_, err := sink.w.WriteString(field)
		return err
	}
	if _, err := sink.w.WriteRune(sink.Quote); err != nil {
		return err
	}
	for _, r := range field {
		if r == sink.Quote {
			if _, err := sink.w.WriteRune(sink.Quote); err != nil {
				return err
			}
		}
		if _, err := sink.w.WriteRune(r); err != nil {
			return err
		}
	}
	_, err := sink.w.WriteRune(sink.Quote)
	return err
}

// ParseRouteRecord Parses single line written by CSVSink with default delimiter and quote char
func ParseRouteRecord(line string) (Route, error) {
	fields, err := splitRecord(strings.TrimRight(line, "\r\n"), DEFAULT_CSV_COMMA, DEFAULT_CSV_QUOTE)
	if err != nil {
		return nil, err
	}
	route := make(Route, 0, len(fields))
	for _, field := range fields {
		c, err := ParseCoordinate(field)
		if err != nil {
			return nil, err
		}
		route = append(route, c)
	}
	return route, nil
}

// ReadRoutes reads every record of CSV output and calls fn for each route
func ReadRoutes(r io.Reader, fn func(route Route) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		if strings.TrimSpace(scanner.Text()) == "" {
			continue
		}
		route, err := ParseRouteRecord(scanner.Text())
		if err != nil {
			return errors.Wrapf(err, "Bad record on line %d", line)
		}
		err = fn(route)
		if err != nil {
			return err
		}
	}
	return errors.Wrap(scanner.Err(), "Can't read routes")
}

func splitRecord(line string, comma, quote rune) ([]string, error) {
	fields := []string{}
	var field strings.Builder
	inQuotes := false
	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case inQuotes && r == quote:
			if i+1 < len(runes) && runes[i+1] == quote {
				field.WriteRune(quote)
				i++
			} else {
				inQuotes = false
			}
		case inQuotes:
			field.WriteRune(r)
		case r == quote:
			inQuotes = true
		case r == comma:
			fields = append(fields, field.String())
			field.Reset()
		default:
			field.WriteRune(r)
		}
	}
	if inQuotes {
		return nil, errors.Errorf("Unterminated quoted field in record '%s'", line)
	}
	fields = append(fields, field.String())
	return fields, nil
}
