package osmroutes

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteMetrics(t *testing.T) {
	stats := Statistics{
		TotalWays:     4,
		UsedWays:      2,
		TotalRoutes:   1,
		EmittedRoutes: 1,
		JoinSuccesses: 1,
		JoinFailures:  3,
	}
	filename := filepath.Join(t.TempDir(), "osmroutes.prom")
	err := WriteMetrics(filename, stats)
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(filename)
	if err != nil {
		t.Fatal(err)
	}
	text := string(b)
	for _, line := range []string{
		"# TYPE osmroutes_ways_total counter",
		"osmroutes_ways_total 4",
		"osmroutes_used_ways_total 2",
		"osmroutes_join_failures_total 3",
		"osmroutes_empty_routes_total 0",
	} {
		if !strings.Contains(text, line+"\n") {
			t.Errorf("Metrics should contain line '%s', got:\n%s", line, text)
		}
	}
}

func TestLogLevel(t *testing.T) {
	cases := map[int]string{0: "DEBUG", 10: "DEBUG", 20: "INFO", 25: "WARN", 30: "WARN", 40: "ERROR", 50: "ERROR"}
	for level, expected := range cases {
		if got := LogLevel(level).String(); got != expected {
			t.Errorf("Level %d should map to %s, but got %s", level, expected, got)
		}
	}
}
