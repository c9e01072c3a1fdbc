package osmroutes

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "osmroutes"
)

type statisticsMetric struct {
	desc  *prometheus.Desc
	value func(stats Statistics) int
}

var statisticsMetrics = []statisticsMetric{
	{newStatisticsDesc("ways_total", "Total number of ways in source"), func(s Statistics) int { return s.TotalWays }},
	{newStatisticsDesc("empty_ways_total", "Number of ways without valid nodes"), func(s Statistics) int { return s.EmptyWays }},
	{newStatisticsDesc("invalid_nodes_total", "Number of way nodes without valid location"), func(s Statistics) int { return s.InvalidNodes }},
	{newStatisticsDesc("used_ways_total", "Number of way references resolved while joining routes"), func(s Statistics) int { return s.UsedWays }},
	{newStatisticsDesc("missing_ways_total", "Number of way references which could not be resolved"), func(s Statistics) int { return s.MissingWays }},
	{newStatisticsDesc("routes_total", "Total number of processed routes"), func(s Statistics) int { return s.TotalRoutes }},
	{newStatisticsDesc("empty_routes_total", "Number of routes without coordinates"), func(s Statistics) int { return s.EmptyRoutes }},
	{newStatisticsDesc("emitted_routes_total", "Number of routes written to output"), func(s Statistics) int { return s.EmittedRoutes }},
	{newStatisticsDesc("join_successes_total", "Number of way joins on shared endpoint"), func(s Statistics) int { return s.JoinSuccesses }},
	{newStatisticsDesc("join_failures_total", "Number of way joins without shared endpoint"), func(s Statistics) int { return s.JoinFailures }},
	{newStatisticsDesc("forced_joins_total", "Number of failed joins appended anyway"), func(s Statistics) int { return s.ForcedJoins }},
}

func newStatisticsDesc(name, help string) *prometheus.Desc {
	return prometheus.NewDesc(prometheus.BuildFQName(metricsNamespace, "", name), help, nil, nil)
}

// statisticsCollector Exposes finished run counters as Prometheus counters
type statisticsCollector struct {
	stats Statistics
}

func (collector statisticsCollector) Describe(ch chan<- *prometheus.Desc) {
	for _, metric := range statisticsMetrics {
		ch <- metric.desc
	}
}

func (collector statisticsCollector) Collect(ch chan<- prometheus.Metric) {
	for _, metric := range statisticsMetrics {
		ch <- prometheus.MustNewConstMetric(metric.desc, prometheus.CounterValue, float64(metric.value(collector.stats)))
	}
}

// NewStatisticsRegistry returns registry holding counters of given run
func NewStatisticsRegistry(stats Statistics) (*prometheus.Registry, error) {
	registry := prometheus.NewRegistry()
	err := registry.Register(statisticsCollector{stats: stats})
	if err != nil {
		return nil, errors.Wrap(err, "Can't register statistics collector")
	}
	return registry, nil
}

// WriteMetrics writes counters to file in Prometheus text format (suitable for node_exporter textfile collector)
func WriteMetrics(filename string, stats Statistics) error {
	registry, err := NewStatisticsRegistry(stats)
	if err != nil {
		return err
	}
	err = prometheus.WriteToTextfile(filename, registry)
	if err != nil {
		return errors.Wrapf(err, "Can't write metrics to '%s'", filename)
	}
	return nil
}
