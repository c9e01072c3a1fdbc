package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/LdDl/osmroutes"
	"github.com/pkg/errors"
)

var (
	osmFileName = flag.String("file", "my_graph.osm.pbf", "Filename of *.osm.pbf (or *.osm / *.xml) file")
	out         = flag.String("out", "routes.csv", "Filename of output file (one route per line)")
	format      = flag.String("format", "csv", "Format of output. Expected values: csv / wkt / geojson")
	force       = flag.Bool("force", false, "Force joins: append ways which do not share endpoint with the route")
	lowMem      = flag.Bool("lowmem", false, "Use low memory method (scans input twice)")
	logLevel    = flag.Int("loglevel", osmroutes.LOG_INFO, "Logging level: 10 debug / 20 info / 30 warning / 40 error")
	logFile     = flag.String("log", "", "Filename of log file. Standard error is used when empty")
	metricsFile = flag.String("metrics", "", "Filename for statistics in Prometheus text format. Nothing is written when empty")
	procs       = flag.Int("procs", osmroutes.DEFAULT_SCANNER_PROCS, "Number of goroutines for PBF decoding")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var logOut io.Writer = os.Stderr
	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			return errors.Wrap(err, "Can't create log file")
		}
		defer f.Close()
		logOut = f
	}
	logger := osmroutes.NewLogger(logOut, *logLevel)

	source, err := osmroutes.OpenFileSource(*osmFileName, osmroutes.WithScannerProcs(*procs))
	if err != nil {
		return err
	}
	defer source.Close()

	outFile, err := os.Create(*out)
	if err != nil {
		return errors.Wrap(err, "Could not open stream to output file")
	}
	defer outFile.Close()
	sink, err := osmroutes.NewSink(*format, outFile)
	if err != nil {
		return err
	}

	reconstructor := osmroutes.NewReconstructor(
		osmroutes.WithForceJoins(*force),
		osmroutes.WithLowMemory(*lowMem),
		osmroutes.WithLogger(logger),
	)
	logger.Debug(reconstructor.String())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stats, err := reconstructor.Run(ctx, source, sink)
	if err != nil {
		return err
	}
	stats.Log(logger)

	if *metricsFile != "" {
		err = osmroutes.WriteMetrics(*metricsFile, stats)
		if err != nil {
			return err
		}
	}
	err = outFile.Close()
	if err != nil {
		return errors.Wrap(err, "Could not close stream to output file")
	}
	return nil
}
