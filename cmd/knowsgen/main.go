// Command knowsgen runs one clustered-knows generation over a
// synthetic population and prints the resulting statistics report.
//
// It exists to exercise the knowsgen.Driver end to end; real callers
// embed the knowsgen, config, and metrics packages directly rather
// than shelling out to this binary.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/ldbc/knowsgen/config"
	"github.com/ldbc/knowsgen/knowsgen"
	"github.com/ldbc/knowsgen/metrics"
	"github.com/ldbc/knowsgen/person"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (optional; defaults used otherwise)")
	population := flag.Int("population", 1000, "synthetic population size")
	avgDegree := flag.Uint64("avg-degree", 10, "target degree applied uniformly across the synthetic population")
	capMultiplier := flag.Uint64("cap-multiplier", 3, "MaxKnows is avg-degree times this multiplier")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, "knowsgen: logger init:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.Fatal("load config", zap.Error(err))
		}
		cfg = *loaded
	}

	persons := make([]person.Person, *population)
	src := rand.New(rand.NewSource(cfg.Seed))
	for i := range persons {
		jitter := src.Intn(3) - 1 // +-1 degree jitter to avoid a degenerate uniform clique
		degree := int64(*avgDegree) + int64(jitter)
		if degree < 0 {
			degree = 0
		}
		persons[i] = person.NewSimplePerson(uint64(i), uint64(degree), *avgDegree**capMultiplier)
	}

	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)

	driver := knowsgen.NewDriver(
		knowsgen.WithLogger(logger),
		knowsgen.WithMetrics(collector),
	)

	st, err := driver.GenerateKnows(context.Background(), persons, cfg)
	if err != nil {
		logger.Warn("generation finished with a warning", zap.Error(err))
	}
	fmt.Print(st.Report())
}
