// Command bench_single runs one or more single-source shortest-path
// benchmark cases from a MovingAI .map/.scen pair against one priority
// queue implementation, printing a one-line report per case and a summary.
//
// Usage:
//
//	bench_single [-metrics-addr=host:port] [-verify-opt] [-opt-tolerance=0.15] \
//	             <map> <scen> <pq:heap|stoc|bucket> <cases> [allow_diag=1] [stoc_block=256]
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pathlab/bucketpq"
	"pathlab/core"
	"pathlab/dijkstra"
	"pathlab/gridgraph"
	"pathlab/heappq"
	"pathlab/movingai"
	"pathlab/obslog"
	"pathlab/pathlabconfig"
	"pathlab/pathlabmetrics"
	"pathlab/reporting"
	"pathlab/stocpq"
)

const usage = "usage: bench_single [-metrics-addr=host:port] [-verify-opt] [-opt-tolerance=0.15]\n" +
	"       <map> <scen> <pq:heap|stoc|bucket> <cases> [allow_diag=1] [stoc_block=256]\n"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	fs := flag.NewFlagSet("bench_single", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	metricsAddr := fs.String("metrics-addr", "", "if set, serve Prometheus metrics on this address for the run's duration")
	verifyOpt := fs.Bool("verify-opt", false, "warn when dist(goal) disagrees with the scenario's recorded optimal cost")
	optTolerance := fs.Float64("opt-tolerance", 0.15, "absolute tolerance for -verify-opt, in cells (dist/10 vs the scenario's opt)")
	if err := fs.Parse(argv); err != nil {
		return 1
	}
	argv = fs.Args()

	if len(argv) < 4 {
		fmt.Fprint(os.Stderr, usage)
		return 1
	}

	mapPath, scenPath, pqName := argv[0], argv[1], argv[2]
	cases, err := strconv.Atoi(argv[3])
	if err != nil {
		fmt.Fprint(os.Stderr, usage)
		return 1
	}

	cfg, err := pathlabconfig.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "bench_single: %v\n", err)
		return 1
	}

	allowDiag := cfg.Bench.AllowDiag
	if len(argv) > 4 {
		v, err := strconv.Atoi(argv[4])
		if err != nil {
			fmt.Fprint(os.Stderr, usage)
			return 1
		}
		allowDiag = v != 0
	}

	stocBlock := uint32(cfg.Bench.StocBlock)
	if len(argv) > 5 {
		v, err := strconv.ParseUint(argv[5], 10, 32)
		if err != nil {
			fmt.Fprint(os.Stderr, usage)
			return 1
		}
		stocBlock = uint32(v)
	}

	obslog.InitWithConfig(obslog.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	log := obslog.WithRun(mapPath, scenPath, pqName)

	mapData, err := movingai.LoadMap(mapPath)
	if err != nil {
		log.Error("failed to load map", "error", err)
		return 1
	}

	scenCases, err := movingai.LoadScen(scenPath)
	if err != nil {
		log.Error("failed to load scenario file", "error", err)
		return 1
	}

	conn := gridgraph.Conn4
	if allowDiag {
		conn = gridgraph.Conn8
	}
	grid, err := gridgraph.New(mapData.Passable, conn)
	if err != nil {
		log.Error("failed to build grid graph", "error", err)
		return 1
	}

	if cases <= 0 || cases > len(scenCases) {
		cases = len(scenCases)
	}

	metrics := pathlabmetrics.NewCollector("pathlab", "bench")

	if *metricsAddr != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(metrics)
		srv := &http.Server{Addr: *metricsAddr, Handler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{})}
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error("metrics server stopped", "error", err)
			}
		}()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			srv.Shutdown(ctx)
		}()
	}

	var total time.Duration
	for i := 0; i < cases; i++ {
		c := scenCases[i]
		s := grid.ID(c.SX, c.SY)
		g := grid.ID(c.GX, c.GY)

		pq, err := makePQ(pqName, stocBlock, allowDiag)
		if err != nil {
			log.Error("failed to construct PQ", "error", err)
			return 1
		}

		t0 := time.Now()
		res, err := dijkstra.Run(grid, s, pq)
		elapsed := time.Since(t0)
		if err != nil {
			log.Error("dijkstra run failed", "case", i, "error", err)
			return 1
		}
		total += elapsed

		metrics.Observe(pqName, res.PQ, res.Algo)

		report := reporting.NewCaseReport(i, c.SX, c.SY, c.GX, c.GY, s, g, res, elapsed)
		fmt.Println(report.String())

		if *verifyOpt && c.Opt > 0 {
			// .scen "opt" columns use the MovingAI float unit (straight=1,
			// diagonal=sqrt2); our costs use the octile 10/14 integer scale.
			approxOpt := float64(report.Dist) / 10.0
			if math.Abs(approxOpt-c.Opt) > *optTolerance {
				log.Warn("dist disagrees with scenario opt",
					"case", i, "dist_octile", report.Dist, "approx_opt", approxOpt, "scen_opt", c.Opt)
			}
		}
	}

	fmt.Println(reporting.Summary{Cases: cases, Total: total}.String())
	return 0
}

// makePQ constructs the PQ variant named by name. bucket's maximum edge
// weight is 14 under 8-connectivity, 10 under 4-connectivity, matching
// octile grid costs.
func makePQ(name string, stocBlock uint32, allowDiag bool) (core.PQ, error) {
	switch name {
	case "heap":
		return heappq.New(0), nil
	case "stoc":
		return stocpq.New(stocpq.WithBlockSize(stocBlock)), nil
	case "bucket":
		w := uint32(10)
		if allowDiag {
			w = 14
		}
		return bucketpq.New(w), nil
	default:
		return nil, fmt.Errorf("bench_single: unknown pq variant %q", name)
	}
}
