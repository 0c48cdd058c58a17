package pathlabmetrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"pathlab/core"
)

// Collector accumulates core.PQMetrics and core.DijkstraMetrics per PQ
// variant and serves them as Prometheus counters, labeled by variant. It
// implements prometheus.Collector and is safe for concurrent use.
type Collector struct {
	mu        sync.Mutex
	byVariant map[string]accumulated

	pushes     *prometheus.Desc
	pops       *prometheus.Desc
	decreases  *prometheus.Desc
	moves      *prometheus.Desc
	scans      *prometheus.Desc
	relax      *prometheus.Desc
	improved   *prometheus.Desc
	settled    *prometheus.Desc
	casesTotal *prometheus.Desc
}

type accumulated struct {
	pq    core.PQMetrics
	algo  core.DijkstraMetrics
	cases uint64
}

// NewCollector builds a Collector whose metric names are
// namespace_subsystem_<field>.
func NewCollector(namespace, subsystem string) *Collector {
	labels := []string{"pq"}
	return &Collector{
		byVariant: make(map[string]accumulated),

		pushes:     prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystem, "pq_pushes_total"), "Total PQ Push calls", labels, nil),
		pops:       prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystem, "pq_pops_total"), "Total PQ Pop calls", labels, nil),
		decreases:  prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystem, "pq_decreases_total"), "Total PQ Decrease calls that lowered a stored key", labels, nil),
		moves:      prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystem, "pq_moves_total"), "Total internal PQ element moves", labels, nil),
		scans:      prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystem, "pq_scans_total"), "Total PQ scans (empty-bucket probes or sort comparisons)", labels, nil),
		relax:      prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystem, "dijkstra_relaxations_total"), "Total edge relaxation attempts", labels, nil),
		improved:   prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystem, "dijkstra_improved_total"), "Total edge relaxations that improved a distance", labels, nil),
		settled:    prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystem, "dijkstra_settled_total"), "Total nodes settled", labels, nil),
		casesTotal: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystem, "cases_total"), "Total scenario cases run", labels, nil),
	}
}

// Observe folds one dijkstra.Run's metrics into the running total for the
// given PQ variant (one of "heap", "bucket", "stoc").
func (c *Collector) Observe(variant string, pq core.PQMetrics, algo core.DijkstraMetrics) {
	c.mu.Lock()
	defer c.mu.Unlock()

	a := c.byVariant[variant]
	a.pq.Pushes += pq.Pushes
	a.pq.Pops += pq.Pops
	a.pq.Decreases += pq.Decreases
	a.pq.Moves += pq.Moves
	a.pq.Scans += pq.Scans
	a.algo.Relaxations += algo.Relaxations
	a.algo.Improved += algo.Improved
	a.algo.Settled += algo.Settled
	a.cases++
	c.byVariant[variant] = a
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.pushes
	ch <- c.pops
	ch <- c.decreases
	ch <- c.moves
	ch <- c.scans
	ch <- c.relax
	ch <- c.improved
	ch <- c.settled
	ch <- c.casesTotal
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for variant, a := range c.byVariant {
		ch <- prometheus.MustNewConstMetric(c.pushes, prometheus.CounterValue, float64(a.pq.Pushes), variant)
		ch <- prometheus.MustNewConstMetric(c.pops, prometheus.CounterValue, float64(a.pq.Pops), variant)
		ch <- prometheus.MustNewConstMetric(c.decreases, prometheus.CounterValue, float64(a.pq.Decreases), variant)
		ch <- prometheus.MustNewConstMetric(c.moves, prometheus.CounterValue, float64(a.pq.Moves), variant)
		ch <- prometheus.MustNewConstMetric(c.scans, prometheus.CounterValue, float64(a.pq.Scans), variant)
		ch <- prometheus.MustNewConstMetric(c.relax, prometheus.CounterValue, float64(a.algo.Relaxations), variant)
		ch <- prometheus.MustNewConstMetric(c.improved, prometheus.CounterValue, float64(a.algo.Improved), variant)
		ch <- prometheus.MustNewConstMetric(c.settled, prometheus.CounterValue, float64(a.algo.Settled), variant)
		ch <- prometheus.MustNewConstMetric(c.casesTotal, prometheus.CounterValue, float64(a.cases), variant)
	}
}
