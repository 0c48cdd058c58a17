// Package pathlabmetrics exposes core.PQMetrics and core.DijkstraMetrics as
// a github.com/prometheus/client_golang/prometheus.Collector, so a
// long-running benchmark process can be scraped instead of only printed.
package pathlabmetrics
