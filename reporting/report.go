package reporting

import (
	"fmt"
	"time"

	"pathlab/core"
	"pathlab/dijkstra"
)

// CaseReport summarizes one benchmarked start/goal pair: the path found (in
// cells and its straight/diagonal decomposition), the time spent, and the
// driver/PQ counters accumulated for that single Run call.
type CaseReport struct {
	Index              int
	StartX, StartY     int
	GoalX, GoalY       int
	Dist               core.Cost32
	Steps              uint32
	Straight, Diagonal uint32
	Elapsed            time.Duration
	PQ                 core.PQMetrics
	Algo               core.DijkstraMetrics
}

// NewCaseReport builds a CaseReport from a dijkstra.Result for the case at
// index, whose start/goal cells are s/g (and their original x/y
// coordinates, kept for display since a NodeId alone does not carry them).
func NewCaseReport(index, sx, sy, gx, gy int, s, g core.NodeId, res dijkstra.Result, elapsed time.Duration) CaseReport {
	dist := core.InfCost
	if int(g) < len(res.Dist) {
		dist = res.Dist[g]
	}
	steps := Steps(res.Dist, res.Parent, s, g)
	straight, diag := SplitSteps10x14(steps, dist)

	return CaseReport{
		Index:    index,
		StartX:   sx,
		StartY:   sy,
		GoalX:    gx,
		GoalY:    gy,
		Dist:     dist,
		Steps:    steps,
		Straight: straight,
		Diagonal: diag,
		Elapsed:  elapsed,
		PQ:       res.PQ,
		Algo:     res.Algo,
	}
}

// String renders the case in the one-line format bench_single prints per
// scenario.
func (r CaseReport) String() string {
	return fmt.Sprintf(
		"case=%d start=(%d,%d) goal=(%d,%d) dist=%d steps=%d (H=%d,D=%d) time=%dms | "+
			"PQ push=%d pop=%d dec=%d scans=%d moves=%d | algo relax=%d improved=%d settled=%d",
		r.Index, r.StartX, r.StartY, r.GoalX, r.GoalY,
		r.Dist, r.Steps, r.Straight, r.Diagonal,
		r.Elapsed.Milliseconds(),
		r.PQ.Pushes, r.PQ.Pops, r.PQ.Decreases, r.PQ.Scans, r.PQ.Moves,
		r.Algo.Relaxations, r.Algo.Improved, r.Algo.Settled,
	)
}

// Summary is the aggregate line printed after all cases in a benchmark run.
type Summary struct {
	Cases int
	Total time.Duration
}

// String renders the summary in the "TOTAL ... cases: ...ms (avg ... ms/case)"
// format bench_single prints at the end of a run.
func (s Summary) String() string {
	var avg float64
	if s.Cases > 0 {
		avg = float64(s.Total.Milliseconds()) / float64(s.Cases)
	}
	return fmt.Sprintf("TOTAL %d cases: %dms (avg %.3f ms/case)", s.Cases, s.Total.Milliseconds(), avg)
}
