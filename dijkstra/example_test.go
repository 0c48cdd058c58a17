package dijkstra_test

import (
	"fmt"

	"pathlab/core"
	"pathlab/dijkstra"
	"pathlab/heappq"
)

// ExampleRun_triangle computes shortest distances on a three-node triangle
// using HeapPQ as the extraction order.
func ExampleRun_triangle() {
	g := newAdjGraph(3)
	g.addUndirected(0, 1, 1)
	g.addUndirected(1, 2, 2)
	g.addUndirected(0, 2, 5)

	res, err := dijkstra.Run(g, 0, heappq.New(3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("dist[0]=%d dist[1]=%d dist[2]=%d\n", res.Dist[0], res.Dist[1], res.Dist[2])
	// Output: dist[0]=0 dist[1]=1 dist[2]=3
}

// ExampleRun_pathReconstruction shows how to walk the parent array back to
// the source to recover the shortest path itself.
func ExampleRun_pathReconstruction() {
	g := newAdjGraph(4)
	g.addDirected(0, 1, 10)
	g.addDirected(0, 2, 1)
	g.addDirected(2, 1, 1)
	g.addDirected(1, 3, 1)

	res, err := dijkstra.Run(g, 0, heappq.New(4))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	var path []core.NodeId
	for v := core.NodeId(3); v != core.InvalidNode; v = res.Parent[v] {
		path = append([]core.NodeId{v}, path...)
		if v == 0 {
			break
		}
	}
	fmt.Println(path)
	// Output: [0 2 1 3]
}
