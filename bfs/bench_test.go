package bfs_test

import (
	"testing"

	"github.com/katalvlaran/stoproute/bfs"
	"github.com/katalvlaran/stoproute/builder"
	"github.com/katalvlaran/stoproute/core"
)

func gridGraph(b *testing.B, rows, cols int) *core.Graph {
	b.Helper()
	routes, err := builder.GridRoutes(rows, cols, 0.4)
	if err != nil {
		b.Fatal(err)
	}

	return builder.BuildGraph(routes)
}

// BenchmarkReach_Grid measures a full walk of a 100×100 street grid.
func BenchmarkReach_Grid(b *testing.B) {
	g := gridGraph(b, 100, 100)
	V, E := g.StopCount(), g.HopCount()

	b.ReportAllocs()
	b.SetBytes(int64(V + E))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.Reach(g, builder.GridID(0, 0))
	}
}

// BenchmarkComponents_Grid partitions the same grid.
func BenchmarkComponents_Grid(b *testing.B) {
	g := gridGraph(b, 100, 100)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = bfs.Components(g)
	}
}
