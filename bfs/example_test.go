package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/stoproute/bfs"
	"github.com/katalvlaran/stoproute/core"
)

// ExampleComponents shows why two stops may have no path between them.
func ExampleComponents() {
	g := core.NewGraph()
	_ = g.AddHop("Central", "Parque", 2.8)
	_ = g.AddHop("Aeropuerto", "Terminal", 4)

	for _, c := range bfs.Components(g) {
		fmt.Println(c)
	}
	// Output:
	// [Aeropuerto Terminal]
	// [Central Parque]
}
