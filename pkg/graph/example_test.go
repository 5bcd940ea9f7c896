package graph_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/forcelayout/pkg/graph"
)

func ExampleReadGraph() {
	input := `{
	  "nodes": [{"id": "app", "width": 40, "height": 20}, {"id": "lib"}],
	  "edges": [{"from": "app", "to": "lib"}]
	}`

	g, err := graph.ReadGraph(strings.NewReader(input))
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	for key, el := range g.Elements() {
		fmt.Printf("%d: %s %.0fx%.0f\n", key, el.ID, el.Width, el.Height)
	}
	// Output:
	// 0: app 40x20
	// 1: lib 0x0
}
