package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yc815/depviz/internal/config"
	"github.com/yc815/depviz/internal/graph"
	"github.com/yc815/depviz/internal/layout"
)

var exportOut string

// exportedNode is one positioned node of the export artifact.
type exportedNode struct {
	graph.Node
	Position layout.Position `json:"position"`
}

type exportPayload struct {
	Nodes []exportedNode `json:"nodes"`
	Edges []graph.Edge   `json:"edges"`
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Build and lay out the graph once, emitting positioned JSON",
	Long: `Builds the dependency graph from the configured artifacts, runs the
layered layout and writes the positioned graph as JSON for a static
rendering surface. Writes to stdout unless --out is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		elems, ann := sourcesFromConfig(cfg)

		raw, err := elems.Elements(context.Background())
		if err != nil {
			return fmt.Errorf("loading elements: %w", err)
		}
		store, err := ann.Annotations(context.Background())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: annotations unavailable, exporting file nodes only: %v\n", err)
			store = nil
		}

		g := graph.Build(raw, store)
		positions := layout.Compute(g.Nodes, g.Edges, cfg.LayoutSettings())

		payload := exportPayload{
			Nodes: make([]exportedNode, len(g.Nodes)),
			Edges: g.Edges,
		}
		for i, n := range g.Nodes {
			payload.Nodes[i] = exportedNode{Node: n, Position: positions[n.ID]}
		}

		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal export: %w", err)
		}

		if exportOut == "" || exportOut == "-" {
			fmt.Println(string(data))
			return nil
		}
		if err := os.WriteFile(exportOut, data, 0o644); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "wrote %d nodes, %d edges to %s\n", len(payload.Nodes), len(payload.Edges), exportOut)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}
