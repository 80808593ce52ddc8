package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/yc815/depviz/internal/config"
	"github.com/yc815/depviz/internal/graph"
	"github.com/yc815/depviz/internal/session"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print aggregate graph and annotation statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		workspace := session.NewWorkspace(cfg.LayoutSettings())
		elems, ann := sourcesFromConfig(cfg)
		if err := workspace.Load(context.Background(), elems, ann); err != nil {
			return fmt.Errorf("loading workspace: %w", err)
		}

		stats := workspace.Stats()

		fmt.Printf("File nodes:       %d\n", stats.FileNodes)
		fmt.Printf("Capability nodes: %d\n", stats.CapabilityNodes)
		fmt.Printf("Edges:            %d\n", stats.Edges)
		fmt.Printf("Annotated files:  %d\n", stats.Annotations.TotalFiles)
		fmt.Printf("Docker files:     %d (%.1f%%)\n", stats.Annotations.DockerFiles, stats.Annotations.DockerRatio*100)

		if len(stats.Categories) > 0 {
			fmt.Println("\nCategories:")
			for _, c := range sortedCategories(stats.Categories) {
				fmt.Printf("  %-10s %d\n", c, stats.Categories[c])
			}
		}

		if len(stats.Annotations.ToolCounts) > 0 {
			fmt.Println("\nDocker tools:")
			tools := make([]string, 0, len(stats.Annotations.ToolCounts))
			for t := range stats.Annotations.ToolCounts {
				tools = append(tools, t)
			}
			sort.Strings(tools)
			for _, t := range tools {
				fmt.Printf("  %-14s %d\n", t, stats.Annotations.ToolCounts[t])
			}
		}
		return nil
	},
}

func sortedCategories(m map[graph.Category]int) []graph.Category {
	cats := make([]graph.Category, 0, len(m))
	for c := range m {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(a, b int) bool { return cats[a] < cats[b] })
	return cats
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
