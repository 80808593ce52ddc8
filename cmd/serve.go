package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yc815/depviz/internal/config"
	"github.com/yc815/depviz/internal/server"
	"github.com/yc815/depviz/internal/session"
)

var serveAllowAll bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the interactive graph explorer API",
	Long: `Loads the scanner artifact and annotation caches, builds and lays out
the dependency graph and serves it over HTTP and WebSocket for the web
rendering surface.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		workspace := session.NewWorkspace(cfg.LayoutSettings())
		elems, ann := sourcesFromConfig(cfg)

		srv := server.New(server.Config{
			Port:     cfg.Port,
			AllowAll: serveAllowAll || cfg.AllowAllCORS,
		}, workspace, elems, ann)

		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().BoolVar(&serveAllowAll, "allow-all-origins", false, "allow all CORS origins (dev mode)")
	rootCmd.AddCommand(serveCmd)
}

// sourcesFromConfig builds the file-backed data sources for the configured
// artifact paths.
func sourcesFromConfig(cfg *config.Config) (session.ElementSource, session.AnnotationSource) {
	elems := session.FileElementSource{
		Path:   cfg.Elements,
		Ignore: cfg.Ignore,
	}
	ann := session.FileAnnotationSource{
		SummariesPath: cfg.Summaries,
		DockerPath:    cfg.Docker,
		CombinedPath:  cfg.Combined,
	}
	return elems, ann
}
