package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yc815/depviz/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := os.Stat(cfgFile); err == nil && !initForce {
			fmt.Fprintf(os.Stderr, "%s already exists (use --force to overwrite)\n", cfgFile)
			os.Exit(1)
		}

		exitOnError(config.DefaultConfig().Save(cfgFile))
		fmt.Printf("wrote %s\n", cfgFile)
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}
