package main

import (
	"os"

	"github.com/yc815/depviz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
