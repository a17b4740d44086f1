package main

import (
	"os"

	"github.com/solverlab/mipbench/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
