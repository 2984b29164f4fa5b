package main

import (
	"os"

	"github.com/pingcap/log"
	"go.uber.org/zap"
)

func main() {
	rootCmd := NewRootCommand()
	// Outputs cmd.Print to stdout.
	rootCmd.SetOut(os.Stdout)

	rootCmd.SetArgs(os.Args[1:])
	if err := rootCmd.Execute(); err != nil {
		log.Debug("altersql failed", zap.Error(err))
		os.Exit(1)
	}
}
