// Package main is the entry point for the scene-choice CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "scene-choice",
	Short: "Non-blocking choice engine for 2D map games",
	Long:  `scene-choice runs in-scene choice sessions that coexist with parallel scripts, reject cancellation, and can be preempted by actor proximity.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
