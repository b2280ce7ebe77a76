// Package main provides the entry point for the document builder HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "reco_agent",
	Short: "Resume and cover letter builder HTTP API Server",
	Long:  "Serves the resume and cover letter builder REST API: document persistence, AI content generation, and paginated PDF export.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
