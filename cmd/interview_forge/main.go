// Package main provides the entry point for the Interview Forge CLI and
// HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "interview_forge",
	Short: "Interview Forge HTTP API server and client",
	Long:  "Interview Forge turns an ideal customer profile into paid, AI-generated customer discovery interview question sets, exportable as TXT, CSV, XLSX, JSON or HTML.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
