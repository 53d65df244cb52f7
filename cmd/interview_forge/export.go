package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-forge/internal/client"
	"github.com/jonathan/interview-forge/internal/config"
	"github.com/jonathan/interview-forge/internal/export"
	"github.com/jonathan/interview-forge/internal/types"
)

var (
	exportInput  string
	exportFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export interview question sets from a JSON file",
	Long:  `Read a JSON array of interview question sets (as produced by the json export) and re-export it in another format.`,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportInput, "input", "", "Path to a JSON array of interviews (required)")
	exportCmd.Flags().StringVar(&exportFormat, "format", "", "Target format: txt, csv, xlsx, json or html (default html)")
	_ = exportCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := os.ReadFile(exportInput)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	var interviews []types.Interview
	if err := json.Unmarshal(data, &interviews); err != nil {
		return fmt.Errorf("input is not a JSON array of interviews: %w", err)
	}

	format, err := export.ParseFormat(exportFormat)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	download, err := client.New(cfg.ServerURL).Export(ctx, interviews, string(format))
	if err != nil {
		return err
	}

	path, err := client.NewDelivery(cfg.DownloadDir).Deliver(download, format.Inline())
	if err != nil {
		return err
	}
	cmd.Printf("Wrote %s\n", path)
	return nil
}
