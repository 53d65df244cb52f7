package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-forge/internal/config"
	"github.com/jonathan/interview-forge/internal/generate"
	"github.com/jonathan/interview-forge/internal/jobs"
	"github.com/jonathan/interview-forge/internal/payments"
	"github.com/jonathan/interview-forge/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the checkout, job and export endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	if servePort != 0 {
		cfg.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	var provider payments.Provider
	if cfg.StripeAPIKey != "" {
		provider = payments.NewStripeProvider(cfg.StripeAPIKey, cfg.PriceCents, cfg.Currency)
	} else {
		log.Println("STRIPE_API_KEY not set, using fake payments")
		provider = payments.NewFakeProvider()
	}

	generator, err := generate.NewGenerator(context.Background(), cfg.GeminiAPIKey)
	if err != nil {
		return fmt.Errorf("failed to create generator: %w", err)
	}
	defer generator.Close()
	if cfg.GeminiAPIKey == "" {
		log.Println("GEMINI_API_KEY not set, using the fake generator")
	}

	manager := jobs.NewManager(provider, generator)

	srv := server.New(server.Config{
		Port:     cfg.Port,
		Provider: provider,
		Manager:  manager,
	})
	return srv.Start()
}
