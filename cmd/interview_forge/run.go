package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/jonathan/interview-forge/internal/client"
	"github.com/jonathan/interview-forge/internal/config"
	"github.com/jonathan/interview-forge/internal/export"
	"github.com/jonathan/interview-forge/internal/types"
)

var (
	runRole        string
	runIndustry    string
	runExperience  string
	runCompanySize string
	runCount       int
	runSession     string
	runFormat      string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Buy and generate interview question sets",
	Long: `Without --session: submit the profile, create a checkout session and open
the payment page. After paying, Stripe redirects with a session_id.

With --session: start the generation job for a paid session, poll it until
it finishes, print the questions, and optionally export them.`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&runRole, "role", "", "Target role, e.g. \"Product Manager\"")
	runCmd.Flags().StringVar(&runIndustry, "industry", "", "Target industry, e.g. \"Fintech\"")
	runCmd.Flags().StringVar(&runExperience, "experience", "", "Years of experience range, e.g. 2-5")
	runCmd.Flags().StringVar(&runCompanySize, "company-size", "", "Company size range, e.g. 51-200")
	runCmd.Flags().IntVar(&runCount, "count", 10, "Number of interview question sets (5-20)")
	runCmd.Flags().StringVar(&runSession, "session", "", "Paid checkout session id to redeem")
	runCmd.Flags().StringVar(&runFormat, "format", "", "Export the results as txt, csv, xlsx, json or html")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}
	api := client.New(cfg.ServerURL)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if runSession == "" {
		return startCheckout(ctx, cmd, api, cfg)
	}
	return redeemAndPoll(ctx, cmd, api, cfg)
}

// startCheckout submits the profile and sends the user to the payment page.
func startCheckout(ctx context.Context, cmd *cobra.Command, api *client.Client, cfg *config.Config) error {
	profile := types.Profile{
		Role:             runRole,
		Industry:         runIndustry,
		ExperienceRange:  runExperience,
		CompanySizeRange: runCompanySize,
		DesiredCount:     runCount,
	}
	if err := profile.Validate(); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}

	sess, err := api.CreateCheckoutSession(ctx, profile, cfg.ReturnURL)
	if err != nil {
		// Surfaced, not swallowed: the user can fix the input or retry.
		return fmt.Errorf("could not create checkout session: %w", err)
	}

	cmd.Printf("Checkout session created: %s\n", sess.ID)
	cmd.Printf("Complete payment at: %s\n", sess.URL)
	if err := browser.OpenURL(sess.URL); err != nil {
		cmd.Printf("(could not open a browser: %v)\n", err)
	}
	cmd.Printf("\nThen run:\n  interview_forge run --session %s\n", sess.ID)
	return nil
}

// redeemAndPoll drives the job lifecycle for a paid session and renders
// the results.
func redeemAndPoll(ctx context.Context, cmd *cobra.Command, api *client.Client, cfg *config.Config) error {
	state := client.NewState()
	controller := client.NewController(api, state, client.LogNotifier{}, cfg.PollInterval)

	if err := controller.Run(ctx, runSession); err != nil {
		return err
	}

	interviews := state.Interviews()
	printInterviews(cmd, interviews)

	if runFormat == "" {
		return nil
	}

	format, err := export.ParseFormat(runFormat)
	if err != nil {
		return err
	}
	download, err := api.Export(ctx, interviews, string(format))
	if err != nil {
		return err
	}

	delivery := client.NewDelivery(cfg.DownloadDir)
	path, err := delivery.Deliver(download, format.Inline())
	if err != nil {
		return err
	}
	if format.Inline() {
		cmd.Printf("Opened %s\n", path)
	} else {
		cmd.Printf("Saved %s\n", path)
	}
	return nil
}

func printInterviews(cmd *cobra.Command, interviews []types.Interview) {
	if len(interviews) == 0 {
		cmd.Println("No interviews generated.")
		return
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tROLE\tINDUSTRY\tFIRST QUESTION")
	for i, in := range interviews {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, in.Role, in.Industry, in.QuestionOne)
	}
	w.Flush()
	cmd.Printf("\n%d interview question sets generated.\n", len(interviews))
}
