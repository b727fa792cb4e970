package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/davidotu-spec/AegisFlow-AI/pkg/client"
)

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Run the deep cloud scan",
	}

	cmd.AddCommand(newScanStartCmd())
	cmd.AddCommand(newScanStatusCmd())
	cmd.AddCommand(newScanCancelCmd())

	return cmd
}

func newScanStartCmd() *cobra.Command {
	var watch bool
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a deep scan",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			st, err := apiClient.Scan().Start(ctx)
			if err != nil {
				var apiErr *client.APIError
				if errors.As(err, &apiErr) && apiErr.IsConflict() {
					return fmt.Errorf("a scan is already in progress")
				}
				return fmt.Errorf("failed to start scan: %w", err)
			}

			if !watch {
				return printScanStatus(st)
			}
			return watchScan(ctx, st, interval)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "follow progress until the scan completes")
	cmd.Flags().DurationVar(&interval, "interval", 200*time.Millisecond, "poll interval for --watch")

	return cmd
}

// watchScan polls the scan status and drives a progress bar until the
// simulator returns to idle.
func watchScan(ctx context.Context, st *client.ScanStatus, interval time.Duration) error {
	startRuns := st.CompletedRuns

	bar, err := pterm.DefaultProgressbar.
		WithTotal(100).
		WithTitle(st.Message).
		WithWriter(stdout).
		Start()
	if err != nil {
		return err
	}

	shown := 0
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			_, _ = bar.Stop()
			return ctx.Err()
		case <-ticker.C:
		}

		st, err = apiClient.Scan().Status(ctx)
		if err != nil {
			_, _ = bar.Stop()
			return fmt.Errorf("failed to get scan status: %w", err)
		}

		if st.State == "idle" {
			bar.Add(100 - shown)
			_, _ = bar.Stop()
			if st.CompletedRuns > startRuns {
				printf("%s\n", pterm.Success.Sprint("Scan complete. New resources were added to the audit."))
			} else {
				printf("%s\n", pterm.Warning.Sprint("Scan stopped before completion."))
			}
			return nil
		}

		if p := int(st.Progress); p > shown {
			bar.Add(p - shown)
			shown = p
		}
		if st.Message != "" {
			bar.UpdateTitle(st.Message)
		}
	}
}

func newScanStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show scan progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := apiClient.Scan().Status(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get scan status: %w", err)
			}
			return printScanStatus(st)
		},
	}
}

func newScanCancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel",
		Short: "Cancel the running scan",
		RunE: func(cmd *cobra.Command, args []string) error {
			cancelled, err := apiClient.Scan().Cancel(context.Background())
			if err != nil {
				return fmt.Errorf("failed to cancel scan: %w", err)
			}
			if cancelled {
				printf("Scan cancelled\n")
			} else {
				printf("No scan in progress\n")
			}
			return nil
		},
	}
}

func printScanStatus(st *client.ScanStatus) error {
	if getOutputFormat() != "table" {
		return printOutput(st)
	}
	printf("State:          %s\n", st.State)
	if st.State != "idle" {
		printf("Progress:       %.1f%%\n", st.Progress)
		printf("Phase:          %d/%d %s\n", st.Phase+1, st.PhaseCount, st.Message)
	}
	printf("Completed runs: %d\n", st.CompletedRuns)
	if st.CompletedAt != nil {
		printf("Last completed: %s\n", st.CompletedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}
