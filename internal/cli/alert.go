package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davidotu-spec/AegisFlow-AI/pkg/client"
)

func newAlertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alert",
		Short: "Review security alerts",
	}

	cmd.AddCommand(newAlertListCmd())
	cmd.AddCommand(newAlertGetCmd())
	cmd.AddCommand(newAlertSummaryCmd())

	return cmd
}

func newAlertListCmd() *cobra.Command {
	var opts client.AlertListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List alerts",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			alerts, err := apiClient.Alerts().List(ctx, &opts)
			if err != nil {
				return fmt.Errorf("failed to list alerts: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(alerts)
			}

			t := NewTable("ID", "SEVERITY", "STATUS", "AUTO", "TITLE")
			for _, a := range alerts {
				auto := ""
				if a.AutoRemediated {
					auto = "yes"
				}
				t.AddRow(
					a.ID,
					formatSeverity(a.Severity),
					formatStatus(a.Status),
					auto,
					truncate(a.Title, 50),
				)
			}
			t.Render()
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Severity, "severity", "", "filter by severity (low, medium, high, critical)")
	cmd.Flags().StringVar(&opts.Status, "status", "", "filter by status (open, fixed)")

	return cmd
}

func newAlertGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get alert details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alert, err := apiClient.Alerts().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get alert: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(alert)
			}

			printf("ID:          %s\n", alert.ID)
			printf("Severity:    %s\n", formatSeverity(alert.Severity))
			printf("Status:      %s\n", formatStatus(alert.Status))
			printf("Title:       %s\n", alert.Title)
			printf("Description: %s\n", alert.Description)
			printf("Detected:    %s\n", alert.Timestamp.Format("2006-01-02 15:04:05"))
			if alert.AutoRemediated {
				printf("Remediation: fixed automatically\n")
			}
			return nil
		},
	}
}

func newAlertSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show alert summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			sum, err := apiClient.Alerts().Summary(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get alert summary: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(sum)
			}

			printf("Alerts:          %d (%d open, %d fixed)\n", sum.Total, sum.Open, sum.Fixed)
			printf("Auto-remediated: %d\n", sum.AutoRemediated)
			printf("Open critical:   %d\n", sum.OpenCritical)
			for _, sev := range []string{"critical", "high", "medium", "low"} {
				printf("  %-20s %d\n", formatSeverity(sev), sum.BySeverity[sev])
			}
			return nil
		},
	}
}
