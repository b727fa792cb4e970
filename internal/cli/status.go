package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show dashboard summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if getOutputFormat() != "table" {
				summary := map[string]interface{}{}

				if ready, err := apiClient.Ready(ctx); err == nil {
					summary["assistant"] = ready.Assistant
				}
				if sum, err := apiClient.Resources().Summary(ctx); err == nil {
					summary["audit"] = sum
				}
				if st, err := apiClient.Scan().Status(ctx); err == nil {
					summary["scan"] = st.State
				}
				if sum, err := apiClient.Alerts().Summary(ctx); err == nil {
					summary["openAlerts"] = sum.Open
				}
				if queue, err := apiClient.Approvals().List(ctx); err == nil {
					summary["allApprovalsResolved"] = queue.AllResolved
				}
				return printOutput(summary)
			}

			printf("AegisFlow Dashboard\n")
			printf("%s\n", strings.Repeat("=", 40))

			if ready, err := apiClient.Ready(ctx); err != nil {
				printf("  Server:        (error: %v)\n", err)
			} else {
				printf("  Server:        %s (assistant %s)\n", ready.Status, ready.Assistant)
			}

			if sum, err := apiClient.Resources().Summary(ctx); err != nil {
				printf("  Cost audit:    (error: %v)\n", err)
			} else {
				printf("  Cost audit:    %s/mo leakage, %d zombies, %d resources\n",
					formatCost(sum.TotalLeakage), sum.ZombieCount, sum.ResourceCount)
			}

			if st, err := apiClient.Scan().Status(ctx); err != nil {
				printf("  Deep scan:     (error: %v)\n", err)
			} else if st.State == "idle" {
				printf("  Deep scan:     idle (%d completed)\n", st.CompletedRuns)
			} else {
				printf("  Deep scan:     %s %.0f%% %s\n", st.State, st.Progress, st.Message)
			}

			if sum, err := apiClient.Alerts().Summary(ctx); err != nil {
				printf("  Alerts:        (error: %v)\n", err)
			} else {
				printf("  Alerts:        %d open", sum.Open)
				if sum.OpenCritical > 0 {
					printf(" (%d critical)", sum.OpenCritical)
				}
				printf("\n")
			}

			if queue, err := apiClient.Approvals().List(ctx); err != nil {
				printf("  Approvals:     (error: %v)\n", err)
			} else {
				pending := 0
				for _, r := range queue.Items {
					if r.Status == "pending" {
						pending++
					}
				}
				printf("  Approvals:     %d pending\n", pending)
			}

			return nil
		},
	}
}

func newViewsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "views",
		Short: "List dashboard views",
		RunE: func(cmd *cobra.Command, args []string) error {
			views, err := apiClient.Views(context.Background())
			if err != nil {
				return err
			}
			if getOutputFormat() != "table" {
				return printOutput(views)
			}
			t := NewTable("NAME", "TITLE", "ENDPOINT")
			for _, v := range views {
				t.AddRow(v.Name, v.Title, v.Path)
			}
			t.Render()
			return nil
		},
	}
}

func newOverviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Show the overview dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ov, err := apiClient.Overview(context.Background())
			if err != nil {
				return err
			}
			if getOutputFormat() != "table" {
				return printOutput(ov)
			}

			t := NewTable("METRIC", "VALUE", "CHANGE")
			for _, s := range ov.Stats {
				t.AddRow(s.Label, s.Value, s.Change)
			}
			t.Render()

			printf("\nRecent agent activity:\n")
			for _, a := range ov.Activity {
				printf("  %-8s %-10s %s (%s)\n", a.Time, a.Category, a.Action, a.Resource)
			}

			printf("\n%s\n  %s\n  -> %s\n", ov.Recommendation.Title, ov.Recommendation.Description, ov.Recommendation.Action)
			return nil
		},
	}
}
