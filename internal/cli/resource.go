package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/davidotu-spec/AegisFlow-AI/pkg/client"
)

func newResourceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resource",
		Short: "Inspect audited cloud resources",
	}

	cmd.AddCommand(newResourceListCmd())
	cmd.AddCommand(newResourceGetCmd())
	cmd.AddCommand(newResourceTerminateCmd())

	return cmd
}

func newResourceListCmd() *cobra.Command {
	var opts client.ResourceListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List resources",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			resources, err := apiClient.Resources().List(ctx, &opts)
			if err != nil {
				return fmt.Errorf("failed to list resources: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(resources)
			}

			t := NewTable("ID", "NAME", "TYPE", "PROVIDER", "MONTHLY", "STATUS", "WASTE")
			for _, r := range resources {
				t.AddRow(
					r.ID,
					truncate(r.Name, 30),
					r.Type,
					r.Provider,
					formatCost(r.MonthlyCost),
					formatStatus(r.Status),
					strconv.Itoa(r.WasteScore),
				)
			}
			t.Render()
			printf("\nShowing %d resources\n", len(resources))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Provider, "provider", "", "filter by provider (AWS, Azure, GCP)")
	cmd.Flags().StringVar(&opts.Type, "type", "", "filter by resource type")
	cmd.Flags().StringVar(&opts.Status, "status", "", "filter by status (idle, active, zombie, terminated)")
	cmd.Flags().StringVarP(&opts.Query, "query", "q", "", "search id, name or type")

	return cmd
}

func newResourceGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <resource-id>",
		Short: "Get resource details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			r, err := apiClient.Resources().Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get resource: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(r)
			}

			printf("Resource ID: %s\n", r.ID)
			printf("Name:        %s\n", r.Name)
			printf("Type:        %s\n", r.Type)
			printf("Provider:    %s\n", r.Provider)
			printf("Status:      %s\n", formatStatus(r.Status))
			printf("Monthly:     %s\n", formatCost(r.MonthlyCost))
			printf("Waste score: %d (efficiency %d%%)\n", r.WasteScore, r.Efficiency)
			switch {
			case r.Wasteful:
				printf("Verdict:     wasteful, counts toward leakage\n")
			case r.RightsizingCandidate:
				printf("Verdict:     rightsizing candidate\n")
			}
			if len(r.History) > 0 {
				printf("History:\n")
				for _, p := range r.History {
					printf("  %s  %s\n", p.Month, formatCost(p.Cost))
				}
			}
			return nil
		},
	}
}

func newResourceTerminateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "terminate <resource-id>",
		Aliases: []string{"delete"},
		Short:   "Terminate a resource",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if err := apiClient.Resources().Terminate(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to terminate resource: %w", err)
			}

			printf("Resource %s terminated\n", args[0])
			return nil
		},
	}
}

func newAuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Cost audit statistics",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "summary",
		Short: "Show monthly leakage, zombies and rightsizing candidates",
		RunE: func(cmd *cobra.Command, args []string) error {
			sum, err := apiClient.Resources().Summary(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get audit summary: %w", err)
			}
			return printSummary(sum)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Restore the seed resources",
		RunE: func(cmd *cobra.Command, args []string) error {
			sum, err := apiClient.Resources().Reset(context.Background())
			if err != nil {
				return fmt.Errorf("failed to reset audit: %w", err)
			}
			return printSummary(sum)
		},
	})

	return cmd
}

func printSummary(sum *client.WasteSummary) error {
	if getOutputFormat() != "table" {
		return printOutput(sum)
	}
	printf("Monthly leakage:       %s\n", formatCost(sum.TotalLeakage))
	printf("Zombie resources:      %d\n", sum.ZombieCount)
	printf("Rightsizing candidates: %d\n", sum.RightsizingCount)
	printf("Resources audited:     %d\n", sum.ResourceCount)
	return nil
}
