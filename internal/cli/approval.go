package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davidotu-spec/AegisFlow-AI/pkg/client"
)

func newApprovalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "approval",
		Aliases: []string{"approvals"},
		Short:   "Decide pending approval requests",
	}

	cmd.AddCommand(newApprovalListCmd())
	cmd.AddCommand(newApprovalGetCmd())
	cmd.AddCommand(newApprovalDecideCmd("approve", "Approve a pending request"))
	cmd.AddCommand(newApprovalDecideCmd("deny", "Deny a pending request"))
	cmd.AddCommand(newApprovalResetCmd())

	return cmd
}

func newApprovalListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List approval requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			queue, err := apiClient.Approvals().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list approvals: %w", err)
			}
			return printApprovals(queue)
		},
	}
}

func newApprovalGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get approval request details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := apiClient.Approvals().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get approval: %w", err)
			}
			return printApproval(req)
		},
	}
}

func newApprovalDecideCmd(action, short string) *cobra.Command {
	return &cobra.Command{
		Use:   action + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc := apiClient.Approvals()

			decide := svc.Approve
			if action == "deny" {
				decide = svc.Deny
			}

			req, err := decide(ctx, args[0])
			if err != nil {
				var apiErr *client.APIError
				if errors.As(err, &apiErr) && apiErr.IsConflict() {
					return fmt.Errorf("cannot %s %s: %s", action, args[0], apiErr.Message)
				}
				return fmt.Errorf("failed to %s request: %w", action, err)
			}
			return printApproval(req)
		},
	}
}

func newApprovalResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore the seed approval queue",
		RunE: func(cmd *cobra.Command, args []string) error {
			queue, err := apiClient.Approvals().Reset(context.Background())
			if err != nil {
				return fmt.Errorf("failed to reset approvals: %w", err)
			}
			return printApprovals(queue)
		},
	}
}

func printApprovals(queue *client.ApprovalList) error {
	if getOutputFormat() != "table" {
		return printOutput(queue)
	}

	if queue.AllResolved {
		printf("All caught up! No pending approvals.\n\n")
	}

	t := NewTable("ID", "REQUESTER", "TYPE", "COST", "STATUS", "DESCRIPTION")
	for _, r := range queue.Items {
		cost := "-"
		if r.EstimatedCost > 0 {
			cost = formatCost(r.EstimatedCost)
		}
		t.AddRow(r.ID, r.Requester, r.Type, cost, formatStatus(r.Status), truncate(r.Description, 50))
	}
	t.Render()
	return nil
}

func printApproval(r *client.Approval) error {
	if getOutputFormat() != "table" {
		return printOutput(r)
	}
	printf("ID:          %s\n", r.ID)
	printf("Requester:   %s\n", r.Requester)
	printf("Type:        %s\n", r.Type)
	if r.EstimatedCost > 0 {
		printf("Est. cost:   %s\n", formatCost(r.EstimatedCost))
	}
	printf("Status:      %s\n", formatStatus(r.Status))
	printf("Description: %s\n", r.Description)
	return nil
}
