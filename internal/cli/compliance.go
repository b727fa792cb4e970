package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newComplianceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compliance",
		Short: "Show compliance framework scores and active policies",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := apiClient.Alerts().Compliance(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get compliance posture: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(c)
			}

			t := NewTable("FRAMEWORK", "SCORE", "STATUS")
			for _, f := range c.Frameworks {
				t.AddRow(f.Name, strconv.Itoa(f.Score)+"%", formatStatus(f.Status))
			}
			t.Render()

			if len(c.Policies) > 0 {
				printf("\nActive policies:\n")
				for _, p := range c.Policies {
					printf("  - %s\n", p)
				}
			}
			return nil
		},
	}
}
