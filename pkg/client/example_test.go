package client_test

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/davidotu-spec/AegisFlow-AI/pkg/client"
)

// Example demonstrates basic usage of the AegisFlow client
func Example() {
	c := client.NewClient(client.Config{
		BaseURL: "http://localhost:8080",
	})

	ctx := context.Background()

	sum, err := c.Resources().Summary(ctx)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Monthly leakage: $%.2f across %d resources\n", sum.TotalLeakage, sum.ResourceCount)
}

// ExampleResourceService_List demonstrates listing resources with filters
func ExampleResourceService_List() {
	c := client.NewClient(client.Config{
		BaseURL: "http://localhost:8080",
	})

	resources, err := c.Resources().List(context.Background(), &client.ResourceListOptions{
		Provider: "AWS",
		Status:   "zombie",
	})
	if err != nil {
		log.Fatal(err)
	}

	for _, r := range resources {
		fmt.Printf("Resource: %s (%s) $%.0f/mo\n", r.Name, r.Type, r.MonthlyCost)
	}
}

// ExampleScanService_Start demonstrates running a deep scan to completion
func ExampleScanService_Start() {
	c := client.NewClient(client.Config{
		BaseURL: "http://localhost:8080",
	})
	ctx := context.Background()

	if _, err := c.Scan().Start(ctx); err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && apiErr.IsConflict() {
			fmt.Println("A scan is already running")
		} else {
			log.Fatal(err)
		}
	}

	for {
		st, err := c.Scan().Status(ctx)
		if err != nil {
			log.Fatal(err)
		}
		if st.State == "idle" {
			fmt.Printf("Scan finished, %d runs completed\n", st.CompletedRuns)
			return
		}
		fmt.Printf("%.0f%% %s\n", st.Progress, st.Message)
		time.Sleep(250 * time.Millisecond)
	}
}

// ExampleApprovalService_Approve demonstrates deciding a pending request
func ExampleApprovalService_Approve() {
	c := client.NewClient(client.Config{
		BaseURL: "http://localhost:8080",
	})

	req, err := c.Approvals().Approve(context.Background(), "apr-101")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%s is now %s\n", req.ID, req.Status)
}

// ExampleChatService_Send demonstrates asking the assistant a question
func ExampleChatService_Send() {
	c := client.NewClient(client.Config{
		BaseURL: "http://localhost:8080",
	})

	reply, err := c.Chat().Send(context.Background(), "Which resources are zombies?")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(reply.Content)
}

// ExampleClient_Ready demonstrates checking API readiness
func ExampleClient_Ready() {
	c := client.NewClient(client.Config{
		BaseURL: "http://localhost:8080",
	})

	ready, err := c.Ready(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("API Status: %s\n", ready.Status)
	fmt.Printf("Assistant: %s\n", ready.Assistant)
}
