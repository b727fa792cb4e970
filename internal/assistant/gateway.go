// Package assistant turns a chat query plus a snapshot of the cloud
// environment into one text-generation call.
package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/davidotu-spec/AegisFlow-AI/internal/domain/alert"
	"github.com/davidotu-spec/AegisFlow-AI/internal/domain/resource"
	"github.com/davidotu-spec/AegisFlow-AI/internal/pkg/logger"
	"github.com/davidotu-spec/AegisFlow-AI/internal/pkg/metrics"
)

// SystemInstruction is the persona sent with every query
const SystemInstruction = "You are AegisFlow AI, an elite Cloud Architect, FinOps Specialist, and SecOps Engineer. " +
	"Your goal is to help users manage their multi-cloud environment (AWS, Azure, GCP). " +
	"Provide technical, concise, and actionable advice. " +
	"If asked about spend, refer to the provided context. " +
	"If asked to fix something, explain the 'Agentic' step you would take autonomously."

// DefaultTemperature is the sampling temperature used when none is configured
const DefaultTemperature float32 = 0.7

// Fixed replies returned instead of backend output
const (
	EmptyReply = "I'm sorry, I couldn't process that query. Please try again."
	ErrorReply = "An error occurred while communicating with the AI. Please check your configuration."
)

// Request is one text-generation call
type Request struct {
	Prompt            string
	SystemInstruction string
	Temperature       float32
}

// Generator is a text-generation backend
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Snapshot is the environment context attached to a query
type Snapshot struct {
	ActiveResources []*resource.Resource `json:"active_resources"`
	RecentAlerts    []*alert.Alert       `json:"recent_alerts"`
	CloudStatus     string               `json:"cloud_status"`
	LastRemediation string               `json:"last_remediation"`
}

// NewSnapshot builds a snapshot with the fixed status fields
func NewSnapshot(resources []*resource.Resource, alerts []*alert.Alert) Snapshot {
	if resources == nil {
		resources = []*resource.Resource{}
	}
	if alerts == nil {
		alerts = []*alert.Alert{}
	}
	return Snapshot{
		ActiveResources: resources,
		RecentAlerts:    alerts,
		CloudStatus:     "Healthy",
		LastRemediation: "2 hours ago",
	}
}

// BuildPrompt renders the user query followed by the serialized snapshot
func BuildPrompt(text string, snap Snapshot) (string, error) {
	data, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return fmt.Sprintf("User Query: %s\n\nContext about the cloud environment: %s", text, data), nil
}

// Options configures a Gateway
type Options struct {
	// Backend names the generator in logs and metrics
	Backend string
	// APIKeySet reports whether a credential was configured
	APIKeySet bool
	// Temperature is passed through as given; zero is a valid setting
	Temperature float32
	// Timeout bounds one call when positive
	Timeout time.Duration
}

// Gateway queries the assistant. It keeps no conversation state.
type Gateway struct {
	gen    Generator
	opts   Options
	logger *logger.Logger
}

// NewGateway creates a gateway. A missing credential is logged and left to
// fail at call time.
func NewGateway(gen Generator, opts Options, log *logger.Logger) *Gateway {
	if opts.Backend == "" {
		opts.Backend = "unknown"
	}
	if !opts.APIKeySet {
		log.WithFields(map[string]interface{}{
			"backend": opts.Backend,
		}).Warn("Assistant API key is not configured; chat replies will report a configuration error")
	}
	return &Gateway{gen: gen, opts: opts, logger: log}
}

// Configured reports whether a credential is present
func (g *Gateway) Configured() bool {
	return g.opts.APIKeySet
}

// Query sends text with the snapshot and returns the reply. It never fails:
// backend errors and panics map to ErrorReply, empty output to EmptyReply.
func (g *Gateway) Query(ctx context.Context, text string, snap Snapshot) (reply string) {
	start := time.Now()
	outcome := "ok"
	defer func() {
		if r := recover(); r != nil {
			g.logger.WithFields(map[string]interface{}{
				"backend": g.opts.Backend,
				"panic":   r,
			}).Error("Assistant backend panicked")
			outcome = "error"
			reply = ErrorReply
		}
		metrics.RecordAssistantQuery(g.opts.Backend, outcome, time.Since(start))
	}()

	prompt, err := BuildPrompt(text, snap)
	if err != nil {
		g.logger.ErrorWithErr(err, "Failed to build assistant prompt")
		outcome = "error"
		return ErrorReply
	}

	if g.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.opts.Timeout)
		defer cancel()
	}

	out, err := g.gen.Generate(ctx, Request{
		Prompt:            prompt,
		SystemInstruction: SystemInstruction,
		Temperature:       g.opts.Temperature,
	})
	if err != nil {
		g.logger.WithFields(map[string]interface{}{
			"backend": g.opts.Backend,
		}).WithError(err).Error("Assistant query failed")
		outcome = "error"
		return ErrorReply
	}
	if out == "" {
		outcome = "empty"
		return EmptyReply
	}

	g.logger.WithFields(map[string]interface{}{
		"backend":     g.opts.Backend,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("Assistant query answered")
	return out
}
