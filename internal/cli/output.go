package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"
)

// stdout receives all command output
var stdout io.Writer = os.Stdout

// Table renders data as a formatted table.
type Table struct {
	headers []string
	rows    [][]string
	writer  io.Writer
}

// NewTable creates a new table with the given headers.
func NewTable(headers ...string) *Table {
	return &Table{
		headers: headers,
		writer:  stdout,
	}
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cols ...string) {
	t.rows = append(t.rows, cols)
}

// Render writes the table.
func (t *Table) Render() {
	data := make(pterm.TableData, 0, len(t.rows)+1)
	data = append(data, t.headers)
	data = append(data, t.rows...)
	_ = pterm.DefaultTable.WithHasHeader().WithWriter(t.writer).WithData(data).Render()
}

// printOutput prints data in the requested format.
func printOutput(data interface{}) error {
	switch getOutputFormat() {
	case "yaml":
		return printYAML(data)
	default:
		// Callers render tables themselves; anything else falls back to JSON.
		return printJSON(data)
	}
}

func printJSON(data interface{}) error {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func printYAML(data interface{}) error {
	// Round-trip through JSON so yaml keys follow the API's camelCase names.
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	var generic interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		return err
	}

	enc := yaml.NewEncoder(stdout)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(generic)
}

func printf(format string, a ...interface{}) {
	fmt.Fprintf(stdout, format, a...)
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// formatSeverity returns a colored severity label.
func formatSeverity(severity string) string {
	switch strings.ToLower(severity) {
	case "critical":
		return pterm.FgRed.Sprint("CRITICAL")
	case "high":
		return pterm.FgLightRed.Sprint("HIGH")
	case "medium":
		return pterm.FgYellow.Sprint("MEDIUM")
	case "low":
		return pterm.FgBlue.Sprint("LOW")
	default:
		return severity
	}
}

// formatStatus returns a status string with visual indicator.
func formatStatus(status string) string {
	switch strings.ToLower(status) {
	case "active", "fixed", "approved", "pass":
		return "[+] " + status
	case "zombie", "denied", "fail":
		return "[-] " + status
	case "idle", "open", "pending", "warning":
		return "[*] " + status
	case "terminated":
		return "[~] " + status
	default:
		return status
	}
}

// formatCost renders a monthly cost in dollars.
func formatCost(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
