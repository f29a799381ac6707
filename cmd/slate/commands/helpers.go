// Package commands implements the subcommands of the slate CLI.
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/slate-client/internal/constants"
	"github.com/fivetwenty-io/slate-client/pkg/slate"
	"github.com/fivetwenty-io/slate-client/pkg/slateclient"
)

// errNotFound reports a get command whose entity does not exist.
var errNotFound = errors.New("not found")

// createClient builds a slate.Client from the resolved CLI configuration
// (flags, environment, config file — in viper's precedence order).
func createClient() (slate.Client, error) {
	serverURL := viper.GetString("server_url")
	if serverURL == "" {
		return nil, constants.ErrNoServerConfigured
	}

	config := &slate.Config{
		ServerURL:   serverURL,
		APIKey:      viper.GetString("api_key"),
		AccessToken: viper.GetString("access_token"),
	}

	if config.APIKey == "" && config.AccessToken == "" {
		return nil, constants.ErrNotAuthenticated
	}

	client, err := slateclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return client, nil
}

// resolveProject returns the project name from the --project flag, falling
// back to the SLATE_PROJECT environment variable.
func resolveProject(projectFlag string) (string, error) {
	if projectFlag != "" {
		return projectFlag, nil
	}

	if project := os.Getenv(constants.EnvDefaultProject); project != "" {
		return project, nil
	}

	return "", constants.ErrNoProjectSelected
}

// OutputRenderer renders one data set as a table, JSON or YAML.
type OutputRenderer[T any] struct {
	// RenderTable writes the table form. JSON and YAML are derived from
	// the data's struct tags.
	RenderTable func(data T) error
}

// Render outputs data in the format selected by the --output flag.
func (o *OutputRenderer[T]) Render(data T) error {
	switch format := viper.GetString("output"); format {
	case constants.FormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		return encoder.Encode(data)
	case constants.FormatYAML:
		return yaml.NewEncoder(os.Stdout).Encode(data)
	case constants.FormatTable, "":
		return o.RenderTable(data)
	default:
		return fmt.Errorf("%w: %q", constants.ErrInvalidOutputFormat, format)
	}
}

// renderTableRows writes one table with the given header and rows.
func renderTableRows(header []string, rows [][]string) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header(toAnyRow(header)...)

	for _, row := range rows {
		_ = table.Append(toAnyRow(row)...)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func toAnyRow(row []string) []any {
	cells := make([]any, len(row))
	for i, cell := range row {
		cells[i] = cell
	}

	return cells
}

// boolFlag returns the value of a boolean flag as a *bool, or nil when the
// flag was not given. List options treat that as "do not filter".
func boolFlag(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}

	value, err := cmd.Flags().GetBool(name)
	if err != nil {
		return nil
	}

	return &value
}

// formatTime renders a timestamp for table output.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return constants.NotAvailable
	}

	return t.Local().Format("2006-01-02 15:04")
}

// formatBool renders a boolean for table output.
func formatBool(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}

// formatList joins a string slice for table output.
func formatList(values []string) string {
	if len(values) == 0 {
		return ""
	}

	return strings.Join(values, ", ")
}

// truncate shortens long cell content for table output.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}

	return s[:limit-3] + "..."
}
