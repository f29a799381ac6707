package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/slate-client/internal/constants"
)

// NewQueryCommand creates the raw query escape hatch
func NewQueryCommand() *cobra.Command {
	var variables []string

	cmd := &cobra.Command{
		Use:   "query <graphql>",
		Short: "Run a raw GraphQL query",
		Long: `Run an arbitrary GraphQL query against the server and print the
response document as JSON. Pass "-" to read the query from stdin.

Variables are given as --var key=value; values that parse as JSON are
passed typed, everything else is passed as a string.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			queryText := args[0]
			if queryText == "-" {
				raw, err := io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("reading query from stdin: %w", err)
				}

				queryText = string(raw)
			}

			if strings.TrimSpace(queryText) == "" {
				return constants.ErrEmptyQueryDocument
			}

			values, err := parseVariables(variables)
			if err != nil {
				return err
			}

			slateClient, err := createClient()
			if err != nil {
				return err
			}

			response, err := slateClient.GraphQL().Execute(cmd.Context(), queryText, values)
			if err != nil {
				return fmt.Errorf("executing query: %w", err)
			}

			if len(response.Errors) > 0 {
				return fmt.Errorf("query failed: %w", response.Errors)
			}

			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")

			return encoder.Encode(map[string]any{"data": response.Data})
		},
	}

	cmd.Flags().StringArrayVar(&variables, "var", nil, "query variable as key=value (repeatable)")

	return cmd
}

// parseVariables turns key=value pairs into a variables map, decoding JSON
// values where possible.
func parseVariables(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	values := make(map[string]any, len(pairs))

	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidVariable, pair)
		}

		var decoded any
		if err := json.Unmarshal([]byte(value), &decoded); err != nil {
			// Not valid JSON, treat it as a bare string.
			decoded = value
		}

		values[key] = decoded
	}

	return values, nil
}
