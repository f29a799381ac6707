package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/fivetwenty-io/slate-client/internal/client"
	"github.com/fivetwenty-io/slate-client/internal/constants"
	"github.com/fivetwenty-io/slate-client/pkg/graphql"
	"github.com/fivetwenty-io/slate-client/pkg/slate"
	"github.com/fivetwenty-io/slate-client/pkg/slateclient"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		serverURL string
		apiKey    string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to a Slate server",
		Long:  "Verify credentials against a Slate server and persist them for later commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Get server URL from flag, global config, or prompt
			if serverURL == "" {
				serverURL = viper.GetString("server_url")
			}

			if serverURL == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Print("Server URL: ")
				serverURL, _ = reader.ReadString('\n')
				serverURL = strings.TrimSpace(serverURL)
			}

			if serverURL == "" {
				return constants.ErrNoServerConfigured
			}

			// Get API key, prompting without echo when not given
			if apiKey == "" {
				fmt.Print("API key: ")

				byteKey, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read API key: %w", err)
				}

				apiKey = strings.TrimSpace(string(byteKey))

				fmt.Println()
			}

			if apiKey == "" {
				return constants.ErrNotAuthenticated
			}

			normalized := client.NormalizeServerURL(serverURL)

			slateClient, err := slateclient.NewWithAPIKey(normalized, apiKey)
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			// Test the connection with a minimal round trip
			if err := verifyConnection(cmd.Context(), slateClient); err != nil {
				return fmt.Errorf("failed to connect to %s: %w", normalized, err)
			}

			config, err := loadConfigFile()
			if err != nil {
				return err
			}

			config.ServerURL = normalized
			config.APIKey = apiKey

			if err := saveConfigFile(config); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Printf("Logged in to %s\n", normalized)

			return nil
		},
	}

	cmd.Flags().StringVar(&serverURL, "server", "", "Slate server URL")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "service account API key")

	return cmd
}

// verifyConnection runs the cheapest authenticated query the server
// accepts: the first page of project names.
func verifyConnection(ctx context.Context, slateClient slate.Client) error {
	query := graphql.NewQuery("LoginCheck")
	projects := query.AddFieldWithEdges("projects")
	projects.AddField("name")
	projects.SetLimit(1)

	ctx, cancel := context.WithTimeout(ctx, constants.ShortHTTPTimeout)
	defer cancel()

	_, err := query.Execute(ctx, slateClient.GraphQL())

	return err
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Logout from the Slate server",
		Long:  "Clear persisted credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfigFile()
			if err != nil {
				return err
			}

			config.APIKey = ""
			config.AccessToken = ""

			if err := saveConfigFile(config); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Println("Successfully logged out")

			return nil
		},
	}
}
