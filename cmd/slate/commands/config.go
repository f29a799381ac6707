package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/slate-client/internal/constants"
)

// Config is the persisted CLI configuration, stored as YAML in
// ~/.slate/config.yml. Credentials set via flags or environment variables
// take precedence over it at run time.
type Config struct {
	ServerURL   string `yaml:"server_url,omitempty"`
	APIKey      string `yaml:"api_key,omitempty"`
	AccessToken string `yaml:"access_token,omitempty"`
}

// configFilePath returns the path the configuration is persisted to,
// honoring the --config flag.
func configFilePath() (string, error) {
	if used := viper.ConfigFileUsed(); used != "" {
		return used, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}

	return filepath.Join(home, ".slate", "config.yml"), nil
}

// loadConfigFile reads the persisted configuration, returning an empty
// config when no file exists yet.
func loadConfigFile() (*Config, error) {
	path, err := configFilePath()
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}

		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(raw, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return config, nil
}

// saveConfigFile persists the configuration, creating the directory when
// needed.
func saveConfigFile(config *Config) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	raw, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, raw, constants.ConfigFilePerm); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// NewConfigCommand creates the config command group
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and modify the persisted slate CLI configuration",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfigFile()
			if err != nil {
				return err
			}

			// Never print the full credential.
			shown := *config
			if shown.APIKey != "" {
				shown.APIKey = maskSecret(shown.APIKey)
			}

			if shown.AccessToken != "" {
				shown.AccessToken = maskSecret(shown.AccessToken)
			}

			renderer := OutputRenderer[*Config]{
				RenderTable: func(config *Config) error {
					return renderTableRows(
						[]string{"Setting", "Value"},
						[][]string{
							{"server_url", config.ServerURL},
							{"api_key", config.APIKey},
							{"access_token", config.AccessToken},
						})
				},
			}

			return renderer.Render(&shown)
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfigFile()
			if err != nil {
				return err
			}

			if err := setConfigKey(config, args[0], args[1]); err != nil {
				return err
			}

			if err := saveConfigFile(config); err != nil {
				return err
			}

			fmt.Printf("Set %s\n", args[0])

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset <key>",
		Short: "Remove a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfigFile()
			if err != nil {
				return err
			}

			if err := setConfigKey(config, args[0], ""); err != nil {
				return err
			}

			if err := saveConfigFile(config); err != nil {
				return err
			}

			fmt.Printf("Unset %s\n", args[0])

			return nil
		},
	}
}

func setConfigKey(config *Config, key, value string) error {
	switch key {
	case "server_url":
		config.ServerURL = value
	case "api_key":
		config.APIKey = value
	case "access_token":
		config.AccessToken = value
	default:
		return fmt.Errorf("%w: %q", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

// maskSecret keeps only a short prefix of a credential for display.
func maskSecret(secret string) string {
	const visible = 4
	if len(secret) <= visible {
		return "****"
	}

	return secret[:visible] + "****"
}
