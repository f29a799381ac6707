package commands

import (
	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display detailed version information about the slate CLI",
		RunE: func(cmd *cobra.Command, args []string) error {
			type VersionInfo struct {
				Version string `json:"version" yaml:"version"`
				Commit  string `json:"commit"  yaml:"commit"`
				Built   string `json:"built"   yaml:"built"`
			}

			renderer := OutputRenderer[VersionInfo]{
				RenderTable: func(info VersionInfo) error {
					return renderTableRows(
						[]string{"Property", "Value"},
						[][]string{
							{"Version", info.Version},
							{"Commit", info.Commit},
							{"Built", info.Built},
						})
				},
			}

			return renderer.Render(VersionInfo{
				Version: version,
				Commit:  commit,
				Built:   date,
			})
		},
	}
}
