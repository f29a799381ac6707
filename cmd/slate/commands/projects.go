package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/slate-client/pkg/slate"
)

// NewProjectsCommand creates the projects command group
func NewProjectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"project"},
		Short:   "Manage projects",
		Long:    "List and inspect Slate projects",
	}

	cmd.AddCommand(newProjectsListCommand())
	cmd.AddCommand(newProjectsGetCommand())

	return cmd
}

func newProjectsListCommand() *cobra.Command {
	var fields []string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			slateClient, err := createClient()
			if err != nil {
				return err
			}

			opts := &slate.ProjectListOptions{
				Active:  boolFlag(cmd, "active"),
				Library: boolFlag(cmd, "library"),
				Fields:  fields,
			}

			projects, err := slateClient.Projects().List(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf("listing projects: %w", err)
			}

			renderer := OutputRenderer[[]slate.Project]{
				RenderTable: renderProjectsTable,
			}

			return renderer.Render(projects)
		},
	}

	cmd.Flags().Bool("active", true, "filter by active flag")
	cmd.Flags().Bool("library", false, "filter by library flag")
	cmd.Flags().StringSliceVar(&fields, "fields", nil, "attribute fields to fetch (dotted paths)")

	return cmd
}

func newProjectsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>",
		Short: "Show one project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slateClient, err := createClient()
			if err != nil {
				return err
			}

			project, err := slateClient.Projects().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("getting project: %w", err)
			}

			if project == nil {
				return fmt.Errorf("project %q: %w", args[0], errNotFound)
			}

			renderer := OutputRenderer[*slate.Project]{
				RenderTable: func(project *slate.Project) error {
					return renderProjectsTable([]slate.Project{*project})
				},
			}

			return renderer.Render(project)
		},
	}
}

func renderProjectsTable(projects []slate.Project) error {
	rows := make([][]string, 0, len(projects))
	for _, project := range projects {
		rows = append(rows, []string{
			project.Name,
			project.Code,
			formatBool(project.Active),
			formatBool(project.Library),
			formatTime(project.CreatedAt),
		})
	}

	return renderTableRows([]string{"Name", "Code", "Active", "Library", "Created"}, rows)
}
