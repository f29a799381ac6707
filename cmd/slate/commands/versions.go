package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/slate-client/internal/constants"
	"github.com/fivetwenty-io/slate-client/pkg/slate"
)

// NewVersionsCommand creates the versions command group
func NewVersionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "versions",
		Short: "Manage versions",
		Long:  "List and inspect published versions within a project",
	}

	cmd.AddCommand(newVersionsListCommand())
	cmd.AddCommand(newVersionsLatestCommand())

	return cmd
}

func newVersionsListCommand() *cobra.Command {
	var (
		project    string
		productIDs []string
		taskIDs    []string
		statuses   []string
		heroOnly   bool
		latestOnly bool
		fields     []string
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List versions",
		RunE: func(cmd *cobra.Command, args []string) error {
			projectName, err := resolveProject(project)
			if err != nil {
				return err
			}

			slateClient, err := createClient()
			if err != nil {
				return err
			}

			opts := &slate.VersionListOptions{
				ProductIDs: productIDs,
				TaskIDs:    taskIDs,
				Statuses:   statuses,
				HeroOnly:   heroOnly,
				LatestOnly: latestOnly,
				Active:     boolFlag(cmd, "active"),
				Fields:     fields,
				Limit:      limit,
			}

			versions, err := slateClient.Versions().List(cmd.Context(), projectName, opts)
			if err != nil {
				return fmt.Errorf("listing versions: %w", err)
			}

			renderer := OutputRenderer[[]slate.Version]{
				RenderTable: renderVersionsTable,
			}

			return renderer.Render(versions)
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "project name")
	cmd.Flags().StringSliceVar(&productIDs, "product", nil, "filter by product id")
	cmd.Flags().StringSliceVar(&taskIDs, "task", nil, "filter by task id")
	cmd.Flags().StringSliceVar(&statuses, "status", nil, "filter by status")
	cmd.Flags().BoolVar(&heroOnly, "hero", false, "only hero versions")
	cmd.Flags().BoolVar(&latestOnly, "latest", false, "only the latest version per product")
	cmd.Flags().Bool("active", true, "filter by active flag")
	cmd.Flags().StringSliceVar(&fields, "fields", nil, "attribute fields to fetch (dotted paths)")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultListLimit, "maximum number of versions")

	return cmd
}

func newVersionsLatestCommand() *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "latest <product-id>",
		Short: "Show the latest version of a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectName, err := resolveProject(project)
			if err != nil {
				return err
			}

			slateClient, err := createClient()
			if err != nil {
				return err
			}

			version, err := slateClient.Versions().GetLatest(cmd.Context(), projectName, args[0])
			if err != nil {
				return fmt.Errorf("getting latest version: %w", err)
			}

			if version == nil {
				return fmt.Errorf("product %q has no versions: %w", args[0], errNotFound)
			}

			renderer := OutputRenderer[*slate.Version]{
				RenderTable: func(version *slate.Version) error {
					return renderVersionsTable([]slate.Version{*version})
				},
			}

			return renderer.Render(version)
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "project name")

	return cmd
}

func renderVersionsTable(versions []slate.Version) error {
	rows := make([][]string, 0, len(versions))
	for _, version := range versions {
		rows = append(rows, []string{
			version.ID,
			strconv.Itoa(version.Version),
			version.ProductID,
			version.Author,
			version.Status,
			formatTime(version.CreatedAt),
		})
	}

	return renderTableRows([]string{"ID", "Version", "Product", "Author", "Status", "Created"}, rows)
}
