package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/slate-client/internal/constants"
	"github.com/fivetwenty-io/slate-client/pkg/slate"
)

// NewFoldersCommand creates the folders command group
func NewFoldersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "folders",
		Aliases: []string{"folder"},
		Short:   "Manage folders",
		Long:    "List and inspect folders within a project",
	}

	cmd.AddCommand(newFoldersListCommand())
	cmd.AddCommand(newFoldersGetCommand())

	return cmd
}

func newFoldersListCommand() *cobra.Command {
	var (
		project     string
		folderTypes []string
		statuses    []string
		tags        []string
		pathRegex   string
		fields      []string
		limit       int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List folders",
		RunE: func(cmd *cobra.Command, args []string) error {
			projectName, err := resolveProject(project)
			if err != nil {
				return err
			}

			slateClient, err := createClient()
			if err != nil {
				return err
			}

			opts := &slate.FolderListOptions{
				FolderTypes: folderTypes,
				Statuses:    statuses,
				Tags:        tags,
				PathRegex:   pathRegex,
				HasTasks:    boolFlag(cmd, "has-tasks"),
				HasProducts: boolFlag(cmd, "has-products"),
				Active:      boolFlag(cmd, "active"),
				Fields:      fields,
				Limit:       limit,
			}

			folders, err := slateClient.Folders().List(cmd.Context(), projectName, opts)
			if err != nil {
				return fmt.Errorf("listing folders: %w", err)
			}

			renderer := OutputRenderer[[]slate.Folder]{
				RenderTable: renderFoldersTable,
			}

			return renderer.Render(folders)
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "project name")
	cmd.Flags().StringSliceVar(&folderTypes, "type", nil, "filter by folder type")
	cmd.Flags().StringSliceVar(&statuses, "status", nil, "filter by status")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "filter by tag")
	cmd.Flags().StringVar(&pathRegex, "path-regex", "", "filter by path regex")
	cmd.Flags().Bool("has-tasks", false, "filter by task presence")
	cmd.Flags().Bool("has-products", false, "filter by product presence")
	cmd.Flags().Bool("active", true, "filter by active flag")
	cmd.Flags().StringSliceVar(&fields, "fields", nil, "attribute fields to fetch (dotted paths)")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultListLimit, "maximum number of folders")

	return cmd
}

func newFoldersGetCommand() *cobra.Command {
	var (
		project string
		byPath  bool
	)

	cmd := &cobra.Command{
		Use:   "get <id|path>",
		Short: "Show one folder",
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

			var folder *slate.Folder
			if byPath {
				folder, err = slateClient.Folders().GetByPath(cmd.Context(), projectName, args[0])
			} else {
				folder, err = slateClient.Folders().Get(cmd.Context(), projectName, args[0])
			}

			if err != nil {
				return fmt.Errorf("getting folder: %w", err)
			}

			if folder == nil {
				return fmt.Errorf("folder %q: %w", args[0], errNotFound)
			}

			renderer := OutputRenderer[*slate.Folder]{
				RenderTable: func(folder *slate.Folder) error {
					return renderFoldersTable([]slate.Folder{*folder})
				},
			}

			return renderer.Render(folder)
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "project name")
	cmd.Flags().BoolVar(&byPath, "by-path", false, "look the folder up by hierarchy path")

	return cmd
}

func renderFoldersTable(folders []slate.Folder) error {
	rows := make([][]string, 0, len(folders))
	for _, folder := range folders {
		rows = append(rows, []string{
			folder.ID,
			folder.Path,
			folder.FolderType,
			folder.Status,
			formatBool(folder.Active),
		})
	}

	return renderTableRows([]string{"ID", "Path", "Type", "Status", "Active"}, rows)
}
