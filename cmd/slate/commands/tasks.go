package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/slate-client/internal/constants"
	"github.com/fivetwenty-io/slate-client/pkg/slate"
)

// NewTasksCommand creates the tasks command group
func NewTasksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tasks",
		Aliases: []string{"task"},
		Short:   "Manage tasks",
		Long:    "List and inspect tasks within a project",
	}

	cmd.AddCommand(newTasksListCommand())
	cmd.AddCommand(newTasksGetCommand())

	return cmd
}

func newTasksListCommand() *cobra.Command {
	var (
		project   string
		taskTypes []string
		folderIDs []string
		assignees []string
		statuses  []string
		tags      []string
		fields    []string
		limit     int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			projectName, err := resolveProject(project)
			if err != nil {
				return err
			}

			slateClient, err := createClient()
			if err != nil {
				return err
			}

			opts := &slate.TaskListOptions{
				TaskTypes:    taskTypes,
				FolderIDs:    folderIDs,
				AssigneesAny: assignees,
				Statuses:     statuses,
				Tags:         tags,
				Active:       boolFlag(cmd, "active"),
				Fields:       fields,
				Limit:        limit,
			}

			tasks, err := slateClient.Tasks().List(cmd.Context(), projectName, opts)
			if err != nil {
				return fmt.Errorf("listing tasks: %w", err)
			}

			renderer := OutputRenderer[[]slate.Task]{
				RenderTable: renderTasksTable,
			}

			return renderer.Render(tasks)
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "project name")
	cmd.Flags().StringSliceVar(&taskTypes, "type", nil, "filter by task type")
	cmd.Flags().StringSliceVar(&folderIDs, "folder", nil, "filter by folder id")
	cmd.Flags().StringSliceVar(&assignees, "assignee", nil, "filter by assignee")
	cmd.Flags().StringSliceVar(&statuses, "status", nil, "filter by status")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "filter by tag")
	cmd.Flags().Bool("active", true, "filter by active flag")
	cmd.Flags().StringSliceVar(&fields, "fields", nil, "attribute fields to fetch (dotted paths)")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultListLimit, "maximum number of tasks")

	return cmd
}

func newTasksGetCommand() *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one task",
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

			task, err := slateClient.Tasks().Get(cmd.Context(), projectName, args[0])
			if err != nil {
				return fmt.Errorf("getting task: %w", err)
			}

			if task == nil {
				return fmt.Errorf("task %q: %w", args[0], errNotFound)
			}

			renderer := OutputRenderer[*slate.Task]{
				RenderTable: func(task *slate.Task) error {
					return renderTasksTable([]slate.Task{*task})
				},
			}

			return renderer.Render(task)
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "project name")

	return cmd
}

func renderTasksTable(tasks []slate.Task) error {
	rows := make([][]string, 0, len(tasks))
	for _, task := range tasks {
		rows = append(rows, []string{
			task.ID,
			task.Name,
			task.TaskType,
			task.Status,
			formatList(task.Assignees),
		})
	}

	return renderTableRows([]string{"ID", "Name", "Type", "Status", "Assignees"}, rows)
}
