package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/slate-client/internal/constants"
	"github.com/fivetwenty-io/slate-client/pkg/graphql"
	"github.com/fivetwenty-io/slate-client/pkg/slate"
)

// NewEventsCommand creates the events command group
func NewEventsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "events",
		Aliases: []string{"event"},
		Short:   "Browse the server event log",
		Long:    "List events recorded by the Slate server",
	}

	cmd.AddCommand(newEventsListCommand())

	return cmd
}

func newEventsListCommand() *cobra.Command {
	var (
		topics      []string
		projects    []string
		users       []string
		statuses    []string
		newerThan   string
		olderThan   string
		includeLogs bool
		fields      []string
		limit       int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			slateClient, err := createClient()
			if err != nil {
				return err
			}

			opts := &slate.EventListOptions{
				Topics:      topics,
				Projects:    projects,
				Users:       users,
				Statuses:    statuses,
				NewerThan:   newerThan,
				OlderThan:   olderThan,
				IncludeLogs: includeLogs,
				Fields:      fields,
				Limit:       limit,
				Order:       graphql.SortDescending,
			}

			events, err := slateClient.Events().List(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf("listing events: %w", err)
			}

			renderer := OutputRenderer[[]slate.Event]{
				RenderTable: renderEventsTable,
			}

			return renderer.Render(events)
		},
	}

	cmd.Flags().StringSliceVar(&topics, "topic", nil, "filter by topic")
	cmd.Flags().StringSliceVar(&projects, "project", nil, "filter by project")
	cmd.Flags().StringSliceVar(&users, "user", nil, "filter by user")
	cmd.Flags().StringSliceVar(&statuses, "status", nil, "filter by status")
	cmd.Flags().StringVar(&newerThan, "newer-than", "", "only events after this ISO-8601 timestamp")
	cmd.Flags().StringVar(&olderThan, "older-than", "", "only events before this ISO-8601 timestamp")
	cmd.Flags().BoolVar(&includeLogs, "include-logs", false, "also return log events")
	cmd.Flags().StringSliceVar(&fields, "fields", nil, "attribute fields to fetch (dotted paths)")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultListLimit, "maximum number of events")

	return cmd
}

func renderEventsTable(events []slate.Event) error {
	rows := make([][]string, 0, len(events))
	for _, event := range events {
		rows = append(rows, []string{
			event.ID,
			event.Topic,
			event.Project,
			event.User,
			event.Status,
			truncate(event.Description, constants.BodyDisplayLength),
			formatTime(event.CreatedAt),
		})
	}

	return renderTableRows(
		[]string{"ID", "Topic", "Project", "User", "Status", "Description", "Created"},
		rows)
}
