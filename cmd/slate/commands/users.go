package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/slate-client/internal/constants"
	"github.com/fivetwenty-io/slate-client/pkg/slate"
)

// NewUsersCommand creates the users command group
func NewUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Manage users",
		Long:    "List and inspect user accounts",
	}

	cmd.AddCommand(newUsersListCommand())
	cmd.AddCommand(newUsersGetCommand())

	return cmd
}

func newUsersListCommand() *cobra.Command {
	var (
		project string
		fields  []string
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			slateClient, err := createClient()
			if err != nil {
				return err
			}

			opts := &slate.UserListOptions{
				ProjectName: project,
				Fields:      fields,
				Limit:       limit,
			}

			users, err := slateClient.Users().List(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf("listing users: %w", err)
			}

			renderer := OutputRenderer[[]slate.User]{
				RenderTable: renderUsersTable,
			}

			return renderer.Render(users)
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "only members of this project")
	cmd.Flags().StringSliceVar(&fields, "fields", nil, "attribute fields to fetch (dotted paths)")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultListLimit, "maximum number of users")

	return cmd
}

func newUsersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>",
		Short: "Show one user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slateClient, err := createClient()
			if err != nil {
				return err
			}

			user, err := slateClient.Users().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("getting user: %w", err)
			}

			if user == nil {
				return fmt.Errorf("user %q: %w", args[0], errNotFound)
			}

			renderer := OutputRenderer[*slate.User]{
				RenderTable: func(user *slate.User) error {
					return renderUsersTable([]slate.User{*user})
				},
			}

			return renderer.Render(user)
		},
	}
}

func renderUsersTable(users []slate.User) error {
	rows := make([][]string, 0, len(users))
	for _, user := range users {
		role := "user"

		switch {
		case user.IsAdmin:
			role = "admin"
		case user.IsManager:
			role = "manager"
		case user.IsService:
			role = "service"
		case user.IsGuest:
			role = "guest"
		}

		rows = append(rows, []string{
			user.Name,
			role,
			formatBool(user.Active),
			formatTime(user.CreatedAt),
		})
	}

	return renderTableRows([]string{"Name", "Role", "Active", "Created"}, rows)
}
