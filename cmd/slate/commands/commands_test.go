package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fivetwenty-io/slate-client/cmd/slate/commands"
)

func TestNewProjectsCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewProjectsCommand()
	assert.Equal(t, "projects", cmd.Use)
	assert.Equal(t, []string{"project"}, cmd.Aliases)

	subcommands := cmd.Commands()
	assert.Len(t, subcommands, 2)

	listCmd := findSubcommand(cmd, "list")
	assert.NotNil(t, listCmd)
	assert.NotNil(t, listCmd.Flags().Lookup("fields"))
	assert.NotNil(t, listCmd.Flags().Lookup("active"))

	getCmd := findSubcommand(cmd, "get")
	assert.NotNil(t, getCmd)
	assert.NotNil(t, getCmd.Args)
}

func TestNewFoldersCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewFoldersCommand()
	assert.Equal(t, "folders", cmd.Use)

	listCmd := findSubcommand(cmd, "list")
	assert.NotNil(t, listCmd)

	// Project scoping and pagination knobs
	assert.NotNil(t, listCmd.Flags().Lookup("project"))
	assert.NotNil(t, listCmd.Flags().Lookup("limit"))
	assert.Equal(t, "500", listCmd.Flags().Lookup("limit").DefValue)

	getCmd := findSubcommand(cmd, "get")
	assert.NotNil(t, getCmd)
	assert.NotNil(t, getCmd.Flags().Lookup("by-path"))
}

func TestNewTasksCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewTasksCommand()
	assert.Equal(t, "tasks", cmd.Use)

	listCmd := findSubcommand(cmd, "list")
	assert.NotNil(t, listCmd)
	assert.NotNil(t, listCmd.Flags().Lookup("assignee"))
	assert.NotNil(t, listCmd.Flags().Lookup("folder"))
}

func TestNewVersionsCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewVersionsCommand()

	listCmd := findSubcommand(cmd, "list")
	assert.NotNil(t, listCmd)
	assert.NotNil(t, listCmd.Flags().Lookup("hero"))
	assert.NotNil(t, listCmd.Flags().Lookup("latest"))

	latestCmd := findSubcommand(cmd, "latest")
	assert.NotNil(t, latestCmd)
}

func TestNewEventsCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewEventsCommand()

	listCmd := findSubcommand(cmd, "list")
	assert.NotNil(t, listCmd)
	assert.NotNil(t, listCmd.Flags().Lookup("topic"))
	assert.NotNil(t, listCmd.Flags().Lookup("newer-than"))
	assert.NotNil(t, listCmd.Flags().Lookup("include-logs"))
}

func TestNewQueryCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewQueryCommand()
	assert.NotNil(t, cmd.Flags().Lookup("var"))
	assert.NotNil(t, cmd.RunE)
}

func TestNewConfigCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewConfigCommand()

	for _, name := range []string{"show", "set", "unset"} {
		assert.NotNil(t, findSubcommand(cmd, name), name)
	}
}
