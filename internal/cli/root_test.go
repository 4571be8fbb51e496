package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootUnknownCommand(t *testing.T) {
	cmd := NewRootCommand()
	_, err := execute(t, cmd, "bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestRootRejectsInvalidFormat(t *testing.T) {
	cmd := NewRootCommand()
	_, err := execute(t, cmd, "stats", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestRootHelpListsSubcommands(t *testing.T) {
	cmd := NewRootCommand()
	out, err := execute(t, cmd, "--help")
	require.NoError(t, err)
	for _, sub := range []string{"stats", "current", "next", "list", "add", "start", "complete", "skip", "status", "sync", "watch"} {
		assert.Contains(t, out, sub)
	}
}

func TestValidFormats(t *testing.T) {
	assert.True(t, isValidFormat("text"))
	assert.True(t, isValidFormat("json"))
	assert.False(t, isValidFormat("yaml"))
}
