package cli

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListGolden(t *testing.T) {
	opts, path := newTestOpts(t)
	writeFixture(t, path)

	out, err := execute(t, NewListCommand(opts))
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "list", []byte(out))
}

func TestListFilterByStatus(t *testing.T) {
	opts, path := newTestOpts(t)
	writeFixture(t, path)

	out, err := execute(t, NewListCommand(opts), "--status", "completed")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 1)
	assert.Equal(t, "[+] 001: Project scaffolding", lines[0])
}

func TestListFilterNoMatches(t *testing.T) {
	opts, path := newTestOpts(t)
	writeFixture(t, path)

	// Flip the only in_progress sprint away, then filter for it.
	_, err := execute(t, NewCompleteCommand(opts), "002")
	require.NoError(t, err)

	out, err := execute(t, NewListCommand(opts), "--status", "in_progress")
	require.NoError(t, err)
	assert.Equal(t, "No sprints found\n", out)
}

func TestListEmptyLedger(t *testing.T) {
	opts, _ := newTestOpts(t)

	out, err := execute(t, NewListCommand(opts))
	require.NoError(t, err)
	assert.Equal(t, "No sprints found\n", out)
}

func TestListInvalidStatusFilter(t *testing.T) {
	opts, path := newTestOpts(t)
	writeFixture(t, path)

	_, err := execute(t, NewListCommand(opts), "--status", "archived")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INVALID_STATUS")
}

func TestListNumericOrdering(t *testing.T) {
	opts, path := newTestOpts(t)
	writeFixture(t, path)

	// 010 must come after 003, not between 001 and 002 as a lexical
	// sort of unpadded ids would produce.
	out, err := execute(t, NewListCommand(opts))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[4], "[ ] 010:"), "last line: %q", lines[4])
}
