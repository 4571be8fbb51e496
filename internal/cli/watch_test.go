package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompanionFilePattern(t *testing.T) {
	assert.True(t, companionFileRe.MatchString("SPRINT-001.md"))
	assert.True(t, companionFileRe.MatchString("SPRINT-7.md"))
	assert.False(t, companionFileRe.MatchString("ledger.tsv"))
	assert.False(t, companionFileRe.MatchString("SPRINT-001.md.swp"))
	assert.False(t, companionFileRe.MatchString("sprint-001.md"))
	assert.False(t, companionFileRe.MatchString("SPRINT-abc.md"))
}

func TestWatchRunsInitialSyncThenStops(t *testing.T) {
	opts, path := newTestOpts(t)
	writeCompanionDoc(t, path, "SPRINT-001.md", "# Sprint 1: Kickoff\n")

	buf := &bytes.Buffer{}
	out := &OutputFormatter{Format: "text", Writer: buf}

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // stop right after the initial pass

	err := watchDocs(ctx, opts, out, filepath.Dir(path))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Added: 001 - Kickoff")

	got, ok := reload(t, path).Get("1")
	require.True(t, ok)
	assert.Equal(t, "Kickoff", got.Title)
}
