package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/sprintledger/internal/ledger"
)

func writeCompanionDoc(t *testing.T, ledgerPath, name, content string) {
	t.Helper()
	path := filepath.Join(filepath.Dir(ledgerPath), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestSyncAddsFromDocuments(t *testing.T) {
	opts, path := newTestOpts(t)
	writeCompanionDoc(t, path, "SPRINT-005.md", "# Sprint 5: Onboarding Flow\n")
	writeCompanionDoc(t, path, "SPRINT-001.md", "# Sprint 1: Kickoff\n")

	out, err := execute(t, NewSyncCommand(opts))
	require.NoError(t, err)
	assert.Equal(t, "Sync complete:\n  Added: 001 - Kickoff\n  Added: 005 - Onboarding Flow\n", out)

	led := reload(t, path)
	got, ok := led.Get("005")
	require.True(t, ok)
	assert.Equal(t, "Onboarding Flow", got.Title)
	assert.Equal(t, ledger.StatusPlanned, got.Status)
}

func TestSyncUpdatesTitle(t *testing.T) {
	opts, path := newTestOpts(t)

	_, err := execute(t, NewAddCommand(opts), "5", "Old Title")
	require.NoError(t, err)
	writeCompanionDoc(t, path, "SPRINT-005.md", "# Sprint 5: New Title\n")

	out, err := execute(t, NewSyncCommand(opts))
	require.NoError(t, err)
	assert.Equal(t, "Sync complete:\n  Updated title: 005 - New Title\n", out)
	got, _ := reload(t, path).Get("5")
	assert.Equal(t, "New Title", got.Title)
}

func TestSyncNoChanges(t *testing.T) {
	opts, path := newTestOpts(t)
	writeCompanionDoc(t, path, "SPRINT-001.md", "# Sprint 1: Kickoff\n")

	_, err := execute(t, NewSyncCommand(opts))
	require.NoError(t, err)

	out, err := execute(t, NewSyncCommand(opts))
	require.NoError(t, err)
	assert.Equal(t, "No changes needed\n", out)
}

func TestSyncWithoutChangesDoesNotWrite(t *testing.T) {
	opts, path := newTestOpts(t)

	out, err := execute(t, NewSyncCommand(opts))
	require.NoError(t, err)
	assert.Equal(t, "No changes needed\n", out)

	// Nothing changed, so the backing file must not have been created.
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
