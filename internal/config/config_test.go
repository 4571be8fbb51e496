package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/sprintledger/internal/config"
)

func TestResolveLedgerPathPrecedence(t *testing.T) {
	exeDir := filepath.FromSlash("/opt/sprints")
	cwd := filepath.FromSlash("/home/dev/project")
	adjacent := filepath.Join(exeDir, config.LedgerFileName)
	conventional := filepath.Join(cwd, config.DocsSubdir, config.LedgerFileName)

	existsNone := func(string) bool { return false }
	existsOnly := func(want string) func(string) bool {
		return func(path string) bool { return path == want }
	}

	t.Run("explicit wins over everything", func(t *testing.T) {
		got := config.ResolveLedgerPath("/tmp/custom.tsv", exeDir, cwd,
			func(string) bool { return true })
		assert.Equal(t, "/tmp/custom.tsv", got)
	})

	t.Run("executable-adjacent preferred when present", func(t *testing.T) {
		got := config.ResolveLedgerPath("", exeDir, cwd, existsOnly(adjacent))
		assert.Equal(t, adjacent, got)
	})

	t.Run("cwd conventional subtree when adjacent missing", func(t *testing.T) {
		got := config.ResolveLedgerPath("", exeDir, cwd, existsOnly(conventional))
		assert.Equal(t, conventional, got)
	})

	t.Run("defaults to adjacent when nothing exists", func(t *testing.T) {
		got := config.ResolveLedgerPath("", exeDir, cwd, existsNone)
		assert.Equal(t, adjacent, got)
	})
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("ledger: /data/sprints/ledger.tsv\n"), 0o644))

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/sprints/ledger.tsv", cfg.Ledger)
}

func TestLoadFileMissingIsZero(t *testing.T) {
	cfg, err := config.LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Empty(t, cfg.Ledger)
}

func TestLoadFileMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("ledger: [unclosed\n"), 0o644))

	_, err := config.LoadFile(path)
	require.Error(t, err)
}
