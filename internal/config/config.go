// Package config resolves where the sprint ledger file lives.
//
// Resolution is a pure function over candidate locations; the chosen
// path is handed to the ledger constructor explicitly, so nothing else
// in the program consults the filesystem layout.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// LedgerFileName is the conventional name of the backing file.
	LedgerFileName = "ledger.tsv"

	// ConfigFileName is the optional per-project config file, looked up
	// in the current working directory.
	ConfigFileName = ".sprints.yaml"
)

// DocsSubdir is the conventional ledger location under a project root.
var DocsSubdir = filepath.Join("docs", "sprints")

// Config is the optional on-disk configuration.
type Config struct {
	// Ledger overrides the ledger file path when set.
	Ledger string `yaml:"ledger"`
}

// LoadFile reads a config file. A missing file yields a zero Config.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ResolveLedgerPath picks the ledger location. Pure function: all
// filesystem state comes in through the exists predicate.
//
// Precedence:
//  1. explicit (flag or config file value), when non-empty;
//  2. ledger.tsv next to the installed executable, when it exists;
//  3. docs/sprints/ledger.tsv under the working directory, when it exists;
//  4. default to the executable-adjacent location, created on first save.
func ResolveLedgerPath(explicit, exeDir, cwd string, exists func(string) bool) string {
	if explicit != "" {
		return explicit
	}
	adjacent := filepath.Join(exeDir, LedgerFileName)
	if exists(adjacent) {
		return adjacent
	}
	conventional := filepath.Join(cwd, DocsSubdir, LedgerFileName)
	if exists(conventional) {
		return conventional
	}
	return adjacent
}

// Resolve applies ResolveLedgerPath to the real process environment:
// the --ledger flag value, the config file in the working directory,
// the executable's directory and the working directory itself.
func Resolve(flagValue string) (string, error) {
	explicit := flagValue
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}

	if explicit == "" {
		cfg, err := LoadFile(filepath.Join(cwd, ConfigFileName))
		if err != nil {
			return "", err
		}
		explicit = cfg.Ledger
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("resolve executable path: %w", err)
	}

	return ResolveLedgerPath(explicit, filepath.Dir(exe), cwd, fileExists), nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
