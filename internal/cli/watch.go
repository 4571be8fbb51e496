package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"path/filepath"
	"regexp"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// companionFileRe matches companion document filenames the watcher
// reacts to. Everything else (the ledger itself, editor temp files) is
// ignored.
var companionFileRe = regexp.MustCompile(`^SPRINT-\d+\.md$`)

// debounceWindow coalesces the event bursts editors produce for a
// single save into one sync pass.
const debounceWindow = 250 * time.Millisecond

// NewWatchCommand creates the watch command.
func NewWatchCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Re-run sync whenever a companion document changes",
		Long: `Watch the ledger's directory and re-run sync each time a
SPRINT-<id>.md file is created, modified or renamed. The same
single-writer assumption as every other command applies: run one
watcher at a time. Stop with Ctrl-C.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newFormatter(rootOpts, cmd.OutOrStdout())
			led, err := openLedger(rootOpts)
			if err != nil {
				return out.FormatError(err)
			}
			dir := filepath.Dir(led.Path())

			parentCtx := cmd.Context()
			if parentCtx == nil {
				parentCtx = context.Background()
			}
			ctx, stop := signal.NotifyContext(parentCtx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return watchDocs(ctx, rootOpts, out, dir)
		},
	}
}

// watchDocs blocks until ctx is done, re-running sync whenever a
// companion document changes. Each pass loads a fresh ledger so
// out-of-band edits to the backing file are picked up too.
func watchDocs(ctx context.Context, rootOpts *RootOptions, out *OutputFormatter, dir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	slog.Info("watching for companion document changes", "dir", dir)

	// Run one pass up front so the ledger starts in sync.
	if err := syncOnce(rootOpts, out); err != nil {
		return err
	}

	var pending *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			slog.Info("watch stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !companionFileRe.MatchString(filepath.Base(event.Name)) {
				slog.Debug("ignoring event", "file", event.Name, "op", event.Op)
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			slog.Debug("companion document changed", "file", event.Name, "op", event.Op)
			if pending == nil {
				pending = time.NewTimer(debounceWindow)
				fire = pending.C
			} else {
				pending.Reset(debounceWindow)
			}

		case <-fire:
			pending = nil
			fire = nil
			if err := syncOnce(rootOpts, out); err != nil {
				return err
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("watch error", "error", err)
		}
	}
}

// syncOnce loads a fresh ledger and runs one sync pass.
func syncOnce(rootOpts *RootOptions, out *OutputFormatter) error {
	led, err := openLedger(rootOpts)
	if err != nil {
		return out.FormatError(err)
	}
	text, view, err := runSync(led)
	if err != nil {
		return out.FormatError(err)
	}
	return out.Emit(text, view)
}
