package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/jlfreif/storybook/internal/book"
	"github.com/jlfreif/storybook/internal/report"
)

// debounceWindow coalesces editor save bursts into one validation run.
const debounceWindow = 250 * time.Millisecond

// runValidateWatch runs validation, then re-runs it whenever a document
// under the project changes, until interrupted. The returned exit code
// reflects the last completed run.
func runValidateWatch(cmd *cobra.Command, cfg book.Config, printer *report.Printer) int {
	logger := createLogger(cmd)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		printer.Error("failed to start watcher: " + err.Error())
		return 1
	}
	defer watcher.Close()

	// The characters and pages directories plus the directory holding
	// world.yaml. Missing directories are tolerated; the validation run
	// itself reports them.
	for _, dir := range []string{cfg.CharactersDir, cfg.PagesDir, filepath.Dir(cfg.WorldFile)} {
		if err := watcher.Add(dir); err != nil {
			logger.Warn("not watching directory", "dir", dir, "err", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	passed := runValidate(cfg, printer)
	logger.Info("watching for changes")

	debounce := time.NewTimer(debounceWindow)
	if !debounce.Stop() {
		<-debounce.C
	}

	for {
		select {
		case <-ctx.Done():
			return boolToExit(passed)

		case ev, ok := <-watcher.Events:
			if !ok {
				return boolToExit(passed)
			}
			if !isRelevantEvent(ev) {
				continue
			}
			logger.Debug("document changed", "file", ev.Name, "op", ev.Op.String())
			debounce.Reset(debounceWindow)

		case err, ok := <-watcher.Errors:
			if !ok {
				return boolToExit(passed)
			}
			logger.Warn("watch error", "err", err)

		case <-debounce.C:
			passed = runValidate(cfg, printer)
		}
	}
}

func isRelevantEvent(ev fsnotify.Event) bool {
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	return strings.HasSuffix(ev.Name, ".yaml")
}

func boolToExit(passed bool) int {
	if passed {
		return 0
	}
	return 1
}
