package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/open-technology-foundation/deltags/internal/core/domain"
	"github.com/open-technology-foundation/deltags/internal/core/ports/driving"
	"github.com/open-technology-foundation/deltags/internal/logger"
)

// runWatch runs the pipeline once, then re-runs it on every change to the
// input file until the context is cancelled. A failing re-run is reported
// on stderr and watching continues; the previous output stays in place.
func runWatch(cmd *cobra.Command, inputPath string, req driving.Request) error {
	if inputPath == "" {
		return fmt.Errorf("watch mode needs an input file: %w", domain.ErrInvalidInput)
	}
	if outputPath == "" {
		return fmt.Errorf("watch mode needs --output: %w", domain.ErrInvalidInput)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors replace files on save, which would
	// silently drop a watch held on the file itself.
	dir := filepath.Dir(inputPath)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	run := func() {
		if err := runOnce(cmd, inputPath, req); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "deltags: %v\n", err)
		}
	}
	run()

	ctx := cmd.Context()
	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != filepath.Clean(inputPath) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debug("Input changed (%s), re-running", ev.Op)
			run()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}
