package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"motionsplit/internal/logging"
	"motionsplit/internal/media/ffprobe"
	"motionsplit/internal/pipeline"
	"motionsplit/internal/services/exiftool"
	"motionsplit/internal/services/ffmpeg"
)

func newProcessCommand(cmdCtx *commandContext) *cobra.Command {
	var loopFlag bool
	var keepClipFlag bool

	cmd := &cobra.Command{
		Use:   "process <file-or-directory> [...]",
		Short: "Split motion photos and re-encode the extracted clips",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("loop") {
				cfg.Encode.LoopRendition = loopFlag
			}
			if cmd.Flags().Changed("keep-clip") {
				cfg.Encode.KeepOriginalClip = keepClipFlag
			}

			paths, err := collectCandidates(args)
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No candidate image files found")
				return nil
			}

			// Concurrent runs would race on host rewrites and backups.
			lock := flock.New(filepath.Join(cfg.Paths.LogDir, "motionsplit.lock"))
			ok, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire run lock: %w", err)
			}
			if !ok {
				return errors.New("another motionsplit run is already in progress")
			}
			defer func() { _ = lock.Unlock() }()

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("configure logging: %w", err)
			}

			metadata, err := exiftool.New(cfg.Tools.Exiftool, cfg.Tools.MetadataTimeout)
			if err != nil {
				return err
			}
			prober, err := ffprobe.New(cfg.Tools.FFprobe)
			if err != nil {
				return err
			}
			transcoder, err := ffmpeg.New(cfg.Tools.FFmpeg, cfg.Tools.EncodeTimeout)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			proc := pipeline.NewProcessor(cfg, logger, metadata, prober, transcoder)
			results := proc.ProcessAll(ctx, paths)

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			for _, result := range results {
				fmt.Fprintln(out, renderResultLine(result, colorize))
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, renderResultsTable(results))
			fmt.Fprintln(out)
			fmt.Fprintln(out, renderSummaryLine(pipeline.Summarize(results)))

			if err := ctx.Err(); err != nil {
				return err
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&loopFlag, "loop", false, "Also produce a boomerang loop rendition")
	cmd.Flags().BoolVar(&keepClipFlag, "keep-clip", false, "Keep the raw extracted clip next to the re-encoded one")
	return cmd
}

var candidateExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
}

// collectCandidates expands the argument list into an ordered, de-duplicated
// set of image files. Directories are walked recursively.
func collectCandidates(args []string) ([]string, error) {
	seen := make(map[string]struct{})
	var paths []string

	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		paths = append(paths, path)
	}

	for _, arg := range args {
		arg = strings.TrimSpace(arg)
		if arg == "" {
			continue
		}
		abs, err := filepath.Abs(arg)
		if err != nil {
			return nil, fmt.Errorf("resolve %q: %w", arg, err)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("stat %q: %w", arg, err)
		}
		if !info.IsDir() {
			add(abs)
			continue
		}
		err = filepath.WalkDir(abs, func(path string, entry fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if entry.IsDir() {
				return nil
			}
			ext := strings.ToLower(filepath.Ext(entry.Name()))
			if _, ok := candidateExtensions[ext]; ok {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %q: %w", arg, err)
		}
	}

	sort.Strings(paths)
	return paths, nil
}

// renderResultsTable lists one row per processed file.
func renderResultsTable(results []pipeline.Result) string {
	rows := make([][]string, 0, len(results))
	for _, result := range results {
		saved := ""
		if result.Outcome == pipeline.OutcomeSplit || result.Outcome == pipeline.OutcomeFlagged {
			if result.Savings.SourceSize > 0 {
				saved = fmt.Sprintf("%.2f%%", result.Savings.SavedPercent)
			}
		}
		rows = append(rows, []string{
			filepath.Base(result.SourcePath),
			kindLabel(result.Scheme),
			string(result.Outcome),
			saved,
			result.Message,
		})
	}
	return renderTable(
		[]string{"File", "Scheme", "Outcome", "Saved", "Notes"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
	)
}

func renderSummaryLine(summary pipeline.Summary) string {
	return fmt.Sprintf("%d processed: %d split, %d skipped, %d flagged, %d failed",
		summary.Total, summary.Split, summary.Skipped, summary.Flagged, summary.Failed)
}

func renderResultLine(result pipeline.Result, colorize bool) string {
	kind := statusInfo
	message := result.Message
	switch result.Outcome {
	case pipeline.OutcomeSplit:
		kind = statusOK
		message = fmt.Sprintf("%s -> %s", kindLabel(result.Scheme), filepath.Base(result.VideoPath))
	case pipeline.OutcomeFlagged:
		kind = statusWarn
	case pipeline.OutcomeFailed:
		kind = statusError
	}
	return renderStatusLine(filepath.Base(result.SourcePath), kind, message, colorize)
}
