package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"motionsplit/internal/extract"
	"motionsplit/internal/fileutil"
	"motionsplit/internal/scheme"
	"motionsplit/internal/services/exiftool"
)

// extract pulls the embedded clip out without repairing the host or
// re-encoding anything. Useful for verifying a file before a full run.
func newExtractCommand(cmdCtx *commandContext) *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "extract <file> [...]",
		Short: "Extract the embedded video without modifying the photo",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}
			metadata, err := exiftool.New(cfg.Tools.Exiftool, cfg.Tools.MetadataTimeout)
			if err != nil {
				return err
			}

			dir := strings.TrimSpace(outputDir)
			if dir == "" {
				dir = cfg.Paths.OutputDir
			}

			out := cmd.OutOrStdout()
			for _, path := range args {
				clipPath, kind, err := extractClip(cmd.Context(), metadata, path, dir)
				if err != nil {
					return fmt.Errorf("extract %s: %w", path, err)
				}
				if clipPath == "" {
					fmt.Fprintf(out, "%s: no embedded video detected\n", path)
					continue
				}
				fmt.Fprintf(out, "%s: %s -> %s\n", path, kindLabel(kind), clipPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory for extracted clips (defaults to next to each photo)")
	return cmd
}

func extractClip(ctx context.Context, metadata *exiftool.Client, path, outputDir string) (string, scheme.Kind, error) {
	facts, err := metadata.Facts(ctx, path)
	if err != nil {
		return "", "", err
	}
	job, ok := scheme.Classify(path, facts)
	if !ok {
		return "", "", nil
	}

	var payload []byte
	if tag, isTag := exiftool.PayloadTag(job.Kind); isTag {
		payload, err = metadata.ExtractTag(ctx, path, tag)
		if err != nil {
			return "", "", err
		}
	} else {
		buf, err := os.ReadFile(path)
		if err != nil {
			return "", "", err
		}
		rng, err := extract.PayloadRange(job, buf)
		if err != nil {
			return "", "", err
		}
		payload = rng.Slice(buf)
	}

	clipPath := clipOutputPath(path, outputDir)
	if err := fileutil.WriteFileAtomic(clipPath, payload, 0o644); err != nil {
		return "", "", err
	}
	return clipPath, job.Kind, nil
}

func clipOutputPath(sourcePath, outputDir string) string {
	base := filepath.Base(sourcePath)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	dir := filepath.Dir(sourcePath)
	if outputDir != "" {
		dir = outputDir
	}
	return filepath.Join(dir, base+".mp4")
}
