package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"motionsplit/internal/scheme"
	"motionsplit/internal/services/exiftool"
)

func newInspectCommand(cmdCtx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file> [...]",
		Short: "Report detected embedding schemes without modifying anything",
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

			rows := make([][]string, 0, len(args))
			for _, path := range args {
				facts, err := metadata.Facts(cmd.Context(), path)
				if err != nil {
					return fmt.Errorf("inspect %s: %w", path, err)
				}
				job, ok := scheme.Classify(path, facts)
				if !ok {
					rows = append(rows, []string{path, "-", "not a motion photo", ""})
					continue
				}
				offset := ""
				if job.HasFooterOffset {
					offset = strconv.FormatInt(job.FooterOffset, 10)
				}
				rows = append(rows, []string{path, kindLabel(job.Kind), factSummary(facts), offset})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"File", "Scheme", "Detected facts", "Footer offset"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight},
			))
			return nil
		},
	}
}

func factSummary(facts []scheme.Fact) string {
	labels := make([]string, 0, len(facts))
	for _, fact := range facts {
		labels = append(labels, kindLabel(fact.Kind))
	}
	return strings.Join(labels, ", ")
}

var labelCaser = cases.Title(language.Und)

// kindLabel renders a scheme kind for humans, e.g. "Google Box Scan".
func kindLabel(kind scheme.Kind) string {
	if kind == "" {
		return "-"
	}
	return labelCaser.String(strings.ReplaceAll(string(kind), "_", " "))
}
