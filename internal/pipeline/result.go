package pipeline

import (
	"time"

	"motionsplit/internal/scheme"
	"motionsplit/internal/sizing"
)

// Outcome classifies how processing one file ended.
type Outcome string

const (
	// OutcomeSplit means the file was separated, repaired, and tagged cleanly.
	OutcomeSplit Outcome = "split"
	// OutcomeSkipped means no embedding scheme was detected; not an error.
	OutcomeSkipped Outcome = "skipped"
	// OutcomeFlagged means the split succeeded but an operator should look:
	// insufficient encode savings or validation findings on the still.
	OutcomeFlagged Outcome = "flagged"
	// OutcomeFailed means processing aborted for this file.
	OutcomeFailed Outcome = "failed"
)

// Result captures everything the batch summary and logs need about one file.
type Result struct {
	SourcePath string
	Scheme     scheme.Kind
	Outcome    Outcome
	VideoPath  string
	LoopPath   string
	BackupPath string
	Savings    sizing.Verdict
	Message    string
	Err        error
	Duration   time.Duration
}

// Summary aggregates a batch run.
type Summary struct {
	Total   int
	Split   int
	Skipped int
	Flagged int
	Failed  int
}

// Summarize counts outcomes across results.
func Summarize(results []Result) Summary {
	summary := Summary{Total: len(results)}
	for _, result := range results {
		switch result.Outcome {
		case OutcomeSplit:
			summary.Split++
		case OutcomeSkipped:
			summary.Skipped++
		case OutcomeFlagged:
			summary.Flagged++
		case OutcomeFailed:
			summary.Failed++
		}
	}
	return summary
}
