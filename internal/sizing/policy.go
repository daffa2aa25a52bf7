package sizing

import (
	"fmt"
	"math"
)

// Outcome classifies a post-encode size comparison.
type Outcome string

const (
	// OutcomeAccepted means the transcode met the configured savings target.
	OutcomeAccepted Outcome = "accepted"
	// OutcomeInsufficientSavings means the transcode fell short of the target
	// minus the margin. The file is still usable; an operator should know.
	OutcomeInsufficientSavings Outcome = "insufficient_savings"
)

// Policy holds the configured savings target and the tolerated shortfall.
type Policy struct {
	TargetSavingsPercent int
	SavingsMarginPercent int
}

// Verdict is the result of evaluating a finished transcode.
type Verdict struct {
	SourceSize   int64
	TargetSize   int64
	SavedPercent float64
	Outcome      Outcome
}

// MaxBitrate returns the bitrate cap handed to the transcoder: the source
// bitrate reduced by the target savings percentage.
func (p Policy) MaxBitrate(sourceBitrate int64) int64 {
	if sourceBitrate <= 0 {
		return 0
	}
	factor := 1 - float64(p.TargetSavingsPercent)/100
	return int64(math.Round(float64(sourceBitrate) * factor))
}

// Evaluate compares the original and transcoded sizes against the policy.
// Savings below target minus margin are flagged, never failed.
func (p Policy) Evaluate(sourceSize, targetSize int64) Verdict {
	verdict := Verdict{
		SourceSize: sourceSize,
		TargetSize: targetSize,
		Outcome:    OutcomeAccepted,
	}
	if sourceSize <= 0 {
		return verdict
	}
	saved := 100 - 100*float64(targetSize)/float64(sourceSize)
	verdict.SavedPercent = math.Round(saved*100) / 100
	if verdict.SavedPercent < float64(p.TargetSavingsPercent-p.SavingsMarginPercent) {
		verdict.Outcome = OutcomeInsufficientSavings
	}
	return verdict
}

// String renders the verdict for log lines and the batch summary.
func (v Verdict) String() string {
	return fmt.Sprintf("%s (saved %.2f%%)", v.Outcome, v.SavedPercent)
}
