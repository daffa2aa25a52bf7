package pipeline

import (
	"context"

	"motionsplit/internal/logging"
)

// ProcessAll runs the split workflow over every path in order. A failure on
// one file never stops the batch; cancellation does.
func (p *Processor) ProcessAll(ctx context.Context, paths []string) []Result {
	results := make([]Result, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			p.logger.Warn("batch interrupted",
				logging.Int("remaining", len(paths)-len(results)),
				logging.Error(err))
			break
		}
		results = append(results, p.Process(ctx, path))
	}
	summary := Summarize(results)
	p.logger.Info("batch finished",
		logging.Int("total", summary.Total),
		logging.Int("split", summary.Split),
		logging.Int("skipped", summary.Skipped),
		logging.Int("flagged", summary.Flagged),
		logging.Int("failed", summary.Failed))
	return results
}
