package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"motionsplit/internal/config"
	"motionsplit/internal/extract"
	"motionsplit/internal/fileutil"
	"motionsplit/internal/logging"
	"motionsplit/internal/repair"
	"motionsplit/internal/scheme"
	"motionsplit/internal/services"
	"motionsplit/internal/services/exiftool"
	"motionsplit/internal/sizing"
)

// Processor runs the split workflow for one file at a time.
type Processor struct {
	cfg        *config.Config
	logger     *slog.Logger
	metadata   Metadata
	prober     Prober
	transcoder Transcoder
	policy     sizing.Policy

	runID      string
	backupRoot string
}

// NewProcessor constructs a processor for one batch run. Backups for the run
// land under a per-run directory so reruns never clobber earlier copies.
func NewProcessor(cfg *config.Config, logger *slog.Logger, metadata Metadata, prober Prober, transcoder Transcoder) *Processor {
	if logger == nil {
		logger = logging.NewNop()
	}
	runID := uuid.NewString()
	return &Processor{
		cfg:        cfg,
		logger:     logger.With(logging.String("run_id", runID)),
		metadata:   metadata,
		prober:     prober,
		transcoder: transcoder,
		policy: sizing.Policy{
			TargetSavingsPercent: cfg.Encode.TargetSavingsPercent,
			SavingsMarginPercent: cfg.Encode.SavingsMarginPercent,
		},
		runID:      runID,
		backupRoot: filepath.Join(cfg.Paths.BackupDir, runID),
	}
}

// RunID identifies this batch run in logs and backup paths.
func (p *Processor) RunID() string { return p.runID }

// Process splits a single motion photo. All failures are confined to this
// file; the caller decides whether to continue the batch.
func (p *Processor) Process(ctx context.Context, path string) Result {
	start := time.Now()
	result := p.process(ctx, path)
	result.Duration = time.Since(start)
	p.logResult(result)
	return result
}

func (p *Processor) process(ctx context.Context, path string) Result {
	result := Result{SourcePath: path}

	facts, err := p.metadata.Facts(ctx, path)
	if err != nil {
		return failed(result, err)
	}
	job, ok := scheme.Classify(path, facts)
	if !ok {
		// Zero candidates could be "not a motion photo" or corrupted
		// metadata; neither fails the batch.
		result.Outcome = OutcomeSkipped
		result.Message = "no embedded video detected"
		return result
	}
	result.Scheme = job.Kind

	hostBytes, err := os.ReadFile(path)
	if err != nil {
		return failed(result, fmt.Errorf("read host: %w", err))
	}

	payload, err := p.extractPayload(ctx, job, hostBytes)
	if err != nil {
		return failed(result, err)
	}

	backupPath, err := p.backup(path)
	if err != nil {
		return failed(result, err)
	}
	result.BackupPath = backupPath

	rawClip := p.outputPath(path, ".source.mp4")
	if err := fileutil.WriteFileAtomic(rawClip, payload, 0o644); err != nil {
		return failed(result, fmt.Errorf("write extracted clip: %w", err))
	}

	// Mutation of the host begins here; everything above left it untouched.
	if err := p.repairHost(ctx, job, path, hostBytes); err != nil {
		return failed(result, err)
	}

	videoPath := p.outputPath(path, ".mp4")
	verdict, err := p.encodeClip(ctx, rawClip, videoPath)
	if err != nil {
		return failed(result, err)
	}
	result.VideoPath = videoPath
	result.Savings = verdict

	if p.cfg.Encode.LoopRendition {
		loopPath := p.outputPath(path, ".loop.mp4")
		if err := p.transcoder.Loop(ctx, videoPath, loopPath); err != nil {
			return failed(result, err)
		}
		result.LoopPath = loopPath
	}

	if err := p.metadata.CopyTags(ctx, path, videoPath); err != nil {
		return failed(result, err)
	}
	if result.LoopPath != "" {
		if err := p.metadata.CopyTags(ctx, path, result.LoopPath); err != nil {
			return failed(result, err)
		}
	}

	if !p.cfg.Encode.KeepOriginalClip {
		if err := os.Remove(rawClip); err != nil {
			p.logger.Warn("could not remove raw clip", logging.String("path", rawClip), logging.Error(err))
		}
	}

	report, err := p.metadata.Validate(ctx, path)
	if err != nil {
		if services.IsRecoverable(err) {
			result.Outcome = OutcomeFlagged
			result.Message = "still image validation findings: " + report
			return result
		}
		return failed(result, err)
	}

	if verdict.Outcome == sizing.OutcomeInsufficientSavings {
		result.Outcome = OutcomeFlagged
		result.Message = "transcode savings below target: " + verdict.String()
		return result
	}

	result.Outcome = OutcomeSplit
	return result
}

// extractPayload recovers the embedded clip. Tag schemes delegate to the
// metadata tool; the Google schemes resolve a byte range in-process.
func (p *Processor) extractPayload(ctx context.Context, job scheme.Job, hostBytes []byte) ([]byte, error) {
	if tag, ok := exiftool.PayloadTag(job.Kind); ok {
		payload, err := p.metadata.ExtractTag(ctx, job.SourcePath, tag)
		if err != nil {
			return nil, err
		}
		return payload, nil
	}
	rng, err := extract.PayloadRange(job, hostBytes)
	if err != nil {
		return nil, fmt.Errorf("locate payload: %w", err)
	}
	return rng.Slice(hostBytes), nil
}

// repairHost rewrites the host in place (truncation plus corruption repair),
// then has the metadata tool strip stale tags and any remaining trailer.
func (p *Processor) repairHost(ctx context.Context, job scheme.Job, path string, hostBytes []byte) error {
	repaired := repair.Host(job, hostBytes)
	if !bytes.Equal(repaired, hostBytes) {
		if err := fileutil.WriteFileAtomic(path, repaired, 0o644); err != nil {
			return fmt.Errorf("rewrite host: %w", err)
		}
	}
	return p.metadata.StripTrailer(ctx, path)
}

func (p *Processor) encodeClip(ctx context.Context, rawClip, videoPath string) (sizing.Verdict, error) {
	probe, err := p.prober.Inspect(ctx, rawClip)
	if err != nil {
		return sizing.Verdict{}, err
	}
	if !probe.HasVideoStream() {
		return sizing.Verdict{}, services.Wrap(services.ErrValidation, "transcode", "probe", "extracted payload has no video stream", nil)
	}

	maxBitrate := p.policy.MaxBitrate(probe.BitRate())
	if err := p.transcoder.Transcode(ctx, rawClip, videoPath, maxBitrate); err != nil {
		return sizing.Verdict{}, err
	}

	sourceSize := probe.SizeBytes()
	if sourceSize == 0 {
		if info, statErr := os.Stat(rawClip); statErr == nil {
			sourceSize = info.Size()
		}
	}
	info, err := os.Stat(videoPath)
	if err != nil {
		return sizing.Verdict{}, fmt.Errorf("stat transcoded clip: %w", err)
	}
	return p.policy.Evaluate(sourceSize, info.Size()), nil
}

func (p *Processor) backup(path string) (string, error) {
	if err := os.MkdirAll(p.backupRoot, 0o755); err != nil {
		return "", fmt.Errorf("create backup directory: %w", err)
	}
	backupPath := filepath.Join(p.backupRoot, filepath.Base(path))
	if err := fileutil.CopyFileVerified(path, backupPath); err != nil {
		return "", fmt.Errorf("back up host: %w", err)
	}
	return backupPath, nil
}

// outputPath places derived files next to the source, or in the configured
// output directory when one is set.
func (p *Processor) outputPath(sourcePath, suffix string) string {
	base := filepath.Base(sourcePath)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	dir := filepath.Dir(sourcePath)
	if p.cfg.Paths.OutputDir != "" {
		dir = p.cfg.Paths.OutputDir
	}
	return filepath.Join(dir, base+suffix)
}

func (p *Processor) logResult(result Result) {
	attrs := []any{
		logging.String("source", result.SourcePath),
		logging.String("outcome", string(result.Outcome)),
		logging.Duration("duration", result.Duration),
	}
	if result.Scheme != "" {
		attrs = append(attrs, logging.String("scheme", string(result.Scheme)))
	}
	switch result.Outcome {
	case OutcomeSkipped:
		p.logger.Debug("file skipped", attrs...)
	case OutcomeFailed:
		attrs = append(attrs, logging.Error(result.Err))
		p.logger.Error("file failed", attrs...)
	case OutcomeFlagged:
		attrs = append(attrs, logging.String("note", result.Message))
		p.logger.Warn("file split with findings", attrs...)
	default:
		attrs = append(attrs,
			logging.String("video", result.VideoPath),
			logging.Float64("saved_percent", result.Savings.SavedPercent),
		)
		p.logger.Info("file split", attrs...)
	}
}

func failed(result Result, err error) Result {
	result.Outcome = OutcomeFailed
	result.Err = err
	if err != nil {
		result.Message = err.Error()
	}
	return result
}
