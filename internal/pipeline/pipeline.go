package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"reelname/internal/config"
	"reelname/internal/imaging"
	"reelname/internal/logging"
	"reelname/internal/placement"
	"reelname/internal/scan"
	"reelname/internal/services"
	"reelname/internal/titles"
)

// Identifier resolves a movie title from normalized JPEG bytes. The
// production implementation is the anthropic client; tests substitute stubs.
type Identifier interface {
	IdentifyMovie(ctx context.Context, jpegData []byte) (string, error)
}

// Outcome records the result for one inbox photo.
type Outcome struct {
	Source      string
	Title       string
	ArchivePath string
	RenamedPath string
	Duration    time.Duration
	Err         error
}

// Summary aggregates the outcomes of one run.
type Summary struct {
	RunID    string
	Outcomes []Outcome
}

// Processed returns the number of successfully renamed photos.
func (s *Summary) Processed() int {
	count := 0
	for _, outcome := range s.Outcomes {
		if outcome.Err == nil {
			count++
		}
	}
	return count
}

// Failed returns the number of photos that were skipped with an error.
func (s *Summary) Failed() int {
	return len(s.Outcomes) - s.Processed()
}

// Runner drives the sequential per-photo pipeline: normalize, identify,
// derive a title, archive the original, finalize the renamed JPEG.
type Runner struct {
	cfg        *config.Config
	logger     *slog.Logger
	identifier Identifier
	placer     *placement.Placer
}

// NewRunner constructs a Runner for the given configuration and identifier.
func NewRunner(cfg *config.Config, logger *slog.Logger, identifier Identifier) *Runner {
	return &Runner{
		cfg:        cfg,
		logger:     logging.NewComponentLogger(logger, "pipeline"),
		identifier: identifier,
		placer:     placement.New(cfg.Paths.ArchiveDir, cfg.Paths.RenamedDir),
	}
}

// Run processes every photo currently in the inbox, one at a time. Per-photo
// failures are recorded in the summary and logged; only startup conditions
// (missing inbox, lock contention) return an error.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	summary := &Summary{RunID: uuid.NewString()}
	logger := r.logger.With(logging.String(logging.FieldRunID, summary.RunID))

	// Collision checks assume a single process; a second concurrent run
	// would race them.
	lock := flock.New(filepath.Join(r.cfg.Paths.DataDir, "reelname.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("acquire run lock: another reelname run is in progress")
	}
	defer lock.Unlock()

	photos, err := scan.Photos(r.cfg.Paths.InboxDir)
	if err != nil {
		return nil, err
	}
	logger.Info("inbox scanned",
		logging.String("inbox", r.cfg.Paths.InboxDir),
		logging.Int("photos", len(photos)),
	)

	for _, photo := range photos {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		outcome := r.process(ctx, photo)
		summary.Outcomes = append(summary.Outcomes, outcome)
		if outcome.Err != nil {
			logger.Error("photo skipped",
				logging.String(logging.FieldSource, outcome.Source),
				logging.Duration("duration", outcome.Duration),
				logging.Error(outcome.Err),
			)
			continue
		}
		logger.Info("photo renamed",
			logging.String(logging.FieldSource, outcome.Source),
			logging.String(logging.FieldTitle, outcome.Title),
			logging.String("renamed", filepath.Base(outcome.RenamedPath)),
			logging.String("archived", filepath.Base(outcome.ArchivePath)),
			logging.Duration("duration", outcome.Duration),
		)
	}

	logger.Info("run completed",
		logging.Int("processed", summary.Processed()),
		logging.Int("failed", summary.Failed()),
	)
	return summary, nil
}

func (r *Runner) process(ctx context.Context, photo scan.Photo) Outcome {
	started := time.Now()
	outcome := Outcome{Source: photo.Name}

	data, err := os.ReadFile(photo.Path)
	if err != nil {
		outcome.Err = services.Wrap(services.ErrPlacementFailed, "process", "read source", "", err)
		outcome.Duration = time.Since(started)
		return outcome
	}

	normalized, err := imaging.Normalize(data)
	if err != nil {
		outcome.Err = err
		outcome.Duration = time.Since(started)
		return outcome
	}

	raw, err := r.identifier.IdentifyMovie(ctx, normalized.Data)
	if err != nil {
		outcome.Err = services.Wrap(services.ErrRecognitionFailed, "identify", "request title", "", err)
		outcome.Duration = time.Since(started)
		return outcome
	}
	outcome.Title = titles.Derive(raw)

	// Archive before finalize: the input is removed only once both outputs
	// exist.
	archivePath, err := r.placer.Archive(photo.Path, outcome.Title)
	if err != nil {
		outcome.Err = err
		outcome.Duration = time.Since(started)
		return outcome
	}
	outcome.ArchivePath = archivePath

	renamedPath, err := r.placer.Finalize(normalized.Data, outcome.Title, photo.Path)
	if err != nil {
		outcome.Err = err
		outcome.Duration = time.Since(started)
		return outcome
	}
	outcome.RenamedPath = renamedPath
	outcome.Duration = time.Since(started)
	return outcome
}
