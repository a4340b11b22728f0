package gen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

const (
	lockFilename  = ".multikey.lock"
	lockRetry     = 50 * time.Millisecond
	lockWaitLimit = 10 * time.Second
)

// ErrOutputLocked is returned when another run holds the output directory lock.
var ErrOutputLocked = errors.New("output directory is locked by another run")

// WriteStats counts what WriteFiles did.
type WriteStats struct {
	Written   int
	Unchanged int
}

// WriteFiles writes all generated files to the output directory.
// It creates the directory if it doesn't exist, holds an exclusive lock on it
// for the duration of the write, and leaves files whose content is already
// identical untouched.
func WriteFiles(ctx context.Context, files []GeneratedFile, outputDir string) (WriteStats, error) {
	var stats WriteStats

	// Create output directory if it doesn't exist
	err := os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return stats, fmt.Errorf("creating output directory: %w", err)
	}

	lockCtx, cancel := context.WithTimeout(ctx, lockWaitLimit)
	defer cancel()

	lock := flock.New(filepath.Join(outputDir, lockFilename))

	locked, err := lock.TryLockContext(lockCtx, lockRetry)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return stats, fmt.Errorf("locking output directory: %w", err)
	}

	if !locked {
		return stats, fmt.Errorf("%w: %s", ErrOutputLocked, outputDir)
	}

	defer func() { _ = lock.Unlock() }()

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		existing, err := os.ReadFile(outputPath)
		if err == nil && bytes.Equal(existing, file.Content) {
			stats.Unchanged++
			continue
		}

		err = os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return stats, fmt.Errorf("writing file %s: %w", file.Filename, err)
		}

		stats.Written++
	}

	return stats, nil
}
