package rubygoals

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/paketo-buildpacks/packit/v2/fs"
)

// ChangeGate remembers the digest of a descriptor file between runs so that
// expensive work can be skipped when the descriptor has not changed.
type ChangeGate struct {
	logger LogEmitter
}

func NewChangeGate(logger LogEmitter) ChangeGate {
	return ChangeGate{
		logger: logger,
	}
}

// Digest returns the lowercase hex SHA-1 of content.
func Digest(content []byte) string {
	sum := sha1.Sum(content)
	return hex.EncodeToString(sum[:])
}

// RecordPath returns the location of the digest record kept for descriptor.
func RecordPath(descriptor, outputDir string) string {
	return filepath.Join(outputDir, filepath.Base(descriptor)+DigestSuffix)
}

// ShouldRun reports whether the work guarded by descriptor has to run. The
// digest record is written at most once per call.
func (g ChangeGate) ShouldRun(descriptor, outputDir string) (bool, error) {
	// without an output directory there is nowhere to keep a record
	if descriptor == "" || outputDir == "" {
		return true, nil
	}

	exists, err := fs.Exists(descriptor)
	if err != nil {
		return false, fmt.Errorf("failed to stat descriptor: %w", err)
	}

	if !exists {
		g.logger.Debug.Subprocess("No descriptor found at %s", descriptor)
		return true, nil
	}

	content, err := os.ReadFile(descriptor)
	if err != nil {
		return false, fmt.Errorf("failed to read descriptor: %w", err)
	}

	digest := Digest(content)
	record := RecordPath(descriptor, outputDir)

	previous, err := os.ReadFile(record)
	switch {
	case err == nil:
		if string(previous) == digest {
			g.logger.Debug.Subprocess("Skipping bundle install since %s did not change since last run", filepath.Base(descriptor))
			return false, nil
		}

		return true, g.write(record, digest)

	case os.IsNotExist(err):
		// only keep a record when there is an output directory to keep it in
		dirExists, err := fs.Exists(filepath.Dir(record))
		if err != nil {
			return false, fmt.Errorf("failed to stat output directory: %w", err)
		}

		if dirExists {
			return true, g.write(record, digest)
		}

		return true, nil

	default:
		return false, fmt.Errorf("failed to read digest record: %w", err)
	}
}

func (g ChangeGate) write(record, digest string) error {
	g.logger.Debug.Subprocess("Writing digest %s to %s", digest, record)

	err := os.WriteFile(record, []byte(digest), 0644)
	if err != nil {
		return fmt.Errorf("failed to write digest record: %w", err)
	}

	return nil
}
