// Package listing reads directories and produces one characteristics record
// per child entry, degrading gracefully when per-entry metadata is
// unavailable and optionally resolving symbolic link targets concurrently.
package listing

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc/pool"

	"github.com/kpbaks/yazi/pkg/filesystem"
	"github.com/kpbaks/yazi/pkg/identifier"
)

// Entry is a single directory child and its characteristics.
type Entry struct {
	// Name is the base name of the entry.
	Name string
	// Path is the full path of the entry.
	Path string
	// Characteristics is the entry's characteristics record. For symbolic
	// links it describes the link itself unless the listing was performed
	// with symbolic link resolution, in which case it describes the target
	// (with link and orphan status preserved).
	Characteristics filesystem.Characteristics
}

// Options control listing behavior.
type Options struct {
	// IncludeHidden includes entries classified as hidden (or, on Windows,
	// system-protected).
	IncludeHidden bool
	// FollowSymlinks resolves symbolic link targets, recording orphan status
	// for links whose targets can't be resolved.
	FollowSymlinks bool
	// IgnorePatterns are names to omit from the listing. Patterns support
	// doublestar globbing, '!' negation, and trailing-slash directory-only
	// matching.
	IgnorePatterns []string
	// Concurrency bounds the number of simultaneous link target resolutions.
	// A non-positive value selects a default based on available CPUs.
	Concurrency int
	// Logger is the logger for listing events.
	Logger zerolog.Logger
}

// defaultConcurrency computes the link resolution concurrency bound: target
// fetches are I/O bound, so allow more workers than CPUs, within limits.
func defaultConcurrency() int {
	return min(max(runtime.NumCPU()*2, 4), 32)
}

// List reads the directory at root and returns one entry per child, sorted
// by name. Per-entry metadata failures degrade to placeholder records built
// from the child's type rather than failing the listing; only failure to
// read the directory itself is an error.
func List(ctx context.Context, root string, options *Options) ([]Entry, error) {
	// Apply default options.
	if options == nil {
		options = &Options{}
	}
	concurrency := options.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency()
	}

	// Parse ignore patterns.
	ignores, err := newIgnorer(options.IgnorePatterns)
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse ignore patterns")
	}

	// Tag this scan for logging.
	session, err := identifier.New(identifier.PrefixScan)
	if err != nil {
		return nil, errors.Wrap(err, "unable to generate session identifier")
	}
	logger := options.Logger.With().Str("scan", session).Str("root", root).Logger()

	// Read directory contents. The result is already sorted by name.
	start := time.Now()
	children, err := os.ReadDir(root)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read directory")
	}

	// Build one record per child using symbolic-link-preserving construction.
	entries := make([]Entry, 0, len(children))
	infos := make([]os.FileInfo, 0, len(children))
	for _, child := range children {
		// Check for ignored names before paying for metadata.
		if ignores.ignored(child.Name(), child.IsDir()) {
			continue
		}

		// Build the record, degrading to a placeholder when the metadata
		// query fails.
		path := filepath.Join(root, child.Name())
		var characteristics filesystem.Characteristics
		info, err := child.Info()
		if err != nil {
			info = nil
			characteristics = filesystem.CharacteristicsFromType(child.Type())
			logger.Debug().Str("name", child.Name()).Err(err).
				Msg("metadata unavailable, using placeholder")
		} else {
			characteristics = filesystem.NewCharacteristicsNoFollow(path, info)
		}

		// Filter hidden entries.
		if !options.IncludeHidden && characteristics.IsHidden() {
			continue
		}

		entries = append(entries, Entry{
			Name:            child.Name(),
			Path:            path,
			Characteristics: characteristics,
		})
		infos = append(infos, info)
	}

	// Resolve symbolic link targets concurrently if requested. Each
	// resolution is independent and writes only its own slot, so no
	// coordination beyond the pool itself is needed.
	if options.FollowSymlinks {
		resolvers := pool.New().WithMaxGoroutines(concurrency).WithContext(ctx)
		for index := range entries {
			if infos[index] == nil || !entries[index].Characteristics.IsSymbolicLink() {
				continue
			}
			entry := &entries[index]
			info := infos[index]
			resolvers.Go(func(ctx context.Context) error {
				entry.Characteristics = filesystem.NewCharacteristics(ctx, entry.Path, info)
				return nil
			})
		}
		if err := resolvers.Wait(); err != nil {
			return nil, errors.Wrap(err, "link resolution cancelled")
		}
	}

	// Done.
	logger.Debug().Int("entries", len(entries)).
		Dur("elapsed", time.Since(start)).Msg("listing complete")
	return entries, nil
}
