package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// fileFetcher implements Fetcher over a local snapshot directory.
type fileFetcher struct {
	dir    string
	logger zerolog.Logger
}

// NewFileFetcher creates a Fetcher reading snapshot objects from dir.
func NewFileFetcher(dir string, logger zerolog.Logger) Fetcher {
	return &fileFetcher{
		dir:    dir,
		logger: logger.With().Str("component", "file-fetcher").Logger(),
	}
}

// Fetch opens dir/name.
func (f *fileFetcher) Fetch(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := filepath.Join(f.dir, name)
	f.logger.Info().Str("file", path).Msg("opening snapshot file")

	file, err := os.Open(path)
	if err != nil {
		f.logger.Error().Err(err).Str("file", path).Msg("failed to open snapshot file")
		return nil, fmt.Errorf("failed to open snapshot file %s: %w", path, err)
	}

	return file, nil
}

// fallbackFetcher tries a remote Fetcher first, then the local one.
type fallbackFetcher struct {
	remote        Fetcher
	local         Fetcher
	remotePrefix  string
	remoteEnabled bool
	logger        zerolog.Logger
}

// NewFallbackFetcher creates a Fetcher that tries remote (with prefix prepended
// to the object name) and falls back to local on any remote failure.
// A nil remote or remoteEnabled=false means local only.
func NewFallbackFetcher(remote, local Fetcher, remotePrefix string, remoteEnabled bool, logger zerolog.Logger) Fetcher {
	return &fallbackFetcher{
		remote:        remote,
		local:         local,
		remotePrefix:  remotePrefix,
		remoteEnabled: remoteEnabled,
		logger:        logger.With().Str("component", "fallback-fetcher").Logger(),
	}
}

// Fetch opens the named object from the remote store or the local one.
func (f *fallbackFetcher) Fetch(ctx context.Context, name string) (io.ReadCloser, error) {
	if f.remoteEnabled && f.remote != nil {
		key := f.remotePrefix + name

		body, err := f.remote.Fetch(ctx, key)
		if err == nil {
			f.logger.Info().Str("key", key).Msg("snapshot fetched from remote store")
			return body, nil
		}

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		f.logger.Warn().
			Err(err).
			Str("key", key).
			Msg("failed to fetch from remote store, falling back to local file system")
	} else {
		f.logger.Debug().
			Bool("remote_enabled", f.remoteEnabled).
			Bool("has_remote", f.remote != nil).
			Msg("remote store disabled or not configured, using local file system")
	}

	return f.local.Fetch(ctx, name)
}
