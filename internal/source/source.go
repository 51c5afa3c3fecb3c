// Package source reads the raw drug dataset that feeds the catalog import.
//
// Two layouts are supported: the original SQLite database with its
// generics and medicines tables, and gzipped JSON-lines snapshots that can
// be served from the local file system or from S3.
package source

import (
	"context"
	"fmt"
	"io"

	"pharmazen/internal/config"
	"pharmazen/internal/model"

	"github.com/rs/zerolog"
)

// Snapshot object names, relative to a snapshot directory or S3 prefix.
const (
	GenericsSnapshot  = "generics.jsonl.gz"
	MedicinesSnapshot = "medicines.jsonl.gz"
)

// Reader defines read access to the raw generics and medicines records.
type Reader interface {
	// ListGenerics returns every generic record of the dataset.
	ListGenerics(ctx context.Context) ([]model.SourceGeneric, error)

	// ListMedicines returns every medicine record of the dataset.
	ListMedicines(ctx context.Context) ([]model.SourceMedicine, error)

	// Close releases resources held by the reader.
	Close() error
}

// Fetcher opens a named snapshot object.
type Fetcher interface {
	// Fetch returns the raw (still compressed) contents of the named object.
	Fetch(ctx context.Context, name string) (io.ReadCloser, error)
}

// New builds the Reader selected by the configuration.
func New(ctx context.Context, src config.SourceConfig, s3cfg config.S3Config, logger zerolog.Logger) (Reader, error) {
	switch src.Kind {
	case config.SourceKindSQLite:
		return NewSQLiteReader(ctx, src.SQLitePath, logger)
	case config.SourceKindSnapshot:
		var remote Fetcher
		remoteEnabled := s3cfg.Enabled
		if remoteEnabled {
			f, err := NewS3Fetcher(ctx, s3cfg.Bucket, s3cfg.Region, logger)
			if err != nil {
				logger.Warn().
					Err(err).
					Msg("failed to initialise S3 fetcher, falling back to local snapshots only")
				remoteEnabled = false
			} else {
				remote = f
			}
		}
		local := NewFileFetcher(src.SnapshotDir, logger)
		fetcher := NewFallbackFetcher(remote, local, s3cfg.Prefix, remoteEnabled, logger)
		return NewSnapshotReader(fetcher, logger), nil
	default:
		return nil, fmt.Errorf("unsupported source kind %q", src.Kind)
	}
}
