package source

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"pharmazen/internal/model"

	"github.com/rs/zerolog"
)

const cancelCheckInterval = 10_000

// snapshotReader implements Reader over gzipped JSON-lines snapshots.
type snapshotReader struct {
	fetcher Fetcher
	logger  zerolog.Logger
}

// NewSnapshotReader creates a Reader that decodes the generics and medicines
// snapshots obtained from fetcher. Each line holds one JSON record.
func NewSnapshotReader(fetcher Fetcher, logger zerolog.Logger) Reader {
	return &snapshotReader{
		fetcher: fetcher,
		logger:  logger.With().Str("component", "snapshot-source").Logger(),
	}
}

// ListGenerics decodes the generics snapshot.
func (r *snapshotReader) ListGenerics(ctx context.Context) ([]model.SourceGeneric, error) {
	return readSnapshot[model.SourceGeneric](ctx, r.fetcher, GenericsSnapshot, r.logger)
}

// ListMedicines decodes the medicines snapshot.
func (r *snapshotReader) ListMedicines(ctx context.Context) ([]model.SourceMedicine, error) {
	return readSnapshot[model.SourceMedicine](ctx, r.fetcher, MedicinesSnapshot, r.logger)
}

// Close is a no-op; fetched objects are closed after each read.
func (r *snapshotReader) Close() error {
	return nil
}

func readSnapshot[T any](ctx context.Context, fetcher Fetcher, name string, logger zerolog.Logger) ([]T, error) {
	body, err := fetcher.Fetch(ctx, name)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	gzipReader, err := gzip.NewReader(body)
	if err != nil {
		logger.Error().Err(err).Str("snapshot", name).Msg("failed to create gzip reader")
		return nil, fmt.Errorf("failed to create gzip reader for %s: %w", name, err)
	}
	defer gzipReader.Close()

	scanner := bufio.NewScanner(gzipReader)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	records := []T{}
	line := 0
	for scanner.Scan() {
		line++
		if line%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				logger.Warn().Str("snapshot", name).Msg("snapshot decoding cancelled")
				return nil, err
			}
		}

		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}

		var record T
		if err := json.Unmarshal(raw, &record); err != nil {
			logger.Error().Err(err).Str("snapshot", name).Int("line", line).Msg("malformed snapshot record")
			return nil, fmt.Errorf("malformed record in %s at line %d: %w", name, line, err)
		}
		records = append(records, record)
	}

	if err := scanner.Err(); err != nil {
		logger.Error().Err(err).Str("snapshot", name).Msg("error reading snapshot")
		return nil, fmt.Errorf("error reading snapshot %s: %w", name, err)
	}

	logger.Info().
		Str("snapshot", name).
		Int("records", len(records)).
		Msg("snapshot decoded")

	return records, nil
}

// WriteSnapshot writes generics and medicines as gzipped JSON-lines files
// into dir, creating it when needed.
func WriteSnapshot(dir string, generics []model.SourceGeneric, medicines []model.SourceMedicine) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create snapshot directory %s: %w", dir, err)
	}
	if err := writeLines(filepath.Join(dir, GenericsSnapshot), generics); err != nil {
		return err
	}
	return writeLines(filepath.Join(dir, MedicinesSnapshot), medicines)
}

func writeLines[T any](path string, records []T) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot file %s: %w", path, err)
	}
	defer file.Close()

	gzipWriter := gzip.NewWriter(file)
	encoder := json.NewEncoder(gzipWriter)
	for _, record := range records {
		if err := encoder.Encode(record); err != nil {
			return fmt.Errorf("failed to encode record for %s: %w", path, err)
		}
	}

	if err := gzipWriter.Close(); err != nil {
		return fmt.Errorf("failed to finish snapshot file %s: %w", path, err)
	}
	return file.Close()
}
