package search

import (
	"context"
	"fmt"

	"github.com/meilisearch/meilisearch-go"
	"github.com/rs/zerolog"
)

const primaryKey = "id"

var (
	searchableAttributes = []string{"name", "genericName", "description", "company", "category"}
	sortableAttributes   = []string{"price", "name", "createdAt"}
)

// meiliIndexer implements Indexer on Meilisearch.
type meiliIndexer struct {
	client meilisearch.ServiceManager
	uid    string
	logger zerolog.Logger
}

// NewMeiliIndexer creates an Indexer writing to the Meilisearch index uid.
func NewMeiliIndexer(url, apiKey, uid string, logger zerolog.Logger) Indexer {
	return &meiliIndexer{
		client: meilisearch.New(url, meilisearch.WithAPIKey(apiKey)),
		uid:    uid,
		logger: logger.With().Str("component", "meili-indexer").Str("index", uid).Logger(),
	}
}

// EnsureIndex creates the index and configures its attributes. Creating an
// index that already exists fails asynchronously on the server and is
// harmless.
func (m *meiliIndexer) EnsureIndex(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := m.client.CreateIndex(&meilisearch.IndexConfig{Uid: m.uid, PrimaryKey: primaryKey}); err != nil {
		m.logger.Error().Err(err).Msg("failed to create search index")
		return fmt.Errorf("failed to create search index %s: %w", m.uid, err)
	}

	index := m.client.Index(m.uid)

	searchable := searchableAttributes
	if _, err := index.UpdateSearchableAttributes(&searchable); err != nil {
		return fmt.Errorf("failed to update searchable attributes: %w", err)
	}

	sortable := sortableAttributes
	if _, err := index.UpdateSortableAttributes(&sortable); err != nil {
		return fmt.Errorf("failed to update sortable attributes: %w", err)
	}

	m.logger.Info().Msg("search index configured")
	return nil
}

// Index enqueues one document addition task for docs.
func (m *meiliIndexer) Index(ctx context.Context, docs []Document) error {
	if len(docs) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	task, err := m.client.Index(m.uid).AddDocuments(docs, nil)
	if err != nil {
		m.logger.Error().Err(err).Int("documents", len(docs)).Msg("failed to add documents")
		return fmt.Errorf("failed to add %d documents to %s: %w", len(docs), m.uid, err)
	}

	m.logger.Debug().
		Int("documents", len(docs)).
		Int64("task_uid", task.TaskUID).
		Msg("documents enqueued")

	return nil
}
