package freelancer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"wedding_directory_backend/internal/config"
	es "wedding_directory_backend/internal/platform/elasticsearch"

	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/elastic/go-elasticsearch/v8/esutil"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxSearchHits matches the default index.max_result_window.
const maxSearchHits = 10000

// ErrTooManyHits is returned by ElasticIndex.Search when the matches do not
// fit in one result window. Callers fall back to the database so results stay
// complete.
var ErrTooManyHits = errors.New("search matched more profiles than one result window holds")

// SearchIndex answers free-text queries over profiles. Failures are reported
// to the caller, which logs them and carries on without the index.
type SearchIndex interface {
	Enabled() bool
	Index(ctx context.Context, f *Freelancer) error
	Delete(ctx context.Context, id uuid.UUID) error
	// Search returns the ids of profiles matching text.
	Search(ctx context.Context, text string) ([]uuid.UUID, error)
}

// NewSearchIndex returns an Elasticsearch-backed index, or a NoopIndex when
// no client is configured.
func NewSearchIndex(client *es.ESClientWrapper, cfg *config.Config, logger *zap.Logger) SearchIndex {
	if client == nil {
		return NoopIndex{}
	}
	return NewElasticIndex(client, cfg.ElasticsearchIndex, logger)
}

// NoopIndex is used when search is not configured.
type NoopIndex struct{}

func (NoopIndex) Enabled() bool                                       { return false }
func (NoopIndex) Index(context.Context, *Freelancer) error            { return nil }
func (NoopIndex) Delete(context.Context, uuid.UUID) error             { return nil }
func (NoopIndex) Search(context.Context, string) ([]uuid.UUID, error) { return nil, nil }

// ElasticIndex stores a searchable projection of each profile.
type ElasticIndex struct {
	client *es.ESClientWrapper
	index  string
	logger *zap.Logger
}

func NewElasticIndex(client *es.ESClientWrapper, index string, logger *zap.Logger) *ElasticIndex {
	return &ElasticIndex{client: client, index: index, logger: logger.Named("freelancer_index")}
}

type portfolioDocument struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type document struct {
	Name        string              `json:"name"`
	Bio         string              `json:"bio"`
	Type        string              `json:"type"`
	Specialized []string            `json:"specialized"`
	Rate        int                 `json:"rate"`
	RateUnit    string              `json:"rate_unit"`
	Portfolios  []portfolioDocument `json:"portfolios"`
	CreatedAt   string              `json:"created_at"`
}

func toDocument(f *Freelancer) document {
	portfolios := make([]portfolioDocument, 0, len(f.Portfolios))
	for _, p := range f.Portfolios {
		portfolios = append(portfolios, portfolioDocument{Title: p.Title, Description: p.Description})
	}
	return document{
		Name:        f.Name,
		Bio:         f.Bio,
		Type:        f.Type,
		Specialized: []string(f.Specialized),
		Rate:        f.Rate,
		RateUnit:    f.RateUnit,
		Portfolios:  portfolios,
		CreatedAt:   f.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

// Mapping is the index definition for profile documents.
func Mapping() map[string]interface{} {
	text := map[string]interface{}{"type": "text"}
	keyword := map[string]interface{}{"type": "keyword"}
	return map[string]interface{}{
		"mappings": map[string]interface{}{
			"properties": map[string]interface{}{
				"name":        text,
				"bio":         text,
				"type":        keyword,
				"specialized": keyword,
				"rate":        map[string]interface{}{"type": "integer"},
				"rate_unit":   keyword,
				"portfolios": map[string]interface{}{
					"properties": map[string]interface{}{
						"title":       text,
						"description": text,
					},
				},
				"created_at": map[string]interface{}{"type": "date"},
			},
		},
	}
}

func (e *ElasticIndex) Enabled() bool { return true }

// EnsureIndex creates the index if it does not exist yet.
func (e *ElasticIndex) EnsureIndex(ctx context.Context) error {
	return es.CreateIndexIfNotExists(ctx, e.client, e.index, Mapping(), e.logger)
}

func (e *ElasticIndex) Index(ctx context.Context, f *Freelancer) error {
	req := esapi.IndexRequest{
		Index:      e.index,
		DocumentID: f.ID.String(),
		Body:       esutil.NewJSONReader(toDocument(f)),
	}
	res, err := req.Do(ctx, e.client.Client)
	if err != nil {
		return fmt.Errorf("index freelancer %s: %w", f.ID, err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("index freelancer %s: status %s", f.ID, res.Status())
	}
	return nil
}

func (e *ElasticIndex) Delete(ctx context.Context, id uuid.UUID) error {
	req := esapi.DeleteRequest{
		Index:      e.index,
		DocumentID: id.String(),
	}
	res, err := req.Do(ctx, e.client.Client)
	if err != nil {
		return fmt.Errorf("delete freelancer %s from index: %w", id, err)
	}
	defer res.Body.Close()
	if res.IsError() && res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("delete freelancer %s from index: status %s", id, res.Status())
	}
	return nil
}

type searchResponse struct {
	Hits struct {
		Total struct {
			Value int64 `json:"value"`
		} `json:"total"`
		Hits []struct {
			ID string `json:"_id"`
		} `json:"hits"`
	} `json:"hits"`
}

func (e *ElasticIndex) Search(ctx context.Context, text string) ([]uuid.UUID, error) {
	body := map[string]interface{}{
		"size":             maxSearchHits,
		"_source":          false,
		"track_total_hits": true,
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":     text,
				"fields":    []string{"name^2", "bio", "portfolios.title", "portfolios.description"},
				"fuzziness": "AUTO",
			},
		},
	}
	res, err := e.client.Search(
		e.client.Search.WithContext(ctx),
		e.client.Search.WithIndex(e.index),
		e.client.Search.WithBody(esutil.NewJSONReader(body)),
	)
	if err != nil {
		return nil, fmt.Errorf("search freelancers: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("search freelancers: status %s", res.Status())
	}

	var parsed searchResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	if parsed.Hits.Total.Value > int64(len(parsed.Hits.Hits)) {
		e.logger.Warn("Search hits exceed result window",
			zap.Int64("total", parsed.Hits.Total.Value),
			zap.Int("returned", len(parsed.Hits.Hits)),
		)
		return nil, ErrTooManyHits
	}
	ids := make([]uuid.UUID, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		id, err := uuid.Parse(hit.ID)
		if err != nil {
			e.logger.Warn("Skipping search hit with malformed id", zap.String("id", hit.ID))
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// SyncStats reports the outcome of a bulk re-index.
type SyncStats struct {
	Indexed uint64
	Failed  uint64
}

// Sync re-indexes every stored profile with a bulk indexer.
func (e *ElasticIndex) Sync(ctx context.Context, repo Repository, batchSize int, refresh bool) (SyncStats, error) {
	cfg := esutil.BulkIndexerConfig{
		Index:  e.index,
		Client: e.client.Client,
		OnError: func(ctx context.Context, err error) {
			e.logger.Error("Bulk indexer error", zap.Error(err))
		},
	}
	if refresh {
		cfg.Refresh = "true"
	}
	indexer, err := esutil.NewBulkIndexer(cfg)
	if err != nil {
		return SyncStats{}, fmt.Errorf("create bulk indexer: %w", err)
	}

	iterErr := repo.FindInBatches(ctx, batchSize, func(batch []Freelancer) error {
		for i := range batch {
			f := &batch[i]
			payload, err := json.Marshal(toDocument(f))
			if err != nil {
				return fmt.Errorf("encode freelancer %s: %w", f.ID, err)
			}
			err = indexer.Add(ctx, esutil.BulkIndexerItem{
				Action:     "index",
				DocumentID: f.ID.String(),
				Body:       bytes.NewReader(payload),
				OnFailure: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
					fields := []zap.Field{zap.String("id", item.DocumentID)}
					if err != nil {
						fields = append(fields, zap.Error(err))
					} else {
						fields = append(fields, zap.String("type", res.Error.Type), zap.String("reason", strings.TrimSpace(res.Error.Reason)))
					}
					e.logger.Error("Failed to index freelancer", fields...)
				},
			})
			if err != nil {
				return fmt.Errorf("queue freelancer %s: %w", f.ID, err)
			}
		}
		return nil
	})

	if err := indexer.Close(ctx); err != nil {
		return SyncStats{}, fmt.Errorf("close bulk indexer: %w", err)
	}
	stats := indexer.Stats()
	result := SyncStats{Indexed: stats.NumIndexed, Failed: stats.NumFailed}
	if iterErr != nil {
		return result, iterErr
	}
	return result, nil
}
