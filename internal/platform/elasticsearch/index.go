package elasticsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/elastic/go-elasticsearch/v8/esutil"
	"go.uber.org/zap"
)

// CreateIndexIfNotExists creates index with the given mapping body unless it
// already exists.
func CreateIndexIfNotExists(ctx context.Context, client *ESClientWrapper, index string, mapping map[string]interface{}, logger *zap.Logger) error {
	log := logger.Named("elasticsearch_index_setup").With(zap.String("index_name", index))

	req := esapi.IndicesExistsRequest{
		Index: []string{index},
	}
	res, err := req.Do(ctx, client.Client)
	if err != nil {
		log.Error("Error checking if index exists", zap.Error(err))
		return fmt.Errorf("error checking if index %s exists: %w", index, err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		log.Info("Index already exists")
		return nil
	}
	if res.StatusCode != http.StatusNotFound {
		log.Error("Error checking if index exists, unexpected status", zap.String("status", res.Status()))
		return fmt.Errorf("error checking if index %s exists: status %s", index, res.Status())
	}

	createReq := esapi.IndicesCreateRequest{
		Index: index,
		Body:  esutil.NewJSONReader(mapping),
	}
	createRes, err := createReq.Do(ctx, client.Client)
	if err != nil {
		log.Error("Error creating index", zap.Error(err))
		return fmt.Errorf("error creating index %s: %w", index, err)
	}
	defer createRes.Body.Close()

	if createRes.IsError() {
		var errorBody map[string]interface{}
		if err := json.NewDecoder(createRes.Body).Decode(&errorBody); err != nil {
			log.Error("Failed to parse index creation error response body", zap.Error(err), zap.String("status", createRes.Status()))
		} else {
			log.Error("Failed to create index", zap.String("status", createRes.Status()), zap.Any("error_details", errorBody))
		}
		return fmt.Errorf("failed to create index %s: status %s", index, createRes.Status())
	}

	log.Info("Index created successfully")
	return nil
}
