package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/elastic/go-elasticsearch/v8"

	"github.com/malarharish/catalog-api/internal/config"
	"github.com/malarharish/catalog-api/internal/models"
)

// Client indexes products and serves full-text search over the catalog.
type Client struct {
	ES    *elasticsearch.Client
	Index string
}

func NewClient(cfg *config.Config) (*Client, error) {
	esCfg := elasticsearch.Config{
		Addresses: []string{cfg.ES_URL},
		Username:  cfg.ES_USER,
		Password:  cfg.ES_PASSWORD,
	}

	client, err := elasticsearch.NewClient(esCfg)
	if err != nil {
		return nil, fmt.Errorf("elasticsearch client: %w", err)
	}

	res, err := client.Info()
	if err != nil {
		return nil, fmt.Errorf("elasticsearch info: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		log.Printf("Elasticsearch error response: %s", body)
		return nil, fmt.Errorf("elasticsearch error: %s", res.Status())
	}

	return &Client{ES: client, Index: "product"}, nil
}

// IndexProduct upserts a product document keyed by its store id.
func (c *Client) IndexProduct(ctx context.Context, product *models.Product) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(product); err != nil {
		return fmt.Errorf("index encode: %w", err)
	}

	res, err := c.ES.Index(
		c.Index,
		&buf,
		c.ES.Index.WithDocumentID(product.ID.Hex()),
		c.ES.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("index request: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("index error: %s", res.Status())
	}
	return nil
}

func (c *Client) RemoveProduct(ctx context.Context, id string) error {
	res, err := c.ES.Delete(
		c.Index,
		id,
		c.ES.Delete.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("delete error: %s", res.Status())
	}
	return nil
}

func (c *Client) Search(ctx context.Context, query string, from, size int64) (int64, []models.Product, error) {
	body := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":     query,
				"fields":    []string{"name^2", "description", "brand", "category"},
				"fuzziness": "AUTO",
			},
		},
		"from": from,
		"size": size,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return 0, nil, fmt.Errorf("search encode: %w", err)
	}

	res, err := c.ES.Search(
		c.ES.Search.WithContext(ctx),
		c.ES.Search.WithIndex(c.Index),
		c.ES.Search.WithBody(&buf),
	)
	if err != nil {
		return 0, nil, fmt.Errorf("search request: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return 0, nil, fmt.Errorf("search error: %s", res.Status())
	}

	var r struct {
		Hits struct {
			Total struct{ Value int64 } `json:"total"`
			Hits  []struct {
				Source models.Product `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return 0, nil, err
	}

	products := make([]models.Product, len(r.Hits.Hits))
	for i, hit := range r.Hits.Hits {
		products[i] = hit.Source
	}
	return r.Hits.Total.Value, products, nil
}
