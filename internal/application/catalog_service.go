package application

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/designershaven/marketplace-api/internal/domain/entity"
	repo "github.com/designershaven/marketplace-api/internal/domain/repository"
)

// CatalogService manages product listings and their search index.
type CatalogService struct {
	Products        repo.ProductRepository
	Logger          *logrus.Logger
	ES              *elasticsearch.Client
	ESProductsIndex string
}

func NewCatalogService(products repo.ProductRepository, logger *logrus.Logger, es *elasticsearch.Client, esProductsIndex string) *CatalogService {
	return &CatalogService{
		Products:        products,
		Logger:          logger,
		ES:              es,
		ESProductsIndex: esProductsIndex,
	}
}

type CreateProductInput struct {
	Title       string
	Description string
	PriceCents  int64
	ImageURL    string
}

func (s *CatalogService) CreateProduct(ctx context.Context, ownerEmail string, in CreateProductInput) (*entity.Product, error) {
	p := &entity.Product{
		OwnerEmail:  ownerEmail,
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		PriceCents:  in.PriceCents,
		ImageURL:    in.ImageURL,
	}
	if err := s.Products.Create(p); err != nil {
		return nil, err
	}
	// Search indexing is best-effort, same as notification fan-out.
	_ = s.indexProduct(ctx, p)
	return p, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	p, err := s.Products.GetByID(id)
	if err != nil || p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (s *CatalogService) ListProducts(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	return s.Products.List(limit, offset)
}

func (s *CatalogService) indexProduct(ctx context.Context, p *entity.Product) error {
	if s.ES == nil || s.ESProductsIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":          p.ID,
		"owner_email": p.OwnerEmail,
		"title":       p.Title,
		"description": p.Description,
		"price_cents": p.PriceCents,
		"created_at":  p.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESProductsIndex, DocumentID: p.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("product_id", p.ID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("product_id", p.ID).Warn("es index response error")
	}
	return nil
}

// SearchProducts performs a multi_match search on title and description.
func (s *CatalogService) SearchProducts(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESProductsIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "description"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(s.ES.Search.WithContext(c), s.ES.Search.WithIndex(s.ESProductsIndex), s.ES.Search.WithBody(strings.NewReader(string(b))))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = res.Body.Close()
	}()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}

	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}

	return out, nil
}
