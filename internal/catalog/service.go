package catalog

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/alorahq/marketplace/internal/redisx"
)

// Service wraps the listing store with a short-lived redis cache for the
// recent feed. Redis is optional; reads fall through to the store.
type Service struct {
	Store Store
	Redis *redis.Client
}

func (s *Service) Recent(ctx context.Context) ([]Product, error) {
	if s.Redis != nil {
		if raw, err := s.Redis.Get(ctx, redisx.KeyRecentListings).Result(); err == nil && raw != "" {
			var cached []Product
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return cached, nil
			}
		}
	}

	products, err := s.Store.Recent(ctx, RecentLimit)
	if err != nil {
		return nil, err
	}
	if s.Redis != nil {
		if b, err := json.Marshal(products); err == nil {
			_ = s.Redis.Set(ctx, redisx.KeyRecentListings, b, redisx.TTLRecentListings).Err()
		}
	}
	return products, nil
}

func (s *Service) Search(ctx context.Context, term string) ([]Product, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, ErrEmptyQuery
	}
	return s.Store.Search(ctx, term)
}

func (s *Service) Get(ctx context.Context, id int64) (*Product, error) {
	if id <= 0 {
		return nil, ErrNotFound
	}
	return s.Store.GetByID(ctx, id)
}

func (s *Service) ListBySeller(ctx context.Context, sellerID int64) ([]Product, error) {
	return s.Store.ListBySeller(ctx, sellerID)
}

func (s *Service) Publish(ctx context.Context, in PublishInput) (int64, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if in.SellerID <= 0 || in.Name == "" || in.Description == "" || in.Price <= 0 || in.Stock < 0 {
		return 0, ErrMissingFields
	}
	if len(in.Images) > MaxImages {
		return 0, ErrTooManyImages
	}

	id, err := s.Store.Create(ctx, &Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		Images:      in.Images,
		SellerID:    in.SellerID,
	})
	if err != nil {
		return 0, err
	}
	s.dropRecentCache(ctx)
	return id, nil
}

func (s *Service) Delete(ctx context.Context, id, sellerID int64) error {
	if id <= 0 {
		return ErrNotFound
	}
	if err := s.Store.Delete(ctx, id, sellerID); err != nil {
		return err
	}
	s.dropRecentCache(ctx)
	return nil
}

func (s *Service) dropRecentCache(ctx context.Context) {
	if s.Redis != nil {
		_ = s.Redis.Del(ctx, redisx.KeyRecentListings).Err()
	}
}
