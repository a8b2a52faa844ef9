package catalog

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeListingStore struct {
	nextID   int64
	products map[int64]*Product

	recentCalls int
}

func newFakeListingStore() *fakeListingStore {
	return &fakeListingStore{products: map[int64]*Product{}}
}

func (s *fakeListingStore) Recent(_ context.Context, limit int) ([]Product, error) {
	s.recentCalls++
	out := make([]Product, 0, limit)
	for _, p := range s.products {
		if len(out) == limit {
			break
		}
		out = append(out, *p)
	}
	return out, nil
}

func (s *fakeListingStore) Search(_ context.Context, term string) ([]Product, error) {
	var out []Product
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(term)) {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *fakeListingStore) GetByID(_ context.Context, id int64) (*Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *fakeListingStore) ListBySeller(_ context.Context, sellerID int64) ([]Product, error) {
	var out []Product
	for _, p := range s.products {
		if p.SellerID == sellerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *fakeListingStore) Create(_ context.Context, p *Product) (int64, error) {
	s.nextID++
	cp := *p
	cp.ID = s.nextID
	s.products[cp.ID] = &cp
	return cp.ID, nil
}

func (s *fakeListingStore) Delete(_ context.Context, id, sellerID int64) error {
	p, ok := s.products[id]
	if !ok || p.SellerID != sellerID {
		return ErrNotFound
	}
	delete(s.products, id)
	return nil
}

func newCatalogService() (*Service, *fakeListingStore) {
	store := newFakeListingStore()
	return &Service{Store: store}, store
}

func publish() PublishInput {
	return PublishInput{
		SellerID:    3,
		Name:        "Desk lamp",
		Description: "Warm white, adjustable arm",
		Price:       19.99,
		Stock:       12,
		Images:      []string{"uploads/aa.jpg", "uploads/bb.jpg"},
	}
}

func TestPublish(t *testing.T) {
	svc, store := newCatalogService()

	id, err := svc.Publish(context.Background(), publish())
	require.NoError(t, err)

	p := store.products[id]
	require.Equal(t, "Desk lamp", p.Name)
	require.Equal(t, int64(3), p.SellerID)
	require.Equal(t, "uploads/aa.jpg", p.MainImage())
}

func TestPublishValidation(t *testing.T) {
	svc, _ := newCatalogService()
	ctx := context.Background()

	in := publish()
	in.Name = "  "
	_, err := svc.Publish(ctx, in)
	require.ErrorIs(t, err, ErrMissingFields)

	in = publish()
	in.Price = 0
	_, err = svc.Publish(ctx, in)
	require.ErrorIs(t, err, ErrMissingFields)

	in = publish()
	in.SellerID = 0
	_, err = svc.Publish(ctx, in)
	require.ErrorIs(t, err, ErrMissingFields)

	in = publish()
	in.Images = []string{"1", "2", "3", "4", "5", "6"}
	_, err = svc.Publish(ctx, in)
	require.ErrorIs(t, err, ErrTooManyImages)
}

func TestSearch(t *testing.T) {
	svc, _ := newCatalogService()
	ctx := context.Background()

	_, err := svc.Publish(ctx, publish())
	require.NoError(t, err)

	found, err := svc.Search(ctx, "lamp")
	require.NoError(t, err)
	require.Len(t, found, 1)

	found, err = svc.Search(ctx, "bicycle")
	require.NoError(t, err)
	require.Empty(t, found)

	_, err = svc.Search(ctx, "   ")
	require.ErrorIs(t, err, ErrEmptyQuery)
}

func TestGet(t *testing.T) {
	svc, _ := newCatalogService()
	ctx := context.Background()

	id, err := svc.Publish(ctx, publish())
	require.NoError(t, err)

	p, err := svc.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, id, p.ID)

	_, err = svc.Get(ctx, 999)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = svc.Get(ctx, 0)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteChecksOwnership(t *testing.T) {
	svc, store := newCatalogService()
	ctx := context.Background()

	id, err := svc.Publish(ctx, publish())
	require.NoError(t, err)

	// someone else's listing
	require.ErrorIs(t, svc.Delete(ctx, id, 99), ErrNotFound)
	require.Contains(t, store.products, id)

	require.NoError(t, svc.Delete(ctx, id, 3))
	require.NotContains(t, store.products, id)

	require.ErrorIs(t, svc.Delete(ctx, id, 3), ErrNotFound)
}

func TestRecentWithoutRedisHitsStore(t *testing.T) {
	svc, store := newCatalogService()
	ctx := context.Background()

	_, err := svc.Publish(ctx, publish())
	require.NoError(t, err)

	list, err := svc.Recent(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, 1, store.recentCalls)
}
