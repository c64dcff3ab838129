package impl

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"testing"

	"eventify/config"
	"eventify/internal/domain/entity"
	"eventify/internal/domain/repository"
	"eventify/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memBusinessRepo is an in-memory stand-in for the document store,
// honoring the same role-gating and not-found contracts.
type memBusinessRepo struct {
	mu         sync.Mutex
	seq        int
	businesses map[string]*entity.Business
}

func newMemBusinessRepo() *memBusinessRepo {
	return &memBusinessRepo{businesses: map[string]*entity.Business{}}
}

func (r *memBusinessRepo) List(_ context.Context, ownerID string, role entity.Role) ([]*entity.Business, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	visible := []*entity.Business{}
	for _, business := range r.businesses {
		if role == entity.RoleUser || business.OwnerID == ownerID {
			visible = append(visible, business)
		}
	}

	return visible, nil
}

func (r *memBusinessRepo) GetByID(_ context.Context, id string) (*entity.Business, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	business, ok := r.businesses[id]
	if !ok {
		return nil, repository.ErrBusinessNotFound
	}

	return business, nil
}

func (r *memBusinessRepo) Create(_ context.Context, ownerID string, business *entity.Business) (*entity.Business, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if business.ID == "" {
		r.seq++
		business.ID = "mem-" + strconv.Itoa(r.seq)
	}
	business.OwnerID = ownerID
	r.businesses[business.ID] = business

	return business, nil
}

func (r *memBusinessRepo) Update(_ context.Context, id string, _ map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.businesses[id]; !ok {
		return repository.ErrBusinessNotFound
	}

	return nil
}

func (r *memBusinessRepo) UpdateProducts(_ context.Context, id string, products []entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	business, ok := r.businesses[id]
	if !ok {
		return repository.ErrBusinessNotFound
	}
	business.Products = products

	return nil
}

func (r *memBusinessRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.businesses, id)

	return nil
}

func (r *memBusinessRepo) HasBusiness(_ context.Context, userID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.businesses[userID]

	return ok, nil
}

func (r *memBusinessRepo) Watch(ctx context.Context, ownerID string, role entity.Role) (<-chan []*entity.Business, error) {
	updates := make(chan []*entity.Business, 1)
	visible, _ := r.List(ctx, ownerID, role)
	updates <- visible
	close(updates)

	return updates, nil
}

func TestProviderCatalogFlow(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := newMemBusinessRepo()

	cfg := &config.Config{}
	cfg.Catalog = &config.CatalogConfig{PageSize: 6}

	businessSvc := NewBusinessService(logger, repo)
	catalogSvc := NewCatalogService(logger, repo, cfg)

	created, err := businessSvc.Create(ctx, "owner-joe", usecase.CreateBusinessInput{
		Name:     "Joe's Catering",
		Services: []string{"Catering"},
		Contact:  usecase.ContactInput{PhoneNumber: "+15551234567"},
		Location: "NYC",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	// The new listing shows up in the provider's owner-scoped view.
	owned, err := businessSvc.List(ctx, "owner-joe", entity.RoleServiceProvider)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, created.ID, owned[0].ID)

	// Another provider's scoped view stays empty, while a plain user sees
	// everything.
	other, err := businessSvc.List(ctx, "owner-other", entity.RoleServiceProvider)
	require.NoError(t, err)
	assert.Empty(t, other)

	everyone, err := businessSvc.List(ctx, "anyone", entity.RoleUser)
	require.NoError(t, err)
	assert.Len(t, everyone, 1)

	_, err = businessSvc.AddProduct(ctx, "owner-joe", created.ID, usecase.ProductInput{
		Name:    "Sandwich Platter",
		InStock: true,
	})
	require.NoError(t, err)

	// The product surfaces in the flattened catalog tagged with its owner.
	page, err := catalogSvc.ListProducts(ctx, "anyone", entity.RoleUser, usecase.PageQuery{
		Search:   "sandwich",
		Category: entity.CategoryAll,
		Page:     1,
	})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Sandwich Platter", page.Items[0].Name)
	assert.Equal(t, created.ID, page.Items[0].BusinessID)
	assert.Equal(t, "Joe's Catering", page.Items[0].BusinessName)

	// A category the owning business does not serve filters it out, still
	// reporting one (empty) page. The stored default category on the
	// record does not leak into product filtering.
	page, err = catalogSvc.ListProducts(ctx, "anyone", entity.RoleUser, usecase.PageQuery{
		Category: entity.CategoryVenueProvider,
		Page:     1,
	})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.TotalPages)
}
