package firestore

import (
	"context"
	"log/slog"

	"eventify/internal/domain/entity"
	"eventify/internal/domain/repository"
	"eventify/internal/infra/persistence/model"

	fs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// businessRepository implements the repository.BusinessRepository interface.
type businessRepository struct {
	client *fs.Client
	logger *slog.Logger
}

// NewBusinessRepository is the constructor for businessRepository.
func NewBusinessRepository(client *fs.Client, logger *slog.Logger) repository.BusinessRepository {
	return &businessRepository{
		client: client,
		logger: logger,
	}
}

// List retrieves all business documents, normalizes each and applies the
// role gate: end users see every listing, service providers only their
// own. The store offers no server-side paging, so the full collection is
// fetched and everything further happens client-side.
func (repo *businessRepository) List(ctx context.Context, ownerID string, role entity.Role) ([]*entity.Business, error) {
	docs := repo.client.Collection(businessCollection).Documents(ctx)
	defer docs.Stop()

	businesses := []*entity.Business{}
	for {
		doc, err := docs.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to list businesses")
		}

		business := model.BusinessFromDoc(doc.Ref.ID, doc.Data())
		if visibleTo(business, ownerID, role) {
			businesses = append(businesses, business)
		}
	}

	return businesses, nil
}

// visibleTo is the owner-scoping rule shared by List and Watch.
func visibleTo(business *entity.Business, ownerID string, role entity.Role) bool {
	return role == entity.RoleUser || business.OwnerID == ownerID
}

// GetByID fetches and normalizes one record.
func (repo *businessRepository) GetByID(ctx context.Context, id string) (*entity.Business, error) {
	doc, err := repo.client.Collection(businessCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to get business")
	}

	return model.BusinessFromDoc(doc.Ref.ID, doc.Data()), nil
}

// Create persists a new business. A pre-set entity id keys the document
// (the single-business-per-provider legacy path uses the owner uid);
// otherwise the store assigns one.
func (repo *businessRepository) Create(ctx context.Context, ownerID string, business *entity.Business) (*entity.Business, error) {
	created := *business
	created.OwnerID = ownerID

	doc := sanitizeDoc(model.BusinessToDoc(&created))

	ref := repo.client.Collection(businessCollection).NewDoc()
	if created.ID != "" {
		ref = repo.client.Collection(businessCollection).Doc(created.ID)
	}

	if _, err := ref.Create(ctx, doc); err != nil {
		return nil, errors.Wrap(err, "failed to create business")
	}

	return model.BusinessFromDoc(ref.ID, doc), nil
}

// Update sanitizes and writes only the supplied fields. It does not
// re-fetch; the caller is responsible for merging into its in-memory copy.
func (repo *businessRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	doc := sanitizeDoc(fields)

	if _, err := repo.client.Collection(businessCollection).Doc(id).Set(ctx, doc, fs.MergeAll); err != nil {
		return errors.Wrap(err, "failed to update business")
	}

	return nil
}

// UpdateProducts replaces the embedded products list wholesale. Product
// identity is positional, so the whole list is always written back.
func (repo *businessRepository) UpdateProducts(ctx context.Context, id string, products []entity.Product) error {
	return repo.Update(ctx, id, map[string]any{
		"products": model.ProductsToDoc(products),
	})
}

// Delete removes the record. Notifications referencing it stay behind;
// the orphaning is an accepted property of the data model.
func (repo *businessRepository) Delete(ctx context.Context, id string) error {
	if _, err := repo.client.Collection(businessCollection).Doc(id).Delete(ctx); err != nil {
		return errors.Wrap(err, "failed to delete business")
	}

	return nil
}

// HasBusiness checks for a document keyed by the user id.
func (repo *businessRepository) HasBusiness(ctx context.Context, userID string) (bool, error) {
	_, err := repo.client.Collection(businessCollection).Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to check business existence")
	}

	return true, nil
}

// Watch streams the visible business list through the store's snapshot
// listener: an initial full result, then a re-emitted list on every
// change. The goroutine exits and the channel closes when ctx is done,
// so callers release the listener by cancelling their context.
func (repo *businessRepository) Watch(ctx context.Context, ownerID string, role entity.Role) (<-chan []*entity.Business, error) {
	snapshots := repo.client.Collection(businessCollection).Snapshots(ctx)
	updates := make(chan []*entity.Business, 1)

	go func() {
		defer close(updates)
		defer snapshots.Stop()

		for {
			snapshot, err := snapshots.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					repo.logger.Error("business watch terminated",
						slog.Any("error", err))
				}

				return
			}

			businesses := []*entity.Business{}
			for {
				doc, err := snapshot.Documents.Next()
				if errors.Is(err, iterator.Done) {
					break
				}
				if err != nil {
					repo.logger.Error("business watch snapshot read failed",
						slog.Any("error", err))

					return
				}

				business := model.BusinessFromDoc(doc.Ref.ID, doc.Data())
				if visibleTo(business, ownerID, role) {
					businesses = append(businesses, business)
				}
			}

			select {
			case updates <- businesses:
			case <-ctx.Done():
				return
			}
		}
	}()

	return updates, nil
}
