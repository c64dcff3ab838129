package firestore

import (
	"context"

	"eventify/internal/domain/entity"
	"eventify/internal/domain/repository"
	"eventify/internal/infra/persistence/model"

	fs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// eventRepository implements the repository.EventRepository interface.
type eventRepository struct {
	client *fs.Client
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(client *fs.Client) repository.EventRepository {
	return &eventRepository{
		client: client,
	}
}

// GetByID retrieves an event by its document id.
func (repo *eventRepository) GetByID(ctx context.Context, id string) (*entity.Event, error) {
	doc, err := repo.client.Collection(eventCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to get event")
	}

	return model.EventFromDoc(doc.Ref.ID, doc.Data()), nil
}

// AttachProduct appends the product reference to the event's products
// list. ArrayUnion keeps the append idempotent at the store level.
func (repo *eventRepository) AttachProduct(ctx context.Context, eventID string, product entity.AttachedProduct) error {
	ref := repo.client.Collection(eventCollection).Doc(eventID)

	_, err := ref.Update(ctx, []fs.Update{
		{Path: "products", Value: fs.ArrayUnion(model.AttachedProductToDoc(product))},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrEventNotFound
		}

		return errors.Wrap(err, "failed to attach product to event")
	}

	return nil
}
