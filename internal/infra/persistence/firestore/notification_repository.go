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

// The store caps `in` query predicates; larger business sets are split
// into chunks of this size and the results concatenated.
const inQueryChunkSize = 10

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	client *fs.Client
	logger *slog.Logger
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(client *fs.Client, logger *slog.Logger) repository.NotificationRepository {
	return &notificationRepository{
		client: client,
		logger: logger,
	}
}

// Create persists a new notification and returns it with its assigned id.
func (repo *notificationRepository) Create(ctx context.Context, notification *entity.Notification) (*entity.Notification, error) {
	doc := sanitizeDoc(model.NotificationToDoc(notification))

	ref := repo.client.Collection(notificationCollection).NewDoc()
	if _, err := ref.Create(ctx, doc); err != nil {
		return nil, errors.Wrap(err, "failed to create notification")
	}

	return model.NotificationFromDoc(ref.ID, doc), nil
}

// GetByID retrieves a notification by its unique id.
func (repo *notificationRepository) GetByID(ctx context.Context, id string) (*entity.Notification, error) {
	doc, err := repo.client.Collection(notificationCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to get notification")
	}

	return model.NotificationFromDoc(doc.Ref.ID, doc.Data()), nil
}

// ListForBusinesses retrieves all notifications for the given business
// set. An empty set short-circuits to an empty result without touching
// the store.
func (repo *notificationRepository) ListForBusinesses(ctx context.Context, businessIDs []string) ([]*entity.Notification, error) {
	notifications := []*entity.Notification{}
	if len(businessIDs) == 0 {
		return notifications, nil
	}

	for start := 0; start < len(businessIDs); start += inQueryChunkSize {
		end := min(start+inQueryChunkSize, len(businessIDs))

		docs := repo.client.Collection(notificationCollection).
			Where("businessId", "in", businessIDs[start:end]).
			Documents(ctx)

		for {
			doc, err := docs.Next()
			if errors.Is(err, iterator.Done) {
				break
			}
			if err != nil {
				docs.Stop()

				return nil, errors.Wrap(err, "failed to list notifications")
			}

			notifications = append(notifications, model.NotificationFromDoc(doc.Ref.ID, doc.Data()))
		}
		docs.Stop()
	}

	return notifications, nil
}

// Watch streams the unread notifications for the given business set
// through the store's snapshot listener: an initial full result, then a
// re-emitted list on every change. The goroutine exits and the channel
// closes when ctx is done. An empty business set emits a single empty
// list and closes without opening a listener.
func (repo *notificationRepository) Watch(ctx context.Context, businessIDs []string) (<-chan []*entity.Notification, error) {
	updates := make(chan []*entity.Notification, 1)

	if len(businessIDs) == 0 {
		updates <- []*entity.Notification{}
		close(updates)

		return updates, nil
	}

	watched := make(map[string]struct{}, len(businessIDs))
	for _, id := range businessIDs {
		watched[id] = struct{}{}
	}

	snapshots := repo.client.Collection(notificationCollection).Snapshots(ctx)

	go func() {
		defer close(updates)
		defer snapshots.Stop()

		for {
			snapshot, err := snapshots.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					repo.logger.Error("notification watch terminated",
						slog.Any("error", err))
				}

				return
			}

			notifications := []*entity.Notification{}
			for {
				doc, err := snapshot.Documents.Next()
				if errors.Is(err, iterator.Done) {
					break
				}
				if err != nil {
					repo.logger.Error("notification watch snapshot read failed",
						slog.Any("error", err))

					return
				}

				notification := model.NotificationFromDoc(doc.Ref.ID, doc.Data())
				if _, ok := watched[notification.BusinessID]; ok && !notification.Read {
					notifications = append(notifications, notification)
				}
			}

			select {
			case updates <- notifications:
			case <-ctx.Done():
				return
			}
		}
	}()

	return updates, nil
}

// MarkRead transitions a notification to read. The write touches only
// the read field, so marking an already-read notification rewrites the
// same value and reports success.
func (repo *notificationRepository) MarkRead(ctx context.Context, id string) error {
	ref := repo.client.Collection(notificationCollection).Doc(id)

	if _, err := ref.Update(ctx, []fs.Update{{Path: "read", Value: true}}); err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrNotificationNotFound
		}

		return errors.Wrap(err, "failed to mark notification read")
	}

	return nil
}
