package impl

import (
	"context"
	"log/slog"
	"time"

	"eventify/internal/domain/entity"
	domainerrors "eventify/internal/domain/errors"
	"eventify/internal/domain/repository"
	"eventify/internal/usecase"

	"github.com/pkg/errors"
)

type eventService struct {
	logger           *slog.Logger
	eventRepo        repository.EventRepository
	notificationRepo repository.NotificationRepository
	now              func() time.Time
}

// NewEventService creates a new event service instance.
func NewEventService(
	logger *slog.Logger,
	eventRepo repository.EventRepository,
	notificationRepo repository.NotificationRepository,
) usecase.EventUsecase {
	return &eventService{
		logger:           logger,
		eventRepo:        eventRepo,
		notificationRepo: notificationRepo,
		now:              time.Now,
	}
}

// AttachProduct runs the two-step attach flow: commit the product onto
// the event, then relay a notification to the owning business. The two
// steps are deliberately not a transaction. A notification failure after
// the attach committed does not roll the attach back; the result reports
// the attach as succeeded with the relay outcome alongside it.
func (s *eventService) AttachProduct(ctx context.Context, uid string, eventID string, input usecase.AttachProductInput) (*usecase.AttachResult, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrEventNotFound
		}

		return nil, err
	}

	if event.OwnerID != uid {
		return nil, domainerrors.ErrEventOwnershipViolation
	}

	attached := entity.AttachedProduct{
		BusinessID:  input.BusinessID,
		ProductName: input.ProductName,
	}
	if err := s.eventRepo.AttachProduct(ctx, eventID, attached); err != nil {
		return nil, err
	}
	event.Products = append(event.Products, attached)

	result := &usecase.AttachResult{
		Event:            event,
		NotificationSent: true,
	}

	_, err = s.notificationRepo.Create(ctx, &entity.Notification{
		BusinessID:  input.BusinessID,
		ProductName: input.ProductName,
		EventID:     event.ID,
		EventTitle:  event.Title,
		Timestamp:   s.now(),
		Read:        false,
	})
	if err != nil {
		s.logger.Warn("product attached but notification relay failed",
			slog.String("eventId", eventID),
			slog.String("businessId", input.BusinessID),
			slog.Any("error", err))
		result.NotificationSent = false
		result.NotificationErr = err.Error()
	}

	return result, nil
}
