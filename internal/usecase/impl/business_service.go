package impl

import (
	"context"
	"log/slog"

	"eventify/internal/domain/entity"
	domainerrors "eventify/internal/domain/errors"
	"eventify/internal/domain/repository"
	"eventify/internal/usecase"

	"github.com/pkg/errors"
)

type businessService struct {
	logger       *slog.Logger
	businessRepo repository.BusinessRepository
}

// NewBusinessService creates a new business service instance.
func NewBusinessService(
	logger *slog.Logger,
	businessRepo repository.BusinessRepository,
) usecase.BusinessUsecase {
	return &businessService{
		logger:       logger,
		businessRepo: businessRepo,
	}
}

// List returns the businesses visible to the caller.
func (s *businessService) List(ctx context.Context, uid string, role entity.Role) ([]*entity.Business, error) {
	return s.businessRepo.List(ctx, uid, role)
}

// Get returns one normalized business.
func (s *businessService) Get(ctx context.Context, id string) (*entity.Business, error) {
	business, err := s.businessRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, err
	}

	return business, nil
}

// Create persists a new listing with a store-assigned id.
func (s *businessService) Create(ctx context.Context, ownerID string, input usecase.CreateBusinessInput) (*entity.Business, error) {
	return s.businessRepo.Create(ctx, ownerID, businessFromInput(input))
}

// CreateLegacyProfile persists the caller's single business profile
// keyed by their uid. The existence check and the write are two store
// calls; the store's last-write-wins semantics are relied on as-is.
func (s *businessService) CreateLegacyProfile(ctx context.Context, ownerID string, input usecase.CreateBusinessInput) (*entity.Business, error) {
	exists, err := s.businessRepo.HasBusiness(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domainerrors.ErrBusinessAlreadyExists
	}

	business := businessFromInput(input)
	business.ID = ownerID

	return s.businessRepo.Create(ctx, ownerID, business)
}

// Update applies a partial update to a listing the caller owns and
// returns the locally merged result. The repository writes only the
// supplied fields and does not re-fetch.
func (s *businessService) Update(ctx context.Context, uid string, id string, input usecase.UpdateBusinessInput) (*entity.Business, error) {
	business, err := s.ownedBusiness(ctx, uid, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}

	if input.Name != nil {
		business.Name = *input.Name
		fields["name"] = *input.Name
	}
	if input.Services != nil {
		business.Services = entity.ServiceTypesFromStrings(input.Services)
		fields["services"] = business.Services.Strings()
	}
	if input.Category != nil {
		business.Category = entity.StoredCategoryFromString(*input.Category)
		fields["category"] = business.Category.String()
	}
	if input.Description != nil {
		business.Description = *input.Description
		fields["description"] = *input.Description
	}
	if input.Contact != nil {
		business.Contact = entity.Contact{
			PhoneNumber: input.Contact.PhoneNumber,
			Email:       input.Contact.Email,
		}
		business.LegacyContact = ""
		fields["contact"] = map[string]any{
			"phoneNumber": business.Contact.PhoneNumber,
			"email":       business.Contact.Email,
		}
	}
	if input.Location != nil {
		business.Location = *input.Location
		fields["location"] = *input.Location
	}
	if input.ImageURL != nil {
		business.ImageURL = *input.ImageURL
		fields["imageUrl"] = *input.ImageURL
	}

	if len(fields) == 0 {
		return business, nil
	}

	if err := s.businessRepo.Update(ctx, id, fields); err != nil {
		return nil, err
	}

	return business, nil
}

// Delete removes a listing the caller owns. Notifications referencing it
// are not cascaded.
func (s *businessService) Delete(ctx context.Context, uid string, id string) error {
	if _, err := s.ownedBusiness(ctx, uid, id); err != nil {
		return err
	}

	return s.businessRepo.Delete(ctx, id)
}

// AddProduct appends a product to the owning business's list and writes
// the full list back.
func (s *businessService) AddProduct(ctx context.Context, uid string, businessID string, input usecase.ProductInput) (*entity.Business, error) {
	business, err := s.ownedBusiness(ctx, uid, businessID)
	if err != nil {
		return nil, err
	}

	business.Products = append(business.Products, productFromInput(input))

	return business, s.writeProducts(ctx, business)
}

// UpdateProduct replaces the product at the given position. The index is
// the product's only identity, so two sessions editing the same business
// concurrently can race on it; that inherited fragility is accepted.
func (s *businessService) UpdateProduct(ctx context.Context, uid string, businessID string, index int, input usecase.ProductInput) (*entity.Business, error) {
	business, err := s.ownedBusiness(ctx, uid, businessID)
	if err != nil {
		return nil, err
	}

	if index < 0 || index >= len(business.Products) {
		return nil, domainerrors.ErrProductIndexOutOfRange
	}
	business.Products[index] = productFromInput(input)

	return business, s.writeProducts(ctx, business)
}

// DeleteProduct removes the product at the given position.
func (s *businessService) DeleteProduct(ctx context.Context, uid string, businessID string, index int) error {
	business, err := s.ownedBusiness(ctx, uid, businessID)
	if err != nil {
		return err
	}

	if index < 0 || index >= len(business.Products) {
		return domainerrors.ErrProductIndexOutOfRange
	}
	business.Products = append(business.Products[:index], business.Products[index+1:]...)

	return s.writeProducts(ctx, business)
}

// Watch streams the caller's visible business list.
func (s *businessService) Watch(ctx context.Context, uid string, role entity.Role) (<-chan []*entity.Business, error) {
	return s.businessRepo.Watch(ctx, uid, role)
}

// ownedBusiness fetches a business and verifies the caller owns it.
func (s *businessService) ownedBusiness(ctx context.Context, uid string, id string) (*entity.Business, error) {
	business, err := s.businessRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, err
	}

	if business.OwnerID != uid {
		return nil, domainerrors.ErrBusinessOwnershipViolation
	}

	return business, nil
}

func (s *businessService) writeProducts(ctx context.Context, business *entity.Business) error {
	return s.businessRepo.UpdateProducts(ctx, business.ID, business.Products)
}

func businessFromInput(input usecase.CreateBusinessInput) *entity.Business {
	return &entity.Business{
		Name:        input.Name,
		Services:    entity.ServiceTypesFromStrings(input.Services),
		Category:    entity.StoredCategoryFromString(input.Category),
		Description: input.Description,
		Contact: entity.Contact{
			PhoneNumber: input.Contact.PhoneNumber,
			Email:       input.Contact.Email,
		},
		Location: input.Location,
		ImageURL: input.ImageURL,
		Products: []entity.Product{},
	}
}

func productFromInput(input usecase.ProductInput) entity.Product {
	return entity.Product{
		Name:        input.Name,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		InStock:     input.InStock,
		Category:    input.Category,
	}
}
