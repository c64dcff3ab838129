package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"eventify/internal/domain/entity"
	domainerrors "eventify/internal/domain/errors"
	"eventify/internal/domain/repository"
	mockRepo "eventify/internal/mocks/repository"
	"eventify/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type businessServiceFixtures struct {
	service      usecase.BusinessUsecase
	businessRepo *mockRepo.MockBusinessRepository
}

func createTestBusinessService(t *testing.T) businessServiceFixtures {
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return businessServiceFixtures{
		service:      NewBusinessService(logger, businessRepo),
		businessRepo: businessRepo,
	}
}

func ownedBusiness(id, ownerID string, products ...entity.Product) *entity.Business {
	if products == nil {
		products = []entity.Product{}
	}

	return &entity.Business{
		ID:       id,
		Name:     "Grand Venue",
		Services: entity.ServiceTypes{entity.ServiceVenueProvider},
		Category: entity.CategoryVenueProvider,
		OwnerID:  ownerID,
		Products: products,
	}
}

func TestBusinessService_Get_NotFound(t *testing.T) {
	fx := createTestBusinessService(t)
	ctx := context.Background()

	fx.businessRepo.EXPECT().
		GetByID(ctx, "missing").
		Return(nil, repository.ErrBusinessNotFound)

	business, err := fx.service.Get(ctx, "missing")

	assert.Nil(t, business)
	assert.True(t, errors.Is(err, domainerrors.ErrBusinessNotFound))
}

func TestBusinessService_Create_AppliesStoredDefaults(t *testing.T) {
	fx := createTestBusinessService(t)
	ctx := context.Background()

	fx.businessRepo.EXPECT().
		Create(ctx, "owner-1", mock.AnythingOfType("*entity.Business")).
		RunAndReturn(func(ctx context.Context, ownerID string, business *entity.Business) (*entity.Business, error) {
			assert.Equal(t, "New Venue", business.Name)
			// No category supplied: the stored default applies.
			assert.Equal(t, entity.CategoryVenueProvider, business.Category)
			assert.NotNil(t, business.Services)
			assert.NotNil(t, business.Products)

			business.ID = "biz-new"
			business.OwnerID = ownerID

			return business, nil
		})

	business, err := fx.service.Create(ctx, "owner-1", usecase.CreateBusinessInput{
		Name:     "New Venue",
		Contact:  usecase.ContactInput{PhoneNumber: "0912"},
		Location: "Taipei",
	})

	require.NoError(t, err)
	assert.Equal(t, "biz-new", business.ID)
	assert.Equal(t, "owner-1", business.OwnerID)
}

func TestBusinessService_CreateLegacyProfile_KeyedByOwner(t *testing.T) {
	fx := createTestBusinessService(t)
	ctx := context.Background()

	fx.businessRepo.EXPECT().
		HasBusiness(ctx, "owner-1").
		Return(false, nil)

	fx.businessRepo.EXPECT().
		Create(ctx, "owner-1", mock.AnythingOfType("*entity.Business")).
		RunAndReturn(func(ctx context.Context, ownerID string, business *entity.Business) (*entity.Business, error) {
			// The profile document id is the owner's uid.
			assert.Equal(t, "owner-1", business.ID)

			return business, nil
		})

	_, err := fx.service.CreateLegacyProfile(ctx, "owner-1", usecase.CreateBusinessInput{
		Name:     "My Profile",
		Contact:  usecase.ContactInput{PhoneNumber: "0912"},
		Location: "Taipei",
	})

	require.NoError(t, err)
}

func TestBusinessService_CreateLegacyProfile_AlreadyExists(t *testing.T) {
	fx := createTestBusinessService(t)
	ctx := context.Background()

	fx.businessRepo.EXPECT().
		HasBusiness(ctx, "owner-1").
		Return(true, nil)

	business, err := fx.service.CreateLegacyProfile(ctx, "owner-1", usecase.CreateBusinessInput{
		Name:    "My Profile",
		Contact: usecase.ContactInput{PhoneNumber: "0912"},
	})

	assert.Nil(t, business)
	assert.True(t, errors.Is(err, domainerrors.ErrBusinessAlreadyExists))
}

func TestBusinessService_Update_OwnershipViolation(t *testing.T) {
	fx := createTestBusinessService(t)
	ctx := context.Background()

	fx.businessRepo.EXPECT().
		GetByID(ctx, "biz-1").
		Return(ownedBusiness("biz-1", "someone-else"), nil)

	name := "Hijacked"
	business, err := fx.service.Update(ctx, "owner-1", "biz-1", usecase.UpdateBusinessInput{Name: &name})

	assert.Nil(t, business)
	assert.True(t, errors.Is(err, domainerrors.ErrBusinessOwnershipViolation))
}

func TestBusinessService_Update_WritesOnlySuppliedFields(t *testing.T) {
	fx := createTestBusinessService(t)
	ctx := context.Background()

	fx.businessRepo.EXPECT().
		GetByID(ctx, "biz-1").
		Return(ownedBusiness("biz-1", "owner-1"), nil)

	name := "Renamed Venue"
	description := "refurbished"
	fx.businessRepo.EXPECT().
		Update(ctx, "biz-1", map[string]any{
			"name":        "Renamed Venue",
			"description": "refurbished",
		}).
		Return(nil)

	business, err := fx.service.Update(ctx, "owner-1", "biz-1", usecase.UpdateBusinessInput{
		Name:        &name,
		Description: &description,
	})

	require.NoError(t, err)
	// The returned entity is the local merge of the fetched record and the
	// supplied fields.
	assert.Equal(t, "Renamed Venue", business.Name)
	assert.Equal(t, "refurbished", business.Description)
	assert.Equal(t, entity.CategoryVenueProvider, business.Category)
}

func TestBusinessService_Update_NoFieldsIsANoOp(t *testing.T) {
	fx := createTestBusinessService(t)
	ctx := context.Background()

	fx.businessRepo.EXPECT().
		GetByID(ctx, "biz-1").
		Return(ownedBusiness("biz-1", "owner-1"), nil)

	business, err := fx.service.Update(ctx, "owner-1", "biz-1", usecase.UpdateBusinessInput{})

	require.NoError(t, err)
	assert.Equal(t, "Grand Venue", business.Name)
}

func TestBusinessService_Update_StructuredContactClearsLegacy(t *testing.T) {
	fx := createTestBusinessService(t)
	ctx := context.Background()

	stored := ownedBusiness("biz-1", "owner-1")
	stored.LegacyContact = "call the front desk"

	fx.businessRepo.EXPECT().
		GetByID(ctx, "biz-1").
		Return(stored, nil)

	fx.businessRepo.EXPECT().
		Update(ctx, "biz-1", map[string]any{
			"contact": map[string]any{
				"phoneNumber": "0988",
				"email":       "new@venue.example",
			},
		}).
		Return(nil)

	business, err := fx.service.Update(ctx, "owner-1", "biz-1", usecase.UpdateBusinessInput{
		Contact: &usecase.ContactInput{PhoneNumber: "0988", Email: "new@venue.example"},
	})

	require.NoError(t, err)
	assert.Empty(t, business.LegacyContact)
	assert.Equal(t, "0988", business.Contact.PhoneNumber)
}

func TestBusinessService_AddProduct_AppendsAndWritesWholeList(t *testing.T) {
	fx := createTestBusinessService(t)
	ctx := context.Background()

	fx.businessRepo.EXPECT().
		GetByID(ctx, "biz-1").
		Return(ownedBusiness("biz-1", "owner-1", entity.Product{Name: "Hall"}), nil)

	fx.businessRepo.EXPECT().
		UpdateProducts(ctx, "biz-1", []entity.Product{
			{Name: "Hall"},
			{Name: "Garden", InStock: true},
		}).
		Return(nil)

	business, err := fx.service.AddProduct(ctx, "owner-1", "biz-1", usecase.ProductInput{
		Name:    "Garden",
		InStock: true,
	})

	require.NoError(t, err)
	assert.Len(t, business.Products, 2)
}

func TestBusinessService_UpdateProduct_IndexOutOfRange(t *testing.T) {
	fx := createTestBusinessService(t)
	ctx := context.Background()

	fx.businessRepo.EXPECT().
		GetByID(ctx, "biz-1").
		Return(ownedBusiness("biz-1", "owner-1", entity.Product{Name: "Hall"}), nil)

	business, err := fx.service.UpdateProduct(ctx, "owner-1", "biz-1", 1, usecase.ProductInput{Name: "X"})

	assert.Nil(t, business)
	assert.True(t, errors.Is(err, domainerrors.ErrProductIndexOutOfRange))
}

func TestBusinessService_UpdateProduct_ReplacesAtPosition(t *testing.T) {
	fx := createTestBusinessService(t)
	ctx := context.Background()

	fx.businessRepo.EXPECT().
		GetByID(ctx, "biz-1").
		Return(ownedBusiness("biz-1", "owner-1",
			entity.Product{Name: "Hall"}, entity.Product{Name: "Garden"}), nil)

	fx.businessRepo.EXPECT().
		UpdateProducts(ctx, "biz-1", []entity.Product{
			{Name: "Hall"},
			{Name: "Rooftop", InStock: true},
		}).
		Return(nil)

	business, err := fx.service.UpdateProduct(ctx, "owner-1", "biz-1", 1, usecase.ProductInput{
		Name:    "Rooftop",
		InStock: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "Rooftop", business.Products[1].Name)
}

func TestBusinessService_DeleteProduct_RemovesAtPosition(t *testing.T) {
	fx := createTestBusinessService(t)
	ctx := context.Background()

	fx.businessRepo.EXPECT().
		GetByID(ctx, "biz-1").
		Return(ownedBusiness("biz-1", "owner-1",
			entity.Product{Name: "Hall"}, entity.Product{Name: "Garden"}, entity.Product{Name: "Rooftop"}), nil)

	fx.businessRepo.EXPECT().
		UpdateProducts(ctx, "biz-1", []entity.Product{
			{Name: "Hall"},
			{Name: "Rooftop"},
		}).
		Return(nil)

	err := fx.service.DeleteProduct(ctx, "owner-1", "biz-1", 1)

	require.NoError(t, err)
}

func TestBusinessService_Delete_OwnerOnly(t *testing.T) {
	fx := createTestBusinessService(t)
	ctx := context.Background()

	fx.businessRepo.EXPECT().
		GetByID(ctx, "biz-1").
		Return(ownedBusiness("biz-1", "owner-1"), nil)

	fx.businessRepo.EXPECT().
		Delete(ctx, "biz-1").
		Return(nil)

	require.NoError(t, fx.service.Delete(ctx, "owner-1", "biz-1"))
}
