package model

import (
	"testing"

	"eventify/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusinessFromDoc_ModernRecord(t *testing.T) {
	business := BusinessFromDoc("biz-1", map[string]any{
		"name":        "Tasty Catering Co",
		"services":    []any{"Catering", "Refreshments"},
		"category":    "Food/Catering",
		"description": "Full-service catering",
		"contact": map[string]any{
			"phoneNumber": "0912345678",
			"email":       "hello@tasty.example",
		},
		"location": "Taipei",
		"imageUrl": "https://img.example/tasty.jpg",
		"ownerId":  "owner-1",
		"products": []any{
			map[string]any{"name": "Buffet", "inStock": true, "category": "Food/Catering"},
		},
	})

	assert.Equal(t, "biz-1", business.ID)
	assert.Equal(t, "Tasty Catering Co", business.Name)
	assert.Equal(t, entity.ServiceTypes{entity.ServiceCatering, entity.ServiceRefreshments}, business.Services)
	assert.Equal(t, entity.CategoryFoodCatering, business.Category)
	assert.Equal(t, "0912345678", business.Contact.PhoneNumber)
	assert.Equal(t, "hello@tasty.example", business.Contact.Email)
	assert.Empty(t, business.LegacyContact)
	assert.Equal(t, "https://img.example/tasty.jpg", business.ImageURL)
	require.Len(t, business.Products, 1)
	assert.Equal(t, "Buffet", business.Products[0].Name)
	assert.True(t, business.Products[0].InStock)
}

func TestBusinessFromDoc_ServicesFallBackToLegacyCategory(t *testing.T) {
	business := BusinessFromDoc("biz-2", map[string]any{
		"name":     "Old Venue",
		"category": "Venue Provider",
	})

	assert.Equal(t, entity.ServiceTypes{entity.ServiceVenueProvider}, business.Services)
	assert.Equal(t, entity.CategoryVenueProvider, business.Category)
}

func TestBusinessFromDoc_ServicesAsStringSlice(t *testing.T) {
	business := BusinessFromDoc("biz-12", map[string]any{
		"name":     "Locally Built Doc",
		"services": []string{"Catering", "Refreshments"},
		"category": "Food/Catering",
	})

	// The stored list wins; the category fallback must not kick in just
	// because the list arrived as []string instead of []any.
	assert.Equal(t, entity.ServiceTypes{entity.ServiceCatering, entity.ServiceRefreshments}, business.Services)
}

func TestBusinessFromDoc_StoredServicesWinOverCategory(t *testing.T) {
	business := BusinessFromDoc("biz-3", map[string]any{
		"name":     "Mixed",
		"services": []any{"Refreshments"},
		"category": "Venue Provider",
	})

	assert.Equal(t, entity.ServiceTypes{entity.ServiceRefreshments}, business.Services)
}

func TestBusinessFromDoc_EmptyServicesListFallsBack(t *testing.T) {
	business := BusinessFromDoc("biz-4", map[string]any{
		"name":     "Empty List",
		"services": []any{},
		"category": "Catering",
	})

	assert.Equal(t, entity.ServiceTypes{entity.ServiceCatering}, business.Services)
}

func TestBusinessFromDoc_NoServicesNoCategory(t *testing.T) {
	business := BusinessFromDoc("biz-5", map[string]any{
		"name": "Bare",
	})

	require.NotNil(t, business.Services)
	assert.Empty(t, business.Services)
	assert.Equal(t, entity.CategoryAll, business.Category)
	assert.NotNil(t, business.Products)
	assert.Empty(t, business.Products)
}

func TestBusinessFromDoc_LegacyStringContactPassesThrough(t *testing.T) {
	business := BusinessFromDoc("biz-6", map[string]any{
		"name":    "Old Contact",
		"contact": "call 0900-000-000 after 6pm",
	})

	assert.Equal(t, "call 0900-000-000 after 6pm", business.LegacyContact)
	assert.Empty(t, business.Contact.PhoneNumber)
	assert.Empty(t, business.Contact.Email)
}

func TestBusinessFromDoc_MissingContactYieldsEmptyShape(t *testing.T) {
	business := BusinessFromDoc("biz-7", map[string]any{"name": "No Contact"})

	assert.Empty(t, business.Contact.PhoneNumber)
	assert.Empty(t, business.Contact.Email)
	assert.Empty(t, business.LegacyContact)
}

func TestBusinessFromDoc_PhotoURLFallback(t *testing.T) {
	business := BusinessFromDoc("biz-8", map[string]any{
		"name":     "Vintage Photo",
		"photoURL": "https://img.example/old.jpg",
	})

	assert.Equal(t, "https://img.example/old.jpg", business.ImageURL)

	business = BusinessFromDoc("biz-9", map[string]any{
		"name":     "Both Keys",
		"imageUrl": "https://img.example/new.jpg",
		"photoURL": "https://img.example/old.jpg",
	})

	assert.Equal(t, "https://img.example/new.jpg", business.ImageURL)
}

func TestBusinessFromDoc_MalformedFieldsYieldDefaults(t *testing.T) {
	business := BusinessFromDoc("biz-10", map[string]any{
		"name":     12345,
		"services": "not-a-list",
		"products": map[string]any{"oops": true},
		"contact":  7,
	})

	assert.Empty(t, business.Name)
	assert.Empty(t, business.Services)
	assert.Empty(t, business.Products)
	assert.Empty(t, business.LegacyContact)
}

func TestBusinessToDoc_StoredCategoryNeverAll(t *testing.T) {
	doc := BusinessToDoc(&entity.Business{
		Name:     "Fresh",
		Services: entity.ServiceTypes{},
		Category: entity.CategoryAll,
		Products: []entity.Product{},
	})

	assert.Equal(t, entity.CategoryVenueProvider.String(), doc["category"])
}

func TestBusinessToDoc_LegacyContactStaysAString(t *testing.T) {
	doc := BusinessToDoc(&entity.Business{
		Name:          "Old Contact",
		Services:      entity.ServiceTypes{},
		Category:      entity.CategoryRefreshments,
		LegacyContact: "call the front desk",
		Products:      []entity.Product{},
	})

	assert.Equal(t, "call the front desk", doc["contact"])
}

func TestBusinessToDoc_RoundTrip(t *testing.T) {
	original := &entity.Business{
		Name:        "Round Trip",
		Services:    entity.ServiceTypes{entity.ServiceCatering},
		Category:    entity.CategoryFoodCatering,
		Description: "desc",
		Contact:     entity.Contact{PhoneNumber: "0911", Email: "a@b.c"},
		Location:    "Kaohsiung",
		ImageURL:    "https://img.example/x.jpg",
		OwnerID:     "owner-9",
		Products: []entity.Product{
			{Name: "Set A", Description: "d", ImageURL: "u", InStock: true, Category: "Food/Catering"},
		},
	}

	// BusinessToDoc emits services as []string; the normalizer must read
	// that shape as faithfully as the []any a store read produces.
	restored := BusinessFromDoc("biz-11", BusinessToDoc(original))

	assert.Equal(t, original.Name, restored.Name)
	assert.Equal(t, original.Services, restored.Services)
	assert.Equal(t, original.Category, restored.Category)
	assert.Equal(t, original.Contact, restored.Contact)
	assert.Equal(t, original.Products, restored.Products)
}

func TestProductFromDoc_Defaults(t *testing.T) {
	product := ProductFromDoc(map[string]any{"name": "Chairs"})

	assert.Equal(t, "Chairs", product.Name)
	assert.False(t, product.InStock)
	assert.Empty(t, product.Category)
}
