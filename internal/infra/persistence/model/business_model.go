// Package model maps raw document-store shapes to domain entities and
// back. Stored business records come in several vintages (legacy single
// category string, legacy single-string contact, missing substructures);
// the mapping here is the single place that reconciles them into one
// canonical shape. It is best-effort on purpose: a malformed record
// yields a structurally valid entity with defaults, never an error, so a
// listing never fails to render because of one bad document.
package model

import (
	"eventify/internal/domain/entity"
)

// BusinessFromDoc normalizes a raw business document into a canonical
// Business. The result always has a non-nil Services set and a Contact
// with both keys present.
func BusinessFromDoc(id string, data map[string]any) *entity.Business {
	business := &entity.Business{
		ID:          id,
		Name:        stringField(data, "name"),
		Description: stringField(data, "description"),
		Location:    stringField(data, "location"),
		OwnerID:     stringField(data, "ownerId"),
	}

	business.Services = servicesFromDoc(data)
	business.Category = entity.FilterCategoryFromString(stringField(data, "category"))

	// imageUrl falls back to the photoURL key used by the oldest records.
	business.ImageURL = stringField(data, "imageUrl")
	if business.ImageURL == "" {
		business.ImageURL = stringField(data, "photoURL")
	}

	business.Contact, business.LegacyContact = contactFromDoc(data["contact"])
	business.Products = productsFromDoc(data["products"])

	return business
}

// servicesFromDoc prefers a stored non-empty services list; a record that
// predates the list derives a singleton set from its legacy category
// string; anything else gets an empty set.
func servicesFromDoc(data map[string]any) entity.ServiceTypes {
	if services := stringListField(data, "services"); len(services) > 0 {
		return entity.ServiceTypesFromStrings(services)
	}

	if category := stringField(data, "category"); category != "" {
		return entity.ServiceTypes{entity.ServiceType(category)}
	}

	return entity.ServiceTypes{}
}

// stringListField reads a list of strings. Store reads hand lists back
// as []any; docs built by BusinessToDoc carry []string. Both shapes pass
// through BusinessFromDoc, so both are accepted here.
func stringListField(data map[string]any, key string) []string {
	switch raw := data[key].(type) {
	case []string:
		return raw
	case []any:
		values := make([]string, 0, len(raw))
		for _, item := range raw {
			if s, ok := item.(string); ok {
				values = append(values, s)
			}
		}

		return values
	default:
		return nil
	}
}

// contactFromDoc extracts the structured contact shape. The oldest
// records store contact as a single string; that value passes through
// unparsed as the legacy display field, with no split attempted.
func contactFromDoc(raw any) (entity.Contact, string) {
	switch contact := raw.(type) {
	case map[string]any:
		return entity.Contact{
			PhoneNumber: stringField(contact, "phoneNumber"),
			Email:       stringField(contact, "email"),
		}, ""
	case string:
		return entity.Contact{}, contact
	default:
		return entity.Contact{}, ""
	}
}

func productsFromDoc(raw any) []entity.Product {
	items, ok := raw.([]any)
	if !ok {
		return []entity.Product{}
	}

	products := make([]entity.Product, 0, len(items))
	for _, item := range items {
		data, ok := item.(map[string]any)
		if !ok {
			continue
		}
		products = append(products, ProductFromDoc(data))
	}

	return products
}

// ProductFromDoc normalizes a single embedded product map.
func ProductFromDoc(data map[string]any) entity.Product {
	inStock, _ := data["inStock"].(bool)

	return entity.Product{
		Name:        stringField(data, "name"),
		Description: stringField(data, "description"),
		ImageURL:    stringField(data, "imageUrl"),
		InStock:     inStock,
		Category:    stringField(data, "category"),
	}
}

// BusinessToDoc converts a business entity to its stored shape. The
// stored category always resolves to a concrete value, never the All
// sentinel.
func BusinessToDoc(business *entity.Business) map[string]any {
	doc := map[string]any{
		"name":        business.Name,
		"services":    business.Services.Strings(),
		"category":    entity.StoredCategoryFromString(business.Category.String()).String(),
		"description": business.Description,
		"location":    business.Location,
		"imageUrl":    business.ImageURL,
		"ownerId":     business.OwnerID,
		"products":    ProductsToDoc(business.Products),
	}

	if business.LegacyContact != "" {
		doc["contact"] = business.LegacyContact
	} else {
		doc["contact"] = map[string]any{
			"phoneNumber": business.Contact.PhoneNumber,
			"email":       business.Contact.Email,
		}
	}

	return doc
}

// ProductsToDoc converts embedded products to their stored shape.
func ProductsToDoc(products []entity.Product) []any {
	docs := make([]any, 0, len(products))
	for _, product := range products {
		docs = append(docs, map[string]any{
			"name":        product.Name,
			"description": product.Description,
			"imageUrl":    product.ImageURL,
			"inStock":     product.InStock,
			"category":    product.Category,
		})
	}

	return docs
}

func stringField(data map[string]any, key string) string {
	s, _ := data[key].(string)

	return s
}
