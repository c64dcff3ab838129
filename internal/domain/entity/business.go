// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "slices"

// ServiceType is a tag from a fixed enumeration classifying the kind of
// service a business offers.
type ServiceType string

const (
	// ServiceCatering indicates a food-catering service.
	ServiceCatering ServiceType = "Catering"
	// ServiceRefreshments indicates a refreshments/drinks service.
	ServiceRefreshments ServiceType = "Refreshments"
	// ServiceVenueProvider indicates a venue-rental service.
	ServiceVenueProvider ServiceType = "Venue Provider"
)

// String returns the string representation of the ServiceType.
func (s ServiceType) String() string {
	return string(s)
}

// IsValid checks if the ServiceType is a valid value.
func (s ServiceType) IsValid() bool {
	switch s {
	case ServiceCatering, ServiceRefreshments, ServiceVenueProvider:
		return true
	default:
		return false
	}
}

// ServiceTypes is a set of service tags. Order is irrelevant and
// duplicates are collapsed at construction time.
type ServiceTypes []ServiceType

// Contains checks if the set contains a specific service tag.
func (ss ServiceTypes) Contains(service ServiceType) bool {
	return slices.Contains(ss, service)
}

// Strings converts the set to plain strings for storage.
func (ss ServiceTypes) Strings() []string {
	result := make([]string, len(ss))
	for i, s := range ss {
		result[i] = s.String()
	}

	return result
}

// ServiceTypesFromStrings converts raw strings to a deduplicated set,
// keeping unrecognized tags as-is so legacy records still render.
func ServiceTypesFromStrings(ss []string) ServiceTypes {
	result := make(ServiceTypes, 0, len(ss))
	for _, s := range ss {
		service := ServiceType(s)
		if !result.Contains(service) {
			result = append(result, service)
		}
	}

	return result
}

// Contact holds the structured contact information of a business.
type Contact struct {
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
}

// Business is a service-provider's listing. It owns zero or more embedded
// Products and is always structurally complete after normalization:
// Services is never nil and Contact always carries both keys.
type Business struct {
	ID          string       `json:"id"`          // Document id assigned by the store on creation.
	Name        string       `json:"name"`        // Display name, non-empty for valid listings.
	Services    ServiceTypes `json:"services"`    // Deduplicated service tags, derived from the legacy category when absent.
	Category    Category     `json:"category"`    // Normalized display category.
	Description string       `json:"description"` // Free-text description, may be empty.
	Contact     Contact      `json:"contact"`     // Structured contact with both keys always present.
	// LegacyContact carries the oldest single-string contact vintage
	// unparsed. It is display-only and never reconciled into Contact.
	LegacyContact string    `json:"legacyContact,omitempty"`
	Location      string    `json:"location"`
	ImageURL      string    `json:"imageUrl"`
	OwnerID       string    `json:"ownerId"`
	Products      []Product `json:"products"`
}

// HasService reports whether the business carries the given service tag,
// falling back to the normalized category for records that predate the
// services list.
func (b *Business) HasService(service ServiceType) bool {
	if b.Services.Contains(service) {
		return true
	}

	return b.Category == CategoryFromService(service)
}

// MatchesCategory reports whether the business belongs to the given
// filter category. CategoryAll matches every business.
func (b *Business) MatchesCategory(category Category) bool {
	if category == CategoryAll {
		return true
	}
	if b.Category == category {
		return true
	}
	if service, ok := ServiceFromCategory(category); ok {
		return b.Services.Contains(service)
	}

	return false
}
